package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/student-admin-panel/pkg/errors"
)

type fakeLoginAPI struct {
	token string
	err   error
	calls int
}

func (f *fakeLoginAPI) Login(context.Context, string, string) (string, error) {
	f.calls++
	return f.token, f.err
}

func TestLoginSubmitReturnsToken(t *testing.T) {
	fake := &fakeLoginAPI{token: "abc"}
	v := NewLoginView(fake, nil)

	token, err := v.Submit(context.Background(), " t@x.com ", "secret")

	require.NoError(t, err)
	assert.Equal(t, "abc", token)
	assert.Equal(t, "t@x.com", v.Email)
	assert.Empty(t, v.Error)
}

func TestLoginSubmitRequiresBothFields(t *testing.T) {
	fake := &fakeLoginAPI{token: "abc"}
	v := NewLoginView(fake, nil)

	_, err := v.Submit(context.Background(), "", "secret")
	require.Error(t, err)
	_, err = v.Submit(context.Background(), "t@x.com", "")
	require.Error(t, err)

	assert.Equal(t, "Email and password are required", v.Error)
	assert.Zero(t, fake.calls)
}

func TestLoginSubmitKeepsEmailOnFailure(t *testing.T) {
	fake := &fakeLoginAPI{err: appErrors.Clone(appErrors.ErrInvalidCredentials, "")}
	v := NewLoginView(fake, nil)

	_, err := v.Submit(context.Background(), "t@x.com", "wrong")

	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", v.Error)
	assert.Equal(t, "t@x.com", v.Email)
}
