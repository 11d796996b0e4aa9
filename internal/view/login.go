package view

import (
	"context"
	"strings"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/student-admin-panel/pkg/errors"
)

type loginAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// LoginView drives the credential form.
type LoginView struct {
	api    loginAPI
	logger *zap.Logger

	Email string
	Error string
}

// NewLoginView constructs the login controller.
func NewLoginView(api loginAPI, logger *zap.Logger) *LoginView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoginView{api: api, logger: logger}
}

// Submit exchanges the credentials for a token. Both fields are required;
// no further client-side password policy applies. The entered email is kept
// for redisplay on failure.
func (v *LoginView) Submit(ctx context.Context, email, password string) (string, error) {
	v.Email = strings.TrimSpace(email)
	v.Error = ""

	if v.Email == "" || password == "" {
		v.Error = "Email and password are required"
		return "", appErrors.Clone(appErrors.ErrValidation, v.Error)
	}

	token, err := v.api.Login(ctx, v.Email, password)
	if err != nil {
		v.Error = appErrors.FromError(err).Message
		if v.Error == "" {
			v.Error = appErrors.ErrInvalidCredentials.Message
		}
		return "", err
	}
	return token, nil
}
