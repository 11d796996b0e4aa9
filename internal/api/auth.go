package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/noah-isme/student-admin-panel/internal/models"
	appErrors "github.com/noah-isme/student-admin-panel/pkg/errors"
)

// LoginRequest is the credential payload for /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, "login", "", http.MethodPost, "/auth/login", nil,
		LoginRequest{Email: email, Password: password}, &resp, appErrors.ErrInvalidCredentials.Message)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// CurrentTeacher resolves the logged-in user's profile by probing the
// configured candidate endpoints in order; the first success wins. Each
// attempt is bounded by the configured per-attempt timeout.
func (c *Client) CurrentTeacher(ctx context.Context, token string) (*models.Teacher, error) {
	var lastErr error
	for _, endpoint := range c.profileEndpoints {
		attemptCtx, cancel := context.WithTimeout(ctx, c.profileTimeout)
		var raw json.RawMessage
		err := c.do(attemptCtx, "current_teacher", token, http.MethodGet, endpoint, nil, nil, &raw, "failed to load profile")
		cancel()
		if err != nil {
			lastErr = err
			continue
		}
		if teacher := decodeTeacher(raw); teacher != nil {
			return teacher, nil
		}
	}
	if lastErr == nil {
		lastErr = appErrors.Clone(appErrors.ErrNotFound, "profile not found")
	}
	return nil, lastErr
}

// decodeTeacher tolerates {user:...}, {teacher:...} and bare envelopes.
func decodeTeacher(raw json.RawMessage) *models.Teacher {
	if len(raw) == 0 {
		return nil
	}
	var wrapped struct {
		User    *models.Teacher `json:"user"`
		Teacher *models.Teacher `json:"teacher"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		if wrapped.User != nil {
			return wrapped.User
		}
		if wrapped.Teacher != nil {
			return wrapped.Teacher
		}
	}
	var bare models.Teacher
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil
	}
	if bare.Name == "" && bare.FirstName == "" && bare.LastName == "" && bare.Email == "" {
		return nil
	}
	return &bare
}
