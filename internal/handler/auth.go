package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/student-admin-panel/internal/api"
	"github.com/noah-isme/student-admin-panel/internal/session"
	"github.com/noah-isme/student-admin-panel/internal/view"
)

// AuthHandler serves the login view and the logout action.
type AuthHandler struct {
	api      *api.Client
	sessions session.Store
	logger   *zap.Logger
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(deps Deps) *AuthHandler {
	return &AuthHandler{api: deps.API, sessions: deps.Sessions, logger: deps.Logger}
}

// ShowLogin renders the credential form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title": "Teacher Login",
		"View":  view.NewLoginView(h.api, h.logger),
	})
}

// SubmitLogin exchanges the credentials for a token and opens the session.
func (h *AuthHandler) SubmitLogin(c *gin.Context) {
	lv := view.NewLoginView(h.api, h.logger)

	token, err := lv.Submit(c.Request.Context(), c.PostForm("email"), c.PostForm("password"))
	if err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Title": "Teacher Login",
			"View":  lv,
		})
		return
	}

	if err := h.sessions.Login(c, token); err != nil {
		h.logger.Error("failed to persist session", zap.Error(err))
		lv.Error = "Failed to start session"
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Title": "Teacher Login",
			"View":  lv,
		})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the session and returns to the login view.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c)
	c.Redirect(http.StatusFound, "/login")
}
