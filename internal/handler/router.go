package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-admin-panel/internal/api"
	"github.com/noah-isme/student-admin-panel/internal/middleware"
	"github.com/noah-isme/student-admin-panel/internal/session"
	"github.com/noah-isme/student-admin-panel/pkg/config"
)

// Deps groups everything the page handlers need.
type Deps struct {
	API      *api.Client
	Sessions session.Store
	Validate *validator.Validate
	Logger   *zap.Logger
	Config   *config.Config
}

// Register wires the route table. Two macro-states exist: without a token
// only /login is reachable and everything else redirects there; with a token
// /login redirects to the dashboard and unknown paths fall back to it.
func Register(r *gin.Engine, deps Deps) {
	if deps.Validate == nil {
		deps.Validate = validator.New()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	auth := NewAuthHandler(deps)
	dashboard := NewDashboardHandler(deps)
	students := NewStudentHandler(deps)

	r.GET("/login", middleware.RedirectAuthenticated(deps.Sessions), auth.ShowLogin)
	r.POST("/login", middleware.RedirectAuthenticated(deps.Sessions), auth.SubmitLogin)
	r.POST("/logout", auth.Logout)

	authed := r.Group("/", middleware.RequireSession(deps.Sessions))
	{
		authed.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/dashboard")
		})
		authed.GET("/dashboard", dashboard.Show)

		authed.GET("/students", students.List)
		authed.GET("/students/new", students.ShowCreate)
		authed.POST("/students/new", students.SubmitCreate)
		authed.GET("/students/export", students.Export)
		authed.GET("/students/:id", students.Profile)
		authed.GET("/students/:id/edit", students.ShowEdit)
		authed.POST("/students/:id/edit", students.SubmitEdit)
		authed.GET("/students/:id/delete", students.ConfirmDelete)
		authed.POST("/students/:id/delete", students.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		if deps.Sessions.Token(c) != "" {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.Redirect(http.StatusFound, "/login")
	})
}
