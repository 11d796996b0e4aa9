package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/student-admin-panel/internal/api"
	"github.com/noah-isme/student-admin-panel/internal/session"
	"github.com/noah-isme/student-admin-panel/internal/view"
)

// DashboardHandler serves the aggregate statistics page.
type DashboardHandler struct {
	api      *api.Client
	sessions session.Store
	logger   *zap.Logger
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(deps Deps) *DashboardHandler {
	return &DashboardHandler{api: deps.API, sessions: deps.Sessions, logger: deps.Logger}
}

// Show fetches the stats and renders the four tiles.
func (h *DashboardHandler) Show(c *gin.Context) {
	token := h.sessions.Token(c)

	dv := view.NewDashboardView(h.api, token, h.logger)
	dv.Mount(c.Request.Context())

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":   "Dashboard",
		"Active":  "dashboard",
		"Flash":   popFlash(c),
		"View":    dv,
		"Teacher": sidebarTeacher(c, h.api, token),
	})
}
