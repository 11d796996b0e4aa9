package view

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/student-admin-panel/internal/models"
)

type dashboardAPI interface {
	Stats(ctx context.Context, token string) (*models.DashboardStats, error)
}

// DashboardView drives the four aggregate stat tiles.
type DashboardView struct {
	api    dashboardAPI
	logger *zap.Logger
	token  string

	Loading bool
	Stats   models.DashboardStats
}

// NewDashboardView constructs the dashboard controller.
func NewDashboardView(api dashboardAPI, token string, logger *zap.Logger) *DashboardView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardView{api: api, logger: logger, token: token, Loading: true}
}

// Mount fetches the aggregates once. A failed fetch leaves all tiles at
// zero; fields missing from the response stay at zero as well.
func (v *DashboardView) Mount(ctx context.Context) {
	v.Loading = true
	stats, err := v.api.Stats(ctx, v.token)
	v.Loading = false
	if err != nil {
		v.logger.Warn("failed to fetch dashboard stats", zap.Error(err))
		return
	}
	v.Stats = *stats
}
