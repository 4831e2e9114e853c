package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/jabuspark/internal/client/client"
	"github.com/dmitrijs2005/jabuspark/internal/client/models"
)

type DashboardService interface {
	Summary(ctx context.Context) (*models.DashboardSummary, error)
}

type dashboardService struct {
	client client.Client
}

func NewDashboardService(c client.Client) DashboardService {
	return &dashboardService{client: c}
}

func (s *dashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, "/dashboard/summary.php", nil, &raw); err != nil {
		return nil, fmt.Errorf("dashboard summary error: %w", err)
	}

	var sum models.DashboardSummary
	if err := client.DecodeData(raw, &sum); err != nil {
		return nil, err
	}
	if sum.User != nil {
		u := sum.User.Normalized()
		sum.User = &u
	}
	if sum.RecentDrills == nil {
		sum.RecentDrills = []models.DrillRecord{}
	}
	return &sum, nil
}
