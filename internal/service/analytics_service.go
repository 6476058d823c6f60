package service

import (
	"context"

	"github.com/idms/employee-portal/internal/observability"
)

// AnalyticsService serves the dashboard widgets: fixed demo figures plus the
// live counters this process has accumulated.
type AnalyticsService struct {
	metrics *observability.Metrics
}

// NewAnalyticsService builds the service.
func NewAnalyticsService(metrics *observability.Metrics) *AnalyticsService {
	return &AnalyticsService{metrics: metrics}
}

// Widget is a single dashboard tile.
type Widget struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
	Trend string `json:"trend"`
}

// Summary aggregates the analytics widgets.
type Summary struct {
	Widgets      []Widget `json:"widgets"`
	Requests     int64    `json:"requests"`
	Errors       int64    `json:"errors"`
	Logins       int64    `json:"logins"`
	FailedLogins int64    `json:"failed_logins"`
}

// Summary returns the demo widget numbers and live process counters.
func (s *AnalyticsService) Summary(ctx context.Context) (*Summary, error) {
	requests, errs, loginOK, loginFailed := s.metrics.Snapshot()

	return &Summary{
		// Demo figures shown on the dashboard tiles.
		Widgets: []Widget{
			{Label: "Open Tickets", Value: 12, Trend: "down"},
			{Label: "Pending Approvals", Value: 4, Trend: "flat"},
			{Label: "Audits This Week", Value: 4476, Trend: "up"},
			{Label: "Active Employees", Value: 1893, Trend: "up"},
		},
		Requests:     requests,
		Errors:       errs,
		Logins:       loginOK,
		FailedLogins: loginFailed,
	}, nil
}
