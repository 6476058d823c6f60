package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/idms/employee-portal/internal/events"
	"github.com/idms/employee-portal/internal/observability"
)

// AuditService records auth events in the server log and the login counters.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to auth events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventLoginSucceeded, a.handleLoginSucceeded)
	a.dispatcher.Subscribe(events.EventLoginFailed, a.handleLoginFailed)
	a.dispatcher.Subscribe(events.EventLoggedOut, a.handleLoggedOut)
}

func (a *AuditService) handleLoginSucceeded(ctx context.Context, event events.Event) error {
	a.metrics.RecordLogin(true)
	a.logger.Info("LoginSucceeded", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}

func (a *AuditService) handleLoginFailed(ctx context.Context, event events.Event) error {
	a.metrics.RecordLogin(false)
	a.logger.Info("LoginFailed", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}

func (a *AuditService) handleLoggedOut(ctx context.Context, event events.Event) error {
	a.logger.Info("LoggedOut", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}
