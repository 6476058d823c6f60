package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/idms/employee-portal/internal/auth"
	"github.com/idms/employee-portal/internal/config"
	"github.com/idms/employee-portal/internal/domain"
	"github.com/idms/employee-portal/internal/events"
	"github.com/idms/employee-portal/internal/repository"
	"github.com/idms/employee-portal/internal/session"
	apperrors "github.com/idms/employee-portal/pkg/util"
)

// AuthService coordinates the login, whoami and logout flows.
type AuthService struct {
	employees  repository.EmployeeRepository
	sessions   *session.Manager
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	Sessions     *session.Manager
	Dispatcher   events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		employees:  deps.EmployeeRepo,
		sessions:   deps.Sessions,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.AccessTokenTTLMinutes),
		dispatcher: deps.Dispatcher,
	}
}

// Login authenticates an employee and establishes a session. Unknown ids and
// wrong passwords produce the identical error so accounts cannot be
// enumerated.
func (s *AuthService) Login(ctx context.Context, employeeID, password string) (*domain.Employee, *domain.Session, string, time.Time, error) {
	if strings.TrimSpace(employeeID) == "" || password == "" {
		return nil, nil, "", time.Time{}, apperrors.NewValidationError("employeeId and password required", nil)
	}

	employee, err := s.employees.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.publish(ctx, events.EventLoginFailed, events.LoginFailedPayload{EmployeeID: employeeID, Reason: "unknown employee id"})
			return nil, nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, nil, "", time.Time{}, apperrors.NewStoreFailure(err)
	}

	if err := auth.ComparePassword(employee.PasswordHash, password); err != nil {
		s.publish(ctx, events.EventLoginFailed, events.LoginFailedPayload{EmployeeID: employeeID, Reason: "wrong password"})
		return nil, nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	sess, err := s.sessions.Create(ctx, employee.EmployeeID)
	if err != nil {
		return nil, nil, "", time.Time{}, apperrors.NewStoreFailure(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(employee.EmployeeID)
	if err != nil {
		return nil, nil, "", time.Time{}, apperrors.NewStoreFailure(err)
	}

	s.publish(ctx, events.EventLoginSucceeded, events.LoginSucceededPayload{EmployeeID: employee.EmployeeID, SessionID: sess.ID})
	return employee, sess, token, exp, nil
}

// CheckSession reports whether the session id resolves to a live session.
func (s *AuthService) CheckSession(ctx context.Context, sessionID string) (bool, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return false, apperrors.NewStoreFailure(err)
	}
	return sess != nil, nil
}

// CurrentEmployee resolves the session to its employee record. A live
// session whose employee has vanished from the directory is stale and
// surfaces as not-found so the client forces a re-login.
func (s *AuthService) CurrentEmployee(ctx context.Context, sessionID string) (*domain.Employee, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, apperrors.NewStoreFailure(err)
	}
	if sess == nil {
		return nil, apperrors.NewNotAuthenticated("not authenticated")
	}

	employee, err := s.employees.GetByEmployeeID(ctx, sess.EmployeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("employee", nil)
		}
		return nil, apperrors.NewStoreFailure(err)
	}
	return employee, nil
}

// Logout destroys the session. Destroying an absent session is a no-op
// success.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		return apperrors.NewStoreFailure(err)
	}
	if sessionID != "" {
		s.publish(ctx, events.EventLoggedOut, events.LoggedOutPayload{SessionID: sessionID})
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
