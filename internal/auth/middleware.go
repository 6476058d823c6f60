package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/idms/employee-portal/internal/domain"
	"github.com/idms/employee-portal/internal/repository"
	"github.com/idms/employee-portal/internal/session"
	apperrors "github.com/idms/employee-portal/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	EmployeeID string
	Employee   *domain.Employee
	SessionID  string
}

// AuthMiddleware authenticates requests via the session cookie or a bearer
// token and loads the employee principal.
type AuthMiddleware struct {
	sessions  *session.Manager
	tokens    *TokenManager
	employees repository.EmployeeRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(sessions *session.Manager, tokens *TokenManager, employees repository.EmployeeRepository) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, tokens: tokens, employees: employees}
}

// Handle enforces authentication for protected routes. A valid session whose
// employee has vanished from the directory is treated as stale and surfaces
// as not-found so the client forces a re-login.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	employeeID, sessionID, err := m.resolveCaller(c)
	if err != nil {
		return err
	}

	employee, err := m.employees.GetByEmployeeID(c.UserContext(), employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("employee", nil)
		}
		return apperrors.NewStoreFailure(err)
	}

	c.Locals(principalKey, &Principal{
		EmployeeID: employeeID,
		Employee:   employee,
		SessionID:  sessionID,
	})
	return c.Next()
}

func (m *AuthMiddleware) resolveCaller(c *fiber.Ctx) (employeeID, sessionID string, err error) {
	sess, err := m.sessions.FromRequest(c)
	if err != nil {
		return "", "", apperrors.NewStoreFailure(err)
	}
	if sess != nil {
		return sess.EmployeeID, sess.ID, nil
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", "", apperrors.NewNotAuthenticated("not authenticated")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", "", apperrors.NewNotAuthenticated("invalid authorization header")
	}
	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return "", "", apperrors.NewNotAuthenticated("invalid token")
	}
	return claims.EmployeeID, "", nil
}

// PrincipalFromContext retrieves the authenticated employee.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
