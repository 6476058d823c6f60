package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/idms/employee-portal/internal/auth"
	apperrors "github.com/idms/employee-portal/pkg/util"
)

// EmployeeHandler exposes the current-employee endpoint.
type EmployeeHandler struct{}

// NewEmployeeHandler constructs handler.
func NewEmployeeHandler() *EmployeeHandler {
	return &EmployeeHandler{}
}

// Me handles GET /api/employee/me. The auth middleware has already resolved
// the session (401) and the directory record (404 on a stale session).
func (h *EmployeeHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewNotAuthenticated("not authenticated")
	}
	return c.JSON(fiber.Map{"data": principal.Employee.Public()})
}
