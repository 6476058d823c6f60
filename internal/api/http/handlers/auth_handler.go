package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/idms/employee-portal/internal/api/dto"
	"github.com/idms/employee-portal/internal/service"
	"github.com/idms/employee-portal/internal/session"
	apperrors "github.com/idms/employee-portal/pkg/util"
)

// AuthHandler exposes the login/session/logout endpoints.
type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Manager
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: authService, sessions: sessions}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	employee, sess, token, exp, err := h.auth.Login(c.UserContext(), req.EmployeeID, req.Password)
	if err != nil {
		return err
	}

	h.sessions.SetCookie(c, sess)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"employee": employee.Public(),
			"auth":     dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Session handles GET /api/auth/session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	authenticated, err := h.auth.CheckSession(c.UserContext(), c.Cookies(session.CookieName))
	if err != nil {
		return err
	}

	status := http.StatusOK
	if !authenticated {
		status = http.StatusUnauthorized
	}
	return c.Status(status).JSON(dto.SessionStatusResponse{Authenticated: authenticated})
}

// Logout handles POST /api/auth/logout. Logging out without a session is
// still a success.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.UserContext(), c.Cookies(session.CookieName)); err != nil {
		return err
	}

	h.sessions.ClearCookie(c)
	return c.JSON(fiber.Map{"message": "logged out"})
}
