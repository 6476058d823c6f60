package session

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/idms/employee-portal/internal/domain"
)

// CookieName is the name of the session cookie.
const CookieName = "portal_session"

// Manager issues opaque session identifiers, resolves them through the
// backing store, and owns the cookie contract.
type Manager struct {
	store  Store
	ttl    time.Duration
	secure bool
}

// NewManager creates a session manager. secure controls the cookie Secure
// flag and should be set in production.
func NewManager(store Store, ttl time.Duration, secure bool) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{store: store, ttl: ttl, secure: secure}
}

// Create establishes a new session bound to the employee id.
func (m *Manager) Create(ctx context.Context, employeeID string) (*domain.Session, error) {
	now := time.Now()
	sess := &domain.Session{
		ID:         "sess_" + uuid.NewString(),
		EmployeeID: employeeID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(m.ttl),
	}
	if err := m.store.Create(ctx, sess, m.ttl); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get resolves a session id. Unknown or expired sessions yield (nil, nil).
func (m *Manager) Get(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, nil
	}
	sess, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}
	if sess.IsExpired() {
		_ = m.store.Delete(ctx, id)
		return nil, nil
	}
	return sess, nil
}

// Destroy removes the session. Destroying an absent session is a no-op.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return m.store.Delete(ctx, id)
}

// FromRequest extracts the session referenced by the request cookie.
func (m *Manager) FromRequest(c *fiber.Ctx) (*domain.Session, error) {
	return m.Get(c.UserContext(), c.Cookies(CookieName))
}

// SetCookie attaches the session cookie to the response.
func (m *Manager) SetCookie(c *fiber.Ctx, sess *domain.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    sess.ID,
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  sess.ExpiresAt,
	})
}

// ClearCookie removes the session cookie from the client.
func (m *Manager) ClearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
}
