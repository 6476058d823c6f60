package domain

import "time"

// Session is the server-held proof of a prior successful login, referenced by
// a cookie-carried identifier. Created on login, destroyed on logout or
// expiry, never mutated otherwise.
type Session struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// IsExpired reports whether the session TTL has elapsed.
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
