package dto

import "time"

// LoginRequest payload for login.
type LoginRequest struct {
	EmployeeID string `json:"employeeId"`
	Password   string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStatusResponse reports session validity.
type SessionStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}
