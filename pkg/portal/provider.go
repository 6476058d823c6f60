// Package portal provides the client-side session capability consumed by the
// portal UI gate. Two variants answer the same authenticated/who contract:
// RemoteSessionProvider against the server, and LocalMockSessionProvider for
// static hosting with no backend.
package portal

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned by Login on a rejected credential pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotAuthenticated is returned when no live session backs the call.
var ErrNotAuthenticated = errors.New("not authenticated")

// EmployeeInfo is the employee record as the client sees it. It never
// carries a password field.
type EmployeeInfo struct {
	ID         int    `json:"id"`
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

// SessionProvider is the capability the UI gate depends on. The gate never
// knows which variant answers.
type SessionProvider interface {
	Login(ctx context.Context, identifier, password string) (*EmployeeInfo, error)
	CheckAuthenticated(ctx context.Context) (bool, error)
	CurrentEmployee(ctx context.Context) (*EmployeeInfo, error)
	Logout(ctx context.Context) error
}
