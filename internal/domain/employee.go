package domain

import "time"

// Employee is the domain model for portal accounts. EmployeeID is the
// business identifier used for login; ID is assigned by the directory and is
// strictly increasing within a process lifetime.
type Employee struct {
	ID           int
	EmployeeID   string
	PasswordHash string
	Name         string
	Email        string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Public returns the wire representation without the password hash.
func (e *Employee) Public() map[string]any {
	return map[string]any{
		"id":         e.ID,
		"employeeId": e.EmployeeID,
		"name":       e.Name,
		"email":      e.Email,
		"role":       e.Role,
	}
}
