package repository

import (
	"context"
	"errors"

	"github.com/idms/employee-portal/internal/domain"
)

// ErrNotFound is returned when a lookup matches no employee record.
var ErrNotFound = errors.New("employee not found")

// ErrDuplicateEmployeeID is returned when a create would violate the
// employee id uniqueness invariant.
var ErrDuplicateEmployeeID = errors.New("employee id already exists")

// EmployeeRepository defines access to the employee directory.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	Create(ctx context.Context, employee *domain.Employee) error
}
