package repository

import (
	"context"
	"sync"
	"time"

	"github.com/idms/employee-portal/internal/domain"
)

// memoryEmployeeRepository is the default directory backend: a process-owned
// map with a strictly increasing id counter. Nothing survives a restart.
type memoryEmployeeRepository struct {
	mu      sync.RWMutex
	nextID  int
	byID    map[int]*domain.Employee
	byBizID map[string]int
}

// NewMemoryEmployeeRepository returns an empty in-memory directory.
func NewMemoryEmployeeRepository() EmployeeRepository {
	return &memoryEmployeeRepository{
		nextID:  1,
		byID:    make(map[int]*domain.Employee),
		byBizID: make(map[string]int),
	}
}

func (r *memoryEmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]domain.Employee, 0, len(r.byID))
	for _, e := range r.byID {
		employees = append(employees, *e)
	}
	return employees, nil
}

func (r *memoryEmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byBizID[employeeID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r.byID[id]
	return &cp, nil
}

func (r *memoryEmployeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.byID {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// Create assigns the next integer id under the lock so concurrent writes can
// never hand out the same id.
func (r *memoryEmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byBizID[employee.EmployeeID]; exists {
		return ErrDuplicateEmployeeID
	}

	now := time.Now()
	employee.ID = r.nextID
	employee.CreatedAt = now
	employee.UpdatedAt = now
	r.nextID++

	stored := *employee
	r.byID[stored.ID] = &stored
	r.byBizID[stored.EmployeeID] = stored.ID
	return nil
}
