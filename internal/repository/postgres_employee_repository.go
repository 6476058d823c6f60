package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/idms/employee-portal/internal/domain"
)

type postgresEmployeeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEmployeeRepository returns a Postgres-backed directory.
func NewPostgresEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &postgresEmployeeRepository{pool: pool}
}

func (r *postgresEmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `
        SELECT id, employee_id, password_hash, name, email, role, created_at, updated_at
        FROM employees ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(
			&e.ID,
			&e.EmployeeID,
			&e.PasswordHash,
			&e.Name,
			&e.Email,
			&e.Role,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *postgresEmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	const query = `
        SELECT id, employee_id, password_hash, name, email, role, created_at, updated_at
        FROM employees WHERE employee_id=$1`

	return r.scanOne(ctx, query, employeeID)
}

func (r *postgresEmployeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	const query = `
        SELECT id, employee_id, password_hash, name, email, role, created_at, updated_at
        FROM employees WHERE email=$1`

	return r.scanOne(ctx, query, email)
}

func (r *postgresEmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	const query = `
        INSERT INTO employees (employee_id, password_hash, name, email, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		employee.EmployeeID,
		employee.PasswordHash,
		employee.Name,
		employee.Email,
		employee.Role,
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
}

func (r *postgresEmployeeRepository) scanOne(ctx context.Context, query string, arg any) (*domain.Employee, error) {
	var e domain.Employee
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&e.ID,
		&e.EmployeeID,
		&e.PasswordHash,
		&e.Name,
		&e.Email,
		&e.Role,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}
