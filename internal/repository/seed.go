package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/idms/employee-portal/internal/domain"
)

// demoAccounts are the fixed demo accounts for the portal. Plaintext
// passwords exist only here; seeding stores bcrypt hashes.
var demoAccounts = []struct {
	EmployeeID string
	Password   string
	Name       string
	Email      string
	Role       string
}{
	{EmployeeID: "123", Password: "123", Name: "Test User", Email: "test.user@idms.example", Role: "Employee"},
	{EmployeeID: "IDMS123", Password: "password123", Name: "John Doe", Email: "john.doe@idms.example", Role: "Manager"},
	{EmployeeID: "IDMS124", Password: "password123", Name: "Jane Smith", Email: "jane.smith@idms.example", Role: "HR"},
}

// SeedEmployees inserts the demo accounts when the directory is empty.
// Running it against a non-empty directory is a no-op.
func SeedEmployees(ctx context.Context, repo EmployeeRepository, bcryptCost int, logger *zap.Logger) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list employees: %w", err)
	}
	if len(existing) > 0 {
		logger.Debug("employee directory already seeded", zap.Int("count", len(existing)))
		return nil
	}

	for _, account := range demoAccounts {
		// Hashed here directly so the repository layer stays free of auth
		// imports; login verifies through auth.ComparePassword.
		hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", account.EmployeeID, err)
		}
		employee := &domain.Employee{
			EmployeeID:   account.EmployeeID,
			PasswordHash: string(hash),
			Name:         account.Name,
			Email:        account.Email,
			Role:         account.Role,
		}
		if err := repo.Create(ctx, employee); err != nil {
			return fmt.Errorf("seed employee %s: %w", account.EmployeeID, err)
		}
	}

	logger.Info("seeded demo employees", zap.Int("count", len(demoAccounts)))
	return nil
}
