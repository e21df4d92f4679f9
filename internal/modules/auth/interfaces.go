package auth

import (
	"context"

	"claimsportal/internal/domain"
)

// EmployeeRepository is the credential store behind sign-up/login.
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
}
