package auth

import (
	"context"
	"strings"
	"time"

	"claimsportal/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type tokenIssuer interface {
	GenerateToken(employeeID, email string) (string, error)
}

// Service handles employee registration and login. Sessions are
// stateless JWTs; there is no refresh flow.
type Service struct {
	employees EmployeeRepository
	tokens    tokenIssuer
}

func NewService(employees EmployeeRepository, tokens tokenIssuer) *Service {
	return &Service{employees: employees, tokens: tokens}
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (*domain.Employee, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.employees.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	employee := &domain.Employee{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(employee.ID, employee.Email)
	if err != nil {
		return nil, "", err
	}

	employee.PasswordHash = ""
	return employee, token, nil
}

// Profile returns the employee behind an authenticated session, or
// nil when the account was deleted after the token was issued.
func (s *Service) Profile(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee != nil {
		employee.PasswordHash = ""
	}
	return employee, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.Employee, string, error) {
	employee, err := s.employees.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if employee == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(employee.ID, employee.Email)
	if err != nil {
		return nil, "", err
	}

	employee.PasswordHash = ""
	return employee, token, nil
}
