package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/emala/emala-backend/internal/domain/entities"
	"github.com/emala/emala-backend/internal/domain/ports"
	"github.com/emala/emala-backend/internal/domain/repositories"
)

// MockUserRepository é um mock de repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

// noopLogger descarta logs nos testes
type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)      {}
func (noopLogger) Error(msg string, args ...any)     {}
func (noopLogger) Debug(msg string, args ...any)     {}
func (noopLogger) Warn(msg string, args ...any)      {}
func (l noopLogger) With(args ...any) ports.Logger   { return l }
