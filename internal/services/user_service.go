package services

import (
	"context"

	"github.com/emala/emala-backend/internal/domain/entities"
	"github.com/emala/emala-backend/internal/domain/errors"
	"github.com/emala/emala-backend/internal/domain/ports"
	"github.com/emala/emala-backend/internal/domain/repositories"
	"github.com/emala/emala-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput representa os dados de uma atualização parcial.
// Campos nil não são alterados.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

// CreateUser cria um novo usuário com senha hasheada.
// O FindByEmail é um pre-check de cortesia: a garantia real de unicidade
// é a constraint do banco, que o repositório traduz para
// errors.ErrEmailAlreadyExists.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	s.logger.Info("creating user", "email", input.Email)

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, entities.ErrInvalidUserData
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	role, ok := entities.ParseRole(input.Role)
	if !ok {
		return nil, entities.ErrInvalidUserData
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := user.Validate(); err != nil {
		return nil, entities.ErrInvalidUserData
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "id", user.ID, "email", user.Email.String())
	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários ordenados por criação (mais recentes primeiro)
func (s *UserService) ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	return s.userRepo.List(ctx, filters)
}

// UpdateUser aplica uma atualização parcial: apenas os campos informados
// mudam; senha informada é re-hasheada. id e created_at são imutáveis.
func (s *UserService) UpdateUser(ctx context.Context, id uint, input UpdateUserInput) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if input.Name != nil {
		user.Name = *input.Name
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, entities.ErrInvalidUserData
		}
		if !email.Equals(user.Email) {
			existing, err := s.userRepo.FindByEmail(ctx, email.String())
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != user.ID {
				return nil, errors.ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}

	if input.Role != nil {
		role, ok := entities.ParseRole(*input.Role)
		if !ok {
			return nil, entities.ErrInvalidUserData
		}
		user.Role = role
	}

	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := user.Validate(); err != nil {
		return nil, entities.ErrInvalidUserData
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "id", user.ID)
	return user, nil
}

// DeleteUser remove um usuário pelo id. Id inexistente não distingue:
// o resultado é sucesso do mesmo jeito, espelhando o gateway.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", "id", id)
	return nil
}
