package services

import (
	"context"
	"strings"

	"github.com/emala/emala-backend/internal/domain/entities"
	"github.com/emala/emala-backend/internal/domain/errors"
	"github.com/emala/emala-backend/internal/domain/ports"
	"github.com/emala/emala-backend/internal/domain/repositories"
	"github.com/emala/emala-backend/internal/domain/valueobjects"
)

// Credencial de demonstração. Só é aceita com demoMode habilitado
// explicitamente na configuração (DEMO_MODE=true).
const (
	demoUsername = "admin"
	demoPassword = "admin"

	// DemoToken é o token fixo retornado para a identidade de demonstração
	DemoToken = "admin-demo-token"
)

// AuthService contém a lógica de autenticação
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenProvider
	demoMode bool
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenProvider,
	demoMode bool,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		demoMode: demoMode,
		logger:   logger,
	}
}

// BypassIdentity retorna a identidade fixa de demonstração (não persistida)
func BypassIdentity() *entities.User {
	email, _ := valueobjects.NewEmail("admin@emala.com")
	return &entities.User{
		ID:    0,
		Name:  "Administrator",
		Email: email,
		Role:  entities.RoleAdmin,
	}
}

// Login autentica por email e senha e emite um token assinado.
// Usuário inexistente e senha errada produzem o mesmo erro: a resposta
// não pode revelar qual das verificações falhou.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	if s.demoMode && email == demoUsername && password == demoPassword {
		s.logger.Warn("demo bypass credential used")
		return BypassIdentity(), DemoToken, nil
	}

	normalized := strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.FindByEmail(ctx, normalized)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(ports.TokenClaims{
		UserID: user.ID,
		Email:  user.Email.String(),
		Role:   string(user.Role),
	})
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user logged in", "id", user.ID)
	return user, token, nil
}

// CurrentUser resolve o portador de um token para a identidade dele
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*entities.User, error) {
	if token == "" {
		return nil, errors.ErrNotAuthenticated
	}

	if s.demoMode && token == DemoToken {
		return BypassIdentity(), nil
	}

	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, errors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Token válido para uma linha que já não existe
		return nil, errors.ErrInvalidToken
	}

	return user, nil
}

// Logout é stateless: não há sessão no servidor para invalidar
func (s *AuthService) Logout(ctx context.Context) error {
	return nil
}
