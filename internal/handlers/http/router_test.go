package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/emala/emala-backend/internal/domain/entities"
	"github.com/emala/emala-backend/internal/domain/ports"
	"github.com/emala/emala-backend/internal/domain/repositories"
	"github.com/emala/emala-backend/internal/domain/valueobjects"
	"github.com/emala/emala-backend/internal/handlers/dto"
	"github.com/emala/emala-backend/internal/handlers/middleware"
	"github.com/emala/emala-backend/internal/infrastructure/i18n"
	"github.com/emala/emala-backend/internal/infrastructure/security"
	"github.com/emala/emala-backend/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeUserRepository é um repositório em memória para os testes de
// handler. failWith injeta uma falha de infraestrutura em todas as
// operações, simulando o banco fora do ar.
type fakeUserRepository struct {
	mu       sync.Mutex
	nextID   uint
	users    map[uint]*entities.User
	failWith error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		nextID: 1,
		users:  make(map[uint]*entities.User),
	}
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	user.ID = r.nextID
	r.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, user := range r.users {
		if user.Email.String() == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) Update(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	user.UpdatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	// Linha inexistente não é erro, como no banco de verdade
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	users := make([]*entities.User, 0, len(r.users))
	for _, user := range r.users {
		if filters.Role != nil && user.Role != *filters.Role {
			continue
		}
		clone := *user
		users = append(users, &clone)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)    {}
func (noopLogger) Error(msg string, args ...any)   {}
func (noopLogger) Debug(msg string, args ...any)   {}
func (noopLogger) Warn(msg string, args ...any)    {}
func (l noopLogger) With(args ...any) ports.Logger { return l }

// testEnv agrupa o router montado como em produção e os colaboradores
// que os testes manipulam diretamente
type testEnv struct {
	router *gin.Engine
	repo   *fakeUserRepository
	tokens *security.TokenService
	hasher ports.PasswordHasher
}

func newTestEnv(t *testing.T, demoMode bool) *testEnv {
	t.Helper()

	i18nService, err := i18n.NewService("en")
	if err != nil {
		t.Fatalf("falha ao inicializar i18n: %v", err)
	}

	repo := newFakeUserRepository()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	tokens := security.NewTokenService("test-secret", time.Hour)

	userService := services.NewUserService(repo, hasher, noopLogger{})
	authService := services.NewAuthService(repo, hasher, tokens, demoMode, noopLogger{})

	userHandler := NewUserHandler(userService)
	authHandler := NewAuthHandler(authService)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.NewI18nMiddleware(i18nService).DetectLanguage())
	router.Use(middleware.ErrorHandler(noopLogger{}, true))

	router.GET("/api/health", Health)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authHandler.Me)
			auth.POST("/logout", authHandler.Logout)
		}

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	router.NoRoute(middleware.NoRoute())

	return &testEnv{router: router, repo: repo, tokens: tokens, hasher: hasher}
}

// seedUser insere um usuário direto no repositório, com created_at
// controlado para os testes de ordenação
func (e *testEnv) seedUser(t *testing.T, name, email, password string, role entities.Role, createdAt time.Time) *entities.User {
	t.Helper()

	emailVO, err := valueobjects.NewEmail(email)
	if err != nil {
		t.Fatalf("email de teste inválido %q: %v", email, err)
	}
	hash, err := e.hasher.Hash(password)
	if err != nil {
		t.Fatalf("falha ao hashear senha de teste: %v", err)
	}

	user := &entities.User{
		Name:         name,
		Email:        emailVO,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    createdAt,
	}
	if err := e.repo.Create(context.Background(), user); err != nil {
		t.Fatalf("falha ao semear usuário: %v", err)
	}
	return user
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("falha ao serializar corpo: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// envelope espelha dto.Response com data crua para inspeção por teste
type envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    json.RawMessage  `json:"data"`
	Count   *int             `json:"count"`
	Error   string           `json:"error"`
	Errors  []dto.FieldError `json:"errors"`
	Stack   string           `json:"stack"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("resposta não é o envelope JSON esperado: %v\n%s", err, rec.Body.String())
	}
	return env
}

func decodeData(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("data não decodifica para %T: %v\n%s", out, err, string(env.Data))
	}
}

func fieldMessages(env envelope) map[string]string {
	messages := make(map[string]string, len(env.Errors))
	for _, fe := range env.Errors {
		messages[fe.Field] = fe.Message
	}
	return messages
}
