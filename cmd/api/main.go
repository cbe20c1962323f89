package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/emala/emala-backend/docs"
	httphandlers "github.com/emala/emala-backend/internal/handlers/http"
	"github.com/emala/emala-backend/internal/handlers/middleware"
	"github.com/emala/emala-backend/internal/infrastructure/config"
	"github.com/emala/emala-backend/internal/infrastructure/i18n"
	"github.com/emala/emala-backend/internal/infrastructure/logging"
	"github.com/emala/emala-backend/internal/infrastructure/persistence/postgres"
	"github.com/emala/emala-backend/internal/infrastructure/security"
	"github.com/emala/emala-backend/internal/services"
)

// @title           eMala API
// @version         1.0
// @description     REST backend for the eMala frontend: authentication and user CRUD over PostgreSQL.
// @BasePath        /
func main() {
	// .env é opcional: em produção tudo vem do ambiente
	_ = godotenv.Load()

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting emala backend",
		"env", cfg.Env,
		"version", "dev",
	)

	if cfg.Auth.DemoMode {
		logger.Warn("demo mode enabled: the admin/admin bypass credential is active")
	}

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Aplicar migrações (inclui a constraint de unicidade de email)
	if err := postgres.RunMigrations(&cfg.Database, logger); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories e infraestrutura de segurança
	userRepo := postgres.NewUserRepository(db)
	hasher := security.NewBcryptHasher(security.DefaultBcryptCost)
	tokens := security.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	// Inicializar services
	userService := services.NewUserService(userRepo, hasher, logger)
	authService := services.NewAuthService(userRepo, hasher, tokens, cfg.Auth.DemoMode, logger)

	// Inicializar handlers
	userHandler := httphandlers.NewUserHandler(userService)
	authHandler := httphandlers.NewAuthHandler(authService)

	// Setup Gin
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Log de requisições apenas em desenvolvimento
	if cfg.IsDevelopment() {
		router.Use(middleware.RequestLogger(logger))
	}

	// Catch-all de erros e panics
	router.Use(middleware.ErrorHandler(logger, cfg.IsDevelopment()))

	// Health check
	router.GET("/api/health", httphandlers.Health)

	// API routes
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

	// Documentação OpenAPI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas não mapeadas respondem 404 com o caminho ecoado
	router.NoRoute(middleware.NoRoute())

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
