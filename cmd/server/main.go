package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	"contactbook/docs" // swagger docs
	"contactbook/internal/auth"
	"contactbook/internal/config"
	"contactbook/internal/db"
	"contactbook/internal/handler"
	"contactbook/internal/logging"
	"contactbook/internal/repository"
	"contactbook/internal/router"
	"contactbook/internal/service"
)

// @title Contact Book API
// @version 1.0
// @description Personal contact manager with JWT authentication. Every contact belongs to the user that created it.
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBURI, logger)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping all tables")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	// Initialize services
	credentials := service.NewCredentialStore(userRepo, hasher)
	authService := service.NewAuthService(credentials, jwtService, logger)
	contactService := service.NewContactService(contactRepo)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(func(ctx context.Context) error {
		return db.Ping(ctx, gormDB)
	})
	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	router.Register(e, cfg, logger, jwtService, healthHandler, authHandler, contactHandler)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	logger.Info("swagger documentation available", "url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "addr", cfg.Addr(), "driver", cfg.DBDriver)
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
