package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/warrantyit/server/internal/api"
	"github.com/warrantyit/server/internal/api/handlers"
	"github.com/warrantyit/server/internal/repository"
	"github.com/warrantyit/server/internal/services"
	"github.com/warrantyit/server/pkg/config"
	"github.com/warrantyit/server/pkg/database"
	"github.com/warrantyit/server/pkg/logger"

	_ "github.com/warrantyit/server/docs"
)

// @title           WarrantyIt API
// @version         1.0
// @description     Warranty tracking service: register products and keep an eye on their warranty status.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting warranty API",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("database connected")

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)

	authSvc := services.NewAuthService(userRepo, []byte(cfg.JWTSecret), cfg.JWTExpires)
	productSvc := services.NewProductService(productRepo)

	validate := validator.New(validator.WithRequiredStructEnabled())

	router := api.NewRouter(api.Dependencies{
		AppEnv:          cfg.AppEnv,
		HMACSecret:      []byte(cfg.JWTSecret),
		CORSOrigin:      cfg.CORSOrigin,
		RateLimitRPS:    cfg.RateLimitRPS,
		RateLimitBurst:  cfg.RateLimitBurst,
		UserRepo:        userRepo,
		AuthHandler:     handlers.NewAuthHandler(authSvc, validate),
		ProductsHandler: handlers.NewProductsHandler(productSvc, validate),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
