package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/YairBetsalel/tutor-path-finder/internal/app"
	"github.com/YairBetsalel/tutor-path-finder/internal/config"
	"github.com/YairBetsalel/tutor-path-finder/internal/controller"
	"github.com/YairBetsalel/tutor-path-finder/internal/repository"
	"github.com/YairBetsalel/tutor-path-finder/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := app.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to init migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if version, err := migrator.Version(ctx); err == nil {
		logger.Info("Migrations applied", zap.Int64("version", version))
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	tutorProfileRepo := repository.NewTutorProfileRepository(pool)
	availabilityRepo := repository.NewAvailabilityRepository(pool)
	bondRequestRepo := repository.NewBondRequestRepository(pool)
	bondRepo := repository.NewBondRepository(pool)
	ratingRepo := repository.NewLessonRatingRepository(pool)
	refreshRepo := repository.NewRefreshSessionRepository(pool)

	accountService := service.NewAccountService(
		userRepo, profileRepo, roleRepo, refreshRepo, logger,
		cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL, cfg.RefreshTokenTTL,
	)
	sessionService := service.NewSessionService(
		userRepo, profileRepo, roleRepo, tutorProfileRepo, bondRepo, ratingRepo, logger,
	)
	availabilityService := service.NewAvailabilityService(
		availabilityRepo, profileRepo, tutorProfileRepo, logger, cfg.RejectOverlap,
	)
	bondService := service.NewBondService(bondRequestRepo, bondRepo, profileRepo, logger)
	tutorService := service.NewTutorService(tutorProfileRepo, profileRepo, logger)
	ratingService := service.NewRatingService(ratingRepo, roleRepo, bondRepo, logger)

	server := controller.NewServer(controller.Deps{
		Accounts:  accountService,
		Sessions:  sessionService,
		Calendar:  availabilityService,
		Bonds:     bondService,
		Tutors:    tutorService,
		Ratings:   ratingService,
		JWTSecret: cfg.JWTSecret,
		JWTIssuer: cfg.JWTIssuer,
		Logger:    logger,
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.Int("port", cfg.HTTPPort))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
