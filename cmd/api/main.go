package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/srgjo27/tutor_booking/internal/adapter/backend"
	"github.com/srgjo27/tutor_booking/internal/adapter/handler"
	"github.com/srgjo27/tutor_booking/internal/adapter/repository/redisstore"
	"github.com/srgjo27/tutor_booking/internal/core/services"
	"github.com/srgjo27/tutor_booking/internal/core/session"
	"github.com/srgjo27/tutor_booking/internal/platform/cache"
	"github.com/srgjo27/tutor_booking/internal/platform/config"
	"github.com/srgjo27/tutor_booking/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger := logger.NewZapLogger(cfg.Logger.Level, cfg.App.Env)
	defer zapLogger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient, err := cache.NewRedisClient(ctx, cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	backendClient := backend.NewClient(backend.Config{
		BaseURL:           cfg.Backend.BaseURL,
		Timeout:           cfg.Backend.Timeout,
		RequestsPerSecond: cfg.Backend.RequestsPerSecond,
	}, zapLogger)

	draftStore := redisstore.NewDraftStore(redisClient, cfg.Redis.DraftTTL)
	tutorCache := redisstore.NewTutorCache(redisClient, cfg.Redis.TutorTTL)

	bookingService := services.NewBookingService(backendClient, tutorCache, backendClient, draftStore, zapLogger, cfg.Booking.GranularityMinutes)
	sessions := session.NewRegistry(backendClient, cfg.App.SessionTTL, zapLogger)

	// SIGHUP forces every cached identity to be refetched on next use.
	refresh := make(chan struct{}, 1)
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for range hup {
			select {
			case refresh <- struct{}{}:
			default:
			}
		}
	}()

	go sessions.Run(ctx, refresh, time.Minute)

	router := handler.NewRouter(handler.RouterConfig{
		AllowedOrigins: cfg.App.AllowedOrigins,
		RequestsPerMin: cfg.App.RequestsPerMin,
	}, handler.NewBookingHandler(bookingService, zapLogger), sessions, zapLogger)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.Backend.Timeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		zapLogger.Info("server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server startup failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	zapLogger.Info("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("server exiting")
}
