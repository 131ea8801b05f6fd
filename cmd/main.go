package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Yvelin-officiel/Quanban/internal/api/kanban_api"
	"github.com/Yvelin-officiel/Quanban/internal/api/middlewares"
	"github.com/Yvelin-officiel/Quanban/internal/config"
	"github.com/Yvelin-officiel/Quanban/internal/repository/kanban_repository"
	"github.com/Yvelin-officiel/Quanban/internal/services/kanban_services"
)

func newLogger(levelStr string) *zap.Logger {
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, _ := cfg.Build()
	return logger
}

func setupCORS(cfg *config.Config, router http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return c.Handler(router)
}

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx := context.Background()

	selector := kanban_repository.NewSelector(ctx, cfg, logger)
	defer selector.Close()
	if selector.IsFallback() {
		logger.Warn("running in fallback mode, data will not survive a restart")
	}

	boardService := kanban_services.NewBoardService(selector)
	boardHandler := kanban_api.NewBoardHandler(boardService)

	columnService := kanban_services.NewColumnService(selector)
	columnHandler := kanban_api.NewColumnHandler(columnService)

	taskService := kanban_services.NewTaskService(selector)
	taskHandler := kanban_api.NewTaskHandler(taskService)

	healthHandler := kanban_api.NewHealthHandler(selector)

	r := mux.NewRouter()
	r.Use(middlewares.RequestLogger(logger))

	boardHandler.BoardRoutes(r)
	columnHandler.ColumnRoutes(r)
	taskHandler.TaskRoutes(r)
	healthHandler.HealthRoutes(r)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: setupCORS(cfg, r),
	}

	go func() {
		logger.Info("starting HTTP server", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("shutting down", zap.String("signal", sig.String()))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
}
