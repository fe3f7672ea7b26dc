package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/TeongTat/travelagentic/internal/app"
	"github.com/TeongTat/travelagentic/internal/config"
	"github.com/TeongTat/travelagentic/internal/grpcapp"
	"github.com/TeongTat/travelagentic/internal/infrastructures/tracing"
	httptransport "github.com/TeongTat/travelagentic/internal/transport/http"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}

	tp, err := tracing.InitTracer("travelagentic", cfg.Jaeger)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	planner, err := app.NewPlanner(ctx, log, cfg)
	if err != nil {
		log.Fatal("failed to build planner", zap.Error(err))
	}

	handler, err := httptransport.NewHandler(log, planner)
	if err != nil {
		log.Fatal("failed to build http handler", zap.Error(err))
	}

	server := &http.Server{
		Addr:         cfg.HTTP.Address(),
		Handler:      httptransport.NewRouter(log, handler),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	log.Info("travelagentic starting",
		zap.String("env", cfg.Env),
		zap.String("http_addr", server.Addr),
		zap.Int("grpc_port", cfg.GRPC.Port),
	)

	errCh := make(chan error, 2)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	var probes *grpcapp.App
	if cfg.GRPC.Port > 0 {
		probes = grpcapp.New(log, cfg.GRPC.Host, cfg.GRPC.Port)
		go func() {
			errCh <- probes.Run()
		}()
	}

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", zap.Error(err))
		}
	}

	if probes != nil {
		probes.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", zap.Error(err))
	}
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
