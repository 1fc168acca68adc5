package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cuongbtq/job-listing-service/internal/api/handler"
	"github.com/cuongbtq/job-listing-service/internal/api/router"
	"github.com/cuongbtq/job-listing-service/internal/api/storage"
	"github.com/cuongbtq/job-listing-service/internal/config"
	"github.com/cuongbtq/job-listing-service/shared/logger"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// A missing .env is normal; the built-in defaults are enough to serve.
	_ = godotenv.Load()

	defaultConfigPath := os.Getenv("JOB_LISTING_CONFIG_PATH")
	if defaultConfigPath == "" {
		defaultConfigPath = "configs/api-service/config.yaml"
	}
	configPath := flag.String("config", defaultConfigPath, "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	appLogger, err := initLogger(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer appLogger.Close()

	appLogger.Debug("Starting API service",
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("environment", cfg.App.Environment),
		slog.String("config", *configPath),
	)

	jobStorage := storage.NewStaticStorage()
	appLogger.Debug("Job catalog loaded", slog.Int("jobs", jobStorage.Count()))

	r := initRouter(cfg, appLogger.Logger, jobStorage)

	addr := cfg.Server.Address()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Bind before announcing so a taken port fails without claiming to be up.
	ln, err := newListener(addr)
	if err != nil {
		appLogger.Error("Server failed to start", slog.Any("error", err))
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	appLogger.Info(fmt.Sprintf("Server running on %s", cfg.Server.PublicURL()))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			appLogger.Error("Server stopped unexpectedly", slog.Any("error", err))
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-quit:
	}

	appLogger.Debug("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown",
			slog.Any("error", err),
		)
		return err
	}

	appLogger.Debug("Server shutdown complete")
	return nil
}

// newListener binds the TCP address the HTTP server will serve on
func newListener(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return ln, nil
}

// initLogger initializes and configures the application logger
func initLogger(cfg *config.LoggingConfig) (*logger.Logger, error) {
	loggerCfg := &logger.Config{
		Level:        cfg.Level,
		Format:       cfg.Format,
		Output:       cfg.Output,
		EnableSource: cfg.EnableCaller,
		TimeFormat:   time.RFC3339,
	}

	return logger.New(loggerCfg)
}

// initRouter initializes the Gin router with all routes and middleware
func initRouter(cfg *config.Config, logger *slog.Logger, jobStorage *storage.Storage) *gin.Engine {
	// Gin's debug mode prints route tables to stdout; keep startup to one line unless debugging.
	if cfg.Logging.Level == "debug" && cfg.App.Environment != "production" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	handlerDeps := &handler.Dependencies{
		Logger:  logger,
		Storage: jobStorage,
		AppName: cfg.App.Name,
	}

	return router.SetupRouter(handlerDeps, router.Options{
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	})
}
