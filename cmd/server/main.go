package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amincahcepu/Remote-Docling/api/handlers"
	"github.com/amincahcepu/Remote-Docling/api/routes"
	"github.com/amincahcepu/Remote-Docling/config"
	"github.com/amincahcepu/Remote-Docling/internal/auth"
	"github.com/amincahcepu/Remote-Docling/internal/engine/docling"
	"github.com/amincahcepu/Remote-Docling/internal/service/convert"
	"github.com/amincahcepu/Remote-Docling/internal/utils/validator"
	"github.com/amincahcepu/Remote-Docling/pkg/logger"
	"github.com/amincahcepu/Remote-Docling/pkg/storage"
	"github.com/amincahcepu/Remote-Docling/pkg/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// init logger
	log, err := logger.NewLogger(
		logger.WithLevel(cfg.LogLevel),
		logger.WithEncoding("json"),
		logger.WithOutputPaths([]string{"stdout", "logs/app.log"}),
		logger.WithInitialFields(map[string]interface{}{
			"service": handlers.ServiceSlug,
			"version": handlers.ServiceVersion,
		}),
	)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	guard := auth.NewGuard(cfg.APIKey, log)
	logStartup(log, cfg, guard)

	// init conversion engine
	eng, err := docling.New(cfg.DoclingBin, log)
	if err != nil {
		log.Fatal("Failed to init docling engine:", logger.Error(err))
	}
	log.Info("Docling engine ready", logger.String("bin", eng.Bin()))

	// init conversion service
	pool := worker.NewPool(cfg.Workers, log)
	converter := convert.NewService(eng, pool, logger.NewContextLogger(log), cfg.ConversionTimeout)

	// init handlers
	uploadValidator := validator.NewUploadValidator(cfg.MaxFileSize)
	store := storage.NewTempStore("", log)
	h := handlers.NewHandlers(guard, uploadValidator, store, converter, log)

	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetupRoutes(r, h, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	// start server
	go func() {
		log.Info("Server starting", logger.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server error:", logger.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForShutdown(quit, log)

	// graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown:", logger.Error(err))
	}
}

// logStartup emits the one-time configuration record.
func logStartup(log logger.Logger, cfg *config.Config, guard *auth.Guard) {
	log.Info("Configuration loaded",
		logger.Int("port", cfg.Port),
		logger.Int("workers", cfg.Workers),
		logger.Float64("max_file_size_mb", cfg.MaxFileSizeMB()),
		logger.Bool("api_key_configured", guard.Enabled()),
		logger.Any("allowed_origins", cfg.AllowedOrigins),
	)
}

// waitForShutdown blocks until a termination signal arrives and logs
// which one it was.
func waitForShutdown(quit <-chan os.Signal, log logger.Logger) os.Signal {
	sig := <-quit
	log.Info("Shutdown signal received", logger.String("signal", sig.String()))
	return sig
}
