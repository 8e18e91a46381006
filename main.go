package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"example.com/inventory-tracker/internal/config"
	"example.com/inventory-tracker/internal/infra/loader"
	"example.com/inventory-tracker/internal/infra/persistence/memory"
	httpapi "example.com/inventory-tracker/internal/interface/http"
	productuc "example.com/inventory-tracker/internal/usecase/product"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	repo := memory.NewProductRepository()
	productSvc := productuc.NewService(repo, logger)

	// The seed file must load before the repository becomes reachable.
	n, err := loader.Load(context.Background(), cfg.ProductsCSV, productSvc)
	if err != nil {
		logger.Error("seed_load_failed", "path", cfg.ProductsCSV, "error", err)
		os.Exit(1)
	}
	logger.Info("seed_loaded", "path", cfg.ProductsCSV, "products", n)

	api := httpapi.NewAPI(httpapi.Dependencies{
		ProductService:    productSvc,
		Logger:            logger,
		HeartbeatInterval: cfg.HeartbeatInterval,
		ClientTimeout:     cfg.ClientTimeout,
		StaticDir:         cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http_listen", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	logger.Info("shutdown_signal", "signal", s.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("http_shutdown_error", "error", err)
	}
	logger.Info("service_stopped")
}
