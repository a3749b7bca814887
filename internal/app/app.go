package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atelierhub/atelier-orders/internal/config"
	"github.com/atelierhub/atelier-orders/internal/logger"
	"github.com/atelierhub/atelier-orders/internal/network/router"
	"github.com/atelierhub/atelier-orders/internal/storage"
	"github.com/atelierhub/atelier-orders/internal/worker"
)

func Run(config config.Config, store storage.Storage) {

	router := router.NewRouter(config, store)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}
	// Создание и запуск воркера контроля сроков
	watcher := worker.NewDeadlineWatcher(router.Orders, config.Watcher)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watcher.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting server config:", config,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	watcher.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
