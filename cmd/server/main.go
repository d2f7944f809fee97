package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mergington/internal/activity/handler"
	activitymetrics "mergington/internal/activity/metrics"
	"mergington/internal/activity/service"
	"mergington/internal/activity/store"
	"mergington/internal/platform/config"
	"mergington/internal/platform/httpserver"
	"mergington/internal/platform/logger"
	platformmetrics "mergington/internal/platform/metrics"
	"mergington/pkg/platform/httputil"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal activity packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	activities := store.NewInMemory()
	if err := store.SeedActivities(context.Background(), activities); err != nil {
		log.Error("failed to seed activities", "error", err)
		os.Exit(1)
	}

	svc := service.New(activities, activitymetrics.New())
	h := handler.New(svc, log, platformmetrics.New())

	router := chi.NewRouter()
	h.Register(router)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting activities service", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
