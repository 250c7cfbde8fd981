package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/280205/Mgnrega-Website/infrastructure/cache"
	"github.com/280205/Mgnrega-Website/infrastructure/database/postgres"
	"github.com/280205/Mgnrega-Website/internal/api/handler"
	"github.com/280205/Mgnrega-Website/internal/api/handler/router"
	"github.com/280205/Mgnrega-Website/internal/config"
	"github.com/280205/Mgnrega-Website/internal/scheduler"
	"github.com/280205/Mgnrega-Website/internal/usecases/locating"
	"github.com/280205/Mgnrega-Website/internal/usecases/performing"
	"github.com/280205/Mgnrega-Website/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	conn *postgres.Connection,
	cacheClient cache.Cache,
	performanceService performing.PerformanceReader,
	locatorService locating.Locator,
	syncService *scheduler.EmploymentSyncService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(conn, cacheClient)...),
		router.WithRoutes(handler.Districts(performanceService, locatorService)...),
		router.WithRoutes(handler.Location(locatorService)...),
		router.WithRoutes(handler.Performance(performanceService)...),
		router.WithRoutes(handler.Sync(syncService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithField("timeout", "15s").Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
