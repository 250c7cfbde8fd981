package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/280205/Mgnrega-Website/infrastructure/cache"
	"github.com/280205/Mgnrega-Website/infrastructure/database/postgres"
	"github.com/280205/Mgnrega-Website/infrastructure/integrator/datagov"
	"github.com/280205/Mgnrega-Website/infrastructure/integrator/datagov/datagovclient"
	"github.com/280205/Mgnrega-Website/infrastructure/repository"
	"github.com/280205/Mgnrega-Website/internal/api"
	"github.com/280205/Mgnrega-Website/internal/config"
	"github.com/280205/Mgnrega-Website/internal/scheduler"
	"github.com/280205/Mgnrega-Website/internal/usecases/locating"
	"github.com/280205/Mgnrega-Website/internal/usecases/performing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	cacheClient := redisCache(ctx, cfg.Redis)

	districtRepo := repository.NewDistrictRepository(pgConn)
	performanceRepo := repository.NewPerformanceRepository(pgConn)
	syncLogRepo := repository.NewSyncLogRepository(pgConn)

	dataGovClient := datagovclient.NewClient(cfg)
	employmentIntegrator := datagov.New(cfg, dataGovClient)

	performanceService := performing.NewService(districtRepo, performanceRepo, cacheClient)
	locatorService := locating.NewService(districtRepo)

	employmentSyncService := scheduler.NewEmploymentSyncService(
		districtRepo,
		performanceRepo,
		syncLogRepo,
		employmentIntegrator,
		cfg,
	)

	if err := employmentSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start employment sync scheduler")
	} else {
		logrus.Info("employment sync scheduler started")
	}

	server, err := api.New(
		cfg,
		pgConn,
		cacheClient,
		performanceService,
		locatorService,
		employmentSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}

// redisCache connects to Redis, degrading to the disabled cache when it
// is unreachable; read paths then serve from the database only.
func redisCache(ctx context.Context, redisConfig config.Redis) cache.Cache {
	client := cache.NewRedisCache(redisConfig)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx); err != nil {
		logrus.WithError(err).Warn("Redis unreachable, running without cache")
		return cache.Disabled{}
	}

	logrus.Info("Redis connection established")
	return client
}
