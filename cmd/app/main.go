package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/MindQuest_Go/internal/bootstrap"
	"github.com/osse101/MindQuest_Go/internal/config"
	"github.com/osse101/MindQuest_Go/internal/database"
	"github.com/osse101/MindQuest_Go/internal/database/postgres"
	"github.com/osse101/MindQuest_Go/internal/progression"
	"github.com/osse101/MindQuest_Go/internal/scheduler"
	"github.com/osse101/MindQuest_Go/internal/server"
	"github.com/osse101/MindQuest_Go/internal/worker"
)

const (
	shutdownTimeout      = 30 * time.Second
	workerQueueSize      = 16
	rebalanceJobName     = "daily-rebalance"
	rebalancePoolWorkers = 1
)

// @title MindQuest Progression API
// @version 1.0
// @description Player and companion leveling, crystal growth, resonance events and reward rebalancing.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		log.Fatalf("mindquest: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, database.PoolConfig{
		URL:             cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, dbPool); err != nil {
		return err
	}

	engine, err := bootstrap.InitializeEngine(cfg.Engine)
	if err != nil {
		return err
	}

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}
	notifier, err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: eventBus,
		Config:   cfg,
	})
	if err != nil {
		return err
	}

	repo := postgres.NewProgressionRepository(dbPool)
	progressionService := progression.NewService(repo, engine, publisher, cfg.Engine.ServiceConfig())

	pool := worker.NewPool(ctx, rebalancePoolWorkers, workerQueueSize)
	pool.Start()

	rebalance := worker.NewRebalanceJob(progressionService, cfg.Engine.RebalanceWorkers)
	sched := scheduler.New(ctx, pool)
	if err := sched.ScheduleCron(cfg.Engine.RebalanceSchedule, rebalanceJobName, rebalance); err != nil {
		return err
	}
	sched.Start()
	slog.Info("Rebalance scheduled", "schedule", cfg.Engine.RebalanceSchedule, "next", sched.Next())

	srv, err := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}, dbPool, progressionService)
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		Notifier:           notifier,
		ResilientPublisher: publisher,
	})
	return nil
}
