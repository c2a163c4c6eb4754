// Package app assembles the modules into a running process: database, event
// bus, message router, job queue, and HTTP server.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.opentelemetry.io/otel"

	"github.com/Shore-Tour-Club/golf-tracker/api"
	"github.com/Shore-Tour-Club/golf-tracker/app/eventbus"
	courseservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/course/application"
	coursedb "github.com/Shore-Tour-Club/golf-tracker/app/modules/course/infrastructure/repositories"
	golferservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/golfer/application"
	golferdb "github.com/Shore-Tour-Club/golf-tracker/app/modules/golfer/infrastructure/repositories"
	leaderboardservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/application"
	leaderboardevents "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/domain/events"
	leaderboardhandlers "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/infrastructure/handlers"
	leaderboarddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/infrastructure/repositories"
	leaderboardrouter "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/infrastructure/router"
	roundservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/application"
	roundevents "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/domain/events"
	roundhandlers "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/handlers"
	roundqueue "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/queue"
	rounddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	scoreservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/score/application"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/attr"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/observability"
	"github.com/Shore-Tour-Club/golf-tracker/config"
)

// App owns every long-lived component of the process.
type App struct {
	Config   *config.Config
	DB       *bun.DB
	EventBus eventbus.EventBus
	Registry *prometheus.Registry

	RoundService       roundservice.Service
	ScoreService       scoreservice.Service
	LeaderboardService leaderboardservice.Service
	GolferService      golferservice.Service
	CourseService      courseservice.Service
	QueueService       *roundqueue.Service

	Router            *message.Router
	LeaderboardRouter *leaderboardrouter.LeaderboardRouter
	HTTPServer        *http.Server
	MetricsServer     *http.Server

	logger *slog.Logger
}

// NewApp wires every component from configuration. Nothing is started; call
// Run to bring the process up.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	db := bun.NewDB(sqldb, pgdialect.New())
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	bus, err := eventbus.NewNatsEventBus(ctx, cfg.NATS.URL, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	if err := bus.CreateStream(ctx, "round",
		roundevents.RoundCreated,
		roundevents.RoundScoresSubmitted,
		roundevents.RoundSubmissionFailed,
		roundevents.RoundTeeTimeReminder,
	); err != nil {
		bus.Close()
		db.Close()
		return nil, fmt.Errorf("failed to create round stream: %w", err)
	}
	if err := bus.CreateStream(ctx, "leaderboard",
		leaderboardevents.LeaderboardUpdated,
		leaderboardevents.LeaderboardUpdateFailed,
	); err != nil {
		bus.Close()
		db.Close()
		return nil, fmt.Errorf("failed to create leaderboard stream: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewOperationMetrics(registry)
	tracer := otel.Tracer("golf-tracker")

	roundRepo := &rounddb.RoundDBImpl{DB: db}
	leaderboardRepo := &leaderboarddb.LeaderboardDBImpl{DB: db}
	golferRepo := &golferdb.GolferDBImpl{DB: db}
	courseRepo := &coursedb.CourseDBImpl{DB: db}

	rounds := roundservice.NewRoundService(roundRepo, bus, logger, metrics, tracer, db)
	scores := scoreservice.NewScoreService(logger, metrics, tracer)
	leaderboards := leaderboardservice.NewLeaderboardService(
		leaderboardRepo,
		rounds,
		bus,
		logger,
		metrics,
		tracer,
		db,
		leaderboardservice.ParseTiePolicy(cfg.Leaderboard.TiePolicy),
	)
	golfers := golferservice.NewGolferService(golferRepo, logger, metrics, tracer)
	courses := courseservice.NewCourseService(courseRepo, logger, metrics, tracer)

	queue, err := roundqueue.NewService(ctx, db, logger, cfg.Postgres.DSN, metrics, bus)
	if err != nil {
		bus.Close()
		db.Close()
		return nil, fmt.Errorf("failed to initialize round queue: %w", err)
	}

	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		bus.Close()
		db.Close()
		return nil, fmt.Errorf("failed to create message router: %w", err)
	}

	lbRouter := leaderboardrouter.NewLeaderboardRouter(logger, router, bus, bus, registry)
	lbHandlers := leaderboardhandlers.NewLeaderboardHandlers(leaderboards, logger, tracer)
	if err := lbRouter.Configure(ctx, lbHandlers); err != nil {
		bus.Close()
		db.Close()
		return nil, fmt.Errorf("failed to configure leaderboard router: %w", err)
	}

	rHandlers := roundhandlers.NewRoundHandlers(queue, logger)
	router.AddNoPublisherHandler(
		"round."+roundevents.RoundCreated,
		roundevents.RoundCreated,
		bus,
		rHandlers.HandleRoundCreated,
	)

	var auth *api.Authenticator
	if cfg.JWT.Secret != "" {
		auth = api.NewAuthenticator(cfg.JWT.Secret, cfg.JWT.DefaultTTL)
	}
	server := api.NewServer(rounds, scores, leaderboards, golfers, courses, logger, auth)

	app := &App{
		Config:             cfg,
		DB:                 db,
		EventBus:           bus,
		Registry:           registry,
		RoundService:       rounds,
		ScoreService:       scores,
		LeaderboardService: leaderboards,
		GolferService:      golfers,
		CourseService:      courses,
		QueueService:       queue,
		Router:             router,
		LeaderboardRouter:  lbRouter,
		HTTPServer: &http.Server{
			Addr:    cfg.HTTP.Addr,
			Handler: server.Router(),
		},
		logger: logger,
	}

	if cfg.Observability.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		app.MetricsServer = &http.Server{
			Addr:    cfg.Observability.MetricsAddress,
			Handler: mux,
		}
	}

	return app, nil
}

// Run starts the router, the job queue, and the HTTP servers, then blocks
// until the context is canceled or a component fails.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 4)

	go func() {
		a.logger.Info("Starting message router")
		if err := a.Router.Run(ctx); err != nil {
			errCh <- fmt.Errorf("message router stopped: %w", err)
		}
	}()

	if err := a.QueueService.Start(ctx); err != nil {
		return fmt.Errorf("failed to start round queue: %w", err)
	}

	go func() {
		a.logger.Info("Starting HTTP server", attr.String("addr", a.HTTPServer.Addr))
		if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server stopped: %w", err)
		}
	}()

	if a.MetricsServer != nil {
		go func() {
			a.logger.Info("Starting metrics server", attr.String("addr", a.MetricsServer.Addr))
			if err := a.MetricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- fmt.Errorf("metrics server stopped: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Shutdown stops everything in reverse start order.
func (a *App) Shutdown(ctx context.Context) {
	if err := a.HTTPServer.Shutdown(ctx); err != nil {
		a.logger.Error("Error shutting down HTTP server", attr.Error(err))
	}
	if a.MetricsServer != nil {
		if err := a.MetricsServer.Shutdown(ctx); err != nil {
			a.logger.Error("Error shutting down metrics server", attr.Error(err))
		}
	}
	if err := a.QueueService.Stop(ctx); err != nil {
		a.logger.Error("Error stopping round queue", attr.Error(err))
	}
	if err := a.Router.Close(); err != nil {
		a.logger.Error("Error closing message router", attr.Error(err))
	}
	if err := a.EventBus.Close(); err != nil {
		a.logger.Error("Error closing event bus", attr.Error(err))
	}
	if err := a.DB.Close(); err != nil {
		a.logger.Error("Error closing database", attr.Error(err))
	}
	a.logger.Info("Application shut down")
}
