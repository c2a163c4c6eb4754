// Package leaderboardrouter wires the leaderboard handlers into a watermill
// router over the shared event bus.
package leaderboardrouter

import (
	"context"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Shore-Tour-Club/golf-tracker/app/eventbus"
	leaderboardhandlers "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/infrastructure/handlers"
	roundevents "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/domain/events"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/utils"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// LeaderboardRouter owns the module's subscription side.
type LeaderboardRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     eventbus.EventBus
	publisher      message.Publisher
	metricsBuilder *metrics.PrometheusMetricsBuilder
}

// NewLeaderboardRouter creates a new instance of the router. The publisher is
// wrapped so result messages route to the topic stamped in their metadata.
func NewLeaderboardRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	prometheusRegistry *prometheus.Registry,
) *LeaderboardRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}

	return &LeaderboardRouter{
		logger:         logger,
		Router:         router,
		subscriber:     subscriber,
		publisher:      newResultPublisher(publisher),
		metricsBuilder: metricsBuilder,
	}
}

// Configure sets up the middlewares and registers all module-specific event handlers.
func (r *LeaderboardRouter) Configure(ctx context.Context, handlers leaderboardhandlers.Handlers) error {
	if r.metricsBuilder != nil {
		r.logger.Info("Adding Prometheus router metrics middleware for Leaderboard")
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		utils.CommonMetadataMiddleware("leaderboard"),
		middleware.Recoverer,
	)

	return r.RegisterHandlers(ctx, handlers)
}

// RegisterHandlers binds specific event topics to their corresponding handler logic.
func (r *LeaderboardRouter) RegisterHandlers(ctx context.Context, handlers leaderboardhandlers.Handlers) error {
	r.logger.InfoContext(ctx, "Registering Leaderboard Event Handlers")

	// The publish topic is blank on purpose: each produced message names its
	// own topic in metadata and the result publisher routes on it.
	r.Router.AddHandler(
		"leaderboard."+roundevents.RoundScoresSubmitted,
		roundevents.RoundScoresSubmitted,
		r.subscriber,
		"",
		r.publisher,
		handlers.HandleRoundScoresSubmitted,
	)

	return nil
}

// Close stops the router and cleans up resources.
func (r *LeaderboardRouter) Close() error {
	return r.Router.Close()
}
