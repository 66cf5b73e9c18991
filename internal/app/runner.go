package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"nhl-watchability-service/internal/config"
	"nhl-watchability-service/internal/logging"
	"nhl-watchability-service/internal/metrics"
	"nhl-watchability-service/internal/output"
	"nhl-watchability-service/internal/providers"
	"nhl-watchability-service/internal/providers/fixture"
	"nhl-watchability-service/internal/providers/nhle"
	"nhl-watchability-service/internal/rank"
	"nhl-watchability-service/internal/report"
	"nhl-watchability-service/internal/schedule"
)

var metricsSetup = metrics.Setup

const shutdownTimeout = 5 * time.Second

// Runner wires the full single-pass pipeline: warm the cache, assemble the
// per-timezone leaderboard, print the summary, and optionally persist it.
type Runner struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	metricsServer *http.Server
	metricsStop   func(context.Context) error
	warmer        *schedule.Warmer
	aggregator    *rank.Aggregator
	summary       *report.Summary
	results       *output.Writer
	now           func() time.Time
}

// New constructs a runner with default provider wiring.
func New(cfg config.Config, logger *slog.Logger) *Runner {
	return newRunnerWithProvider(cfg, logger, buildProvider(cfg, logger))
}

func newRunnerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.ScheduleProvider) *Runner {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	cache := schedule.NewCache(provider, logger, recorder, len(cfg.Roster))
	warmer := schedule.NewWarmer(cache, cfg.Roster, cfg.TeamConcurrency, logger)
	ranker := rank.NewRanker(cache, cfg.Roster, cfg.Windows, cfg.TeamConcurrency, logger)
	aggregator := rank.NewAggregator(ranker, cfg.TimezoneConcurrency, logger, recorder)

	var results *output.Writer
	if cfg.ResultsPath != "" {
		results = output.NewWriter(cfg.ResultsPath)
	}

	return &Runner{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		warmer:        warmer,
		aggregator:    aggregator,
		summary:       report.NewSummary(os.Stdout, true),
		results:       results,
		now:           time.Now,
	}
}

func buildProvider(cfg config.Config, logger *slog.Logger) providers.ScheduleProvider {
	var base providers.ScheduleProvider
	switch cfg.Provider {
	case config.ProviderFixture:
		base = fixture.New()
	default:
		base = nhle.NewClient(nhle.Config{
			BaseURL:    cfg.NHLE.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.NHLE.HTTPTimeout},
		})
	}
	return providers.NewRetryingProvider(base, logger, cfg.FetchRetryAttempts, cfg.FetchRetryBackoff)
}

// Run executes one analysis pass. Individual team or timezone failures are
// logged and absorbed; Run only returns an error when the context is
// cancelled before the leaderboard is assembled.
func (r *Runner) Run(ctx context.Context) error {
	r.startMetrics()
	defer r.shutdownMetrics()

	start := r.now()
	if err := r.warmer.Warm(ctx); err != nil {
		return err
	}

	board := r.aggregator.Aggregate(ctx, r.cfg.TopN)
	if err := ctx.Err(); err != nil {
		return err
	}

	r.summary.Print(board)

	if r.results != nil {
		if err := r.results.WriteLeaderboard(board, r.now()); err != nil {
			logging.Error(r.logger, "results write failed", err)
		}
	}

	logging.Info(r.logger, "analysis complete",
		logging.FieldCount, len(board),
		logging.FieldDurationMS, r.now().Sub(start).Milliseconds(),
	)
	return nil
}

func (r *Runner) startMetrics() {
	if r.metricsServer == nil {
		return
	}
	logging.Info(r.logger, "metrics server starting", slog.String("addr", r.metricsServer.Addr))
	go func() {
		if err := r.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(r.logger, "metrics server failed", "error", err)
		}
	}()
}

func (r *Runner) shutdownMetrics() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if r.metricsStop != nil {
		if err := r.metricsStop(shutdownCtx); err != nil {
			logging.Warn(r.logger, "metrics shutdown failed", "error", err)
		}
	}
	if r.metricsServer != nil {
		if err := r.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(r.logger, "metrics server shutdown failed", "error", err)
		}
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, *http.Server, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var srv *http.Server
	if handler != nil && recCfg.Enabled {
		srv = &http.Server{
			Addr:    ":" + recCfg.Port,
			Handler: handler,
		}
	}
	return rec, srv, shutdown
}
