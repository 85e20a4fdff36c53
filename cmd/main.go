package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/tradecalc/internal/adapters/http/api"
	"github.com/okian/tradecalc/internal/adapters/http/site"
	"github.com/okian/tradecalc/internal/adapters/http/swagger"
	app "github.com/okian/tradecalc/internal/app"
	"github.com/okian/tradecalc/internal/config"
	"github.com/okian/tradecalc/pkg/logger"
	"github.com/okian/tradecalc/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout               = 10 * time.Second
	writeTimeout              = 10 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	shutdownTimeout           = 30 * time.Second
	nanosecondsPerMillisecond = 1e6
)

func main() {
	// Initialize logging with defaults until the configured format is known
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Get().Error(ctx, "tradecalc exited", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load configuration (defaults -> .env -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat), logger.WithLevel(cfg.LogLevel)); err != nil {
		return err
	}
	log := logger.Named("main")

	// WithLevel keeps info on an unknown name; say so once.
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
	}

	if err := metrics.Init(
		metrics.WithNamespace(cfg.MetricsNamespace),
		metrics.WithRefreshInterval(cfg.MetricsRefresh()),
	); err != nil {
		return err
	}

	svc := app.New(
		app.WithLogger(logger.Named("service")),
		app.WithSessionCapacity(cfg.SessionCapacity),
		app.WithSessionTTL(cfg.SessionTTL()),
		app.WithHandoffCapacity(cfg.HandoffCapacity),
		app.WithHandoffTTL(cfg.HandoffTTL()),
	)
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()

	go startMetricsUpdater(ctx, metrics.Default().RefreshInterval(), svc)

	handler, err := newHandler(ctx, cfg, svc)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- errors.Join(api.ErrServe, err)
		}
		close(serveErr)
	}()

	// Wait for shutdown signal or a failed listener
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
	return nil
}

// newHandler builds the mux with the site, the API docs and the business API.
func newHandler(ctx context.Context, cfg *config.Config, svc *app.Service) (http.Handler, error) {
	mux := http.NewServeMux()

	site.Register(ctx, mux)
	if err := swagger.Register(ctx, mux); err != nil {
		return nil, err
	}

	apiServer := api.NewServer(svc, svc, api.WithMaxBodyBytes(cfg.MaxBodyBytes))
	apiServer.Register(ctx, mux)

	return mux, nil
}

// startMetricsUpdater refreshes runtime and service gauges every interval
// until ctx is done.
func startMetricsUpdater(ctx context.Context, interval time.Duration, svc *app.Service) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var gc gcPauses
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			metrics.UpdateSystemMemoryUsage(m.Alloc)
			metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
			gc.record(&m)
			// GetStats refreshes the session and results gauges.
			_ = svc.GetStats()
		}
	}
}

// gcPauses feeds each collection's pause to the histogram exactly once.
type gcPauses struct {
	seen uint32
}

// record observes the pauses of collections finished since the last call.
// MemStats keeps the most recent 256 pauses; older ones are skipped.
func (g *gcPauses) record(m *runtime.MemStats) {
	n := m.NumGC - g.seen
	if n > uint32(len(m.PauseNs)) {
		n = uint32(len(m.PauseNs))
	}
	for i := uint32(0); i < n; i++ {
		pause := m.PauseNs[(m.NumGC-i+255)%256]
		metrics.RecordSystemGCPauseTime(float64(pause) / nanosecondsPerMillisecond)
	}
	g.seen = m.NumGC
}
