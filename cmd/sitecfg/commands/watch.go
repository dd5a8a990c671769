package commands

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/metrics"
	"git.home.luguber.info/inful/sitecfg/internal/site"
	"git.home.luguber.info/inful/sitecfg/internal/watch"
)

// WatchCmd re-resolves the configuration on every change until interrupted.
type WatchCmd struct {
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9464)"`
	Debounce    time.Duration `default:"500ms" help:"Quiet period before a change is processed"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if w.MetricsAddr != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		srv := startMetricsServer(w.MetricsAddr, reg, g.Logger)
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	r := newReloader(root.Config, recorder, g.Logger)
	if err := r.initial(); err != nil {
		return err
	}

	watcher, err := watch.New(root.Config, r.reload, watch.WithDebounce(w.Debounce))
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	<-ctx.Done()
	g.Logger.Info("Shutdown signal received, stopping watcher")
	return nil
}

func startMetricsServer(addr string, reg *prom.Registry, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.Info("Serving metrics", logfields.Addr(addr))
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", logfields.Error(err))
		}
	}()
	return srv
}

// reloader resolves the file on each change and tracks whether the
// normalized result actually differs from the last good one.
type reloader struct {
	path     string
	recorder metrics.Recorder
	logger   *slog.Logger

	mu       sync.Mutex
	snapshot string
}

func newReloader(path string, recorder metrics.Recorder, logger *slog.Logger) *reloader {
	return &reloader{path: path, recorder: recorder, logger: logger}
}

func (r *reloader) load() (*site.SiteConfig, error) {
	start := time.Now()
	cfg, err := config.Load(r.path)
	outcome := outcomeFor(err)
	r.recorder.ObserveResolve(time.Since(start), outcome)
	if err != nil {
		r.logFailure(err, outcome)
	}
	return cfg, err
}

// initial performs the first resolve. An invalid document is reported but
// does not stop the watch; a missing or unreadable file does.
func (r *reloader) initial() error {
	cfg, err := r.load()
	if err != nil {
		if outcomeFor(err) == metrics.OutcomeInvalid {
			return nil
		}
		return err
	}
	r.mu.Lock()
	r.snapshot = config.Snapshot(cfg)
	r.mu.Unlock()
	r.logger.Info("Configuration valid", logfields.ConfigPath(r.path))
	return nil
}

func (r *reloader) reload(context.Context) {
	cfg, err := r.load()
	if err != nil {
		return
	}
	snap := config.Snapshot(cfg)

	r.mu.Lock()
	changed := snap != r.snapshot
	r.snapshot = snap
	r.mu.Unlock()

	r.recorder.IncReload(changed)
	if changed {
		r.logger.Info("Configuration reloaded", logfields.ConfigPath(r.path))
	} else {
		r.logger.Info("Configuration unchanged after normalization", logfields.ConfigPath(r.path))
	}
}

func (r *reloader) logFailure(err error, outcome metrics.Outcome) {
	attrs := []any{logfields.ConfigPath(r.path), logfields.Outcome(string(outcome)), logfields.Error(err)}
	var cfgErr *site.ConfigError
	if stderrors.As(err, &cfgErr) {
		attrs = append(attrs, logfields.Field(cfgErr.Field))
	}
	r.logger.Error("Configuration rejected", attrs...)
}

func outcomeFor(err error) metrics.Outcome {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	var cfgErr *site.ConfigError
	if stderrors.As(err, &cfgErr) || errors.HasCategory(err, errors.CategoryConfig) {
		return metrics.OutcomeInvalid
	}
	return metrics.OutcomeError
}
