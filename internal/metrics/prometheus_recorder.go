package metrics

import (
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	resolveDuration prom.Histogram
	resolveOutcomes *prom.CounterVec
	reloads         *prom.CounterVec
	lastSuccess     prom.Gauge
}

// NewPrometheusRecorder constructs and registers the sitecfg metrics on reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		resolveDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "sitecfg",
			Name:      "resolve_duration_seconds",
			Help:      "Time to load and resolve the site configuration",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5},
		}),
		resolveOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitecfg",
			Name:      "resolve_outcomes_total",
			Help:      "Resolve attempts by outcome",
		}, []string{"outcome"}),
		reloads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitecfg",
			Name:      "reloads_total",
			Help:      "Watcher-triggered reloads by whether the resolved configuration changed",
		}, []string{"changed"}),
		lastSuccess: prom.NewGauge(prom.GaugeOpts{
			Namespace: "sitecfg",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful resolve",
		}),
	}
	reg.MustRegister(pr.resolveDuration, pr.resolveOutcomes, pr.reloads, pr.lastSuccess)
	return pr
}

func (p *PrometheusRecorder) ObserveResolve(d time.Duration, outcome Outcome) {
	if p == nil {
		return
	}
	p.resolveDuration.Observe(d.Seconds())
	p.resolveOutcomes.WithLabelValues(string(outcome)).Inc()
	if outcome == OutcomeSuccess {
		p.lastSuccess.SetToCurrentTime()
	}
}

func (p *PrometheusRecorder) IncReload(changed bool) {
	if p == nil {
		return
	}
	p.reloads.WithLabelValues(strconv.FormatBool(changed)).Inc()
}
