package metrics

import "time"

// Outcome labels a single resolve attempt.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeInvalid Outcome = "invalid" // document parsed but failed validation
	OutcomeError   Outcome = "error"   // file could not be read or parsed
)

// Recorder defines observability hooks for configuration resolution.
type Recorder interface {
	ObserveResolve(d time.Duration, outcome Outcome)
	// IncReload counts watcher-triggered reloads; changed is false when the
	// file changed on disk but normalized to the same configuration.
	IncReload(changed bool)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveResolve(time.Duration, Outcome) {}
func (NoopRecorder) IncReload(bool)                        {}
