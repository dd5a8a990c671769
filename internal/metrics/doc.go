// Package metrics records configuration resolve outcomes.
//
// Components receive a Recorder; NoopRecorder is the default so callers never
// need nil checks. The watch command swaps in a PrometheusRecorder and serves
// its registry through HTTPHandler.
package metrics
