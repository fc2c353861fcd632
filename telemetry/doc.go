// Package telemetry tracks per-run counters using VictoriaMetrics/metrics
// and renders them as a human-readable summary for the CLI's final log
// line. It does not expose an HTTP /metrics endpoint; the router is a batch
// tool, not a long-running service.
package telemetry
