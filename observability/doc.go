// Package observability wires OpenTelemetry metrics and tracing into unic.
//
// Telemetry is off unless an OTLP endpoint is configured. The pass always
// records through the global providers, which are no-ops until Init installs
// SDK providers:
//
//	shutdown, err := observability.Init(ctx, cfg.Telemetry, "unic", version.Version)
//	defer shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("unic"))
//	metrics.RecordRun(ctx, 3)
package observability
