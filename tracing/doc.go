// Package tracing integrates OpenTelemetry with the dining table so that
// every meal cycle of a philosopher (admission, fork wait, eating, release)
// can be exported as a span.  When tracing is not initialised the global
// no-op provider is used and spans cost next to nothing.
package tracing
