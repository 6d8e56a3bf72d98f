package philo

import (
	"io"
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/philo/runtime/table"
	"github.com/viant/philo/service/event"
	"github.com/viant/philo/service/schedule"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option represents a Service option
type Option func(s *Service)

// WithConfig sets the configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithOutput sets the status log writer, nil disables the status log
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		s.output = w
	}
}

// WithColour toggles coloured status lines
func WithColour(enabled bool) Option {
	return func(s *Service) {
		s.colour = enabled
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithSchedule overrides the schedule built from the configuration
func WithSchedule(aSchedule schedule.Schedule) Option {
	return func(s *Service) {
		s.schedule = aSchedule
	}
}

// WithFileSystem sets the file system used to load schedule scripts
func WithFileSystem(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithStateListeners registers table state listeners, invoked under the
// table's state mutex in transition order
func WithStateListeners(fns ...table.StateListener) Option {
	return func(s *Service) {
		s.stateListeners = append(s.stateListeners, fns...)
	}
}

// WithEventHandlers registers lifecycle event handlers, invoked on the event
// listener goroutine
func WithEventHandlers(fns ...func(*event.Event[event.Lifecycle])) Option {
	return func(s *Service) {
		s.eventHandlers = append(s.eventHandlers, fns...)
	}
}

// WithStallHandler sets a callback invoked when the watchdog detects a seat
// without progress
func WithStallHandler(fn func(seat int)) Option {
	return func(s *Service) {
		s.onStall = fn
	}
}

// WithSpanExporter exports meal spans to exporter instead of the configured
// tracing file
func WithSpanExporter(exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.spanExporter = exporter
	}
}
