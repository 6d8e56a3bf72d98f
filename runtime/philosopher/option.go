package philosopher

import "log/slog"

// Option represents a philosopher option
type Option func(p *Philosopher)

// WithEmitter sets the lifecycle event emitter
func WithEmitter(emitter Emitter) Option {
	return func(p *Philosopher) {
		p.emitter = emitter
	}
}

// WithMonitor sets the progress monitor touched on every state change
func WithMonitor(monitor Monitor) Option {
	return func(p *Philosopher) {
		p.monitor = monitor
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(logger *slog.Logger) Option {
	return func(p *Philosopher) {
		p.logger = logger
	}
}
