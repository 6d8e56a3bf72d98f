package event

import (
	"log/slog"

	"github.com/viant/philo/service/messaging/memory"
)

type Option func(s *Service)

// WithQueueConfig sets the memory queue configuration
func WithQueueConfig(config memory.Config) Option {
	return func(s *Service) {
		s.queueConfig = config
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithRunID sets the run identifier stamped on every event
func WithRunID(runID string) Option {
	return func(s *Service) {
		s.runID = runID
	}
}
