package philo

import (
	"fmt"
	"time"

	"github.com/viant/philo/service/schedule"
)

// DefaultSeats is the number of philosophers seated by the philo binary
const DefaultSeats = 5

// Config is a serialisable representation of the simulation configuration.
// It can be populated from YAML, JSON, flags or environment variables.
type Config struct {
	Seats    int             `json:"seats" yaml:"seats" mapstructure:"seats"`
	Schedule schedule.Config `json:"schedule" yaml:"schedule" mapstructure:"schedule"`
	// Script is an optional URL of a YAML schedule script; when set it
	// replaces the random schedule.
	Script   string         `json:"script,omitempty" yaml:"script,omitempty" mapstructure:"script"`
	Watchdog WatchdogConfig `json:"watchdog" yaml:"watchdog" mapstructure:"watchdog"`
	Events   EventsConfig   `json:"events" yaml:"events" mapstructure:"events"`
	Tracing  TracingConfig  `json:"tracing" yaml:"tracing" mapstructure:"tracing"`
}

type WatchdogConfig struct {
	PollingInterval time.Duration `json:"pollingInterval" yaml:"pollingInterval" mapstructure:"pollingInterval"`
	// StallAfter of zero derives the threshold from the schedule's longest cycle
	StallAfter time.Duration `json:"stallAfter" yaml:"stallAfter" mapstructure:"stallAfter"`
}

type EventsConfig struct {
	QueueBuffer int `json:"queueBuffer" yaml:"queueBuffer" mapstructure:"queueBuffer"`
}

type TracingConfig struct {
	// File receives OpenTelemetry spans; tracing stays disabled when empty
	File           string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
	ServiceName    string `json:"serviceName" yaml:"serviceName" mapstructure:"serviceName"`
	ServiceVersion string `json:"serviceVersion" yaml:"serviceVersion" mapstructure:"serviceVersion"`
}

// DefaultConfig returns a Config populated with the reference behaviour:
// five philosophers thinking 1-6 and eating 1-4 seconds.
func DefaultConfig() *Config {
	return &Config{
		Seats:    DefaultSeats,
		Schedule: schedule.DefaultConfig(),
		Watchdog: WatchdogConfig{
			PollingInterval: time.Second,
		},
		Events: EventsConfig{
			QueueBuffer: 1024,
		},
		Tracing: TracingConfig{
			ServiceName:    "philo",
			ServiceVersion: "0.1.0",
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Seats < 2 {
		return fmt.Errorf("seats must be >= 2, got %d", c.Seats)
	}
	if c.Script == "" {
		if err := c.Schedule.Validate(); err != nil {
			return err
		}
	}
	if c.Watchdog.PollingInterval < 0 || c.Watchdog.StallAfter < 0 {
		return fmt.Errorf("watchdog durations must be >= 0")
	}
	if c.Events.QueueBuffer < 0 {
		return fmt.Errorf("events.queueBuffer must be >= 0")
	}
	return nil
}
