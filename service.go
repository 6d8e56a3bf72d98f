package philo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/viant/afs"
	"github.com/viant/philo/internal/idgen"
	"github.com/viant/philo/progress"
	"github.com/viant/philo/runtime/philosopher"
	"github.com/viant/philo/runtime/table"
	"github.com/viant/philo/runtime/watchdog"
	"github.com/viant/philo/service/event"
	"github.com/viant/philo/service/messaging/memory"
	"github.com/viant/philo/service/printer"
	"github.com/viant/philo/service/schedule"
	"github.com/viant/philo/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"
)

// ErrAlreadyRunning is returned when Run is called more than once
var ErrAlreadyRunning = errors.New("philo: service already running")

// stallCycles is how many of the schedule's longest cycles a seat may go
// without progress before the watchdog reports it
const stallCycles = 10

// Service seats philosophers at a table and runs them until cancelled
type Service struct {
	config         *Config
	logger         *slog.Logger
	output         io.Writer
	colour         bool
	fs             afs.Service
	schedule       schedule.Schedule
	stateListeners []table.StateListener
	eventHandlers  []func(*event.Event[event.Lifecycle])
	onStall        func(seat int)
	spanExporter   sdktrace.SpanExporter

	runID        string
	table        *table.Table
	events       *event.Service
	printer      *printer.Service
	monitor      *watchdog.Monitor
	tracker      *progress.Progress
	philosophers []*philosopher.Philosopher
	tracing      bool
	running      atomic.Bool
}

// New creates a service
func New(options ...Option) (*Service, error) {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if err := ret.init(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.runID == "" {
		s.runID = idgen.New()
	}
}

func (s *Service) init() error {
	s.ensureBaseSetup()
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := s.initSchedule(); err != nil {
		return err
	}
	if err := s.initTracing(); err != nil {
		return fmt.Errorf("failed to init tracing: %w", err)
	}

	queueConfig := memory.DefaultConfig()
	if s.config.Events.QueueBuffer > 0 {
		queueConfig.QueueBuffer = s.config.Events.QueueBuffer
	}
	s.events = event.New(event.WithRunID(s.runID), event.WithLogger(s.logger), event.WithQueueConfig(queueConfig))
	if s.output != nil {
		s.printer = printer.New(s.output, s.colour)
		s.events.AddHandler(s.printer.Handle)
	}
	for _, handler := range s.eventHandlers {
		s.events.AddHandler(handler)
	}

	s.tracker = progress.New(s.runID, s.config.Seats, nil)
	var err error
	s.table, err = table.New(s.config.Seats,
		table.WithStateListener(s.stateListeners...),
		table.WithWaitListener(s.waiting))
	if err != nil {
		return err
	}
	s.monitor = watchdog.New(s.table, s.config.Seats, s.watchdogConfig(),
		watchdog.WithLogger(s.logger),
		watchdog.WithStallHandler(func(seat int, _ time.Duration) {
			if s.onStall != nil {
				s.onStall(seat)
			}
		}))

	for seat := 0; seat < s.config.Seats; seat++ {
		p, err := philosopher.New(seat, s.table, s.schedule,
			philosopher.WithEmitter(s.events),
			philosopher.WithMonitor(s.monitor),
			philosopher.WithLogger(s.logger))
		if err != nil {
			return err
		}
		s.philosophers = append(s.philosophers, p)
	}
	return nil
}

func (s *Service) initTracing() error {
	tracingConfig := s.config.Tracing
	switch {
	case s.spanExporter != nil:
		if err := tracing.InitWithExporter(tracingConfig.ServiceName, tracingConfig.ServiceVersion, s.spanExporter); err != nil {
			return err
		}
	case tracingConfig.File != "":
		if err := tracing.Init(tracingConfig.ServiceName, tracingConfig.ServiceVersion, tracingConfig.File); err != nil {
			return err
		}
	default:
		return nil
	}
	s.tracing = true
	return nil
}

func (s *Service) initSchedule() error {
	if s.schedule != nil {
		return nil
	}
	if URL := s.config.Script; URL != "" {
		script, err := schedule.Load(context.Background(), s.fs, URL)
		if err != nil {
			return err
		}
		s.schedule = script
		return nil
	}
	random, err := schedule.NewRandom(s.config.Seats, s.config.Schedule)
	if err != nil {
		return err
	}
	s.schedule = random
	return nil
}

func (s *Service) watchdogConfig() watchdog.Config {
	ret := watchdog.Config{
		PollingInterval: s.config.Watchdog.PollingInterval,
		StallAfter:      s.config.Watchdog.StallAfter,
	}
	if ret.StallAfter == 0 {
		if cycle, ok := s.schedule.(schedule.MaxCycle); ok && cycle.MaxCycle() > 0 {
			ret.StallAfter = stallCycles * cycle.MaxCycle()
		}
	}
	return ret
}

// waiting runs on the philosopher goroutine each time it blocks for forks
func (s *Service) waiting(seat int) {
	if err := s.events.Emit(context.Background(), seat, event.TypeWaitingForForks, event.Lifecycle{}); err != nil {
		s.logger.Debug("failed to emit event", "seat", seat, "error", err)
	}
	s.tracker.Update(progress.Delta{Seat: seat, Waits: 1})
}

// RunID returns the run identifier
func (s *Service) RunID() string {
	return s.runID
}

// Table returns the dining table
func (s *Service) Table() *table.Table {
	return s.table
}

// Progress returns a snapshot of the run counters
func (s *Service) Progress() progress.Progress {
	return s.tracker.Snapshot()
}

// Stalled returns seats the watchdog currently considers stalled
func (s *Service) Stalled() []int {
	return s.monitor.Stalled()
}

// Run runs every philosopher until ctx is done, then flushes pending status
// lines.  Cancellation is not an error.
func (s *Service) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	s.logger.Info("philosophers seated", "runID", s.runID, "seats", s.config.Seats)
	// the listener outlives ctx so that events emitted while unwinding are printed
	s.events.Start(context.Background())

	ctx = progress.WithTracker(ctx, s.tracker)
	watchdogCtx, stopWatchdog := context.WithCancel(ctx)
	go s.monitor.Start(watchdogCtx)

	group, groupCtx := errgroup.WithContext(ctx)
	for _, p := range s.philosophers {
		group.Go(func() error {
			return p.Run(groupCtx)
		})
	}
	err := group.Wait()
	stopWatchdog()

	if cErr := s.events.Close(); cErr != nil && err == nil {
		err = cErr
	}
	if s.tracing {
		if tErr := tracing.Shutdown(context.Background()); tErr != nil {
			s.logger.Warn("failed to flush traces", "error", tErr)
		}
	}
	snapshot := s.tracker.Snapshot()
	s.logger.Info("philosophers left",
		"runID", s.runID,
		"meals", snapshot.Meals,
		"mealsBySeat", snapshot.MealsBySeat,
		"waits", snapshot.Waits,
		"elapsed", time.Since(snapshot.StartedAt))
	return err
}
