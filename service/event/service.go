package event

import (
	"context"
	"log/slog"
	"sync"

	"github.com/viant/philo/service/messaging/memory"
)

// Service publishes philosopher lifecycle events and dispatches them to the
// registered handlers on a single listener goroutine, which preserves the
// per-philosopher event order.
type Service struct {
	runID       string
	queueConfig memory.Config
	logger      *slog.Logger
	publisher   *Publisher[Lifecycle]
	listener    *Listener[Lifecycle]

	mux      sync.RWMutex
	handlers []func(*Event[Lifecycle])
}

func New(opts ...Option) *Service {
	ret := &Service{
		queueConfig: memory.DefaultConfig(),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.publisher = NewPublisher[Lifecycle](memory.NewQueue[Event[Lifecycle]](ret.queueConfig))
	return ret
}

// RunID returns the run identifier
func (s *Service) RunID() string {
	return s.runID
}

// AddHandler registers an event handler
func (s *Service) AddHandler(handler func(*Event[Lifecycle])) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.handlers = append(s.handlers, handler)
}

// Emit publishes a lifecycle event for seat
func (s *Service) Emit(ctx context.Context, seat int, eventType Type, data Lifecycle) error {
	return s.publisher.Publish(ctx, NewEvent(&Context{RunID: s.runID, Seat: seat, EventType: eventType}, data))
}

// Start starts dispatching events to handlers
func (s *Service) Start(ctx context.Context) {
	s.listener = NewListener[Lifecycle](s.publisher, s.dispatch, s.logger)
	s.listener.Start(ctx)
}

func (s *Service) dispatch(event *Event[Lifecycle]) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	for _, handler := range s.handlers {
		handler(event)
	}
}

// Close stops accepting events and waits until every pending event was
// dispatched.
func (s *Service) Close() error {
	err := s.publisher.Close()
	if s.listener != nil {
		<-s.listener.Done()
	}
	return err
}
