package event

import (
	"context"
	"errors"
	"log/slog"

	"github.com/viant/philo/service/messaging"
)

// Listener drains a publisher on a single goroutine and hands every event to
// the handler in consumption order.
type Listener[T any] struct {
	publisher *Publisher[T]
	handler   func(*Event[T])
	logger    *slog.Logger
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewListener[T any](publisher *Publisher[T], handler func(*Event[T]), logger *slog.Logger) *Listener[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Listener[T]{
		publisher: publisher,
		handler:   handler,
		logger:    logger,
		done:      make(chan struct{}),
	}
}

// Start consumes events until ctx is done, Stop is called or the queue is
// closed and drained.
func (l *Listener[T]) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)
	go func() {
		defer close(l.done)
		for {
			event, err := l.publisher.Consume(ctx)
			if err != nil {
				if errors.Is(err, messaging.ErrClosed) || ctx.Err() != nil {
					return
				}
				l.logger.Error("failed to consume event", "error", err)
				continue
			}
			if event != nil {
				l.handler(event)
			}
		}
	}()
}

// Stop cancels consumption without draining pending events
func (l *Listener[T]) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
}

// Done is closed once the listener goroutine exits
func (l *Listener[T]) Done() <-chan struct{} {
	return l.done
}
