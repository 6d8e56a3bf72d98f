package messaging

import (
	"context"
	"errors"
)

// ErrClosed is returned by queue operations after Close
var ErrClosed = errors.New("messaging: queue closed")

// Queue represents an abstract FIFO message queue for any payload type
type Queue[T any] interface {
	// Publish adds a new message with payload to the queue
	Publish(ctx context.Context, t *T) error

	// Consume retrieves a single message from the queue, blocking until one
	// is available, the queue is closed or ctx is done
	Consume(ctx context.Context) (Message[T], error)

	// Close stops accepting messages; pending messages can still be consumed
	Close() error
}

// Message represents a message retrieved from a queue
type Message[T any] interface {
	// T returns the payload of this message
	T() *T

	// Ack acknowledges successful processing of this message
	Ack() error
}
