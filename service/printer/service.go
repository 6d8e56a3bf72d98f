// Package printer renders philosopher lifecycle events as the status log:
// one line per event, tagged with the philosopher's seat.
package printer

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/viant/philo/service/event"
)

// Service writes lifecycle events to a writer
type Service struct {
	mu      sync.Mutex
	writer  io.Writer
	colours map[event.Type]*color.Color
	lines   int
}

// New creates a printer; colour toggles ANSI colouring per event type
func New(writer io.Writer, colour bool) *Service {
	ret := &Service{
		writer: writer,
		colours: map[event.Type]*color.Color{
			event.TypeStartsThinking:   color.New(color.FgCyan),
			event.TypeFinishesThinking: color.New(color.FgBlue),
			event.TypeHungry:           color.New(color.FgYellow),
			event.TypeWaitingForForks:  color.New(color.FgRed),
			event.TypePickedUpForks:    color.New(color.FgMagenta),
			event.TypeStartsEating:     color.New(color.FgGreen, color.Bold),
		},
	}
	for _, c := range ret.colours {
		if colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return ret
}

// Format returns the status line for an event, without trailing new line
func Format(seat int, eventType event.Type) string {
	return fmt.Sprintf("Philosopher %d %s.", seat, eventType)
}

// Handle prints a single event; it is used as an event.Service handler
func (s *Service) Handle(e *event.Event[event.Lifecycle]) {
	if e == nil || e.Context == nil {
		return
	}
	line := Format(e.Context.Seat, e.Context.EventType)
	if c, ok := s.colours[e.Context.EventType]; ok {
		line = c.Sprint(line)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.writer, line); err == nil {
		s.lines++
	}
}

// Lines returns number of lines written
func (s *Service) Lines() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines
}
