// Package philosopher runs the actor loop of a single philosopher:
//
//	think -> enter table -> hungry -> acquire forks -> eat
//	      -> thinking -> release forks -> leave table -> think ...
//
// The loop only stops when its context is done; cancellation is observed at
// every suspension point and whatever the philosopher holds at that moment
// (state, forks, admission permit) is given back before Run returns.
package philosopher

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/viant/philo/internal/clock"
	"github.com/viant/philo/model"
	"github.com/viant/philo/progress"
	"github.com/viant/philo/runtime/table"
	"github.com/viant/philo/service/event"
	"github.com/viant/philo/service/schedule"
	"github.com/viant/philo/tracing"
)

// Emitter publishes lifecycle events
type Emitter interface {
	Emit(ctx context.Context, seat int, eventType event.Type, data event.Lifecycle) error
}

// Monitor records philosopher progress
type Monitor interface {
	Touch(seat int)
}

// Philosopher represents a single actor seated at a table
type Philosopher struct {
	seat     int
	table    *table.Table
	schedule schedule.Schedule
	emitter  Emitter
	monitor  Monitor
	logger   *slog.Logger
	meals    atomic.Int64
}

// New creates a philosopher for seat
func New(seat int, aTable *table.Table, aSchedule schedule.Schedule, opts ...Option) (*Philosopher, error) {
	if _, err := aTable.Seat(seat); err != nil {
		return nil, err
	}
	if aSchedule == nil {
		return nil, errors.New("philosopher: schedule is required")
	}
	ret := &Philosopher{
		seat:     seat,
		table:    aTable,
		schedule: aSchedule,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret, nil
}

// Seat returns the philosopher seat
func (p *Philosopher) Seat() int {
	return p.seat
}

// Meals returns number of meals started so far; it is safe to call while
// Run is in progress
func (p *Philosopher) Meals() int {
	return int(p.meals.Load())
}

// Run cycles through the lifecycle until ctx is done.  It returns nil on
// cancellation.
func (p *Philosopher) Run(ctx context.Context) error {
	for {
		if err := p.think(ctx); err != nil {
			return p.stopped(err)
		}
		if err := p.dine(ctx); err != nil {
			return p.stopped(err)
		}
	}
}

func (p *Philosopher) stopped(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		p.logger.Debug("philosopher left", "seat", p.seat, "meals", p.Meals())
		return nil
	}
	return err
}

func (p *Philosopher) think(ctx context.Context) error {
	duration := p.schedule.Think(p.seat)
	p.emit(ctx, event.TypeStartsThinking, event.Lifecycle{Meal: p.Meals(), Duration: duration})
	if err := clock.Sleep(ctx, duration); err != nil {
		return err
	}
	p.emit(ctx, event.TypeFinishesThinking, event.Lifecycle{Meal: p.Meals()})
	return nil
}

func (p *Philosopher) dine(ctx context.Context) (err error) {
	ctx, span := tracing.StartSpan(ctx, "philosopher.dine")
	span.WithInt("seat", p.seat).WithInt("meal", p.Meals()+1)
	defer func() { tracing.EndSpan(span, err) }()

	requested := clock.Now()
	if err = p.table.EnterTable(ctx, p.seat); err != nil {
		return err
	}
	defer p.table.LeaveTable(p.seat)
	span.AddEvent("admitted")

	p.setState(ctx, model.StateThinking, model.StateHungry)
	p.emit(ctx, event.TypeHungry, event.Lifecycle{Meal: p.Meals()})

	if err = p.table.AcquireForks(ctx, p.seat); err != nil {
		p.setState(ctx, model.StateHungry, model.StateThinking)
		return err
	}
	waited := clock.Since(requested)
	span.WithInt("wait.ms", int(waited.Milliseconds()))
	p.emit(ctx, event.TypePickedUpForks, event.Lifecycle{Meal: p.Meals(), Duration: waited})

	p.setState(ctx, model.StateHungry, model.StateEating)
	p.meals.Add(1)
	duration := p.schedule.Eat(p.seat)
	p.emit(ctx, event.TypeStartsEating, event.Lifecycle{Meal: p.Meals(), Duration: duration})
	err = clock.Sleep(ctx, duration)

	// neighbours must observe a non-eating state as soon as the forks are free
	p.setState(ctx, model.StateEating, model.StateThinking)
	p.table.ReleaseForks(p.seat)
	progress.UpdateCtx(ctx, progress.Delta{Seat: p.seat, Meals: 1})
	return err
}

func (p *Philosopher) setState(ctx context.Context, from, to model.State) {
	p.table.SetState(p.seat, to)
	progress.UpdateCtx(ctx, stateDelta(p.seat, from, to))
	if p.monitor != nil {
		p.monitor.Touch(p.seat)
	}
}

func stateDelta(seat int, from, to model.State) progress.Delta {
	delta := progress.Delta{Seat: seat}
	for state, sign := range map[model.State]int{from: -1, to: 1} {
		switch state {
		case model.StateThinking:
			delta.Thinking += sign
		case model.StateHungry:
			delta.Hungry += sign
		case model.StateEating:
			delta.Eating += sign
		}
	}
	return delta
}

func (p *Philosopher) emit(ctx context.Context, eventType event.Type, data event.Lifecycle) {
	if p.emitter == nil {
		return
	}
	if err := p.emitter.Emit(context.WithoutCancel(ctx), p.seat, eventType, data); err != nil {
		p.logger.Debug("failed to emit event", "seat", p.seat, "event", eventType, "error", err)
	}
}
