package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	v1 "github.com/pandamaske/biibii-sub002/internal/api/rest/v1"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
)

// DefaultPollInterval is how often live data is refreshed when no interval is given
const DefaultPollInterval = 30 * time.Second

// PollState is what subscribers of a Poller see. Data keeps the last
// successful result when a later fetch fails.
type PollState[T any] struct {
	Data      T
	Loading   bool
	Err       error
	UpdatedAt time.Time
}

// FetchFunc loads one result
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Poller runs fetch immediately, then on every interval and on every Trigger,
// publishing the results to State.
type Poller[T any] struct {
	fetch    FetchFunc[T]
	interval time.Duration
	state    *Store[PollState[T]]
	trigger  chan struct{}
	logger   logger.Logger
	now      func() time.Time

	runMu   sync.Mutex
	running bool
}

// NewPoller creates a Poller. A non-positive interval falls back to DefaultPollInterval.
func NewPoller[T any](fetch FetchFunc[T], interval time.Duration, logger logger.Logger) *Poller[T] {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller[T]{
		fetch:    fetch,
		interval: interval,
		state:    NewStore(PollState[T]{}),
		trigger:  make(chan struct{}, 1),
		logger:   logger,
		now:      time.Now,
	}
}

// NewLiveDataPoller polls the live data of babyID through c
func NewLiveDataPoller(c *Client, babyID, tz string, interval time.Duration, logger logger.Logger) *Poller[*v1.LiveDataResponse] {
	return NewPoller(func(ctx context.Context) (*v1.LiveDataResponse, error) {
		return c.LiveData(ctx, babyID, tz)
	}, interval, logger)
}

// State exposes the observable poll state
func (p *Poller[T]) State() *Store[PollState[T]] {
	return p.state
}

// Trigger requests an immediate refresh. Requests made while one is pending
// are coalesced.
func (p *Poller[T]) Trigger() {
	select {
	case p.trigger <- struct{}{}:
	default:
	}
}

// Run polls until ctx is cancelled and returns ctx.Err()
func (p *Poller[T]) Run(ctx context.Context) error {
	p.runMu.Lock()
	if p.running {
		p.runMu.Unlock()
		return fmt.Errorf("poller is already running")
	}
	p.running = true
	p.runMu.Unlock()

	defer func() {
		p.runMu.Lock()
		p.running = false
		p.runMu.Unlock()
	}()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.poll(ctx)
		case <-p.trigger:
			p.poll(ctx)
		}
	}
}

func (p *Poller[T]) poll(ctx context.Context) {
	p.state.Update(func(s PollState[T]) PollState[T] {
		s.Loading = true
		return s
	})

	data, err := p.fetch(ctx)
	if err != nil && ctx.Err() != nil {
		// shutdown, not a failed fetch
		p.state.Update(func(s PollState[T]) PollState[T] {
			s.Loading = false
			return s
		})
		return
	}

	if err != nil {
		p.logger.Warn("Poll failed, keeping previous data: ", err)
		p.state.Update(func(s PollState[T]) PollState[T] {
			s.Loading = false
			s.Err = err
			return s
		})
		return
	}

	p.state.Set(PollState[T]{Data: data, UpdatedAt: p.now()})
}
