// internal/loop/loop.go
package loop

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go-core-defense/internal/app"
	"go-core-defense/internal/config"
)

// ErrStopped is returned by Submit once Run has returned.
var ErrStopped = errors.New("loop stopped")

type request struct {
	cmd   app.Command
	reply chan app.Result
}

// Loop owns a Game and drives it at a fixed tick rate from one goroutine.
// Commands submitted from other goroutines are applied between ticks.
type Loop struct {
	game          *app.Game
	tickInterval  time.Duration
	snapshotEvery int64

	requests chan request
	done     chan struct{}
	latest   atomic.Pointer[app.Snapshot]

	mu     sync.Mutex
	nextID int
	subs   map[int]chan *app.Snapshot

	log *slog.Logger
}

type Option func(*Loop)

// WithTickInterval overrides the 60 Hz tick.
func WithTickInterval(d time.Duration) Option {
	return func(l *Loop) { l.tickInterval = d }
}

// WithSnapshotEvery publishes a snapshot every n ticks.
func WithSnapshotEvery(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.snapshotEvery = int64(n)
		}
	}
}

func New(game *app.Game, opts ...Option) *Loop {
	l := &Loop{
		game:          game,
		tickInterval:  time.Second / config.TickRate,
		snapshotEvery: 1,
		requests:      make(chan request),
		done:          make(chan struct{}),
		subs:          make(map[int]chan *app.Snapshot),
		log:           slog.With("component", "loop"),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.publish()
	return l
}

// Run ticks the game until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	ticker := time.NewTicker(l.tickInterval)
	defer ticker.Stop()
	l.log.Info("Loop started", "tick", l.tickInterval, "snapshot_every", l.snapshotEvery)

	for {
		select {
		case <-ctx.Done():
			l.log.Info("Loop stopped", "frame", l.game.Frame())
			return ctx.Err()
		case req := <-l.requests:
			res := l.game.Apply(req.cmd)
			l.publish()
			req.reply <- res
		case <-ticker.C:
			l.game.Update()
			if l.game.Frame()%l.snapshotEvery == 0 {
				l.publish()
			}
		}
	}
}

// Submit queues a command for the next gap between ticks and waits for its result.
func (l *Loop) Submit(ctx context.Context, cmd app.Command) (app.Result, error) {
	req := request{cmd: cmd, reply: make(chan app.Result, 1)}
	select {
	case l.requests <- req:
	case <-ctx.Done():
		return app.Result{}, ctx.Err()
	case <-l.done:
		return app.Result{}, ErrStopped
	}
	select {
	case res := <-req.reply:
		return res, nil
	case <-ctx.Done():
		return app.Result{}, ctx.Err()
	}
}

// Latest returns the most recently published snapshot.
func (l *Loop) Latest() *app.Snapshot {
	return l.latest.Load()
}

// Subscribe returns a channel receiving published snapshots. A slow reader
// only sees the newest one. cancel must be called to release the channel.
func (l *Loop) Subscribe() (<-chan *app.Snapshot, func()) {
	ch := make(chan *app.Snapshot, 1)
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.subs[id] = ch
	l.mu.Unlock()

	if s := l.latest.Load(); s != nil {
		ch <- s
	}
	cancel := func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}
	return ch, cancel
}

func (l *Loop) publish() {
	s := l.game.Snapshot()
	l.latest.Store(&s)

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ch := range l.subs {
		select {
		case ch <- &s:
		default:
			// выбросить устаревший снимок и положить свежий
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- &s:
			default:
			}
		}
	}
}
