package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-core-defense/internal/app"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
)

func newTestLoop(t *testing.T) (*Loop, context.CancelFunc, chan error) {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Seed = 1
	tuning.ObstacleCount = 0
	l := New(app.NewGame(tuning), WithTickInterval(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()
	t.Cleanup(cancel)
	return l, cancel, errc
}

func TestSubmitAppliesCommand(t *testing.T) {
	l, _, _ := newTestLoop(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	res, err := l.Submit(ctx, app.Command{Type: app.CmdBuild, X: 30, Z: 0, Tower: defs.TowerCannon})
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK || res.ID == 0 {
		t.Fatalf("result = %+v", res)
	}
	s := l.Latest()
	if s == nil || len(s.Nodes) != 2 {
		t.Fatalf("latest snapshot does not show the tower: %+v", s)
	}

	res, err = l.Submit(ctx, app.Command{Type: app.CmdBuild, X: 1, Z: 0, Tower: defs.TowerCannon})
	if err != nil {
		t.Fatal(err)
	}
	if res.Reason != app.ReasonTooCloseToCore {
		t.Fatalf("result = %+v", res)
	}
}

func TestLoopTicksAndPublishes(t *testing.T) {
	l, _, _ := newTestLoop(t)
	ch, unsubscribe := l.Subscribe()
	defer unsubscribe()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-ch:
			if s.Frame >= 5 {
				return
			}
		case <-deadline:
			t.Fatal("no snapshot past frame 5")
		}
	}
}

func TestSubmitAfterStop(t *testing.T) {
	l, cancel, errc := newTestLoop(t)
	cancel()
	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v", err)
	}
	_, err := l.Submit(context.Background(), app.Command{Type: app.CmdStartWave})
	if !errors.Is(err, ErrStopped) {
		t.Fatalf("Submit after stop = %v, want ErrStopped", err)
	}
}
