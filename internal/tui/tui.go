// internal/tui/tui.go
package tui

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"go-core-defense/internal/app"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/types"
	"go-core-defense/pkg/geom"
)

const statusLines = 2

// Engine is what the terminal client needs from loop.Loop.
type Engine interface {
	Submit(ctx context.Context, cmd app.Command) (app.Result, error)
	Subscribe() (<-chan *app.Snapshot, func())
	Latest() *app.Snapshot
}

// Client — терминальный клиент: курсор в мировых координатах и клавиши.
type Client struct {
	screen tcell.Screen
	engine Engine
	view   Viewport
	cursor geom.Vec2
	status string
	log    *slog.Logger
}

func NewClient(screen tcell.Screen, engine Engine) *Client {
	c := &Client{
		screen: screen,
		engine: engine,
		view:   Viewport{Scale: 1},
		status: "1-5 build  c connect  w wave  s sandbox  u upgrade  x sell  enter click  q quit",
		log:    slog.With("component", "tui"),
	}
	c.resize()
	return c
}

func (c *Client) resize() {
	w, h := c.screen.Size()
	c.view.Width, c.view.Height = w, max(1, h-statusLines)
}

// Run draws snapshots and handles keys until ctx ends or the user quits.
func (c *Client) Run(ctx context.Context) error {
	snapshots, unsubscribe := c.engine.Subscribe()
	defer unsubscribe()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case s := <-snapshots:
			Draw(c.screen, s, c.view, c.cursor, c.status)
		case ev := <-events:
			if !c.handleEvent(ctx, ev) {
				return nil
			}
			if s := c.engine.Latest(); s != nil {
				Draw(c.screen, s, c.view, c.cursor, c.status)
			}
		}
	}
}

func (c *Client) handleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		c.resize()
		c.screen.Sync()
	case *tcell.EventKey:
		return c.handleKey(ctx, ev)
	}
	return true
}

func (c *Client) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	step := 1 / c.view.Scale
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		c.cursor.X -= step
	case tcell.KeyRight:
		c.cursor.X += step
	case tcell.KeyUp:
		c.cursor.Z -= 2 * step
	case tcell.KeyDown:
		c.cursor.Z += 2 * step
	case tcell.KeyEnter:
		c.submit(ctx, c.clickCommand())
	case tcell.KeyEscape:
		c.submit(ctx, app.Command{Type: app.CmdCancel})
	case tcell.KeyRune:
		return c.handleRune(ctx, ev.Rune())
	}
	return true
}

func (c *Client) handleRune(ctx context.Context, r rune) bool {
	switch {
	case r >= '1' && r <= '9':
		if i := int(r - '1'); i < len(defs.TowerOrder) {
			c.submit(ctx, app.Command{Type: app.CmdSelectBuild, Tower: defs.TowerOrder[i]})
		}
	case r == 'c':
		c.submit(ctx, app.Command{Type: app.CmdToggleConnect})
	case r == 'w':
		c.submit(ctx, app.Command{Type: app.CmdStartWave})
	case r == 's':
		c.submit(ctx, app.Command{Type: app.CmdToggleSandbox})
	case r == 'u' || r == 'x':
		if id := c.selected(); id != 0 {
			t := app.CmdUpgrade
			if r == 'x' {
				t = app.CmdSell
			}
			c.submit(ctx, app.Command{Type: t, Node: id})
		}
	case r == '+':
		c.view.Scale = min(4, c.view.Scale*1.25)
	case r == '-':
		c.view.Scale = max(0.25, c.view.Scale/1.25)
	case r == 'q':
		return false
	}
	return true
}

func (c *Client) selected() types.EntityID {
	if s := c.engine.Latest(); s != nil {
		return s.Interaction.Selected
	}
	return 0
}

// clickCommand turns Enter into a node click when the cursor is on a node.
func (c *Client) clickCommand() app.Command {
	s := c.engine.Latest()
	if s != nil && s.Interaction.BuildType == "" {
		pick := app.NodePickRadius + 0.5/c.view.Scale
		for _, n := range s.Nodes {
			if n.Position.Dist(c.cursor) <= pick {
				return app.Command{Type: app.CmdClickNode, Node: n.ID}
			}
		}
	}
	return app.Command{Type: app.CmdClickGround, X: c.cursor.X, Z: c.cursor.Z}
}

func (c *Client) submit(ctx context.Context, cmd app.Command) {
	res, err := c.engine.Submit(ctx, cmd)
	switch {
	case err != nil:
		c.status = err.Error()
		c.log.Warn("Submit failed", "command", cmd.Type, "error", err)
	case !res.OK:
		c.status = string(res.Reason)
	default:
		c.status = string(cmd.Type) + " ok"
	}
}
