// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-core-defense/internal/app"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/ui"
	"go-core-defense/pkg/render"
)

// GameState — состояние игры
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	snapshot  app.Snapshot
	fontFace  font.Face
	renderer  *render.WorldRenderer
	toolbar   *ui.Toolbar
	infoPanel *ui.InfoPanel
	indicator *ui.StateIndicator
	waveLabel *ui.WaveIndicator
	health    *ui.CoreHealthIndicator
	pause     *ui.PauseButton
	speed     *ui.SpeedButton
	message   string
	msgTimer  int
	log       *slog.Logger
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	face := basicfont.Face7x13
	cam := render.NewCamera(config.ScreenWidth/2, config.ToolbarY/2, config.WorldScale)

	gs := &GameState{
		sm:        sm,
		game:      game,
		fontFace:  face,
		renderer:  render.NewWorldRenderer(cam, face),
		toolbar:   ui.NewToolbar(game.TowerDefs),
		infoPanel: ui.NewInfoPanel(),
		indicator: ui.NewStateIndicator(40, 40, 18),
		waveLabel: ui.NewWaveIndicator(40, 80),
		health:    ui.NewCoreHealthIndicator(16, 120),
		pause:     ui.NewPauseButton(100, 40, 10, config.ButtonColor, config.ButtonActive),
		speed:     ui.NewSpeedButton(140, 40, 10, []int{1, 2, 4}, []color.Color{config.ButtonColor, config.ButtonActive, config.WaveStateColor}),
		log:       slog.With("component", "ui"),
	}
	gs.snapshot = game.Snapshot()
	return gs
}

func (g *GameState) Enter() {
	g.pause.SetPaused(false)
}

func (g *GameState) Exit() {}

func (g *GameState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleKeys()
	g.handleCamera()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleClick(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.apply(app.Command{Type: app.CmdCancel})
	}

	for i := 0; i < g.speed.Multiplier(); i++ {
		g.game.Update()
	}
	g.snapshot = g.game.Snapshot()
	g.toolbar.Sync(&g.snapshot, g.game.TowerDefs)
	g.infoPanel.Update(&g.snapshot)
	if g.msgTimer > 0 {
		g.msgTimer--
	}
}

var buildKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

func (g *GameState) handleKeys() {
	for i, key := range buildKeys {
		if i < len(defs.TowerOrder) && inpututil.IsKeyJustPressed(key) {
			g.apply(app.Command{Type: app.CmdSelectBuild, Tower: defs.TowerOrder[i]})
		}
	}
	sel := g.snapshot.Interaction.Selected
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.apply(app.Command{Type: app.CmdToggleConnect})
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.apply(app.Command{Type: app.CmdStartWave})
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		g.apply(app.Command{Type: app.CmdToggleSandbox})
	case inpututil.IsKeyJustPressed(ebiten.KeyU) && sel != 0:
		g.apply(app.Command{Type: app.CmdUpgrade, Node: sel})
	case inpututil.IsKeyJustPressed(ebiten.KeyX) && sel != 0:
		g.apply(app.Command{Type: app.CmdSell, Node: sel})
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.apply(app.Command{Type: app.CmdCancel})
	}
}

func (g *GameState) handleCamera() {
	const pan = 6.0
	cam := &g.renderer.Camera
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		cam.Pan(pan, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		cam.Pan(-pan, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		cam.Pan(0, pan)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		cam.Pan(0, -pan)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		x, y := ebiten.CursorPosition()
		factor := 1.1
		if dy < 0 {
			factor = 1 / factor
		}
		cam.Zoom(factor, x, y, config.MinZoom, config.MaxZoom)
	}
}

// handleClick сначала проверяет UI, потом мир.
func (g *GameState) handleClick(x, y int) {
	switch {
	case g.toolbar.Contains(x, y):
		if cmd, ok := g.toolbar.CommandAt(x, y); ok {
			g.apply(cmd)
		}
		return
	case g.infoPanel.Contains(x, y):
		if cmd, ok := g.infoPanel.CommandAt(x, y); ok {
			g.apply(cmd)
		}
		return
	case g.indicator.Contains(x, y):
		g.indicator.HandleClick()
		g.apply(app.Command{Type: app.CmdStartWave})
		return
	case g.pause.Contains(x, y):
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	case g.speed.Contains(x, y):
		g.speed.ToggleState()
		return
	}

	pos := g.renderer.Camera.ScreenToWorld(x, y)
	if id, ok := g.game.NodeAt(pos, app.NodePickRadius); ok && g.snapshot.Interaction.BuildType == "" {
		g.apply(app.Command{Type: app.CmdClickNode, Node: id})
		return
	}
	g.apply(app.Command{Type: app.CmdClickGround, X: pos.X, Z: pos.Z})
}

func (g *GameState) apply(cmd app.Command) {
	res := g.game.Apply(cmd)
	if !res.OK {
		g.log.Debug("Command rejected", "command", cmd.Type, "reason", res.Reason)
		g.message = string(res.Reason)
		g.msgTimer = config.TickRate * 2
	}
	g.snapshot = g.game.Snapshot()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	x, y := ebiten.CursorPosition()
	g.renderer.Draw(screen, &g.snapshot, g.renderer.Camera.ScreenToWorld(x, y))

	vector.DrawFilledRect(screen, 0, config.ToolbarY-config.ButtonGap, config.ScreenWidth, config.ScreenHeight-config.ToolbarY+config.ButtonGap, config.BackgroundColor, false)
	g.toolbar.Draw(screen, g.fontFace)
	g.infoPanel.Draw(screen, &g.snapshot, g.fontFace)
	g.indicator.Draw(screen, g.snapshot.Wave.Active)
	g.waveLabel.Draw(screen, g.snapshot.Wave, g.fontFace)
	g.health.Draw(screen, g.snapshot.Health, config.MaxCoreHealth, g.fontFace)
	g.pause.Draw(screen)
	g.speed.Draw(screen)

	hud := fmt.Sprintf("Energy: %d   Gatherers: %d   Frame: %d", g.snapshot.Energy, len(g.snapshot.Gatherers), g.snapshot.Frame)
	if g.snapshot.Sandbox {
		hud += "   [SANDBOX]"
	}
	if g.snapshot.Interaction.ConnectMode {
		hud += "   [CONNECT]"
	}
	ebitenutil.DebugPrintAt(screen, hud, 180, 10)
	if g.msgTimer > 0 {
		text.Draw(screen, g.message, g.fontFace, config.ScreenWidth/2-len(g.message)*7/2, config.ToolbarY-20, config.PreviewBadColor)
	}
	if g.snapshot.GameOver {
		drawCentered(screen, "CORE DESTROYED", g.fontFace)
	}
}

// drawCentered затемняет экран и пишет строку по центру.
func drawCentered(screen *ebiten.Image, msg string, face font.Face) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	b := text.BoundString(face, msg)
	text.Draw(screen, msg, face, (config.ScreenWidth-b.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
}
