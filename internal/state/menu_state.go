// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-core-defense/internal/app"
	"go-core-defense/internal/config"
)

// MenuState — стартовый экран. Пробел начинает новую игру.
type MenuState struct {
	sm      *StateMachine
	newGame func() *app.Game
	seed    int64
}

func NewMenuState(sm *StateMachine, seed int64, newGame func() *app.Game) *MenuState {
	return &MenuState{sm: sm, seed: seed, newGame: newGame}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.newGame()))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	lines := []string{
		"CORE DEFENSE",
		"",
		"1-5 build  C connect  SPACE wave  B sandbox",
		"U upgrade  X sell  P pause  ESC cancel",
		"",
		"press SPACE to start",
	}
	if m.seed != 0 {
		lines = append(lines, fmt.Sprintf("seed %d", m.seed))
	}
	y := config.ScreenHeight/2 - len(lines)*10
	for _, l := range lines {
		b := text.BoundString(face, l)
		text.Draw(screen, l, face, (config.ScreenWidth-b.Dx())/2, y, config.TextLightColor)
		y += 20
	}
}

func (m *MenuState) Exit() {}
