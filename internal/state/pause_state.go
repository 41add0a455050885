// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию и рисует поверх предыдущего состояния.
type PauseState struct {
	sm   *StateMachine
	prev *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{sm: sm, prev: prev}
}

func (s *PauseState) Enter() {
	s.prev.pause.SetPaused(true)
}

func (s *PauseState) Update() {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.prev.pause.Contains(x, y)
	}
	if unpause {
		// Enter игрового состояния снимет паузу с кнопки
		s.sm.SetState(s.prev)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.prev.Draw(screen)
	drawCentered(screen, "PAUSED", s.prev.fontFace)
}

func (s *PauseState) Exit() {}
