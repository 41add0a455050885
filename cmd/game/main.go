// cmd/game/main.go
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-core-defense/internal/app"
	"go-core-defense/internal/config"
	"go-core-defense/internal/logger"
	"go-core-defense/internal/state"
)

// AppGame adapts the state machine to ebiten.Game.
type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		tuningPath = flag.String("tuning", "", "path to tuning.yaml")
		seed       = flag.Int64("seed", 0, "world seed (0 = from clock)")
		menu       = flag.Bool("menu", false, "start from the title screen")
		logLevel   = flag.String("log", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()
	logger.Init(*logLevel, false)

	tuning, err := app.LoadTuning(*tuningPath)
	if err != nil {
		slog.Error("Failed to load tuning", "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		tuning.Seed = *seed
	}
	if tuning.Seed == 0 {
		tuning.Seed = time.Now().UnixNano()
	}

	newGame := func() *app.Game {
		g := app.NewGame(tuning)
		g.EventDispatcher.SubscribeAll(app.NewLogListener())
		return g
	}

	sm := state.NewStateMachine()
	if *menu {
		sm.SetState(state.NewMenuState(sm, tuning.Seed, newGame))
	} else {
		sm.SetState(state.NewGameState(sm, newGame()))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Core Defense")
	ebiten.SetTPS(config.TickRate)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		slog.Error("Game exited with error", "error", err)
		os.Exit(1)
	}
}
