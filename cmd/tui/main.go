// cmd/tui/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-core-defense/internal/app"
	"go-core-defense/internal/logger"
	"go-core-defense/internal/loop"
	"go-core-defense/internal/tui"
)

func main() {
	var (
		tuningPath = flag.String("tuning", "", "path to tuning.yaml")
		seed       = flag.Int64("seed", 0, "world seed (0 = from clock)")
		logPath    = flag.String("logfile", "core-defense-tui.log", "log file (the terminal is busy drawing)")
		logLevel   = flag.String("log", "info", "log level")
	)
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open log:", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger.InitTo(logFile, *logLevel, false)

	tuning, err := app.LoadTuning(*tuningPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tuning:", err)
		os.Exit(1)
	}
	if *seed != 0 {
		tuning.Seed = *seed
	}
	if tuning.Seed == 0 {
		tuning.Seed = time.Now().UnixNano()
	}
	game := app.NewGame(tuning)
	game.EventDispatcher.SubscribeAll(app.NewLogListener())

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "screen:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "screen init:", err)
		os.Exit(1)
	}
	defer screen.Fini()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// терминалу хватает 20 кадров в секунду
	l := loop.New(game, loop.WithSnapshotEvery(3))
	go func() { _ = l.Run(ctx) }()

	_ = tui.NewClient(screen, l).Run(ctx)
}
