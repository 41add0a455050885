package ui

import (
	"testing"

	"go-core-defense/internal/app"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		if got := toRoman(n); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestFilledCells(t *testing.T) {
	if got := filledCells(100, 100); got != 20 {
		t.Fatalf("full = %d", got)
	}
	if got := filledCells(4, 100); got != 1 {
		t.Fatalf("4hp = %d, want 1", got)
	}
	if got := filledCells(-3, 100); got != 0 {
		t.Fatalf("negative = %d", got)
	}
}

func TestToolbarCommands(t *testing.T) {
	towerDefs := defs.DefaultTowerDefs()
	tb := NewToolbar(towerDefs)

	x, y := config.ButtonGap+1, config.ToolbarY+1
	cmd, ok := tb.CommandAt(x, y)
	if !ok || cmd.Type != app.CmdSelectBuild || cmd.Tower != defs.TowerOrder[0] {
		t.Fatalf("first button = %+v %v", cmd, ok)
	}
	cmd, ok = tb.CommandAt(tb.wave.Rect.Min.X+1, y)
	if !ok || cmd.Type != app.CmdStartWave {
		t.Fatalf("wave button = %+v %v", cmd, ok)
	}
	if _, ok := tb.CommandAt(x, 10); ok {
		t.Fatal("click above toolbar hit a button")
	}

	s := &app.Snapshot{Energy: 120, SiloPrice: 1500}
	tb.Sync(s, towerDefs)
	for i, tt := range tb.types {
		wantDisabled := towerDefs[tt].Cost > 120
		if tb.towers[i].Disabled != wantDisabled {
			t.Errorf("%s disabled = %v, want %v", tt, tb.towers[i].Disabled, wantDisabled)
		}
	}
}

func TestDescribeNode(t *testing.T) {
	lines := describeNode(&app.NodeView{Type: defs.TowerSilo, Level: 2, Distance: -1, SiloState: "OPENING"})
	if len(lines) != 5 || lines[2] != "No link to core" || lines[4] != "Silo: OPENING" {
		t.Fatalf("lines = %q", lines)
	}
}
