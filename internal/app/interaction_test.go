package app

import (
	"testing"

	"go-core-defense/internal/defs"
)

func TestPreviewThenConfirm(t *testing.T) {
	g := newTestGame(t, 1000)
	if err := g.SelectBuildType(defs.TowerCannon); err != nil {
		t.Fatal(err)
	}

	if _, err := g.ClickGround(30, 0); err != nil {
		t.Fatal(err)
	}
	in := g.Interaction()
	if in.Preview == nil || in.Preview.Reason != "" {
		t.Fatalf("preview = %+v", in.Preview)
	}
	if len(g.ECS.Towers) != 0 {
		t.Fatal("preview built a tower")
	}

	id, err := g.ClickGround(30.5, 0)
	if err != nil || id == 0 {
		t.Fatalf("confirm click: id %d err %v", id, err)
	}
	in = g.Interaction()
	if in.Preview != nil || in.BuildType != defs.TowerCannon {
		t.Fatalf("after confirm: %+v", in)
	}
}

func TestPreviewCarriesPlacementReason(t *testing.T) {
	g := newTestGame(t, 1000)
	_ = g.SelectBuildType(defs.TowerRifle)
	p, err := g.PreviewAt(3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.Reason != ReasonTooCloseToCore {
		t.Fatalf("preview reason = %q", p.Reason)
	}
	_, err = g.ConfirmPreview()
	wantReason(t, err, ReasonTooCloseToCore)
}

func TestSelectSameTypeCancelsPreview(t *testing.T) {
	g := newTestGame(t, 1000)
	_ = g.SelectBuildType(defs.TowerCannon)
	_, _ = g.ClickGround(30, 0)
	_ = g.SelectBuildType(defs.TowerCannon)

	in := g.Interaction()
	if in.BuildType != "" || in.Preview != nil {
		t.Fatalf("interaction = %+v, want cleared", in)
	}
	_, err := g.ConfirmPreview()
	wantReason(t, err, ReasonNoPreview)
	wantReason(t, g.SelectBuildType("LASER"), ReasonUnknownTowerType)
}

func TestConnectModeClicks(t *testing.T) {
	g := newTestGame(t, 1000)
	a := mustBuild(t, g, 30, 0, defs.TowerCannon)
	g.addObstacle(0, 20, 2)
	b := mustBuild(t, g, 0, 40, defs.TowerCannon)

	if !g.ToggleConnectMode() {
		t.Fatal("connect mode off")
	}
	_, _ = g.ClickNode(g.ECS.CoreID)
	cid, err := g.ClickNode(a)
	if err != nil || cid == 0 {
		t.Fatalf("connect click: %d %v", cid, err)
	}
	if g.Interaction().Selected != 0 {
		t.Fatal("selection kept after connecting")
	}

	_, _ = g.ClickNode(g.ECS.CoreID)
	_, err = g.ClickNode(b)
	wantReason(t, err, ReasonPathBlocked)
	if g.Interaction().Selected != g.ECS.CoreID {
		t.Fatal("blocked path must keep the selection")
	}

	_, err = g.ClickNode(a)
	wantReason(t, err, ReasonConnectionExists)
	if g.Interaction().Selected != 0 {
		t.Fatal("existing connection must clear the selection")
	}
}
