package entity

import (
	"testing"

	"go-core-defense/internal/component"
	"go-core-defense/internal/types"
)

func TestSortedFollowsCreationOrder(t *testing.T) {
	ecs := NewECS()
	var want []types.EntityID
	for i := 0; i < 50; i++ {
		id := ecs.NewEntity()
		ecs.Enemies[id] = &component.Enemy{}
		want = append(want, id)
	}
	got := Sorted(ecs.Enemies)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestLiveEnemy(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Enemies[id] = &component.Enemy{Health: 5}
	if _, ok := ecs.LiveEnemy(id); !ok {
		t.Fatal("enemy should be live")
	}
	ecs.Enemies[id].Dead = true
	if _, ok := ecs.LiveEnemy(id); ok {
		t.Fatal("dead enemy reported live")
	}
	if _, ok := ecs.LiveEnemy(0); ok {
		t.Fatal("zero id reported live")
	}
}

func TestAddCore(t *testing.T) {
	ecs := NewECS()
	id := ecs.AddCore(30)
	n := ecs.CoreNode()
	if id != ecs.CoreID || n == nil || !n.IsCore || n.Distance != 0 || n.Capacity != 30 {
		t.Fatalf("bad core node %+v", n)
	}
}
