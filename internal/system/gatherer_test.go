package system

import (
	"testing"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/pkg/geom"
)

func TestGathererCollectsAndDeposits(t *testing.T) {
	cases := []struct {
		name    string
		sandbox bool
		want    int
	}{
		{"normal", false, 25},
		{"sandbox", true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.ecs.Economy.Sandbox = tc.sandbox
			gid, ok := w.gatherer.Spawn()
			if !ok {
				t.Fatal("spawn failed")
			}
			w.ecs.Shards[w.ecs.NewEntity()] = &component.Shard{Position: geom.V(15, 5), Value: config.ShardValue}

			collected := false
			for i := 0; i < 1000; i++ {
				w.gatherer.Update()
				if len(w.ecs.Shards) == 0 {
					collected = true
				}
				if collected && w.ecs.Gatherers[gid].Storage == 0 {
					break
				}
			}
			if !collected {
				t.Fatal("shard never collected")
			}
			g := w.ecs.Gatherers[gid]
			if g.Storage != 0 || g.Returning {
				t.Fatalf("gatherer did not deposit: %+v", g)
			}
			if w.ecs.Economy.Energy != tc.want {
				t.Fatalf("energy = %d, want %d", w.ecs.Economy.Energy, tc.want)
			}
		})
	}
}

func TestGatherersClaimDistinctShards(t *testing.T) {
	w := newTestWorld(t)
	a, _ := w.gatherer.Spawn()
	b, _ := w.gatherer.Spawn()
	w.ecs.Shards[w.ecs.NewEntity()] = &component.Shard{Position: geom.V(30, 0), Value: 25}
	w.ecs.Shards[w.ecs.NewEntity()] = &component.Shard{Position: geom.V(-30, 0), Value: 25}
	w.gatherer.Update()
	ta, tb := w.ecs.Gatherers[a].TargetID, w.ecs.Gatherers[b].TargetID
	if ta == 0 || tb == 0 || ta == tb {
		t.Fatalf("targets %d and %d", ta, tb)
	}
}

func TestGathererCap(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < config.MaxGatherers; i++ {
		if _, ok := w.gatherer.Spawn(); !ok {
			t.Fatalf("spawn %d refused", i)
		}
	}
	if _, ok := w.gatherer.Spawn(); ok {
		t.Fatal("cap not enforced")
	}
}
