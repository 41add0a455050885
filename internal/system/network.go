// internal/system/network.go
package system

import (
	"errors"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/types"
	"go-core-defense/internal/utils"
	"go-core-defense/pkg/geom"
)

var (
	ErrNodeNotFound     = errors.New("node not found")
	ErrSameNode         = errors.New("cannot connect a node to itself")
	ErrConnectionExists = errors.New("connection already exists")
	ErrPathBlocked      = errors.New("line of sight is blocked")
)

// NetworkSystem владеет графом соединений и пакетами энергии.
type NetworkSystem struct {
	ecs             *entity.ECS
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewNetworkSystem(ecs *entity.ECS, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *NetworkSystem {
	return &NetworkSystem{ecs: ecs, rng: rng, eventDispatcher: eventDispatcher}
}

// AddConnection links two nodes and recomputes distances.
func (s *NetworkSystem) AddConnection(a, b types.EntityID) (types.EntityID, error) {
	na, okA := s.ecs.Nodes[a]
	nb, okB := s.ecs.Nodes[b]
	if !okA || !okB {
		return 0, ErrNodeNotFound
	}
	if a == b {
		return 0, ErrSameNode
	}
	for _, c := range s.ecs.Connections {
		if c.Links(a, b) {
			return 0, ErrConnectionExists
		}
	}
	if !s.LineOfSight(na.Position, nb.Position) {
		return 0, ErrPathBlocked
	}

	id := s.ecs.NewEntity()
	s.ecs.Connections[id] = &component.Connection{A: a, B: b}
	s.RecomputeDistances()

	s.eventDispatcher.Dispatch(event.Event{
		Type:  event.ConnectionAdded,
		Frame: s.ecs.Frame,
		Data:  map[string]any{"a": a, "b": b},
	})
	return id, nil
}

// LineOfSight reports whether no obstacle crosses the straight segment.
func (s *NetworkSystem) LineOfSight(from, to geom.Vec2) bool {
	for _, o := range s.ecs.Obstacles {
		if geom.SegmentIntersectsCircle(from, to, o.Position, o.Radius) {
			return false
		}
	}
	return true
}

// RemoveConnectionsOf drops every edge and in-flight packet touching the node.
func (s *NetworkSystem) RemoveConnectionsOf(id types.EntityID) {
	for cid, c := range s.ecs.Connections {
		if c.Touches(id) {
			delete(s.ecs.Connections, cid)
		}
	}
	for pid, p := range s.ecs.Packets {
		if p.From == id || p.To == id {
			delete(s.ecs.Packets, pid)
		}
	}
}

// buildAdjacencyList collects neighbours in connection creation order.
func (s *NetworkSystem) buildAdjacencyList() map[types.EntityID][]types.EntityID {
	adj := make(map[types.EntityID][]types.EntityID, len(s.ecs.Nodes))
	for _, cid := range entity.Sorted(s.ecs.Connections) {
		c := s.ecs.Connections[cid]
		adj[c.A] = append(adj[c.A], c.B)
		adj[c.B] = append(adj[c.B], c.A)
	}
	return adj
}

// Neighbors returns the nodes directly connected to id.
func (s *NetworkSystem) Neighbors(id types.EntityID) []types.EntityID {
	var out []types.EntityID
	for _, cid := range entity.Sorted(s.ecs.Connections) {
		c := s.ecs.Connections[cid]
		if c.Touches(id) {
			out = append(out, c.Other(id))
		}
	}
	return out
}

// RecomputeDistances runs a BFS from the core over the connection graph.
func (s *NetworkSystem) RecomputeDistances() {
	for id, n := range s.ecs.Nodes {
		if id == s.ecs.CoreID {
			n.Distance = 0
			continue
		}
		n.Distance = component.Unreachable
	}
	if _, ok := s.ecs.Nodes[s.ecs.CoreID]; !ok {
		return
	}

	adj := s.buildAdjacencyList()
	queue := []types.EntityID{s.ecs.CoreID}
	head := 0
	for head < len(queue) {
		current := queue[head]
		head++
		d := s.ecs.Nodes[current].Distance
		for _, next := range adj[current] {
			n, ok := s.ecs.Nodes[next]
			if !ok || n.Distance != component.Unreachable || next == s.ecs.CoreID {
				continue
			}
			n.Distance = d + 1
			queue = append(queue, next)
		}
	}
}

// Incoming sums the energy already travelling toward id.
func (s *NetworkSystem) Incoming(id types.EntityID) int {
	total := 0
	for _, p := range s.ecs.Packets {
		if p.To == id {
			total += p.Amount
		}
	}
	return total
}

// AvailableCapacity is capacity minus stored and incoming energy.
func (s *NetworkSystem) AvailableCapacity(id types.EntityID) int {
	n, ok := s.ecs.Nodes[id]
	if !ok {
		return 0
	}
	return n.Capacity - (n.Storage + s.Incoming(id))
}

// Dispatch sends amount from source to one random downstream neighbour with
// room for it. Storage is debited when the packet leaves.
func (s *NetworkSystem) Dispatch(source types.EntityID, amount int, peerOnly bool) bool {
	src, ok := s.ecs.Nodes[source]
	if !ok || src.Storage < amount {
		return false
	}

	var candidates []types.EntityID
	for _, nid := range s.Neighbors(source) {
		n := s.ecs.Nodes[nid]
		if n == nil || (peerOnly && n.IsCore) {
			continue
		}
		if n.Distance > src.Distance && s.AvailableCapacity(nid) >= amount {
			candidates = append(candidates, nid)
		}
	}
	if len(candidates) == 0 {
		return false
	}

	to := candidates[s.rng.Intn(len(candidates))]
	id := s.ecs.NewEntity()
	s.ecs.Packets[id] = &component.Packet{From: source, To: to, Amount: amount}
	src.Storage -= amount
	return true
}

// Update advances every packet one tick and delivers the ones that arrive.
func (s *NetworkSystem) Update() {
	for _, id := range entity.Sorted(s.ecs.Packets) {
		p := s.ecs.Packets[id]
		p.Ticks++
		if p.Ticks < config.PacketTravelTicks {
			continue
		}
		if to, ok := s.ecs.Nodes[p.To]; ok {
			to.Credit(p.Amount)
		}
		delete(s.ecs.Packets, id)
	}
}

// PacketPosition interpolates a packet between its endpoints.
func (s *NetworkSystem) PacketPosition(p *component.Packet) (geom.Vec2, bool) {
	from, okF := s.ecs.Nodes[p.From]
	to, okT := s.ecs.Nodes[p.To]
	if !okF || !okT {
		return geom.Vec2{}, false
	}
	t := float64(p.Ticks) / config.PacketTravelTicks
	return from.Position.Lerp(to.Position, t), true
}
