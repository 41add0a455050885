// internal/component/node.go
package component

import "math"

// Unreachable marks a node with no path to the core.
const Unreachable = math.MaxInt32

// Node — общая часть ядра и башен: позиция в графе и запас энергии.
type Node struct {
	Position Position
	Level    int
	Storage  int
	Capacity int
	Distance int // число рёбер до ядра, Unreachable если пути нет
	IsCore   bool
}

// Reachable reports whether the node has a path to the core.
func (n *Node) Reachable() bool {
	return n.Distance != Unreachable
}

// Credit adds energy, saturating at capacity.
func (n *Node) Credit(amount int) {
	n.Storage = min(n.Capacity, n.Storage+amount)
}
