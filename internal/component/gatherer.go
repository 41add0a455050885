// internal/component/gatherer.go
package component

import "go-core-defense/internal/types"

// Shard — осколок энергии, остаётся после убитого врага.
type Shard struct {
	Position Position
	Value    int
	Claimed  bool
}

// Gatherer — дрон, собирающий осколки и возвращающий их к ядру.
type Gatherer struct {
	Position  Position
	Altitude  float64
	Storage   int
	Capacity  int
	TargetID  types.EntityID
	Returning bool
}
