// internal/component/network.go
package component

import "go-core-defense/internal/types"

// Connection — неориентированное ребро сети.
type Connection struct {
	A, B types.EntityID
}

// Touches reports whether id is an endpoint.
func (c *Connection) Touches(id types.EntityID) bool {
	return c.A == id || c.B == id
}

// Links reports whether the edge joins a and b in either orientation.
func (c *Connection) Links(a, b types.EntityID) bool {
	return (c.A == a && c.B == b) || (c.A == b && c.B == a)
}

// Other returns the opposite endpoint.
func (c *Connection) Other(id types.EntityID) types.EntityID {
	if c.A == id {
		return c.B
	}
	return c.A
}

// Packet — единица энергии в пути по ребру.
type Packet struct {
	From, To types.EntityID
	Amount   int
	Ticks    int // из config.PacketTravelTicks
}
