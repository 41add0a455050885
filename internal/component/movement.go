// internal/component/movement.go
package component

import "go-core-defense/pkg/geom"

// Position — координаты на плоскости (x, z).
type Position = geom.Vec2

// Velocity — скорость за тик.
type Velocity = geom.Vec2
