// internal/component/enemy.go
package component

type Enemy struct {
	Position  Position
	Velocity  Velocity
	Health    float64
	MaxHealth float64
	Dead      bool
}
