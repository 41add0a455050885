// internal/component/obstacle.go
package component

type ObstacleKind string

const (
	ObstacleTree ObstacleKind = "tree"
	ObstacleRock ObstacleKind = "rock"
)

// Obstacle blocks placement and line of sight with a circle on the ground.
type Obstacle struct {
	Position Position
	Radius   float64
	Kind     ObstacleKind
}
