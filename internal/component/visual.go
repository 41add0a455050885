// internal/component/visual.go
package component

// Explosion — косметический эффект попадания с уроном по площади.
type Explosion struct {
	Position    Position
	Radius      float64
	Opacity     float64
	StepsLeft   int
	TicksToStep int
}
