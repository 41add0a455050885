// internal/component/silo.go
package component

import "go-core-defense/internal/config"

type SiloPhase string

const (
	SiloWaiting SiloPhase = "WAITING"
	SiloOpening SiloPhase = "OPENING"
	SiloFiring  SiloPhase = "FIRING"
	SiloClosing SiloPhase = "CLOSING"
)

// SiloState — конечный автомат шахты.
type SiloState struct {
	State      SiloPhase
	DoorTicks  int // 0 — закрыто, config.SiloDoorTicks — открыто
	ShotsFired int
}

// DoorProgress returns the door opening in [0, 1].
func (s *SiloState) DoorProgress() float64 {
	return float64(s.DoorTicks) / config.SiloDoorTicks
}
