// internal/system/core.go
package system

import (
	"math"

	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/utils"
)

// CoreSystem — генерация энергии ядром, раздача в сеть и самовосстановление.
type CoreSystem struct {
	ecs     *entity.ECS
	network *NetworkSystem
}

func NewCoreSystem(ecs *entity.ECS, network *NetworkSystem) *CoreSystem {
	return &CoreSystem{ecs: ecs, network: network}
}

func (s *CoreSystem) Update(frame int64) {
	node := s.ecs.CoreNode()
	if node == nil {
		return
	}
	core := s.ecs.Core

	if frame%utils.Cadence(core.PulseInterval) == 0 && node.Storage < node.Capacity {
		node.Storage++
	}
	if node.Storage >= config.PacketAmount && frame%config.CoreDispatchInterval == 0 {
		s.network.Dispatch(s.ecs.CoreID, config.PacketAmount, false)
	}

	econ := s.ecs.Economy
	if econ.Health < config.MaxCoreHealth {
		econ.Health = math.Min(config.MaxCoreHealth, econ.Health+core.RepairRate)
	}
}
