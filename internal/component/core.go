// internal/component/core.go
package component

import "go-core-defense/internal/config"

// Core — данные, которые есть только у центрального узла.
type Core struct {
	BasePulseInterval float64
	PulseInterval     float64 // тиков между генерацией единицы энергии
	RepairRate        float64 // здоровья за тик
	UpgradeCost       int
	Satellites        int // косметика, уровни 2..5
	Walls             int // косметика, уровни 6..9
}

func NewCore() *Core {
	return &Core{
		BasePulseInterval: config.CoreBasePulseInterval,
		PulseInterval:     config.CoreBasePulseInterval,
		RepairRate:        config.CoreBaseRepair / config.TickRate,
		UpgradeCost:       config.CoreBaseUpgradeCost,
	}
}

// Upgrade raises the core one level. The caller handles payment.
func (c *Core) Upgrade(node *Node) {
	node.Level++
	lvl := float64(node.Level - 1)
	c.PulseInterval = c.BasePulseInterval / (1 + lvl*0.1)
	c.RepairRate = (config.CoreBaseRepair + lvl*config.CoreRepairPerLevel) / config.TickRate
	node.Capacity += config.CoreCapacityStep
	c.UpgradeCost += config.CoreUpgradeCostStep

	if node.Level >= config.WallMinLevel && c.Walls < config.MaxCoreArchitectures {
		c.Walls++
	} else if node.Level >= config.SatelliteMinLevel && c.Satellites < config.MaxCoreArchitectures {
		c.Satellites++
	}
}
