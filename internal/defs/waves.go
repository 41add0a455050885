// internal/defs/waves.go
package defs

import (
	"math"

	"go-core-defense/internal/config"
)

// EnemyCountForWave — число врагов в волне n (n >= 1).
func EnemyCountForWave(n int) int {
	return int(math.Ceil(config.WaveBaseEnemies * math.Pow(config.WaveGrowth, float64(n-1))))
}

// EnemyHealthForWave — здоровье каждого врага волны n.
func EnemyHealthForWave(n int) float64 {
	return math.Floor(config.WaveBaseHealth*math.Pow(config.WaveGrowth, float64(n-1))) + float64(n*config.WaveHealthPerNum)
}
