// internal/config/config.go
package config

import "image/color"

// Симуляция
const (
	TickRate = 60 // тиков в секунду

	CoreBaseCapacity      = 30
	CoreBasePulseInterval = 15.0
	CoreBaseUpgradeCost   = 150
	CoreUpgradeCostStep   = 100
	CoreCapacityStep      = 25
	CoreBaseRepair        = 0.01 // единиц здоровья в секунду на уровне 1
	CoreRepairPerLevel    = 0.001
	CoreDispatchInterval  = 10 // ядро отправляет пакет каждые N тиков
	TowerDispatchInterval = 40 // башни передают энергию соседям каждые N тиков
	PacketAmount          = 1
	PacketTravelTicks     = 40 // прогресс 0.025 за тик
	MaxCoreHealth         = 100.0

	CoreExclusionRadius = 10.0
	ObstacleClearance   = 1.2
	TowerSpacing        = 2.5

	TowerUpgradeCostFactor = 1.5
	TowerUpgradeCostGrowth = 1.6
	TowerDamageGrowth      = 1.25
	TowerRangeGrowth       = 1.1
	TowerCooldownGrowth    = 0.9
	SellRefundFactor       = 0.5

	RifleRapidFireLevel    = 10
	RifleRapidFireCooldown = 4
	RocketSalvoSize        = 4
	RocketSalvoInterval    = 8

	SiloDoorTicks     = 50 // шаг анимации 0.02
	SiloShotInterval  = 15
	SiloShotsPerCycle = 6
	SiloPriceGrowth   = 1.5

	ProjectileSpeed     = 1.2
	SiloProjectileSpeed = 0.8
	ProjectileHitRadius = 1.5
	AoEFalloff          = 0.3

	ExplosionSteps      = 10
	ExplosionStepTicks  = 2
	ExplosionGrowth     = 1.2
	ExplosionFade       = 0.7
	ExplosionStartScale = 0.5

	WaveBaseEnemies  = 8
	WaveGrowth       = 1.15
	WaveBaseHealth   = 10
	WaveHealthPerNum = 5
	SpawnInterval    = 60
	SpawnRadius      = 80.0

	EnemyAcceleration = 0.045
	EnemyMaxSpeed     = 0.08
	CoreContactRadius = 3.5
	CoreContactDamage = 5.0
	ShardValue        = 25

	GathererCapacity     = 50
	MaxGatherers         = 6
	GathererLerp         = 0.05
	GathererCollectRange = 2.5
	GathererDepositRange = 1.0
	GathererHomeAltitude = 3.0
	GathererHoverHeight  = 2.0

	ObstacleAttempts     = 60
	ObstacleMinDistance  = 18.0
	ObstacleMaxDistance  = 68.0
	ObstacleMinSpacing   = 6.0
	ObstacleTreeChance   = 0.6
	TreeMinScale         = 0.8
	TreeMaxScale         = 2.0
	RockMinScale         = 0.6
	RockMaxScale         = 2.0
	RockRadiusFactor     = 0.8
	SatelliteMinLevel    = 2
	WallMinLevel         = 6
	MaxCoreArchitectures = 4
)

// Отрисовка (ebiten / tcell)
const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	WorldScale   = 5.5 // пикселей на единицу мира
	ToolbarY     = 850
	ButtonWidth  = 110
	ButtonHeight = 36
	ButtonGap    = 8
	StrokeWidth  = 2.0
	EnemyRadius  = 0.8 // только для отрисовки
	MinZoom      = 2.0
	MaxZoom      = 14.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GroundColor      = color.RGBA{34, 52, 40, 255}
	CoreColor        = color.RGBA{0, 200, 255, 255}
	EnemyColor       = color.RGBA{255, 60, 60, 255}
	PacketColor      = color.RGBA{0, 255, 255, 255}
	ConnectionColor  = color.RGBA{0, 150, 200, 160}
	ShardColor       = color.RGBA{0, 255, 170, 255}
	GathererColor    = color.RGBA{255, 221, 0, 255}
	TreeColor        = color.RGBA{38, 110, 52, 255}
	RockColor        = color.RGBA{110, 110, 120, 255}
	ExplosionColor   = color.RGBA{255, 150, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	PreviewOKColor   = color.RGBA{0, 255, 120, 120}
	PreviewBadColor  = color.RGBA{255, 40, 40, 120}
	SelectionColor   = color.RGBA{255, 255, 255, 255}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonActive     = color.RGBA{220, 160, 40, 230}
	WaveStateColor   = color.RGBA{220, 60, 60, 220}
	IdleStateColor   = color.RGBA{70, 130, 180, 220}
	IndicatorStroke  = color.RGBA{240, 240, 240, 255}
	TowerColors      = map[string]color.RGBA{
		"RIFLE":  {210, 210, 220, 255},
		"CANNON": {255, 140, 40, 255},
		"ROCKET": {255, 60, 160, 255},
		"SNIPER": {120, 220, 60, 255},
		"SILO":   {180, 180, 60, 255},
	}
)
