// internal/component/game_state.go
package component

// Wave — состояние текущей волны.
type Wave struct {
	Number         int
	Active         bool
	EnemiesToSpawn int
	Total          int
	SpawnTimer     int
}

// Economy — энергия игрока, здоровье ядра и режим песочницы.
type Economy struct {
	Energy       int
	StoredEnergy int
	Sandbox      bool
	Health       float64
	SiloPrice    int
	GameOver     bool
}
