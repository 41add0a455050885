// internal/event/types.go
package event

const (
	TowerBuilt       EventType = "TowerBuilt"
	TowerSold        EventType = "TowerSold"
	NodeUpgraded     EventType = "NodeUpgraded"
	ConnectionAdded  EventType = "ConnectionAdded"
	WaveStarted      EventType = "WaveStarted"
	WaveCleared      EventType = "WaveCleared"      // Волна закончилась
	EnemyKilled      EventType = "EnemyKilled"      // Враг уничтожен
	EnemyReachedCore EventType = "EnemyReachedCore" // Враг добрался до ядра
	ShardsDeposited  EventType = "ShardsDeposited"
	SiloLaunched     EventType = "SiloLaunched"
	SandboxToggled   EventType = "SandboxToggled"
	CommandRejected  EventType = "CommandRejected"
	GameOver         EventType = "GameOver"
)

// AllTypes lists every event type, for listeners that want everything.
var AllTypes = []EventType{
	TowerBuilt, TowerSold, NodeUpgraded, ConnectionAdded,
	WaveStarted, WaveCleared, EnemyKilled, EnemyReachedCore,
	ShardsDeposited, SiloLaunched, SandboxToggled, CommandRejected, GameOver,
}
