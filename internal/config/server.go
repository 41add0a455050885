// internal/config/server.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ServerConfig — настройки websocket-моста, читаются из окружения (.env).
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
	LogLevel       string
	LogJSON        bool
	JournalDir     string
	TuningPath     string
	CommandsPerSec float64
	CommandBurst   int
	SnapshotEvery  int // раз в сколько тиков отправлять снимок клиенту
}

// LoadServerConfig loads .env if present and reads the environment.
func LoadServerConfig() (ServerConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	rps, err := strconv.ParseFloat(getEnv("COMMANDS_PER_SECOND", "20"), 64)
	if err != nil {
		return ServerConfig{}, fmt.Errorf("COMMANDS_PER_SECOND: %w", err)
	}
	burst, err := strconv.Atoi(getEnv("COMMAND_BURST", "40"))
	if err != nil {
		return ServerConfig{}, fmt.Errorf("COMMAND_BURST: %w", err)
	}
	every, err := strconv.Atoi(getEnv("SNAPSHOT_EVERY_TICKS", "3"))
	if err != nil {
		return ServerConfig{}, fmt.Errorf("SNAPSHOT_EVERY_TICKS: %w", err)
	}
	if every < 1 {
		return ServerConfig{}, fmt.Errorf("SNAPSHOT_EVERY_TICKS must be >= 1, got %d", every)
	}

	return ServerConfig{
		Addr:           getEnv("SERVER_ADDR", ":8080"),
		AllowedOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogJSON:        getEnv("LOG_FORMAT", "text") == "json",
		JournalDir:     getEnv("JOURNAL_DIR", ""),
		TuningPath:     getEnv("TUNING_PATH", ""),
		CommandsPerSec: rps,
		CommandBurst:   burst,
		SnapshotEvery:  every,
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
