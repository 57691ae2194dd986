package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Gateway  GatewayConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	UI       UIConfig
}

type GatewayConfig struct {
	BaseURL string
	AnonKey string
	WSURL   string
}

// DatabaseConfig is optional: when Host is set the client talks to the
// marketplace Postgres directly instead of the hosted REST surface.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type LoggingConfig struct {
	Level string
	File  string
}

type UIConfig struct {
	DefaultAvatarURL string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Gateway: GatewayConfig{
			BaseURL: getEnv("TALENT_GATEWAY_URL", "http://localhost:54321"),
			AnonKey: getEnv("TALENT_GATEWAY_ANON_KEY", ""),
			WSURL:   getEnv("TALENT_REALTIME_WS_URL", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("TALENT_DB_HOST", ""),
			Port:     getEnvInt("TALENT_DB_PORT", 5432),
			User:     getEnv("TALENT_DB_USER", "postgres"),
			Password: getEnv("TALENT_DB_PASSWORD", ""),
			Database: getEnv("TALENT_DB_NAME", "postgres"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", "logs/talentmatch.log"),
		},
		UI: UIConfig{
			DefaultAvatarURL: getEnv("TALENT_DEFAULT_AVATAR_URL",
				"https://via.placeholder.com/400x500.png?text=No+Image"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Gateway.BaseURL == "" {
		return fmt.Errorf("TALENT_GATEWAY_URL is required")
	}
	if c.Gateway.AnonKey == "" {
		return fmt.Errorf("TALENT_GATEWAY_ANON_KEY is required")
	}
	if c.Database.Host != "" && c.Database.User == "" {
		return fmt.Errorf("TALENT_DB_USER is required when TALENT_DB_HOST is set")
	}
	return nil
}

// UseDirectDatabase reports whether profile reads/writes should bypass the
// REST surface and hit Postgres. Auth always goes through the gateway.
func (c *Config) UseDirectDatabase() bool {
	return c.Database.Host != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
