package config

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	// Optional env var with a fallback.
	getEnvDefault := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	seasonStart, err := time.Parse(time.RFC3339, getEnvDefault("SEASON_START", "2025-01-08T20:00:00Z"))
	if err != nil {
		log.Fatalf("Error: SEASON_START must be RFC3339: %s", err)
	}

	advancerInterval, err := time.ParseDuration(getEnvDefault("ADVANCER_INTERVAL", "5m"))
	if err != nil {
		log.Fatalf("Error: ADVANCER_INTERVAL must be a duration: %s", err)
	}

	resolvePause, err := time.ParseDuration(getEnvDefault("RESOLVE_PAUSE", "100ms"))
	if err != nil {
		log.Fatalf("Error: RESOLVE_PAUSE must be a duration: %s", err)
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: "./migrations",
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN"),
			ChannelID: getEnv("SLACK_CHANNEL_ID"),
		},
		Port: getEnv("PORT"),
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
		League: LeagueConfig{
			Season:           getEnvDefault("SEASON", "2024-25"),
			SeasonStart:      seasonStart,
			AdvancerInterval: advancerInterval,
			ResolvePause:     resolvePause,
		},
		ProjectID: getEnv("GCP_PROJECT"),
	}
	return cfg
}
