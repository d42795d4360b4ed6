package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Slack         SlackConfig
	Turso         TursoConfig
	League        LeagueConfig
	ProjectID     string
}
type SlackConfig struct {
	Token     string
	ChannelID string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// LeagueConfig drives scheduling and the season advancer.
type LeagueConfig struct {
	Season           string
	SeasonStart      time.Time
	AdvancerInterval time.Duration
	ResolvePause     time.Duration
}
