package league

import (
	"database/sql"
	"sync"
	"time"
)

// store handles all database operations for leagues, memberships and fixtures.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Season labels one competition year, e.g. "2024-25". It is threaded
// explicitly through every call rather than living as a global constant.
type Season string

// League is created once at setup time and is immutable afterwards,
// except for its membership roster.
type League struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DivisionLevel int    `json:"division_level"`
	Season        Season `json:"season"`
	MaxTeams      int    `json:"max_teams"`
}

// Membership ties a team to a league for one season.
type Membership struct {
	TeamID   string `json:"team_id"`
	LeagueID string `json:"league_id"`
	Season   Season `json:"season"`
}

// Fixture is a single scheduled game. Once Played flips to true the
// scores are immutable.
type Fixture struct {
	ID          string     `json:"id"`
	LeagueID    string     `json:"league_id"`
	Season      Season     `json:"season"`
	Matchday    int        `json:"matchday"`
	HomeTeamID  string     `json:"home_team_id"`
	AwayTeamID  string     `json:"away_team_id"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	Played      bool       `json:"played"`
	HomeScore   int        `json:"home_score"`
	AwayScore   int        `json:"away_score"`
	PlayedAt    *time.Time `json:"played_at,omitempty"`
}

// Result is what a resolution produces: the final score plus the
// strengths that went into it, for logging and broadcast.
type Result struct {
	FixtureID    string `json:"fixture_id" msgpack:"fixture_id"`
	LeagueID     string `json:"league_id" msgpack:"league_id"`
	Matchday     int    `json:"matchday" msgpack:"matchday"`
	HomeTeam     string `json:"home_team" msgpack:"home_team"`
	AwayTeam     string `json:"away_team" msgpack:"away_team"`
	HomeScore    int    `json:"home_score" msgpack:"home_score"`
	AwayScore    int    `json:"away_score" msgpack:"away_score"`
	HomeStrength int    `json:"home_strength" msgpack:"home_strength"`
	AwayStrength int    `json:"away_strength" msgpack:"away_strength"`
}

// FixtureQuery filters fixture listings. Nil pointer fields are not
// applied. Results are always ordered by matchday, then scheduled time.
type FixtureQuery struct {
	LeagueID string
	Season   Season
	Matchday *int
	Played   *bool
}
