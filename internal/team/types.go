package team

import (
	"database/sql"
	"sync"
)

// store handles read access to the team/player collaborator tables.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Team is the roster-owning collaborator's record, consumed read-only.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlayerInfo carries the attributes the simulation needs from a player.
type PlayerInfo struct {
	ID            string `json:"id"`
	TeamID        string `json:"team_id"`
	Name          string `json:"name"`
	Position      string `json:"position"`
	OverallRating int    `json:"overall_rating"`
}

// Squad positions as the roster subsystem records them.
const (
	PositionGoalkeeper = "GK"
	PositionDefender   = "DEF"
	PositionMidfielder = "MID"
	PositionForward    = "FWD"
)
