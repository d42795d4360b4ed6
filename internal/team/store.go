package team

import (
	"database/sql"
	"fmt"
	"strings"
)

// New creates a new TeamStore backed by the given database.
func New(db *sql.DB) TeamStore {
	return &store{
		db: db,
	}
}

var ErrTeamNotFound = fmt.Errorf("team not found")

func (s *store) GetTeam(id string) (Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t Team
	err := s.db.QueryRow("SELECT id, name FROM teams WHERE id = ?", id).Scan(&t.ID, &t.Name)
	if err == sql.ErrNoRows {
		return Team{}, fmt.Errorf("team %s: %w", id, ErrTeamNotFound)
	}
	if err != nil {
		return Team{}, fmt.Errorf("failed to get team %s: %w", id, err)
	}
	return t, nil
}

func (s *store) GetTeams(ids []string) ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(ids) == 0 {
		return []Team{}, nil
	}

	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.Query("SELECT id, name FROM teams WHERE id IN ("+placeholders+") ORDER BY name", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	defer rows.Close()

	teams := []Team{}
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (s *store) GetPlayers(teamID string) ([]PlayerInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, team_id, name, position, overall_rating
		FROM players WHERE team_id = ?`, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get players for team %s: %w", teamID, err)
	}
	defer rows.Close()

	players := []PlayerInfo{}
	for rows.Next() {
		var p PlayerInfo
		if err := rows.Scan(&p.ID, &p.TeamID, &p.Name, &p.Position, &p.OverallRating); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}
