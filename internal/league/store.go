package league

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a new LeagueStore backed by the given database.
func New(db *sql.DB) LeagueStore {
	return &store{
		db: db,
	}
}

func (s *store) CreateLeague(l League) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO leagues (id, name, division_level, season, max_teams)
		VALUES (?, ?, ?, ?, ?)`,
		l.ID, l.Name, l.DivisionLevel, l.Season, l.MaxTeams)
	if err != nil {
		return fmt.Errorf("failed to create league %s: %w", l.Name, err)
	}
	log.Info("Created league", "leagueID", l.ID, "name", l.Name, "division", l.DivisionLevel)
	return nil
}

func (s *store) GetLeague(id string) (League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var l League
	err := s.db.QueryRow(`
		SELECT id, name, division_level, season, max_teams
		FROM leagues WHERE id = ?`, id).
		Scan(&l.ID, &l.Name, &l.DivisionLevel, &l.Season, &l.MaxTeams)
	if err == sql.ErrNoRows {
		return League{}, fmt.Errorf("league %s: %w", id, ErrLeagueNotFound)
	}
	if err != nil {
		return League{}, fmt.Errorf("failed to get league %s: %w", id, err)
	}
	return l, nil
}

func (s *store) ListLeagues() ([]League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, division_level, season, max_teams
		FROM leagues ORDER BY division_level`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	defer rows.Close()

	var leagues []League
	for rows.Next() {
		var l League
		if err := rows.Scan(&l.ID, &l.Name, &l.DivisionLevel, &l.Season, &l.MaxTeams); err != nil {
			return nil, err
		}
		leagues = append(leagues, l)
	}
	return leagues, rows.Err()
}

func (s *store) AddMembers(leagueID string, season Season, teamIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO league_memberships (team_id, league_id, season)
		VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, teamID := range teamIDs {
		if _, err := stmt.Exec(teamID, leagueID, season); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to add team %s to league %s: %w", teamID, leagueID, err)
		}
	}
	return tx.Commit()
}

func (s *store) MemberTeamIDs(leagueID string, season Season) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT team_id FROM league_memberships
		WHERE league_id = ? AND season = ?
		ORDER BY team_id`, leagueID, season)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of league %s: %w", leagueID, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// InsertFixtures writes a full season schedule in one transaction.
// Either every fixture lands or none of them do.
func (s *store) InsertFixtures(fixtures []Fixture) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO fixtures (id, league_id, season, matchday, home_team_id, away_team_id, scheduled_at, played, home_score, away_score, played_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, NULL, NULL, NULL)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, f := range fixtures {
		_, err := stmt.Exec(f.ID, f.LeagueID, f.Season, f.Matchday, f.HomeTeamID, f.AwayTeamID, f.ScheduledAt.Unix())
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert fixture %s: %w", f.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Inserted fixtures", "count", len(fixtures))
	return nil
}

func (s *store) GetFixture(id string) (Fixture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, league_id, season, matchday, home_team_id, away_team_id, scheduled_at, played, home_score, away_score, played_at
		FROM fixtures WHERE id = ?`, id)

	f, err := scanFixture(row)
	if err == sql.ErrNoRows {
		return Fixture{}, fmt.Errorf("fixture %s: %w", id, ErrFixtureNotFound)
	}
	if err != nil {
		return Fixture{}, fmt.Errorf("failed to get fixture %s: %w", id, err)
	}
	return f, nil
}

func (s *store) ListFixtures(q FixtureQuery) ([]Fixture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, league_id, season, matchday, home_team_id, away_team_id, scheduled_at, played, home_score, away_score, played_at
		FROM fixtures
		WHERE league_id = ? AND season = ?`
	args := []any{q.LeagueID, q.Season}

	if q.Matchday != nil {
		query += " AND matchday = ?"
		args = append(args, *q.Matchday)
	}
	if q.Played != nil {
		query += " AND played = ?"
		args = append(args, boolToInt(*q.Played))
	}
	query += " ORDER BY matchday, scheduled_at"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures: %w", err)
	}
	defer rows.Close()

	return collectFixtures(rows)
}

func (s *store) NextUnplayedMatchday(leagueID string, season Season) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matchday int
	err := s.db.QueryRow(`
		SELECT matchday FROM fixtures
		WHERE league_id = ? AND season = ? AND played = 0
		ORDER BY matchday LIMIT 1`, leagueID, season).Scan(&matchday)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to find next unplayed matchday: %w", err)
	}
	return matchday, true, nil
}

// OverdueFixtures returns unplayed fixtures whose scheduled time has
// passed, across all leagues, in scheduled order.
func (s *store) OverdueFixtures(now time.Time) ([]Fixture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, league_id, season, matchday, home_team_id, away_team_id, scheduled_at, played, home_score, away_score, played_at
		FROM fixtures
		WHERE played = 0 AND scheduled_at <= ?
		ORDER BY scheduled_at, matchday`, now.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue fixtures: %w", err)
	}
	defer rows.Close()

	return collectFixtures(rows)
}

// MarkPlayedIfUnplayed is the single place a fixture transitions to
// played. The WHERE played = 0 guard makes the check-and-set atomic in
// the store, so a concurrent resolver loses cleanly instead of
// overwriting the first result.
func (s *store) MarkPlayedIfUnplayed(fixtureID string, homeScore, awayScore int, playedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE fixtures
		SET played = 1, home_score = ?, away_score = ?, played_at = ?
		WHERE id = ? AND played = 0`,
		homeScore, awayScore, playedAt.Unix(), fixtureID)
	if err != nil {
		return false, fmt.Errorf("failed to mark fixture %s played: %w", fixtureID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (s *store) HasFixtures(leagueID string, season Season) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM fixtures WHERE league_id = ? AND season = ?)`,
		leagueID, season).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check fixtures for league %s: %w", leagueID, err)
	}
	return exists, nil
}

// scanFixture is a helper to scan a single fixture row.
func scanFixture(scanner interface{ Scan(...any) error }) (Fixture, error) {
	var f Fixture
	var scheduledAt int64
	var played int
	var homeScore, awayScore, playedAt sql.NullInt64

	err := scanner.Scan(
		&f.ID, &f.LeagueID, &f.Season, &f.Matchday, &f.HomeTeamID, &f.AwayTeamID,
		&scheduledAt, &played, &homeScore, &awayScore, &playedAt,
	)
	if err != nil {
		return Fixture{}, err
	}

	f.ScheduledAt = time.Unix(scheduledAt, 0).UTC()
	f.Played = played == 1
	f.HomeScore = int(homeScore.Int64)
	f.AwayScore = int(awayScore.Int64)
	if playedAt.Valid {
		t := time.Unix(playedAt.Int64, 0).UTC()
		f.PlayedAt = &t
	}
	return f, nil
}

func collectFixtures(rows *sql.Rows) ([]Fixture, error) {
	var fixtures []Fixture
	for rows.Next() {
		f, err := scanFixture(rows)
		if err != nil {
			log.Error("Failed to scan fixture row", "error", err)
			continue
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
