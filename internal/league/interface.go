package league

import "time"

// LeagueStore defines the interface for interacting with league data.
type LeagueStore interface {
	CreateLeague(l League) error
	GetLeague(id string) (League, error)
	ListLeagues() ([]League, error)
	AddMembers(leagueID string, season Season, teamIDs []string) error
	MemberTeamIDs(leagueID string, season Season) ([]string, error)
	InsertFixtures(fixtures []Fixture) error
	GetFixture(id string) (Fixture, error)
	ListFixtures(q FixtureQuery) ([]Fixture, error)
	NextUnplayedMatchday(leagueID string, season Season) (int, bool, error)
	OverdueFixtures(now time.Time) ([]Fixture, error)
	// MarkPlayedIfUnplayed records the final score for a fixture with a
	// single conditional write. It returns false when the fixture was
	// already played, so two racing resolutions can never both win.
	MarkPlayedIfUnplayed(fixtureID string, homeScore, awayScore int, playedAt time.Time) (bool, error)
	HasFixtures(leagueID string, season Season) (bool, error)
}
