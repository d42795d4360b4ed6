package resolver

import (
	"time"

	"github.com/mauv0809/matchday/internal/league"
	"github.com/mauv0809/matchday/internal/notifier"
)

// Store defines the database operations required by the resolver.
type Store interface {
	GetFixture(id string) (league.Fixture, error)
	ListFixtures(q league.FixtureQuery) ([]league.Fixture, error)
	NextUnplayedMatchday(leagueID string, season league.Season) (int, bool, error)
	MarkPlayedIfUnplayed(fixtureID string, homeScore, awayScore int, playedAt time.Time) (bool, error)
}

// Notifier defines the notification operations required by the resolver.
// This is now an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
