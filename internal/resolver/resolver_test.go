package resolver

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/mauv0809/matchday/internal/engine"
	"github.com/mauv0809/matchday/internal/league"
	"github.com/mauv0809/matchday/internal/metrics"
	"github.com/mauv0809/matchday/internal/notifier"
	"github.com/mauv0809/matchday/internal/pubsub"
	"github.com/mauv0809/matchday/internal/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(store *league.MockStore, teams *team.MockStore) (*Resolver, *notifier.Mock, *metrics.Mock, *pubsub.MockPubSubClient) {
	notif := notifier.NewMock()
	metr := metrics.NewMock()
	ps := pubsub.NewMock("TEST")
	r := New(store, teams,
		engine.NewEstimator(teams),
		engine.NewGenerator(rand.NewSource(1)),
		notif, metr, ps)
	return r, notif, metr, ps
}

func squad(rating int) []team.PlayerInfo {
	return []team.PlayerInfo{
		{Position: team.PositionGoalkeeper, OverallRating: rating},
		{Position: team.PositionDefender, OverallRating: rating},
		{Position: team.PositionMidfielder, OverallRating: rating},
		{Position: team.PositionForward, OverallRating: rating},
	}
}

func TestResolveFixture(t *testing.T) {
	t.Run("resolves an unplayed fixture exactly once", func(t *testing.T) {
		store := league.NewMock()
		store.GetFixtureFunc = func(id string) (league.Fixture, error) {
			return league.Fixture{ID: id, LeagueID: "l1", Matchday: 3, HomeTeamID: "home", AwayTeamID: "away"}, nil
		}
		teams := team.NewMock()
		teams.GetPlayersFunc = func(teamID string) ([]team.PlayerInfo, error) {
			if teamID == "home" {
				return squad(70), nil
			}
			return squad(60), nil
		}
		teams.GetTeamFunc = func(id string) (team.Team, error) {
			return team.Team{ID: id, Name: "Team " + id}, nil
		}

		r, notif, metr, ps := newTestResolver(store, teams)
		result, err := r.ResolveFixture("f1", false)
		require.NoError(t, err)

		assert.Equal(t, 70, result.HomeStrength)
		assert.Equal(t, 60, result.AwayStrength)
		assert.Equal(t, "Team home", result.HomeTeam)
		assert.GreaterOrEqual(t, result.HomeScore, 0)
		assert.GreaterOrEqual(t, result.AwayScore, 0)

		require.Len(t, store.MarkPlayedIfUnplayedCalls, 1)
		assert.Equal(t, result.HomeScore, store.MarkPlayedIfUnplayedCalls[0].HomeScore)
		assert.Equal(t, result.AwayScore, store.MarkPlayedIfUnplayedCalls[0].AwayScore)

		require.Len(t, notif.SendResultNotificationCalls, 1)
		require.Len(t, ps.SendMessageCalls, 1)
		assert.Equal(t, "match-result", ps.SendMessageCalls[0].Topic)
		assert.Equal(t, 1, metr.FixturesResolved())
	})

	t.Run("missing fixture surfaces not-found", func(t *testing.T) {
		store := league.NewMock()
		teams := team.NewMock()

		r, _, metr, _ := newTestResolver(store, teams)
		_, err := r.ResolveFixture("missing", false)
		assert.ErrorIs(t, err, league.ErrFixtureNotFound)
		assert.Equal(t, 1, metr.ResolutionsFailed())
	})

	t.Run("already played fixture surfaces conflict without writes", func(t *testing.T) {
		store := league.NewMock()
		store.GetFixtureFunc = func(id string) (league.Fixture, error) {
			return league.Fixture{ID: id, HomeTeamID: "home", AwayTeamID: "away", Played: true}, nil
		}
		teams := team.NewMock()

		r, notif, _, _ := newTestResolver(store, teams)
		_, err := r.ResolveFixture("f1", false)
		assert.ErrorIs(t, err, league.ErrAlreadyPlayed)
		assert.Empty(t, store.MarkPlayedIfUnplayedCalls)
		assert.Empty(t, notif.SendResultNotificationCalls)
	})

	t.Run("losing the conditional update surfaces conflict", func(t *testing.T) {
		store := league.NewMock()
		store.GetFixtureFunc = func(id string) (league.Fixture, error) {
			return league.Fixture{ID: id, HomeTeamID: "home", AwayTeamID: "away"}, nil
		}
		store.MarkPlayedIfUnplayedFunc = func(fixtureID string, h, a int, at time.Time) (bool, error) {
			return false, nil
		}
		teams := team.NewMock()

		r, notif, _, _ := newTestResolver(store, teams)
		_, err := r.ResolveFixture("f1", false)
		assert.ErrorIs(t, err, league.ErrAlreadyPlayed)
		assert.Empty(t, notif.SendResultNotificationCalls, "The losing resolver must not broadcast")
	})

	t.Run("strength estimation failure leaves fixture untouched", func(t *testing.T) {
		store := league.NewMock()
		store.GetFixtureFunc = func(id string) (league.Fixture, error) {
			return league.Fixture{ID: id, HomeTeamID: "home", AwayTeamID: "away"}, nil
		}
		teams := team.NewMock()
		teams.GetPlayersFunc = func(teamID string) ([]team.PlayerInfo, error) {
			return nil, errors.New("store unreachable")
		}

		r, _, metr, _ := newTestResolver(store, teams)
		_, err := r.ResolveFixture("f1", false)
		require.Error(t, err)
		assert.Empty(t, store.MarkPlayedIfUnplayedCalls, "No partial writes on estimator failure")
		assert.Equal(t, 1, metr.ResolutionsFailed())
	})

	t.Run("dry run skips persistence and pubsub", func(t *testing.T) {
		store := league.NewMock()
		store.GetFixtureFunc = func(id string) (league.Fixture, error) {
			return league.Fixture{ID: id, HomeTeamID: "home", AwayTeamID: "away"}, nil
		}
		teams := team.NewMock()

		r, notif, _, ps := newTestResolver(store, teams)
		result, err := r.ResolveFixture("f1", true)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Empty(t, store.MarkPlayedIfUnplayedCalls)
		assert.Empty(t, ps.SendMessageCalls)
		require.Len(t, notif.SendResultNotificationCalls, 1, "Dry run still exercises the notifier in dry-run mode")
	})
}

func TestResolveMatchday(t *testing.T) {
	t.Run("discovers the next unplayed matchday", func(t *testing.T) {
		store := league.NewMock()
		store.NextUnplayedMatchdayFunc = func(leagueID string, season league.Season) (int, bool, error) {
			return 4, true, nil
		}
		store.ListFixturesFunc = func(q league.FixtureQuery) ([]league.Fixture, error) {
			require.NotNil(t, q.Matchday)
			assert.Equal(t, 4, *q.Matchday)
			return []league.Fixture{
				{ID: "f1", LeagueID: q.LeagueID, Matchday: 4, HomeTeamID: "a", AwayTeamID: "b"},
				{ID: "f2", LeagueID: q.LeagueID, Matchday: 4, HomeTeamID: "c", AwayTeamID: "d"},
			}, nil
		}
		store.GetFixtureFunc = func(id string) (league.Fixture, error) {
			return league.Fixture{ID: id, LeagueID: "l1", Matchday: 4, HomeTeamID: "a", AwayTeamID: "b"}, nil
		}
		teams := team.NewMock()

		r, _, _, _ := newTestResolver(store, teams)
		results, err := r.ResolveMatchday("l1", "2024-25", 0, false)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("season complete yields empty result set", func(t *testing.T) {
		store := league.NewMock()
		teams := team.NewMock()

		r, _, _, _ := newTestResolver(store, teams)
		results, err := r.ResolveMatchday("l1", "2024-25", 0, false)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("one failing fixture does not abort the batch", func(t *testing.T) {
		store := league.NewMock()
		store.ListFixturesFunc = func(q league.FixtureQuery) ([]league.Fixture, error) {
			return []league.Fixture{
				{ID: "f1", Matchday: 1, HomeTeamID: "a", AwayTeamID: "b"},
				{ID: "broken", Matchday: 1, HomeTeamID: "c", AwayTeamID: "d"},
				{ID: "f3", Matchday: 1, HomeTeamID: "e", AwayTeamID: "f"},
			}, nil
		}
		store.GetFixtureFunc = func(id string) (league.Fixture, error) {
			if id == "broken" {
				return league.Fixture{}, errors.New("row corrupted")
			}
			return league.Fixture{ID: id, Matchday: 1, HomeTeamID: "a", AwayTeamID: "b"}, nil
		}
		teams := team.NewMock()

		r, _, metr, _ := newTestResolver(store, teams)
		results, err := r.ResolveMatchday("l1", "2024-25", 1, false)
		require.NoError(t, err)
		assert.Len(t, results, 2)
		assert.Equal(t, 2, metr.FixturesResolved())
		assert.Equal(t, 1, metr.ResolutionsFailed())
	})
}
