package standings

import (
	"testing"

	"github.com/mauv0809/matchday/internal/league"
	"github.com/mauv0809/matchday/internal/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var members = []team.Team{
	{ID: "a", Name: "Alpha"},
	{ID: "b", Name: "Beta"},
	{ID: "c", Name: "Gamma"},
	{ID: "d", Name: "Delta"},
}

func playedFixture(home, away string, homeScore, awayScore int) league.Fixture {
	return league.Fixture{
		HomeTeamID: home,
		AwayTeamID: away,
		HomeScore:  homeScore,
		AwayScore:  awayScore,
		Played:     true,
	}
}

func TestCompute_PointsAndOrdering(t *testing.T) {
	fixtures := []league.Fixture{
		playedFixture("a", "b", 3, 0), // a wins
		playedFixture("c", "d", 1, 1), // draw
		playedFixture("b", "c", 0, 2), // c wins
		playedFixture("d", "a", 0, 1), // a wins
	}

	table := Compute(members, fixtures)
	require.Len(t, table, 4)

	assert.Equal(t, "Alpha", table[0].TeamName)
	assert.Equal(t, 6, table[0].Points)
	assert.Equal(t, 1, table[0].Rank)
	assert.Equal(t, 2, table[0].Won)
	assert.Equal(t, 4, table[0].GoalsFor)
	assert.Equal(t, 0, table[0].GoalsAgainst)

	assert.Equal(t, "Gamma", table[1].TeamName)
	assert.Equal(t, 4, table[1].Points)

	assert.Equal(t, "Delta", table[2].TeamName)
	assert.Equal(t, 1, table[2].Points)

	assert.Equal(t, "Beta", table[3].TeamName)
	assert.Equal(t, 0, table[3].Points)
	assert.Equal(t, 4, table[3].Rank)
}

func TestCompute_OrderIndependent(t *testing.T) {
	fixtures := []league.Fixture{
		playedFixture("a", "b", 2, 1),
		playedFixture("c", "d", 0, 3),
		playedFixture("a", "c", 1, 1),
		playedFixture("b", "d", 2, 2),
	}
	reversed := make([]league.Fixture, len(fixtures))
	for i, f := range fixtures {
		reversed[len(fixtures)-1-i] = f
	}

	assert.Equal(t, Compute(members, fixtures), Compute(members, reversed),
		"Standings should not depend on fixture insertion order")
}

func TestCompute_GoalAndWinConservation(t *testing.T) {
	fixtures := []league.Fixture{
		playedFixture("a", "b", 4, 2),
		playedFixture("c", "d", 0, 0),
		playedFixture("b", "c", 1, 3),
		playedFixture("d", "a", 2, 2),
	}

	table := Compute(members, fixtures)

	var won, goalsFor, goalsAgainst, decisive int
	for _, r := range table {
		won += r.Won
		goalsFor += r.GoalsFor
		goalsAgainst += r.GoalsAgainst
	}
	for _, f := range fixtures {
		if f.HomeScore != f.AwayScore {
			decisive++
		}
	}
	assert.Equal(t, decisive, won, "Total wins should equal fixtures with a strict winner")
	assert.Equal(t, goalsFor, goalsAgainst, "Goals for and against should balance across the table")
}

func TestCompute_TiebreakOnGoalDifferenceThenGoalsFor(t *testing.T) {
	fixtures := []league.Fixture{
		playedFixture("a", "c", 1, 0), // a: 3 pts, GD +1
		playedFixture("b", "d", 3, 1), // b: 3 pts, GD +2
	}

	table := Compute(members, fixtures)
	assert.Equal(t, "Beta", table[0].TeamName, "Higher goal difference should rank first on equal points")
	assert.Equal(t, "Alpha", table[1].TeamName)
}

func TestCompute_FullTieKeepsInputOrder(t *testing.T) {
	// a and b end with identical points, GD and GF.
	fixtures := []league.Fixture{
		playedFixture("a", "c", 1, 0),
		playedFixture("b", "d", 1, 0),
	}

	table := Compute(members, fixtures)
	assert.Equal(t, "Alpha", table[0].TeamName, "Full ties retain member input order")
	assert.Equal(t, "Beta", table[1].TeamName)
	assert.Equal(t, 1, table[0].Rank)
	assert.Equal(t, 2, table[1].Rank)
}

func TestCompute_MembersWithoutFixturesGetZeroRows(t *testing.T) {
	table := Compute(members, nil)
	require.Len(t, table, 4)
	for _, r := range table {
		assert.Zero(t, r.Played)
		assert.Zero(t, r.Points)
	}
}

func TestTable_ReadsFromStores(t *testing.T) {
	leagues := league.NewMock()
	leagues.GetLeagueFunc = func(id string) (league.League, error) {
		return league.League{ID: id, Name: "Test League"}, nil
	}
	leagues.MemberTeamIDsFunc = func(leagueID string, season league.Season) ([]string, error) {
		return []string{"a", "b"}, nil
	}
	leagues.ListFixturesFunc = func(q league.FixtureQuery) ([]league.Fixture, error) {
		require.NotNil(t, q.Played)
		assert.True(t, *q.Played, "Only played fixtures should be fetched")
		return []league.Fixture{playedFixture("a", "b", 2, 0)}, nil
	}
	teams := team.NewMock()
	teams.GetTeamsFunc = func(ids []string) ([]team.Team, error) {
		return []team.Team{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Beta"}}, nil
	}

	table, err := NewCalculator(leagues, teams).Table("l1", "2024-25")
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, "Alpha", table[0].TeamName)
	assert.Equal(t, 3, table[0].Points)
}

func TestTable_UnknownLeague(t *testing.T) {
	_, err := NewCalculator(league.NewMock(), team.NewMock()).Table("ghost", "2024-25")
	assert.ErrorIs(t, err, league.ErrLeagueNotFound)
}
