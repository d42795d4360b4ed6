package standings

import (
	"sort"

	"github.com/mauv0809/matchday/internal/league"
	"github.com/mauv0809/matchday/internal/team"
)

// Row is one team's aggregated season record. Rows are derived on
// demand from the played-fixture set and never persisted.
type Row struct {
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	Rank           int    `json:"rank"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// Calculator reduces a league/season's played fixtures into a table.
type Calculator struct {
	leagues league.LeagueStore
	teams   team.TeamStore
}

// NewCalculator creates a Calculator reading from the given stores.
func NewCalculator(leagues league.LeagueStore, teams team.TeamStore) *Calculator {
	return &Calculator{
		leagues: leagues,
		teams:   teams,
	}
}

// Table computes the ranked standings for a league and season. Every
// member gets a row even before playing a fixture.
func (c *Calculator) Table(leagueID string, season league.Season) ([]Row, error) {
	if _, err := c.leagues.GetLeague(leagueID); err != nil {
		return nil, err
	}
	memberIDs, err := c.leagues.MemberTeamIDs(leagueID, season)
	if err != nil {
		return nil, err
	}
	members, err := c.teams.GetTeams(memberIDs)
	if err != nil {
		return nil, err
	}

	played := true
	fixtures, err := c.leagues.ListFixtures(league.FixtureQuery{
		LeagueID: leagueID,
		Season:   season,
		Played:   &played,
	})
	if err != nil {
		return nil, err
	}

	return Compute(members, fixtures), nil
}

// Compute is the pure reduction: points 3/1/0, sorted by points, then
// goal difference, then goals for, all descending. Teams tied on all
// three criteria keep their input order (stable sort); that residual
// tie is accepted rather than broken artificially.
func Compute(members []team.Team, fixtures []league.Fixture) []Row {
	index := make(map[string]*Row, len(members))
	rows := make([]*Row, 0, len(members))
	for _, m := range members {
		row := &Row{TeamID: m.ID, TeamName: m.Name}
		index[m.ID] = row
		rows = append(rows, row)
	}

	for _, f := range fixtures {
		if !f.Played {
			continue
		}
		home, homeOK := index[f.HomeTeamID]
		away, awayOK := index[f.AwayTeamID]
		if !homeOK || !awayOK {
			continue
		}

		home.Played++
		away.Played++
		home.GoalsFor += f.HomeScore
		home.GoalsAgainst += f.AwayScore
		away.GoalsFor += f.AwayScore
		away.GoalsAgainst += f.HomeScore

		switch {
		case f.HomeScore > f.AwayScore:
			home.Won++
			home.Points += 3
			away.Lost++
		case f.HomeScore < f.AwayScore:
			away.Won++
			away.Points += 3
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
			home.Points++
			away.Points++
		}
	}

	for _, r := range rows {
		r.GoalDifference = r.GoalsFor - r.GoalsAgainst
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		return a.GoalsFor > b.GoalsFor
	})

	table := make([]Row, len(rows))
	for i, r := range rows {
		r.Rank = i + 1
		table[i] = *r
	}
	return table
}
