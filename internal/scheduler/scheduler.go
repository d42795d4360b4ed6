package scheduler

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/matchday/internal/league"
)

// Scheduler builds a season's complete double round-robin fixture list.
type Scheduler struct {
	store  league.LeagueStore
	season league.Season
	start  time.Time
}

// New creates a Scheduler writing fixtures for the given season,
// with matchday one kicking off at start.
func New(store league.LeagueStore, season league.Season, start time.Time) *Scheduler {
	return &Scheduler{
		store:  store,
		season: season,
		start:  start,
	}
}

// ScheduleLeague generates and persists the full season schedule for
// one league. It refuses to run twice for the same league and season,
// and the bulk insert is transactional: the whole schedule lands or
// none of it does.
func (s *Scheduler) ScheduleLeague(leagueID string) error {
	l, err := s.store.GetLeague(leagueID)
	if err != nil {
		return err
	}

	exists, err := s.store.HasFixtures(leagueID, s.season)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("league %s season %s: %w", leagueID, s.season, league.ErrScheduleExists)
	}

	teamIDs, err := s.store.MemberTeamIDs(leagueID, s.season)
	if err != nil {
		return err
	}
	if len(teamIDs) < 2 {
		return fmt.Errorf("league %s has %d members: %w", leagueID, len(teamIDs), league.ErrTooFewTeams)
	}
	if l.MaxTeams > 0 && len(teamIDs) != l.MaxTeams {
		return fmt.Errorf("league %s has %d members, wants %d: %w", leagueID, len(teamIDs), l.MaxTeams, league.ErrWrongLeagueSize)
	}

	fixtures := BuildSeason(leagueID, s.season, teamIDs, s.start)
	if err := s.store.InsertFixtures(fixtures); err != nil {
		return err
	}

	log.Info("Scheduled season", "leagueID", leagueID, "season", s.season,
		"fixtures", len(fixtures), "matchdays", 2*(len(teamIDs)-1))
	return nil
}

// ScheduleAll schedules every league for the season. A failure in one
// league is logged and does not prevent the others from being scheduled.
func (s *Scheduler) ScheduleAll() error {
	leagues, err := s.store.ListLeagues()
	if err != nil {
		return err
	}

	for _, l := range leagues {
		if err := s.ScheduleLeague(l.ID); err != nil {
			log.Error("Failed to schedule league, continuing with the rest", "leagueID", l.ID, "error", err)
		}
	}
	return nil
}

// pairing is one home/away assignment inside a round.
type pairing struct {
	home, away int // indices into the team list
}

// BuildSeason produces the complete double round robin for the given
// teams: every unordered pair meets twice with venues swapped, the
// second half mirroring the first with matchdays offset by the number
// of rounds. Odd team counts get a bye slot; the bye plays nobody.
func BuildSeason(leagueID string, season league.Season, teamIDs []string, seasonStart time.Time) []league.Fixture {
	rounds := buildRounds(len(teamIDs))

	var fixtures []league.Fixture
	appendRound := func(matchday int, round []pairing, swap bool) {
		date := matchdayDate(seasonStart, matchday)
		for _, p := range round {
			home, away := teamIDs[p.home], teamIDs[p.away]
			if swap {
				home, away = away, home
			}
			fixtures = append(fixtures, league.Fixture{
				ID:          uuid.NewString(),
				LeagueID:    leagueID,
				Season:      season,
				Matchday:    matchday,
				HomeTeamID:  home,
				AwayTeamID:  away,
				ScheduledAt: date,
			})
		}
	}

	for i, round := range rounds {
		appendRound(i+1, round, false)
	}
	// Second half: same pairings, venues reversed.
	for i, round := range rounds {
		appendRound(len(rounds)+i+1, round, true)
	}
	return fixtures
}

// buildRounds runs the circle method over team indices: index 0 stays
// fixed while the rest rotate, pairing position i with position n-1-i
// each round. Venue assignment alternates with round parity so no team
// sits at the same venue for long runs. An odd team count gets a
// phantom index that yields no pairing (the bye).
func buildRounds(teamCount int) [][]pairing {
	n := teamCount
	bye := -1
	if n%2 != 0 {
		bye = n
		n++
	}

	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}

	rounds := make([][]pairing, 0, n-1)
	for round := 0; round < n-1; round++ {
		pairings := make([]pairing, 0, n/2)
		for i := 0; i < n/2; i++ {
			home, away := positions[i], positions[n-1-i]
			if home == bye || away == bye {
				continue
			}
			if round%2 == 1 {
				home, away = away, home
			}
			pairings = append(pairings, pairing{home: home, away: away})
		}
		rounds = append(rounds, pairings)

		// Rotate all positions except the first.
		last := positions[n-1]
		copy(positions[2:], positions[1:n-1])
		positions[1] = last
	}
	return rounds
}

// matchdayDate places fixtures twice weekly: odd matchdays on the
// season-start weekday, even matchdays four days later.
func matchdayDate(seasonStart time.Time, matchday int) time.Time {
	weeksPassed := (matchday - 1) / 2
	date := seasonStart.AddDate(0, 0, weeksPassed*7)
	if matchday%2 == 0 {
		date = date.AddDate(0, 0, 4)
	}
	return date
}
