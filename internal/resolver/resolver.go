package resolver

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/matchday/internal/engine"
	"github.com/mauv0809/matchday/internal/league"
	"github.com/mauv0809/matchday/internal/metrics"
	"github.com/mauv0809/matchday/internal/pubsub"
	"github.com/mauv0809/matchday/internal/team"
)

// New creates a new Resolver.
func New(store Store, teams team.TeamStore, strength *engine.Estimator, scores *engine.Generator, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Resolver {
	return &Resolver{
		store:    store,
		teams:    teams,
		strength: strength,
		scores:   scores,
		notifier: notifier,
		metrics:  metrics,
		pubsub:   pubsub,
		now:      time.Now,
	}
}

// ResolveFixture simulates one fixture and persists its final score.
// Strength estimation happens fresh on every call; nothing is written
// until both strengths and the score are in hand, so a store failure
// leaves the fixture untouched. The conditional mark-played write
// guarantees at-most-once resolution even when two callers race.
func (r *Resolver) ResolveFixture(fixtureID string, dryRun bool) (*league.Result, error) {
	startTime := r.now()

	result, err := r.resolveFixture(fixtureID, dryRun)
	if err != nil {
		r.metrics.IncResolutionsFailed()
		return nil, err
	}

	r.metrics.IncFixturesResolved()
	r.metrics.ObserveResolutionDuration(time.Since(startTime).Seconds())
	return result, nil
}

func (r *Resolver) resolveFixture(fixtureID string, dryRun bool) (*league.Result, error) {
	fixture, err := r.store.GetFixture(fixtureID)
	if err != nil {
		return nil, err
	}
	if fixture.Played {
		return nil, fmt.Errorf("fixture %s: %w", fixtureID, league.ErrAlreadyPlayed)
	}

	homeStrength, err := r.strength.TeamStrength(fixture.HomeTeamID)
	if err != nil {
		return nil, fmt.Errorf("home strength for fixture %s: %w", fixtureID, err)
	}
	awayStrength, err := r.strength.TeamStrength(fixture.AwayTeamID)
	if err != nil {
		return nil, fmt.Errorf("away strength for fixture %s: %w", fixtureID, err)
	}

	homeScore, awayScore := r.scores.Generate(homeStrength, awayStrength)
	log.Info("Resolved fixture", "fixtureID", fixtureID, "matchday", fixture.Matchday,
		"home_strength", homeStrength, "away_strength", awayStrength,
		"score", fmt.Sprintf("%d-%d", homeScore, awayScore))

	if dryRun {
		log.Info("[Dry Run] Would mark fixture played", "fixtureID", fixtureID)
	} else {
		won, err := r.store.MarkPlayedIfUnplayed(fixtureID, homeScore, awayScore, r.now())
		if err != nil {
			return nil, err
		}
		if !won {
			// A concurrent resolution got there first; its result stands.
			return nil, fmt.Errorf("fixture %s: %w", fixtureID, league.ErrAlreadyPlayed)
		}
	}

	result := &league.Result{
		FixtureID:    fixture.ID,
		LeagueID:     fixture.LeagueID,
		Matchday:     fixture.Matchday,
		HomeTeam:     r.teamName(fixture.HomeTeamID),
		AwayTeam:     r.teamName(fixture.AwayTeamID),
		HomeScore:    homeScore,
		AwayScore:    awayScore,
		HomeStrength: homeStrength,
		AwayStrength: awayStrength,
	}

	r.broadcast(result, dryRun)
	return result, nil
}

// ResolveMatchday resolves every unplayed fixture of one matchday. A
// zero matchday means "the next unplayed one". A failure resolving one
// fixture is logged and does not abort the rest of the batch.
func (r *Resolver) ResolveMatchday(leagueID string, season league.Season, matchday int, dryRun bool) ([]*league.Result, error) {
	if matchday <= 0 {
		next, ok, err := r.store.NextUnplayedMatchday(leagueID, season)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Info("Season complete, nothing to resolve", "leagueID", leagueID, "season", season)
			return []*league.Result{}, nil
		}
		matchday = next
	}

	played := false
	fixtures, err := r.store.ListFixtures(league.FixtureQuery{
		LeagueID: leagueID,
		Season:   season,
		Matchday: &matchday,
		Played:   &played,
	})
	if err != nil {
		return nil, err
	}

	results := make([]*league.Result, 0, len(fixtures))
	for _, f := range fixtures {
		result, err := r.ResolveFixture(f.ID, dryRun)
		if err != nil {
			log.Error("Failed to resolve fixture, continuing with matchday", "fixtureID", f.ID, "error", err)
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// broadcast emits the result to interested listeners. Delivery is best
// effort: a failed notification never fails the resolution.
func (r *Resolver) broadcast(result *league.Result, dryRun bool) {
	if !dryRun {
		if err := r.pubsub.SendMessage(pubsub.EventMatchResult, result); err != nil {
			log.Error("Failed to publish match result", "fixtureID", result.FixtureID, "error", err)
		}
	}
	if err := r.notifier.SendResultNotification(result, dryRun); err != nil {
		log.Error("Failed to send result notification", "fixtureID", result.FixtureID, "error", err)
	}
}

func (r *Resolver) teamName(teamID string) string {
	t, err := r.teams.GetTeam(teamID)
	if err != nil {
		log.Warn("Failed to look up team name, falling back to id", "teamID", teamID, "error", err)
		return teamID
	}
	return t.Name
}
