package engine

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/matchday/internal/team"
)

// DefaultStrength is used for teams with no registered players.
const DefaultStrength = 60

// positionWeights bias the strength estimate towards attacking
// positions, which influence scoring more than goalkeeping does.
var positionWeights = map[string]float64{
	team.PositionGoalkeeper: 0.8,
	team.PositionDefender:   1.0,
	team.PositionMidfielder: 1.1,
	team.PositionForward:    1.2,
}

// Estimator derives a single scalar strength for a team from its
// current squad. It is deliberately stateless: player ratings can
// change between matches, so the strength is recomputed on every
// resolution and never cached.
type Estimator struct {
	teams team.TeamStore
}

// NewEstimator creates a new Estimator reading from the given store.
func NewEstimator(teams team.TeamStore) *Estimator {
	return &Estimator{teams: teams}
}

// TeamStrength returns a weighted mean of the squad's overall ratings,
// on the same 1-99 scale as individual player ratings.
func (e *Estimator) TeamStrength(teamID string) (int, error) {
	players, err := e.teams.GetPlayers(teamID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch players for strength estimate: %w", err)
	}
	if len(players) == 0 {
		log.Debug("Team has no players, using default strength", "teamID", teamID)
		return DefaultStrength, nil
	}

	var totalWeightedRating, totalWeight float64
	for _, p := range players {
		weight, ok := positionWeights[p.Position]
		if !ok {
			weight = 1.0
		}
		totalWeightedRating += float64(p.OverallRating) * weight
		totalWeight += weight
	}

	return int(math.Round(totalWeightedRating / totalWeight)), nil
}
