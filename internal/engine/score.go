package engine

import (
	"math"
	"math/rand"
)

const (
	// homeAdvantage is added to the home side's strength before comparison.
	homeAdvantage = 5
	// baselineGoals is the expected goal count per side in a balanced match.
	baselineGoals = 1.5
	// minExpectedGoals floors the expectation so a heavily outmatched
	// side never degenerates to a near-zero scoring chance.
	minExpectedGoals = 0.3
	// strengthDivisor converts a strength gap into an expected-goal shift.
	strengthDivisor = 20.0
)

// Generator converts two team strengths into a scoreline.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator drawing from the given source.
// Tests pass a seeded source for reproducible draws.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate produces (home goals, away goals) for the given strengths.
// Home advantage and the strength gap shift each side's expected goal
// count away from the baseline before sampling.
func (g *Generator) Generate(homeStrength, awayStrength int) (int, int) {
	diff := float64(homeStrength+homeAdvantage-awayStrength) / strengthDivisor

	homeExpected := math.Max(minExpectedGoals, baselineGoals+diff)
	awayExpected := math.Max(minExpectedGoals, baselineGoals-diff)

	return g.goalsFromExpected(homeExpected), g.goalsFromExpected(awayExpected)
}

// goalsFromExpected samples an integer goal count from an expected
// value via geometric trials: multiply a running probability by uniform
// draws until it falls below e^(-expected). This approximates a Poisson
// draw, which is close enough for simulated fixtures.
func (g *Generator) goalsFromExpected(expected float64) int {
	threshold := math.Exp(-expected)
	probability := 1.0
	goals := 0
	for probability > threshold {
		probability *= g.rng.Float64()
		goals++
	}
	if goals == 0 {
		return 0
	}
	return goals - 1
}
