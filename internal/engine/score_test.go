package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_NeverNegative(t *testing.T) {
	g := NewGenerator(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		home, away := g.Generate(1, 99)
		assert.GreaterOrEqual(t, home, 0)
		assert.GreaterOrEqual(t, away, 0)
	}
}

func TestGenerate_EqualStrengthsAverageNearBaseline(t *testing.T) {
	g := NewGenerator(rand.NewSource(42))

	// Neutralize home advantage by handing the away side the same bonus.
	const trials = 20000
	var homeTotal, awayTotal int
	for i := 0; i < trials; i++ {
		home, away := g.Generate(70, 70+homeAdvantage)
		homeTotal += home
		awayTotal += away
	}

	homeMean := float64(homeTotal) / trials
	awayMean := float64(awayTotal) / trials
	assert.InDelta(t, baselineGoals, homeMean, 0.1)
	assert.InDelta(t, baselineGoals, awayMean, 0.1)
}

func TestGenerate_StrongerHomeSideWinsMoreOften(t *testing.T) {
	g := NewGenerator(rand.NewSource(7))

	var homeWins, awayWins int
	for i := 0; i < 1000; i++ {
		home, away := g.Generate(70, 60)
		switch {
		case home > away:
			homeWins++
		case away > home:
			awayWins++
		}
	}
	assert.Greater(t, homeWins, awayWins,
		"Strength edge plus home advantage should produce measurably more home wins")
}

func TestGoalsFromExpected_FloorsAtZero(t *testing.T) {
	g := NewGenerator(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		assert.GreaterOrEqual(t, g.goalsFromExpected(minExpectedGoals), 0)
	}
}
