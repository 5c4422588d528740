package statistics

import (
	"testing"

	"github.com/lox/paigow/internal/paigow"
	"github.com/lox/paigow/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(o paigow.Outcome, net int) RoundResult {
	return RoundResult{Outcome: o, Net: net, BackCategory: poker.OnePair, FrontCategory: poker.HighCard}
}

func TestStatisticsAdd(t *testing.T) {
	var s Statistics
	s.Add(result(paigow.Win, 10))
	s.Add(result(paigow.Push, 0))
	s.Add(result(paigow.Lose, -10))
	s.Add(result(paigow.Lose, -10))
	s.Add(RoundResult{Aborted: true})

	assert.Equal(t, 4, s.Rounds)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 1, s.Pushes)
	assert.Equal(t, 2, s.Losses)
	assert.Equal(t, 1, s.Aborted)
	assert.Equal(t, -10, s.SumNet)
	assert.InDelta(t, -2.5, s.Mean(), 1e-9)
	assert.InDelta(t, 0.25, s.WinRate(), 1e-9)
	assert.InDelta(t, 0.25, s.PushRate(), 1e-9)
	assert.InDelta(t, 0.5, s.LossRate(), 1e-9)
	assert.Equal(t, 4, s.BackCategories[poker.OnePair])
	require.NoError(t, s.Validate())
	assert.Equal(t, "4 rounds: 1 wins (25.0%), 1 pushes (25.0%), 2 losses (50.0%), 1 aborted, net -10", s.Summary())
}

func TestStatisticsVariance(t *testing.T) {
	var s Statistics
	for _, net := range []int{10, -10, 10, -10} {
		o := paigow.Win
		if net < 0 {
			o = paigow.Lose
		}
		s.Add(result(o, net))
	}
	assert.InDelta(t, 0, s.Mean(), 1e-9)
	assert.InDelta(t, 400.0/3.0, s.Variance(), 1e-9)
	lo, hi := s.ConfidenceInterval95()
	assert.Less(t, lo, 0.0)
	assert.Greater(t, hi, 0.0)
}

func TestStatisticsEmpty(t *testing.T) {
	var s Statistics
	assert.Zero(t, s.Mean())
	assert.Zero(t, s.WinRate())
	assert.Zero(t, s.StdDev())
	lo, hi := s.ConfidenceInterval95()
	assert.Zero(t, lo)
	assert.Zero(t, hi)
	require.NoError(t, s.Validate())
}

func TestStatisticsMerge(t *testing.T) {
	var a, b Statistics
	a.Add(result(paigow.Win, 5))
	b.Add(result(paigow.Lose, -5))
	b.Add(RoundResult{Aborted: true})
	a.Merge(b)

	assert.Equal(t, 2, a.Rounds)
	assert.Equal(t, 1, a.Aborted)
	assert.Equal(t, 0, a.SumNet)
	assert.Equal(t, 50, a.SumNet2)
	require.NoError(t, a.Validate())
}

func TestStatisticsValidateDetectsMismatch(t *testing.T) {
	s := Statistics{Rounds: 2, Wins: 1}
	assert.Error(t, s.Validate())
}
