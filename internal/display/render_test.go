package display

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/paigow/internal/game"
	"github.com/lox/paigow/internal/paigow"
	"github.com/lox/paigow/internal/statistics"
	"github.com/lox/paigow/poker"
)

func mustSplit(t *testing.T, pool string, indices []int) paigow.Split {
	t.Helper()
	split, err := paigow.Validate(poker.MustParseCards(pool), indices)
	require.NoError(t, err)
	return split
}

func TestCards(t *testing.T) {
	t.Parallel()
	r := Plain()
	assert.Equal(t, "A♠", r.Card(poker.MustParseCards("As")[0]))
	assert.Equal(t, "[10♦ 2♣]", r.Cards(poker.MustParseCards("Td 2c")))
	assert.Equal(t, "[]", r.Cards(nil))
}

func TestPoolShowsPositions(t *testing.T) {
	t.Parallel()
	out := Plain().Pool(poker.MustParseCards("As Td 3c"))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "A♠  10♦  3♣", lines[0])
	assert.Equal(t, "1   2    3 ", lines[1])
}

func TestHandAndSplit(t *testing.T) {
	t.Parallel()
	r := Plain()
	split := mustSplit(t, "2s 3d 4c 5h 6s Ah Ad", []int{0, 1, 2, 3, 4})

	assert.Equal(t, "[A♥ A♦] One Pair", r.Hand(split.Front))
	out := r.Split("Your hand", split)
	assert.Contains(t, out, "Your hand")
	assert.Contains(t, out, "back:  [6♠ 5♥ 4♣ 3♦ 2♠] Straight")
	assert.Contains(t, out, "front: [A♥ A♦] One Pair")
}

func TestRound(t *testing.T) {
	t.Parallel()
	r := Plain()
	round := game.Round{
		Number: 3,
		Bet:    10,
		Player: mustSplit(t, "2s 3d 4c 5h 6s Ah Ad", []int{0, 1, 2, 3, 4}),
		Dealer: mustSplit(t, "As Kd Qc Jh 9s 3h 3c", []int{2, 3, 4, 5, 6}),
	}
	round.Result = paigow.Resolve(round.Player, round.Dealer)
	round.Payout = game.Payout(round.Result.Outcome, round.Bet)

	out := r.Round(round)
	assert.Contains(t, out, "Dealer's hand")
	assert.Contains(t, out, "Back: player  Front: player")
	assert.Contains(t, out, "WIN  you win 10")

	round.Aborted = true
	assert.Equal(t, "Round 3 aborted, bet of 10 returned", r.Round(round))
}

func TestOutcome(t *testing.T) {
	t.Parallel()
	r := Plain()
	assert.Equal(t, "WIN", r.Outcome(paigow.Win))
	assert.Equal(t, "PUSH", r.Outcome(paigow.Push))
	assert.Equal(t, "LOSE", r.Outcome(paigow.Lose))
}

func TestStatistics(t *testing.T) {
	t.Parallel()
	var stats statistics.Statistics
	stats.Add(statistics.RoundResult{Outcome: paigow.Win, Net: 5, BackCategory: poker.Straight, FrontCategory: poker.OnePair})
	stats.Add(statistics.RoundResult{Outcome: paigow.Lose, Net: -5, BackCategory: poker.OnePair, FrontCategory: poker.HighCard})

	out := Plain().Statistics(stats)
	assert.Contains(t, out, "2 rounds: 1 wins")
	assert.Contains(t, out, "Straight")
	assert.Contains(t, out, "mean +0.000")
	assert.NotContains(t, out, "Flush")
}

func TestPlainHasNoEscapes(t *testing.T) {
	t.Parallel()
	r := Plain()
	out := r.Error(errors.New("boom")) + r.Info("hint") + r.Cards(poker.MustParseCards("Ah Ks"))
	assert.NotContains(t, out, "\x1b[")
	assert.Equal(t, "Error: boom", r.Error(errors.New("boom")))
}
