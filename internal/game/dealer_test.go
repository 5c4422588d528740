package game

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/paigow/internal/paigow"
	"github.com/lox/paigow/internal/randutil"
	"github.com/lox/paigow/poker"
)

func TestDealerDealsDistinctPools(t *testing.T) {
	t.Parallel()
	d := NewDealer(randutil.New(7), nil)
	for i := 0; i < 20; i++ {
		player, dealer, err := d.DealRound()
		require.NoError(t, err)
		require.Len(t, player, 7)
		require.Len(t, dealer, 7)

		seen := make(map[poker.Card]bool)
		for _, c := range append(player, dealer...) {
			assert.False(t, seen[c], "card %s dealt twice in round %d", c, i)
			seen[c] = true
		}
	}
	// Three rounds fit in a deck, so twenty rounds need six reshuffles.
	assert.Equal(t, 6, d.Shuffles())
}

func TestDealerDeterministic(t *testing.T) {
	t.Parallel()
	a := NewDealer(randutil.New(99), nil)
	b := NewDealer(randutil.New(99), nil)
	for i := 0; i < 5; i++ {
		ap, ad, err := a.DealRound()
		require.NoError(t, err)
		bp, bd, err := b.DealRound()
		require.NoError(t, err)
		assert.Equal(t, ap, bp)
		assert.Equal(t, ad, bd)
	}
}

func TestDealerReshuffleIsLogged(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	shoe := newStackedShoe(t, "2s 3d 4c 5h 6s Ah Ad", "As Kd Qc Jh 9s 3h 3c")
	d := NewDealerFrom(shoe, logger)

	_, _, err := d.DealRound()
	require.NoError(t, err)
	assert.Zero(t, shoe.resets)
	assert.Empty(t, buf.String())

	_, _, err = d.DealRound()
	require.NoError(t, err)
	assert.Equal(t, 1, shoe.resets)
	assert.Contains(t, buf.String(), "Shuffling new deck")
}

func TestDealerRejectsDuplicateCards(t *testing.T) {
	t.Parallel()
	shoe := newStackedShoe(t, "2s 3d 4c 5h 6s Ah Ad", "As Kd Qc Jh 9s 3h 2s")
	_, _, err := NewDealerFrom(shoe, nil).DealRound()
	assert.ErrorIs(t, err, paigow.ErrInvalidPool)
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)
}

func TestDealerShortShoe(t *testing.T) {
	t.Parallel()
	shoe := newStackedShoe(t, "2s 3d 4c 5h 6s Ah Ad", "As Kd Qc")
	_, _, err := NewDealerFrom(shoe, nil).DealRound()
	assert.ErrorIs(t, err, paigow.ErrInvalidPool)
}
