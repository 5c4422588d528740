package game

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/paigow/internal/paigow"
	"github.com/lox/paigow/poker"
)

// ReshuffleThreshold is the fewest cards that still cover a full round.
const ReshuffleThreshold = 2 * 7

// CardSource supplies cards to the dealer. *poker.Deck satisfies it.
type CardSource interface {
	Deal(n int) []poker.Card
	CardsRemaining() int
	Reset()
}

// Dealer deals pools for the player and the dealer from one shoe
type Dealer struct {
	source   CardSource
	rule     paigow.Rule
	logger   *log.Logger
	shuffles int
}

// NewDealer creates a dealer over a freshly shuffled deck
func NewDealer(rng *rand.Rand, logger *log.Logger) *Dealer {
	return NewDealerFrom(poker.NewDeck(rng), logger)
}

// NewDealerFrom creates a dealer over an arbitrary card source
func NewDealerFrom(source CardSource, logger *log.Logger) *Dealer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dealer{source: source, rule: paigow.DefaultRule, logger: logger}
}

// Shuffles returns how many times the shoe has been reshuffled
func (d *Dealer) Shuffles() int {
	return d.shuffles
}

// DealRound deals the player's pool first, then the dealer's. The shoe is
// reshuffled beforehand when it cannot cover both pools.
func (d *Dealer) DealRound() (player, dealer []poker.Card, err error) {
	need := 2 * d.rule.Pool
	if d.source.CardsRemaining() < need {
		d.logger.Info("Shuffling new deck", "remaining", d.source.CardsRemaining())
		d.source.Reset()
		d.shuffles++
	}

	player = d.source.Deal(d.rule.Pool)
	dealer = d.source.Deal(d.rule.Pool)
	if player == nil || dealer == nil {
		return nil, nil, fmt.Errorf("%w: shoe ran out with %d cards left", paigow.ErrInvalidPool, d.source.CardsRemaining())
	}

	both := append(append(make([]poker.Card, 0, need), player...), dealer...)
	if err := (paigow.Rule{Pool: need, Back: 0}).CheckPool(both); err != nil {
		return nil, nil, err
	}
	return player, dealer, nil
}
