package game

import (
	"testing"

	"github.com/lox/paigow/poker"
)

// stackedShoe deals a fixed sequence of cards and starts over on Reset.
type stackedShoe struct {
	cards  []poker.Card
	next   int
	resets int
}

func newStackedShoe(t *testing.T, pools ...string) *stackedShoe {
	t.Helper()
	var cards []poker.Card
	for _, p := range pools {
		cards = append(cards, poker.MustParseCards(p)...)
	}
	return &stackedShoe{cards: cards}
}

func (s *stackedShoe) Deal(n int) []poker.Card {
	if s.next+n > len(s.cards) {
		return nil
	}
	out := append([]poker.Card(nil), s.cards[s.next:s.next+n]...)
	s.next += n
	return out
}

func (s *stackedShoe) CardsRemaining() int { return len(s.cards) - s.next }

func (s *stackedShoe) Reset() {
	s.next = 0
	s.resets++
}
