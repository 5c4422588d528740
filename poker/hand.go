package poker

import (
	"cmp"
	"slices"
	"strings"
)

// Hand is an evaluated set of cards, held in rank-descending order together
// with its cached HandRank.
type Hand struct {
	cards []Card
	rank  HandRank
}

// NewHand copies and sorts cards, then evaluates them. The input slice is
// never modified.
func NewHand(cards []Card) (Hand, error) {
	rank, err := Evaluate(cards)
	if err != nil {
		return Hand{}, err
	}
	return Hand{cards: SortedDesc(cards), rank: rank}, nil
}

// Cards returns a copy of the hand's cards, strongest first
func (h Hand) Cards() []Card { return slices.Clone(h.cards) }

// Rank returns the cached evaluation
func (h Hand) Rank() HandRank { return h.rank }

// Len returns the number of cards in the hand
func (h Hand) Len() int { return len(h.cards) }

// Compare returns 1 if h is stronger than other, -1 if weaker, 0 if equal.
func (h Hand) Compare(other Hand) int {
	return h.rank.Compare(other.rank)
}

// String returns e.g. "One Pair [As Ad]"
func (h Hand) String() string {
	return h.rank.Category.String() + " [" + FormatCards(h.cards) + "]"
}

// SortedDesc returns a new slice ordered by rank then suit, both descending.
func SortedDesc(cards []Card) []Card {
	sorted := slices.Clone(cards)
	slices.SortFunc(sorted, func(a, b Card) int {
		if c := cmp.Compare(b.rank, a.rank); c != 0 {
			return c
		}
		return cmp.Compare(b.suit, a.suit)
	})
	return sorted
}

// FormatCards joins cards in compact notation separated by spaces
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
