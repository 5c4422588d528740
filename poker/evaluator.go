package poker

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrInvalidHandSize is returned when the number of cards is not an evaluable hand size.
	ErrInvalidHandSize = errors.New("invalid hand size")
	// ErrDuplicateCard is returned when the same card appears twice.
	ErrDuplicateCard = errors.New("duplicate card")
)

// HandSizes lists the card counts Evaluate accepts.
var HandSizes = []int{2, 3, 5}

// Category enumerates the categories of poker hands ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// TiebreakWidth is the fixed length of a HandRank tiebreak key.
const TiebreakWidth = 5

// HandRank is the totally ordered result of evaluating a hand: first by
// Category, then lexicographically by Tiebreak. Unused tiebreak slots are
// zero, which sorts below every real rank, so a shorter hand loses to a
// longer one that shares its prefix.
type HandRank struct {
	Category Category
	Tiebreak [TiebreakWidth]Rank
}

// Compare returns 1 if hr is stronger than other, -1 if weaker, 0 if equal.
func (hr HandRank) Compare(other HandRank) int {
	if hr.Category != other.Category {
		if hr.Category > other.Category {
			return 1
		}
		return -1
	}
	for i := range hr.Tiebreak {
		if hr.Tiebreak[i] != other.Tiebreak[i] {
			if hr.Tiebreak[i] > other.Tiebreak[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Beats reports whether hr is strictly stronger than other.
func (hr HandRank) Beats(other HandRank) bool {
	return hr.Compare(other) > 0
}

// Ranks returns the populated part of the tiebreak key.
func (hr HandRank) Ranks() []Rank {
	n := 0
	for n < len(hr.Tiebreak) && hr.Tiebreak[n] != 0 {
		n++
	}
	return slices.Clone(hr.Tiebreak[:n])
}

// String returns e.g. "Full House [7 7 7 2 2]".
func (hr HandRank) String() string {
	ranks := hr.Ranks()
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = r.Label()
	}
	return fmt.Sprintf("%s [%s]", hr.Category, strings.Join(parts, " "))
}

// CompareHands compares two hands and returns 1 if a wins, -1 if b wins, 0 for tie
func CompareHands(a, b HandRank) int {
	return a.Compare(b)
}

// Evaluate classifies 2, 3 or 5 cards into a HandRank. The result depends
// only on the set of cards, not their order.
//
// Straights and flushes need all five cards; smaller hands can only reach
// HighCard, OnePair and (with three cards) ThreeOfAKind. Aces always rank
// high, so A-2-3-4-5 is not a straight.
func Evaluate(cards []Card) (HandRank, error) {
	n := len(cards)
	if !slices.Contains(HandSizes, n) {
		return HandRank{}, fmt.Errorf("%w: %d cards", ErrInvalidHandSize, n)
	}

	var seen uint64
	var suits uint8
	for _, c := range cards {
		if !c.Valid() {
			return HandRank{}, fmt.Errorf("%w: rank %d suit %d", ErrInvalidCard, c.rank, c.suit)
		}
		bit := uint64(1) << c.index()
		if seen&bit != 0 {
			return HandRank{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen |= bit
		suits |= 1 << c.suit
	}

	groups := groupRanks(cards)
	flush := n == 5 && suits&(suits-1) == 0
	straight := n == 5 && len(groups) == n && groups[0].rank-groups[n-1].rank == Rank(n-1)

	// Tiebreak keys list ranks by group size, then rank, both descending:
	//   StraightFlush/Flush/Straight/HighCard: ranks descending
	//   FourOfAKind:  [quad x4, kicker]
	//   FullHouse:    [trips x3, pair x2]
	//   ThreeOfAKind: [trips x3, kickers descending]
	//   TwoPair:      [high x2, low x2, kicker]
	//   OnePair:      [pair x2, kickers descending]
	rank := HandRank{Tiebreak: tiebreak(groups)}
	switch {
	case straight && flush:
		rank.Category = StraightFlush
	case groups[0].count == 4:
		rank.Category = FourOfAKind
	case len(groups) == 2 && groups[0].count == 3 && groups[1].count == 2:
		rank.Category = FullHouse
	case flush:
		rank.Category = Flush
	case straight:
		rank.Category = Straight
	case groups[0].count == 3:
		rank.Category = ThreeOfAKind
	case len(groups) > 1 && groups[0].count == 2 && groups[1].count == 2:
		rank.Category = TwoPair
	case groups[0].count == 2:
		rank.Category = OnePair
	default:
		rank.Category = HighCard
	}
	return rank, nil
}

// MustEvaluate evaluates cards and panics on error (for tests and known-good input)
func MustEvaluate(cards []Card) HandRank {
	rank, err := Evaluate(cards)
	if err != nil {
		panic(fmt.Sprintf("failed to evaluate %v: %v", cards, err))
	}
	return rank
}

type rankGroup struct {
	rank  Rank
	count int
}

// groupRanks counts each rank and orders the groups by count then rank, descending.
func groupRanks(cards []Card) []rankGroup {
	var counts [Ace + 1]int
	for _, c := range cards {
		counts[c.rank]++
	}
	groups := make([]rankGroup, 0, len(cards))
	for r := Ace; r >= Two; r-- {
		if counts[r] > 0 {
			groups = append(groups, rankGroup{rank: r, count: counts[r]})
		}
	}
	slices.SortStableFunc(groups, func(a, b rankGroup) int {
		return b.count - a.count
	})
	return groups
}

func tiebreak(groups []rankGroup) [TiebreakWidth]Rank {
	var key [TiebreakWidth]Rank
	i := 0
	for _, g := range groups {
		for range g.count {
			key[i] = g.rank
			i++
		}
	}
	return key
}
