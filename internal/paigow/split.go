// Package paigow implements the two-hand split rules: validating that a
// back hand dominates its front hand, automated splitting strategies, and
// resolving a player's split against an opponent's.
package paigow

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lox/paigow/poker"
)

var (
	// ErrWrongCount is returned when a selection does not name exactly the
	// back-hand size of distinct, in-range indices.
	ErrWrongCount = errors.New("wrong card selection")
	// ErrIllegalDominance is returned when the back hand does not strictly
	// outrank the front hand.
	ErrIllegalDominance = errors.New("back hand must beat front hand")
	// ErrInvalidPool is returned when the dealt pool has the wrong size or
	// repeats a card. It indicates a dealer defect, not a user error.
	ErrInvalidPool = errors.New("invalid card pool")
)

// Rule describes how a pool of cards is split into back and front hands.
type Rule struct {
	Pool int // cards dealt to one seat
	Back int // cards in the back hand; the rest form the front
}

// DefaultRule splits seven cards into a five-card back and two-card front.
var DefaultRule = Rule{Pool: 7, Back: 5}

// Front returns the front-hand size.
func (r Rule) Front() int { return r.Pool - r.Back }

// Split is an accepted partition of a pool. Back always outranks Front.
type Split struct {
	Back  poker.Hand
	Front poker.Hand
}

// String returns e.g. "back: Straight [6s 5h 4c 3d 2s] / front: One Pair [As Ad]"
func (s Split) String() string {
	return fmt.Sprintf("back: %s / front: %s", s.Back, s.Front)
}

// Validate splits pool by DefaultRule.
func Validate(pool []poker.Card, backIndices []int) (Split, error) {
	return DefaultRule.Validate(pool, backIndices)
}

// Validate checks pool, builds the back hand from backIndices (0-based) and
// the front hand from the remaining cards, and requires the back to strictly
// outrank the front.
func (r Rule) Validate(pool []poker.Card, backIndices []int) (Split, error) {
	if err := r.CheckPool(pool); err != nil {
		return Split{}, err
	}
	if err := r.checkIndices(backIndices); err != nil {
		return Split{}, err
	}

	back := make([]poker.Card, 0, r.Back)
	front := make([]poker.Card, 0, r.Front())
	for i, c := range pool {
		if slices.Contains(backIndices, i) {
			back = append(back, c)
		} else {
			front = append(front, c)
		}
	}

	backHand, err := poker.NewHand(back)
	if err != nil {
		return Split{}, fmt.Errorf("%w: back hand: %w", ErrInvalidPool, err)
	}
	frontHand, err := poker.NewHand(front)
	if err != nil {
		return Split{}, fmt.Errorf("%w: front hand: %w", ErrInvalidPool, err)
	}

	if !backHand.Rank().Beats(frontHand.Rank()) {
		return Split{}, fmt.Errorf("%w: %s does not beat %s", ErrIllegalDominance, backHand.Rank(), frontHand.Rank())
	}
	return Split{Back: backHand, Front: frontHand}, nil
}

// CheckPool verifies that pool has exactly r.Pool valid, distinct cards.
func (r Rule) CheckPool(pool []poker.Card) error {
	if len(pool) != r.Pool {
		return fmt.Errorf("%w: %d cards, want %d", ErrInvalidPool, len(pool), r.Pool)
	}
	seen := make(map[poker.Card]bool, len(pool))
	for _, c := range pool {
		if !c.Valid() {
			return fmt.Errorf("%w: %w", ErrInvalidPool, poker.ErrInvalidCard)
		}
		if seen[c] {
			return fmt.Errorf("%w: %w: %s", ErrInvalidPool, poker.ErrDuplicateCard, c)
		}
		seen[c] = true
	}
	return nil
}

func (r Rule) checkIndices(indices []int) error {
	if len(indices) != r.Back {
		return fmt.Errorf("%w: %d cards selected, want %d", ErrWrongCount, len(indices), r.Back)
	}
	for i, idx := range indices {
		if idx < 0 || idx >= r.Pool {
			return fmt.Errorf("%w: index %d out of range", ErrWrongCount, idx)
		}
		if slices.Contains(indices[:i], idx) {
			return fmt.Errorf("%w: index %d selected twice", ErrWrongCount, idx)
		}
	}
	return nil
}
