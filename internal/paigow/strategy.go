package paigow

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/lox/paigow/poker"
)

// ErrStrategyDefect is returned when an automated strategy produces a split
// that breaks the rules. It is an internal defect and is never retried.
var ErrStrategyDefect = errors.New("automated split is illegal")

// Strategy chooses a split without user input.
type Strategy interface {
	// Name identifies the strategy in config and logs.
	Name() string
	// Choose returns the 0-based pool indices of the back hand.
	Choose(rule Rule, pool []poker.Card) ([]int, error)
}

// TopFive puts the highest-ranked cards in the back hand and the lowest in
// the front. It is the dealer's traditional way but does not always produce
// a legal split, e.g. when the only pair lands in the front.
type TopFive struct{}

// Name implements Strategy.
func (TopFive) Name() string { return "top-five" }

// Choose implements Strategy.
func (TopFive) Choose(rule Rule, pool []poker.Card) ([]int, error) {
	if len(pool) < rule.Back {
		return nil, fmt.Errorf("%w: %d cards, want %d", ErrInvalidPool, len(pool), rule.Pool)
	}
	order := make([]int, len(pool))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(pool[b].Rank(), pool[a].Rank())
	})
	back := order[:rule.Back]
	slices.Sort(back)
	return back, nil
}

// BestFront tries every split and keeps the legal one with the strongest
// front hand, preferring the stronger back hand when fronts tie.
type BestFront struct{}

// Name implements Strategy.
func (BestFront) Name() string { return "best-front" }

// Choose implements Strategy.
func (BestFront) Choose(rule Rule, pool []poker.Card) ([]int, error) {
	if err := rule.CheckPool(pool); err != nil {
		return nil, err
	}

	var (
		best    []int
		bestCut Split
	)
	for indices := range combinations(rule.Pool, rule.Back) {
		split, err := rule.Validate(pool, indices)
		if err != nil {
			continue
		}
		if best == nil || betterFront(split, bestCut) {
			best = slices.Clone(indices)
			bestCut = split
		}
	}
	if best == nil {
		return nil, errors.New("no legal split exists")
	}
	return best, nil
}

func betterFront(a, b Split) bool {
	if c := a.Front.Compare(b.Front); c != 0 {
		return c > 0
	}
	return a.Back.Compare(b.Back) > 0
}

// combinations yields every k-element subset of 0..n-1 in lexicographic
// order. The yielded slice is reused between iterations.
func combinations(n, k int) func(yield func([]int) bool) {
	return func(yield func([]int) bool) {
		if k < 0 || k > n {
			return
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			if !yield(idx) {
				return
			}
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// AutoSplit splits pool by DefaultRule using strategy.
func AutoSplit(strategy Strategy, pool []poker.Card) (Split, error) {
	return DefaultRule.AutoSplit(strategy, pool)
}

// AutoSplit runs strategy and validates its choice. Any failure is wrapped
// in ErrStrategyDefect.
func (r Rule) AutoSplit(strategy Strategy, pool []poker.Card) (Split, error) {
	indices, err := strategy.Choose(r, pool)
	if err != nil {
		return Split{}, fmt.Errorf("%w: %s: %w", ErrStrategyDefect, strategy.Name(), err)
	}
	split, err := r.Validate(pool, indices)
	if err != nil {
		return Split{}, fmt.Errorf("%w: %s: %w", ErrStrategyDefect, strategy.Name(), err)
	}
	return split, nil
}

var strategies = map[string]Strategy{
	TopFive{}.Name():   TopFive{},
	BestFront{}.Name(): BestFront{},
}

// StrategyNames lists the registered strategy names in sorted order.
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// StrategyByName looks up a registered strategy.
func StrategyByName(name string) (Strategy, error) {
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (want one of %v)", name, StrategyNames())
	}
	return s, nil
}
