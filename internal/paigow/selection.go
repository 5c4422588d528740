package paigow

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrBadToken is returned when a selection contains something other than numbers.
var ErrBadToken = errors.New("selection must be numbers separated by spaces")

// ParseSelection reads DefaultRule back-hand positions typed by a player.
func ParseSelection(input string) ([]int, error) {
	return DefaultRule.ParseSelection(input)
}

// ParseSelection converts a player's 1-based card positions (e.g. "1 2 3 4 5"
// or "1,2,3,4,5") into 0-based pool indices. Wrong counts, out-of-range and
// repeated positions are rejected with ErrWrongCount.
func (r Rule) ParseSelection(input string) ([]int, error) {
	fields := strings.FieldsFunc(input, func(c rune) bool {
		return c == ' ' || c == ',' || c == '\t'
	})
	if len(fields) != r.Back {
		return nil, fmt.Errorf("%w: select exactly %d cards for the back hand", ErrWrongCount, r.Back)
	}

	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, f)
		}
		if n < 1 || n > r.Pool {
			return nil, fmt.Errorf("%w: card %d is not between 1 and %d", ErrWrongCount, n, r.Pool)
		}
		if slices.Contains(indices, n-1) {
			return nil, fmt.Errorf("%w: card %d selected twice", ErrWrongCount, n)
		}
		indices = append(indices, n-1)
	}
	return indices, nil
}

// IsUserError reports whether err is a recoverable input mistake that should
// lead to a new prompt rather than ending the round.
func IsUserError(err error) bool {
	return errors.Is(err, ErrWrongCount) || errors.Is(err, ErrBadToken) || errors.Is(err, ErrIllegalDominance)
}
