package paigow

import (
	"slices"
	"testing"

	"github.com/lox/paigow/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var firstFive = []int{0, 1, 2, 3, 4}

func TestValidateAcceptsDominantBack(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		pool  string
		back  poker.Category
		front poker.Category
	}{
		{"straight over aces", "2s 3d 4c 5h 6s As Ad", poker.Straight, poker.OnePair},
		{"two pair over aces", "2s 2d 3c 3h 4s Ah Ac", poker.TwoPair, poker.OnePair},
		{"bigger pair over high card", "Ks Kd 9c 6h 4s Ah 2c", poker.OnePair, poker.HighCard},
		{"same pair with kickers", "As Ad Kc Qh Js Ah 2c", poker.OnePair, poker.HighCard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			split, err := Validate(poker.MustParseCards(tt.pool), firstFive)
			require.NoError(t, err)
			assert.Equal(t, tt.back, split.Back.Rank().Category)
			assert.Equal(t, tt.front, split.Front.Rank().Category)
			assert.Equal(t, 5, split.Back.Len())
			assert.Equal(t, 2, split.Front.Len())
			assert.True(t, split.Back.Rank().Beats(split.Front.Rank()))
		})
	}
}

func TestValidateRejectsFrontAsStrongAsBack(t *testing.T) {
	t.Parallel()
	pools := []string{
		"2s 3d 4c 5h 7s As Ad", // high card back, aces front
		"As Kd Qc Jh 9s 3d 3c", // high card back, threes front
		"Ks Qd 9c 7h 2s Kh Kc", // high card back, kings front
	}
	for _, pool := range pools {
		_, err := Validate(poker.MustParseCards(pool), firstFive)
		assert.ErrorIs(t, err, ErrIllegalDominance, pool)
		assert.True(t, IsUserError(err))
	}
}

func TestValidateSelectsByIndex(t *testing.T) {
	t.Parallel()
	pool := poker.MustParseCards("As 2d 3c Ad 5h 9s 4s")
	original := slices.Clone(pool)

	split, err := Validate(pool, []int{6, 0, 2, 3, 5})
	require.NoError(t, err)
	assert.Equal(t, "As Ad 9s 4s 3c", poker.FormatCards(split.Back.Cards()))
	assert.Equal(t, "5h 2d", poker.FormatCards(split.Front.Cards()))
	assert.Equal(t, poker.OnePair, split.Back.Rank().Category)
	assert.Equal(t, poker.HighCard, split.Front.Rank().Category)

	// Moving the aces to the front leaves a weaker back.
	_, err = Validate(pool, []int{1, 2, 4, 5, 6})
	assert.ErrorIs(t, err, ErrIllegalDominance)

	assert.Equal(t, original, pool, "pool must not be reordered")
}

func TestValidateWrongCount(t *testing.T) {
	t.Parallel()
	pool := poker.MustParseCards("2s 3d 4c 5h 6s As Ad")
	tests := []struct {
		name    string
		indices []int
	}{
		{"too few", []int{0, 1, 2, 3}},
		{"too many", []int{0, 1, 2, 3, 4, 5}},
		{"none", nil},
		{"out of range high", []int{0, 1, 2, 3, 7}},
		{"negative", []int{-1, 1, 2, 3, 4}},
		{"duplicate", []int{0, 1, 2, 3, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Validate(pool, tt.indices)
			assert.ErrorIs(t, err, ErrWrongCount)
			assert.True(t, IsUserError(err))
		})
	}
}

func TestValidateInvalidPool(t *testing.T) {
	t.Parallel()
	_, err := Validate(poker.MustParseCards("2s 3d 4c 5h 6s As"), firstFive)
	assert.ErrorIs(t, err, ErrInvalidPool)

	_, err = Validate(poker.MustParseCards("2s 3d 4c 5h 6s As 2s"), firstFive)
	assert.ErrorIs(t, err, ErrInvalidPool)
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)
	assert.False(t, IsUserError(err))
}

func TestRuleFrontSize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2, DefaultRule.Front())

	// Five cards split three over two.
	rule := Rule{Pool: 5, Back: 3}
	split, err := rule.Validate(poker.MustParseCards("9s 9d 9c Ah Kd"), []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, poker.ThreeOfAKind, split.Back.Rank().Category)
	assert.Contains(t, split.String(), "back: Three of a Kind")
}

func TestParseSelection(t *testing.T) {
	t.Parallel()
	got, err := ParseSelection("1 2 3 4 5")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)

	got, err = ParseSelection(" 7,3, 1 4  2 ")
	require.NoError(t, err)
	assert.Equal(t, []int{6, 2, 0, 3, 1}, got)

	tests := []struct {
		input string
		want  error
	}{
		{"1 2 3 4", ErrWrongCount},
		{"1 2 3 4 5 6", ErrWrongCount},
		{"", ErrWrongCount},
		{"0 1 2 3 4", ErrWrongCount},
		{"1 2 3 4 8", ErrWrongCount},
		{"1 2 3 4 4", ErrWrongCount},
		{"1 2 three 4 5", ErrBadToken},
	}
	for _, tt := range tests {
		_, err := ParseSelection(tt.input)
		assert.ErrorIs(t, err, tt.want, "input %q", tt.input)
		assert.True(t, IsUserError(err))
	}
}
