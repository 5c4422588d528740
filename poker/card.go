package poker

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidCard is returned when a card has an unknown rank or suit.
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single-letter notation for the suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Glyph returns the unicode symbol for the suit (e.g. "♠")
func (s Suit) Glyph() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true for Hearts and Diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank is the ranking value of a card. Two through Ten map to themselves,
// Jack/Queen/King to 11/12/13 and Ace is always 14.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

// String returns the single character notation for the rank
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankChars[r-Two])
}

// Label returns the rank as printed on a card face ("10" rather than "T")
func (r Rank) Label() string {
	if r == Ten {
		return "10"
	}
	return r.String()
}

// Card is an immutable playing card value. The zero Card is invalid.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a card from a rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

// Rank returns the card's rank
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card's suit
func (c Card) Suit() Suit { return c.suit }

// Valid reports whether the card has a known rank and suit
func (c Card) Valid() bool {
	return c.rank >= Two && c.rank <= Ace && c.suit <= Spades
}

// String returns compact notation, e.g. "As" or "Td"
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Glyph returns face notation with a suit symbol, e.g. "A♠" or "10♦"
func (c Card) Glyph() string {
	return c.rank.Label() + c.suit.Glyph()
}

// index returns a unique 0-51 position for a valid card
func (c Card) index() int {
	return int(c.rank-Two)*4 + int(c.suit)
}

// AllCards returns the 52 cards of a standard deck in rank-major order
func AllCards() []Card {
	cards := make([]Card, 0, 52)
	for rank := Two; rank <= Ace; rank++ {
		for suit := Clubs; suit <= Spades; suit++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// ParseCard parses a single card such as "As", "Td", "10d" or "Q♥".
func ParseCard(s string) (Card, error) {
	card, rest, err := parseOne(strings.TrimSpace(s))
	if err != nil {
		return Card{}, err
	}
	if rest != "" {
		return Card{}, fmt.Errorf("%w: trailing input %q in %q", ErrInvalidCard, rest, s)
	}
	return card, nil
}

// ParseCards parses a list of cards. Cards may be concatenated ("AsKsQs")
// or separated by spaces or commas ("A♠ K♠, 10♠").
func ParseCards(s string) ([]Card, error) {
	cards := []Card{}
	rest := s
	for {
		rest = strings.TrimLeft(rest, " \t\n,")
		if rest == "" {
			return cards, nil
		}
		card, remaining, err := parseOne(rest)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", len(cards)+1, err)
		}
		cards = append(cards, card)
		rest = remaining
	}
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseOne(s string) (Card, string, error) {
	if s == "" {
		return Card{}, "", fmt.Errorf("%w: empty input", ErrInvalidCard)
	}

	var rank Rank
	if strings.HasPrefix(s, "10") {
		rank = Ten
		s = s[2:]
	} else {
		r, err := parseRank(s[0])
		if err != nil {
			return Card{}, "", err
		}
		rank = r
		s = s[1:]
	}

	suitRune, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return Card{}, "", fmt.Errorf("%w: missing suit", ErrInvalidCard)
	}
	suit, err := parseSuit(suitRune)
	if err != nil {
		return Card{}, "", err
	}
	return NewCard(rank, suit), s[size:], nil
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	}
	if c >= '2' && c <= '9' {
		return Rank(c-'0'), nil
	}
	return 0, fmt.Errorf("%w: unknown rank '%c'", ErrInvalidCard, c)
}

func parseSuit(r rune) (Suit, error) {
	switch r {
	case 's', 'S', '♠', '♤':
		return Spades, nil
	case 'h', 'H', '♥', '♡':
		return Hearts, nil
	case 'd', 'D', '♦', '♢':
		return Diamonds, nil
	case 'c', 'C', '♣', '♧':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("%w: unknown suit '%c'", ErrInvalidCard, r)
	}
}
