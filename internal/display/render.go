// Package display renders cards, splits and round results for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/paigow/internal/game"
	"github.com/lox/paigow/internal/paigow"
	"github.com/lox/paigow/internal/statistics"
	"github.com/lox/paigow/poker"
)

// Renderer formats game state as styled strings
type Renderer struct {
	styles Styles
}

// New creates a renderer using r's colour profile. A nil r uses the
// default renderer for stdout.
func New(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Renderer{styles: NewStyles(r)}
}

// Plain creates a renderer that never emits escape sequences
func Plain() *Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return New(r)
}

// ForWriter picks plain output when noColor is set, otherwise detects the
// colour profile of w.
func ForWriter(w io.Writer, noColor bool) *Renderer {
	if noColor {
		return Plain()
	}
	return New(lipgloss.NewRenderer(w))
}

// Styles returns the palette in use
func (r *Renderer) Styles() Styles { return r.styles }

// Card renders a single card face, red for hearts and diamonds
func (r *Renderer) Card(c poker.Card) string {
	if c.Suit().IsRed() {
		return r.styles.RedCard.Render(c.Glyph())
	}
	return r.styles.BlackCard.Render(c.Glyph())
}

// Cards renders cards in brackets, e.g. "[A♠ K♦]"
func (r *Renderer) Cards(cards []poker.Card) string {
	faces := make([]string, len(cards))
	for i, c := range cards {
		faces[i] = r.Card(c)
	}
	return "[" + strings.Join(faces, " ") + "]"
}

// Pool renders dealt cards with the 1-based positions a player types to
// select them.
func (r *Renderer) Pool(cards []poker.Card) string {
	var positions, faces []string
	for i, c := range cards {
		width := lipgloss.Width(c.Glyph())
		positions = append(positions, r.styles.Position.Render(fmt.Sprintf("%-*d", width, i+1)))
		faces = append(faces, r.Card(c))
	}
	return strings.Join(faces, "  ") + "\n" + strings.Join(positions, "  ")
}

// Hand renders a hand with its category, e.g. "[A♠ A♦ 9♠ 4♠ 3♣] One Pair"
func (r *Renderer) Hand(h poker.Hand) string {
	return r.Cards(h.Cards()) + " " + r.styles.Category.Render(h.Rank().Category.String())
}

// Split renders both hands of a split under a title
func (r *Renderer) Split(title string, s paigow.Split) string {
	var b strings.Builder
	b.WriteString(r.styles.Label.Render(title))
	b.WriteString("\n  back:  ")
	b.WriteString(r.Hand(s.Back))
	b.WriteString("\n  front: ")
	b.WriteString(r.Hand(s.Front))
	return b.String()
}

// Outcome renders the outcome as a banner word
func (r *Renderer) Outcome(o paigow.Outcome) string {
	word := strings.ToUpper(o.String())
	switch o {
	case paigow.Win:
		return r.styles.Win.Render(word)
	case paigow.Push:
		return r.styles.Push.Render(word)
	default:
		return r.styles.Lose.Render(word)
	}
}

func comparison(c int) string {
	switch {
	case c > 0:
		return "player"
	case c < 0:
		return "dealer"
	default:
		return "tie"
	}
}

// Round renders a settled round: both splits, per-hand winners and the
// payout.
func (r *Renderer) Round(round game.Round) string {
	if round.Aborted {
		return r.styles.Warning.Render(fmt.Sprintf("Round %d aborted, bet of %d returned", round.Number, round.Bet))
	}

	var b strings.Builder
	b.WriteString(r.Split("Your hand", round.Player))
	b.WriteString("\n")
	b.WriteString(r.Split("Dealer's hand", round.Dealer))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Back: %s  Front: %s\n", comparison(round.Result.Back), comparison(round.Result.Front))

	net := round.Net()
	switch {
	case net > 0:
		fmt.Fprintf(&b, "%s  you win %d", r.Outcome(round.Result.Outcome), net)
	case net < 0:
		fmt.Fprintf(&b, "%s  you lose %d", r.Outcome(round.Result.Outcome), -net)
	default:
		fmt.Fprintf(&b, "%s  bet of %d returned", r.Outcome(round.Result.Outcome), round.Bet)
	}
	return b.String()
}

// Statistics renders a multi-line session or simulation summary
func (r *Renderer) Statistics(stats statistics.Statistics) string {
	var b strings.Builder
	b.WriteString(r.styles.Header.Render("Results"))
	b.WriteString("\n")
	b.WriteString(stats.Summary())
	if stats.Rounds > 0 {
		low, high := stats.ConfidenceInterval95()
		fmt.Fprintf(&b, "\nmean %+.3f per round (95%% CI %+.3f to %+.3f)", stats.Mean(), low, high)

		b.WriteString("\n")
		b.WriteString(r.styles.Info.Render("back hands:"))
		for cat, n := range stats.BackCategories {
			if n > 0 {
				fmt.Fprintf(&b, "\n  %-16s %d", poker.Category(cat), n)
			}
		}
	}
	return b.String()
}

// Error renders an error message
func (r *Renderer) Error(err error) string {
	return r.styles.Error.Render("Error: " + err.Error())
}

// Info renders a hint or status line
func (r *Renderer) Info(s string) string {
	return r.styles.Info.Render(s)
}
