package display

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all styling for rendered output
type Styles struct {
	Header    lipgloss.Style
	Position  lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Category  lipgloss.Style
	Label     lipgloss.Style

	Win     lipgloss.Style
	Push    lipgloss.Style
	Lose    lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// NewStyles builds the palette on r, so a renderer with the ASCII profile
// produces uncoloured text.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Position: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FAFAFA"}).
			Bold(true),
		Category: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Push: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Lose: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
