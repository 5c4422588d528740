// Package tui is the interactive pai gow table, built on bubbletea.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/paigow/internal/display"
	"github.com/lox/paigow/internal/game"
	"github.com/lox/paigow/internal/paigow"
)

// Phase is the step of the table the player is at
type Phase int

const (
	Betting Phase = iota
	Splitting
	Result
	Done
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case Betting:
		return "betting"
	case Splitting:
		return "splitting"
	case Result:
		return "result"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Model represents the Bubble Tea model for a pai gow session
type Model struct {
	session *game.Session
	render  *display.Renderer
	logger  *log.Logger

	input   textinput.Model
	phase   Phase
	round   game.Round // Pending round while splitting, last settled round after
	message string     // Last error or notice shown under the prompt
	history []string

	quitting bool
	width    int
}

// New creates a model over session
func New(session *game.Session, render *display.Renderer, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)

	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Model{
		session: session,
		render:  render,
		logger:  logger.WithPrefix("tui"),
		input:   ti,
	}
	m.enter(Betting)
	return m
}

// Phase returns the current phase
func (m *Model) Phase() Phase { return m.phase }

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if cmd := m.submit(value); cmd != nil {
				return m, cmd
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit applies one line of input to the current phase
func (m *Model) submit(value string) tea.Cmd {
	m.message = ""
	switch m.phase {
	case Betting:
		return m.placeBet(value)
	case Splitting:
		m.setHand(value)
	case Result:
		if m.session.Done() {
			m.enter(Done)
		} else {
			m.enter(Betting)
		}
	case Done:
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) placeBet(value string) tea.Cmd {
	if value == "" {
		m.message = fmt.Sprintf("Enter a bet between %d and %d, or 0 to cash out", m.session.MinBet(), m.session.MaxBet())
		return nil
	}
	bet, err := strconv.Atoi(value)
	if err != nil {
		m.message = "Bets are whole numbers"
		return nil
	}
	if bet == 0 {
		m.logger.Info("Player cashed out", "balance", m.session.Balance())
		m.enter(Done)
		return nil
	}

	round, err := m.session.Deal(bet)
	switch {
	case errors.Is(err, game.ErrInvalidBet):
		m.message = err.Error()
	case err != nil:
		m.abandon(err)
	default:
		m.round = round
		m.enter(Splitting)
	}
	return nil
}

func (m *Model) setHand(value string) {
	indices, err := paigow.ParseSelection(value)
	if err == nil {
		var round game.Round
		round, err = m.session.SetPlayerHand(indices)
		if err == nil {
			m.round = round
			m.history = append(m.history, m.summary(round))
			m.enter(Result)
			return
		}
	}
	if paigow.IsUserError(err) {
		m.message = err.Error()
		return
	}
	m.abandon(err)
}

// abandon reports an aborted round and returns to betting
func (m *Model) abandon(err error) {
	m.logger.Error("Round aborted", "error", err)
	m.message = "The dealer's hand could not be set, your bet was returned"
	m.history = append(m.history, "aborted")
	if m.session.Done() {
		m.enter(Done)
	} else {
		m.enter(Betting)
	}
}

func (m *Model) enter(p Phase) {
	m.phase = p
	switch p {
	case Betting:
		m.input.Placeholder = fmt.Sprintf("bet %d to %d, 0 to cash out", m.session.MinBet(), m.session.MaxBet())
	case Splitting:
		m.input.Placeholder = "positions of your five back cards, e.g. 1 2 3 4 5"
	case Result:
		m.input.Placeholder = "press enter to continue"
	case Done:
		m.input.Placeholder = "press enter to leave"
	}
}

func (m *Model) summary(r game.Round) string {
	return fmt.Sprintf("#%d %s %+d", r.Number, r.Result.Outcome, r.Net())
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	styles := m.render.Styles()

	var b strings.Builder
	b.WriteString(styles.Header.Render(fmt.Sprintf("Pai Gow  balance %d", m.session.Balance())))
	if n := len(m.history); n > 0 {
		recent := m.history[max(0, n-5):]
		b.WriteString("  ")
		b.WriteString(m.render.Info(strings.Join(recent, " | ")))
	}
	b.WriteString("\n\n")

	switch m.phase {
	case Betting:
		b.WriteString("Place your bet.\n")
	case Splitting:
		fmt.Fprintf(&b, "Bet %d. Choose five cards for the back hand; the other two form the front.\n\n", m.round.Bet)
		b.WriteString(m.render.Pool(m.round.PlayerPool))
		b.WriteString("\n")
	case Result:
		b.WriteString(m.render.Round(m.round))
		b.WriteString("\n")
	case Done:
		stats := m.session.Statistics()
		b.WriteString(m.render.Statistics(stats))
		fmt.Fprintf(&b, "\n\nYou leave the table with %d.\n", m.session.Balance())
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(styles.Error.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString(m.render.Info("Enter to submit • Esc to quit"))
	return b.String()
}

// Run starts the program and blocks until the player leaves
func Run(session *game.Session, render *display.Renderer, logger *log.Logger, opts ...tea.ProgramOption) (*Model, error) {
	m := New(session, render, logger)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return nil, fmt.Errorf("running table: %w", err)
	}
	return m, nil
}
