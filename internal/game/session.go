package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/paigow/internal/paigow"
	"github.com/lox/paigow/internal/roundid"
	"github.com/lox/paigow/internal/statistics"
	"github.com/lox/paigow/poker"
)

var (
	// ErrInvalidBet is returned for bets outside the table limits or balance.
	ErrInvalidBet = errors.New("invalid bet")
	// ErrRoundInProgress is returned when dealing while a round is pending.
	ErrRoundInProgress = errors.New("round already in progress")
	// ErrNoRound is returned when setting a hand with nothing dealt.
	ErrNoRound = errors.New("no round in progress")
	// ErrRoundAborted is returned when a round is abandoned because the cards
	// or an automated split broke the rules. The stake is refunded.
	ErrRoundAborted = errors.New("round aborted")
)

// Round is one deal between the player and the dealer
type Round struct {
	ID         string
	Number     int
	Bet        int
	PlayerPool []poker.Card
	DealerPool []poker.Card

	Player paigow.Split
	Dealer paigow.Split
	Result paigow.Result

	Payout    int // Chips returned to the balance at settlement
	Aborted   bool
	StartedAt time.Time
	SettledAt time.Time
}

// Net returns the change in balance caused by the round
func (r Round) Net() int {
	if r.Aborted {
		return 0
	}
	return r.Payout - r.Bet
}

// Payout returns the chips paid back for a settled stake: double on a win,
// the stake itself on a push, nothing on a loss.
func Payout(outcome paigow.Outcome, bet int) int {
	switch outcome {
	case paigow.Win:
		return 2 * bet
	case paigow.Push:
		return bet
	default:
		return 0
	}
}

// Option configures a Session
type Option func(*Session)

// WithClock sets the clock used for round timestamps
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithLogger sets the session logger
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithCardSource replaces the shuffled deck
func WithCardSource(source CardSource) Option {
	return func(s *Session) { s.source = source }
}

// WithRoundIDs sets the generator for round IDs
func WithRoundIDs(ids *roundid.Generator) Option {
	return func(s *Session) { s.ids = ids }
}

// Session tracks a player's balance across rounds against the dealer
type Session struct {
	table    TableConfig
	dealer   *Dealer
	strategy paigow.Strategy
	source   CardSource
	clock    quartz.Clock
	logger   *log.Logger
	ids      *roundid.Generator

	balance int
	rounds  int
	pending *Round
	history []Round
	stats   statistics.Statistics
}

// NewSession creates a session with the table's starting balance
func NewSession(table TableConfig, rng *rand.Rand, opts ...Option) (*Session, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	strategy, err := paigow.StrategyByName(table.DealerStrategy)
	if err != nil {
		return nil, err
	}

	s := &Session{
		table:    table,
		strategy: strategy,
		balance:  table.StartingBalance,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.ids == nil {
		s.ids = roundid.NewGenerator(nil)
	}
	if s.source == nil {
		s.source = poker.NewDeck(rng)
	}
	s.dealer = NewDealerFrom(s.source, s.logger)
	return s, nil
}

// Balance returns the player's current chips, excluding any stake in play
func (s *Session) Balance() int { return s.balance }

// Statistics returns the tallies of finished rounds
func (s *Session) Statistics() statistics.Statistics { return s.stats }

// History returns finished and aborted rounds, oldest first
func (s *Session) History() []Round {
	out := make([]Round, len(s.history))
	copy(out, s.history)
	return out
}

// Pending returns the round awaiting the player's split, if any
func (s *Session) Pending() (Round, bool) {
	if s.pending == nil {
		return Round{}, false
	}
	return *s.pending, true
}

// DealerStrategy returns the strategy that sets the dealer's hand
func (s *Session) DealerStrategy() paigow.Strategy { return s.strategy }

// MinBet returns the table minimum
func (s *Session) MinBet() int { return s.table.MinBet }

// MaxBet returns the largest bet allowed right now
func (s *Session) MaxBet() int {
	if s.table.MaxBet > 0 && s.table.MaxBet < s.balance {
		return s.table.MaxBet
	}
	return s.balance
}

// Done reports whether the player can no longer cover the minimum bet
func (s *Session) Done() bool {
	return s.pending == nil && s.balance < s.table.MinBet
}

// Deal takes the stake from the balance and deals a new round
func (s *Session) Deal(bet int) (Round, error) {
	if s.pending != nil {
		return Round{}, ErrRoundInProgress
	}
	if bet < s.table.MinBet || bet > s.MaxBet() {
		return Round{}, fmt.Errorf("%w: %d (allowed %d to %d)", ErrInvalidBet, bet, s.table.MinBet, s.MaxBet())
	}

	id, err := s.ids.Generate()
	if err != nil {
		return Round{}, fmt.Errorf("failed to generate round id: %w", err)
	}

	s.rounds++
	round := &Round{
		ID:        id,
		Number:    s.rounds,
		Bet:       bet,
		StartedAt: s.clock.Now(),
	}
	s.balance -= bet

	player, dealer, err := s.dealer.DealRound()
	if err != nil {
		s.pending = round
		return Round{}, s.abort(err)
	}
	round.PlayerPool = player
	round.DealerPool = dealer
	s.pending = round

	s.logger.Debug("Dealt round", "round", round.ID, "bet", bet, "pool", poker.FormatCards(player))
	return *round, nil
}

// SetPlayerHand settles the pending round with the player's chosen back
// hand (0-based pool indices). Selection mistakes leave the round pending
// so the caller can ask again.
func (s *Session) SetPlayerHand(backIndices []int) (Round, error) {
	if s.pending == nil {
		return Round{}, ErrNoRound
	}
	split, err := paigow.Validate(s.pending.PlayerPool, backIndices)
	if err != nil {
		if paigow.IsUserError(err) {
			return Round{}, err
		}
		return Round{}, s.abort(err)
	}
	return s.settle(split)
}

// PlayAuto deals a round and sets the player's hand with strategy
func (s *Session) PlayAuto(bet int, strategy paigow.Strategy) (Round, error) {
	round, err := s.Deal(bet)
	if err != nil {
		return Round{}, err
	}
	split, err := paigow.AutoSplit(strategy, round.PlayerPool)
	if err != nil {
		return Round{}, s.abort(err)
	}
	return s.settle(split)
}

func (s *Session) settle(player paigow.Split) (Round, error) {
	round := s.pending

	dealer, err := paigow.AutoSplit(s.strategy, round.DealerPool)
	if err != nil {
		return Round{}, s.abort(err)
	}

	round.Player = player
	round.Dealer = dealer
	round.Result = paigow.Resolve(player, dealer)
	round.Payout = Payout(round.Result.Outcome, round.Bet)
	round.SettledAt = s.clock.Now()
	s.balance += round.Payout

	s.stats.Add(statistics.RoundResult{
		Outcome:       round.Result.Outcome,
		Net:           round.Net(),
		BackCategory:  player.Back.Rank().Category,
		FrontCategory: player.Front.Rank().Category,
	})
	s.finish()

	s.logger.Debug("Round settled",
		"round", round.ID,
		"outcome", round.Result.Outcome,
		"bet", round.Bet,
		"net", round.Net(),
		"balance", s.balance,
		"dealer", dealer.String())
	return *round, nil
}

// abort refunds the pending stake and records the round as abandoned.
func (s *Session) abort(cause error) error {
	round := s.pending
	round.Aborted = true
	round.SettledAt = s.clock.Now()
	s.balance += round.Bet

	s.stats.Add(statistics.RoundResult{Aborted: true})
	s.finish()

	s.logger.Warn("Round aborted", "round", round.ID, "error", cause)
	return fmt.Errorf("%w: %w", ErrRoundAborted, cause)
}

func (s *Session) finish() {
	s.history = append(s.history, *s.pending)
	s.pending = nil
}
