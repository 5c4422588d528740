// Package simulator plays many automated pai gow rounds to measure how a
// player strategy fares against the dealer.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/paigow/internal/game"
	"github.com/lox/paigow/internal/paigow"
	"github.com/lox/paigow/internal/randutil"
	"github.com/lox/paigow/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds         int
	Workers        int // 0 uses the CPU count, capped at 8
	Seed           int64
	Bet            int
	PlayerStrategy string
	DealerStrategy string
	Logger         *log.Logger
	Clock          quartz.Clock
}

// Simulator runs pai gow round simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = min(runtime.NumCPU(), 8)
	}
	if config.Bet <= 0 {
		config.Bet = 1
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Description names the matchup, e.g. "best-front vs top-five"
func (s *Simulator) Description() string {
	return fmt.Sprintf("%s vs %s", s.config.PlayerStrategy, s.config.DealerStrategy)
}

// Run executes the simulation and returns the merged results. Each worker
// plays its share of rounds on its own shoe seeded from Seed, so results are
// reproducible for a given seed and worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", s.config.Rounds)
	}
	player, err := paigow.StrategyByName(s.config.PlayerStrategy)
	if err != nil {
		return nil, fmt.Errorf("player strategy: %w", err)
	}
	if _, err := paigow.StrategyByName(s.config.DealerStrategy); err != nil {
		return nil, fmt.Errorf("dealer strategy: %w", err)
	}

	workers := min(s.config.Workers, s.config.Rounds)
	perWorker := s.config.Rounds / workers
	remainder := s.config.Rounds % workers
	results := make([]statistics.Statistics, workers)
	start := s.config.Clock.Now()

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		rounds := perWorker
		if w < remainder {
			rounds++
		}
		seed := randutil.Derive(s.config.Seed, w)

		g.Go(func() error {
			stats, err := s.runWorker(ctx, player, rounds, seed)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results[w] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, r := range results {
		total.Merge(r)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Simulation complete",
		"matchup", s.Description(),
		"rounds", s.config.Rounds,
		"workers", workers,
		"elapsed", s.config.Clock.Since(start))
	return total, nil
}

// runWorker plays rounds on a private session. Aborted rounds are counted
// and skipped.
func (s *Simulator) runWorker(ctx context.Context, player paigow.Strategy, rounds int, seed int64) (statistics.Statistics, error) {
	table := game.TableConfig{
		StartingBalance: s.config.Bet * rounds,
		MinBet:          s.config.Bet,
		DealerStrategy:  s.config.DealerStrategy,
	}
	session, err := game.NewSession(table, randutil.New(seed),
		game.WithLogger(s.config.Logger),
		game.WithClock(s.config.Clock))
	if err != nil {
		return statistics.Statistics{}, err
	}

	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return statistics.Statistics{}, err
		}
		if _, err := session.PlayAuto(s.config.Bet, player); err != nil && !errors.Is(err, game.ErrRoundAborted) {
			return statistics.Statistics{}, fmt.Errorf("round %d: %w", i+1, err)
		}
	}
	return session.Statistics(), nil
}

// RunSimulation is a convenience function that runs a simulation with the given parameters
func RunSimulation(ctx context.Context, rounds int, player, dealer string, seed int64, logger *log.Logger) (*statistics.Statistics, string, error) {
	sim := New(Config{
		Rounds:         rounds,
		Seed:           seed,
		PlayerStrategy: player,
		DealerStrategy: dealer,
		Logger:         logger,
	})
	stats, err := sim.Run(ctx)
	return stats, sim.Description(), err
}
