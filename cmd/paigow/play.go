package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/paigow/internal/display"
	"github.com/lox/paigow/internal/game"
	"github.com/lox/paigow/internal/randutil"
	"github.com/lox/paigow/internal/tui"
)

type PlayCmd struct {
	Balance int    `help:"Starting balance (overrides config)"`
	MinBet  int    `help:"Minimum bet (overrides config)"`
	MaxBet  int    `help:"Maximum bet, 0 for the whole balance (overrides config)"`
	Dealer  string `help:"Dealer strategy: top-five or best-front (overrides config)"`
	Seed    int64  `help:"Shuffle seed (0 uses config or the clock)"`
	LogFile string `help:"Log file (overrides config)"`
}

func (c *PlayCmd) apply(config *game.Config) {
	if c.Balance != 0 {
		config.Table.StartingBalance = c.Balance
	}
	if c.MinBet != 0 {
		config.Table.MinBet = c.MinBet
	}
	if c.MaxBet != 0 {
		config.Table.MaxBet = c.MaxBet
	}
	if c.Dealer != "" {
		config.Table.DealerStrategy = c.Dealer
	}
	if c.Seed != 0 {
		config.Table.Seed = &c.Seed
	}
	if c.LogFile != "" {
		config.Logging.File = c.LogFile
	}
}

func (c *PlayCmd) Run(g *Globals) error {
	config, err := loadConfig(g)
	if err != nil {
		return err
	}
	c.apply(config)
	if err := config.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := openLogFile(config.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := randutil.Resolve(config.Table.Seed)
	logger.Info("Starting session",
		"balance", config.Table.StartingBalance,
		"dealer", config.Table.DealerStrategy,
		"seed", seed)

	session, err := game.NewSession(config.Table, randutil.New(seed), game.WithLogger(logger))
	if err != nil {
		return err
	}

	render := display.ForWriter(g.Stdout, g.NoColor)
	if _, err := tui.Run(session, render, logger, tea.WithAltScreen()); err != nil {
		return err
	}

	stats := session.Statistics()
	logger.Info("Session finished", "balance", session.Balance(), "summary", stats.Summary())
	fmt.Fprintln(g.Stdout, render.Statistics(stats))
	fmt.Fprintf(g.Stdout, "Final balance: %d (seed %d)\n", session.Balance(), seed)
	return nil
}
