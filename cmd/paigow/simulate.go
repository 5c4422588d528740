package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lox/paigow/internal/display"
	"github.com/lox/paigow/internal/randutil"
	"github.com/lox/paigow/internal/simulator"
)

type SimulateCmd struct {
	Rounds  int    `short:"n" default:"100000" help:"Number of rounds to simulate"`
	Workers int    `short:"w" default:"0" help:"Parallel workers (0 for CPU count)"`
	Seed    int64  `default:"0" help:"RNG seed (0 for random)"`
	Bet     int    `default:"1" help:"Stake per round"`
	Player  string `default:"best-front" enum:"top-five,best-front" help:"Player strategy"`
	Dealer  string `help:"Dealer strategy (defaults to config)"`
	Verbose bool   `help:"Verbose logging"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	config, err := loadConfig(g)
	if err != nil {
		return err
	}
	if c.Dealer != "" {
		config.Table.DealerStrategy = c.Dealer
	}
	if err := config.Validate(); err != nil {
		return err
	}

	level := "warn"
	if c.Verbose {
		level = "info"
	}
	logger, err := newLogger(os.Stderr, level, "simulate")
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = randutil.Resolve(config.Table.Seed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := simulator.New(simulator.Config{
		Rounds:         c.Rounds,
		Workers:        c.Workers,
		Seed:           seed,
		Bet:            c.Bet,
		PlayerStrategy: c.Player,
		DealerStrategy: config.Table.DealerStrategy,
		Logger:         logger,
	})
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	render := display.ForWriter(g.Stdout, g.NoColor)
	fmt.Fprintf(g.Stdout, "%s, seed %d\n", sim.Description(), seed)
	fmt.Fprintln(g.Stdout, render.Statistics(*stats))
	return nil
}
