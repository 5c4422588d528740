package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/paigow/internal/display"
	"github.com/lox/paigow/internal/paigow"
	"github.com/lox/paigow/poker"
)

type SplitCmd struct {
	Pool     []string `arg:"" help:"The seven cards, e.g. 'As Kd Qc Jh 9s 3d 3c'"`
	Back     string   `short:"b" help:"1-based positions of the back hand, e.g. '1 2 3 4 5'"`
	Strategy string   `short:"s" default:"best-front" enum:"top-five,best-front" help:"Strategy used when --back is not given"`
	Dealer   string   `short:"d" help:"Dealer's seven cards; settles the split against the dealer's strategy"`
}

func (c *SplitCmd) Run(g *Globals) error {
	pool, err := poker.ParseCards(strings.Join(c.Pool, " "))
	if err != nil {
		return err
	}
	render := display.ForWriter(g.Stdout, g.NoColor)

	var split paigow.Split
	if c.Back != "" {
		indices, err := paigow.ParseSelection(c.Back)
		if err != nil {
			return err
		}
		if split, err = paigow.Validate(pool, indices); err != nil {
			return err
		}
	} else {
		strategy, err := paigow.StrategyByName(c.Strategy)
		if err != nil {
			return err
		}
		if split, err = paigow.AutoSplit(strategy, pool); err != nil {
			return err
		}
	}
	fmt.Fprintln(g.Stdout, render.Split("Player", split))

	if c.Dealer == "" {
		return nil
	}
	return c.settle(g, render, split, pool)
}

func (c *SplitCmd) settle(g *Globals, render *display.Renderer, player paigow.Split, pool []poker.Card) error {
	config, err := loadConfig(g)
	if err != nil {
		return err
	}
	strategy, err := paigow.StrategyByName(config.Table.DealerStrategy)
	if err != nil {
		return err
	}
	dealerPool, err := poker.ParseCards(c.Dealer)
	if err != nil {
		return fmt.Errorf("dealer: %w", err)
	}
	all := append(append([]poker.Card{}, pool...), dealerPool...)
	if err := (paigow.Rule{Pool: len(all)}).CheckPool(all); err != nil {
		return fmt.Errorf("dealer: %w", err)
	}

	dealer, err := paigow.AutoSplit(strategy, dealerPool)
	if errors.Is(err, paigow.ErrStrategyDefect) {
		fmt.Fprintln(g.Stdout, render.Error(err))
		fmt.Fprintln(g.Stdout, "The round would be aborted and the bet returned.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(g.Stdout, render.Split("Dealer ("+strategy.Name()+")", dealer))

	result := paigow.Resolve(player, dealer)
	fmt.Fprintf(g.Stdout, "%s (back %+d, front %+d)\n", render.Outcome(result.Outcome), result.Back, result.Front)
	return nil
}
