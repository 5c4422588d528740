package main

import (
	"fmt"
	"strings"

	"github.com/lox/paigow/internal/display"
	"github.com/lox/paigow/poker"
)

type EvalCmd struct {
	Cards []string `arg:"" help:"Cards such as 'As Kd' or 'AsKdQc'"`
}

func (c *EvalCmd) Run(g *Globals) error {
	cards, err := poker.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}
	hand, err := poker.NewHand(cards)
	if err != nil {
		return err
	}

	render := display.ForWriter(g.Stdout, g.NoColor)
	fmt.Fprintln(g.Stdout, render.Hand(hand))
	fmt.Fprintf(g.Stdout, "rank: %s\n", hand.Rank())
	return nil
}
