package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config  string    `short:"c" default:"paigow.hcl" help:"HCL table configuration file (missing file uses defaults)"`
	NoColor bool      `help:"Disable coloured output"`
	Stdout  io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play pai gow against the dealer"`
	Eval     EvalCmd          `cmd:"" help:"Evaluate a 2, 3 or 5 card hand"`
	Split    SplitCmd         `cmd:"" help:"Split a seven card pool into back and front hands"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate many automated rounds"`
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("paigow"),
		kong.Description("Pai gow poker at the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
}

func main() {
	cli := CLI{Globals: Globals{Stdout: os.Stdout}}
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
