package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/lox/drawpoker/internal/display"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Debug   bool   `help:"Enable debug logging"`
	LogFile string `name:"log-file" help:"Write logs to this file instead of stderr" type:"path"`
	NoColor bool   `name:"no-color" help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play a game of five-card draw"`
	Simulate SimulateCmd      `cmd:"" help:"Play many bot-only games and report hand statistics"`
	Judge    JudgeCmd         `cmd:"" help:"Print the category of a five-card hand"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("drawpoker"),
		kong.Description("Five-card draw poker in the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	if cli.NoColor || os.Getenv("NO_COLOR") != "" {
		display.DisableColor()
	}
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
