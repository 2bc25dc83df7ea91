package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/drawpoker/internal/display"
	"github.com/lox/drawpoker/poker"
)

// JudgeCmd classifies a hand given on the command line
type JudgeCmd struct {
	Cards []string `arg:"" help:"Five cards, e.g. \"As Ks Qs Js Ts\" or As Ks Qs Js Ts"`
}

func (c *JudgeCmd) Run(_ *Globals) error {
	return c.judge(os.Stdout)
}

func (c *JudgeCmd) judge(out io.Writer) error {
	cards, err := poker.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}
	cat, err := poker.JudgeHand(cards)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s  %s\n", display.NewRenderer(nil).Cards(cards), cat)
	return nil
}
