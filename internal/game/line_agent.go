package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineAgent reads one line of discard indexes per turn, e.g. "0,3". It is
// used for plain terminals and scripted input.
type LineAgent struct {
	in     *bufio.Reader
	out    io.Writer
	render func(PlayerView) string
}

// NewLineAgent returns an agent reading from in. When out is non-nil the
// hand (formatted by render, if set) and a prompt are written before each
// read.
func NewLineAgent(in io.Reader, out io.Writer, render func(PlayerView) string) *LineAgent {
	return &LineAgent{
		in:     bufio.NewReader(in),
		out:    out,
		render: render,
	}
}

// ChooseDiscards implements Agent. End of input before any text is an
// ErrAborted.
func (a *LineAgent) ChooseDiscards(ctx context.Context, view PlayerView) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if a.out != nil {
		if a.render != nil {
			fmt.Fprintln(a.out, a.render(view))
		}
		fmt.Fprintf(a.out, "%s, which cards do you want to swap? ", view.Name)
	}

	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return nil, ErrAborted
		}
		return nil, fmt.Errorf("game: reading discards: %w", err)
	}

	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "q") || strings.EqualFold(line, "quit") {
		return nil, ErrAborted
	}
	return ParseDiscards(line, len(view.Hand), view.MaxDiscards)
}
