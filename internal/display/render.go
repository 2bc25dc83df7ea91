// Package display renders cards, hands and results for the terminal and
// provides the interactive discard prompt.
package display

import (
	"fmt"
	"strings"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/simulate"
	"github.com/lox/drawpoker/poker"
)

// Renderer formats game state with a set of styles.
type Renderer struct {
	styles *Styles
}

// NewRenderer returns a Renderer. Nil styles use DefaultStyles.
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = DefaultStyles()
	}
	return &Renderer{styles: styles}
}

// Card renders one card with a suit glyph, red or black.
func (r *Renderer) Card(c poker.Card) string {
	if c.Suit().IsRed() {
		return r.styles.RedCard.Render(c.Pretty())
	}
	return r.styles.BlackCard.Render(c.Pretty())
}

// Cards renders cards separated by spaces.
func (r *Renderer) Cards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.Card(c)
	}
	return strings.Join(parts, " ")
}

// Hand renders one card per line prefixed with its discard index.
func (r *Renderer) Hand(cards []poker.Card) string {
	var sb strings.Builder
	for i, c := range cards {
		fmt.Fprintf(&sb, "%s %s\n", r.styles.Index.Render(fmt.Sprintf("%d:", i)), r.Card(c))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// View renders what a player sees before choosing discards.
func (r *Renderer) View(v game.PlayerView) string {
	header := r.styles.Header.Render(fmt.Sprintf("%s - here are your cards", v.Name))
	body := r.Hand(v.Hand)
	if cat, err := poker.JudgeHand(v.Hand); err == nil {
		body += "\n" + r.styles.Category.Render(cat.String())
	}
	hint := r.styles.Info.Render(fmt.Sprintf("Swap up to %d cards, e.g. 0,2. Leave empty to stand pat.", v.MaxDiscards))
	return header + "\n" + body + "\n" + hint
}

// Result renders the winner and every player's final hand.
func (r *Renderer) Result(res *game.Result) string {
	var sb strings.Builder
	sb.WriteString(r.styles.Winner.Render(fmt.Sprintf("The winner is: %s with a %s!", res.Winner.Name, res.Winner.Category)))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Their cards were: %s\n", r.Cards(res.Winner.Hand))
	if res.IsTie() {
		sb.WriteString(r.styles.Info.Render(fmt.Sprintf("Tied on category with %s; earliest seat wins.", strings.Join(res.Tied, ", "))))
		sb.WriteString("\n")
	}

	var rows []string
	for _, s := range res.Standings {
		rows = append(rows, fmt.Sprintf("%-12s %s  %s  (swapped %d)", s.Name, r.Cards(s.Hand), r.styles.Category.Render(s.Category.String()), s.Swapped))
	}
	sb.WriteString(r.styles.Panel.Render(strings.Join(rows, "\n")))
	return sb.String()
}

// Report renders a simulation summary table.
func (r *Renderer) Report(rep *simulate.Report) string {
	var sb strings.Builder
	sb.WriteString(r.styles.Header.Render(fmt.Sprintf("%d games, %d hands (seed %d)", rep.Games, rep.Hands, rep.Seed)))
	sb.WriteString("\n")

	rows := []string{fmt.Sprintf("%-16s %9s %8s %9s", "Category", "Hands", "Freq", "Win share")}
	for _, c := range poker.Categories() {
		rows = append(rows, fmt.Sprintf("%-16s %9d %7.2f%% %8.2f%%", c, rep.Dealt[c], 100*rep.Frequency(c), 100*rep.WinShare(c)))
	}
	sb.WriteString(r.styles.Panel.Render(strings.Join(rows, "\n")))
	sb.WriteString("\n")

	for seat, wins := range rep.SeatWins {
		fmt.Fprintf(&sb, "Seat %d wins: %d\n", seat, wins)
	}
	fmt.Fprintf(&sb, "Ties on category: %d\n", rep.Ties)
	fmt.Fprintf(&sb, "Average cards swapped: %.2f\n", rep.AverageSwapped())
	fmt.Fprintf(&sb, "Elapsed: %s", rep.Elapsed)
	return sb.String()
}
