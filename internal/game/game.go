package game

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/drawpoker/internal/gameid"
	"github.com/lox/drawpoker/poker"
)

// PlayerSpec describes a seat before the game starts.
type PlayerSpec struct {
	Name  string
	Agent Agent
}

// Game is one deal of five-card draw: every player is dealt five cards, may
// exchange some of them once, and the strongest category wins.
type Game struct {
	id          string
	deck        *poker.Deck
	players     []*Player
	maxDiscards int
	logger      *log.Logger
	clock       quartz.Clock
	played      bool
}

// NewGame seats the players, shuffles a fresh deck and deals five cards to
// each player in seat order.
func NewGame(specs []PlayerSpec, opts ...Option) (*Game, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(specs) < MinPlayers || len(specs) > MaxPlayers {
		return nil, fmt.Errorf("%w: need %d-%d players, got %d", ErrInvalidPlayers, MinPlayers, MaxPlayers, len(specs))
	}
	if cfg.maxDiscards < 0 || cfg.maxDiscards > poker.HandSize {
		return nil, fmt.Errorf("game: max discards must be between 0 and %d, got %d", poker.HandSize, cfg.maxDiscards)
	}

	names := make(map[string]bool, len(specs))
	for i, spec := range specs {
		switch {
		case spec.Name == "":
			return nil, fmt.Errorf("%w: seat %d has no name", ErrInvalidPlayers, i)
		case names[spec.Name]:
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidPlayers, spec.Name)
		case spec.Agent == nil:
			return nil, fmt.Errorf("%w: %s has no agent", ErrInvalidPlayers, spec.Name)
		}
		names[spec.Name] = true
	}

	id := cfg.id
	if id == "" {
		id = gameid.NewGenerator(cfg.clock, cfg.rng).Generate()
	}

	g := &Game{
		id:          id,
		deck:        poker.NewDeck(cfg.rng),
		maxDiscards: cfg.maxDiscards,
		logger:      cfg.logger.With("game", id),
		clock:       cfg.clock,
	}

	g.deck.Shuffle()
	for i, spec := range specs {
		hand, err := g.deck.Draw(poker.HandSize)
		if err != nil {
			return nil, fmt.Errorf("game: dealing to %s: %w", spec.Name, err)
		}
		g.players = append(g.players, &Player{
			Seat:     i,
			Name:     spec.Name,
			Hand:     hand,
			Category: poker.HighCard,
			agent:    spec.Agent,
		})
	}

	g.logger.Debug("Dealt hands", "players", len(g.players), "deck", g.deck.Len())
	return g, nil
}

// ID returns the game's identifier.
func (g *Game) ID() string { return g.id }

// Players returns the seated players in seat order.
func (g *Game) Players() []*Player { return g.players }

// Deck returns the game's deck.
func (g *Game) Deck() *poker.Deck { return g.deck }

// MaxDiscards returns the per-player exchange limit.
func (g *Game) MaxDiscards() int { return g.maxDiscards }

// Swap exchanges the cards at the given hand indexes: they are put back into
// the deck, the deck is shuffled and the same number of cards is drawn and
// appended to the hand. The request is validated first; on error neither
// the hand nor the deck changes.
func (g *Game) Swap(seat int, indexes []int) error {
	if seat < 0 || seat >= len(g.players) {
		return fmt.Errorf("game: no player in seat %d", seat)
	}
	p := g.players[seat]
	if err := ValidateDiscards(indexes, len(p.Hand), g.maxDiscards); err != nil {
		return err
	}
	if len(indexes) == 0 {
		p.Swapped = 0
		return nil
	}

	discard := make([]poker.Card, 0, len(indexes))
	kept := make([]poker.Card, 0, len(p.Hand))
	for i, c := range p.Hand {
		if slices.Contains(indexes, i) {
			discard = append(discard, c)
		} else {
			kept = append(kept, c)
		}
	}

	g.deck.PutBack(discard...)
	g.deck.Shuffle()
	replacements, err := g.deck.Draw(len(discard))
	if err != nil {
		return fmt.Errorf("game: drawing replacements for %s: %w", p.Name, err)
	}

	p.Hand = append(kept, replacements...)
	p.Swapped = len(discard)
	p.Judged = false

	g.logger.Debug("Swapped cards", "player", p.Name, "discarded", poker.FormatCards(discard), "drew", poker.FormatCards(replacements))
	return nil
}

// Judge evaluates the hand in the given seat and records its category.
func (g *Game) Judge(seat int) (poker.Category, error) {
	if seat < 0 || seat >= len(g.players) {
		return 0, fmt.Errorf("game: no player in seat %d", seat)
	}
	p := g.players[seat]
	cat, err := poker.JudgeHand(p.Hand)
	if err != nil {
		return 0, fmt.Errorf("game: judging %s: %w", p.Name, err)
	}
	p.Category = cat
	p.Judged = true
	return cat, nil
}

// Play runs the draw: each player in seat order chooses discards, swaps and
// has the new hand judged. The winner is then selected. An agent error or a
// cancelled context stops the game; cards stay conserved either way.
func (g *Game) Play(ctx context.Context) (*Result, error) {
	if g.played {
		return nil, ErrGameOver
	}
	g.played = true

	started := g.clock.Now()
	g.logger.Info("Starting game", "players", len(g.players), "max_discards", g.maxDiscards)

	for _, p := range g.players {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("game: stopped before %s: %w", p.Name, err)
		}

		indexes, err := p.agent.ChooseDiscards(ctx, p.View(g.maxDiscards))
		if err != nil {
			return nil, fmt.Errorf("game: %s choosing discards: %w", p.Name, err)
		}
		if err := g.Swap(p.Seat, indexes); err != nil {
			return nil, fmt.Errorf("game: %s: %w", p.Name, err)
		}

		cat, err := g.Judge(p.Seat)
		if err != nil {
			return nil, err
		}
		g.logger.Info("Player drew", "player", p.Name, "swapped", p.Swapped, "hand", poker.FormatCards(p.Hand), "category", cat)
	}

	if err := g.CheckConservation(); err != nil {
		return nil, err
	}

	result := g.result(started, g.clock.Now())
	g.logger.Info("Game complete", "winner", result.Winner.Name, "category", result.Winner.Category, "tied", len(result.Tied))
	return result, nil
}

// CheckConservation verifies that the deck and the hands together hold each
// of the 52 cards exactly once.
func (g *Game) CheckConservation() error {
	seen := make(map[poker.Card]bool, poker.DeckSize)
	count := 0
	check := func(c poker.Card, where string) error {
		count++
		if !c.Valid() {
			return fmt.Errorf("%w: invalid card in %s", ErrCardsNotConserved, where)
		}
		if seen[c] {
			return fmt.Errorf("%w: %s duplicated in %s", ErrCardsNotConserved, c, where)
		}
		seen[c] = true
		return nil
	}

	for _, c := range g.deck.Cards() {
		if err := check(c, "deck"); err != nil {
			return err
		}
	}
	for _, p := range g.players {
		for _, c := range p.Hand {
			if err := check(c, p.Name); err != nil {
				return err
			}
		}
	}
	if count != poker.DeckSize {
		return fmt.Errorf("%w: counted %d cards", ErrCardsNotConserved, count)
	}
	return nil
}

// Collect returns every hand to the deck.
func (g *Game) Collect() {
	for _, p := range g.players {
		g.deck.PutBack(p.Hand...)
		p.Hand = nil
	}
}

func (g *Game) result(started, finished time.Time) *Result {
	r := &Result{
		GameID:     g.id,
		StartedAt:  started,
		FinishedAt: finished,
	}

	winner := SelectWinner(g.players)
	r.Winner = winner.standing()
	for _, p := range g.players {
		if p != winner && p.Category == winner.Category {
			r.Tied = append(r.Tied, p.Name)
		}
		r.Standings = append(r.Standings, p.standing())
	}
	slices.SortStableFunc(r.Standings, func(a, b Standing) int {
		return a.Category.Ordinal() - b.Category.Ordinal()
	})
	return r
}

// SelectWinner returns the player whose category has the smallest ordinal.
// Ties go to the earliest seat; there is no kicker comparison.
func SelectWinner(players []*Player) *Player {
	var best *Player
	for _, p := range players {
		if best == nil || p.Category.Beats(best.Category) {
			best = p
		}
	}
	return best
}
