// Package game runs a single deal of five-card draw poker.
//
// A Game owns one poker.Deck. NewGame shuffles it and deals five cards to
// every seat; Play then visits the seats in order, asks each player's Agent
// which cards to exchange, swaps them through the deck and judges the new
// hand. The winner is the player with the strongest category; ties go to the
// earlier seat.
//
// # Basic Usage
//
//	g, err := game.NewGame([]game.PlayerSpec{
//	    {Name: "Alice", Agent: game.NewBotAgent()},
//	    {Name: "Bob", Agent: game.NewBotAgent()},
//	})
//	if err != nil {
//	    return err
//	}
//	result, err := g.Play(ctx)
//
// # Deterministic Testing
//
// Inject the shuffle source and clock:
//
//	g, err := game.NewGame(specs,
//	    game.WithRand(randutil.New(42)),
//	    game.WithClock(quartz.NewMock(t)),
//	)
//
// # Card Conservation
//
// Cards only move between the deck and the hands. Swap validates a request
// before touching either, and CheckConservation verifies that the 52 cards
// are all present exactly once.
package game
