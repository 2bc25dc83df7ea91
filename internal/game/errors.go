package game

import "errors"

var (
	// ErrInvalidDiscard is returned for discard requests that name a card
	// outside the hand, name a card twice or exceed the discard limit.
	ErrInvalidDiscard = errors.New("game: invalid discard")
	// ErrInvalidPlayers is returned when the seating cannot start a game.
	ErrInvalidPlayers = errors.New("game: invalid players")
	// ErrCardsNotConserved is returned when deck and hands no longer hold
	// exactly the 52 distinct cards.
	ErrCardsNotConserved = errors.New("game: cards not conserved")
	// ErrAborted is returned by agents when the player quits.
	ErrAborted = errors.New("game: aborted")
	// ErrGameOver is returned when Play is called twice.
	ErrGameOver = errors.New("game: already played")
)
