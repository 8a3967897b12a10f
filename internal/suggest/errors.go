package suggest

import "errors"

// Sentinel errors returned by the service. Callers match them with
// errors.Is.
var (
	// ErrNotActorsTurn is returned when the requested seat is not the
	// engine's to-act seat.
	ErrNotActorsTurn = errors.New("suggest: not actor's turn")

	// ErrNoLegalActions is returned when the engine offers no actions for
	// the seat.
	ErrNoLegalActions = errors.New("suggest: no legal actions")

	// ErrIllegalSuggestion is returned when a policy produced an action,
	// or a clamped amount, outside the legal set.
	ErrIllegalSuggestion = errors.New("suggest: illegal suggestion")
)
