// Package game defines the read-only hand-engine surface the suggest engine
// consumes: a frozen snapshot of a heads-up hand plus the legal-action
// derivation for the seat about to act. The betting state machine itself
// lives outside this repository; this package only mirrors its contract.
package game

// Streets in play order.
const (
	StreetPreflop = "preflop"
	StreetFlop    = "flop"
	StreetTurn    = "turn"
	StreetRiver   = "river"
)

// Event action types recorded in the hand history.
const (
	EventBlind = "blind"
	EventBet   = "bet"
	EventRaise = "raise"
	EventCall  = "call"
	EventCheck = "check"
	EventFold  = "fold"
)

// Event is one entry of the hand's action history.
type Event struct {
	Type   string `json:"type"`
	Seat   int    `json:"seat"`
	Amount int    `json:"amount,omitempty"`
	Street string `json:"street"`
}

// Player is one seat's snapshot at the decision point.
type Player struct {
	Hole           []string `json:"hole"`
	Stack          int      `json:"stack"`
	InvestedStreet int      `json:"invested_street"`
}

// State is a frozen heads-up hand snapshot at the moment one player must
// act. Pot excludes chips invested on the current street; those sit in
// each player's InvestedStreet until the street settles.
type State struct {
	HandID  string    `json:"hand_id"`
	Street  string    `json:"street"`
	Button  int       `json:"button"`
	SB      int       `json:"sb"`
	BB      int       `json:"bb"`
	Pot     int       `json:"pot"`
	Board   []string  `json:"board"`
	Players [2]Player `json:"players"`
	ToAct   int       `json:"to_act"`

	// LastBet is the highest to-amount committed on the current street,
	// zero when the street is unopened.
	LastBet int `json:"last_bet"`

	// MinRaiseTo is the engine's minimum legal raise-to amount. When zero
	// the derivation falls back to LastBet + BB.
	MinRaiseTo int `json:"min_raise_to,omitempty"`

	Events []Event `json:"events,omitempty"`
}

// ToActIndex returns the seat index that must act.
func ToActIndex(gs *State) int {
	return gs.ToAct
}

// PreflopRaiseCount counts preflop raise events (blind posts excluded).
func PreflopRaiseCount(gs *State) int {
	n := 0
	for _, ev := range gs.Events {
		if ev.Street == StreetPreflop && ev.Type == EventRaise {
			n++
		}
	}
	return n
}

// PreflopAggressor returns the seat of the last preflop raiser and whether
// any preflop raise happened at all.
func PreflopAggressor(gs *State) (int, bool) {
	seat, found := 0, false
	for _, ev := range gs.Events {
		if ev.Street == StreetPreflop && ev.Type == EventRaise {
			seat, found = ev.Seat, true
		}
	}
	return seat, found
}
