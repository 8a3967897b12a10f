package game

// Action names offered by the engine.
const (
	ActionFold  = "fold"
	ActionCheck = "check"
	ActionCall  = "call"
	ActionBet   = "bet"
	ActionRaise = "raise"
	ActionAllIn = "allin"
)

// LegalAction describes one action offered to the acting player. Min and
// Max are inclusive chip bounds; for a raise they are to-amounts, not
// increments. ToCall is set on call actions only.
type LegalAction struct {
	Action string `json:"action"`
	Min    int    `json:"min,omitempty"`
	Max    int    `json:"max,omitempty"`
	ToCall int    `json:"to_call,omitempty"`

	// HasBounds distinguishes a zero Min/Max window from an absent one.
	HasBounds bool `json:"-"`
}

// LegalActions derives the ordered legal-action set for the to-act seat.
// The derivation mirrors the upstream engine: check or fold/call first,
// then the available aggressive action with its chip window.
func LegalActions(gs *State) []LegalAction {
	hero := gs.Players[gs.ToAct]
	opp := gs.Players[1-gs.ToAct]
	if hero.Stack <= 0 && hero.InvestedStreet <= opp.InvestedStreet {
		return nil
	}

	toCall := opp.InvestedStreet - hero.InvestedStreet
	if toCall > hero.Stack {
		toCall = hero.Stack
	}

	var acts []LegalAction
	maxTo := hero.InvestedStreet + hero.Stack

	if toCall > 0 {
		acts = append(acts, LegalAction{Action: ActionFold})
		acts = append(acts, LegalAction{Action: ActionCall, ToCall: toCall})
		minTo := gs.MinRaiseTo
		if minTo == 0 {
			minTo = gs.LastBet + gs.BB
		}
		if maxTo > opp.InvestedStreet {
			if minTo <= maxTo {
				acts = append(acts, LegalAction{Action: ActionRaise, Min: minTo, Max: maxTo, HasBounds: true})
			} else {
				acts = append(acts, LegalAction{Action: ActionAllIn, Min: maxTo, Max: maxTo, HasBounds: true})
			}
		}
		return acts
	}

	acts = append(acts, LegalAction{Action: ActionCheck})
	if hero.Stack > 0 {
		if gs.LastBet == 0 && gs.Street != StreetPreflop {
			minBet := gs.BB
			if minBet > hero.Stack {
				minBet = hero.Stack
			}
			acts = append(acts, LegalAction{Action: ActionBet, Min: minBet, Max: hero.Stack, HasBounds: true})
		} else {
			minTo := gs.MinRaiseTo
			if minTo == 0 {
				minTo = gs.LastBet + gs.BB
			}
			if minTo <= maxTo {
				acts = append(acts, LegalAction{Action: ActionRaise, Min: minTo, Max: maxTo, HasBounds: true})
			}
		}
	}
	return acts
}

// FindAction returns the named action from the set, or nil.
func FindAction(acts []LegalAction, name string) *LegalAction {
	for i := range acts {
		if acts[i].Action == name {
			return &acts[i]
		}
	}
	return nil
}

// ToCallFromActs extracts the pending call amount, zero when no call is
// offered.
func ToCallFromActs(acts []LegalAction) int {
	if a := FindAction(acts, ActionCall); a != nil {
		return a.ToCall
	}
	return 0
}
