package suggest

import (
	"github.com/pokerteach/suggest/internal/game"
	"github.com/pokerteach/suggest/poker"
)

// rangeAdvantage is the heuristic flag that the hero's preflop range is
// stronger on this board. The preflop raiser keeps it on dry textures.
func rangeAdvantage(texture, role string) bool {
	return role == RolePFR && texture == poker.TextureDry
}

// nutAdvantage flags boards where the preflop raiser holds more nutted
// combos than the caller's capped range.
func nutAdvantage(texture, role string) bool {
	return role == RolePFR && (texture == poker.TextureSemi || texture == poker.TextureWet)
}

// inferPotType classifies the pot by preflop raise count.
func inferPotType(gs *game.State) string {
	switch n := game.PreflopRaiseCount(gs); {
	case n == 0:
		return PotLimped
	case n == 1:
		return PotSingleRaised
	default:
		return PotThreebet
	}
}

// buildObservation derives the frozen Observation from a hand snapshot.
// It is total: analysis failures degrade to unknown with a W_ANALYSIS
// rationale instead of an error.
func buildObservation(gs *game.State, actor int, acts []game.LegalAction, tableMode string) (Observation, []Rationale) {
	var pre []Rationale

	tags := []string{"unknown"}
	handClass := "unknown"
	if info, ok := poker.ClassifyStartingHand(gs.Players[actor].Hole); ok {
		tags = info.Tags
		handClass = info.Class
	} else {
		pre = append(pre, rat(WarnAnalysis))
	}

	toCall := game.ToCallFromActs(acts)
	potNow := gs.Pot + gs.Players[0].InvestedStreet + gs.Players[1].InvestedStreet

	effStack := gs.Players[actor].Stack
	if opp := gs.Players[1-actor].Stack; opp < effStack {
		effStack = opp
	}
	sprBucket := sprBucketOf(calcSPR(potNow, effStack))

	texture := poker.TextureNA
	if gs.Street == game.StreetFlop {
		texture = poker.ClassifyFlop(gs.Board).Texture
	}

	role := RoleNA
	if pfrSeat, ok := game.PreflopAggressor(gs); ok {
		if pfrSeat == actor {
			role = RolePFR
		} else {
			role = RoleCaller
		}
	}

	if gs.Street == game.StreetFlop {
		handClass = poker.FlopHandClass(gs.Players[actor].Hole, gs.Board)
	}

	return Observation{
		HandID:        gs.HandID,
		Actor:         actor,
		Street:        gs.Street,
		BB:            gs.BB,
		Pot:           gs.Pot,
		PotNow:        potNow,
		ToCall:        toCall,
		TableMode:     tableMode,
		IP:            isIP(actor, tableMode, gs.Button, gs.Street),
		Button:        gs.Button,
		Acts:          acts,
		Tags:          tags,
		HandClass:     handClass,
		Combo:         poker.ComboFromHole(gs.Players[actor].Hole),
		BoardTexture:  texture,
		SPRBucket:     sprBucket,
		PotType:       inferPotType(gs),
		Role:          role,
		RangeAdv:      rangeAdvantage(texture, role),
		NutAdv:        nutAdvantage(texture, role),
		FacingSizeTag: deriveFacingSizeTag(toCall, potNow),
	}, pre
}
