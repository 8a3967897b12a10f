package suggest

import (
	"fmt"
	"math"

	"github.com/pokerteach/suggest/internal/game"
)

// policyResult is what every policy returns: the chosen action, its
// rationale, the policy name and optional teaching meta.
type policyResult struct {
	Suggested Suggested
	Rationale []Rationale
	Policy    string
	Meta      *Meta
}

// policyFn is the capability the registry dispatches on.
type policyFn func(s *Service, obs Observation, cfg PolicyConfig, env Env) (policyResult, error)

var v0OpenRange = map[string]bool{
	"pair":             true,
	"suited_broadway":  true,
	"Ax_suited":        true,
	"broadway_offsuit": true,
}

func inV0Range(tags []string, handClass string) bool {
	for _, t := range tags {
		if v0OpenRange[t] {
			return true
		}
	}
	return v0OpenRange[handClass]
}

// policyPreflopV0 is the range-tag baseline: open to a fixed size when the
// hand is in the coarse range, call small bets in range, fold otherwise.
func policyPreflopV0(_ *Service, obs Observation, cfg PolicyConfig, _ Env) (policyResult, error) {
	const name = "preflop_v0"
	if len(obs.Acts) == 0 {
		return policyResult{}, fmt.Errorf("%s: %w", name, ErrNoLegalActions)
	}

	var rationale []Rationale

	if obs.ToCall == 0 {
		if inV0Range(obs.Tags, obs.HandClass) {
			if betlike := pickBetlike(obs.Acts); betlike != nil {
				target := int(math.Round(cfg.OpenSizeBB * float64(obs.BB)))
				amt := clampInt(target, betlike.Min, betlike.Max)
				code := PFOpenBet
				if betlike.Action == game.ActionRaise {
					code = PFOpenRaise
				}
				rationale = append(rationale, ratData(code, map[string]any{
					"bb": obs.BB, "chosen": amt, "bb_mult": cfg.OpenSizeBB,
				}))
				return policyResult{
					Suggested: Suggested{Action: betlike.Action, Amount: amt},
					Rationale: rationale,
					Policy:    name,
				}, nil
			}
		}
		if game.FindAction(obs.Acts, game.ActionCheck) != nil {
			rationale = append(rationale, rat(PFCheck))
			return policyResult{Suggested: Suggested{Action: game.ActionCheck}, Rationale: rationale, Policy: name}, nil
		}
		if game.FindAction(obs.Acts, game.ActionFold) != nil {
			rationale = append(rationale, rat(PFFold))
			return policyResult{Suggested: Suggested{Action: game.ActionFold}, Rationale: rationale, Policy: name}, nil
		}
	}

	threshold := cfg.CallThresholdBB * obs.BB
	if inV0Range(obs.Tags, obs.HandClass) &&
		game.FindAction(obs.Acts, game.ActionCall) != nil &&
		obs.ToCall <= threshold {
		rationale = append(rationale, ratData(PFCall, map[string]any{
			"to_call": obs.ToCall, "threshold": threshold,
		}))
		return policyResult{Suggested: Suggested{Action: game.ActionCall}, Rationale: rationale, Policy: name}, nil
	}

	if game.FindAction(obs.Acts, game.ActionFold) != nil {
		rationale = append(rationale, ratData(PFFoldExpensive, map[string]any{
			"to_call": obs.ToCall, "threshold": threshold,
		}))
		return policyResult{Suggested: Suggested{Action: game.ActionFold}, Rationale: rationale, Policy: name}, nil
	}
	if game.FindAction(obs.Acts, game.ActionCheck) != nil {
		rationale = append(rationale, rat(SafeCheck))
		return policyResult{Suggested: Suggested{Action: game.ActionCheck}, Rationale: rationale, Policy: name}, nil
	}
	return policyResult{}, fmt.Errorf("%s: no safe suggestion: %w", name, ErrIllegalSuggestion)
}

// policyPostflopV03 is the pot-odds baseline used on every postflop street
// under v0 and on turn/river under v1.
func policyPostflopV03(_ *Service, obs Observation, cfg PolicyConfig, _ Env) (policyResult, error) {
	const name = "postflop_v0_3"
	if len(obs.Acts) == 0 {
		return policyResult{}, fmt.Errorf("%s: %w", name, ErrNoLegalActions)
	}

	rationale := []Rationale{
		ratData(PLHeader, map[string]any{"street": obs.Street, "tags": obs.Tags}),
	}

	if obs.ToCall == 0 {
		if betlike := pickBetlike(obs.Acts); betlike != nil {
			allowBet := obs.Street == game.StreetFlop
			if obs.Street == game.StreetTurn || obs.Street == game.StreetRiver {
				allowBet = hasTag(obs.Tags, "pair") || obs.HandClass == "Ax_suited"
			}
			if allowBet {
				amt := betlike.Min
				rationale = append(rationale, Rationale{
					Code: PLProbeBet.Code,
					Msg:  fmt.Sprintf("%s unraised: probing with a minimum-size bet.", obs.Street),
					Data: map[string]any{"chosen": amt},
				})
				return policyResult{
					Suggested: Suggested{Action: betlike.Action, Amount: amt},
					Rationale: rationale,
					Policy:    name,
				}, nil
			}
		}
		if game.FindAction(obs.Acts, game.ActionCheck) != nil {
			rationale = append(rationale, rat(PLCheck))
			return policyResult{Suggested: Suggested{Action: game.ActionCheck}, Rationale: rationale, Policy: name}, nil
		}
	}

	// Facing a bet: pot odds against the per-range threshold. The v0
	// baseline keeps the historical pot + to_call denominator.
	odds := 1.0
	if denom := obs.Pot + obs.ToCall; denom > 0 {
		odds = float64(obs.ToCall) / float64(denom)
	}
	threshold := cfg.PotOddsThreshold
	if inV0Range(obs.Tags, obs.HandClass) {
		threshold = cfg.PotOddsThresholdCallRange
	}

	oddsData := map[string]any{
		"to_call": obs.ToCall, "pot": obs.Pot,
		"pot_odds": math.Round(odds*10000) / 10000, "threshold": threshold,
	}
	if game.FindAction(obs.Acts, game.ActionCall) != nil && odds <= threshold {
		rationale = append(rationale, ratData(PLCall, oddsData))
		return policyResult{Suggested: Suggested{Action: game.ActionCall}, Rationale: rationale, Policy: name}, nil
	}
	if game.FindAction(obs.Acts, game.ActionFold) != nil {
		rationale = append(rationale, ratData(PLFold, oddsData))
		return policyResult{Suggested: Suggested{Action: game.ActionFold}, Rationale: rationale, Policy: name}, nil
	}
	if allin := game.FindAction(obs.Acts, game.ActionAllIn); allin != nil {
		amt := allin.Max
		if amt == 0 {
			amt = allin.Min
		}
		rationale = append(rationale, rat(PLAllInOnly))
		return policyResult{Suggested: Suggested{Action: game.ActionAllIn, Amount: amt}, Rationale: rationale, Policy: name}, nil
	}
	if game.FindAction(obs.Acts, game.ActionCheck) != nil {
		rationale = append(rationale, rat(SafeCheck))
		return policyResult{Suggested: Suggested{Action: game.ActionCheck}, Rationale: rationale, Policy: name}, nil
	}
	return policyResult{}, fmt.Errorf("%s: no safe suggestion: %w", name, ErrIllegalSuggestion)
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
