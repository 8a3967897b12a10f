package suggest

import (
	"fmt"
	"math"

	"github.com/pokerteach/suggest/internal/game"
	"github.com/pokerteach/suggest/internal/tables"
)

// approxEffStackBB maps the SPR bucket onto a conservative effective-stack
// estimate in big blinds. The engine snapshot does not expose normalized
// stack depth; the service-level clamp still enforces the legal window.
func approxEffStackBB(sprBucket string) float64 {
	switch sprBucket {
	case SPRMid:
		return 20
	case SPRHigh:
		return 40
	default:
		return 10
	}
}

// policyPreflopV1 is the table-driven preflop policy: SB RFI from the open
// table, BB defend vs the SB open with 3bet > call priority, and an
// optional SB 4-bet path against a BB 3-bet.
func policyPreflopV1(s *Service, obs Observation, cfg PolicyConfig, env Env) (policyResult, error) {
	const name = "preflop_v1"
	if len(obs.Acts) == 0 {
		return policyResult{}, fmt.Errorf("%s: %w", name, ErrNoLegalActions)
	}

	modes, _ := s.tables.Mode(obs.TableMode)
	meta := &Meta{Combo: obs.Combo}
	heroSB := obs.Actor == obs.Button
	bb := float64(obs.BB)
	if bb <= 0 {
		bb = 1
	}

	// SB facing a BB 3-bet: optional 4-bet path.
	if env.Enable4Bet && heroSB && obs.ToCall > 0 &&
		obs.PotType == PotThreebet &&
		game.FindAction(obs.Acts, game.ActionBet) == nil {
		return preflop4BetPath(s, obs, modes, meta, name)
	}

	// SB first in: RFI from the open table.
	if heroSB && obs.Street == game.StreetPreflop &&
		(obs.ToCall == 0 || obs.PotType == PotLimped ||
			game.FindAction(obs.Acts, game.ActionBet) != nil) {
		return preflopRFI(s, obs, modes, meta, name)
	}

	// Residual: defending against a raise (BB vs SB open, or SB vs 3-bet
	// with the 4-bet path disabled).
	if obs.ToCall > 0 {
		return preflopDefend(s, obs, modes, meta, name)
	}

	// BB with nothing to call (e.g. after a SB limp): take the free play.
	var rationale []Rationale
	if game.FindAction(obs.Acts, game.ActionCheck) != nil {
		rationale = append(rationale, rat(PFCheck))
		return policyResult{Suggested: Suggested{Action: game.ActionCheck}, Rationale: rationale, Policy: name, Meta: meta}, nil
	}
	return preflopFallback(obs, rationale, meta, name)
}

func preflopRFI(s *Service, obs Observation, modes tables.Modes, meta *Meta, name string) (policyResult, error) {
	open, openVer := s.tables.Open()
	var rationale []Rationale

	if openVer == 0 || len(open.SB) == 0 {
		rationale = append(rationale, rat(CfgFallbackUsed))
		return preflopCheapContinue(obs, rationale, meta, name)
	}

	if open.SB.Contains(obs.Combo) {
		if betlike := pickBetlike(obs.Acts); betlike != nil {
			amt := int(math.Round(modes.OpenBB * float64(obs.BB)))
			meta.OpenBB = modes.OpenBB
			rationale = append(rationale, ratData(PFOpenRangeHit, map[string]any{
				"combo": obs.Combo, "open_bb": modes.OpenBB,
			}))
			return policyResult{
				Suggested: Suggested{Action: betlike.Action, Amount: amt},
				Rationale: rationale,
				Policy:    name,
				Meta:      meta,
			}, nil
		}
		rationale = append(rationale, rat(PFNoLegalRaise))
	}
	return preflopCheapContinue(obs, rationale, meta, name)
}

// preflopCheapContinue prefers completing a cheap blind, then checking,
// then folding.
func preflopCheapContinue(obs Observation, rationale []Rationale, meta *Meta, name string) (policyResult, error) {
	if obs.ToCall > 0 && obs.ToCall <= obs.BB && game.FindAction(obs.Acts, game.ActionCall) != nil {
		rationale = append(rationale, rat(PFLimpCompleteBlind))
		return policyResult{Suggested: Suggested{Action: game.ActionCall}, Rationale: rationale, Policy: name, Meta: meta}, nil
	}
	if game.FindAction(obs.Acts, game.ActionCheck) != nil {
		rationale = append(rationale, rat(PFCheck))
		return policyResult{Suggested: Suggested{Action: game.ActionCheck}, Rationale: rationale, Policy: name, Meta: meta}, nil
	}
	return preflopFallback(obs, rationale, meta, name)
}

func preflopDefend(s *Service, obs Observation, modes tables.Modes, meta *Meta, name string) (policyResult, error) {
	vs, vsVer := s.tables.Vs()
	var rationale []Rationale

	toCallBB := float64(obs.ToCall) / float64(obs.BB)
	bucket := modes.BucketFacingSize(toCallBB)
	meta.Bucket = bucket
	odds := potOdds(obs.ToCall, obs.PotNow)
	meta.PotOdds = odds

	node, ok := vs[tables.KeyBBvsSB][bucket]
	if vsVer == 0 || !ok {
		rationale = append(rationale, rat(CfgFallbackUsed))
		return preflopFallback(obs, rationale, meta, name)
	}

	// Priority: 3-bet over call.
	if node.Reraise.Contains(obs.Combo) {
		if raise := game.FindAction(obs.Acts, game.ActionRaise); raise != nil {
			openToBB := toCallBB + 1
			mult := modes.ReraiseOOPMult
			offset := modes.ReraiseOOPOffset
			if obs.IP {
				mult = modes.ReraiseIPMult
				offset = 0
			}
			capBB := math.Floor(approxEffStackBB(obs.SPRBucket) * modes.CapRatio)
			target := math.Round(openToBB*mult + offset)
			reraiseToBB := math.Min(capBB, target)
			meta.ReraiseToBB = reraiseToBB
			meta.CapBB = capBB

			amt := int(reraiseToBB * float64(obs.BB))
			if amt < raise.Min {
				amt = raise.Min
				rationale = append(rationale, rat(PFDefend3BetMinRaiseAdjust))
			}
			rationale = append(rationale, ratData(PFDefend3Bet, map[string]any{
				"combo": obs.Combo, "bucket": bucket, "reraise_to_bb": reraiseToBB,
			}))
			return policyResult{
				Suggested: Suggested{Action: game.ActionRaise, Amount: amt},
				Rationale: rationale,
				Policy:    name,
				Meta:      meta,
			}, nil
		}
		rationale = append(rationale, rat(PFNoLegalRaise))
	}

	if node.Call.Contains(obs.Combo) && game.FindAction(obs.Acts, game.ActionCall) != nil {
		threshold := modes.DefendThresholdOOP
		if obs.IP {
			threshold = modes.DefendThresholdIP
		}
		if odds <= threshold {
			rationale = append(rationale, ratData(PFDefendPriceOK, map[string]any{
				"pot_odds": odds, "threshold": threshold,
			}))
			return policyResult{Suggested: Suggested{Action: game.ActionCall}, Rationale: rationale, Policy: name, Meta: meta}, nil
		}
		rationale = append(rationale, ratData(PFDefendPriceBad, map[string]any{
			"pot_odds": odds, "threshold": threshold,
		}))
		return preflopFoldOrCheck(obs, rationale, meta, name)
	}

	rationale = append(rationale, ratData(PFDefendPriceBad, map[string]any{
		"reason": "out_of_range", "combo": obs.Combo, "bucket": bucket,
	}))
	return preflopFoldOrCheck(obs, rationale, meta, name)
}

func preflop4BetPath(s *Service, obs Observation, modes tables.Modes, meta *Meta, name string) (policyResult, error) {
	vs, vsVer := s.tables.Vs()
	var rationale []Rationale

	// Split the current pot into per-seat investment: the opponent is
	// ahead by exactly to_call.
	bb := float64(obs.BB)
	iOpp := float64(obs.PotNow+obs.ToCall) / 2
	threebetToBB := iOpp / bb
	bucket := modes.BucketFacingSize(threebetToBB)
	meta.Bucket = bucket
	meta.PotOdds = potOdds(obs.ToCall, obs.PotNow)

	node, ok := vs[tables.KeySBvsBB3Bet][bucket]
	if vsVer == 0 || !ok {
		rationale = append(rationale, rat(CfgFallbackUsed))
		return preflopFoldOrCheck(obs, rationale, meta, name)
	}

	if node.FourbetRange().Contains(obs.Combo) {
		if raise := game.FindAction(obs.Acts, game.ActionRaise); raise != nil {
			capBB := math.Floor(approxEffStackBB(obs.SPRBucket) * modes.CapRatio4B)
			target := math.Round(threebetToBB * modes.FourbetIPMult)
			fourbetToBB := math.Min(capBB, target)
			meta.FourbetToBB = fourbetToBB
			meta.CapBB = capBB

			amt := int(fourbetToBB * bb)
			if amt < raise.Min {
				amt = raise.Min
				rationale = append(rationale, rat(PFAttack4BetMinRaiseAdjust))
			}
			rationale = append(rationale, ratData(PFAttack4Bet, map[string]any{
				"combo": obs.Combo, "bucket": bucket, "fourbet_to_bb": fourbetToBB,
			}))
			return policyResult{
				Suggested: Suggested{Action: game.ActionRaise, Amount: amt},
				Rationale: rationale,
				Policy:    name,
				Meta:      meta,
			}, nil
		}
		rationale = append(rationale, rat(PFNoLegalRaise))
	}

	if node.Call.Contains(obs.Combo) && game.FindAction(obs.Acts, game.ActionCall) != nil {
		rationale = append(rationale, ratData(PFDefendPriceOK, map[string]any{
			"pot_odds": meta.PotOdds, "bucket": bucket,
		}))
		return policyResult{Suggested: Suggested{Action: game.ActionCall}, Rationale: rationale, Policy: name, Meta: meta}, nil
	}

	return preflopFallback(obs, rationale, meta, name)
}

// preflopFoldOrCheck is the conservative exit: fold, else check.
func preflopFoldOrCheck(obs Observation, rationale []Rationale, meta *Meta, name string) (policyResult, error) {
	if game.FindAction(obs.Acts, game.ActionFold) != nil {
		return policyResult{Suggested: Suggested{Action: game.ActionFold}, Rationale: rationale, Policy: name, Meta: meta}, nil
	}
	if game.FindAction(obs.Acts, game.ActionCheck) != nil {
		rationale = append(rationale, rat(SafeCheck))
		return policyResult{Suggested: Suggested{Action: game.ActionCheck}, Rationale: rationale, Policy: name, Meta: meta}, nil
	}
	return policyResult{}, fmt.Errorf("%s: no safe suggestion: %w", name, ErrIllegalSuggestion)
}

// preflopFallback is the generic recovery order: call, then fold, then
// check.
func preflopFallback(obs Observation, rationale []Rationale, meta *Meta, name string) (policyResult, error) {
	if game.FindAction(obs.Acts, game.ActionCall) != nil {
		if obs.ToCall <= obs.BB && !hasCode(rationale, PFLimpCompleteBlind.Code) {
			rationale = append(rationale, rat(PFLimpCompleteBlind))
		}
		return policyResult{Suggested: Suggested{Action: game.ActionCall}, Rationale: rationale, Policy: name, Meta: meta}, nil
	}
	return preflopFoldOrCheck(obs, rationale, meta, name)
}
