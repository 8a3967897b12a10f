package suggest

import (
	"fmt"

	"github.com/pokerteach/suggest/internal/game"
	"github.com/pokerteach/suggest/internal/tables"
	"github.com/pokerteach/suggest/poker"
)

// policyFlopV1 consults the strategy rule tree: pot_type -> role ->
// position -> texture -> SPR bucket -> hand class, with defaults fallback
// at every level. It returns size tags; the service translates them into
// chip amounts.
func policyFlopV1(s *Service, obs Observation, cfg PolicyConfig, env Env) (policyResult, error) {
	const name = "flop_v1"
	if len(obs.Acts) == 0 {
		return policyResult{}, fmt.Errorf("%s: %w", name, ErrNoLegalActions)
	}

	meta := &Meta{
		Role:          obs.Role,
		Texture:       obs.BoardTexture,
		SPRBucket:     obs.SPRBucket,
		RangeAdv:      obs.RangeAdv,
		NutAdv:        obs.NutAdv,
		FacingSizeTag: obs.FacingSizeTag,
	}

	rules, ver := s.tables.FlopRules(env.Strategy)
	meta.RulesVer = ver

	role := obs.Role
	if obs.PotType == PotLimped {
		role = RoleNA
	}
	pos := "oop"
	if obs.IP {
		pos = "ip"
	}

	var rationale []Rationale
	if ver == 0 || rules == nil {
		rationale = append(rationale, rat(CfgFallbackUsed))
		return flopNoBetFallback(obs, rationale, meta, name)
	}

	if obs.ToCall == 0 {
		return flopNoBet(obs, rules, role, pos, meta, name)
	}
	return flopFacingBet(obs, rules, role, pos, env, meta, name)
}

func flopNoBet(obs Observation, rules tables.RuleTree, role, pos string, meta *Meta, name string) (policyResult, error) {
	var rationale []Rationale

	leaf, ok := rules.Match(obs.PotType, "role", role, pos, obs.BoardTexture, obs.SPRBucket, obs.HandClass)
	if !ok {
		return flopNoBetFallback(obs, rationale, meta, name)
	}
	if leaf.Plan != "" {
		meta.Plan = leaf.Plan
	}

	switch leaf.Action {
	case game.ActionBet, game.ActionRaise:
		if betlike := pickBetlike(obs.Acts); betlike != nil {
			meta.SizeTag = leaf.SizeTag
			switch {
			case obs.RangeAdv && leaf.SizeTag == SizeThird:
				rationale = append(rationale, rat(FLRangeAdvSmallBet))
			case obs.NutAdv && (leaf.SizeTag == SizeTwoThird || leaf.SizeTag == SizePot):
				rationale = append(rationale, rat(FLNutAdvPolar))
			default:
				rationale = append(rationale, rat(FLDryCbetThird))
			}
			if obs.SPRBucket == SPRLow &&
				(leaf.SizeTag == SizeTwoThird || leaf.SizeTag == SizePot) &&
				(obs.HandClass == poker.FlopClassValueTwoPairPlus || obs.HandClass == poker.FlopClassOverpairOrTPSK) {
				rationale = append(rationale, rat(FLLowSPRValueUp))
			}
			return policyResult{
				Suggested: Suggested{Action: betlike.Action},
				Rationale: rationale,
				Policy:    name,
				Meta:      meta,
			}, nil
		}
		// Rule wants aggression but none is legal; take the free card.
		fallthrough
	case game.ActionCheck:
		if game.FindAction(obs.Acts, game.ActionCheck) != nil {
			rationale = append(rationale, rat(FLDelayedCbetPlan))
			if obs.SPRBucket == SPRHigh &&
				(obs.HandClass == poker.FlopClassMiddleOrThirdMinus || obs.HandClass == poker.FlopClassWeakDrawOrAir) {
				rationale = append(rationale, rat(FLHighSPRCtrl))
			}
			return policyResult{Suggested: Suggested{Action: game.ActionCheck}, Rationale: rationale, Policy: name, Meta: meta}, nil
		}
	}
	return flopNoBetFallback(obs, rationale, meta, name)
}

// flopNoBetFallback is the rule-miss line: the preflop aggressor c-bets
// small on dry boards, everyone else checks their range.
func flopNoBetFallback(obs Observation, rationale []Rationale, meta *Meta, name string) (policyResult, error) {
	if obs.ToCall == 0 {
		if obs.Role == RolePFR && obs.BoardTexture == poker.TextureDry {
			if betlike := pickBetlike(obs.Acts); betlike != nil {
				meta.SizeTag = SizeThird
				rationale = append(rationale, rat(FLDryCbetThird))
				return policyResult{
					Suggested: Suggested{Action: betlike.Action},
					Rationale: rationale,
					Policy:    name,
					Meta:      meta,
				}, nil
			}
		}
		if game.FindAction(obs.Acts, game.ActionCheck) != nil {
			rationale = append(rationale, rat(FLCheckRange))
			return policyResult{Suggested: Suggested{Action: game.ActionCheck}, Rationale: rationale, Policy: name, Meta: meta}, nil
		}
	}
	return flopLastResort(obs, rationale, meta, name)
}

func flopFacingBet(obs Observation, rules tables.RuleTree, role, pos string, env Env, meta *Meta, name string) (policyResult, error) {
	var rationale []Rationale

	odds := potOdds(obs.ToCall, obs.PotNow)
	meta.PotOdds = odds
	meta.MDF = 1 - odds

	// JSON-driven value raise: exact-path lookup, no defaults.
	if env.FlopValueRaise && obs.HandClass == poker.FlopClassValueTwoPairPlus && obs.FacingSizeTag != FacingNA {
		leaf, ok := rules.MatchStrict(obs.PotType, "role", role, pos, obs.BoardTexture,
			obs.SPRBucket, obs.HandClass, "facing", facingRuleKey(obs.FacingSizeTag))
		if ok {
			if res, done := flopHonourLeaf(obs, leaf, rationale, meta, name); done {
				return res, nil
			}
		}
	}

	rationale = append(rationale, ratData(FLMDFDefend, map[string]any{
		"mdf": meta.MDF, "pot_odds": odds, "facing": obs.FacingSizeTag,
	}))

	// Three-bet pot refinements come before the generic size-based line.
	if obs.PotType == PotThreebet {
		if (obs.FacingSizeTag == FacingThird || obs.FacingSizeTag == FacingHalf) &&
			obs.HandClass == poker.FlopClassValueTwoPairPlus {
			if raise := game.FindAction(obs.Acts, game.ActionRaise); raise != nil {
				meta.SizeTag = SizeTwoThird
				rationale = append(rationale, rat(FLRaiseValue))
				return policyResult{Suggested: Suggested{Action: game.ActionRaise}, Rationale: rationale, Policy: name, Meta: meta}, nil
			}
		}
		if obs.FacingSizeTag == FacingThird && obs.HandClass == poker.FlopClassStrongDraw {
			if raise := game.FindAction(obs.Acts, game.ActionRaise); raise != nil {
				meta.SizeTag = SizeHalf
				rationale = append(rationale, rat(FLRaiseSemiBluff))
				return policyResult{Suggested: Suggested{Action: game.ActionRaise}, Rationale: rationale, Policy: name, Meta: meta}, nil
			}
		}
	}

	switch obs.FacingSizeTag {
	case FacingThird, FacingHalf:
		if game.FindAction(obs.Acts, game.ActionCall) != nil {
			return policyResult{Suggested: Suggested{Action: game.ActionCall}, Rationale: rationale, Policy: name, Meta: meta}, nil
		}
	case FacingTwoThirdPlus:
		if obs.NutAdv {
			if raise := game.FindAction(obs.Acts, game.ActionRaise); raise != nil {
				meta.SizeTag = SizeTwoThird
				meta.Plan = "vs small/half -> call; vs two_third+ -> raise"
				rationale = append(rationale, rat(FLRaiseSemiBluff))
				return policyResult{Suggested: Suggested{Action: game.ActionRaise}, Rationale: rationale, Policy: name, Meta: meta}, nil
			}
		}
	}

	if game.FindAction(obs.Acts, game.ActionCall) != nil {
		return policyResult{Suggested: Suggested{Action: game.ActionCall}, Rationale: rationale, Policy: name, Meta: meta}, nil
	}
	return flopLastResort(obs, rationale, meta, name)
}

// flopHonourLeaf applies a strict-path facing leaf when its action is
// legal. The bool result reports whether the leaf was honoured.
func flopHonourLeaf(obs Observation, leaf tables.RuleLeaf, rationale []Rationale, meta *Meta, name string) (policyResult, bool) {
	switch leaf.Action {
	case game.ActionRaise:
		if game.FindAction(obs.Acts, game.ActionRaise) == nil {
			return policyResult{}, false
		}
		meta.SizeTag = leaf.SizeTag
		if meta.SizeTag == "" {
			meta.SizeTag = SizeTwoThird
		}
		if leaf.Plan != "" {
			meta.Plan = leaf.Plan
		}
		rationale = append(rationale, rat(FLRaiseValue))
		return policyResult{Suggested: Suggested{Action: game.ActionRaise}, Rationale: rationale, Policy: name, Meta: meta}, true
	case game.ActionCall, game.ActionFold:
		if game.FindAction(obs.Acts, leaf.Action) == nil {
			return policyResult{}, false
		}
		odds := potOdds(obs.ToCall, obs.PotNow)
		rationale = append(rationale, ratData(FLMDFDefend, map[string]any{
			"mdf": 1 - odds, "pot_odds": odds, "facing": obs.FacingSizeTag,
		}))
		return policyResult{Suggested: Suggested{Action: leaf.Action}, Rationale: rationale, Policy: name, Meta: meta}, true
	}
	return policyResult{}, false
}

func flopLastResort(obs Observation, rationale []Rationale, meta *Meta, name string) (policyResult, error) {
	if game.FindAction(obs.Acts, game.ActionFold) != nil {
		rationale = append(rationale, rat(PLFold))
		return policyResult{Suggested: Suggested{Action: game.ActionFold}, Rationale: rationale, Policy: name, Meta: meta}, nil
	}
	if game.FindAction(obs.Acts, game.ActionCheck) != nil {
		rationale = append(rationale, rat(SafeCheck))
		return policyResult{Suggested: Suggested{Action: game.ActionCheck}, Rationale: rationale, Policy: name, Meta: meta}, nil
	}
	return policyResult{}, fmt.Errorf("%s: no safe suggestion: %w", "flop_v1", ErrIllegalSuggestion)
}
