package suggest

// CodeDef is one entry of the closed rationale-code catalogue.
type CodeDef struct {
	Code       string
	Severity   string // info or warn
	DefaultMsg string
}

// Analysis note codes (kept for catalogue completeness; the poker package
// emits them as teaching notes).
var (
	AnWeak            = CodeDef{"E001", "warn", "Weak hand: consider folding in many preflop spots."}
	AnVeryWeak        = CodeDef{"E002", "warn", "Very weak offsuit/unconnected. Often a fold preflop."}
	AnSuitedConnected = CodeDef{"N101", "info", "Suited & relatively connected. Potential for draws."}
	AnPremiumPair     = CodeDef{"N102", "info", "Premium pair: raise or 3-bet in many spots."}
)

// Preflop v0 codes.
var (
	PFOpenBet       = CodeDef{"PF_OPEN_BET", "info", "Unopened pot: open for a standard size (bet)."}
	PFOpenRaise     = CodeDef{"PF_OPEN_RAISE", "info", "Unopened pot: open for a standard size (raise)."}
	PFCheck         = CodeDef{"PF_CHECK", "info", "Not in the opening range, checking."}
	PFFold          = CodeDef{"PF_FOLD", "info", "No better action available, folding."}
	PFCall          = CodeDef{"PF_CALL", "info", "Facing a bet: in range and the price is acceptable."}
	PFFoldExpensive = CodeDef{"PF_FOLD_EXPENSIVE", "info", "Facing a bet: out of range or too expensive, folding."}
)

// Preflop v1 codes.
var (
	PFOpenRangeHit             = CodeDef{"PF_OPEN_RANGE_HIT", "info", "Combo is in the opening range."}
	PFDefend3Bet               = CodeDef{"PF_DEFEND_3BET", "info", "Combo is in the 3-bet range, re-raising."}
	PFDefend3BetMinRaiseAdjust = CodeDef{"PF_DEFEND_3BET_MIN_RAISE_ADJUSTED", "info", "3-bet target was below the minimum raise and was lifted."}
	PFDefendPriceOK            = CodeDef{"PF_DEFEND_PRICE_OK", "info", "Price is acceptable against the defend threshold, calling."}
	PFDefendPriceBad           = CodeDef{"PF_DEFEND_PRICE_BAD", "info", "Price is unfavourable or combo is out of range, folding."}
	PFLimpCompleteBlind        = CodeDef{"PF_LIMP_COMPLETE_BLIND", "info", "Completing the small blind for a cheap price."}
	PFNoLegalRaise             = CodeDef{"PF_NO_LEGAL_RAISE", "warn", "Combo opens but no raise is legal here."}
	PFAttack4Bet               = CodeDef{"PF_ATTACK_4BET", "info", "Combo is in the 4-bet range against this 3-bet size."}
	PFAttack4BetMinRaiseAdjust = CodeDef{"PF_ATTACK_4BET_MIN_RAISE_ADJUSTED", "info", "4-bet target was below the minimum raise and was lifted."}
)

// Postflop v0 codes.
var (
	PLHeader    = CodeDef{"PL_HEADER", "info", "Postflop v0.3: hand tags plus pot-odds thresholds."}
	PLProbeBet  = CodeDef{"PL_PROBE_BET", "info", "Unraised pot: minimum-size probe bet."}
	PLCheck     = CodeDef{"PL_CHECK", "info", "Betting is unavailable or unwise, checking."}
	PLCall      = CodeDef{"PL_CALL", "info", "Pot odds are acceptable, calling."}
	PLFold      = CodeDef{"PL_FOLD", "info", "Pot odds are unfavourable, folding."}
	PLAllInOnly = CodeDef{"PL_ALLIN_ONLY", "info", "All-in is the only aggressive option left."}
)

// Flop v1 codes.
var (
	FLRangeAdvSmallBet = CodeDef{"FL_RANGE_ADV_SMALL_BET", "info", "Range advantage: small c-bet puts the whole range to work."}
	FLNutAdvPolar      = CodeDef{"FL_NUT_ADV_POLAR", "info", "Nut advantage: polarised sizing pressures the capped range."}
	FLDryCbetThird     = CodeDef{"FL_DRY_CBET_THIRD", "info", "Standard small c-bet on this texture."}
	FLDelayedCbetPlan  = CodeDef{"FL_DELAYED_CBET_PLAN", "info", "Checking now; plan is a delayed c-bet on good turns."}
	FLCheckRange       = CodeDef{"FL_CHECK_RANGE", "info", "No edge to bet: checking the range here."}
	FLLowSPRValueUp    = CodeDef{"FL_LOW_SPR_VALUE_UP", "info", "Low SPR: sizing up to get stacks in with value."}
	FLHighSPRCtrl      = CodeDef{"FL_HIGH_SPR_CTRL", "info", "High SPR: pot control with a vulnerable holding."}
	FLMDFDefend        = CodeDef{"FL_MDF_DEFEND", "info", "Defense guided by MDF and pot odds."}
	FLRaiseValue       = CodeDef{"FL_RAISE_VALUE", "info", "Raising for value against this size."}
	FLRaiseSemiBluff   = CodeDef{"FL_RAISE_SEMI_BLUFF", "info", "Semi-bluff raise with strong equity."}
	FLMinReopenAdjust  = CodeDef{"FL_MIN_REOPEN_ADJUSTED", "info", "Raise target was below the minimum re-open and was lifted."}
)

// Warnings and fallbacks.
var (
	CfgFallbackUsed = CodeDef{"CFG_FALLBACK_USED", "warn", "Strategy table missing or bad; using conservative fallback."}
	SafeCheck       = CodeDef{"SAFE_CHECK", "info", "Unusual spot: falling back to a check."}
	WarnClamped     = CodeDef{"WARN_CLAMPED", "warn", "Suggested amount was out of bounds and was clamped."}
	WarnAnalysis    = CodeDef{"W_ANALYSIS", "warn", "Hand analysis unavailable; using a conservative line."}
)

// rat builds a rationale item with the catalogue default message.
func rat(def CodeDef) Rationale {
	return Rationale{Code: def.Code, Msg: def.DefaultMsg}
}

// ratData builds a rationale item carrying a data payload.
func ratData(def CodeDef, data map[string]any) Rationale {
	return Rationale{Code: def.Code, Msg: def.DefaultMsg, Data: data}
}

func hasCode(rs []Rationale, code string) bool {
	for _, r := range rs {
		if r.Code == code {
			return true
		}
	}
	return false
}
