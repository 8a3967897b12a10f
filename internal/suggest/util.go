package suggest

import (
	"crypto/sha1"
	"encoding/hex"
	"math"
	"strconv"

	"github.com/pokerteach/suggest/internal/game"
)

// pickBetlike returns the first usable aggressive action, preferring bet
// over raise.
func pickBetlike(acts []game.LegalAction) *game.LegalAction {
	for _, name := range []string{game.ActionBet, game.ActionRaise} {
		if a := game.FindAction(acts, name); a != nil && a.HasBounds && a.Min <= a.Max {
			return a
		}
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// calcSPR is the decision-point stack-to-pot ratio. A non-positive pot
// yields +Inf, which SPRBucketOf maps to na.
func calcSPR(potNow, effStack int) float64 {
	if potNow <= 0 {
		return math.Inf(1)
	}
	return float64(effStack) / float64(potNow)
}

// sprBucketOf buckets an SPR value: <=3 low, <=6 mid, above high.
func sprBucketOf(spr float64) string {
	if math.IsInf(spr, 0) || math.IsNaN(spr) {
		return SPRNA
	}
	switch {
	case spr <= 3.0:
		return SPRLow
	case spr <= 6.0:
		return SPRMid
	default:
		return SPRHigh
	}
}

// isIP reports whether the actor acts last on the current street. In HU
// the button is the small blind: first to act preflop, last postflop.
func isIP(actor int, tableMode string, button int, street string) bool {
	if tableMode != "HU" {
		return false
	}
	if street == game.StreetPreflop {
		return actor != button
	}
	return actor == button
}

// deriveFacingSizeTag tags the bet the hero faces as a pot fraction.
func deriveFacingSizeTag(toCall, potNow int) string {
	if toCall <= 0 || potNow <= 0 {
		return FacingNA
	}
	ratio := float64(toCall) / float64(potNow)
	switch {
	case ratio <= 1.0/3.0+1e-9:
		return FacingThird
	case ratio <= 0.5+1e-9:
		return FacingHalf
	default:
		return FacingTwoThirdPlus
	}
}

// facingRuleKey maps a facing-size tag onto its rule-tree key.
func facingRuleKey(tag string) string {
	if tag == FacingTwoThirdPlus {
		return "two_third_plus"
	}
	return tag
}

// potOdds computes to_call / (pot_now + to_call); 1.0 when nothing to call.
func potOdds(toCall, potNow int) float64 {
	if toCall <= 0 {
		return 1.0
	}
	denom := potNow + toCall
	if denom <= 0 {
		return 1.0
	}
	return float64(toCall) / float64(denom)
}

var sizeMults = map[string]float64{
	SizeThird:    1.0 / 3.0,
	SizeHalf:     0.5,
	SizeTwoThird: 2.0 / 3.0,
	SizePot:      1.0,
	SizeAllIn:    10.0, // clamped to the legal window by the service
}

// sizeToAmount translates a size tag into a bet amount (bet semantics).
// The result is a raw target; the service clamps it to the legal window.
func sizeToAmount(pot int, sizeTag string) (int, bool) {
	mult, ok := sizeMults[sizeTag]
	if !ok {
		return 0, false
	}
	amt := int(math.Round(float64(pot) * mult))
	if amt < 1 {
		amt = 1
	}
	return amt, true
}

// raiseToAmount translates a size tag into a raise-to amount: the last bet
// plus a pot fraction, optionally capped at a ratio of the effective stack.
func raiseToAmount(potNow, lastBet int, sizeTag string, effStack int, capRatio float64) (int, bool) {
	mult, ok := sizeMults[sizeTag]
	if !ok {
		return 0, false
	}
	target := float64(lastBet) + float64(potNow)*mult
	if effStack > 0 && capRatio > 0 {
		capped := capRatio * float64(effStack)
		if target > capped {
			target = capped
		}
	}
	amt := int(math.Round(target))
	if amt < 1 {
		amt = 1
	}
	return amt, true
}

// stableRoll hashes handID and reports whether it lands in [0, pct) of 100.
// The mapping is stable across processes: sha1, first 8 hex chars as an
// unsigned integer, mod 100.
func stableRoll(handID string, pct int) bool {
	q := clampInt(pct, 0, 100)
	if q <= 0 {
		return false
	}
	if q >= 100 {
		return true
	}
	sum := sha1.Sum([]byte(handID))
	h := hex.EncodeToString(sum[:])
	n, err := strconv.ParseUint(h[:8], 16, 64)
	if err != nil {
		return false
	}
	return int(n%100) < q
}
