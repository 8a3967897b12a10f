// Package suggest implements the heads-up NLHE suggest engine: it turns a
// frozen hand snapshot into a legal action recommendation with rationale
// codes, a policy name, a confidence score and teaching metadata.
package suggest

import "github.com/pokerteach/suggest/internal/game"

// Size tags for bet and raise sizing.
const (
	SizeThird    = "third"
	SizeHalf     = "half"
	SizeTwoThird = "two_third"
	SizePot      = "pot"
	SizeAllIn    = "all_in"
)

// Facing-size tags describe the bet the hero faces as a pot fraction.
const (
	FacingThird        = "third"
	FacingHalf         = "half"
	FacingTwoThirdPlus = "two_third+"
	FacingNA           = "na"
)

// SPR buckets.
const (
	SPRLow  = "low"
	SPRMid  = "mid"
	SPRHigh = "high"
	SPRNA   = "na"
)

// Roles relative to the preflop aggressor.
const (
	RolePFR    = "pfr"
	RoleCaller = "caller"
	RoleNA     = "na"
)

// Pot types.
const (
	PotLimped       = "limped"
	PotSingleRaised = "single_raised"
	PotThreebet     = "threebet"
)

// Observation is the frozen input every policy consumes. Policies are pure
// functions of (Observation, PolicyConfig); anything street- or
// history-dependent is resolved here by the builder.
type Observation struct {
	HandID string
	Actor  int
	Street string
	BB     int
	Pot    int
	// PotNow is Pot plus both players' current-street investment. It never
	// includes the hero's pending ToCall; pot odds are
	// ToCall / (PotNow + ToCall).
	PotNow int
	ToCall int

	TableMode string
	IP        bool
	Button    int

	Acts []game.LegalAction

	Tags      []string
	HandClass string
	Combo     string

	BoardTexture string
	SPRBucket    string

	PotType       string
	Role          string
	RangeAdv      bool
	NutAdv        bool
	FacingSizeTag string
}

// PolicyConfig carries the tunable thresholds for the baseline policies.
type PolicyConfig struct {
	OpenSizeBB                float64
	CallThresholdBB           int
	PotOddsThreshold          float64
	PotOddsThresholdCallRange float64
}

// DefaultPolicyConfig returns the standard thresholds.
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		OpenSizeBB:                2.5,
		CallThresholdBB:           3,
		PotOddsThreshold:          0.33,
		PotOddsThresholdCallRange: 0.40,
	}
}

// Suggested is the recommended action; Amount is set only for chip actions.
type Suggested struct {
	Action string `json:"action"`
	Amount int    `json:"amount,omitempty"`
}

// Rationale is one explanation item attached to a suggestion.
type Rationale struct {
	Code string         `json:"code"`
	Msg  string         `json:"msg"`
	Data map[string]any `json:"data,omitempty"`
}

// Meta carries optional teaching metadata alongside the suggestion.
type Meta struct {
	SizeTag       string  `json:"size_tag,omitempty"`
	Role          string  `json:"role,omitempty"`
	Texture       string  `json:"texture,omitempty"`
	SPRBucket     string  `json:"spr_bucket,omitempty"`
	MDF           float64 `json:"mdf,omitempty"`
	PotOdds       float64 `json:"pot_odds,omitempty"`
	FacingSizeTag string  `json:"facing_size_tag,omitempty"`
	RangeAdv      bool    `json:"range_adv,omitempty"`
	NutAdv        bool    `json:"nut_adv,omitempty"`
	RulesVer      int     `json:"rules_ver,omitempty"`
	Plan          string  `json:"plan,omitempty"`
	Combo         string  `json:"combo,omitempty"`
	OpenBB        float64 `json:"open_bb,omitempty"`
	Bucket        string  `json:"bucket,omitempty"`
	ReraiseToBB   float64 `json:"reraise_to_bb,omitempty"`
	FourbetToBB   float64 `json:"fourbet_to_bb,omitempty"`
	CapBB         float64 `json:"cap_bb,omitempty"`
}

// Suggestion is the engine's response.
type Suggestion struct {
	HandID     string      `json:"hand_id"`
	Actor      int         `json:"actor"`
	Suggested  Suggested   `json:"suggested"`
	Rationale  []Rationale `json:"rationale"`
	Policy     string      `json:"policy"`
	Confidence float64     `json:"confidence"`
	Meta       *Meta       `json:"meta,omitempty"`
	Debug      *Debug      `json:"debug,omitempty"`
}

// Debug wraps the diagnostic block attached when SUGGEST_DEBUG=1.
type Debug struct {
	Meta map[string]any `json:"meta"`
}
