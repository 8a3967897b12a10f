package suggest

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names understood by the engine.
const (
	EnvPolicyVersion  = "SUGGEST_POLICY_VERSION"
	EnvRolloutPct     = "SUGGEST_V1_ROLLOUT_PCT"
	EnvTableMode      = "SUGGEST_TABLE_MODE"
	EnvStrategy       = "SUGGEST_STRATEGY"
	EnvDebug          = "SUGGEST_DEBUG"
	EnvEnable4Bet     = "SUGGEST_PREFLOP_ENABLE_4BET"
	EnvFlopValueRaise = "SUGGEST_FLOP_VALUE_RAISE"
)

// Policy version selectors.
const (
	VersionV0        = "v0"
	VersionV1        = "v1"
	VersionV1Preflop = "v1_preflop"
	VersionAuto      = "auto"
)

// Env holds the process-scoped engine configuration. Values are read per
// request so table swaps and rollout changes apply without restart.
type Env struct {
	// PolicyVersion is v0, v1, v1_preflop or auto.
	PolicyVersion string

	// RolloutPct is the stable-rollout percentage used when
	// PolicyVersion is auto.
	RolloutPct int

	// TableMode is the table geometry; only HU is supported.
	TableMode string

	// Strategy selects the flop rule document: loose, medium or tight.
	Strategy string

	// Debug attaches the diagnostic meta block to responses.
	Debug bool

	// Enable4Bet turns on the SB 4-bet path in preflop v1.
	Enable4Bet bool

	// FlopValueRaise enables the JSON-driven value raise on the flop.
	FlopValueRaise bool
}

// DefaultEnv returns the configuration used when nothing is set.
func DefaultEnv() Env {
	return Env{
		PolicyVersion:  VersionV0,
		TableMode:      "HU",
		Strategy:       "medium",
		FlopValueRaise: true,
	}
}

// EnvFromOS parses the SUGGEST_* environment variables, falling back to
// defaults for anything unset or invalid.
func EnvFromOS() Env {
	e := DefaultEnv()

	switch v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvPolicyVersion))); v {
	case VersionV0, VersionV1, VersionV1Preflop, VersionAuto:
		e.PolicyVersion = v
	}

	if v := os.Getenv(EnvRolloutPct); v != "" {
		if pct, err := strconv.Atoi(v); err == nil {
			e.RolloutPct = clampInt(pct, 0, 100)
		}
	}

	if v := strings.ToUpper(strings.TrimSpace(os.Getenv(EnvTableMode))); v != "" {
		e.TableMode = v
	}

	if v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvStrategy))); v != "" {
		e.Strategy = v
	}

	e.Debug = os.Getenv(EnvDebug) == "1"
	e.Enable4Bet = os.Getenv(EnvEnable4Bet) == "1"
	if os.Getenv(EnvFlopValueRaise) == "0" {
		e.FlopValueRaise = false
	}
	return e
}
