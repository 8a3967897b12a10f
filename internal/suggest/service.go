package suggest

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/pokerteach/suggest/internal/game"
	"github.com/pokerteach/suggest/internal/tables"
)

// Service turns a frozen hand snapshot into a suggestion. It is stateless
// between calls; the table store carries the only shared cache, so one
// Service instance serves concurrent requests.
type Service struct {
	tables *tables.Store
	logger *log.Logger
	cfg    PolicyConfig
}

// Option configures a Service.
type Option func(*Service)

// WithPolicyConfig overrides the baseline policy thresholds.
func WithPolicyConfig(cfg PolicyConfig) Option {
	return func(s *Service) { s.cfg = cfg }
}

// NewService builds a suggest service over a table store.
func NewService(store *tables.Store, logger *log.Logger, opts ...Option) *Service {
	s := &Service{
		tables: store,
		logger: logger,
		cfg:    DefaultPolicyConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	v0Registry = map[string]policyFn{
		game.StreetPreflop: policyPreflopV0,
		game.StreetFlop:    policyPostflopV03,
		game.StreetTurn:    policyPostflopV03,
		game.StreetRiver:   policyPostflopV03,
	}
	v1Registry = map[string]policyFn{
		game.StreetPreflop: policyPreflopV1,
		game.StreetFlop:    policyFlopV1,
		game.StreetTurn:    policyPostflopV03,
		game.StreetRiver:   policyPostflopV03,
	}
	v1PreflopRegistry = map[string]policyFn{
		game.StreetPreflop: policyPreflopV1,
		game.StreetFlop:    policyPostflopV03,
		game.StreetTurn:    policyPostflopV03,
		game.StreetRiver:   policyPostflopV03,
	}
)

// choosePolicyVersion resolves auto into v0 or v1 with the stable
// per-hand roll. The second result reports whether auto rolled to v1.
func choosePolicyVersion(env Env, handID string) (string, bool) {
	if env.PolicyVersion != VersionAuto {
		return env.PolicyVersion, false
	}
	if stableRoll(handID, env.RolloutPct) {
		return VersionV1, true
	}
	return VersionV0, false
}

func registryFor(version string) map[string]policyFn {
	switch version {
	case VersionV1:
		return v1Registry
	case VersionV1Preflop:
		return v1PreflopRegistry
	default:
		return v0Registry
	}
}

// Suggest recommends a legal action for the given seat of a snapshot.
func (s *Service) Suggest(gs *game.State, actor int, env Env) (*Suggestion, error) {
	if game.ToActIndex(gs) != actor {
		return nil, fmt.Errorf("hand %s seat %d: %w", gs.HandID, actor, ErrNotActorsTurn)
	}
	acts := game.LegalActions(gs)
	if len(acts) == 0 {
		return nil, fmt.Errorf("hand %s seat %d: %w", gs.HandID, actor, ErrNoLegalActions)
	}

	obs, pre := buildObservation(gs, actor, acts, env.TableMode)

	version, rolled := choosePolicyVersion(env, gs.HandID)
	fn := registryFor(version)[obs.Street]
	if fn == nil {
		fn = policyPostflopV03
	}

	res, err := fn(s, obs, s.cfg, env)
	if err != nil {
		return nil, err
	}

	rationale := append(pre, res.Rationale...)
	suggested := res.Suggested
	meta := res.Meta
	clamped := false

	// Size-tag translation: bet semantics for a bet, raise-to for a raise.
	if suggested.Amount == 0 && meta != nil && meta.SizeTag != "" &&
		(suggested.Action == game.ActionBet || suggested.Action == game.ActionRaise) {
		modes, _ := s.tables.Mode(env.TableMode)
		if suggested.Action == game.ActionBet {
			if amt, ok := sizeToAmount(obs.PotNow, meta.SizeTag); ok {
				suggested.Amount = amt
			}
		} else {
			effStack := gs.Players[actor].Stack
			if opp := gs.Players[1-actor].Stack; opp < effStack {
				effStack = opp
			}
			if amt, ok := raiseToAmount(obs.PotNow, gs.LastBet, meta.SizeTag, effStack, modes.PostflopCapRatio); ok {
				suggested.Amount = amt
			}
		}
	}

	// Min re-open: a raise target below the legal minimum is lifted.
	if suggested.Action == game.ActionRaise {
		if raise := game.FindAction(acts, game.ActionRaise); raise != nil && raise.HasBounds &&
			suggested.Amount > 0 && suggested.Amount < raise.Min {
			suggested.Amount = raise.Min
			rationale = append(rationale, rat(FLMinReopenAdjust))
		}
	}

	// Clamp chip amounts to the action's legal window.
	if act := game.FindAction(acts, suggested.Action); act != nil && act.HasBounds && suggested.Amount != 0 {
		lo, hi := act.Min, act.Max
		want := suggested.Amount
		chosen := clampInt(want, lo, hi)
		if lo > hi {
			chosen = hi
		}
		if chosen != want {
			clamped = true
			suggested.Amount = chosen
			rationale = append(rationale, ratData(WarnClamped, map[string]any{
				"min": lo, "max": hi, "given": want, "chosen": chosen,
			}))
		}
	}

	// A small-blind limp always carries its teaching code.
	if obs.Street == game.StreetPreflop && suggested.Action == game.ActionCall &&
		!obs.IP && obs.ToCall <= obs.BB && !hasCode(rationale, PFLimpCompleteBlind.Code) {
		rationale = append(rationale, rat(PFLimpCompleteBlind))
	}

	if err := validateSuggestion(acts, suggested); err != nil {
		return nil, fmt.Errorf("hand %s policy %s: %w", gs.HandID, res.Policy, err)
	}

	conf := confidence(res.Policy, rationale, meta, obs.ToCall, clamped)

	sug := &Suggestion{
		HandID:     gs.HandID,
		Actor:      actor,
		Suggested:  suggested,
		Rationale:  rationale,
		Policy:     res.Policy,
		Confidence: conf,
		Meta:       meta,
	}
	if env.Debug {
		sug.Debug = s.debugBlock(obs, env, version, rolled, meta, suggested)
	}

	// Structured log for v1 lines, or whenever debug is on.
	if version == VersionV1 || version == VersionV1Preflop || env.Debug {
		s.logger.Info("suggest_v1",
			"hand_id", gs.HandID,
			"actor", actor,
			"street", obs.Street,
			"policy", res.Policy,
			"version", version,
			"action", suggested.Action,
			"amount", suggested.Amount,
			"confidence", conf,
			"config_profile", s.tables.Profile(),
			"strategy", tables.NormalizeStrategy(env.Strategy),
		)
	}
	return sug, nil
}

// validateSuggestion rejects actions outside the legal set or amounts
// outside the action's window.
func validateSuggestion(acts []game.LegalAction, sg Suggested) error {
	act := game.FindAction(acts, sg.Action)
	if act == nil {
		return fmt.Errorf("action %q not offered: %w", sg.Action, ErrIllegalSuggestion)
	}
	if act.HasBounds && sg.Amount != 0 && (sg.Amount < act.Min || sg.Amount > act.Max) {
		return fmt.Errorf("amount %d outside [%d,%d]: %w", sg.Amount, act.Min, act.Max, ErrIllegalSuggestion)
	}
	return nil
}

// Codes that mark a range or price hit for confidence scoring.
var confidenceHitCodes = []string{
	PFOpenRangeHit.Code,
	PFDefend3Bet.Code,
	PFDefendPriceOK.Code,
}

// Codes that mark a fallback line for confidence scoring.
var confidenceFallbackCodes = []string{
	CfgFallbackUsed.Code,
	PFNoLegalRaise.Code,
	PFLimpCompleteBlind.Code,
}

// confidence scores 0.5-0.9: range and price hits push up, fallbacks and
// clamps push down, the flop mainline and an explicit plan add a little.
func confidence(policy string, rationale []Rationale, meta *Meta, toCall int, clamped bool) float64 {
	c := 0.5
	hit := false
	for _, code := range confidenceHitCodes {
		if hasCode(rationale, code) {
			hit = true
			break
		}
	}
	if hit {
		c += 0.30 + 0.20
	}
	for _, code := range confidenceFallbackCodes {
		if hasCode(rationale, code) {
			c -= 0.10
			break
		}
	}
	if clamped {
		c -= 0.10
	}
	if policy == "flop_v1" && meta != nil && meta.SizeTag != "" && toCall == 0 {
		c += 0.05
	}
	if meta != nil && meta.Plan != "" {
		c += 0.05
	}
	return math.Min(0.9, math.Max(0.5, c))
}

// debugBlock assembles the diagnostic meta attached under SUGGEST_DEBUG=1.
func (s *Service) debugBlock(obs Observation, env Env, version string, rolled bool, meta *Meta, sg Suggested) *Debug {
	_, openVer := s.tables.Open()
	_, vsVer := s.tables.Vs()
	_, modesVer := s.tables.Mode(env.TableMode)

	bb := float64(obs.BB)
	if bb <= 0 {
		bb = 1
	}
	units := map[string]any{
		"to_call_bb": float64(obs.ToCall) / bb,
		"open_to_bb": float64(obs.ToCall)/bb + 1,
		"pot_odds":   potOdds(obs.ToCall, obs.PotNow),
	}
	rulesVer := 0
	if meta != nil {
		rulesVer = meta.RulesVer
		if meta.ReraiseToBB != 0 {
			units["reraise_to_bb"] = meta.ReraiseToBB
			units["reraise_to_amount"] = sg.Amount
		}
		if meta.FourbetToBB != 0 {
			units["fourbet_to_bb"] = meta.FourbetToBB
		}
		if meta.CapBB != 0 {
			units["cap_bb"] = meta.CapBB
		}
		if meta.Bucket != "" {
			units["bucket"] = meta.Bucket
		}
	}

	return &Debug{Meta: map[string]any{
		"policy_version":  version,
		"rollout_pct":     env.RolloutPct,
		"rolled_to_v1":    rolled,
		"table_mode":      env.TableMode,
		"config_profile":  s.tables.Profile(),
		"strategy":        tables.NormalizeStrategy(env.Strategy),
		"spr_bucket":      obs.SPRBucket,
		"board_texture":   obs.BoardTexture,
		"pot_type":        obs.PotType,
		"role":            obs.Role,
		"range_adv":       obs.RangeAdv,
		"nut_adv":         obs.NutAdv,
		"facing_size_tag": obs.FacingSizeTag,
		"open_ver":        openVer,
		"vs_ver":          vsVer,
		"modes_ver":       modesVer,
		"rules_ver":       rulesVer,
		"units":           units,
	}}
}
