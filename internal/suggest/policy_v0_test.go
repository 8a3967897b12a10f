package suggest

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/pokerteach/suggest/internal/game"
	"github.com/pokerteach/suggest/internal/tables"
)

// newTestService builds a Service over a temp table directory seeded with
// the given documents.
func newTestService(t *testing.T, files map[string]string) *Service {
	t.Helper()
	return newLoggedService(t, files, log.New(io.Discard))
}

func newLoggedService(t *testing.T, files map[string]string, logger *log.Logger) *Service {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return NewService(tables.NewStore(dir), logger)
}

func facingActs(toCall, raiseMin, raiseMax int) []game.LegalAction {
	return []game.LegalAction{
		{Action: game.ActionFold},
		{Action: game.ActionCall, ToCall: toCall},
		{Action: game.ActionRaise, Min: raiseMin, Max: raiseMax, HasBounds: true},
	}
}

func openActs(betMin, betMax int) []game.LegalAction {
	return []game.LegalAction{
		{Action: game.ActionCheck},
		{Action: game.ActionBet, Min: betMin, Max: betMax, HasBounds: true},
	}
}

func TestPolicyPreflopV0Open(t *testing.T) {
	t.Parallel()

	obs := Observation{
		Street: game.StreetPreflop,
		BB:     2,
		Tags:   []string{"Ax_suited", "suited_broadway"},
		Acts: []game.LegalAction{
			{Action: game.ActionCheck},
			{Action: game.ActionRaise, Min: 4, Max: 200, HasBounds: true},
		},
	}
	res, err := policyPreflopV0(nil, obs, DefaultPolicyConfig(), DefaultEnv())
	require.NoError(t, err)
	require.Equal(t, game.ActionRaise, res.Suggested.Action)
	require.Equal(t, 5, res.Suggested.Amount)
	require.True(t, hasCode(res.Rationale, PFOpenRaise.Code))
	require.Equal(t, "preflop_v0", res.Policy)
}

func TestPolicyPreflopV0OutOfRangeChecks(t *testing.T) {
	t.Parallel()

	obs := Observation{
		Street:    game.StreetPreflop,
		BB:        2,
		Tags:      []string{},
		HandClass: "weak",
		Acts: []game.LegalAction{
			{Action: game.ActionCheck},
			{Action: game.ActionRaise, Min: 4, Max: 200, HasBounds: true},
		},
	}
	res, err := policyPreflopV0(nil, obs, DefaultPolicyConfig(), DefaultEnv())
	require.NoError(t, err)
	require.Equal(t, game.ActionCheck, res.Suggested.Action)
	require.True(t, hasCode(res.Rationale, PFCheck.Code))
}

func TestPolicyPreflopV0FacingBet(t *testing.T) {
	t.Parallel()

	cfg := DefaultPolicyConfig()

	// In range and cheap: call.
	obs := Observation{
		Street: game.StreetPreflop,
		BB:     2,
		ToCall: 4,
		Tags:   []string{"pair"},
		Acts:   facingActs(4, 12, 200),
	}
	res, err := policyPreflopV0(nil, obs, cfg, DefaultEnv())
	require.NoError(t, err)
	require.Equal(t, game.ActionCall, res.Suggested.Action)
	require.True(t, hasCode(res.Rationale, PFCall.Code))

	// Too expensive even in range: fold.
	obs.ToCall = 20
	obs.Acts = facingActs(20, 40, 200)
	res, err = policyPreflopV0(nil, obs, cfg, DefaultEnv())
	require.NoError(t, err)
	require.Equal(t, game.ActionFold, res.Suggested.Action)
	require.True(t, hasCode(res.Rationale, PFFoldExpensive.Code))

	// Out of range: fold regardless of price.
	obs.ToCall = 2
	obs.Tags = nil
	obs.HandClass = "weak_offsuit"
	obs.Acts = facingActs(2, 6, 200)
	res, err = policyPreflopV0(nil, obs, cfg, DefaultEnv())
	require.NoError(t, err)
	require.Equal(t, game.ActionFold, res.Suggested.Action)
}

func TestPolicyPostflopV03ProbeBet(t *testing.T) {
	t.Parallel()

	obs := Observation{
		Street: game.StreetFlop,
		BB:     2,
		Tags:   []string{"weak"},
		Acts:   openActs(2, 100),
	}
	res, err := policyPostflopV03(nil, obs, DefaultPolicyConfig(), DefaultEnv())
	require.NoError(t, err)
	require.Equal(t, game.ActionBet, res.Suggested.Action)
	require.Equal(t, 2, res.Suggested.Amount)
	require.True(t, hasCode(res.Rationale, PLProbeBet.Code))
	require.True(t, hasCode(res.Rationale, PLHeader.Code))
}

func TestPolicyPostflopV03TurnNeedsPair(t *testing.T) {
	t.Parallel()

	obs := Observation{
		Street: game.StreetTurn,
		BB:     2,
		Tags:   []string{"weak"},
		Acts:   openActs(2, 100),
	}
	res, err := policyPostflopV03(nil, obs, DefaultPolicyConfig(), DefaultEnv())
	require.NoError(t, err)
	require.Equal(t, game.ActionCheck, res.Suggested.Action)

	obs.Tags = []string{"pair"}
	res, err = policyPostflopV03(nil, obs, DefaultPolicyConfig(), DefaultEnv())
	require.NoError(t, err)
	require.Equal(t, game.ActionBet, res.Suggested.Action)
}

func TestPolicyPostflopV03PotOdds(t *testing.T) {
	t.Parallel()

	cfg := DefaultPolicyConfig()

	// 10 into 40: odds 0.2 <= 0.33, call.
	obs := Observation{
		Street: game.StreetRiver,
		BB:     2,
		Pot:    40,
		PotNow: 50,
		ToCall: 10,
		Tags:   []string{"weak"},
		Acts:   facingActs(10, 20, 200),
	}
	res, err := policyPostflopV03(nil, obs, cfg, DefaultEnv())
	require.NoError(t, err)
	require.Equal(t, game.ActionCall, res.Suggested.Action)
	require.True(t, hasCode(res.Rationale, PLCall.Code))

	// 40 into 40: odds 0.5 > 0.40 even for the call range, fold.
	obs.ToCall = 40
	obs.Tags = []string{"pair"}
	obs.Acts = facingActs(40, 80, 200)
	res, err = policyPostflopV03(nil, obs, cfg, DefaultEnv())
	require.NoError(t, err)
	require.Equal(t, game.ActionFold, res.Suggested.Action)
	require.True(t, hasCode(res.Rationale, PLFold.Code))
}
