package suggest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokerteach/suggest/internal/game"
)

const testFlopRulesJSON = `{
  "single_raised": {
    "role": {
      "pfr": {
        "ip": {
          "dry": {
            "low": {
              "value_two_pair_plus": {"action": "bet", "size_tag": "pot"},
              "defaults": {"action": "check"}
            },
            "mid": {
              "weak_draw_or_air": {"action": "bet", "size_tag": "third"},
              "value_two_pair_plus": {
                "action": "bet", "size_tag": "third",
                "facing": {
                  "third": {"action": "raise", "size_tag": "two_third"},
                  "half": {"action": "raise", "size_tag": "two_third"},
                  "two_third_plus": {"action": "call"}
                }
              },
              "defaults": {"action": "check"}
            },
            "defaults": {"defaults": {"action": "check"}}
          },
          "defaults": {"defaults": {"defaults": {"action": "check", "plan": "delayed c-bet on good turns"}}}
        },
        "defaults": {"defaults": {"defaults": {"defaults": {"action": "check"}}}}
      },
      "defaults": {"defaults": {"defaults": {"defaults": {"defaults": {"action": "check"}}}}}
    }
  },
  "defaults": {"role": {"defaults": {"defaults": {"defaults": {"defaults": {"defaults": {"action": "check"}}}}}}},
  "version": 1
}`

func allTables() map[string]string {
	files := preflopTables()
	files["postflop/flop_rules_HU_medium.json"] = testFlopRulesJSON
	return files
}

func v1Env() Env {
	env := DefaultEnv()
	env.PolicyVersion = VersionV1
	return env
}

// cbetState is the flop spot: seat 0 opened preflop on the button and acts
// first to bet on K72 rainbow.
func cbetState() *game.State {
	return &game.State{
		HandID: "flop-1",
		Street: game.StreetFlop,
		Button: 0,
		SB:     1,
		BB:     2,
		Pot:    10,
		Board:  []string{"Ks", "7d", "2c"},
		Players: [2]game.Player{
			{Hole: []string{"5h", "4c"}, Stack: 50},
			{Hole: []string{"Qh", "Js"}, Stack: 50},
		},
		ToAct: 0,
		Events: []game.Event{
			{Type: game.EventRaise, Seat: 0, Amount: 5, Street: game.StreetPreflop},
		},
	}
}

func TestSuggestFlopRangeAdvSmallBet(t *testing.T) {
	t.Parallel()

	s := newTestService(t, allTables())
	sug, err := s.Suggest(cbetState(), 0, v1Env())
	require.NoError(t, err)

	assert.Equal(t, game.ActionBet, sug.Suggested.Action)
	assert.Equal(t, 3, sug.Suggested.Amount, "one third of a 10 pot")
	assert.Equal(t, SizeThird, sug.Meta.SizeTag)
	assert.True(t, hasCode(sug.Rationale, FLRangeAdvSmallBet.Code))
	assert.Equal(t, "flop_v1", sug.Policy)
}

// semiBluffState is a three-bet pot where the out-of-position caller holds
// a combo draw and faces a small c-bet.
func semiBluffState() *game.State {
	return &game.State{
		HandID: "flop-2",
		Street: game.StreetFlop,
		Button: 1,
		SB:     1,
		BB:     2,
		Pot:    30,
		Board:  []string{"9s", "8s", "7d"},
		Players: [2]game.Player{
			{Hole: []string{"Ts", "5s"}, Stack: 100},
			{Hole: []string{"Ah", "Ad"}, Stack: 100, InvestedStreet: 10},
		},
		ToAct:      0,
		LastBet:    10,
		MinRaiseTo: 20,
		Events: []game.Event{
			{Type: game.EventRaise, Seat: 1, Amount: 5, Street: game.StreetPreflop},
			{Type: game.EventRaise, Seat: 0, Amount: 15, Street: game.StreetPreflop},
			{Type: game.EventRaise, Seat: 1, Amount: 30, Street: game.StreetPreflop},
			{Type: game.EventBet, Seat: 1, Amount: 10, Street: game.StreetFlop},
		},
	}
}

func TestSuggestFlopSemiBluffRaise(t *testing.T) {
	t.Parallel()

	s := newTestService(t, allTables())
	sug, err := s.Suggest(semiBluffState(), 0, v1Env())
	require.NoError(t, err)

	assert.Equal(t, game.ActionRaise, sug.Suggested.Action)
	// last bet 10 plus half of the 40 pot.
	assert.Equal(t, 30, sug.Suggested.Amount)
	assert.Equal(t, SizeHalf, sug.Meta.SizeTag)
	assert.True(t, hasCode(sug.Rationale, FLMDFDefend.Code))
	assert.True(t, hasCode(sug.Rationale, FLRaiseSemiBluff.Code))
}

func TestSuggestMinReopenLift(t *testing.T) {
	t.Parallel()

	gs := semiBluffState()
	gs.MinRaiseTo = 35

	s := newTestService(t, allTables())
	sug, err := s.Suggest(gs, 0, v1Env())
	require.NoError(t, err)

	assert.Equal(t, game.ActionRaise, sug.Suggested.Action)
	assert.Equal(t, 35, sug.Suggested.Amount)
	assert.True(t, hasCode(sug.Rationale, FLMinReopenAdjust.Code))
}

func TestSuggestClampsOversizedBet(t *testing.T) {
	t.Parallel()

	// Pot-size bet of 400 into a 50 stack must clamp to the bet maximum.
	gs := cbetState()
	gs.Pot = 400
	gs.Players[0].Hole = []string{"Kd", "Kh"}

	s := newTestService(t, allTables())
	sug, err := s.Suggest(gs, 0, v1Env())
	require.NoError(t, err)

	assert.Equal(t, game.ActionBet, sug.Suggested.Action)
	assert.Equal(t, 50, sug.Suggested.Amount)

	require.True(t, hasCode(sug.Rationale, WarnClamped.Code))
	for _, r := range sug.Rationale {
		if r.Code == WarnClamped.Code {
			assert.Equal(t, 2, r.Data["min"])
			assert.Equal(t, 50, r.Data["max"])
			assert.Equal(t, 400, r.Data["given"])
			assert.Equal(t, 50, r.Data["chosen"])
		}
	}
	assert.True(t, hasCode(sug.Rationale, FLLowSPRValueUp.Code))
}

func TestSuggestConfidenceBounds(t *testing.T) {
	t.Parallel()

	s := newTestService(t, allTables())
	states := []*game.State{cbetState(), semiBluffState()}
	for _, gs := range states {
		for _, version := range []string{VersionV0, VersionV1, VersionV1Preflop} {
			env := DefaultEnv()
			env.PolicyVersion = version
			sug, err := s.Suggest(gs, gs.ToAct, env)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, sug.Confidence, 0.5)
			assert.LessOrEqual(t, sug.Confidence, 0.9)
		}
	}
}

func TestSuggestSBLimpCarriesCode(t *testing.T) {
	t.Parallel()

	gs := &game.State{
		HandID: "limp-1",
		Street: game.StreetPreflop,
		Button: 0,
		SB:     1,
		BB:     2,
		Players: [2]game.Player{
			{Hole: []string{"2h", "2c"}, Stack: 99, InvestedStreet: 1},
			{Hole: []string{"Qh", "Js"}, Stack: 98, InvestedStreet: 2},
		},
		ToAct:   0,
		LastBet: 2,
	}

	// v0 calls the cheap blind with a pair; the service backfills the
	// teaching code.
	s := newTestService(t, allTables())
	env := DefaultEnv()
	sug, err := s.Suggest(gs, 0, env)
	require.NoError(t, err)

	if sug.Suggested.Action == game.ActionCall {
		assert.True(t, hasCode(sug.Rationale, PFLimpCompleteBlind.Code))
	}
}

func TestSuggestNotActorsTurn(t *testing.T) {
	t.Parallel()

	s := newTestService(t, allTables())
	_, err := s.Suggest(cbetState(), 1, v1Env())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotActorsTurn))
}

func TestSuggestDebugBlock(t *testing.T) {
	t.Parallel()

	env := v1Env()
	env.Debug = true

	s := newTestService(t, allTables())
	sug, err := s.Suggest(cbetState(), 0, env)
	require.NoError(t, err)

	require.NotNil(t, sug.Debug)
	assert.Equal(t, VersionV1, sug.Debug.Meta["policy_version"])
	assert.Equal(t, "single_raised", sug.Debug.Meta["pot_type"])
	assert.Equal(t, "dry", sug.Debug.Meta["board_texture"])
	assert.Equal(t, "builtin", sug.Debug.Meta["config_profile"])
	assert.Contains(t, sug.Debug.Meta, "units")
}

func TestSuggestLogGatedOnVersion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := newLoggedService(t, allTables(), log.New(&buf))

	// v0 without debug stays quiet.
	_, err := s.Suggest(cbetState(), 0, DefaultEnv())
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "suggest_v1")

	// v0 with debug logs.
	env := DefaultEnv()
	env.Debug = true
	_, err = s.Suggest(cbetState(), 0, env)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "suggest_v1")

	// v1 always logs, and the line names the config profile.
	buf.Reset()
	_, err = s.Suggest(cbetState(), 0, v1Env())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "suggest_v1")
	assert.Contains(t, buf.String(), "config_profile")
}

func TestSuggestDebugOmitted(t *testing.T) {
	t.Parallel()

	s := newTestService(t, allTables())
	sug, err := s.Suggest(cbetState(), 0, v1Env())
	require.NoError(t, err)
	assert.Nil(t, sug.Debug)
}

func TestChoosePolicyVersion(t *testing.T) {
	t.Parallel()

	v, rolled := choosePolicyVersion(Env{PolicyVersion: VersionV0}, "h")
	assert.Equal(t, VersionV0, v)
	assert.False(t, rolled)

	v, _ = choosePolicyVersion(Env{PolicyVersion: VersionV1Preflop}, "h")
	assert.Equal(t, VersionV1Preflop, v)

	v, rolled = choosePolicyVersion(Env{PolicyVersion: VersionAuto, RolloutPct: 0}, "h")
	assert.Equal(t, VersionV0, v)
	assert.False(t, rolled)

	v, rolled = choosePolicyVersion(Env{PolicyVersion: VersionAuto, RolloutPct: 100}, "h")
	assert.Equal(t, VersionV1, v)
	assert.True(t, rolled)

	// Deterministic per hand id.
	first, _ := choosePolicyVersion(Env{PolicyVersion: VersionAuto, RolloutPct: 50}, "hand-42")
	for i := 0; i < 20; i++ {
		again, _ := choosePolicyVersion(Env{PolicyVersion: VersionAuto, RolloutPct: 50}, "hand-42")
		assert.Equal(t, first, again)
	}
}
