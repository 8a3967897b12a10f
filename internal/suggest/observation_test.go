package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokerteach/suggest/internal/game"
	"github.com/pokerteach/suggest/poker"
)

func defendState() *game.State {
	return &game.State{
		HandID: "obs-1",
		Street: game.StreetPreflop,
		Button: 0,
		SB:     1,
		BB:     2,
		Players: [2]game.Player{
			{Hole: []string{"As", "Kd"}, Stack: 95, InvestedStreet: 5},
			{Hole: []string{"Qh", "Qs"}, Stack: 98, InvestedStreet: 2},
		},
		ToAct:   1,
		LastBet: 5,
		Events: []game.Event{
			{Type: game.EventBlind, Seat: 0, Amount: 1, Street: game.StreetPreflop},
			{Type: game.EventBlind, Seat: 1, Amount: 2, Street: game.StreetPreflop},
			{Type: game.EventRaise, Seat: 0, Amount: 5, Street: game.StreetPreflop},
		},
	}
}

func TestBuildObservationPreflopDefend(t *testing.T) {
	t.Parallel()

	gs := defendState()
	acts := game.LegalActions(gs)
	obs, pre := buildObservation(gs, 1, acts, "HU")

	assert.Empty(t, pre)
	assert.Equal(t, "QQ", obs.Combo)
	assert.Equal(t, 7, obs.PotNow)
	assert.Equal(t, 3, obs.ToCall)
	assert.Equal(t, PotSingleRaised, obs.PotType)
	assert.Equal(t, RoleCaller, obs.Role)
	assert.True(t, obs.IP, "BB is in position preflop")
	assert.Equal(t, poker.TextureNA, obs.BoardTexture)
	assert.Equal(t, FacingHalf, obs.FacingSizeTag)
}

func TestBuildObservationFlopOverridesHandClass(t *testing.T) {
	t.Parallel()

	gs := defendState()
	gs.Street = game.StreetFlop
	gs.Board = []string{"Ks", "7d", "2c"}
	gs.Pot = 10
	gs.LastBet = 0
	gs.Players[0].InvestedStreet = 0
	gs.Players[1].InvestedStreet = 0
	gs.ToAct = 0

	acts := game.LegalActions(gs)
	obs, pre := buildObservation(gs, 0, acts, "HU")

	assert.Empty(t, pre)
	assert.Equal(t, poker.TextureDry, obs.BoardTexture)
	assert.Equal(t, poker.FlopClassOverpairOrTPSK, obs.HandClass)
	assert.Equal(t, RolePFR, obs.Role)
	assert.True(t, obs.RangeAdv)
	assert.False(t, obs.NutAdv)
	assert.True(t, obs.IP, "button is in position postflop")
	assert.Equal(t, SPRHigh, obs.SPRBucket)
}

func TestBuildObservationAnalysisFailure(t *testing.T) {
	t.Parallel()

	gs := defendState()
	gs.Players[1].Hole = []string{"??", "!!"}
	acts := game.LegalActions(gs)
	obs, pre := buildObservation(gs, 1, acts, "HU")

	require.Len(t, pre, 1)
	assert.Equal(t, WarnAnalysis.Code, pre[0].Code)
	assert.Equal(t, []string{"unknown"}, obs.Tags)
	assert.Equal(t, "unknown", obs.HandClass)
	assert.Empty(t, obs.Combo)
}

func TestInferPotType(t *testing.T) {
	t.Parallel()

	gs := defendState()
	assert.Equal(t, PotSingleRaised, inferPotType(gs))

	gs.Events = gs.Events[:2]
	assert.Equal(t, PotLimped, inferPotType(gs))

	gs.Events = append(gs.Events,
		game.Event{Type: game.EventRaise, Seat: 0, Amount: 5, Street: game.StreetPreflop},
		game.Event{Type: game.EventRaise, Seat: 1, Amount: 16, Street: game.StreetPreflop},
	)
	assert.Equal(t, PotThreebet, inferPotType(gs))
}
