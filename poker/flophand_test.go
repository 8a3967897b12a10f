package poker

import "testing"

func TestFlopHandClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hole  []string
		board []string
		want  string
	}{
		{"set", []string{"7h", "7d"}, []string{"Kd", "7s", "2c"}, FlopClassValueTwoPairPlus},
		{"two pair", []string{"Kh", "7d"}, []string{"Kd", "7s", "2c"}, FlopClassValueTwoPairPlus},
		{"trips on paired board", []string{"8c", "Ad"}, []string{"8d", "8h", "2s"}, FlopClassValueTwoPairPlus},
		{"flopped flush", []string{"Ah", "2h"}, []string{"Kh", "9h", "4h"}, FlopClassValueTwoPairPlus},
		{"flopped straight", []string{"Th", "9d"}, []string{"8d", "7s", "6c"}, FlopClassValueTwoPairPlus},
		{"overpair", []string{"Ah", "Ad"}, []string{"Kd", "7s", "2c"}, FlopClassOverpairOrTPSK},
		{"top pair top kicker", []string{"Ah", "Kh"}, []string{"Kd", "7s", "2c"}, FlopClassOverpairOrTPSK},
		{"top pair weak kicker", []string{"Kh", "5h"}, []string{"Kd", "7s", "2c"}, FlopClassTopPairWeakOrSecond},
		{"second pair", []string{"7h", "Ad"}, []string{"Kd", "7s", "2c"}, FlopClassTopPairWeakOrSecond},
		{"pocket pair below top card", []string{"9h", "9d"}, []string{"Kd", "7s", "2c"}, FlopClassTopPairWeakOrSecond},
		{"flush draw", []string{"Ah", "5h"}, []string{"Kh", "9h", "2c"}, FlopClassStrongDraw},
		{"open ended", []string{"Th", "9d"}, []string{"8d", "7s", "2c"}, FlopClassStrongDraw},
		{"third pair", []string{"2h", "Ad"}, []string{"Kd", "7s", "2c"}, FlopClassMiddleOrThirdMinus},
		{"small pocket pair", []string{"4h", "4d"}, []string{"Kd", "7s", "2c"}, FlopClassMiddleOrThirdMinus},
		{"air", []string{"Jh", "4d"}, []string{"Kd", "7s", "2c"}, FlopClassWeakDrawOrAir},
		{"gutshot is weak", []string{"Jh", "Td"}, []string{"8d", "7s", "2c"}, FlopClassWeakDrawOrAir},
		{"bad input", []string{"Jh"}, []string{"8d", "7s", "2c"}, FlopClassWeakDrawOrAir},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlopHandClass(tt.hole, tt.board); got != tt.want {
				t.Errorf("FlopHandClass(%v, %v) = %q, want %q", tt.hole, tt.board, got, tt.want)
			}
		})
	}
}
