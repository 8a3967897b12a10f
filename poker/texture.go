package poker

// Board texture labels. "na" covers boards with fewer than three cards.
const (
	TextureDry  = "dry"
	TextureSemi = "semi"
	TextureWet  = "wet"
	TextureNA   = "na"
)

// FlopTexture describes the first three board cards.
type FlopTexture struct {
	Texture      string
	Paired       bool
	FlushDraw    bool
	StraightDraw bool
}

// ClassifyFlop classifies the flop texture from the board cards.
// Rules:
//   - fewer than 3 cards: na
//   - paired, three suited, or connected plus two suited: wet
//   - two suited or connected (adjacent gaps <= 1, or a single 2-gap): semi
//   - otherwise dry
func ClassifyFlop(board []string) FlopTexture {
	if len(board) < 3 {
		return FlopTexture{Texture: TextureNA}
	}
	cards, ok := ParseCards(board[:3])
	if !ok {
		return FlopTexture{Texture: TextureNA}
	}

	paired := cards[0].Rank == cards[1].Rank ||
		cards[0].Rank == cards[2].Rank ||
		cards[1].Rank == cards[2].Rank

	suitCounts := map[Suit]int{}
	for _, c := range cards {
		suitCounts[c.Suit]++
	}
	threeSuited := false
	twoSuited := false
	for _, n := range suitCounts {
		if n == 3 {
			threeSuited = true
		}
		if n == 2 {
			twoSuited = true
		}
	}

	vals := []int{cards[0].Value(), cards[1].Value(), cards[2].Value()}
	if vals[0] > vals[1] {
		vals[0], vals[1] = vals[1], vals[0]
	}
	if vals[1] > vals[2] {
		vals[1], vals[2] = vals[2], vals[1]
	}
	if vals[0] > vals[1] {
		vals[0], vals[1] = vals[1], vals[0]
	}
	g1, g2 := vals[1]-vals[0], vals[2]-vals[1]
	connected := (g1 <= 1 && g2 <= 1) || g1 == 2 || g2 == 2

	t := FlopTexture{
		Paired:       paired,
		FlushDraw:    threeSuited || twoSuited,
		StraightDraw: connected,
	}
	switch {
	case paired || threeSuited || (connected && twoSuited):
		t.Texture = TextureWet
	case twoSuited || connected:
		t.Texture = TextureSemi
	default:
		t.Texture = TextureDry
	}
	return t
}
