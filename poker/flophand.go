package poker

import "sort"

// Six teaching buckets for flop hand strength.
const (
	FlopClassValueTwoPairPlus    = "value_two_pair_plus"
	FlopClassOverpairOrTPSK      = "overpair_or_top_pair_strong_kicker"
	FlopClassTopPairWeakOrSecond = "top_pair_weak_or_second_pair"
	FlopClassMiddleOrThirdMinus  = "middle_pair_or_third_minus"
	FlopClassStrongDraw          = "strong_draw"
	FlopClassWeakDrawOrAir       = "weak_draw_or_air"
)

// FlopHandClass buckets a two-card hand on a flop into one of the six
// teaching classes. Made hands are checked strongest first; a strong draw
// outranks middle pair or worse. Unknown input degrades to weak_draw_or_air.
func FlopHandClass(hole, board []string) string {
	hc, ok1 := ParseCards(hole)
	bc, ok2 := ParseCards(boardPrefix(board))
	if !ok1 || !ok2 || len(hc) != 2 || len(bc) != 3 {
		return FlopClassWeakDrawOrAir
	}

	boardVals := []int{bc[0].Value(), bc[1].Value(), bc[2].Value()}
	sort.Sort(sort.Reverse(sort.IntSlice(boardVals)))
	top, second, third := boardVals[0], boardVals[1], boardVals[2]

	h1, h2 := hc[0].Value(), hc[1].Value()
	pocketPair := h1 == h2
	hits := 0
	for _, hv := range []int{h1, h2} {
		if hv == top || hv == second || hv == third {
			hits++
		}
	}
	boardPaired := top == second || second == third

	// Two pair or better: set, trips, two pair, straight, flush.
	switch {
	case pocketPair && (h1 == top || h1 == second || h1 == third):
		return FlopClassValueTwoPairPlus // set
	case !pocketPair && hits == 2:
		return FlopClassValueTwoPairPlus // two pair (or trips on a paired board)
	case boardPaired && hits == 1 && hitsPairedRank(h1, h2, boardVals):
		return FlopClassValueTwoPairPlus // trips with a board pair
	case madeFlush(hc, bc):
		return FlopClassValueTwoPairPlus
	case madeStraight(h1, h2, boardVals):
		return FlopClassValueTwoPairPlus
	}

	// One-pair strength.
	if pocketPair && h1 > top {
		return FlopClassOverpairOrTPSK
	}
	if !pocketPair && (h1 == top || h2 == top) {
		kicker := h1
		if h1 == top {
			kicker = h2
		}
		if kicker >= int(Jack) {
			return FlopClassOverpairOrTPSK
		}
		return FlopClassTopPairWeakOrSecond
	}
	if !pocketPair && (h1 == second || h2 == second) {
		return FlopClassTopPairWeakOrSecond
	}
	if pocketPair && h1 > second {
		// Between the top and second board cards.
		return FlopClassTopPairWeakOrSecond
	}

	if strongDraw(hc, bc) {
		return FlopClassStrongDraw
	}

	if pocketPair || hits > 0 {
		return FlopClassMiddleOrThirdMinus
	}
	return FlopClassWeakDrawOrAir
}

func boardPrefix(board []string) []string {
	if len(board) > 3 {
		return board[:3]
	}
	return board
}

func hitsPairedRank(h1, h2 int, boardVals []int) bool {
	pairRank := 0
	if boardVals[0] == boardVals[1] {
		pairRank = boardVals[0]
	} else if boardVals[1] == boardVals[2] {
		pairRank = boardVals[1]
	}
	return pairRank != 0 && (h1 == pairRank || h2 == pairRank)
}

func madeFlush(hole, board []Card) bool {
	if hole[0].Suit != hole[1].Suit {
		return false
	}
	n := 2
	for _, b := range board {
		if b.Suit == hole[0].Suit {
			n++
		}
	}
	return n >= 5
}

func madeStraight(h1, h2 int, boardVals []int) bool {
	present := map[int]bool{h1: true, h2: true}
	for _, v := range boardVals {
		present[v] = true
	}
	if present[14] {
		present[1] = true // wheel
	}
	for lo := 1; lo <= 10; lo++ {
		run := true
		usesHole := false
		for v := lo; v < lo+5; v++ {
			if !present[v] {
				run = false
				break
			}
			if v == h1 || v == h2 || (v == 1 && (h1 == 14 || h2 == 14)) {
				usesHole = true
			}
		}
		if run && usesHole {
			return true
		}
	}
	return false
}

// strongDraw reports a flush draw (four to a flush using at least one hole
// card) or an open-ended straight draw.
func strongDraw(hole, board []Card) bool {
	suitCounts := map[Suit]int{}
	for _, c := range hole {
		suitCounts[c.Suit]++
	}
	for _, c := range board {
		suitCounts[c.Suit]++
	}
	for s, n := range suitCounts {
		if n != 4 {
			continue
		}
		if hole[0].Suit == s || hole[1].Suit == s {
			return true
		}
	}

	// Open-ended: four consecutive ranks using a hole card, extendable on
	// either end.
	present := map[int]bool{}
	for _, c := range hole {
		present[c.Value()] = true
	}
	for _, c := range board {
		present[c.Value()] = true
	}
	h1, h2 := hole[0].Value(), hole[1].Value()
	for lo := 2; lo <= 11; lo++ {
		run := true
		usesHole := false
		for v := lo; v < lo+4; v++ {
			if !present[v] {
				run = false
				break
			}
			if v == h1 || v == h2 {
				usesHole = true
			}
		}
		if run && usesHole && lo > 2 && lo+4 <= 14 {
			return true
		}
	}
	return false
}
