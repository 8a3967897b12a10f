package poker

// Starting-hand categories used by preflop analysis.
const (
	CategoryPremiumPair     = "premium_pair"
	CategoryStrong          = "strong"
	CategorySpeculative     = "speculative"
	CategoryBroadwayOffsuit = "broadway_offsuit"
	CategoryWeakOffsuit     = "weak_offsuit"
	CategoryWeak            = "weak"
)

// HandInfo summarises a two-card starting hand.
type HandInfo struct {
	Pair     bool
	Suited   bool
	Gap      int
	High     int
	Low      int
	Category string
	Tags     []string
	Class    string
}

// Note is a teaching annotation attached to a starting hand.
type Note struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Msg      string `json:"msg"`
}

// ClassifyStartingHand classifies two hole cards into a coarse category and
// derives the tag set the v0 policies match against (pair, suited_broadway,
// Ax_suited, broadway_offsuit).
func ClassifyStartingHand(hole []string) (HandInfo, bool) {
	if len(hole) != 2 {
		return HandInfo{}, false
	}
	c1, ok1 := ParseCard(hole[0])
	c2, ok2 := ParseCard(hole[1])
	if !ok1 || !ok2 {
		return HandInfo{}, false
	}

	v1, v2 := c1.Value(), c2.Value()
	high, low := v1, v2
	if low > high {
		high, low = low, high
	}
	info := HandInfo{
		Pair:   c1.Rank == c2.Rank,
		Suited: c1.Suit == c2.Suit,
		Gap:    high - low - 1,
		High:   high,
		Low:    low,
	}

	switch {
	case info.Pair && high >= int(Jack):
		info.Category = CategoryPremiumPair
	case (info.Suited && high >= int(King) && low >= int(Ten)) || (info.Pair && high >= int(Ten)):
		info.Category = CategoryStrong
	case info.Suited && info.Gap <= 1 && high >= int(Ten):
		info.Category = CategorySpeculative
	case high >= int(King) && low >= int(Ten):
		info.Category = CategoryBroadwayOffsuit
	case high < int(Ten) && !info.Suited && info.Gap >= 3:
		info.Category = CategoryWeakOffsuit
	default:
		info.Category = CategoryWeak
	}

	if info.Pair {
		info.Tags = append(info.Tags, "pair")
	}
	if info.Suited && high == int(Ace) {
		info.Tags = append(info.Tags, "Ax_suited")
	}
	if info.Suited && high >= int(Ten) && low >= int(Ten) {
		info.Tags = append(info.Tags, "suited_broadway")
	}
	if !info.Suited && high >= int(Ten) && low >= int(Ten) && !info.Pair {
		info.Tags = append(info.Tags, "broadway_offsuit")
	}

	switch {
	case info.Pair:
		info.Class = "pair"
	case info.Suited && high == int(Ace):
		info.Class = "Ax_suited"
	case info.Suited && high >= int(Ten) && low >= int(Ten):
		info.Class = "suited_broadway"
	case !info.Suited && high >= int(Ten) && low >= int(Ten):
		info.Class = "broadway_offsuit"
	default:
		info.Class = info.Category
	}
	return info, true
}

// AnnotateHand classifies a starting hand and attaches teaching notes.
func AnnotateHand(hole []string) (HandInfo, []Note, bool) {
	info, ok := ClassifyStartingHand(hole)
	if !ok {
		return HandInfo{}, nil, false
	}
	var notes []Note
	if info.Category == CategoryWeak {
		notes = append(notes, Note{Code: "E001", Severity: "warn",
			Msg: "Weak offsuit/unconnected. Consider folding preflop from early position."})
	}
	if info.Category == CategoryWeakOffsuit {
		notes = append(notes, Note{Code: "E002", Severity: "warn",
			Msg: "Very weak offsuit/unconnected. Consider folding preflop from early position."})
	}
	if info.Suited && info.Gap <= 1 && info.Low >= 9 {
		notes = append(notes, Note{Code: "N101", Severity: "info",
			Msg: "Suited & relatively connected. Potential for draws."})
	}
	if info.Pair && info.High >= int(Jack) {
		notes = append(notes, Note{Code: "N102", Severity: "info",
			Msg: "Premium pair: raise or 3-bet in many spots."})
	}
	return info, notes, true
}
