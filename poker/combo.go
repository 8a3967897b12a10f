package poker

// ComboFromHole maps two hole cards onto their 169-grid combo label:
// "AA" for pairs, "AKs" suited, "AKo" offsuit, higher rank first.
// Malformed input yields "".
func ComboFromHole(hole []string) string {
	if len(hole) != 2 {
		return ""
	}
	c1, ok1 := ParseCard(hole[0])
	c2, ok2 := ParseCard(hole[1])
	if !ok1 || !ok2 {
		return ""
	}
	hi, lo := c1, c2
	if lo.Rank > hi.Rank {
		hi, lo = lo, hi
	}
	if hi.Rank == lo.Rank {
		return hi.Rank.String() + lo.Rank.String()
	}
	suffix := "o"
	if hi.Suit == lo.Suit {
		suffix = "s"
	}
	return hi.Rank.String() + lo.Rank.String() + suffix
}
