// Package poker provides card parsing, the 169-combo starting-hand grid,
// starting-hand analysis and flop texture classification for the suggest
// engine. Cards travel as two-character strings ("Ah", "Td") matching the
// hand engine's wire format.
package poker

// Rank represents a card rank, ace high.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character rank symbol.
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return string(rune('0' + int(r)))
		}
		return "?"
	}
}

// Suit represents a card suit.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the lowercase suit letter used in the wire format.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Card represents a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the wire representation, e.g. "Ah".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Value returns the numeric rank value for comparison (ace = 14).
func (c Card) Value() int {
	return int(c.Rank)
}

// ParseCard parses a two-character card string such as "Ah" or "Td".
// The boolean result reports whether the input was well-formed.
func ParseCard(s string) (Card, bool) {
	if len(s) != 2 {
		return Card{}, false
	}
	var r Rank
	switch s[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		r = Rank(s[0] - '0')
	case 'T', 't':
		r = Ten
	case 'J', 'j':
		r = Jack
	case 'Q', 'q':
		r = Queen
	case 'K', 'k':
		r = King
	case 'A', 'a':
		r = Ace
	default:
		return Card{}, false
	}
	var su Suit
	switch s[1] {
	case 's', 'S':
		su = Spades
	case 'h', 'H':
		su = Hearts
	case 'd', 'D':
		su = Diamonds
	case 'c', 'C':
		su = Clubs
	default:
		return Card{}, false
	}
	return Card{Rank: r, Suit: su}, true
}

// ParseCards parses a slice of card strings, failing on the first bad card.
func ParseCards(ss []string) ([]Card, bool) {
	cards := make([]Card, 0, len(ss))
	for _, s := range ss {
		c, ok := ParseCard(s)
		if !ok {
			return nil, false
		}
		cards = append(cards, c)
	}
	return cards, true
}
