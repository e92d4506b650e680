package eval

import "github.com/lox/nolimit/internal/deck"

// baseStrength maps a category to a coarse 0..1 score.
var baseStrength = map[Category]float64{
	RoyalFlush:    1.0,
	StraightFlush: 0.95,
	FourOfAKind:   0.9,
	FullHouse:     0.8,
	Flush:         0.7,
	Straight:      0.6,
	ThreeOfAKind:  0.5,
	TwoPair:       0.4,
	OnePair:       0.3,
	HighCard:      0.1,
}

// Strength scores a hand in [0,1] for decision making: the made-hand
// category blended with raw hole-card quality, damped by how little of the
// board is out (fully damped to zero pre-flop). Without hole cards it
// returns a neutral 0.5.
func Strength(hole []deck.Card, community []deck.Card) float64 {
	if len(hole) < 2 {
		return 0.5
	}

	all := make([]deck.Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)

	base := 0.5
	if len(all) >= 5 {
		base = baseStrength[Rank(all).Category]
	}

	strength := base*0.7 + holeAdjustment(hole)*0.3
	strength *= min(1.0, float64(len(community))/5.0)

	return max(0.0, min(1.0, strength))
}

// holeAdjustment scores the two hole cards on their own: pairs, suitedness,
// connectedness and high cards.
func holeAdjustment(hole []deck.Card) float64 {
	a, b := hole[0], hole[1]

	adj := 0.3
	if a.Rank == b.Rank {
		adj += 0.4
	}
	if a.Suit == b.Suit {
		adj += 0.2
	}
	gap := int(a.Rank) - int(b.Rank)
	if gap == 1 || gap == -1 {
		adj += 0.2
	}
	if a.Rank >= deck.Jack || b.Rank >= deck.Jack {
		adj += 0.1
	}
	return min(1.0, adj)
}
