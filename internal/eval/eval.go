// Package eval ranks poker hands for showdown and scores hand strength for
// agent decision making. Ranking picks the best five cards out of up to
// seven; comparison is by category first, then by the ordered tiebreak
// ranks.
package eval

import (
	"sort"

	"github.com/lox/nolimit/internal/deck"
)

// Category enumerates hand categories from weakest to strongest.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

func (c Category) String() string {
	return [...]string{
		"high card", "one pair", "two pair", "three of a kind", "straight",
		"flush", "full house", "four of a kind", "straight flush", "royal flush",
	}[c]
}

// RankedHand is a comparable hand value: the category plus the five rank
// values that break ties within it, most significant first.
type RankedHand struct {
	Category Category
	Tiebreak [5]int
}

// Compare returns -1, 0 or 1 as h is weaker than, equal to or stronger
// than other.
func (h RankedHand) Compare(other RankedHand) int {
	if h.Category != other.Category {
		if h.Category < other.Category {
			return -1
		}
		return 1
	}
	for i := 0; i < 5; i++ {
		if h.Tiebreak[i] != other.Tiebreak[i] {
			if h.Tiebreak[i] < other.Tiebreak[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Rank evaluates the best five-card hand available in cards. It accepts
// five to seven cards.
func Rank(cards []deck.Card) RankedHand {
	if len(cards) <= 5 {
		return rank5(cards)
	}

	best := RankedHand{Category: HighCard}
	first := true
	picked := make([]deck.Card, 5)
	n := len(cards)
	for i := 0; i < n-4; i++ {
		for j := i + 1; j < n-3; j++ {
			for k := j + 1; k < n-2; k++ {
				for l := k + 1; l < n-1; l++ {
					for m := l + 1; m < n; m++ {
						picked[0], picked[1], picked[2], picked[3], picked[4] =
							cards[i], cards[j], cards[k], cards[l], cards[m]
						hand := rank5(picked)
						if first || hand.Compare(best) > 0 {
							best = hand
							first = false
						}
					}
				}
			}
		}
	}
	return best
}

// rank5 evaluates exactly five cards (fewer cards degrade to high-card
// ranking over what is present).
func rank5(cards []deck.Card) RankedHand {
	ranks := make([]int, 0, 5)
	counts := make(map[int]int, 5)
	suits := make(map[deck.Suit]int, 4)
	for _, c := range cards {
		ranks = append(ranks, int(c.Rank))
		counts[int(c.Rank)]++
		suits[c.Suit]++
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	flush := len(cards) == 5 && len(suits) == 1
	straightHigh, straight := straightHighCard(counts)

	switch {
	case flush && straight && straightHigh == int(deck.Ace):
		return RankedHand{Category: RoyalFlush, Tiebreak: straightTiebreak(straightHigh)}
	case flush && straight:
		return RankedHand{Category: StraightFlush, Tiebreak: straightTiebreak(straightHigh)}
	}

	// Group ranks by multiplicity: higher counts first, then higher ranks.
	type group struct{ rank, count int }
	groups := make([]group, 0, len(counts))
	for r, c := range counts {
		groups = append(groups, group{r, c})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	var tb [5]int
	pos := 0
	for _, g := range groups {
		for i := 0; i < g.count && pos < 5; i++ {
			tb[pos] = g.rank
			pos++
		}
	}

	switch {
	case groups[0].count == 4:
		return RankedHand{Category: FourOfAKind, Tiebreak: tb}
	case groups[0].count == 3 && len(groups) > 1 && groups[1].count >= 2:
		return RankedHand{Category: FullHouse, Tiebreak: tb}
	case flush:
		copy(tb[:], ranks)
		return RankedHand{Category: Flush, Tiebreak: tb}
	case straight:
		return RankedHand{Category: Straight, Tiebreak: straightTiebreak(straightHigh)}
	case groups[0].count == 3:
		return RankedHand{Category: ThreeOfAKind, Tiebreak: tb}
	case groups[0].count == 2 && len(groups) > 1 && groups[1].count == 2:
		return RankedHand{Category: TwoPair, Tiebreak: tb}
	case groups[0].count == 2:
		return RankedHand{Category: OnePair, Tiebreak: tb}
	default:
		copy(tb[:], ranks)
		return RankedHand{Category: HighCard, Tiebreak: tb}
	}
}

// straightHighCard returns the high card of a five-card straight over the
// distinct ranks in counts, handling the wheel (A-2-3-4-5) where the ace
// plays low.
func straightHighCard(counts map[int]int) (int, bool) {
	if len(counts) != 5 {
		return 0, false
	}
	lo, hi := int(deck.Ace), int(deck.Two)
	for r := range counts {
		lo = min(lo, r)
		hi = max(hi, r)
	}
	if hi-lo == 4 {
		return hi, true
	}
	// Wheel: A,5,4,3,2.
	if counts[int(deck.Ace)] == 1 && counts[int(deck.Five)] == 1 &&
		counts[int(deck.Four)] == 1 && counts[int(deck.Three)] == 1 && counts[int(deck.Two)] == 1 {
		return int(deck.Five), true
	}
	return 0, false
}

func straightTiebreak(high int) [5]int {
	var tb [5]int
	for i := 0; i < 5; i++ {
		r := high - i
		if r < int(deck.Two) {
			r = int(deck.Ace) // wheel ace
		}
		tb[i] = r
	}
	return tb
}
