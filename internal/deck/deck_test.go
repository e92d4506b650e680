package deck

import (
	"testing"

	"github.com/lox/nolimit/internal/randutil"
)

func TestNewDeck(t *testing.T) {
	d := New(randutil.New(42))

	if d.Remaining() != 52 {
		t.Errorf("expected 52 cards, got %d", d.Remaining())
	}

	// All 52 cards distinct.
	seen := make(map[Card]bool)
	for {
		card, ok := d.Draw()
		if !ok {
			break
		}
		if seen[card] {
			t.Errorf("duplicate card %s", card)
		}
		seen[card] = true
	}
	if len(seen) != 52 {
		t.Errorf("expected 52 distinct cards, got %d", len(seen))
	}
}

func TestDraw(t *testing.T) {
	d := New(randutil.New(42))

	card, ok := d.Draw()
	if !ok {
		t.Fatal("draw should succeed on a full deck")
	}
	if d.Remaining() != 51 {
		t.Errorf("expected 51 cards after a draw, got %d", d.Remaining())
	}
	if card.Rank < Two || card.Rank > Ace {
		t.Errorf("invalid rank drawn: %v", card.Rank)
	}

	for d.Remaining() > 0 {
		d.Draw()
	}
	if _, ok := d.Draw(); ok {
		t.Error("draw should fail on an empty deck")
	}
}

func TestResetRestocksAndShuffles(t *testing.T) {
	d := New(randutil.New(42))
	d.DrawN(20)

	d.Reset()
	if d.Remaining() != 52 {
		t.Errorf("expected 52 cards after reset, got %d", d.Remaining())
	}
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	a := New(randutil.New(7))
	b := New(randutil.New(7))
	a.Shuffle()
	b.Shuffle()

	for i := 0; i < 52; i++ {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		if ca != cb {
			t.Fatalf("decks diverged at card %d: %s vs %s", i, ca, cb)
		}
	}
}

func TestMustParse(t *testing.T) {
	cases := map[string]Card{
		"As": {Rank: Ace, Suit: Spades},
		"Td": {Rank: Ten, Suit: Diamonds},
		"2c": {Rank: Two, Suit: Clubs},
		"9h": {Rank: Nine, Suit: Hearts},
	}
	for s, want := range cases {
		if got := MustParse(s); got != want {
			t.Errorf("MustParse(%q) = %v, want %v", s, got, want)
		}
		if got := MustParse(s).String(); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	}
}
