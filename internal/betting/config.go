package betting

// Config holds the immutable blind structure for a hand. A zero
// MinRaiseIncrement defaults to the big blind.
type Config struct {
	SmallBlind        int
	BigBlind          int
	MinRaiseIncrement int
}

// NewConfig returns a Config with the minimum raise increment defaulted to
// the big blind.
func NewConfig(smallBlind, bigBlind int) Config {
	return Config{
		SmallBlind:        smallBlind,
		BigBlind:          bigBlind,
		MinRaiseIncrement: bigBlind,
	}
}

// minRaise returns the configured minimum raise increment, falling back to
// the big blind when unset.
func (c Config) minRaise() int {
	if c.MinRaiseIncrement > 0 {
		return c.MinRaiseIncrement
	}
	return c.BigBlind
}
