// Package statistics aggregates hand outcomes across a simulation run:
// per-player win rates and chip flow in big blinds, showdown frequency,
// street distribution and pot sizes.
package statistics

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// HandRecord is one finished hand's contribution to the tallies. Net maps
// player name to chips won or lost; a balanced hand nets to zero.
type HandRecord struct {
	BigBlind      int
	Pot           int
	Winner        string
	Showdown      bool
	WinningRank   string
	StreetReached string
	Net           map[string]int
}

// PlayerStats accumulates one player's results. SumBB and SumBB2 carry the
// running sums needed for mean and sample variance in big blinds per hand.
type PlayerStats struct {
	Hands        int
	Wins         int
	ShowdownWins int
	NetChips     int
	SumBB        float64
	SumBB2       float64
}

// Mean returns the player's mean result in big blinds per hand.
func (p *PlayerStats) Mean() float64 {
	if p.Hands == 0 {
		return 0
	}
	return p.SumBB / float64(p.Hands)
}

// Variance returns the sample variance of the player's per-hand results.
func (p *PlayerStats) Variance() float64 {
	if p.Hands < 2 {
		return 0
	}
	mean := p.Mean()
	return (p.SumBB2 - float64(p.Hands)*mean*mean) / float64(p.Hands-1)
}

// StdDev returns the sample standard deviation in big blinds per hand.
func (p *PlayerStats) StdDev() float64 {
	return math.Sqrt(p.Variance())
}

// StdError returns the standard error of the player's mean.
func (p *PlayerStats) StdError() float64 {
	if p.Hands == 0 {
		return 0
	}
	return p.StdDev() / math.Sqrt(float64(p.Hands))
}

// Statistics tallies hand records. The zero value is not usable; call New.
type Statistics struct {
	Hands        int
	Showdowns    int
	BiggestPot   int
	BiggestPotBB float64
	TotalPotBB   float64
	StreetCounts map[string]int
	RankCounts   map[string]int
	Players      map[string]*PlayerStats
}

// New returns an empty tally.
func New() *Statistics {
	return &Statistics{
		StreetCounts: make(map[string]int),
		RankCounts:   make(map[string]int),
		Players:      make(map[string]*PlayerStats),
	}
}

// Add incorporates one hand record. An unbalanced Net is an accounting bug
// upstream and is reported as an error without mutating the tally.
func (s *Statistics) Add(rec HandRecord) error {
	if rec.BigBlind <= 0 {
		return fmt.Errorf("hand record needs a positive big blind, got %d", rec.BigBlind)
	}
	balance := 0
	for _, net := range rec.Net {
		balance += net
	}
	if balance != 0 {
		return fmt.Errorf("hand nets to %+d chips, expected 0", balance)
	}

	s.Hands++
	s.StreetCounts[rec.StreetReached]++
	if rec.Showdown {
		s.Showdowns++
		if rec.WinningRank != "" {
			s.RankCounts[rec.WinningRank]++
		}
	}

	bb := float64(rec.BigBlind)
	potBB := float64(rec.Pot) / bb
	s.TotalPotBB += potBB
	if rec.Pot > s.BiggestPot {
		s.BiggestPot = rec.Pot
		s.BiggestPotBB = potBB
	}

	for name, net := range rec.Net {
		p := s.player(name)
		netBB := float64(net) / bb
		p.Hands++
		p.NetChips += net
		p.SumBB += netBB
		p.SumBB2 += netBB * netBB
		if name == rec.Winner {
			p.Wins++
			if rec.Showdown {
				p.ShowdownWins++
			}
		}
	}
	return nil
}

// Merge folds another tally into this one. Used to combine per-worker
// tallies after a parallel simulation.
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.Showdowns += other.Showdowns
	s.TotalPotBB += other.TotalPotBB
	if other.BiggestPot > s.BiggestPot {
		s.BiggestPot = other.BiggestPot
		s.BiggestPotBB = other.BiggestPotBB
	}
	for street, n := range other.StreetCounts {
		s.StreetCounts[street] += n
	}
	for rank, n := range other.RankCounts {
		s.RankCounts[rank] += n
	}
	for name, op := range other.Players {
		p := s.player(name)
		p.Hands += op.Hands
		p.Wins += op.Wins
		p.ShowdownWins += op.ShowdownWins
		p.NetChips += op.NetChips
		p.SumBB += op.SumBB
		p.SumBB2 += op.SumBB2
	}
}

// ShowdownRate returns the fraction of hands that reached showdown.
func (s *Statistics) ShowdownRate() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Showdowns) / float64(s.Hands)
}

// MeanPotBB returns the average pot size in big blinds.
func (s *Statistics) MeanPotBB() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.TotalPotBB / float64(s.Hands)
}

// Leaderboard returns the player names sorted by net chips, winners first.
// Ties break alphabetically so output is stable.
func (s *Statistics) Leaderboard() []string {
	names := make([]string, 0, len(s.Players))
	for name := range s.Players {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := s.Players[names[i]], s.Players[names[j]]
		if a.NetChips != b.NetChips {
			return a.NetChips > b.NetChips
		}
		return names[i] < names[j]
	})
	return names
}

// Validate checks internal consistency of the tally.
func (s *Statistics) Validate() error {
	if s.Hands < 0 {
		return fmt.Errorf("negative hand count %d", s.Hands)
	}
	if s.Showdowns > s.Hands {
		return fmt.Errorf("%d showdowns exceed %d hands", s.Showdowns, s.Hands)
	}
	streetTotal := 0
	for _, n := range s.StreetCounts {
		streetTotal += n
	}
	if streetTotal != s.Hands {
		return fmt.Errorf("street counts total %d, expected %d", streetTotal, s.Hands)
	}
	totalNet := 0
	for _, p := range s.Players {
		totalNet += p.NetChips
		if p.Wins > p.Hands {
			return fmt.Errorf("player wins %d exceed hands %d", p.Wins, p.Hands)
		}
	}
	if totalNet != 0 {
		return fmt.Errorf("player nets total %+d chips, expected 0", totalNet)
	}
	return nil
}

// String renders a plain-text summary.
func (s *Statistics) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "hands: %d  showdowns: %d (%.1f%%)  biggest pot: %.1fbb  mean pot: %.1fbb\n",
		s.Hands, s.Showdowns, s.ShowdownRate()*100, s.BiggestPotBB, s.MeanPotBB())
	for _, name := range s.Leaderboard() {
		p := s.Players[name]
		fmt.Fprintf(&b, "  %-12s %+6d chips  %+.3fbb/hand (±%.3f)  %d wins (%d at showdown)\n",
			name, p.NetChips, p.Mean(), p.StdError(), p.Wins, p.ShowdownWins)
	}
	return b.String()
}

func (s *Statistics) player(name string) *PlayerStats {
	p, ok := s.Players[name]
	if !ok {
		p = &PlayerStats{}
		s.Players[name] = p
	}
	return p
}
