package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/nolimit/internal/holdem"
	"github.com/lox/nolimit/internal/statistics"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	lossStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

func renderHand(number int, result *holdem.HandResult) string {
	how := "takes it down"
	if result.Showdown {
		how = fmt.Sprintf("wins at showdown (%s)", result.WinningRank)
	}
	board := ""
	if len(result.Board) > 0 {
		cards := make([]string, len(result.Board))
		for i, c := range result.Board {
			cards[i] = c.String()
		}
		board = subtleStyle.Render("  [" + strings.Join(cards, " ") + "]")
	}
	return fmt.Sprintf("%s %s %s %s%s",
		subtleStyle.Render(fmt.Sprintf("#%-4d", number)),
		titleStyle.Render(result.WinnerName),
		how,
		winStyle.Render(fmt.Sprintf("+%d", result.Pot)),
		board)
}

func renderChipCounts(players []holdem.Player) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("final chips"))
	b.WriteString("\n")
	for _, p := range players {
		style := winStyle
		if p.Chips == 0 {
			style = lossStyle
		}
		fmt.Fprintf(&b, "  %-12s %s\n", p.Name, style.Render(fmt.Sprintf("%d", p.Chips)))
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderStats(stats *statistics.Statistics) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("simulation results"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "hands %d   showdowns %.1f%%   biggest pot %.1fbb   mean pot %.1fbb\n",
		stats.Hands, stats.ShowdownRate()*100, stats.BiggestPotBB, stats.MeanPotBB())
	b.WriteString("\n")

	fmt.Fprintf(&b, "%-12s %10s %12s %10s %8s %10s\n",
		"player", "net chips", "bb/hand", "stderr", "wins", "showdowns")
	for _, name := range stats.Leaderboard() {
		p := stats.Players[name]
		netStyle := winStyle
		if p.NetChips < 0 {
			netStyle = lossStyle
		}
		fmt.Fprintf(&b, "%-12s %s %12.3f %10.3f %8d %10d\n",
			name,
			netStyle.Render(fmt.Sprintf("%10d", p.NetChips)),
			p.Mean(), p.StdError(), p.Wins, p.ShowdownWins)
	}

	if len(stats.RankCounts) > 0 {
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render("winning hands at showdown"))
		b.WriteString("\n")
		for _, rank := range rankOrder {
			if n, ok := stats.RankCounts[rank]; ok {
				fmt.Fprintf(&b, "  %-16s %d\n", rank, n)
			}
		}
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// rankOrder lists hand categories strongest first for stable output.
var rankOrder = []string{
	"royal flush",
	"straight flush",
	"four of a kind",
	"full house",
	"flush",
	"straight",
	"three of a kind",
	"two pair",
	"one pair",
	"high card",
}
