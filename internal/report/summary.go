package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"nhl-watchability-service/internal/domain"
)

// Summary prints a leaderboard ordered by numeric offset, UTC-12 first.
type Summary struct {
	out   io.Writer
	label func(a ...interface{}) string
	team  func(a ...interface{}) string
}

// NewSummary constructs a printer. Coloring is cosmetic; tests pass
// colored=false for byte-stable output.
func NewSummary(out io.Writer, colored bool) *Summary {
	label := fmt.Sprint
	team := fmt.Sprint
	if colored {
		label = color.New(color.FgCyan, color.Bold).SprintFunc()
		team = color.New(color.FgGreen).SprintFunc()
	}
	return &Summary{out: out, label: label, team: team}
}

// Print renders the per-timezone summary. Teams within a timezone are listed
// by viewable count descending, code ascending on ties, so output is stable.
func (s *Summary) Print(board domain.Leaderboard) {
	fmt.Fprintln(s.out, "NHL viewing schedule summary")

	for _, lbl := range board.SortedLabels() {
		fmt.Fprintf(s.out, "\n%s:\n", s.label(lbl))
		for _, entry := range sortedCounts(board[lbl]) {
			fmt.Fprintf(s.out, "  %s: %d viewable games\n", s.team(entry.code), entry.count)
		}
	}
}

type countEntry struct {
	code  string
	count int
}

func sortedCounts(counts domain.TeamCounts) []countEntry {
	entries := make([]countEntry, 0, len(counts))
	for code, count := range counts {
		entries = append(entries, countEntry{code: code, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].code < entries[j].code
	})
	return entries
}
