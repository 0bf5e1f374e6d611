// Package observability provides formatted output utilities for the data
// inspection CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/internest/internest-backend/internal/db"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// orEmpty renders an optional column for display.
func orEmpty(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// PrintPreferenceSample outputs the most recent preference records.
func (p *Printer) PrintPreferenceSample(prefs []db.Preference) {
	if len(prefs) == 0 {
		p.printBox("RECENT PREFERENCE RECORDS", "No records stored yet")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Showing %d of %d records:\n\n", min(len(prefs), maxItemsToShow), len(prefs)))

	count := min(len(prefs), maxItemsToShow)
	for i := 0; i < count; i++ {
		pref := prefs[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", pref.ID, pref.SessionID))
		sb.WriteString(fmt.Sprintf("    Education: %s\n", orEmpty(pref.EducationLevel)))
		sb.WriteString(fmt.Sprintf("    Skills:    %s\n", orEmpty(pref.Skills)))
		sb.WriteString(fmt.Sprintf("    Sector:    %s  Location: %s\n",
			orEmpty(pref.Sector), orEmpty(pref.Location)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(prefs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more records", len(prefs)-maxItemsToShow))
	}

	p.printBox("RECENT PREFERENCE RECORDS", sb.String())
}

// PrintDistribution outputs a value frequency table ordered by count
// descending, value ascending on ties.
func (p *Printer) PrintDistribution(title string, counts map[string]int) {
	if len(counts) == 0 {
		p.printBox(title, "No values recorded")
		return
	}

	type row struct {
		value string
		count int
	}
	rows := make([]row, 0, len(counts))
	total := 0
	for value, count := range counts {
		rows = append(rows, row{value, count})
		total += count
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].value < rows[j].value
	})

	var sb strings.Builder
	for _, r := range rows {
		pct := float64(r.count) / float64(total) * 100
		sb.WriteString(fmt.Sprintf("%-28s %5d  (%.1f%%)\n", r.value, r.count, pct))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStatsOverview outputs the aggregated statistics the API serves.
func (p *Printer) PrintStatsOverview(stats *db.StatsOverview) {
	if stats == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total records: %d\n", stats.Total))

	if len(stats.ByEducation) > 0 {
		sb.WriteString("\nBy education:\n")
		for _, e := range stats.ByEducation {
			sb.WriteString(fmt.Sprintf("  %-26s %5d\n", e.EducationLevel, e.Count))
		}
	}
	if len(stats.BySector) > 0 {
		sb.WriteString("\nBy sector:\n")
		for _, s := range stats.BySector {
			sb.WriteString(fmt.Sprintf("  %-26s %5d\n", s.Sector, s.Count))
		}
	}
	if len(stats.ByLocation) > 0 {
		sb.WriteString("\nTop locations:\n")
		for _, l := range stats.ByLocation {
			sb.WriteString(fmt.Sprintf("  %-26s %5d\n", l.Location, l.Count))
		}
	}
	if len(stats.Recent) > 0 {
		sb.WriteString("\nLast 30 days:\n")
		count := min(len(stats.Recent), maxItemsToShow)
		for i := 0; i < count; i++ {
			d := stats.Recent[i]
			sb.WriteString(fmt.Sprintf("  %s  %5d\n", d.Date, d.Count))
		}
		if len(stats.Recent) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more days\n", len(stats.Recent)-maxItemsToShow))
		}
	}

	p.printBox("PREFERENCE STATISTICS", strings.TrimSuffix(sb.String(), "\n"))
}
