// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-scout/internal/matching"
	"github.com/jonathan/job-scout/internal/types"
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

// PrintCandidateProfile outputs a human-readable summary of the parsed
// candidate profile.
func (p *Printer) PrintCandidateProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if len(profile.Roles) > 0 {
		sb.WriteString("Roles:\n")
		for _, role := range profile.Roles {
			sb.WriteString(fmt.Sprintf("  • %s\n", role))
		}
		sb.WriteString("\n")
	}

	if profile.Seniority != "" {
		sb.WriteString(fmt.Sprintf("Seniority: %s\n", profile.Seniority))
	}
	if profile.LocationPreference != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", profile.LocationPreference))
	}
	if profile.RemoteIntent != "" {
		sb.WriteString(fmt.Sprintf("Remote:    %s\n", profile.RemoteIntent))
	}

	if len(profile.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSyncSummary outputs the result counts of a sync run.
func (p *Printer) PrintSyncSummary(summary *matching.SyncSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder

	if len(summary.Roles) > 0 {
		roles := strings.Join(summary.Roles, ", ")
		if len(roles) > 45 {
			roles = roles[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Roles searched: %s\n\n", roles))
	}

	sb.WriteString(fmt.Sprintf("Fetched:            %d\n", summary.Fetched))
	sb.WriteString(fmt.Sprintf("Normalized:         %d\n", summary.Normalized))
	sb.WriteString(fmt.Sprintf("After dedup:        %d\n", summary.Deduped))
	sb.WriteString(fmt.Sprintf("Inserted:           %d\n", summary.Inserted))
	sb.WriteString(fmt.Sprintf("Skipped duplicates: %d\n", summary.SkippedDuplicate))
	sb.WriteString(fmt.Sprintf("Failed:             %d", summary.Failed))

	p.printBox("SYNC SUMMARY", sb.String())
}
