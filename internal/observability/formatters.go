// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jonathan/edu-recommender/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer

	heading func(a ...interface{}) string
	accent  func(a ...interface{}) string
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:     out,
		heading: color.New(color.FgCyan, color.Bold).SprintFunc(),
		accent:  color.New(color.FgGreen, color.Bold).SprintFunc(),
	}
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

// PrintProfile outputs a human-readable summary of the learner profile.
func (p *Printer) PrintProfile(profile *types.UserProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("User:        %s (%s)\n", profile.Name, profile.UserID))
	sb.WriteString(fmt.Sprintf("Goal:        %s\n", profile.Goal))
	sb.WriteString(fmt.Sprintf("Style:       %s\n", profile.LearningStyle))
	sb.WriteString(fmt.Sprintf("Difficulty:  %s\n", profile.PreferredDifficulty))
	sb.WriteString(fmt.Sprintf("Time/day:    %d min\n", profile.TimePerDay))
	sb.WriteString(fmt.Sprintf("Interests:   %s", strings.Join(profile.InterestTags, ", ")))

	p.printBox("LEARNER PROFILE", sb.String())
}

// PrintRecommendations outputs the final ranked recommendations.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		fmt.Fprintln(p.out, "No recommendations produced.")
		return
	}

	fmt.Fprintf(p.out, "\n%s\n\n", p.heading("RECOMMENDATIONS"))
	for _, rec := range recs {
		fmt.Fprintf(p.out, "%s %s\n", p.accent(fmt.Sprintf("#%d", rec.Rank)), rec.Title)
		fmt.Fprintf(p.out, "    %s · %s · %d min\n", rec.Format, rec.Difficulty, rec.DurationMinutes)
		if rec.MatchScore != nil {
			fmt.Fprintf(p.out, "    Score: %.3f\n", *rec.MatchScore)
		}
		fmt.Fprintf(p.out, "    %s\n\n", rec.Explanation)
	}
}

// PrintPipelineLog outputs the step log with timings.
func (p *Printer) PrintPipelineLog(log []types.PipelineStep) {
	if len(log) == 0 {
		return
	}

	var sb strings.Builder
	for i, step := range log {
		sb.WriteString(fmt.Sprintf("%d. %s [%s]\n", i+1, step.Step, step.Status))
		sb.WriteString(fmt.Sprintf("   %s", step.Detail))
		if i < len(log)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PIPELINE", sb.String())
}
