// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hyuklee/blogforge/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFingerprint outputs a human-readable summary of a style fingerprint.
func (p *Printer) PrintFingerprint(fingerprint *types.StyleFingerprint) {
	if fingerprint == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Endings:     %s\n", joinCapped(fingerprint.Endings)))
	sb.WriteString(fmt.Sprintf("Expressions: %s\n", joinCapped(fingerprint.Expressions)))
	sb.WriteString(fmt.Sprintf("Emotions:    %s\n", joinCapped(fingerprint.Emotions)))

	for _, kind := range types.MarkerKinds() {
		if !fingerprint.HasMarker(kind) {
			continue
		}
		position, _ := fingerprint.FirstMarkerPosition(kind)
		sb.WriteString(fmt.Sprintf("Marker %s at %.0f%%\n", kind.Token(), position*100))
	}
	for _, pattern := range fingerprint.SentencePatterns {
		sb.WriteString(pattern + "\n")
	}

	p.printBox("STYLE FINGERPRINT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs the quality metrics of a generated post.
func (p *Printer) PrintValidation(report *types.ValidationReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Chars:    %d (deviation %d, %s)\n",
		report.CharCount, report.CharDeviation, okMark(report.LengthOK)))
	sb.WriteString(fmt.Sprintf("Keywords: %d total (%s)\n", report.KeywordTotal, okMark(report.KeywordOK)))

	keywords := make([]string, 0, len(report.KeywordCounts))
	for keyword := range report.KeywordCounts {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)
	for _, keyword := range keywords {
		sb.WriteString(fmt.Sprintf("  • %s: %d\n", keyword, report.KeywordCounts[keyword]))
	}

	if report.HasRepetition {
		sb.WriteString(fmt.Sprintf("Repeated sentences: %d\n", len(report.RepeatedSentences)))
	}

	p.printBox("VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRunSummary outputs the aggregate result of a batch run, one line per
// business.
func (p *Printer) PrintRunSummary(summary *types.RunSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:     %s\n", summary.RunID))
	sb.WriteString(fmt.Sprintf("Total:   %d (success %d, failed %d)\n",
		summary.Total, summary.Success, summary.Failed))

	businesses := make([]string, 0, len(summary.ByBusiness))
	for name := range summary.ByBusiness {
		businesses = append(businesses, name)
	}
	sort.Strings(businesses)
	for _, name := range businesses {
		perBusiness := summary.ByBusiness[name]
		sb.WriteString(fmt.Sprintf("  • %s: %d/%d\n", name, perBusiness.Success, perBusiness.Total))
	}

	p.printBox("BATCH RUN SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// joinCapped joins up to maxItemsToShow values, noting how many were cut.
func joinCapped(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	if len(values) <= maxItemsToShow {
		return strings.Join(values, ", ")
	}
	return fmt.Sprintf("%s ... and %d more",
		strings.Join(values[:maxItemsToShow], ", "), len(values)-maxItemsToShow)
}

func okMark(ok bool) string {
	if ok {
		return "ok"
	}
	return "out of range"
}
