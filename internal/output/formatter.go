package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/platformetrics/maturityboard/internal/dimension"
)

// Formatter defines output formatting interface
type Formatter interface {
	Format(result *SummaryResult, w io.Writer) error
}

// Verbosity determines output detail
type Verbosity int

const (
	VerbosityQuiet Verbosity = iota // One-line summary
	VerbosityTable                  // Dimension table plus grouped views
	VerbosityJSON                   // Machine-readable JSON
)

// ParseVerbosity maps a CLI output flag to a Verbosity.
func ParseVerbosity(s string) (Verbosity, error) {
	switch s {
	case "quiet":
		return VerbosityQuiet, nil
	case "table", "":
		return VerbosityTable, nil
	case "json":
		return VerbosityJSON, nil
	}
	return VerbosityTable, fmt.Errorf("unknown output format %q (want table, json or quiet)", s)
}

// NewFormatter creates the appropriate formatter for the level
func NewFormatter(level Verbosity) Formatter {
	switch level {
	case VerbosityQuiet:
		return &QuietFormatter{}
	case VerbosityJSON:
		return &JSONFormatter{}
	default:
		return &TableFormatter{}
	}
}

// QuietFormatter prints the one-line summary.
type QuietFormatter struct{}

func (f *QuietFormatter) Format(result *SummaryResult, w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %s %s: overall %.1f (%s, %d teams)\n",
		result.Metric, result.Platform, result.Quarter, result.Overall, result.Source, result.TeamCount)
	return err
}

// JSONFormatter emits the whole result for machine consumers.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(result *SummaryResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// TableFormatter renders the dimension table people read in a terminal.
type TableFormatter struct{}

func (f *TableFormatter) Format(result *SummaryResult, w io.Writer) error {
	fmt.Fprintf(w, "%s: %s / %s / %s (method: %s, source: %s)\n",
		result.Metric, result.Quarter, result.Platform, result.Pillar, result.Method, result.Source)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DIMENSION\tWEIGHT\tSAMPLES\tAVERAGE")
	for _, d := range result.Dimensions {
		fmt.Fprintf(tw, "%s\t%.0f%%\t%d\t%.1f\n", d.Name, d.Weight, len(d.Scores), d.Average)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Overall (weighted): %.1f over %d teams\n", result.Overall, result.TeamCount)

	if len(result.ByPlatform) > 0 {
		if err := writeAggregates(w, "BY PLATFORM", result.ByPlatform); err != nil {
			return err
		}
	}
	if len(result.ByPillar) > 0 {
		if err := writeAggregates(w, "BY PILLAR", result.ByPillar); err != nil {
			return err
		}
	}
	if result.Delta != nil {
		fmt.Fprintf(w, "Quarter over quarter: maturity %+.1f, performance %+.1f, agility %+.1f, stability %+.1f\n",
			result.Delta.Maturity, result.Delta.Performance, result.Delta.Agility, result.Delta.Stability)
	}
	return nil
}

func writeAggregates(w io.Writer, title string, rows []dimension.TeamAggregate) error {
	fmt.Fprintln(w, title)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tTEAMS\tMATURITY\tPERFORMANCE\tAGILITY\tSTABILITY")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%.1f\t%.1f\t%.1f\t%.1f\n",
			r.Group, r.Teams, r.Maturity, r.Performance, r.Agility, r.Stability)
	}
	return tw.Flush()
}
