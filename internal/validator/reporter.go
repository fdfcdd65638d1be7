package validator

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/richhaase/context-monkey/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText prints one "<file>: <message>" line per issue.
	FormatText Format = "text"
	// FormatJSON prints the Result as indented JSON.
	FormatJSON Format = "json"
)

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

func (r *Reporter) reportJSON(result *Result) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(result), "encoding JSON report")
}

func (r *Reporter) reportText(result *Result) error {
	if result.OK {
		_, err := fmt.Fprintln(r.out, color.GreenString("✓ Resource validation passed"))
		return err
	}

	file := color.New(color.FgRed).SprintFunc()
	for _, issue := range result.Issues {
		if _, err := fmt.Fprintf(r.out, "%s: %s\n", file(issue.File), issue.Message); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.out, "\n%s\n", color.RedString("%d issue(s) found", len(result.Issues)))
	return err
}
