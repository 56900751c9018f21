// Package output renders sizing reports for humans and machines.
package output

import (
	"io"

	"github.com/shopspring/decimal"

	"valve-sizing/core/types"
	"valve-sizing/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *types.Report) error
}

// New returns the formatter for a format name
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI, "":
		return &CLIFormatter{ShowDetails: true}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	default:
		return nil, errors.NotSupported("output format " + string(format))
	}
}

// round renders a float with fixed decimal places; decimal keeps the
// output stable across platforms.
func round(v float64, places int32) string {
	return decimal.NewFromFloat(v).Round(places).String()
}
