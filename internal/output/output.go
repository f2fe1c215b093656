package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/triad/internal/analysis"
	"github.com/dshills/triad/internal/providers"
)

// Report is one analysis together with the context it ran in.
type Report struct {
	Language         analysis.Language       `json:"language"`
	Provider         providers.Info          `json:"provider"`
	Counts           analysis.SeverityCounts `json:"counts"`
	Result           *analysis.Result        `json:"result"`
	ProcessingTimeMs int64                   `json:"processingTimeMs"`
}

// NewReport builds a Report and computes its severity counts.
func NewReport(lang analysis.Language, provider providers.Info, result *analysis.Result, elapsedMs int64) *Report {
	return &Report{
		Language:         lang,
		Provider:         provider,
		Counts:           result.Counts(),
		Result:           result,
		ProcessingTimeMs: elapsedMs,
	}
}

// Writer writes a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *Report) error
}

// Formats lists the accepted format names.
var Formats = []string{"text", "json", "markdown"}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown", "md":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport writes the report to the specified output (file path or stdout).
func WriteReport(report *Report, format, outPath string) (err error) {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	if outPath == "" {
		return writer.Write(os.Stdout, report)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()
	// Files never get terminal colors.
	if tw, ok := writer.(*TextWriter); ok {
		tw.NoColor = true
	}
	return writer.Write(f, report)
}
