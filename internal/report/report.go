package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/beacon/pkg/beacon"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Report is the serialisable form of a validation result.
type Report struct {
	Valid    bool     `json:"valid" yaml:"valid"`
	Errors   []string `json:"errors" yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`
	Info     []string `json:"info" yaml:"info"`
	Source   string   `json:"source,omitempty" yaml:"source,omitempty"`
}

// FromResult captures a result for rendering.
func FromResult(source string, r beacon.Result) Report {
	return Report{
		Valid:    r.IsValid(),
		Errors:   r.Errors(),
		Warnings: r.Warnings(),
		Info:     r.Info(),
		Source:   source,
	}
}

// summary is the verdict line followed by the counts line.
func summary(r Report, p palette) string {
	var verdict string
	switch {
	case r.Valid && p.styled:
		verdict = p.success(SymbolCheck + " BEACON file is valid")
	case r.Valid:
		verdict = "BEACON file is valid"
	case p.styled:
		verdict = p.failure(SymbolCross + " BEACON file has errors")
	default:
		verdict = "BEACON file has errors"
	}
	counts := fmt.Sprintf("Errors: %d, Warnings: %d, Info: %d", len(r.Errors), len(r.Warnings), len(r.Info))
	return verdict + "\n" + p.muted(counts)
}

// detailed adds one section per non-empty diagnostic list to the summary.
func detailed(r Report, p palette) string {
	var b strings.Builder
	b.WriteString(summary(r, p))
	b.WriteString("\n")

	section := func(title string, items []string, style func(...string) string) {
		if len(items) == 0 {
			return
		}
		b.WriteString("\n")
		b.WriteString(p.heading(title))
		b.WriteString("\n")
		for _, item := range items {
			b.WriteString("  - ")
			b.WriteString(style(item))
			b.WriteString("\n")
		}
	}
	section("ERRORS:", r.Errors, p.err)
	section("WARNINGS:", r.Warnings, p.warning)
	section("INFO:", r.Info, plain)

	return b.String()
}

// Writer renders reports in a fixed format.
type Writer struct {
	out    io.Writer
	format string
	styled bool
}

// NewWriter creates a writer. styled only affects the text format.
func NewWriter(out io.Writer, format string, styled bool) (*Writer, error) {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("%w: unknown output format %q", beacon.ErrInvalidConfig, format)
	}
	return &Writer{out: out, format: format, styled: styled}, nil
}

// WriteReport renders a validation report. The text form starts with a
// banner naming the source.
func (w *Writer) WriteReport(r Report) error {
	if w.format != FormatText {
		return w.encode(r)
	}

	p := newPalette(w.out, w.styled)
	var b strings.Builder
	if r.Source != "" {
		b.WriteString(p.heading("Validating BEACON file: " + r.Source))
		b.WriteString("\n")
		b.WriteString(strings.Repeat("=", 50))
		b.WriteString("\n\n")
	}
	b.WriteString(detailed(r, p))
	_, err := io.WriteString(w.out, b.String())
	return err
}

func (w *Writer) encode(v interface{}) error {
	switch w.format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		data = append(data, '\n')
		_, err = w.out.Write(data)
		return err
	default:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err := w.out.Write(buf.Bytes())
		return err
	}
}
