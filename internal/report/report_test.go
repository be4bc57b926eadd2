package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/beacon/pkg/beacon"
)

func sampleResult() beacon.Result {
	return beacon.NewResult(
		[]string{"Invalid UPDATE value: sometimes"},
		[]string{"Unknown meta field: FOO", "File should end with a line break"},
		[]string{"Total links: 2"},
	)
}

// plainText renders r as unstyled text without a source banner.
func plainText(t *testing.T, r Report) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatText, false)
	require.NoError(t, err)
	require.NoError(t, w.WriteReport(r))
	return buf.String()
}

func TestWriteReport_Summary(t *testing.T) {
	assert.Equal(t, "BEACON file is valid\nErrors: 0, Warnings: 0, Info: 0\n",
		plainText(t, FromResult("", beacon.NewResult(nil, nil, nil))))
	assert.True(t, strings.HasPrefix(plainText(t, FromResult("", sampleResult())),
		"BEACON file has errors\nErrors: 1, Warnings: 2, Info: 1\n"))
}

func TestWriteReport_Detailed(t *testing.T) {
	want := `BEACON file has errors
Errors: 1, Warnings: 2, Info: 1

ERRORS:
  - Invalid UPDATE value: sometimes

WARNINGS:
  - Unknown meta field: FOO
  - File should end with a line break

INFO:
  - Total links: 2
`
	assert.Equal(t, want, plainText(t, FromResult("", sampleResult())))
}

func TestWriteReport_OmitsEmptySections(t *testing.T) {
	out := plainText(t, FromResult("", beacon.NewResult(nil, nil, []string{"Total links: 1"})))
	assert.NotContains(t, out, "ERRORS:")
	assert.NotContains(t, out, "WARNINGS:")
	assert.Contains(t, out, "INFO:\n  - Total links: 1\n")
}

func TestWriter_Text(t *testing.T) {
	out := plainText(t, FromResult("beacon.txt", sampleResult()))
	assert.True(t, strings.HasPrefix(out, "Validating BEACON file: beacon.txt\n"+strings.Repeat("=", 50)+"\n\n"))
	assert.True(t, strings.HasSuffix(out, plainText(t, FromResult("", sampleResult()))))
	assert.NotContains(t, out, "\x1b[")
}

func TestWriter_Styled(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatText, true)
	require.NoError(t, err)

	require.NoError(t, w.WriteReport(FromResult("", beacon.NewResult(nil, nil, nil))))
	assert.Contains(t, buf.String(), SymbolCheck+" BEACON file is valid")
	assert.Contains(t, buf.String(), "\x1b[")

	buf.Reset()
	require.NoError(t, w.WriteReport(FromResult("", sampleResult())))
	assert.Contains(t, buf.String(), SymbolCross+" BEACON file has errors")
}

func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatJSON, true)
	require.NoError(t, err)
	require.NoError(t, w.WriteReport(FromResult("https://example.org/beacon.txt", sampleResult())))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.False(t, got.Valid)
	assert.Equal(t, "https://example.org/beacon.txt", got.Source)
	assert.Equal(t, []string{"Invalid UPDATE value: sometimes"}, got.Errors)
	assert.Len(t, got.Warnings, 2)
	assert.NotContains(t, buf.String(), "\x1b[", "styling never applies to JSON")
}

func TestWriter_JSONEmptyListsAreArrays(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatJSON, false)
	require.NoError(t, err)
	require.NoError(t, w.WriteReport(FromResult("", beacon.NewResult(nil, nil, nil))))

	assert.Contains(t, buf.String(), `"errors": []`)
	assert.Contains(t, buf.String(), `"valid": true`)
}

func TestWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatYAML, false)
	require.NoError(t, err)
	require.NoError(t, w.WriteReport(FromResult("beacon.txt", sampleResult())))

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.False(t, got.Valid)
	assert.Equal(t, []string{"Total links: 2"}, got.Info)
	assert.True(t, strings.HasPrefix(buf.String(), "valid: false\n"))
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, "xml", false)
	assert.ErrorIs(t, err, beacon.ErrInvalidConfig)
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ColorEnabled(ColorAlways, &buf))
	assert.False(t, ColorEnabled(ColorNever, &buf))

	t.Setenv("NO_COLOR", "")
	t.Setenv("CI", "")
	assert.False(t, ColorEnabled(ColorAuto, &buf), "a buffer is not a terminal")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(ColorAuto, &buf))
}
