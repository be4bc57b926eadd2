// Package report renders validation results and parsed documents for the
// command line.
//
// Formats:
//   - text: the detailed report, optionally styled with lipgloss
//   - json: encoded with goccy/go-json
//   - yaml: encoded with gopkg.in/yaml.v3
//
// Styling is decided by ColorEnabled, which honours NO_COLOR, CI and
// TERM=dumb and falls back to terminal detection on the output writer.
package report
