// Package logging provides concrete implementations of the beacon.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: writes prefixed lines to a writer (the CLI passes stderr)
//   - NullLogger: discards all messages
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
