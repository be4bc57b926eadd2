package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireSource validates that exactly one <file-or-url> argument is provided.
func RequireSource(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <file-or-url>

Usage: %s

Examples:
  %s beacon.txt
  %s https://example.org/beacon.txt`, cmd.UseLine(), cmd.CommandPath(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
