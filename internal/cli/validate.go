package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/beacon/internal/report"
	"github.com/vvka-141/beacon/pkg/beacon"
)

func newValidateCmd() *cobra.Command {
	var flags outputFlags

	cmd := &cobra.Command{
		Use:   "validate <file-or-url>",
		Short: "Validate a BEACON file",
		Long: `Validate a BEACON file from disk or from an http(s) URL.

Checks performed, in order:
  1. File structure (FORMAT line, meta field casing, trailing line break)
  2. Meta field values (URIs, TIMESTAMP, UPDATE, CONTACT)
  3. Constructed links (URI validity, duplicates)
  4. Best practices

Examples:
  # Validate a local file
  beacon validate beacon.txt

  # Validate a remote dump with a longer timeout
  beacon validate https://example.org/beacon.txt --timeout 2m

  # Machine-readable output
  beacon validate beacon.txt --format json`,
		Args: RequireSource,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], &flags)
		},
	}
	flags.register(cmd, "Output format: text, json or yaml")
	return cmd
}

func runValidate(cmd *cobra.Command, input string, flags *outputFlags) error {
	settings, err := resolveSettings(cmd, flags)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	logSettings(logger, settings)

	content, err := newLoader(settings, logger).Load(cmd.Context(), input)
	if err != nil {
		return err
	}

	result := beacon.NewValidator(beacon.WithLogger(logger)).Validate(content)

	out := cmd.OutOrStdout()
	writer, err := report.NewWriter(out, settings.Format, report.ColorEnabled(settings.Color, out))
	if err != nil {
		return err
	}
	if err := writer.WriteReport(report.FromResult(input, result)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !result.IsValid() {
		return fmt.Errorf("%w: %d error(s) in %s", beacon.ErrValidationFailed, len(result.Errors()), input)
	}
	return nil
}
