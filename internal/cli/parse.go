package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/beacon/internal/checksum"
	"github.com/vvka-141/beacon/internal/report"
	"github.com/vvka-141/beacon/pkg/beacon"
)

func newParseCmd() *cobra.Command {
	var (
		flags outputFlags
		limit int
	)

	cmd := &cobra.Command{
		Use:   "parse <file-or-url>",
		Short: "Parse a BEACON file and print its links",
		Long: `Parse a BEACON file and print its meta fields and constructed links.

Each link is listed with a stable identifier derived from its source,
target and relation URIs. Parsing stops at the first fatal error.

Examples:
  # Show the first 20 links
  beacon parse beacon.txt --limit 20

  # Export every link as JSON
  beacon parse https://example.org/beacon.txt --format json`,
		Args: RequireSource,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], &flags, limit)
		},
	}
	flags.register(cmd, "Output format: text, json or yaml")
	cmd.Flags().IntVar(&limit, "limit", 0, "List at most this many links (0 = all)")
	return cmd
}

func runParse(cmd *cobra.Command, input string, flags *outputFlags, limit int) error {
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

	doc, err := beacon.Parse(content, beacon.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	out := cmd.OutOrStdout()
	writer, err := report.NewWriter(out, settings.Format, report.ColorEnabled(settings.Color, out))
	if err != nil {
		return err
	}
	view := report.FromDocument(input, doc, limit)
	calc := checksum.New()
	view.Checksum = &report.Checksum{
		Raw:        calc.CalculateRaw(content),
		Normalized: calc.CalculateNormalized(content),
	}
	if err := writer.WriteDocument(view); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
