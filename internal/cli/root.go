package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const rootLong = `beacon parses and validates BEACON link dumps.

A BEACON file is a plain-text list of links between identifiers. Meta
field lines ("#PREFIX: ...", "#TARGET: ...") at the top define how each
link line expands into full source, target and relation URIs.

Input can be a local file or an http(s) URL.

Exit Codes:
  0  - File is valid
  1  - File has errors (validation or parse failure)
  2  - File not found, download failed, or CLI usage error
  3  - Panic or unexpected system error`

// newRootCmd builds the command tree. Each call returns fresh commands so
// flag state never leaks between invocations.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "beacon",
		Short:        "Parse and validate BEACON link dumps",
		Long:         rootLong,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// The exit code still reports the failure.
			if getQuietFlag(cmd) && !getVerboseFlag(cmd) {
				cmd.Root().SilenceErrors = true
			}
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress and diagnostic messages on stderr")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.PersistentFlags().String("config", "", "Path to beacon.yaml (default: ./beacon.yaml if present)")

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command. Interrupts cancel in-flight downloads.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func getQuietFlag(cmd *cobra.Command) bool {
	quiet, _ := cmd.Flags().GetBool("quiet")
	return quiet
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
