package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/beacon/internal/config"
	"github.com/vvka-141/beacon/internal/fetch"
	"github.com/vvka-141/beacon/internal/files/filesystem"
	"github.com/vvka-141/beacon/internal/logging"
	"github.com/vvka-141/beacon/internal/source"
	"github.com/vvka-141/beacon/pkg/beacon"
)

// outputFlags are shared by commands that render output.
type outputFlags struct {
	format  string
	noColor bool
	timeout time.Duration
	retries int
}

func (f *outputFlags) register(cmd *cobra.Command, formatHelp string) {
	cmd.Flags().StringVarP(&f.format, "format", "f", config.FormatText, formatHelp)
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable coloured output")
	cmd.Flags().DurationVar(&f.timeout, "timeout", config.DefaultTimeout, "Download timeout for URL input")
	cmd.Flags().IntVar(&f.retries, "retries", config.DefaultRetries, "Retries for transient download failures")
}

// loadProjectConfig loads .env and the project configuration.
// Returns nil config if no beacon.yaml exists and none was requested.
func loadProjectConfig(cmd *cobra.Command) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		cfg, err := config.Load(".")
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadFile(path)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: config file not found: %s", beacon.ErrInvalidConfig, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cfg, nil
}

// resolveSettings merges defaults, beacon.yaml, environment and any flags
// the user set explicitly.
func resolveSettings(cmd *cobra.Command, flags *outputFlags) (config.Settings, error) {
	cfg, err := loadProjectConfig(cmd)
	if err != nil {
		return config.Settings{}, err
	}

	s, err := config.Resolve(cfg, os.Getenv)
	if err != nil {
		return config.Settings{}, err
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		s.Format = flags.format
	}
	if changed("timeout") {
		s.Timeout = flags.timeout
	}
	if changed("retries") {
		s.Retries = flags.retries
	}
	if flags.noColor {
		s.Color = config.ColorNever
	}

	if err := s.Validate(); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}

// newLogger returns the stderr logger honouring --verbose and --quiet.
func newLogger(cmd *cobra.Command) beacon.Logger {
	if getQuietFlag(cmd) {
		return logging.NewNullLogger()
	}
	return logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}

func newLoader(s config.Settings, logger beacon.Logger) *source.Loader {
	fetcher := fetch.New(
		fetch.WithTimeout(s.Timeout),
		fetch.WithUserAgent(s.UserAgent),
		fetch.WithRetries(s.Retries),
		fetch.WithLogger(logger),
	)
	return source.NewLoader(filesystem.NewOSFileSystem(), fetcher, logger)
}

func logSettings(logger beacon.Logger, s config.Settings) {
	logger.Verbose("Settings resolved:")
	logger.Verbose("  Timeout: %s", s.Timeout)
	logger.Verbose("  User agent: %s", s.UserAgent)
	logger.Verbose("  Retries: %d", s.Retries)
	logger.Verbose("  Format: %s", s.Format)
	logger.Verbose("  Color: %s", s.Color)
}
