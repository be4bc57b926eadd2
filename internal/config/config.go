package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/beacon/internal/fetch"
	"github.com/vvka-141/beacon/internal/report"
	"github.com/vvka-141/beacon/pkg/beacon"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "beacon.yaml"

// Environment variables that override the config file.
const (
	EnvFetchTimeout = "BEACON_FETCH_TIMEOUT"
	EnvUserAgent    = "BEACON_USER_AGENT"
	EnvFetchRetries = "BEACON_FETCH_RETRIES"
	EnvOutputFormat = "BEACON_OUTPUT_FORMAT"
)

// Output formats and colour modes, as understood by the report package.
const (
	FormatText = report.FormatText
	FormatJSON = report.FormatJSON
	FormatYAML = report.FormatYAML

	ColorAuto   = report.ColorAuto
	ColorAlways = report.ColorAlways
	ColorNever  = report.ColorNever
)

const (
	DefaultTimeout   = fetch.DefaultTimeout
	DefaultUserAgent = fetch.DefaultUserAgent
	DefaultRetries   = fetch.DefaultRetries
)

type FetchConfig struct {
	Timeout   string `yaml:"timeout"`
	UserAgent string `yaml:"user_agent"`
	Retries   *int   `yaml:"retries,omitempty"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Color  string `yaml:"color"`
}

// ProjectConfig mirrors beacon.yaml. Empty fields fall back to defaults.
type ProjectConfig struct {
	Fetch  FetchConfig  `yaml:"fetch"`
	Output OutputConfig `yaml:"output"`
}

// Settings are the effective values after defaults, file and environment
// have been merged.
type Settings struct {
	Timeout   time.Duration
	UserAgent string
	Retries   int
	Format    string
	Color     string
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		Retries:   DefaultRetries,
		Format:    FormatText,
		Color:     ColorAuto,
	}
}

// Load reads beacon.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file from an explicit path.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", beacon.ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}

// Resolve merges defaults, the project config (may be nil) and the
// environment looked up through getenv. Flags are applied by the caller.
func Resolve(cfg *ProjectConfig, getenv func(string) string) (Settings, error) {
	s := Defaults()
	if getenv == nil {
		getenv = os.Getenv
	}

	if cfg != nil {
		if err := s.applyFile(cfg); err != nil {
			return Settings{}, err
		}
	}
	if err := s.applyEnv(getenv); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s *Settings) applyFile(cfg *ProjectConfig) error {
	if cfg.Fetch.Timeout != "" {
		d, err := time.ParseDuration(cfg.Fetch.Timeout)
		if err != nil {
			return fmt.Errorf("%w: fetch.timeout %q: %v", beacon.ErrInvalidConfig, cfg.Fetch.Timeout, err)
		}
		s.Timeout = d
	}
	if cfg.Fetch.UserAgent != "" {
		s.UserAgent = cfg.Fetch.UserAgent
	}
	if cfg.Fetch.Retries != nil {
		s.Retries = *cfg.Fetch.Retries
	}
	if cfg.Output.Format != "" {
		s.Format = cfg.Output.Format
	}
	if cfg.Output.Color != "" {
		s.Color = cfg.Output.Color
	}
	return nil
}

func (s *Settings) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvFetchTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", beacon.ErrInvalidConfig, EnvFetchTimeout, v, err)
		}
		s.Timeout = d
	}
	if v := getenv(EnvUserAgent); v != "" {
		s.UserAgent = v
	}
	if v := getenv(EnvFetchRetries); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", beacon.ErrInvalidConfig, EnvFetchRetries, v, err)
		}
		s.Retries = n
	}
	if v := getenv(EnvOutputFormat); v != "" {
		s.Format = v
	}
	return nil
}

// Validate checks the settings are usable.
func (s Settings) Validate() error {
	err := validation.ValidateStruct(&s,
		validation.Field(&s.Timeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&s.UserAgent, validation.Required),
		validation.Field(&s.Retries, validation.Min(0), validation.Max(10)),
		validation.Field(&s.Format, validation.Required, validation.In(FormatText, FormatJSON, FormatYAML)),
		validation.Field(&s.Color, validation.Required, validation.In(ColorAuto, ColorAlways, ColorNever)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", beacon.ErrInvalidConfig, err)
	}
	return nil
}
