package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gyeh/datesift/internal/dates"
)

// Config holds all runtime configuration for a datesift run.
type Config struct {
	DSN         string
	FilePath    string
	ConfigPath  string
	LogFormat   string // "text" or "json"
	LogLevel    string
	Force       bool
	KeepStaging bool
	Parser      ParserConfig
}

// ParserConfig is the parser section of a config file. It maps one-to-one
// onto dates.Options.
type ParserConfig struct {
	DayFirst        bool              `yaml:"day_first" toml:"day_first"`
	YearFirst       bool              `yaml:"year_first" toml:"year_first"`
	Fuzzy           bool              `yaml:"fuzzy" toml:"fuzzy"`
	FuzzyWithTokens bool              `yaml:"fuzzy_with_tokens" toml:"fuzzy_with_tokens"`
	ValidateDates   *bool             `yaml:"validate_dates" toml:"validate_dates"`
	IgnoreTimezone  bool              `yaml:"ignore_timezone" toml:"ignore_timezone"`
	Reference       string            `yaml:"reference" toml:"reference"`
	TimezoneAliases map[string]string `yaml:"timezone_aliases" toml:"timezone_aliases"`
}

// fileConfig is the on-disk structure shared by YAML and TOML files.
type fileConfig struct {
	Parser ParserConfig `yaml:"parser" toml:"parser"`
}

// LoadFromFile reads a YAML (.yaml, .yml) or TOML (.toml) config file and
// merges its parser section into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	default:
		return fmt.Errorf("unsupported config file extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if _, err := fc.Parser.Options(); err != nil {
		return fmt.Errorf("config parser section: %w", err)
	}
	c.Parser = fc.Parser
	c.ConfigPath = path
	return nil
}

// Options converts the parser section to dates.Options.
func (p ParserConfig) Options() (dates.Options, error) {
	opts := dates.DefaultOptions()
	opts.DayFirst = p.DayFirst
	opts.YearFirst = p.YearFirst
	opts.Fuzzy = p.Fuzzy
	opts.FuzzyWithTokens = p.FuzzyWithTokens
	opts.IgnoreTimezone = p.IgnoreTimezone
	if p.ValidateDates != nil {
		opts.ValidateDates = *p.ValidateDates
	}

	if p.Reference != "" {
		ref, err := parseReference(p.Reference)
		if err != nil {
			return dates.Options{}, err
		}
		opts.Reference = ref
	}

	if len(p.TimezoneAliases) > 0 {
		opts.TimezoneAliases = make(map[string]int, len(p.TimezoneAliases))
		for name, off := range p.TimezoneAliases {
			secs, err := ParseOffset(off)
			if err != nil {
				return dates.Options{}, fmt.Errorf("timezone alias %s: %w", name, err)
			}
			opts.TimezoneAliases[strings.ToUpper(name)] = secs
		}
	}
	return opts, nil
}

func parseReference(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("reference %q: want RFC 3339 or YYYY-MM-DD", s)
}

// ParseOffset parses a fixed UTC offset written as "+05:00", "-0800" or "+09"
// and returns it in seconds east of UTC.
func ParseOffset(s string) (int, error) {
	for _, layout := range []string{"-07:00", "-0700", "-07"} {
		if t, err := time.Parse(layout, s); err == nil {
			_, off := t.Zone()
			return off, nil
		}
	}
	return 0, fmt.Errorf("invalid offset %q: want ±HH:MM", s)
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATESIFT_DB_URL is required")
	}
	return nil
}
