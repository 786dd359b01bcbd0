package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/fsearch/internal/display"
	"github.com/harrison/fsearch/internal/logger"
	"github.com/harrison/fsearch/internal/models"
	"github.com/harrison/fsearch/internal/search"
	"gopkg.in/yaml.v3"
)

// FileName is the defaults file looked up in the working directory.
const FileName = ".fsearch.yaml"

// TableConfig controls the summary table layout.
type TableConfig struct {
	// Padding is the number of spaces between columns
	Padding int `yaml:"padding"`

	// ShowHeader prints the column titles and rule
	ShowHeader bool `yaml:"show_header"`
}

// Config holds the defaults for a search. CLI flags override every field.
type Config struct {
	// Mode is "simple" (summary table) or "full" (highlighted lines)
	Mode string `yaml:"mode"`

	// CaseSensitive disables case folding
	CaseSensitive bool `yaml:"case_sensitive"`

	// IncludeHidden descends into and reports dot-entries
	IncludeHidden bool `yaml:"include_hidden"`

	// MaxDepth limits directory depth (-1 = unlimited)
	MaxDepth int `yaml:"max_depth"`

	// ExcludeExtensions lists file suffixes to skip
	ExcludeExtensions []string `yaml:"exclude_extensions"`

	// Color is auto, always or never
	Color string `yaml:"color"`

	// LineNumbers prefixes full-mode lines with their line number
	LineNumbers bool `yaml:"line_numbers"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Table contains summary table settings
	Table TableConfig `yaml:"table"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Mode:              string(search.ModeSummary),
		CaseSensitive:     false,
		IncludeHidden:     false,
		MaxDepth:          models.UnlimitedDepth,
		ExcludeExtensions: []string{},
		Color:             display.ColorAuto,
		LineNumbers:       false,
		LogLevel:          logger.DefaultLevel,
		Table: TableConfig{
			Padding:    2,
			ShowHeader: true,
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// Keys absent from the file keep their default values; unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, models.NewIOError("read config", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.ExcludeExtensions == nil {
		cfg.ExcludeExtensions = []string{}
	}
	return cfg, nil
}

// LoadConfigFromDir loads .fsearch.yaml from the specified directory.
// If the file doesn't exist, returns default configuration without error.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, FileName))
}

// Overrides carries CLI flag values. A nil field means the flag was not
// given and the configured value stands.
type Overrides struct {
	Mode              *string
	CaseSensitive     *bool
	IncludeHidden     *bool
	MaxDepth          *int
	ExcludeExtensions *[]string
	Color             *string
	LineNumbers       *bool
	LogLevel          *string
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(o Overrides) {
	if o.Mode != nil {
		c.Mode = *o.Mode
	}
	if o.CaseSensitive != nil {
		c.CaseSensitive = *o.CaseSensitive
	}
	if o.IncludeHidden != nil {
		c.IncludeHidden = *o.IncludeHidden
	}
	if o.MaxDepth != nil {
		c.MaxDepth = *o.MaxDepth
	}
	if o.ExcludeExtensions != nil {
		c.ExcludeExtensions = append([]string{}, (*o.ExcludeExtensions)...)
	}
	if o.Color != nil {
		c.Color = *o.Color
	}
	if o.LineNumbers != nil {
		c.LineNumbers = *o.LineNumbers
	}
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}
}

// Validate validates the configuration values.
// Invalid values are reported as *models.ArgumentError naming the offending key.
func (c *Config) Validate() error {
	if _, err := search.ParseMode(c.Mode); err != nil {
		return err
	}

	if !display.ValidColorMode(c.Color) {
		return models.NewArgumentError("color", fmt.Sprintf("invalid choice %q (choose from auto, always, never)", c.Color))
	}

	if c.MaxDepth < models.UnlimitedDepth {
		return models.NewArgumentError("level", fmt.Sprintf("must be >= -1, got %d", c.MaxDepth))
	}

	if !logger.ValidLevel(c.LogLevel) {
		return models.NewArgumentError("log-level", fmt.Sprintf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel))
	}

	for _, ext := range c.ExcludeExtensions {
		if strings.TrimSpace(strings.TrimPrefix(ext, ".")) == "" {
			return models.NewArgumentError("exclude-ext", fmt.Sprintf("empty extension in %q", strings.Join(c.ExcludeExtensions, ",")))
		}
	}

	if c.Table.Padding < 1 {
		return models.NewArgumentError("", fmt.Sprintf("table.padding must be >= 1, got %d", c.Table.Padding))
	}

	return nil
}

// FilterConfig projects the enumerator settings for root.
func (c *Config) FilterConfig(root string) models.FilterConfig {
	return models.FilterConfig{
		Root:          root,
		IncludeHidden: c.IncludeHidden,
		Extensions:    append([]string{}, c.ExcludeExtensions...),
		MaxDepth:      c.MaxDepth,
	}
}

// TableOptions projects the summary table settings.
func (c *Config) TableOptions() display.TableOptions {
	return display.TableOptions{
		Padding:    c.Table.Padding,
		ShowHeader: c.Table.ShowHeader,
		ShowFooter: true,
	}
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}
