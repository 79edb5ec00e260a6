// Package config loads and saves the cardgrid TOML configuration.
//
// A configuration has three tables: [grid] for packing options, and
// [card] and [detail] for the display templates used in the grid view
// and the single-record view:
//
//	[grid]
//	width = 0              # 0 asks the terminal
//	fallback_width = 80
//	max_columns = 0        # 0 means no cap
//	strategy = "exact"     # or "fast"
//	require_uniform_height = false
//
//	[[card.line]]
//	left = "{index}."
//	middle = "{name}"
//	right = ""
//	fill = " "
//
// Missing keys take their defaults. Unknown keys are rejected so that
// misspelled options do not go unnoticed.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cardgrid/pkg/errors"
	"github.com/matzehuels/cardgrid/pkg/grid"
	"github.com/matzehuels/cardgrid/pkg/termsize"
)

const appName = "cardgrid"

// FileName is the configuration file name inside the config directory.
const FileName = "config.toml"

// Config is the full configuration file.
type Config struct {
	Grid   GridConfig `toml:"grid"`
	Card   CardConfig `toml:"card"`
	Detail CardConfig `toml:"detail"`
}

// GridConfig holds packing options.
type GridConfig struct {
	Width                int    `toml:"width"`
	FallbackWidth        int    `toml:"fallback_width"`
	MaxColumns           int    `toml:"max_columns"`
	Strategy             string `toml:"strategy"`
	RequireUniformHeight bool   `toml:"require_uniform_height"`
}

// CardConfig is an ordered list of display line templates.
type CardConfig struct {
	Lines []LineConfig `toml:"line"`
}

// LineConfig is one display line. Left, Middle and Right are templates;
// Fill is a literal single character.
type LineConfig struct {
	Left   string `toml:"left"`
	Middle string `toml:"middle"`
	Right  string `toml:"right"`
	Fill   string `toml:"fill"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:         grid.AutoWidth,
			FallbackWidth: termsize.DefaultFallback,
			Strategy:      grid.StrategyExact,
		},
		Card:   CardConfig{Lines: defaultCardLines()},
		Detail: CardConfig{Lines: defaultDetailLines()},
	}
}

func defaultCardLines() []LineConfig {
	return []LineConfig{
		{Left: "{index}.", Middle: "{name}", Right: "", Fill: " "},
		{Left: "", Middle: "{name_short}", Right: "{ping}ms", Fill: " "},
		{Left: "{region} ({cc})", Middle: " ", Right: "{players}/{max_players} players", Fill: " "},
		{Left: "{map}", Middle: " ", Right: "{bots} bots", Fill: " "},
	}
}

func defaultDetailLines() []LineConfig {
	return []LineConfig{
		{Left: "", Middle: "", Right: "", Fill: "-"},
		{Left: "|", Middle: "{name}", Right: "|", Fill: " "},
		{Left: "", Middle: "{name_short}", Right: "{ping}ms", Fill: "-"},
		{Left: "{region} ({cc})", Middle: " ", Right: "{players}/{max_players} players", Fill: " "},
		{Left: "{map}", Middle: " ", Right: "{bots} bots", Fill: " "},
	}
}

// DefaultPath returns the config file path using the XDG standard
// (~/.config/cardgrid/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, FileName), nil
}

// Load reads the configuration at path. A missing file yields Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, nil
}

// Decode parses TOML from r, applies defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

func (c *Config) applyDefaults() {
	if c.Grid.FallbackWidth == 0 {
		c.Grid.FallbackWidth = termsize.DefaultFallback
	}
	if c.Grid.Strategy == "" {
		c.Grid.Strategy = grid.StrategyExact
	}
	if len(c.Card.Lines) == 0 {
		c.Card.Lines = defaultCardLines()
	}
	if len(c.Detail.Lines) == 0 {
		c.Detail.Lines = defaultDetailLines()
	}
	for _, lines := range [][]LineConfig{c.Card.Lines, c.Detail.Lines} {
		for i := range lines {
			if lines[i].Fill == "" {
				lines[i].Fill = grid.DefaultFill
			}
		}
	}
}

// Validate checks option ranges, the strategy name and every fill.
func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if err := c.Card.validate("card"); err != nil {
		return err
	}
	return c.Detail.validate("detail")
}

// Validate checks the packing options.
func (g GridConfig) Validate() error {
	if g.Width < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.width cannot be negative: %d", g.Width)
	}
	if g.FallbackWidth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.fallback_width cannot be negative: %d", g.FallbackWidth)
	}
	if g.MaxColumns < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.max_columns cannot be negative: %d", g.MaxColumns)
	}
	if _, err := grid.StrategyByName(g.Strategy); err != nil {
		return err
	}
	return nil
}

// Options converts the packing options for the grid package.
func (g GridConfig) Options() (grid.Options, error) {
	if err := g.Validate(); err != nil {
		return grid.Options{}, err
	}
	strategy, err := grid.StrategyByName(g.Strategy)
	if err != nil {
		return grid.Options{}, err
	}
	return grid.Options{
		Width:                g.Width,
		FallbackWidth:        g.FallbackWidth,
		MaxColumns:           g.MaxColumns,
		Strategy:             strategy,
		RequireUniformHeight: g.RequireUniformHeight,
	}, nil
}

func (c CardConfig) validate(table string) error {
	for i, l := range c.Lines {
		if _, err := grid.NewLine("", "", "", l.Fill); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s.line[%d]", table, i)
		}
	}
	return nil
}
