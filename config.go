package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"napkinwire/sketch"
)

type Config struct {
	SnapSize      int               `mapstructure:"snap_size" toml:"snap_size" json:"snap_size" yaml:"snap_size"`
	CanvasWidth   int               `mapstructure:"canvas_width" toml:"canvas_width" json:"canvas_width" yaml:"canvas_width"`
	CanvasHeight  int               `mapstructure:"canvas_height" toml:"canvas_height" json:"canvas_height" yaml:"canvas_height"`
	Mode          string            `mapstructure:"mode" toml:"mode" json:"mode" yaml:"mode"`
	Tolerance     float64           `mapstructure:"tolerance" toml:"tolerance" json:"tolerance" yaml:"tolerance"`
	MinShapeCells int               `mapstructure:"min_shape_cells" toml:"min_shape_cells" json:"min_shape_cells" yaml:"min_shape_cells"`
	SaveDirectory string            `mapstructure:"save_directory" toml:"save_directory" json:"save_directory" yaml:"save_directory"`
	Confirmations bool              `mapstructure:"confirmations" toml:"confirmations" json:"confirmations" yaml:"confirmations"`
	Glyphs        map[string]string `mapstructure:"glyphs" toml:"glyphs" json:"glyphs" yaml:"glyphs"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("snap_size", sketch.DefaultSnapSize)
	v.SetDefault("canvas_width", sketch.DefaultCanvasWidth)
	v.SetDefault("canvas_height", sketch.DefaultCanvasHeight)
	v.SetDefault("mode", sketch.ModeDiagram.String())
	v.SetDefault("tolerance", sketch.DefaultTolerance)
	v.SetDefault("min_shape_cells", 1)
	v.SetDefault("save_directory", "")
	v.SetDefault("confirmations", true)
	v.SetDefault("glyphs", map[string]string{
		"black":  "#",
		"red":    "*",
		"blue":   "=",
		"green":  "+",
		"orange": "%",
		"purple": "@",
	})
}

// loadConfig reads configuration from path, or from ~/.napkinwire.toml when
// path is empty. A missing default file is not an error. NAPKINWIRE_* env vars
// override both.
func loadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("NAPKINWIRE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(homeDir, ".napkinwire.toml")
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if config.SaveDirectory != "" {
		if strings.HasPrefix(config.SaveDirectory, "~") {
			if homeDir, err := os.UserHomeDir(); err == nil {
				config.SaveDirectory = filepath.Join(homeDir, strings.TrimPrefix(config.SaveDirectory, "~"))
			}
		}
		if abs, err := filepath.Abs(config.SaveDirectory); err == nil {
			config.SaveDirectory = abs
		}
	}

	return &config, nil
}

// Options converts the configuration into engine options.
func (c *Config) Options() (sketch.Options, error) {
	mode, err := sketch.ParseMode(c.Mode)
	if err != nil {
		return sketch.Options{}, errors.WithHint(err, "mode must be \"diagram\" or \"mockup\"")
	}

	glyphs := make(map[string]rune, len(c.Glyphs))
	for color, glyph := range c.Glyphs {
		r, size := utf8.DecodeRuneInString(glyph)
		if size == 0 || r == utf8.RuneError {
			return sketch.Options{}, errors.Newf("glyph for color %q is empty", color)
		}
		glyphs[color] = r
	}

	opts := sketch.Options{
		SnapSize:     c.SnapSize,
		CanvasWidth:  c.CanvasWidth,
		CanvasHeight: c.CanvasHeight,
		Mode:         mode,
		Tolerance:    c.Tolerance,
		KindGlyphs:   sketch.DefaultKindGlyphs(),
		ColorGlyphs:  sketch.NewColorGlyphs(glyphs),
	}
	if err := opts.Validate(); err != nil {
		return sketch.Options{}, errors.WithHint(err, "check snap_size, canvas_width and canvas_height")
	}
	return opts, nil
}

// Palette returns the configured stroke colors in a stable order.
func (c *Config) Palette() []string {
	colors := make([]string, 0, len(c.Glyphs))
	for color := range c.Glyphs {
		colors = append(colors, color)
	}
	sort.Strings(colors)
	return colors
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
