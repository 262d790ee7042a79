// Package config loads settings for the fraction command line tool.
//
// Settings are applied in the following order, later sources winning:
//
//  1. defaults, see [Default];
//  2. a TOML file;
//  3. environment variables prefixed with FRACTION_.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/govalues/fraction"
)

// EnvPrefix is the prefix of all environment variables read by [Load].
const EnvPrefix = "FRACTION_"

// AutoPrecision tells the tool to print as many digits as needed to
// represent a fraction exactly, or 6 if its decimal expansion does not terminate.
const AutoPrecision = -1

// MaxPrecision is the largest accepted number of digits after the decimal point.
const MaxPrecision = 1000

// ErrInvalid is returned when a setting is out of range.
var ErrInvalid = errors.New("invalid config")

var varName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config holds the tool settings.
//
// Vars can be set in the file as a table of decimals or ratios:
//
//	[vars]
//	rate = 0.05
//	third = "1/3"
//
// or in the environment as FRACTION_VARS="rate:0.05,third:1/3".
type Config struct {
	LogLevel  string                       `toml:"log_level" env:"LOG_LEVEL"`
	Precision int                          `toml:"precision" env:"PRECISION"`
	Vars      map[string]fraction.Fraction `toml:"vars"      env:"VARS"`
}

// Default returns the default settings.
func Default() Config {
	return Config{
		LogLevel:  zerolog.InfoLevel.String(),
		Precision: AutoPrecision,
	}
}

// Load reads the settings from the file at path and then from the
// environment. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := parseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parseEnv overrides cfg with environment variables.
func parseEnv(cfg *Config) error {
	opts := env.Options{
		Prefix: EnvPrefix,
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(fraction.Fraction{}): func(v string) (interface{}, error) {
				var f fraction.Fraction
				if err := f.UnmarshalText([]byte(v)); err != nil {
					return nil, err
				}
				return f, nil
			},
		},
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the settings.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalid)
	}
	if c.Precision < AutoPrecision || c.Precision > MaxPrecision {
		return fmt.Errorf("precision %v out of range [%v, %v]: %w", c.Precision, AutoPrecision, MaxPrecision, ErrInvalid)
	}
	for name := range c.Vars {
		if !varName.MatchString(name) {
			return fmt.Errorf("variable name %q: %w", name, ErrInvalid)
		}
	}
	return nil
}

// Level returns the parsed log level.
// It returns [zerolog.InfoLevel] if the level is not valid.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
