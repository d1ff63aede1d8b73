// Package config loads keyshift settings from defaults, a YAML config file,
// KEYSHIFT_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-keyshift/dsp/effects/pitch"
	"github.com/cwbudde/algo-keyshift/dsp/interp"
	"github.com/cwbudde/algo-keyshift/dsp/window"
	"github.com/cwbudde/algo-keyshift/wavfile"
)

const (
	// AppName is used for the config file name and directory.
	AppName = "keyshift"
	// EnvPrefix prefixes environment overrides, e.g. KEYSHIFT_ENGINE_OVERLAP.
	EnvPrefix = "KEYSHIFT"
)

// Config is the complete application configuration.
type Config struct {
	Verbose  bool         `mapstructure:"verbose" yaml:"verbose"`
	LogLevel string       `mapstructure:"log_level" yaml:"log_level"`
	Workers  int          `mapstructure:"workers" yaml:"workers"`
	Engine   EngineConfig `mapstructure:"engine" yaml:"engine"`
	Output   OutputConfig `mapstructure:"output" yaml:"output"`
}

// EngineConfig holds pitch engine settings.
type EngineConfig struct {
	FrameLength   int     `mapstructure:"frame_length" yaml:"frame_length"`
	Overlap       float64 `mapstructure:"overlap" yaml:"overlap"`
	Window        string  `mapstructure:"window" yaml:"window"`
	Interpolation string  `mapstructure:"interpolation" yaml:"interpolation"`
}

// OutputConfig holds WAV export settings.
type OutputConfig struct {
	BitDepth int `mapstructure:"bit_depth" yaml:"bit_depth"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Workers:  0,
		Engine: EngineConfig{
			FrameLength:   pitch.DefaultFrameLength,
			Overlap:       pitch.DefaultOverlap,
			Window:        window.TypeHann.String(),
			Interpolation: interp.ModeLinear.String(),
		},
		Output: OutputConfig{
			BitDepth: wavfile.DefaultBitDepth,
		},
	}
}

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("workers", d.Workers)

	v.SetDefault("engine.frame_length", d.Engine.FrameLength)
	v.SetDefault("engine.overlap", d.Engine.Overlap)
	v.SetDefault("engine.window", d.Engine.Window)
	v.SetDefault("engine.interpolation", d.Engine.Interpolation)

	v.SetDefault("output.bit_depth", d.Output.BitDepth)
}

// NewViper returns a viper instance with defaults and environment binding.
// If configFile is empty, keyshift.yaml is searched in the working
// directory and in $HOME/.config/keyshift.
func NewViper(configFile string) *viper.Viper {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", AppName))
		}
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	return v
}

// Load reads the config file, if any, and returns the validated result.
// A missing file is only an error when it was named explicitly.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks all settings.
func (c Config) Validate() error {
	pc := pitch.Config{FrameLen: c.Engine.FrameLength, Overlap: c.Engine.Overlap}
	if err := pc.Validate(); err != nil {
		return fmt.Errorf("config: engine: %w", err)
	}

	if _, err := window.ParseType(c.Engine.Window); err != nil {
		return fmt.Errorf("config: engine.window: %w", err)
	}

	if _, err := interp.ParseMode(c.Engine.Interpolation); err != nil {
		return fmt.Errorf("config: engine.interpolation: %w", err)
	}

	if !wavfile.SupportedBitDepth(c.Output.BitDepth) {
		return fmt.Errorf("config: output.bit_depth must be 16 or 24: %d", c.Output.BitDepth)
	}

	if c.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0: %d", c.Workers)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}

	return nil
}

// EngineOptions translates the engine section into pitch engine options.
func (c Config) EngineOptions() ([]pitch.Option, error) {
	wt, err := window.ParseType(c.Engine.Window)
	if err != nil {
		return nil, fmt.Errorf("config: engine.window: %w", err)
	}

	mode, err := interp.ParseMode(c.Engine.Interpolation)
	if err != nil {
		return nil, fmt.Errorf("config: engine.interpolation: %w", err)
	}

	return []pitch.Option{
		pitch.WithFrameLength(c.Engine.FrameLength),
		pitch.WithOverlap(c.Engine.Overlap),
		pitch.WithWindow(wt),
		pitch.WithInterpolation(mode),
	}, nil
}

// YAML renders c in config file format.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}

	return out, nil
}
