// Package config loads the optional YAML settings file of the sbmath tool.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Resolve.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
	DefaultSamples   = 100000
	DefaultPrecision = 3
	DefaultFPS       = 60
	DefaultFrequency = 4.0
	DefaultDamping   = 1.0
	DefaultStep      = 15.0
)

// Config holds every setting the tool reads from a file.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Accuracy AccuracyConfig `yaml:"accuracy"`
	Inspect  InspectConfig  `yaml:"inspect"`
	View     ViewConfig     `yaml:"view"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type AccuracyConfig struct {
	// Samples per routine, spread evenly over its domain.
	Samples int `yaml:"samples"`
}

type InspectConfig struct {
	// Precision is the number of decimals printed per float. Nil means
	// unset, so 0 stays a valid choice.
	Precision *int `yaml:"precision"`
}

// Decimals returns Precision, or DefaultPrecision when it is unset.
func (c InspectConfig) Decimals() int {
	if c.Precision == nil {
		return DefaultPrecision
	}
	return *c.Precision
}

type ViewConfig struct {
	FPS       int     `yaml:"fps"`
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
	// Step is the target change per key press, in degrees.
	Step       float32  `yaml:"step"`
	Background [3]uint8 `yaml:"background"`
}

// Load reads a YAML config file. Unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r. An empty document yields the zero Config.
func Decode(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings. Zero
// values, and a nil Precision, leave the file setting alone.
type Flags struct {
	LogLevel  string
	LogFormat string
	Samples   int
	Precision *int
	FPS       int
}

// Resolve applies flags over the file settings, then fills anything still
// unset with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.LogLevel != "" {
		c.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		c.Log.Format = flags.LogFormat
	}
	if flags.Samples > 0 {
		c.Accuracy.Samples = flags.Samples
	}
	if flags.Precision != nil {
		p := *flags.Precision
		c.Inspect.Precision = &p
	}
	if flags.FPS > 0 {
		c.View.FPS = flags.FPS
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Accuracy.Samples <= 0 {
		c.Accuracy.Samples = DefaultSamples
	}
	if c.Inspect.Precision == nil {
		p := DefaultPrecision
		c.Inspect.Precision = &p
	}
	if c.View.FPS <= 0 {
		c.View.FPS = DefaultFPS
	}
	if c.View.Frequency <= 0 {
		c.View.Frequency = DefaultFrequency
	}
	if c.View.Damping <= 0 {
		c.View.Damping = DefaultDamping
	}
	if c.View.Step <= 0 {
		c.View.Step = DefaultStep
	}
	if c.View.Background == [3]uint8{} {
		c.View.Background = [3]uint8{30, 30, 40}
	}
}

// Validate reports settings that Resolve cannot repair.
func (c *Config) Validate() error {
	var errs []error
	if c.Accuracy.Samples < 2 {
		errs = append(errs, fmt.Errorf("accuracy.samples %d: need at least 2", c.Accuracy.Samples))
	}
	if p := c.Inspect.Decimals(); p < 0 || p > 9 {
		errs = append(errs, fmt.Errorf("inspect.precision %d: want 0 to 9", p))
	}
	if c.View.FPS > 240 {
		errs = append(errs, fmt.Errorf("view.fps %d: at most 240", c.View.FPS))
	}
	return errors.Join(errs...)
}
