package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/muurk/procdemo/internal/sim"
)

// CurrentVersion is the config file format version this build reads.
const CurrentVersion = 1

// ErrUnsupportedVersion is returned for a config file from another format
// version.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Config is the whole procdemo configuration.
type Config struct {
	Version     int               `mapstructure:"version" yaml:"version"`
	Simulation  SimulationConfig  `mapstructure:"simulation" yaml:"simulation"`
	Temperature TemperatureConfig `mapstructure:"temperature" yaml:"temperature"`
	Percent     PercentConfig     `mapstructure:"percent" yaml:"percent"`
	Color       ColorConfig       `mapstructure:"color" yaml:"color"`
	UI          UIConfig          `mapstructure:"ui" yaml:"ui"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging"`
}

// SimulationConfig controls the periodic tasks. Intervals are multiples of
// Unit: the fast task runs every FastEvery units, the slow one every
// SlowEvery units.
type SimulationConfig struct {
	Unit        time.Duration `mapstructure:"unit" yaml:"unit"`
	FastEvery   int           `mapstructure:"fast_every" yaml:"fast_every"`
	SlowEvery   int           `mapstructure:"slow_every" yaml:"slow_every"`
	StatePeriod int           `mapstructure:"state_period" yaml:"state_period"` // Slow ticks between state draws
	Seed        int64         `mapstructure:"seed" yaml:"seed"`                 // 0 picks a seed from the clock
}

// TemperatureConfig holds the starting temperature oscillator.
type TemperatureConfig struct {
	Current int `mapstructure:"current" yaml:"current"`
	Floor   int `mapstructure:"floor" yaml:"floor"`
	Ceiling int `mapstructure:"ceiling" yaml:"ceiling"`
	Step    int `mapstructure:"step" yaml:"step"`
}

// PercentConfig holds the starting percent oscillator.
type PercentConfig struct {
	Current float64 `mapstructure:"current" yaml:"current"`
	Floor   float64 `mapstructure:"floor" yaml:"floor"`
	Ceiling float64 `mapstructure:"ceiling" yaml:"ceiling"`
	Step    float64 `mapstructure:"step" yaml:"step"`
}

// ColorConfig holds the per-channel steps of the demo color.
type ColorConfig struct {
	RedStep   int `mapstructure:"red_step" yaml:"red_step"`
	GreenStep int `mapstructure:"green_step" yaml:"green_step"`
	BlueStep  int `mapstructure:"blue_step" yaml:"blue_step"`
}

// UIConfig holds display settings.
type UIConfig struct {
	Title       string `mapstructure:"title" yaml:"title"`
	OutputLines int    `mapstructure:"output_lines" yaml:"output_lines"` // Lines kept in the Messages buffer
	AltScreen   bool   `mapstructure:"alt_screen" yaml:"alt_screen"`
}

// LoggingConfig holds the log level. Empty means silent unless
// PROCDEMO_LOG_LEVEL is set.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	opts := sim.DefaultOptions()
	return &Config{
		Version: CurrentVersion,
		Simulation: SimulationConfig{
			Unit:        time.Second,
			FastEvery:   1,
			SlowEvery:   2,
			StatePeriod: opts.StatePeriod,
			Seed:        0,
		},
		Temperature: TemperatureConfig(opts.Temperature),
		Percent:     PercentConfig(opts.Percent),
		Color: ColorConfig{
			RedStep:   opts.RedStep,
			GreenStep: opts.GreenStep,
			BlueStep:  opts.BlueStep,
		},
		UI: UIConfig{
			Title:       "Process Demo",
			OutputLines: 1000,
			AltScreen:   true,
		},
	}
}

// Validate checks the configuration for values the simulation cannot run
// with.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, c.Version, CurrentVersion)
	}

	s := c.Simulation
	if s.Unit <= 0 {
		return fmt.Errorf("simulation.unit must be positive, got %s", s.Unit)
	}
	if s.FastEvery < 1 || s.SlowEvery < 1 {
		return fmt.Errorf("simulation.fast_every and slow_every must be at least 1")
	}
	if s.StatePeriod < 1 {
		return fmt.Errorf("simulation.state_period must be at least 1, got %d", s.StatePeriod)
	}

	if c.Temperature.Step == 0 {
		return fmt.Errorf("temperature.step must be non-zero")
	}
	if c.Temperature.Floor >= c.Temperature.Ceiling {
		return fmt.Errorf("temperature.floor (%d) must be below temperature.ceiling (%d)",
			c.Temperature.Floor, c.Temperature.Ceiling)
	}

	if err := sim.ValidateFloatStep(c.Percent.Step); err != nil {
		return fmt.Errorf("percent.step: %w", err)
	}
	if c.Percent.Floor >= c.Percent.Ceiling {
		return fmt.Errorf("percent.floor (%v) must be below percent.ceiling (%v)",
			c.Percent.Floor, c.Percent.Ceiling)
	}

	if c.Color.RedStep == 0 || c.Color.GreenStep == 0 || c.Color.BlueStep == 0 {
		return fmt.Errorf("color steps must be non-zero")
	}

	if c.UI.OutputLines < 1 {
		return fmt.Errorf("ui.output_lines must be at least 1, got %d", c.UI.OutputLines)
	}

	return nil
}

// FastInterval returns the fast task period.
func (c *Config) FastInterval() time.Duration {
	return time.Duration(c.Simulation.FastEvery) * c.Simulation.Unit
}

// SlowInterval returns the slow task period.
func (c *Config) SlowInterval() time.Duration {
	return time.Duration(c.Simulation.SlowEvery) * c.Simulation.Unit
}

// SimOptions converts the configuration into Model options. A zero seed is
// replaced by the current time.
func (c *Config) SimOptions() sim.Options {
	seed := c.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return sim.Options{
		Temperature: sim.IntRange(c.Temperature),
		Percent:     sim.FloatRange(c.Percent),
		RedStep:     c.Color.RedStep,
		GreenStep:   c.Color.GreenStep,
		BlueStep:    c.Color.BlueStep,
		StatePeriod: c.Simulation.StatePeriod,
		Seed:        seed,
	}
}
