package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "procdemo"
	configName = "config"
	configFile = "config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. PROCDEMO_SIMULATION_SEED.
	EnvPrefix = "PROCDEMO"
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/procdemo or $HOME/.config/procdemo
//   - macOS: $HOME/.config/procdemo (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\procdemo
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			return filepath.Join(xdgConfigHome, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetConfigPath returns the full path to the default configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads the configuration. Precedence, highest first:
//  1. PROCDEMO_* environment variables (PROCDEMO_SIMULATION_SEED, ...)
//  2. The file at path, or config.yaml in GetConfigDir when path is empty
//  3. Built-in defaults
//
// A missing default file is not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", path, err)
		}
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config directory: %w", err)
		}
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading user config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)

	v.SetDefault("simulation.unit", d.Simulation.Unit)
	v.SetDefault("simulation.fast_every", d.Simulation.FastEvery)
	v.SetDefault("simulation.slow_every", d.Simulation.SlowEvery)
	v.SetDefault("simulation.state_period", d.Simulation.StatePeriod)
	v.SetDefault("simulation.seed", d.Simulation.Seed)

	v.SetDefault("temperature.current", d.Temperature.Current)
	v.SetDefault("temperature.floor", d.Temperature.Floor)
	v.SetDefault("temperature.ceiling", d.Temperature.Ceiling)
	v.SetDefault("temperature.step", d.Temperature.Step)

	v.SetDefault("percent.current", d.Percent.Current)
	v.SetDefault("percent.floor", d.Percent.Floor)
	v.SetDefault("percent.ceiling", d.Percent.Ceiling)
	v.SetDefault("percent.step", d.Percent.Step)

	v.SetDefault("color.red_step", d.Color.RedStep)
	v.SetDefault("color.green_step", d.Color.GreenStep)
	v.SetDefault("color.blue_step", d.Color.BlueStep)

	v.SetDefault("ui.title", d.UI.Title)
	v.SetDefault("ui.output_lines", d.UI.OutputLines)
	v.SetDefault("ui.alt_screen", d.UI.AltScreen)

	v.SetDefault("logging.level", d.Logging.Level)
}

// MarshalYAML writes the unit as a duration string ("1s") rather than
// nanoseconds.
func (s SimulationConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Unit        string `yaml:"unit"`
		FastEvery   int    `yaml:"fast_every"`
		SlowEvery   int    `yaml:"slow_every"`
		StatePeriod int    `yaml:"state_period"`
		Seed        int64  `yaml:"seed"`
	}{
		Unit:        s.Unit.String(),
		FastEvery:   s.FastEvery,
		SlowEvery:   s.SlowEvery,
		StatePeriod: s.StatePeriod,
		Seed:        s.Seed,
	}, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes cfg to path. Performs an atomic write to prevent corruption on
// crash. An existing file is only replaced when overwrite is set.
func Save(cfg *Config, path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	header := []byte(`# procdemo configuration
#
# Every key can be overridden from the environment with the PROCDEMO_ prefix,
# for example PROCDEMO_SIMULATION_SEED=42 or PROCDEMO_UI_TITLE="Bench rig".
# A seed of 0 picks a new seed from the clock on each run.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// WriteDefault writes the built-in configuration to path, or to
// GetConfigPath when path is empty, and returns the path written.
func WriteDefault(path string, overwrite bool) (string, error) {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return "", fmt.Errorf("failed to get config path: %w", err)
		}
	}
	if err := Save(Default(), path, overwrite); err != nil {
		return "", err
	}
	return path, nil
}
