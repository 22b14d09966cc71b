// Package config loads and writes the procdemo configuration file.
//
// The configuration holds the simulation's starting values (oscillator ranges
// and steps, state reselection period, random seed), the periodic task
// cadence, display settings and the log level. None of the simulated state is
// ever written back; the file only seeds a fresh Model at startup.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/procdemo/config.yaml or $HOME/.config/procdemo/config.yaml
//   - macOS: $HOME/.config/procdemo/config.yaml
//   - Windows: %LOCALAPPDATA%\procdemo\config.yaml
//
// # Loading
//
// Load layers built-in defaults, the YAML file and PROCDEMO_* environment
// variables using viper, then validates the result:
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	model, err := sim.NewModel(cfg.SimOptions())
//
// # Writing
//
// WriteDefault and Save write YAML with gopkg.in/yaml.v3 through a temporary
// file and a rename, so a crash never leaves a half-written file behind.
package config
