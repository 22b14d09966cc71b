package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/procdemo/internal/binding"
	"github.com/muurk/procdemo/internal/config"
	"github.com/muurk/procdemo/internal/logging"
	"github.com/muurk/procdemo/internal/schedule"
	"github.com/muurk/procdemo/internal/sim"
	"github.com/muurk/procdemo/internal/tui"
	"github.com/muurk/procdemo/internal/ui"
)

// loadConfig reads the config file and applies the global flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("seed") {
		cfg.Simulation.Seed = seed
	}
	return cfg, nil
}

// newProcess builds the simulated process described by cfg. The seed
// actually used is returned so a run can be reproduced.
func newProcess(cfg *config.Config) (*sim.Process, int64, error) {
	opts := cfg.SimOptions()
	m, err := sim.NewModel(opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create model: %w", err)
	}
	return sim.NewProcess(m), opts.Seed, nil
}

// runSession runs the interactive display until the user exits.
func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Log lines go to the Messages region while the display owns the screen
	out := tui.NewOutputBuffer(cfg.UI.OutputLines)
	if err := logging.Initialize(cfg.Logging.Level, out); err != nil {
		return err
	}
	defer logging.Sync()

	proc, usedSeed, err := newProcess(cfg)
	if err != nil {
		return err
	}

	width, height := tui.TerminalSize()
	display := tui.NewDisplay(width, height, out, tui.DetectPalette())
	if _, err := binding.Build(display, proc, binding.Options{
		Rand: rand.New(rand.NewSource(usedSeed)),
	}); err != nil {
		return fmt.Errorf("failed to build display: %w", err)
	}

	loop, err := schedule.NewLoop(schedule.ProcessTasks(proc, cfg.FastInterval(), cfg.SlowInterval())...)
	if err != nil {
		return fmt.Errorf("failed to create update loop: %w", err)
	}

	logging.Info("Session started",
		zap.Int64("seed", usedSeed),
		zap.Duration("fast", cfg.FastInterval()),
		zap.Duration("slow", cfg.SlowInterval()),
	)

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	_, runErr := tea.NewProgram(tui.NewApp(display, loop, cfg.UI.Title), opts...).Run()

	logging.Info("Session ended", zap.Int("rejected_colors", proc.RejectedColors()))

	// Everything printed during the session
	if _, err := out.WriteTo(cmd.OutOrStdout()); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return fmt.Errorf("display failed: %w", runErr)
	}
	return nil
}

// Simulate command flags
var (
	simTicks   int
	simInstant bool
	simFormat  string
	simQuiet   bool
)

func init() {
	simulateCmd.Flags().IntVar(&simTicks, "ticks", 20, "Number of time units to simulate")
	simulateCmd.Flags().BoolVar(&simInstant, "instant", false, "Run on a virtual clock instead of waiting")
	simulateCmd.Flags().StringVar(&simFormat, "format", "text", "Output format (text, json)")
	simulateCmd.Flags().BoolVarP(&simQuiet, "quiet", "q", false, "Show a progress bar instead of one line per tick")

	rootCmd.AddCommand(simulateCmd)
}

// simulateCmd runs the process without a display
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless and print its values",
	Long: `Run the simulated process without the interactive display.

After every time unit the current values are printed. The fast loop runs
once per unit and the slow loop every second unit, unless the config file
says otherwise.`,
	Example: `  # Twenty one-second ticks
  procdemo simulate

  # Instant, reproducible output for scripts
  procdemo simulate --instant --seed 42 --ticks 100 --format json

  # Just a progress bar
  procdemo simulate --ticks 30 --quiet`,
	RunE: runSimulate,
}

// tickRecord is one line of JSON output
type tickRecord struct {
	Tick int `json:"tick"`
	sim.Snapshot
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if simTicks < 1 {
		return fmt.Errorf("--ticks must be at least 1, got %d", simTicks)
	}
	if simFormat != "text" && simFormat != "json" {
		return fmt.Errorf("unknown --format %q (expected text or json)", simFormat)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := logging.Initialize(cfg.Logging.Level, os.Stderr); err != nil {
		return err
	}
	defer logging.Sync()

	proc, usedSeed, err := newProcess(cfg)
	if err != nil {
		return err
	}
	m := proc.Model()

	p := ui.NewPrinter(cmd.OutOrStdout())
	text := simFormat == "text"
	if text {
		clock := "real time"
		if simInstant {
			clock = "instant"
		}
		p.PrintHeader("Simulation", "procdemo simulate",
			ui.Param{Key: "Ticks", Value: strconv.Itoa(simTicks)},
			ui.Param{Key: "Unit", Value: cfg.Simulation.Unit.String()},
			ui.Param{Key: "Seed", Value: strconv.FormatInt(usedSeed, 10)},
			ui.Param{Key: "Clock", Value: clock},
		)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	progress := ui.NewProgress("Simulating", simTicks)
	var prev *sim.Snapshot
	var reportErr error
	tick := 0
	report := schedule.Task{
		Name:     "report",
		Interval: cfg.Simulation.Unit,
		Body: func() {
			if tick >= simTicks {
				return
			}
			tick++
			snap := m.Snapshot()
			switch {
			case !text:
				if err := p.PrintJSON(tickRecord{Tick: tick, Snapshot: snap}); err != nil && reportErr == nil {
					reportErr = err
				}
			case simQuiet:
				progress.Advance()
				p.Print("\r" + progress.Render())
			default:
				p.PrintTick(tick, snap, prev)
			}
			prev = &snap
			if tick == simTicks {
				cancel()
			}
		},
	}

	// The report runs last so it sees the values after both loops
	tasks := append(schedule.ProcessTasks(proc, cfg.FastInterval(), cfg.SlowInterval()), report)

	var runs []int
	if simInstant {
		runs, err = schedule.Simulate(tasks, time.Duration(simTicks)*cfg.Simulation.Unit)
	} else {
		var runner *schedule.Runner
		if runner, err = schedule.NewRunner(tasks...); err == nil {
			err = runner.Run(ctx)
		}
	}
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	if reportErr != nil {
		return fmt.Errorf("failed to write output: %w", reportErr)
	}

	if text {
		if simQuiet {
			p.Newline()
		}
		p.Newline()
		details := []ui.Param{
			{Key: "Ticks", Value: fmt.Sprintf("%d of %d", tick, simTicks)},
			{Key: "Temperature", Value: strconv.Itoa(m.Temperature())},
			{Key: "Percent", Value: fmt.Sprintf("%.2f", m.Percent())},
			{Key: "State", Value: m.State().Name()},
		}
		if runs != nil {
			details = append(details,
				ui.Param{Key: "Fast runs", Value: strconv.Itoa(runs[0])},
				ui.Param{Key: "Slow runs", Value: strconv.Itoa(runs[1])},
			)
		}
		p.PrintSuccess("Simulation finished", details...)
	}
	return nil
}

// Config command
var configForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file without asking")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the built-in defaults to the configuration file.

The file goes to --config when given, otherwise to
$XDG_CONFIG_HOME/procdemo/config.yaml. An existing file is only replaced
after confirmation or with --force.`,
	RunE: runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())

	path := configPath
	if path == "" {
		var err error
		if path, err = config.GetConfigPath(); err != nil {
			return err
		}
	}

	overwrite := configForce
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			if !ui.ConfirmOverwrite(cmd.InOrStdin(), cmd.OutOrStdout(), path) {
				return nil
			}
			overwrite = true
		}
	}

	written, err := config.WriteDefault(path, overwrite)
	if err != nil {
		p.PrintError("Configuration not written", err, "check the directory permissions")
		return err
	}
	p.PrintSuccess("Configuration written", ui.Param{Key: "Path", Value: written})
	return nil
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, the config file, environment
variables and flags have been applied, as YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
