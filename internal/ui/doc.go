// Package ui renders the styled output of the procdemo commands that do not
// take over the screen: simulate, config and version.
//
// Components follow a "print and move on" pattern:
//
//   - Header: command banner showing the operation and its parameters
//   - Progress: bar showing how many simulation ticks have run
//   - Result: success or failure box
//   - RenderTick: one line per simulation tick, changed values highlighted
//
// Commands print through a Printer:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Simulation", "procdemo simulate",
//	    ui.Param{Key: "Ticks", Value: "20"})
//	p.PrintTick(1, model.Snapshot(), nil)
//
// # Logging Integration
//
// Logging is controlled by the PROCDEMO_LOG_LEVEL environment variable or the
// --log-level flag. When unset, zap logging is silent so the styled output is
// displayed cleanly.
package ui
