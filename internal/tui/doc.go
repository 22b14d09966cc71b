// Package tui is the interactive display for a simulated process.
//
// Display implements binding.Toolkit on top of lipgloss: regions are boxes
// placed at fixed terminal coordinates, fields are pulled fresh on every
// redraw, and pads scroll through content larger than their box. App wraps
// the display in a Bubble Tea model and drives the periodic update tasks
// from the same update loop, so no locking is needed around the process.
//
// While a session runs, anything written to the OutputBuffer (log lines and
// Ctrl-p messages) appears in the Messages region. The buffer is dumped to
// stdout when the program exits.
package tui
