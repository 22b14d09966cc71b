// Package logging provides structured logging for procdemo.
//
// This package wraps a zap logger with convenience functions for the few
// things worth recording in a simulation session: periodic task ticks, key
// dispatch, committed edits and rejected color definitions.
//
// # Configuration
//
// Logging is silent unless a level is passed to Initialize or the
// PROCDEMO_LOG_LEVEL environment variable is set:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// The interactive display owns the terminal, so it passes its output buffer
// as a sink. Log lines then appear in the Messages window:
//
//	logging.Initialize(level, display.Output())
//
// # Session ID
//
// Every entry carries a session_id field (a random UUID) so lines from
// concurrent runs sharing one log file can be told apart.
package logging
