// Package sim implements the simulated external process shown by procdemo.
//
// The package has three layers:
//
//   - Primitives: Oscillator walks a scalar back and forth between a floor and
//     a ceiling; Randomizer re-draws a member of a fixed set every N ticks.
//   - Model: owns every attribute (temperature, percent, state, mode, the
//     color triple and the editable limits) and exposes formatted and raw
//     read accessors plus write accessors for the editable values.
//   - Process: the periodic update bodies (Fast and Slow) that mutate the
//     Model and push the demo color to an injected ColorService.
//
// # Boundary Rule
//
// Oscillators do not clamp. The bounds check happens after the increment, so
// the current value can pass a bound by up to one step before the direction
// reverses:
//
//	o, _ := sim.NewIntOscillator(20, 10, 30, 1)
//	for i := 0; i < 10; i++ {
//	    o.Advance()
//	}
//	// o.Current() == 30, o.Step() == -1
//
// Moving a limit past the current value does not move the value either. The
// oscillator keeps going until it next crosses a bound, then turns around.
//
// # Float Precision
//
// Float oscillators snap the current value to a 1e-9 grid after every step,
// so a walk of 0.1 steps from 0.0 lands on exactly 1.0 and flips there
// instead of stopping at 0.9999999999999999. For the same reason a float
// step must be a whole multiple of 1e-9:
//
//	sim.ValidateFloatStep(0.25)  // nil
//	sim.ValidateFloatStep(1e-10) // wraps ErrStepTooFine
//	sim.ValidateFloatStep(0)     // ErrZeroStep
//
// # Defaults
//
// DefaultOptions describes the stock process:
//
//	temperature  20 in [10, 30], step 1
//	percent      0.0 in [-1.0, 1.0], step 0.1
//	state        Disconnected, re-drawn every 5 slow ticks
//	mode         Disabled
//	color        R, G and B start at 500 in [0, 999], steps 3, 6 and 9
//
// # Display Strings
//
// The Model formats its own values for the display, for example
// "Current Temp: 20", "Percent: 0.00", "Current State: Disconnected" and
// "Max Percent: 1.0". Percent limits use the shortest form with at least one
// decimal place (FormatFloat).
//
// # Update Cadence
//
// Process.Fast advances the colors and the percent. Process.Slow advances the
// temperature, ticks the state and advances the colors again. Every color
// change is pushed to the ColorService with each channel clamped to
// [0, 999]. A display that refuses the color is logged and counted
// (RejectedColors); the simulation carries on.
//
// # Threading
//
// Nothing in this package locks. The Model must only be touched from one
// goroutine at a time; procdemo guarantees that by running the periodic
// tasks, key handlers and dialog commits on the Bubble Tea update loop.
package sim
