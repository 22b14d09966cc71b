// Package binding connects the simulated process to a display.
//
// It does not draw anything. A display implements Toolkit, and Build asks it
// for regions and fields, attaching a pull function to each field so the
// display can fetch fresh text whenever it redraws. Editable fields carry a
// Dialog whose commit callback receives an already validated, typed value
// and writes it to the Model.
//
// # Toolkit
//
// The display capabilities are small interfaces declared here so the
// package never imports a UI library:
//
//   - Toolkit: root region, region and pad creation, output buffer, color
//     service, quit, select-next and begin-edit.
//   - Region: geometry queries, AddField, AddKey, SetSelectable and Scroll.
//   - Field: Update, RequiredRows, SetDialog and SetColorPair.
//   - ColorService: DefineColor, DefinePair, Colors and Pairs.
//   - OutputBuffer: an io.Writer that can be read back for display.
//
// internal/tui provides the real implementation. The tests here use fakes.
//
// # Layout
//
// Build creates four regions:
//
//	Menu      static help text, not selectable
//	Status    clock, temperature, state, color, percent
//	Controls  max/min temperature, mode, max/min percent (all editable)
//	Messages  a scrollable pad over the output buffer
//
// Fields are placed top to bottom. Build calls Update on each field before
// asking for its RequiredRows, so multi-line text pushes the next field down.
//
//	layout, err := binding.Build(display, proc, binding.Options{})
//	if err != nil {
//	    return err
//	}
//	layout.Fields["temperature"].Update()
//
// # Dialogs
//
// The set of dialogs is closed: IntDialog, FloatDialog and ChoiceDialog. The
// display parses and validates what the user typed; invalid input never
// reaches a commit callback. NewChoiceDialog builds a choice over any
// fmt.Stringer, which is how the mode field lists every sim.Mode.
//
// # Keys
//
// Router is a static key to handler table. Keys are named the way Bubble Tea
// spells them ("ctrl+x", "tab", "up"). BindResponses installs the session
// responses on the root region:
//
//	ctrl+x                 quit
//	ctrl+p                 append a random message to the output
//	tab                    select the next region
//	enter                  go into the selected region
//	up, down, left, right  scroll the Messages pad
//
// Binding carries its own help labels (HelpKeys) so the package stays free
// of any particular key or help library.
//
// # Colors
//
// Build reserves the last color slot for the demo color and the last pair
// for black on that color. If the display cannot define the pair, the color
// field keeps the default style and a warning is logged.
package binding
