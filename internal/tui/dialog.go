package tui

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/procdemo/internal/binding"
)

var (
	errNotInteger = errors.New("enter a whole number")
	errNotFloat   = errors.New("enter a finite number")
)

// Dialog is an open edit prompt. It parses what the user typed according to
// the field's binding.Dialog and only commits a valid value. Invalid input
// leaves the dialog open with an inline error.
type Dialog struct {
	field  *Field
	input  textinput.Model
	cursor int
	err    error
}

func newDialog(f *Field) *Dialog {
	d := &Dialog{field: f}
	switch dlg := f.dialog.(type) {
	case binding.ChoiceDialog:
		// Start on the current value when the field shows it
		for i, name := range dlg.Choices {
			if strings.HasSuffix(f.text, name) {
				d.cursor = i
				break
			}
		}
	default:
		ti := textinput.New()
		ti.CharLimit = 32
		ti.Width = 20
		if dlg.Kind() == binding.KindInteger {
			ti.Placeholder = "e.g. 25"
		} else {
			ti.Placeholder = "e.g. 0.5"
		}
		ti.Focus()
		d.input = ti
	}
	return d
}

// Prompt returns the dialog prompt.
func (d *Dialog) Prompt() string { return d.field.dialog.Prompt() }

// Kind returns the kind of value collected.
func (d *Dialog) Kind() binding.InputKind { return d.field.dialog.Kind() }

// Value returns the text typed so far.
func (d *Dialog) Value() string { return d.input.Value() }

// Choices returns the entries of a choice dialog.
func (d *Dialog) Choices() []string {
	if c, ok := d.field.dialog.(binding.ChoiceDialog); ok {
		return c.Choices
	}
	return nil
}

// Cursor returns the highlighted choice.
func (d *Dialog) Cursor() int { return d.cursor }

// Err returns the last validation error.
func (d *Dialog) Err() error { return d.err }

// isText reports whether the dialog collects typed text.
func (d *Dialog) isText() bool {
	_, choice := d.field.dialog.(binding.ChoiceDialog)
	return !choice
}

// handleKey applies a key and reports whether the dialog closed, along with
// any command the text input wants run.
func (d *Dialog) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return true, nil
	case "enter":
		return d.submit(), nil
	}

	if !d.isText() {
		choices := d.Choices()
		if len(choices) == 0 {
			return false, nil
		}
		switch msg.String() {
		case "up", "k", "shift+tab":
			d.cursor = (d.cursor - 1 + len(choices)) % len(choices)
		case "down", "j", "tab":
			d.cursor = (d.cursor + 1) % len(choices)
		}
		return false, nil
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	d.err = nil
	return false, cmd
}

// update passes non-key messages, such as cursor blinks, to the text input.
func (d *Dialog) update(msg tea.Msg) tea.Cmd {
	if !d.isText() {
		return nil
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return cmd
}

// submit validates and commits. It reports whether the dialog closed.
func (d *Dialog) submit() bool {
	raw := strings.TrimSpace(d.input.Value())
	switch dlg := d.field.dialog.(type) {
	case binding.IntDialog:
		v, err := strconv.Atoi(raw)
		if err != nil {
			d.err = errNotInteger
			return false
		}
		dlg.Commit(v)
	case binding.FloatDialog:
		v, err := parseFinite(raw)
		if err != nil {
			d.err = err
			return false
		}
		dlg.Commit(v)
	case binding.ChoiceDialog:
		if len(dlg.Choices) == 0 {
			return true
		}
		dlg.Commit(d.cursor)
	}
	d.field.Update()
	return true
}

// parseFinite parses a float, rejecting NaN and infinities.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFloat
	}
	return v, nil
}
