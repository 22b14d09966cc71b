package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/muurk/procdemo/internal/binding"
	"github.com/muurk/procdemo/internal/sim"
)

func newTestDisplay(t *testing.T) (*Display, *sim.Model) {
	t.Helper()
	m, err := sim.NewModel(sim.DefaultOptions())
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	d := NewDisplay(120, 40, NewOutputBuffer(100), NewPalette(termenv.TrueColor))
	if _, err := binding.Build(d, sim.NewProcess(m), binding.Options{Rand: rand.New(rand.NewSource(3))}); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return d, m
}

func press(d *Display, keys ...tea.KeyType) {
	for _, k := range keys {
		d.HandleKey(tea.KeyMsg{Type: k})
	}
}

func typeText(d *Display, s string) {
	d.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestDisplaySelection(t *testing.T) {
	d, _ := newTestDisplay(t)

	if d.Selected() != nil {
		t.Fatal("nothing should be selected at start")
	}

	want := []string{"Status", "Controls", "Messages", "Status"}
	for _, title := range want {
		press(d, tea.KeyTab)
		if got := d.Selected().Title(); got != title {
			t.Errorf("selected = %q, want %q", got, title)
		}
	}

	// Status has nothing to edit
	press(d, tea.KeyEnter)
	if d.Editing() {
		t.Error("Enter on Status should not start editing")
	}
}

func TestDisplayEditInteger(t *testing.T) {
	d, m := newTestDisplay(t)

	press(d, tea.KeyTab, tea.KeyTab, tea.KeyEnter)
	if !d.Editing() {
		t.Fatal("Enter on Controls should start editing")
	}
	if got := d.CurrentField().Text(); got != "Max Temperature: 30" {
		t.Errorf("current field = %q", got)
	}

	press(d, tea.KeyEnter)
	if d.Dialog() == nil {
		t.Fatal("Enter on an editable field should open its dialog")
	}

	typeText(d, "abc")
	press(d, tea.KeyEnter)
	if d.Dialog() == nil || d.Dialog().Err() == nil {
		t.Fatal("invalid integer should keep the dialog open with an error")
	}
	if _, ceiling := m.TemperatureLimits(); ceiling != 30 {
		t.Errorf("ceiling = %d after rejected input, want 30", ceiling)
	}

	for range "abc" {
		press(d, tea.KeyBackspace)
	}
	typeText(d, "45")
	if d.Dialog().Err() != nil {
		t.Error("typing should clear the error")
	}
	press(d, tea.KeyEnter)
	if d.Dialog() != nil {
		t.Fatal("valid input should close the dialog")
	}
	if _, ceiling := m.TemperatureLimits(); ceiling != 45 {
		t.Errorf("ceiling = %d, want 45", ceiling)
	}
	if got := d.CurrentField().Text(); got != "Max Temperature: 45" {
		t.Errorf("field after commit = %q", got)
	}

	press(d, tea.KeyEsc)
	if d.Editing() {
		t.Error("Esc should leave the region")
	}
}

func TestDisplayEditFloat(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2.5", false},
		{"-3", false},
		{"NaN", true},
		{"inf", true},
		{"-Inf", true},
		{"", true},
		{"1.2.3", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, m := newTestDisplay(t)
			// Controls, enter, Tab x3 reaches max percent
			press(d, tea.KeyTab, tea.KeyTab, tea.KeyEnter, tea.KeyTab, tea.KeyTab, tea.KeyTab, tea.KeyEnter)
			if d.Dialog() == nil || d.Dialog().Kind() != binding.KindFloat {
				t.Fatal("float dialog not open")
			}
			if tt.input != "" {
				typeText(d, tt.input)
			}
			press(d, tea.KeyEnter)

			_, ceiling := m.PercentLimits()
			if tt.wantErr {
				if d.Dialog() == nil {
					t.Error("dialog closed on invalid input")
				}
				if ceiling != 1.0 {
					t.Errorf("ceiling = %v, want unchanged 1.0", ceiling)
				}
				return
			}
			if d.Dialog() != nil {
				t.Errorf("dialog still open: %v", d.Dialog().Err())
			}
			var want float64
			fmt.Sscan(tt.input, &want)
			if ceiling != want {
				t.Errorf("ceiling = %v, want %v", ceiling, want)
			}
		})
	}
}

func TestDisplayEditChoice(t *testing.T) {
	d, m := newTestDisplay(t)

	press(d, tea.KeyTab, tea.KeyTab, tea.KeyEnter, tea.KeyTab, tea.KeyTab, tea.KeyEnter)
	dlg := d.Dialog()
	if dlg == nil || dlg.Kind() != binding.KindChoice {
		t.Fatal("choice dialog not open")
	}
	if dlg.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0 (current mode)", dlg.Cursor())
	}

	press(d, tea.KeyDown, tea.KeyDown, tea.KeyUp, tea.KeyEnter)
	if got := m.Mode(); got != sim.Modes()[1] {
		t.Errorf("Mode() = %v, want %v", got, sim.Modes()[1])
	}

	// Esc cancels without committing
	press(d, tea.KeyEnter, tea.KeyDown, tea.KeyEsc)
	if d.Dialog() != nil {
		t.Error("Esc should close the dialog")
	}
	if got := m.Mode(); got != sim.Modes()[1] {
		t.Errorf("Mode() = %v after cancel, want %v", got, sim.Modes()[1])
	}
}

func TestDisplaySessionKeys(t *testing.T) {
	d, _ := newTestDisplay(t)

	press(d, tea.KeyCtrlP)
	if lines := d.Buffer().Lines(); len(lines) != 1 || !strings.HasPrefix(lines[0], "Msg: ") {
		t.Errorf("output after ctrl+p = %q", lines)
	}

	for i := 0; i < 60; i++ {
		fmt.Fprintf(d.Buffer(), "line %d\n", i)
	}
	var msgs *Region
	for _, r := range d.Regions() {
		if r.Title() == "Messages" {
			msgs = r
		}
	}
	if msgs == nil {
		t.Fatal("Messages region missing")
	}

	press(d, tea.KeyDown, tea.KeyDown, tea.KeyUp)
	if y, _ := msgs.ScrollOffset(); y != 1 {
		t.Errorf("vertical offset = %d, want 1", y)
	}
	// The pad is as wide as the display it was built for
	press(d, tea.KeyRight)
	if _, x := msgs.ScrollOffset(); x != 0 {
		t.Errorf("horizontal offset = %d, want 0", x)
	}
	d.Resize(80, 40)
	press(d, tea.KeyRight, tea.KeyRight, tea.KeyLeft)
	if _, x := msgs.ScrollOffset(); x != 1 {
		t.Errorf("horizontal offset after shrinking = %d, want 1", x)
	}

	// Arrows reach the messages while another region is being edited
	press(d, tea.KeyTab, tea.KeyTab, tea.KeyEnter, tea.KeyDown)
	if y, _ := msgs.ScrollOffset(); y != 2 {
		t.Errorf("vertical offset while editing = %d, want 2", y)
	}

	press(d, tea.KeyCtrlX)
	if !d.Quitting() {
		t.Error("ctrl+x should quit")
	}
}

func TestDisplayRegionKeysTakePrecedence(t *testing.T) {
	d, _ := newTestDisplay(t)

	var status *Region
	for _, r := range d.Regions() {
		if r.Title() == "Status" {
			status = r
		}
	}
	hits := 0
	if err := status.AddKey(binding.Binding{Name: "local", Keys: []binding.Key{binding.KeyCtrlP}}, func(binding.Key) { hits++ }); err != nil {
		t.Fatalf("AddKey() error = %v", err)
	}

	press(d, tea.KeyCtrlP)
	if hits != 0 || len(d.Buffer().Lines()) != 1 {
		t.Errorf("unselected region handled key: hits=%d", hits)
	}

	press(d, tea.KeyTab, tea.KeyCtrlP)
	if hits != 1 || len(d.Buffer().Lines()) != 1 {
		t.Errorf("selected region should win: hits=%d lines=%d", hits, len(d.Buffer().Lines()))
	}
}

func TestDisplayResize(t *testing.T) {
	d, _ := newTestDisplay(t)
	var msgs *Region
	for _, r := range d.Regions() {
		if r.Title() == "Messages" {
			msgs = r
		}
	}
	before := msgs.Geometry()

	d.Resize(160, 50)
	after := msgs.Geometry()
	if after.Rows != before.Rows+10 {
		t.Errorf("pad rows = %d, want %d", after.Rows, before.Rows+10)
	}
	if after.Cols != before.Cols+40 {
		t.Errorf("pad cols = %d, want %d", after.Cols, before.Cols+40)
	}
	if after.Top != before.Top || after.Left != before.Left {
		t.Errorf("pad moved from %+v to %+v", before, after)
	}
}

func TestDisplayRender(t *testing.T) {
	d, _ := newTestDisplay(t)
	fmt.Fprintln(d.Buffer(), "Msg: Hello, world.")

	out := d.Render("Process Demo")
	lines := strings.Split(out, "\n")
	if len(lines) != 39 {
		t.Errorf("rendered %d lines, want 39", len(lines))
	}
	for _, want := range []string{
		"Process Demo",
		"Menu", "Status", "Controls", "Messages",
		"Ctrl-x to exit",
		"Current Temp: 20",
		"Current Mode: Disabled",
		"Min Percent: -1.0",
		"Msg: Hello, world.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	press(d, tea.KeyTab, tea.KeyTab, tea.KeyEnter, tea.KeyEnter)
	out = d.Render("Process Demo")
	if !strings.Contains(out, "Enter the new maximum") {
		t.Error("dialog prompt not rendered")
	}
}
