package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/procdemo/internal/sim"
)

func TestHeaderRender(t *testing.T) {
	h := NewHeader("Simulation", "procdemo simulate",
		Param{Key: "Ticks", Value: "20"},
		Param{Key: "Format", Value: "text"},
	).SetWidth(80)

	out := h.Render()
	for _, want := range []string{"SIMULATION", "procdemo simulate", "Ticks:", "20", "Format:", "text"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Ticks") > strings.Index(out, "Format") {
		t.Error("params not rendered in order")
	}
}

func TestResultRender(t *testing.T) {
	ok := NewSuccessResult("Configuration written", Param{Key: "Path", Value: "/tmp/x.yaml"}).SetWidth(80).Render()
	if !strings.Contains(ok, "SUCCESS") || !strings.Contains(ok, "/tmp/x.yaml") {
		t.Errorf("success box = %q", ok)
	}

	failed := NewFailureResult("Load failed", errors.New("bad yaml"), "run procdemo config init").SetWidth(80).Render()
	for _, want := range []string{"FAILED", "Load failed", "bad yaml", "config init"} {
		if !strings.Contains(failed, want) {
			t.Errorf("failure box missing %q", want)
		}
	}
}

func TestRenderTick(t *testing.T) {
	m, err := sim.NewModel(sim.DefaultOptions())
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	first := m.Snapshot()
	line := RenderTick(1, first, nil)
	for _, want := range []string{"1", "temp 20", "percent 0.00", "state Disconnected", "mode Disabled", "color 500/500/500"} {
		if !strings.Contains(line, want) {
			t.Errorf("tick line missing %q: %q", want, line)
		}
	}

	m.AdvanceTemperature()
	line = RenderTick(2, m.Snapshot(), &first)
	if !strings.Contains(line, "temp 21") {
		t.Errorf("tick line = %q", line)
	}
}

func TestProgress(t *testing.T) {
	p := NewProgress("Simulating", 4)
	p.Advance()
	p.Advance()
	if p.Percent() != 0.5 {
		t.Errorf("Percent() = %v, want 0.5", p.Percent())
	}
	for i := 0; i < 5; i++ {
		p.Advance()
	}
	if p.Current != 4 {
		t.Errorf("Current = %d, want capped at 4", p.Current)
	}
	if out := p.Render(); !strings.Contains(out, "[4/4]") || !strings.Contains(out, "100%") {
		t.Errorf("Render() = %q", out)
	}
	if NewProgress("none", 0).Percent() != 1 {
		t.Error("empty progress should be complete")
	}
}

func TestConfirmOverwrite(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"  yes  \n", true},
		{"yes", true},
		{"no\n", false},
		{"YES\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got := ConfirmOverwrite(strings.NewReader(tt.input), &out, "/etc/procdemo/config.yaml")
		if got != tt.want {
			t.Errorf("ConfirmOverwrite(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "/etc/procdemo/config.yaml") {
			t.Errorf("prompt does not name the file")
		}
	}
}

func TestPrinterJSON(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)
	if err := p.PrintJSON(map[string]int{"tick": 3}); err != nil {
		t.Fatalf("PrintJSON() error = %v", err)
	}
	if got := out.String(); got != "{\"tick\":3}\n" {
		t.Errorf("PrintJSON() wrote %q", got)
	}
}
