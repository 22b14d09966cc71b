package sim

import (
	"errors"
	"testing"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(DefaultOptions())
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"temperature", m.TemperatureText(), "Current Temp: 20"},
		{"percent", m.PercentText(), "Percent: 0.00"},
		{"state", m.StateText(), "Current State: Disconnected"},
		{"mode", m.ModeText(), "Current Mode: Disabled"},
		{"color", m.ColorText(), "Color: R:500 G:500 B:500"},
		{"max temperature", m.MaxTemperatureText(), "Max Temperature: 30"},
		{"min temperature", m.MinTemperatureText(), "Min Temperature: 10"},
		{"max percent", m.MaxPercentText(), "Max Percent: 1.0"},
		{"min percent", m.MinPercentText(), "Min Percent: -1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if m.ModeValue() != 22 {
		t.Errorf("ModeValue() = %d, want 22", m.ModeValue())
	}
}

func TestNewModelRejectsBadOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Percent.Step = 0
	if _, err := NewModel(opts); !errors.Is(err, ErrZeroStep) {
		t.Errorf("NewModel() error = %v, want ErrZeroStep", err)
	}

	opts = DefaultOptions()
	opts.StatePeriod = 0
	if _, err := NewModel(opts); !errors.Is(err, ErrBadPeriod) {
		t.Errorf("NewModel() error = %v, want ErrBadPeriod", err)
	}
}

func TestSetMode(t *testing.T) {
	m := newTestModel(t)

	m.SetMode(ModeRun)
	if m.Mode() != ModeRun {
		t.Errorf("Mode() = %v, want Run", m.Mode())
	}
	if m.ModeValue() != 11 {
		t.Errorf("ModeValue() = %d, want 11", m.ModeValue())
	}

	m.SetMode(Mode{})
	if m.Mode() != ModeRun {
		t.Errorf("zero Mode was stored: Mode() = %v", m.Mode())
	}
}

func TestPeriodicTasksNeverTouchMode(t *testing.T) {
	m := newTestModel(t)
	m.SetMode(ModeTest)
	p := NewProcess(m)

	for i := 0; i < 50; i++ {
		p.Fast()
		p.Slow()
	}
	if m.Mode() != ModeTest {
		t.Errorf("Mode() = %v after periodic tasks, want Test", m.Mode())
	}
}

func TestLimitWritesDoNotClamp(t *testing.T) {
	m := newTestModel(t)

	m.SetMaxTemperature(12)
	m.SetMinTemperature(-4)
	m.SetMaxPercent(0.5)
	m.SetMinPercent(-0.25)

	if m.Temperature() != 20 {
		t.Errorf("Temperature() = %d, want 20", m.Temperature())
	}
	if got := m.MinPercentText(); got != "Min Percent: -0.25" {
		t.Errorf("MinPercentText() = %q", got)
	}
	if tmin, tmax := m.TemperatureLimits(); tmin != -4 || tmax != 12 {
		t.Errorf("TemperatureLimits() = %d, %d, want -4, 12", tmin, tmax)
	}
	if pmin, pmax := m.PercentLimits(); pmin != -0.25 || pmax != 0.5 {
		t.Errorf("PercentLimits() = %v, %v, want -0.25, 0.5", pmin, pmax)
	}
}

func TestColorChannelsFlipIndependently(t *testing.T) {
	c, err := NewColorTriple(3, 6, 9)
	if err != nil {
		t.Fatalf("NewColorTriple() error = %v", err)
	}

	// Channels reach the 999 ceiling after 167, 84 and 56 advances.
	flipAt := map[string]int{}
	channels := map[string]*Oscillator[int]{"red": c.Red, "green": c.Green, "blue": c.Blue}
	for call := 1; call <= 200; call++ {
		before := map[string]int{"red": c.Red.Step(), "green": c.Green.Step(), "blue": c.Blue.Step()}
		c.Advance()
		for name, o := range channels {
			if o.Step() != before[name] {
				if _, seen := flipAt[name]; !seen {
					flipAt[name] = call
				}
			}
		}
	}

	want := map[string]int{"red": 167, "green": 84, "blue": 56}
	for name, call := range want {
		if flipAt[name] != call {
			t.Errorf("%s first flipped at call %d, want %d", name, flipAt[name], call)
		}
	}
}

func TestColorClamped(t *testing.T) {
	c, _ := NewColorTriple(3, 6, 9)
	for i := 0; i < 56; i++ {
		c.Advance()
	}

	_, _, b := c.RGB()
	if b != 1004 {
		t.Fatalf("blue = %d, want 1004", b)
	}
	if _, _, cb := c.Clamped(); cb != ColorMax {
		t.Errorf("clamped blue = %d, want %d", cb, ColorMax)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{-1, "-1.0"},
		{0.5, "0.5"},
		{-0.25, "-0.25"},
		{100, "100.0"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestModeByName(t *testing.T) {
	if m, ok := ModeByName("Setup"); !ok || m != ModeSetup {
		t.Errorf("ModeByName(Setup) = %v, %v", m, ok)
	}
	if _, ok := ModeByName("Bogus"); ok {
		t.Error("ModeByName(Bogus) should not match")
	}
}
