package sim

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// IntRange holds the starting values of an integer oscillator.
type IntRange struct {
	Current int
	Floor   int
	Ceiling int
	Step    int
}

// FloatRange holds the starting values of a float oscillator.
type FloatRange struct {
	Current float64
	Floor   float64
	Ceiling float64
	Step    float64
}

// Options configures a new Model.
type Options struct {
	Temperature IntRange
	Percent     FloatRange
	RedStep     int
	GreenStep   int
	BlueStep    int
	StatePeriod int
	Seed        int64
}

// DefaultOptions returns the stock simulation settings.
func DefaultOptions() Options {
	return Options{
		Temperature: IntRange{Current: 20, Floor: 10, Ceiling: 30, Step: 1},
		Percent:     FloatRange{Current: 0.0, Floor: -1.0, Ceiling: 1.0, Step: 0.1},
		RedStep:     3,
		GreenStep:   6,
		BlueStep:    9,
		StatePeriod: 5,
		Seed:        1,
	}
}

// Model owns every attribute of the simulated process. It performs no I/O.
type Model struct {
	temperature *Oscillator[int]
	percent     *Oscillator[float64]
	state       *Randomizer[State]
	mode        Mode
	colors      *ColorTriple
}

// NewModel builds a Model from opts.
func NewModel(opts Options) (*Model, error) {
	t := opts.Temperature
	temperature, err := NewIntOscillator(t.Current, t.Floor, t.Ceiling, t.Step)
	if err != nil {
		return nil, fmt.Errorf("temperature: %w", err)
	}

	p := opts.Percent
	percent, err := NewFloatOscillator(p.Current, p.Floor, p.Ceiling, p.Step)
	if err != nil {
		return nil, fmt.Errorf("percent: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	state, err := NewRandomizer(States(), StateDisconnected, opts.StatePeriod, rng)
	if err != nil {
		return nil, fmt.Errorf("state: %w", err)
	}

	colors, err := NewColorTriple(opts.RedStep, opts.GreenStep, opts.BlueStep)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}

	return &Model{
		temperature: temperature,
		percent:     percent,
		state:       state,
		mode:        ModeDisabled,
		colors:      colors,
	}, nil
}

// Periodic mutators. Only Process calls these.

// AdvanceTemperature steps the temperature oscillator.
func (m *Model) AdvanceTemperature() { m.temperature.Advance() }

// AdvancePercent steps the percent oscillator.
func (m *Model) AdvancePercent() { m.percent.Advance() }

// TickState counts down toward the next random state.
func (m *Model) TickState() bool { return m.state.Tick() }

// AdvanceColors steps all three color channels.
func (m *Model) AdvanceColors() { m.colors.Advance() }

// Formatted accessors used as display pull-callbacks.

// TemperatureText returns the current temperature line.
func (m *Model) TemperatureText() string {
	return fmt.Sprintf("Current Temp: %d", m.temperature.Current())
}

// PercentText returns the current percent line.
func (m *Model) PercentText() string {
	return fmt.Sprintf("Percent: %.2f", m.percent.Current())
}

// StateText returns the current state line.
func (m *Model) StateText() string {
	return fmt.Sprintf("Current State: %s", m.state.Current().Name())
}

// ModeText returns the current mode line.
func (m *Model) ModeText() string {
	return fmt.Sprintf("Current Mode: %s", m.mode.Name())
}

// ColorText returns the raw channel values.
func (m *Model) ColorText() string {
	r, g, b := m.colors.RGB()
	return fmt.Sprintf("Color: R:%d G:%d B:%d", r, g, b)
}

// MaxTemperatureText returns the temperature ceiling line.
func (m *Model) MaxTemperatureText() string {
	return fmt.Sprintf("Max Temperature: %d", m.temperature.Ceiling())
}

// MinTemperatureText returns the temperature floor line.
func (m *Model) MinTemperatureText() string {
	return fmt.Sprintf("Min Temperature: %d", m.temperature.Floor())
}

// MaxPercentText returns the percent ceiling line.
func (m *Model) MaxPercentText() string {
	return "Max Percent: " + FormatFloat(m.percent.Ceiling())
}

// MinPercentText returns the percent floor line.
func (m *Model) MinPercentText() string {
	return "Min Percent: " + FormatFloat(m.percent.Floor())
}

// Raw accessors

// Temperature returns the current temperature.
func (m *Model) Temperature() int { return m.temperature.Current() }

// Percent returns the current percent value.
func (m *Model) Percent() float64 { return m.percent.Current() }

// State returns the current discrete state.
func (m *Model) State() State { return m.state.Current() }

// StateCountdown returns the ticks left before the next state draw.
func (m *Model) StateCountdown() int { return m.state.Remaining() }

// Mode returns the selected mode.
func (m *Model) Mode() Mode { return m.mode }

// ModeValue returns the integer value of the selected mode.
func (m *Model) ModeValue() int { return m.mode.Value() }

// Colors returns the color triple.
func (m *Model) Colors() *ColorTriple { return m.colors }

// TemperatureLimits returns the temperature floor and ceiling.
func (m *Model) TemperatureLimits() (floor, ceiling int) {
	return m.temperature.Floor(), m.temperature.Ceiling()
}

// PercentLimits returns the percent floor and ceiling.
func (m *Model) PercentLimits() (floor, ceiling float64) {
	return m.percent.Floor(), m.percent.Ceiling()
}

// Write accessors. Values arrive already validated; limits never clamp the
// current value.

// SetMaxTemperature sets the temperature ceiling.
func (m *Model) SetMaxTemperature(v int) { m.temperature.SetCeiling(v) }

// SetMinTemperature sets the temperature floor.
func (m *Model) SetMinTemperature(v int) { m.temperature.SetFloor(v) }

// SetMaxPercent sets the percent ceiling.
func (m *Model) SetMaxPercent(v float64) { m.percent.SetCeiling(v) }

// SetMinPercent sets the percent floor.
func (m *Model) SetMinPercent(v float64) { m.percent.SetFloor(v) }

// SetMode selects a new mode. The zero Mode is ignored.
func (m *Model) SetMode(mode Mode) {
	if !mode.Valid() {
		return
	}
	m.mode = mode
}

// Snapshot is a point-in-time copy of every attribute.
type Snapshot struct {
	Temperature    int     `json:"temperature"`
	MinTemperature int     `json:"min_temperature"`
	MaxTemperature int     `json:"max_temperature"`
	Percent        float64 `json:"percent"`
	MinPercent     float64 `json:"min_percent"`
	MaxPercent     float64 `json:"max_percent"`
	State          string  `json:"state"`
	Mode           string  `json:"mode"`
	ModeValue      int     `json:"mode_value"`
	Red            int     `json:"red"`
	Green          int     `json:"green"`
	Blue           int     `json:"blue"`
}

// Snapshot copies the current attribute values.
func (m *Model) Snapshot() Snapshot {
	tmin, tmax := m.TemperatureLimits()
	pmin, pmax := m.PercentLimits()
	r, g, b := m.colors.RGB()
	return Snapshot{
		Temperature:    m.Temperature(),
		MinTemperature: tmin,
		MaxTemperature: tmax,
		Percent:        m.Percent(),
		MinPercent:     pmin,
		MaxPercent:     pmax,
		State:          m.State().Name(),
		Mode:           m.mode.Name(),
		ModeValue:      m.mode.Value(),
		Red:            r,
		Green:          g,
		Blue:           b,
	}
}

// FormatFloat renders v in its shortest form, always keeping at least one
// decimal place ("1.0", "-0.5", "0.25").
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
