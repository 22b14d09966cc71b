package sim

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrZeroStep is returned when an oscillator is created with a zero step.
	ErrZeroStep = errors.New("oscillator step must be non-zero")

	// ErrStepTooFine is returned for a float step that is not a whole
	// multiple of the 1e-9 snapping grid. Snapping would round such a step
	// away or make the value drift.
	ErrStepTooFine = errors.New("float oscillator step must be a multiple of 1e-9")
)

// floatPrecision is the grid float oscillators snap to after every step.
const floatPrecision = 1e9

// Number is the set of scalar types an Oscillator can drive.
type Number interface {
	~int | ~float64
}

// Oscillator drives one scalar value back and forth between a floor and a
// ceiling. The sign of the step is the direction of travel.
type Oscillator[T Number] struct {
	current T
	floor   T
	ceiling T
	step    T
	snap    func(T) T
}

// NewIntOscillator creates an integer oscillator.
func NewIntOscillator(current, floor, ceiling, step int) (*Oscillator[int], error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	return &Oscillator[int]{
		current: current,
		floor:   floor,
		ceiling: ceiling,
		step:    step,
	}, nil
}

// NewFloatOscillator creates a floating point oscillator. The current value is
// snapped to a 1e-9 grid after each step so decimal steps such as 0.1 land
// exactly on decimal bounds.
func NewFloatOscillator(current, floor, ceiling, step float64) (*Oscillator[float64], error) {
	if err := ValidateFloatStep(step); err != nil {
		return nil, err
	}
	return &Oscillator[float64]{
		current: current,
		floor:   floor,
		ceiling: ceiling,
		step:    step,
		snap:    snapFloat,
	}, nil
}

// ValidateFloatStep reports whether step can drive a float oscillator.
func ValidateFloatStep(step float64) error {
	if step == 0 {
		return ErrZeroStep
	}
	if math.IsNaN(step) || math.IsInf(step, 0) {
		return fmt.Errorf("float oscillator step must be finite, got %v", step)
	}
	scaled := step * floatPrecision
	whole := math.Round(scaled)
	if whole == 0 || math.Abs(scaled-whole) > 1e-6*math.Max(1, math.Abs(whole)) {
		return fmt.Errorf("%w: got %v", ErrStepTooFine, step)
	}
	return nil
}

func snapFloat(v float64) float64 {
	return math.Round(v*floatPrecision) / floatPrecision
}

// Advance moves the value one step and reverses direction when the new value
// is at or past either bound. No clamping happens.
func (o *Oscillator[T]) Advance() {
	o.current += o.step
	if o.snap != nil {
		o.current = o.snap(o.current)
	}
	if o.current >= o.ceiling || o.current <= o.floor {
		o.step = -o.step
	}
}

// Current returns the current value.
func (o *Oscillator[T]) Current() T { return o.current }

// Floor returns the lower bound.
func (o *Oscillator[T]) Floor() T { return o.floor }

// Ceiling returns the upper bound.
func (o *Oscillator[T]) Ceiling() T { return o.ceiling }

// Step returns the signed step applied by the next Advance.
func (o *Oscillator[T]) Step() T { return o.step }

// SetFloor changes the lower bound. The current value is left alone.
func (o *Oscillator[T]) SetFloor(v T) { o.floor = v }

// SetCeiling changes the upper bound. The current value is left alone.
func (o *Oscillator[T]) SetCeiling(v T) { o.ceiling = v }
