package sim

import (
	"errors"
	"math/rand"
)

var (
	// ErrEmptyChoices is returned when a Randomizer has nothing to draw from.
	ErrEmptyChoices = errors.New("randomizer needs at least one choice")

	// ErrBadPeriod is returned for a reselection period below one tick.
	ErrBadPeriod = errors.New("randomizer period must be at least 1")
)

// Randomizer holds one member of a fixed set and re-draws it uniformly every
// period ticks. A re-draw may return the value it already had.
type Randomizer[T any] struct {
	choices []T
	current T
	period  int
	count   int
	rng     *rand.Rand
}

// NewRandomizer creates a Randomizer starting at initial. The countdown starts
// at period.
func NewRandomizer[T any](choices []T, initial T, period int, rng *rand.Rand) (*Randomizer[T], error) {
	if len(choices) == 0 {
		return nil, ErrEmptyChoices
	}
	if period < 1 {
		return nil, ErrBadPeriod
	}
	return &Randomizer[T]{
		choices: append([]T(nil), choices...),
		current: initial,
		period:  period,
		count:   period,
		rng:     rng,
	}, nil
}

// Tick decrements the countdown. When it runs out the countdown is reset and a
// new value is drawn; Tick then reports true.
func (r *Randomizer[T]) Tick() bool {
	r.count--
	if r.count > 0 {
		return false
	}
	r.count = r.period
	r.current = r.choices[r.rng.Intn(len(r.choices))]
	return true
}

// Current returns the held value.
func (r *Randomizer[T]) Current() T { return r.current }

// Remaining returns the ticks left before the next re-draw.
func (r *Randomizer[T]) Remaining() int { return r.count }

// Period returns the configured reselection period.
func (r *Randomizer[T]) Period() int { return r.period }
