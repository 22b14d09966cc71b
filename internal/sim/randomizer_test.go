package sim

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewRandomizerValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := NewRandomizer([]int{}, 0, 5, rng); !errors.Is(err, ErrEmptyChoices) {
		t.Errorf("empty choices error = %v, want ErrEmptyChoices", err)
	}
	if _, err := NewRandomizer([]int{1}, 1, 0, rng); !errors.Is(err, ErrBadPeriod) {
		t.Errorf("zero period error = %v, want ErrBadPeriod", err)
	}
}

func TestRandomizerPeriod(t *testing.T) {
	r, err := NewRandomizer(States(), StateDisconnected, 5, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewRandomizer() error = %v", err)
	}

	for call := 1; call <= 4; call++ {
		if r.Tick() {
			t.Fatalf("call %d reselected, want no reselection before call 5", call)
		}
		if r.Current() != StateDisconnected {
			t.Fatalf("call %d changed state to %v", call, r.Current())
		}
	}

	if !r.Tick() {
		t.Fatal("call 5 did not reselect")
	}
	if r.Remaining() != 5 {
		t.Errorf("Remaining() = %d after reselection, want 5", r.Remaining())
	}
}

func TestRandomizerExactlyOneDrawPerPeriod(t *testing.T) {
	r, _ := NewRandomizer([]string{"a", "b", "c"}, "a", 3, rand.New(rand.NewSource(42)))

	draws := 0
	for call := 1; call <= 99; call++ {
		if r.Tick() {
			draws++
			if call%3 != 0 {
				t.Errorf("reselection at call %d, want multiples of 3 only", call)
			}
		}
	}
	if draws != 33 {
		t.Errorf("draws = %d, want 33", draws)
	}
}

func TestRandomizerDrawsFromFullSet(t *testing.T) {
	r, _ := NewRandomizer(States(), StateDisconnected, 1, rand.New(rand.NewSource(3)))

	seen := make(map[State]bool)
	for i := 0; i < 500; i++ {
		r.Tick()
		seen[r.Current()] = true
	}
	for _, s := range States() {
		if !seen[s] {
			t.Errorf("state %v never drawn in 500 draws", s)
		}
	}
}
