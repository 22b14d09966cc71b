package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/muurk/procdemo/internal/logging"
)

var (
	// ErrBadInterval is returned for a task whose interval is not positive.
	ErrBadInterval = errors.New("task interval must be positive")

	// ErrNoTasks is returned when a runner is given nothing to run.
	ErrNoTasks = errors.New("no tasks to run")
)

// Task is one periodic update loop.
type Task struct {
	Name     string
	Interval time.Duration
	Body     func()
}

// Validate checks every task has a positive interval, a body and a unique name.
func Validate(tasks []Task) error {
	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if t.Interval <= 0 {
			return fmt.Errorf("task %q: %w", t.Name, ErrBadInterval)
		}
		if t.Body == nil {
			return fmt.Errorf("task %q has no body", t.Name)
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate task name %q", t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}

// plan tracks when each task is next due, measured from a common origin.
// A task first runs one interval after the origin, never at the origin.
type plan struct {
	tasks []Task
	due   []time.Duration
	runs  []int
}

func newPlan(tasks []Task) *plan {
	p := &plan{
		tasks: tasks,
		due:   make([]time.Duration, len(tasks)),
		runs:  make([]int, len(tasks)),
	}
	for i, t := range tasks {
		p.due[i] = t.Interval
	}
	return p
}

// next returns the earliest due time across all tasks.
func (p *plan) next() time.Duration {
	earliest := p.due[0]
	for _, d := range p.due[1:] {
		if d < earliest {
			earliest = d
		}
	}
	return earliest
}

// runDue runs every task due at or before now, in task order, and returns how
// many bodies ran.
func (p *plan) runDue(now time.Duration) int {
	ran := 0
	for i, t := range p.tasks {
		for p.due[i] <= now {
			t.Body()
			p.runs[i]++
			logging.LogTask(t.Name, p.runs[i])
			p.due[i] += t.Interval
			ran++
		}
	}
	return ran
}
