package schedule

import (
	"context"
	"time"
)

// Runner drives tasks in real time without a display. All bodies run on the
// goroutine that called Run.
type Runner struct {
	tasks []Task
}

// NewRunner creates a Runner for tasks.
func NewRunner(tasks ...Task) (*Runner, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	if err := Validate(tasks); err != nil {
		return nil, err
	}
	return &Runner{tasks: tasks}, nil
}

// Run blocks, running tasks as they come due, until ctx is done. Pending
// waits are dropped on cancellation and Run returns nil.
func (r *Runner) Run(ctx context.Context) error {
	p := newPlan(r.tasks)
	start := time.Now()

	timer := time.NewTimer(p.next())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			p.runDue(time.Since(start))
			wait := p.next() - time.Since(start)
			if wait < 0 {
				wait = 0
			}
			timer.Reset(wait)
		}
	}
}

// Simulate runs tasks against a virtual clock from zero to elapsed and
// returns the number of runs per task, in task order.
func Simulate(tasks []Task, elapsed time.Duration) ([]int, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	if err := Validate(tasks); err != nil {
		return nil, err
	}
	p := newPlan(tasks)
	for p.next() <= elapsed {
		p.runDue(p.next())
	}
	return p.runs, nil
}
