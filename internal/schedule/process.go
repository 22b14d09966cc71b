package schedule

import (
	"time"

	"github.com/muurk/procdemo/internal/sim"
)

// Task names for the process update loops
const (
	FastTask = "fast"
	SlowTask = "slow"
)

// ProcessTasks returns the fast and slow update loops of p, fast first so
// that a tick where both are due runs fast before slow.
func ProcessTasks(p *sim.Process, fast, slow time.Duration) []Task {
	return []Task{
		{Name: FastTask, Interval: fast, Body: p.Fast},
		{Name: SlowTask, Interval: slow, Body: p.Slow},
	}
}
