// Package schedule runs periodic tasks cooperatively on a single goroutine.
//
// A Task is a name, an interval and a body. Bodies never sleep or block; the
// only suspension point is the wait between runs, and the wait belongs to
// whichever runner drives the task:
//
//   - Loop re-arms each task with tea.Tick, so bodies run inside the Bubble
//     Tea Update call alongside key handling. Quitting the program discards
//     any pending ticks.
//   - Runner waits on a single timer in its own goroutine and stops when its
//     context is cancelled.
//   - Simulate runs tasks against a virtual clock, for tests and for
//     "procdemo simulate --instant".
//
// # Timing
//
// All three share the same ordering rule: a task is due at every multiple of
// its interval, and tasks due at the same instant run in the order they were
// given. A task first runs one interval after start, not at start. With the
// default process tasks (fast every second, slow every two):
//
//	t=1s  fast
//	t=2s  fast, slow
//	t=3s  fast
//	t=4s  fast, slow
//
// # Usage
//
// Interactive, inside a Bubble Tea model:
//
//	loop, err := schedule.NewLoop(schedule.ProcessTasks(proc, time.Second, 2*time.Second)...)
//	// Init:   return loop.Start()
//	// Update: case schedule.TickMsg: return m, loop.Handle(msg)
//
// Headless, until interrupted:
//
//	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
//	defer cancel()
//	runner, err := schedule.NewRunner(tasks...)
//	if err != nil {
//	    return err
//	}
//	return runner.Run(ctx)
//
// Instant:
//
//	runs, err := schedule.Simulate(tasks, 10*time.Second)
//	// runs[i] is how often tasks[i] ran
//
// # Errors
//
// Every runner validates its tasks first. An interval that is not positive
// wraps ErrBadInterval; an empty task list is ErrNoTasks. Duplicate names and
// missing bodies are rejected too.
package schedule
