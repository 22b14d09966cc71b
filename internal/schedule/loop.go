package schedule

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/procdemo/internal/logging"
)

// TickMsg is delivered to the Bubble Tea program when a task is due.
type TickMsg struct {
	Task string
	At   time.Time
}

// Loop drives tasks from inside a Bubble Tea program. The program's Update
// passes every TickMsg to Handle, which runs the body and re-arms the task.
type Loop struct {
	tasks map[string]Task
	order []string
	runs  map[string]int
}

// NewLoop creates a Loop for tasks.
func NewLoop(tasks ...Task) (*Loop, error) {
	if err := Validate(tasks); err != nil {
		return nil, err
	}
	l := &Loop{
		tasks: make(map[string]Task, len(tasks)),
		runs:  make(map[string]int, len(tasks)),
	}
	for _, t := range tasks {
		l.tasks[t.Name] = t
		l.order = append(l.order, t.Name)
	}
	return l, nil
}

// Start arms every task. Return it from the program's Init.
func (l *Loop) Start() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(l.order))
	for _, name := range l.order {
		cmds = append(cmds, arm(l.tasks[name]))
	}
	return tea.Batch(cmds...)
}

// Handle runs the task named by msg and returns the command that schedules
// its next run. Unknown task names return nil.
func (l *Loop) Handle(msg TickMsg) tea.Cmd {
	t, ok := l.tasks[msg.Task]
	if !ok {
		return nil
	}
	t.Body()
	l.runs[t.Name]++
	logging.LogTask(t.Name, l.runs[t.Name])
	return arm(t)
}

// Runs returns how many times the named task has run.
func (l *Loop) Runs(name string) int {
	return l.runs[name]
}

func arm(t Task) tea.Cmd {
	name := t.Name
	return tea.Tick(t.Interval, func(at time.Time) tea.Msg {
		return TickMsg{Task: name, At: at}
	})
}
