package binding

import (
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/procdemo/internal/logging"
	"github.com/muurk/procdemo/internal/sim"
)

// MenuText is the static help shown in the Menu region.
const MenuText = "Press <Tab> to select next\n" +
	"<Enter> to go in selected\n" +
	"<Esc> to go back out\n" +
	"Ctrl-p adds a message\n" +
	"Arrows scroll messages\n" +
	"Resize at will\n" +
	"Ctrl-x to exit"

// Region sizes
const (
	PanelRows = 10
	PanelCols = 30
	PanelGap  = 2
)

// ErrNoProcess is returned when Build is called without a process.
var ErrNoProcess = errors.New("binding: no process to bind")

// Options tunes Build.
type Options struct {
	// Now supplies the wall-clock time for the Status region.
	Now func() time.Time

	// Rand picks the Ctrl-p messages.
	Rand *rand.Rand
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// Layout is the region tree created by Build.
type Layout struct {
	Menu     Region
	Status   Region
	Controls Region
	Messages Region

	// Fields by name: time, temperature, state, color, percent,
	// max_temperature, min_temperature, mode, max_percent, min_percent,
	// messages.
	Fields map[string]Field

	// ColorPair is the pair styling the color field, or -1 when the
	// display refused to define it.
	ColorPair int
}

// Build creates the demo regions on tk, binds every field to proc and
// installs the session key responses.
func Build(tk Toolkit, proc *sim.Process, opts Options) (*Layout, error) {
	if proc == nil {
		return nil, ErrNoProcess
	}
	opts = opts.withDefaults()
	m := proc.Model()
	root := tk.Root()

	l := &Layout{Fields: make(map[string]Field), ColorPair: -1}

	// Menu
	l.Menu = tk.NewRegion(root, Geometry{Rows: PanelRows, Cols: PanelCols, Top: 2, Left: 2}, "Menu")
	l.Menu.AddField(l.Menu.FirstRow(), l.Menu.CenterCol(), AlignCenter, func() string { return MenuText }).Update()
	l.Menu.SetSelectable(false)

	// Status
	l.Status = tk.NewRegion(root, Geometry{
		Rows: PanelRows,
		Cols: PanelCols,
		Top:  l.Menu.TopEdgeRow(),
		Left: l.Menu.RightEdgeCol() + PanelGap,
	}, "Status")

	row := l.Status.FirstRow()
	clock := l.place("time", l.Status, row, l.Status.CenterCol(), AlignCenter, func() string {
		return opts.Now().Format(time.ANSIC)
	})
	row += clock + 1

	col := l.Status.FirstCol()
	row += l.place("temperature", l.Status, row, col, AlignLeft, m.TemperatureText)
	row += l.place("state", l.Status, row, col, AlignLeft, m.StateText)

	l.setupColor(tk.Colors(), proc)
	colorField := l.Status.AddField(row, col, AlignLeft, m.ColorText)
	if l.ColorPair >= 0 {
		colorField.SetColorPair(l.ColorPair)
	}
	colorField.Update()
	l.Fields["color"] = colorField
	row += colorField.RequiredRows()

	l.place("percent", l.Status, row, col, AlignLeft, m.PercentText)

	// Controls
	l.Controls = tk.NewRegion(root, Geometry{
		Rows: PanelRows,
		Cols: PanelCols,
		Top:  l.Menu.TopEdgeRow(),
		Left: l.Status.RightEdgeCol() + PanelGap,
	}, "Controls")

	row = l.Controls.FirstRow()
	col = l.Controls.FirstCol()
	row += l.place("max_temperature", l.Controls, row, col, AlignLeft, m.MaxTemperatureText)
	row += l.place("min_temperature", l.Controls, row, col, AlignLeft, m.MinTemperatureText)
	row += l.place("mode", l.Controls, row, col, AlignLeft, m.ModeText)
	row += l.place("max_percent", l.Controls, row, col, AlignLeft, m.MaxPercentText)
	l.place("min_percent", l.Controls, row, col, AlignLeft, m.MinPercentText)

	l.Fields["max_temperature"].SetDialog(IntDialog{
		Text: "Enter the new maximum\ntemperature:",
		Commit: func(v int) {
			logging.LogCommit("max_temperature", v)
			m.SetMaxTemperature(v)
		},
	})
	l.Fields["min_temperature"].SetDialog(IntDialog{
		Text: "Enter the new minimum\ntemperature:",
		Commit: func(v int) {
			logging.LogCommit("min_temperature", v)
			m.SetMinTemperature(v)
		},
	})
	l.Fields["mode"].SetDialog(NewChoiceDialog("Select the new mode:", sim.Modes(), func(mode sim.Mode) {
		logging.LogCommit("mode", mode.Name())
		m.SetMode(mode)
	}))
	l.Fields["max_percent"].SetDialog(FloatDialog{
		Text: "Enter the new maximum\npercentage:",
		Commit: func(v float64) {
			logging.LogCommit("max_percent", v)
			m.SetMaxPercent(v)
		},
	})
	l.Fields["min_percent"].SetDialog(FloatDialog{
		Text: "Enter the new minimum\npercentage:",
		Commit: func(v float64) {
			logging.LogCommit("min_percent", v)
			m.SetMinPercent(v)
		},
	})

	// Messages fills the rest of the display below the panels.
	out := tk.Output()
	l.Messages = tk.NewPad(root, out.MaxLines(), root.LastCol()-2, Viewport{
		Top:    l.Menu.BottomEdgeRow() + 1,
		Left:   1,
		Bottom: root.LastRow(),
		Right:  root.LastCol(),
	}, "Messages")
	l.place("messages", l.Messages, 0, 0, AlignLeft, out.Read)

	if err := BindResponses(tk, l.Messages, opts.Rand); err != nil {
		return nil, err
	}
	return l, nil
}

// place adds a field, populates it and returns the rows it occupies.
func (l *Layout) place(name string, r Region, row, col int, align Align, pull PullFunc) int {
	f := r.AddField(row, col, align, pull)
	f.Update()
	l.Fields[name] = f
	return f.RequiredRows()
}

// setupColor reserves the last color slot and the last pair for the demo
// color. A display that cannot redefine colors keeps its defaults.
func (l *Layout) setupColor(cs ColorService, proc *sim.Process) {
	if cs == nil || cs.Colors() < 1 || cs.Pairs() < 1 {
		return
	}
	slot := cs.Colors() - 1
	proc.AttachColor(cs, slot)

	pair := cs.Pairs() - 1
	if err := cs.DefinePair(pair, ColorBlack, slot); err != nil {
		logging.Warn("Color pair not defined", zap.Int("pair", pair), zap.Error(err))
		return
	}
	l.ColorPair = pair
}
