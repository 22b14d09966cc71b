package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/procdemo/internal/binding"
	"github.com/muurk/procdemo/internal/schedule"
)

// RefreshInterval is how often the screen redraws when nothing else
// happens, so pulled fields such as the clock stay current.
const RefreshInterval = time.Second

type refreshMsg time.Time

// keyMap adapts binding.Binding values to the help bubble.
type keyMap []key.Binding

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding { return k }

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

var (
	editKeys = keyMap{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
	dialogKeys = keyMap{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
)

// App is the Bubble Tea model for an interactive session. The update loop
// is the only goroutine that touches the display and the process.
type App struct {
	display *Display
	loop    *schedule.Loop
	help    help.Model
	title   string
}

// NewApp creates the session model. loop may be nil for a static display.
func NewApp(d *Display, loop *schedule.Loop, title string) *App {
	h := help.New()
	h.Width, _ = d.Size()
	return &App{
		display: d,
		loop:    loop,
		help:    h,
		title:   title,
	}
}

// Display returns the display the app drives.
func (a *App) Display() *Display { return a.display }

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{refresh()}
	if a.loop != nil {
		cmds = append(cmds, a.loop.Start())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.display.Resize(msg.Width, msg.Height)
		a.help.Width = msg.Width
		return a, nil

	case schedule.TickMsg:
		if a.loop == nil {
			return a, nil
		}
		return a, a.loop.Handle(msg)

	case refreshMsg:
		return a, refresh()

	case tea.KeyMsg:
		var cmd tea.Cmd
		if msg.String() == "ctrl+c" {
			a.display.Quit()
		} else {
			_, cmd = a.display.HandleKey(msg)
		}
		if a.display.Quitting() {
			return a, tea.Quit
		}
		return a, cmd
	}
	return a, a.display.UpdateDialog(msg)
}

// View implements tea.Model
func (a *App) View() string {
	if a.display.Quitting() {
		return ""
	}
	return a.display.Render(a.title) + "\n" + FooterStyle.Render(a.help.View(a.keys()))
}

func (a *App) keys() keyMap {
	switch {
	case a.display.Dialog() != nil:
		return dialogKeys
	case a.display.Editing():
		return editKeys
	}
	var km keyMap
	for _, b := range a.display.Bindings() {
		keys := make([]string, len(b.Keys))
		for i, k := range b.Keys {
			keys[i] = string(k)
		}
		km = append(km, key.NewBinding(key.WithKeys(keys...), key.WithHelp(b.HelpKeys(), b.Help)))
	}
	return km
}

func refresh() tea.Cmd {
	return tea.Tick(RefreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

var _ binding.Toolkit = (*Display)(nil)
