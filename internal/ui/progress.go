package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress is a bar showing how many simulation ticks have run.
type Progress struct {
	Label   string // e.g., "Simulating"
	Current int
	Total   int
	Width   int
	bar     progress.Model
}

// NewProgress creates a progress bar for total ticks
func NewProgress(label string, total int) *Progress {
	p := &Progress{Label: label, Total: total}
	return p.SetWidth(GetTerminalWidth())
}

// SetWidth sets the terminal width for responsive rendering
func (p *Progress) SetWidth(width int) *Progress {
	p.Width = width
	// Leave room for the label, percentage and tick count
	barWidth := min(max(width-40, 20), 50)
	p.bar = progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(barWidth),
	)
	return p
}

// Advance moves the bar forward one tick
func (p *Progress) Advance() {
	if p.Current < p.Total {
		p.Current++
	}
}

// Percent returns the completed fraction (0.0 - 1.0)
func (p *Progress) Percent() float64 {
	if p.Total <= 0 {
		return 1
	}
	return float64(p.Current) / float64(p.Total)
}

// Render returns the styled progress line
func (p *Progress) Render() string {
	return lipgloss.NewStyle().
		PaddingLeft(2).
		Render(fmt.Sprintf("%s  %s  %3.0f%%  [%d/%d]",
			TickLabelStyle.Render(p.Label),
			p.bar.ViewAs(p.Percent()),
			p.Percent()*100,
			p.Current,
			p.Total))
}

// String implements fmt.Stringer
func (p *Progress) String() string {
	return p.Render()
}
