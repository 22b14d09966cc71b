package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Output colors, shared with the interactive display
var (
	PrimaryColor = lipgloss.Color("#7D56F4")
	SuccessColor = lipgloss.Color("#43BF6D")
	ErrorColor   = lipgloss.Color("#FF5555")
	WarningColor = lipgloss.Color("#E5C07B")
	MutedColor   = lipgloss.Color("#626262")
	TextColor    = lipgloss.Color("#FFFFFF")
)

// Output width limits
const (
	MinTerminalWidth = 60
	MaxContentWidth  = 100
)

// Status markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
)

func fg(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

// Header styles
var (
	HeaderTitleStyle      = fg(TextColor).Bold(true).PaddingLeft(2)
	HeaderCommandStyle    = fg(MutedColor).PaddingLeft(2)
	HeaderParamKeyStyle   = fg(MutedColor).PaddingLeft(2)
	HeaderParamValueStyle = fg(TextColor)
)

// Tick line styles. TickChangedStyle marks a value that moved since the
// previous tick.
var (
	TickNumberStyle  = fg(PrimaryColor).Bold(true).Width(6)
	TickLabelStyle   = fg(MutedColor)
	TickValueStyle   = fg(TextColor)
	TickChangedStyle = fg(WarningColor).Bold(true)
)

// Result styles
var (
	SuccessTitleStyle = fg(SuccessColor).Bold(true)
	ErrorTitleStyle   = fg(ErrorColor).Bold(true)
	ErrorMessageStyle = fg(ErrorColor)
	ResultKeyStyle    = fg(MutedColor).Width(15)
	ResultValueStyle  = fg(TextColor)
	HintTitleStyle    = fg(MutedColor).Bold(true)
	HintItemStyle     = fg(MutedColor)
	MutedStyle        = fg(MutedColor)
)

// GetTerminalWidth returns the stdout width clamped to the supported range.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth
	}
	return min(max(width, MinTerminalWidth), MaxContentWidth)
}

// box is a full-width bordered style; width includes the border.
func box(border lipgloss.Border, color lipgloss.Color, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(color).
		Width(width - 2)
}

// HeaderBorderStyle frames a command header.
func HeaderBorderStyle(width int) lipgloss.Style {
	return box(lipgloss.RoundedBorder(), PrimaryColor, width)
}

// SuccessBoxStyle frames a success result.
func SuccessBoxStyle(width int) lipgloss.Style {
	return box(lipgloss.DoubleBorder(), SuccessColor, width).Padding(0, 2)
}

// ErrorBoxStyle frames a failure result.
func ErrorBoxStyle(width int) lipgloss.Style {
	return box(lipgloss.DoubleBorder(), ErrorColor, width).Padding(0, 2)
}

// WarningBoxStyle frames a confirmation prompt.
func WarningBoxStyle(width int) lipgloss.Style {
	return box(lipgloss.DoubleBorder(), WarningColor, width).Padding(0, 2)
}
