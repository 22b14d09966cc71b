package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/procdemo/internal/version"
)

// DefaultTitle is shown in the header when no title is configured.
const DefaultTitle = "Process Demo"

// footerRows is the number of terminal rows below the display for help.
const footerRows = 1

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	HighlightColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF0000") // Red
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
)

// Common styles
var (
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	HeaderMutedStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	FooterStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Dialog box, centered over the display
	DialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 2)

	DialogPromptStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	DialogErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	ChoiceStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(TextColor)

	SelectedChoiceStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)
)

// regionBorder returns the border and its color for a region's state.
func regionBorder(selected, editing bool) (lipgloss.Border, lipgloss.Color) {
	switch {
	case editing:
		return lipgloss.ThickBorder(), PrimaryColor
	case selected:
		return lipgloss.RoundedBorder(), HighlightColor
	default:
		return lipgloss.RoundedBorder(), SubtleColor
	}
}

// ExpandedFieldStyle marks the field under the edit cursor.
func ExpandedFieldStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Background(lipgloss.Color("236")).
		Bold(true)
}

// BuildHeaderContent renders the title line shown above the regions.
func BuildHeaderContent(title string, width int) string {
	if title == "" {
		title = DefaultTitle
	}
	left := HeaderTitleStyle.Render(title)
	right := HeaderMutedStyle.Render("v" + version.Version)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		return " " + left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, " ", left, lipgloss.NewStyle().Width(gap).Render(""), right)
}

// RenderModal centers modal content over the display area.
func RenderModal(modalContent string, width, height int) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}
