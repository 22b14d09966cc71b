package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render draws the display area: the header line, then every region.
// Regions sharing a top row are drawn side by side. The result is exactly
// the root region's size.
func (d *Display) Render(title string) string {
	rows, cols := d.root.geom.Rows, d.root.geom.Cols

	if d.dialog != nil {
		return RenderModal(d.renderDialog(), cols, rows)
	}

	lines := make([]string, rows)
	lines[0] = BuildHeaderContent(title, cols)

	bands := make(map[int][]*Region)
	var tops []int
	for _, r := range d.regions {
		if _, ok := bands[r.geom.Top]; !ok {
			tops = append(tops, r.geom.Top)
		}
		bands[r.geom.Top] = append(bands[r.geom.Top], r)
	}
	sort.Ints(tops)

	for _, top := range tops {
		band := bands[top]
		sort.SliceStable(band, func(i, j int) bool { return band[i].geom.Left < band[j].geom.Left })

		var parts []string
		col := 0
		for _, r := range band {
			if gap := r.geom.Left - col; gap > 0 {
				parts = append(parts, strings.Repeat(" ", gap))
			}
			parts = append(parts, d.renderRegion(r))
			col = r.geom.Left + r.geom.Cols
		}
		block := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		for i, line := range strings.Split(block, "\n") {
			if row := top + i; row >= 0 && row < rows {
				lines[row] = line
			}
		}
	}

	return lipgloss.NewStyle().MaxWidth(cols).Render(strings.Join(lines, "\n"))
}

func (d *Display) renderRegion(r *Region) string {
	selected := d.Selected() == r
	border, color := regionBorder(selected, selected && d.editing)
	inner := r.innerCols()

	var body []string
	if r.pad {
		r.refreshPad()
		body = strings.Split(r.vp.View(), "\n")
	} else {
		body = d.renderFields(r)
	}
	for len(body) < r.innerRows() {
		body = append(body, "")
	}
	body = body[:r.innerRows()]
	for i, line := range body {
		if w := lipgloss.Width(line); w < inner {
			body[i] = line + strings.Repeat(" ", inner-w)
		}
	}

	title := " " + r.title + " "
	fill := inner - lipgloss.Width(title) - 1
	if fill < 0 {
		title, fill = "", inner-1
	}
	edge := lipgloss.NewStyle().Foreground(color)
	top := edge.Render(border.TopLeft + strings.Repeat(border.Top, min(inner, 1)) + title + strings.Repeat(border.Top, max(fill, 0)) + border.TopRight)

	box := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		BorderForeground(color).
		Render(strings.Join(body, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, top, box)
}

type segment struct {
	start int
	text  string
	style lipgloss.Style
}

// renderFields pulls every field and lays its lines out on the region's
// interior rows.
func (d *Display) renderFields(r *Region) []string {
	rows := make([][]segment, r.innerRows())
	current := d.CurrentField()
	for _, f := range r.fields {
		f.Update()
		style := lipgloss.NewStyle()
		switch {
		case f == current:
			style = ExpandedFieldStyle()
		case f.pair >= 0:
			style = d.palette.Style(f.pair)
		}
		for i, line := range f.lines() {
			row := f.row - r.border + i
			if row < 0 || row >= len(rows) {
				continue
			}
			width := len([]rune(line))
			rows[row] = append(rows[row], segment{
				start: f.start(width) - r.border,
				text:  line,
				style: style,
			})
		}
	}

	inner := r.innerCols()
	out := make([]string, len(rows))
	for i, segs := range rows {
		sort.SliceStable(segs, func(a, b int) bool { return segs[a].start < segs[b].start })
		var b strings.Builder
		col := 0
		for _, s := range segs {
			text := s.text
			start := s.start
			if start < col {
				text = sliceRunes(text, col-start, len([]rune(text)))
				start = col
			}
			text = clipRunes(text, inner-start)
			if text == "" {
				continue
			}
			b.WriteString(strings.Repeat(" ", start-col))
			b.WriteString(s.style.Render(text))
			col = start + len([]rune(text))
		}
		out[i] = b.String()
	}
	return out
}

func (d *Display) renderDialog() string {
	dlg := d.dialog
	lines := []string{DialogPromptStyle.Render(dlg.Prompt()), ""}
	if choices := dlg.Choices(); choices != nil {
		for i, name := range choices {
			if i == dlg.Cursor() {
				lines = append(lines, SelectedChoiceStyle.Render("→ "+name))
			} else {
				lines = append(lines, ChoiceStyle.Render(name))
			}
		}
	} else {
		lines = append(lines, dlg.input.View())
	}
	if err := dlg.Err(); err != nil {
		lines = append(lines, "", DialogErrorStyle.Render("✗ "+err.Error()))
	}
	return DialogBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
