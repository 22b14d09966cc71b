package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muurk/procdemo/internal/sim"
)

// RenderTick renders one line of headless simulation output. Values that
// changed since prev are highlighted; prev may be nil for the first line.
func RenderTick(tick int, snap sim.Snapshot, prev *sim.Snapshot) string {
	changed := func(f func(s sim.Snapshot) string) string {
		v := f(snap)
		if prev != nil && f(*prev) != v {
			return TickChangedStyle.Render(v)
		}
		return TickValueStyle.Render(v)
	}

	fields := []struct {
		label string
		value string
	}{
		{"temp", changed(func(s sim.Snapshot) string { return strconv.Itoa(s.Temperature) })},
		{"percent", changed(func(s sim.Snapshot) string { return fmt.Sprintf("%.2f", s.Percent) })},
		{"state", changed(func(s sim.Snapshot) string { return s.State })},
		{"mode", changed(func(s sim.Snapshot) string { return s.Mode })},
		{"color", changed(func(s sim.Snapshot) string {
			return fmt.Sprintf("%d/%d/%d", s.Red, s.Green, s.Blue)
		})},
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, TickLabelStyle.Render(f.label+" ")+f.value)
	}
	return TickNumberStyle.Render(strconv.Itoa(tick)) + strings.Join(parts, "  ")
}
