package tui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ErrColorUnsupported is returned by DefineColor when the terminal cannot
// show arbitrary RGB colors.
var ErrColorUnsupported = errors.New("terminal cannot redefine colors")

// Palette is the display's ColorService. Color numbers below the terminal's
// color count map to the basic palette until redefined; pairs combine a
// foreground and a background color.
type Palette struct {
	profile termenv.Profile
	custom  map[int]lipgloss.Color
	pairs   map[int][2]int
}

// NewPalette creates a palette for a terminal with the given profile.
func NewPalette(profile termenv.Profile) *Palette {
	return &Palette{
		profile: profile,
		custom:  make(map[int]lipgloss.Color),
		pairs:   make(map[int][2]int),
	}
}

// DetectPalette creates a palette for the terminal on stdout.
func DetectPalette() *Palette {
	return NewPalette(termenv.EnvColorProfile())
}

// Profile returns the terminal color profile.
func (p *Palette) Profile() termenv.Profile { return p.profile }

// Colors returns how many color numbers the terminal offers.
func (p *Palette) Colors() int {
	switch p.profile {
	case termenv.TrueColor, termenv.ANSI256:
		return 256
	case termenv.ANSI:
		return 16
	default:
		return 0
	}
}

// Pairs returns how many color pairs can be defined.
func (p *Palette) Pairs() int {
	if p.Colors() == 0 {
		return 0
	}
	return 64
}

// DefineColor sets color slot to an RGB value with channels on the 0-999
// scale. Only true color terminals accept it.
func (p *Palette) DefineColor(slot, r, g, b int) error {
	if p.profile != termenv.TrueColor {
		return ErrColorUnsupported
	}
	if slot < 0 || slot >= p.Colors() {
		return fmt.Errorf("color slot %d out of range", slot)
	}
	p.custom[slot] = lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", scaleChannel(r), scaleChannel(g), scaleChannel(b)))
	return nil
}

// DefinePair sets pair to the given foreground and background colors.
func (p *Palette) DefinePair(pair, fg, bg int) error {
	if pair < 0 || pair >= p.Pairs() {
		return fmt.Errorf("color pair %d out of range", pair)
	}
	for _, c := range []int{fg, bg} {
		if c < 0 || c >= p.Colors() {
			return fmt.Errorf("color %d out of range", c)
		}
	}
	p.pairs[pair] = [2]int{fg, bg}
	return nil
}

// Color returns the lipgloss color for a color number.
func (p *Palette) Color(n int) lipgloss.Color {
	if c, ok := p.custom[n]; ok {
		return c
	}
	return lipgloss.Color(strconv.Itoa(n))
}

// Style returns the style for a pair. Undefined pairs get no colors.
func (p *Palette) Style(pair int) lipgloss.Style {
	fb, ok := p.pairs[pair]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(p.Color(fb[0])).Background(p.Color(fb[1]))
}

// scaleChannel maps 0-999 onto 0-255.
func scaleChannel(v int) int {
	switch {
	case v <= 0:
		return 0
	case v >= 999:
		return 255
	}
	return v * 255 / 999
}
