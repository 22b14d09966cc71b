package sim

// Color channel range. Channels use the 0-999 scale of terminal color
// definitions.
const (
	ColorMin  = 0
	ColorMax  = 999
	ColorSeed = 500
)

// ColorTriple is three independent channel oscillators.
type ColorTriple struct {
	Red   *Oscillator[int]
	Green *Oscillator[int]
	Blue  *Oscillator[int]
}

// NewColorTriple seeds every channel at ColorSeed with the given steps.
func NewColorTriple(redStep, greenStep, blueStep int) (*ColorTriple, error) {
	red, err := NewIntOscillator(ColorSeed, ColorMin, ColorMax, redStep)
	if err != nil {
		return nil, err
	}
	green, err := NewIntOscillator(ColorSeed, ColorMin, ColorMax, greenStep)
	if err != nil {
		return nil, err
	}
	blue, err := NewIntOscillator(ColorSeed, ColorMin, ColorMax, blueStep)
	if err != nil {
		return nil, err
	}
	return &ColorTriple{Red: red, Green: green, Blue: blue}, nil
}

// Advance steps all three channels.
func (c *ColorTriple) Advance() {
	c.Red.Advance()
	c.Green.Advance()
	c.Blue.Advance()
}

// RGB returns the raw channel values, which may sit slightly outside
// [ColorMin, ColorMax].
func (c *ColorTriple) RGB() (r, g, b int) {
	return c.Red.Current(), c.Green.Current(), c.Blue.Current()
}

// Clamped returns the channel values limited to [ColorMin, ColorMax].
func (c *ColorTriple) Clamped() (r, g, b int) {
	r, g, b = c.RGB()
	return clampChannel(r), clampChannel(g), clampChannel(b)
}

func clampChannel(v int) int {
	return min(ColorMax, max(v, ColorMin))
}
