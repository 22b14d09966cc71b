package binding

import (
	"errors"
	"strings"
)

type fakeField struct {
	row, col int
	align    Align
	pull     PullFunc
	text     string
	dialog   Dialog
	pair     int
}

func (f *fakeField) Update() { f.text = f.pull() }

func (f *fakeField) RequiredRows() int {
	t := strings.TrimRight(f.text, "\n")
	if t == "" {
		return 0
	}
	return strings.Count(t, "\n") + 1
}

func (f *fakeField) SetDialog(d Dialog)    { f.dialog = d }
func (f *fakeField) SetColorPair(pair int) { f.pair = pair }

type fakeRegion struct {
	title      string
	g          Geometry
	pad        bool
	selectable bool
	fields     []*fakeField
	router     *Router
	scrolls    []Direction
}

func newFakeRegion(title string, g Geometry) *fakeRegion {
	return &fakeRegion{title: title, g: g, selectable: true, router: NewRouter(title)}
}

func (r *fakeRegion) AddField(row, col int, align Align, pull PullFunc) Field {
	f := &fakeField{row: row, col: col, align: align, pull: pull, pair: -1}
	r.fields = append(r.fields, f)
	return f
}

func (r *fakeRegion) AddKey(b Binding, h Handler) error { return r.router.Bind(b, h) }
func (r *fakeRegion) SetSelectable(s bool)               { r.selectable = s }
func (r *fakeRegion) Scroll(dir Direction)               { r.scrolls = append(r.scrolls, dir) }

func (r *fakeRegion) FirstRow() int      { return 1 }
func (r *fakeRegion) FirstCol() int      { return 1 }
func (r *fakeRegion) CenterCol() int     { return r.g.Cols / 2 }
func (r *fakeRegion) LastRow() int       { return r.g.Rows - 1 }
func (r *fakeRegion) LastCol() int       { return r.g.Cols - 1 }
func (r *fakeRegion) TopEdgeRow() int    { return r.g.Top }
func (r *fakeRegion) BottomEdgeRow() int { return r.g.Top + r.g.Rows - 1 }
func (r *fakeRegion) LeftEdgeCol() int   { return r.g.Left }
func (r *fakeRegion) RightEdgeCol() int  { return r.g.Left + r.g.Cols - 1 }

type fakeOutput struct {
	strings.Builder
	max int
}

func (o *fakeOutput) Read() string  { return o.String() }
func (o *fakeOutput) MaxLines() int { return o.max }

type fakeColors struct {
	colors, pairs int
	refuse        bool
	defined       [][4]int
	definedPairs  [][3]int
}

var errNoColors = errors.New("no color changes")

func (c *fakeColors) DefineColor(slot, r, g, b int) error {
	if c.refuse {
		return errNoColors
	}
	c.defined = append(c.defined, [4]int{slot, r, g, b})
	return nil
}

func (c *fakeColors) DefinePair(pair, fg, bg int) error {
	if c.refuse {
		return errNoColors
	}
	c.definedPairs = append(c.definedPairs, [3]int{pair, fg, bg})
	return nil
}

func (c *fakeColors) Colors() int { return c.colors }
func (c *fakeColors) Pairs() int  { return c.pairs }

type fakeToolkit struct {
	root    *fakeRegion
	regions []*fakeRegion
	out     *fakeOutput
	colors  *fakeColors

	quits, nexts, edits int
	padRows, padCols    int
	padView             Viewport
}

func newFakeToolkit() *fakeToolkit {
	return &fakeToolkit{
		root:   newFakeRegion("display", Geometry{Rows: 40, Cols: 120}),
		out:    &fakeOutput{max: 1000},
		colors: &fakeColors{colors: 256, pairs: 64},
	}
}

func (t *fakeToolkit) Root() Region { return t.root }

func (t *fakeToolkit) NewRegion(parent Region, g Geometry, title string) Region {
	r := newFakeRegion(title, g)
	t.regions = append(t.regions, r)
	return r
}

func (t *fakeToolkit) NewPad(parent Region, rows, cols int, view Viewport, title string) Region {
	t.padRows, t.padCols, t.padView = rows, cols, view
	r := newFakeRegion(title, Geometry{
		Rows: view.Bottom - view.Top + 1,
		Cols: view.Right - view.Left + 1,
		Top:  view.Top,
		Left: view.Left,
	})
	r.pad = true
	t.regions = append(t.regions, r)
	return r
}

func (t *fakeToolkit) Output() OutputBuffer { return t.out }
func (t *fakeToolkit) Colors() ColorService { return t.colors }
func (t *fakeToolkit) Quit()                { t.quits++ }
func (t *fakeToolkit) SelectNext()          { t.nexts++ }
func (t *fakeToolkit) BeginEdit()           { t.edits++ }
