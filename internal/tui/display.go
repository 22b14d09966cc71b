package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/muurk/procdemo/internal/binding"
)

// Terminal size used before the first tea.WindowSizeMsg when stdout is not
// a terminal.
const (
	FallbackWidth  = 100
	FallbackHeight = 30
)

// TerminalSize returns the size of the terminal on stdout.
func TerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return FallbackWidth, FallbackHeight
	}
	return width, height
}

// Display is the region tree behind the interactive screen. It implements
// binding.Toolkit. All methods run on the Bubble Tea update goroutine.
type Display struct {
	width  int
	height int

	root    *Region
	regions []*Region

	selected int
	editing  bool
	cursor   int
	dialog   *Dialog

	out     *OutputBuffer
	palette *Palette

	quitting bool
}

// NewDisplay creates a display of width x height terminal cells. The bottom
// row is kept for the help line.
func NewDisplay(width, height int, out *OutputBuffer, palette *Palette) *Display {
	if out == nil {
		out = NewOutputBuffer(DefaultOutputLines)
	}
	if palette == nil {
		palette = DetectPalette()
	}
	d := &Display{out: out, palette: palette, selected: -1}
	d.root = &Region{
		display:    d,
		title:      "display",
		router:     binding.NewRouter("session"),
		selectable: false,
	}
	d.Resize(width, height)
	return d
}

// Resize changes the terminal size. Pads anchored to the bottom or right
// edge of the display stretch with it.
func (d *Display) Resize(width, height int) {
	d.width, d.height = width, height
	d.root.geom = binding.Geometry{Rows: max(height-footerRows, 1), Cols: max(width, 1)}
	for _, r := range d.regions {
		if !r.pad {
			continue
		}
		if r.fillBottom {
			r.geom.Rows = max(d.root.LastRow()-r.geom.Top+1, 3)
		}
		if r.fillRight {
			r.geom.Cols = max(d.root.LastCol()-r.geom.Left+1, 3)
		}
		r.syncViewport()
	}
}

// Size returns the terminal size.
func (d *Display) Size() (int, int) { return d.width, d.height }

// Root implements binding.Toolkit.
func (d *Display) Root() binding.Region { return d.root }

// NewRegion implements binding.Toolkit.
func (d *Display) NewRegion(parent binding.Region, g binding.Geometry, title string) binding.Region {
	r := &Region{
		display:    d,
		title:      title,
		geom:       g,
		border:     1,
		selectable: true,
		router:     binding.NewRouter(title),
	}
	d.regions = append(d.regions, r)
	return r
}

// NewPad implements binding.Toolkit.
func (d *Display) NewPad(parent binding.Region, rows, cols int, view binding.Viewport, title string) binding.Region {
	r := &Region{
		display: d,
		title:   title,
		geom: binding.Geometry{
			Rows: view.Bottom - view.Top + 1,
			Cols: view.Right - view.Left + 1,
			Top:  view.Top,
			Left: view.Left,
		},
		border:     1,
		selectable: true,
		router:     binding.NewRouter(title),
		pad:        true,
		padRows:    rows,
		padCols:    cols,
		fillBottom: view.Bottom >= parent.LastRow(),
		fillRight:  view.Right >= parent.LastCol(),
		vp:         viewport.New(0, 0),
	}
	r.syncViewport()
	d.regions = append(d.regions, r)
	return r
}

// Output implements binding.Toolkit.
func (d *Display) Output() binding.OutputBuffer { return d.out }

// Buffer returns the concrete output buffer.
func (d *Display) Buffer() *OutputBuffer { return d.out }

// Colors implements binding.Toolkit.
func (d *Display) Colors() binding.ColorService { return d.palette }

// Quit implements binding.Toolkit.
func (d *Display) Quit() { d.quitting = true }

// Quitting reports whether Quit was called.
func (d *Display) Quitting() bool { return d.quitting }

// SelectNext implements binding.Toolkit. Leaving a region ends editing.
func (d *Display) SelectNext() {
	d.editing = false
	d.dialog = nil
	n := len(d.regions)
	for i := 1; i <= n; i++ {
		next := (d.selected + i) % n
		if next < 0 {
			next += n
		}
		if d.regions[next].selectable {
			d.selected = next
			return
		}
	}
}

// BeginEdit implements binding.Toolkit. It enters the selected region when
// the region has editable fields.
func (d *Display) BeginEdit() {
	r := d.Selected()
	if r == nil || d.editing {
		return
	}
	if first := r.nextEditable(-1); first >= 0 {
		d.editing = true
		d.cursor = first
	}
}

// Selected returns the selected region, or nil.
func (d *Display) Selected() *Region {
	if d.selected < 0 || d.selected >= len(d.regions) {
		return nil
	}
	return d.regions[d.selected]
}

// Editing reports whether the selected region has been entered.
func (d *Display) Editing() bool { return d.editing }

// Dialog returns the open dialog, or nil.
func (d *Display) Dialog() *Dialog { return d.dialog }

// Regions returns the regions in creation order.
func (d *Display) Regions() []*Region { return append([]*Region(nil), d.regions...) }

// CurrentField returns the field under the edit cursor, or nil.
func (d *Display) CurrentField() *Field {
	r := d.Selected()
	if !d.editing || r == nil || d.cursor < 0 || d.cursor >= len(r.fields) {
		return nil
	}
	return r.fields[d.cursor]
}

// HandleKey routes a key press. An open dialog sees every key first. While
// a region is being edited, Tab, Enter and Esc move between its fields.
// Otherwise the selected region's bindings win over the session bindings.
// It reports whether anything handled the key, and returns the command an
// open text input wants run.
func (d *Display) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if d.dialog != nil {
		closed, cmd := d.dialog.handleKey(msg)
		if closed {
			d.dialog = nil
			cmd = nil
		}
		return true, cmd
	}

	k := binding.Key(msg.String())
	if d.editing {
		switch k {
		case binding.KeyEsc:
			d.editing = false
			return true, nil
		case binding.KeyTab:
			r := d.Selected()
			if next := r.nextEditable(d.cursor); next >= 0 {
				d.cursor = next
			}
			return true, nil
		case binding.KeyEnter:
			if f := d.CurrentField(); f != nil && f.dialog != nil {
				d.dialog = newDialog(f)
				if d.dialog.isText() {
					return true, textinput.Blink
				}
			}
			return true, nil
		}
	}

	if r := d.Selected(); r != nil && r.router.Dispatch(k) {
		return true, nil
	}
	return d.root.router.Dispatch(k), nil
}

// UpdateDialog passes a non-key message to the open dialog and returns its
// command. Without an open dialog it does nothing.
func (d *Display) UpdateDialog(msg tea.Msg) tea.Cmd {
	if d.dialog == nil {
		return nil
	}
	return d.dialog.update(msg)
}

// Bindings returns the session bindings followed by those of the selected
// region.
func (d *Display) Bindings() []binding.Binding {
	bs := d.root.router.Bindings()
	if r := d.Selected(); r != nil {
		bs = append(bs, r.router.Bindings()...)
	}
	return bs
}

// Region is a bordered area of the display. Pads hold more content than
// they show and scroll through it.
type Region struct {
	display *Display
	title   string
	geom    binding.Geometry
	border  int

	selectable bool
	fields     []*Field
	router     *binding.Router

	pad        bool
	padRows    int
	padCols    int
	fillBottom bool
	fillRight  bool
	vp         viewport.Model
	xOffset    int
}

// Title returns the region title.
func (r *Region) Title() string { return r.title }

// Fields returns the region's fields in creation order.
func (r *Region) Fields() []*Field { return append([]*Field(nil), r.fields...) }

// Geometry returns the current placement.
func (r *Region) Geometry() binding.Geometry { return r.geom }

// Selectable reports whether Tab can land on the region.
func (r *Region) Selectable() bool { return r.selectable }

// AddField implements binding.Region.
func (r *Region) AddField(row, col int, align binding.Align, pull binding.PullFunc) binding.Field {
	f := &Field{row: row, col: col, align: align, pull: pull, pair: -1}
	r.fields = append(r.fields, f)
	return f
}

// AddKey implements binding.Region.
func (r *Region) AddKey(b binding.Binding, h binding.Handler) error {
	return r.router.Bind(b, h)
}

// SetSelectable implements binding.Region.
func (r *Region) SetSelectable(selectable bool) { r.selectable = selectable }

// Scroll implements binding.Region.
func (r *Region) Scroll(dir binding.Direction) {
	if !r.pad {
		return
	}
	r.refreshPad()
	switch dir {
	case binding.ScrollUp:
		r.vp.LineUp(1)
	case binding.ScrollDown:
		r.vp.LineDown(1)
	case binding.ScrollLeft:
		if r.xOffset > 0 {
			r.xOffset--
		}
	case binding.ScrollRight:
		if r.xOffset < r.padCols-r.innerCols() {
			r.xOffset++
		}
	}
}

// ScrollOffset returns the pad's vertical and horizontal scroll position.
func (r *Region) ScrollOffset() (int, int) { return r.vp.YOffset, r.xOffset }

func (r *Region) FirstRow() int  { return r.border }
func (r *Region) FirstCol() int  { return r.border }
func (r *Region) CenterCol() int { return r.geom.Cols / 2 }
func (r *Region) LastRow() int   { return r.geom.Rows - 1 - r.border }
func (r *Region) LastCol() int   { return r.geom.Cols - 1 - r.border }

func (r *Region) TopEdgeRow() int    { return r.geom.Top }
func (r *Region) BottomEdgeRow() int { return r.geom.Top + r.geom.Rows - 1 }
func (r *Region) LeftEdgeCol() int   { return r.geom.Left }
func (r *Region) RightEdgeCol() int  { return r.geom.Left + r.geom.Cols - 1 }

func (r *Region) innerRows() int { return max(r.geom.Rows-2*r.border, 0) }
func (r *Region) innerCols() int { return max(r.geom.Cols-2*r.border, 0) }

// nextEditable returns the index of the first field after from that has a
// dialog, wrapping around, or -1.
func (r *Region) nextEditable(from int) int {
	n := len(r.fields)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if idx < 0 {
			idx += n
		}
		if r.fields[idx].dialog != nil {
			return idx
		}
	}
	return -1
}

func (r *Region) syncViewport() {
	r.vp.Width = r.innerCols()
	r.vp.Height = r.innerRows()
}

// refreshPad pulls every field and loads the visible columns into the
// viewport.
func (r *Region) refreshPad() {
	r.syncViewport()
	canvas := make([]string, 0, r.padRows)
	for _, f := range r.fields {
		f.Update()
		for i, line := range f.lines() {
			row := f.row + i
			if row >= r.padRows {
				break
			}
			for len(canvas) <= row {
				canvas = append(canvas, "")
			}
			canvas[row] = overlay(canvas[row], f.col, clipRunes(line, r.padCols-f.col))
		}
	}
	for i, line := range canvas {
		canvas[i] = sliceRunes(line, r.xOffset, r.innerCols())
	}
	r.vp.SetContent(strings.Join(canvas, "\n"))
}

// Field is a piece of text in a region.
type Field struct {
	row, col int
	align    binding.Align
	pull     binding.PullFunc
	text     string
	dialog   binding.Dialog
	pair     int
}

// Update implements binding.Field.
func (f *Field) Update() {
	if f.pull != nil {
		f.text = f.pull()
	}
}

// RequiredRows implements binding.Field. Trailing empty lines do not count.
func (f *Field) RequiredRows() int { return len(f.lines()) }

// SetDialog implements binding.Field.
func (f *Field) SetDialog(d binding.Dialog) { f.dialog = d }

// SetColorPair implements binding.Field.
func (f *Field) SetColorPair(pair int) { f.pair = pair }

// Text returns the text stored by the last Update.
func (f *Field) Text() string { return f.text }

// Editable reports whether the field has a dialog.
func (f *Field) Editable() bool { return f.dialog != nil }

func (f *Field) lines() []string {
	t := strings.TrimRight(f.text, "\n")
	if t == "" {
		return nil
	}
	return strings.Split(t, "\n")
}

// start returns the first column of a line of the given width.
func (f *Field) start(width int) int {
	switch f.align {
	case binding.AlignCenter:
		return f.col - width/2
	case binding.AlignRight:
		return f.col - width + 1
	default:
		return f.col
	}
}

func clipRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

func sliceRunes(s string, from, n int) string {
	r := []rune(s)
	if from >= len(r) {
		return ""
	}
	return clipRunes(string(r[from:]), n)
}

// overlay writes text into line starting at col, padding with spaces.
func overlay(line string, col int, text string) string {
	if col < 0 {
		text = sliceRunes(text, -col, len([]rune(text)))
		col = 0
	}
	r := []rune(line)
	for len(r) < col {
		r = append(r, ' ')
	}
	t := []rune(text)
	end := col + len(t)
	if end > len(r) {
		r = append(r, make([]rune, end-len(r))...)
	}
	copy(r[col:end], t)
	return string(r)
}
