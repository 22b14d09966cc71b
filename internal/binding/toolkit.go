package binding

import (
	"io"

	"github.com/muurk/procdemo/internal/sim"
)

// PullFunc produces a field's current text. The display calls it whenever it
// needs fresh content; it must not have side effects.
type PullFunc func() string

// Align is the horizontal alignment of a field relative to its column.
type Align int

const (
	AlignLeft   Align = iota // Text starts at the column
	AlignCenter              // Text is centered on the column
	AlignRight               // Text ends at the column
)

// Direction is a scroll direction.
type Direction int

const (
	ScrollUp Direction = iota
	ScrollDown
	ScrollLeft
	ScrollRight
)

// Geometry places a bordered region. Top and Left are absolute screen
// coordinates; Rows and Cols include the border.
type Geometry struct {
	Rows int
	Cols int
	Top  int
	Left int
}

// Viewport is the on-screen rectangle of a pad, corners inclusive.
type Viewport struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// Region is a bordered display area holding fields.
type Region interface {
	// AddField creates a field at row/col (relative to the region's
	// interior origin) whose text comes from pull.
	AddField(row, col int, align Align, pull PullFunc) Field

	// AddKey binds keys to h while this region is selected. On the root
	// region the binding is active for the whole session.
	AddKey(b Binding, h Handler) error

	// SetSelectable controls whether Tab navigation can land on the region.
	SetSelectable(selectable bool)

	// Scroll moves a pad's viewport. Regions that are not pads ignore it.
	Scroll(dir Direction)

	FirstRow() int
	FirstCol() int
	CenterCol() int
	LastRow() int
	LastCol() int

	TopEdgeRow() int
	BottomEdgeRow() int
	LeftEdgeCol() int
	RightEdgeCol() int
}

// Field is one piece of text inside a region.
type Field interface {
	// Update calls the field's pull function and stores the result.
	Update()

	// RequiredRows is the number of rows the stored text needs. It is zero
	// until Update has been called with non-empty text.
	RequiredRows() int

	// SetDialog makes the field editable.
	SetDialog(d Dialog)

	// SetColorPair draws the field with a color pair defined through the
	// ColorService.
	SetColorPair(pair int)
}

// ColorService defines colors and foreground/background pairs. DefineColor
// may fail on terminals that cannot redefine colors.
type ColorService interface {
	sim.ColorSetter
	DefinePair(pair, fg, bg int) error
	Colors() int
	Pairs() int
}

// OutputBuffer captures printed lines for display in a field.
type OutputBuffer interface {
	io.Writer
	Read() string
	MaxLines() int
}

// Toolkit is everything the binding layer needs from the display.
type Toolkit interface {
	// Root is the full-screen display region. Keys bound on it are active
	// for the whole session.
	Root() Region

	// NewRegion creates a bordered region inside parent.
	NewRegion(parent Region, g Geometry, title string) Region

	// NewPad creates a scrollable region of rows x cols shown through view.
	NewPad(parent Region, rows, cols int, view Viewport, title string) Region

	Output() OutputBuffer
	Colors() ColorService

	// Quit ends the session.
	Quit()

	// SelectNext selects the next selectable region.
	SelectNext()

	// BeginEdit enters the selected region so its editable fields can be
	// chosen and their dialogs opened.
	BeginEdit()
}

// ColorBlack is the color number of black in the basic palette.
const ColorBlack = 0
