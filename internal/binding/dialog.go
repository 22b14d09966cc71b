package binding

import "fmt"

// InputKind is the type of value a dialog collects.
type InputKind int

const (
	KindInteger InputKind = iota
	KindFloat
	KindChoice
)

// String implements fmt.Stringer
func (k InputKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindChoice:
		return "choice"
	default:
		return fmt.Sprintf("InputKind(%d)", int(k))
	}
}

// Dialog is an edit prompt attached to a field. The display collects and
// validates raw input; the commit callback only ever sees a typed, valid
// value. The set of dialogs is closed: IntDialog, FloatDialog and
// ChoiceDialog.
type Dialog interface {
	Prompt() string
	Kind() InputKind
	dialog()
}

// IntDialog collects an integer.
type IntDialog struct {
	Text   string
	Commit func(int)
}

func (d IntDialog) Prompt() string  { return d.Text }
func (d IntDialog) Kind() InputKind { return KindInteger }
func (IntDialog) dialog()           {}

// FloatDialog collects a finite floating point number.
type FloatDialog struct {
	Text   string
	Commit func(float64)
}

func (d FloatDialog) Prompt() string  { return d.Text }
func (d FloatDialog) Kind() InputKind { return KindFloat }
func (FloatDialog) dialog()           {}

// ChoiceDialog picks one entry from a closed list of names. Commit receives
// the index of the chosen entry.
type ChoiceDialog struct {
	Text    string
	Choices []string
	Commit  func(index int)
}

func (d ChoiceDialog) Prompt() string  { return d.Text }
func (d ChoiceDialog) Kind() InputKind { return KindChoice }
func (ChoiceDialog) dialog()           {}

// NewChoiceDialog builds a ChoiceDialog over members, labelled by their
// String method, that commits the chosen member itself.
func NewChoiceDialog[T fmt.Stringer](text string, members []T, commit func(T)) ChoiceDialog {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.String()
	}
	return ChoiceDialog{
		Text:    text,
		Choices: names,
		Commit: func(index int) {
			if index < 0 || index >= len(members) {
				return
			}
			commit(members[index])
		},
	}
}
