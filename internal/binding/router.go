package binding

import (
	"fmt"
	"strings"

	"github.com/muurk/procdemo/internal/logging"
)

// Key names a key press the way Bubble Tea spells it ("ctrl+x", "tab",
// "up", "a").
type Key string

// Keys used by the default responses
const (
	KeyCtrlX Key = "ctrl+x"
	KeyCtrlP Key = "ctrl+p"
	KeyTab   Key = "tab"
	KeyEnter Key = "enter"
	KeyEsc   Key = "esc"
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
)

// Handler reacts to a key. It receives the key that triggered it so one
// handler can serve several related keys. Handlers must return quickly.
type Handler func(k Key)

// Binding describes a group of keys sharing one handler.
type Binding struct {
	Name string
	Keys []Key
	Help string
}

// HelpKeys returns the keys joined for a help line, e.g. "↑/↓/←/→".
func (b Binding) HelpKeys() string {
	labels := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		labels[i] = keyLabel(k)
	}
	return strings.Join(labels, "/")
}

func keyLabel(k Key) string {
	switch k {
	case KeyUp:
		return "↑"
	case KeyDown:
		return "↓"
	case KeyLeft:
		return "←"
	case KeyRight:
		return "→"
	default:
		return string(k)
	}
}

// Router is a static key to handler table.
type Router struct {
	scope    string
	handlers map[Key]Handler
	bindings []Binding
}

// NewRouter creates an empty router. Scope labels log entries.
func NewRouter(scope string) *Router {
	return &Router{
		scope:    scope,
		handlers: make(map[Key]Handler),
	}
}

// Bind registers h for every key in b. Binding a key twice is an error.
func (r *Router) Bind(b Binding, h Handler) error {
	if h == nil {
		return fmt.Errorf("binding %q has no handler", b.Name)
	}
	if len(b.Keys) == 0 {
		return fmt.Errorf("binding %q has no keys", b.Name)
	}
	for _, k := range b.Keys {
		if _, exists := r.handlers[k]; exists {
			return fmt.Errorf("key %q already bound in %s scope", k, r.scope)
		}
	}
	for _, k := range b.Keys {
		r.handlers[k] = h
	}
	r.bindings = append(r.bindings, b)
	return nil
}

// Dispatch runs the handler bound to k and reports whether there was one.
func (r *Router) Dispatch(k Key) bool {
	h, ok := r.handlers[k]
	if !ok {
		return false
	}
	logging.LogKey(string(k), r.scope)
	h(k)
	return true
}

// Bindings returns the registered bindings in registration order.
func (r *Router) Bindings() []Binding {
	return append([]Binding(nil), r.bindings...)
}
