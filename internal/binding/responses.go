package binding

import (
	"fmt"
	"math/rand"
)

// Messages appended by Ctrl-p
var Messages = []string{
	"Hello, world.",
	"Forty-two.",
	"Beautiful is better than ugly.",
	"Readability counts.",
	"Nobody expects the Spanish Inquisition!",
	"What is the air-speed velocity of an unladen swallow?",
	"So long and thanks for all the fish.",
	"Don't panic.",
	"THIS IS AN EX-PARROT!!",
}

// Session bindings
var (
	BindQuit    = Binding{Name: "quit", Keys: []Key{KeyCtrlX}, Help: "exit"}
	BindMessage = Binding{Name: "message", Keys: []Key{KeyCtrlP}, Help: "add message"}
	BindNext    = Binding{Name: "next", Keys: []Key{KeyTab}, Help: "select next"}
	BindEdit    = Binding{Name: "edit", Keys: []Key{KeyEnter}, Help: "go in"}
	BindScroll  = Binding{Name: "scroll", Keys: []Key{KeyUp, KeyDown, KeyLeft, KeyRight}, Help: "scroll messages"}
)

// BindResponses installs the session key responses on the root region.
// Arrow keys scroll messages.
func BindResponses(tk Toolkit, messages Region, rng *rand.Rand) error {
	root := tk.Root()

	responses := []struct {
		b Binding
		h Handler
	}{
		{BindQuit, func(Key) { tk.Quit() }},
		{BindMessage, func(Key) {
			fmt.Fprintf(tk.Output(), "Msg: %s\n", Messages[rng.Intn(len(Messages))])
		}},
		{BindNext, func(Key) { tk.SelectNext() }},
		{BindEdit, func(Key) { tk.BeginEdit() }},
		{BindScroll, func(k Key) {
			switch k {
			case KeyUp:
				messages.Scroll(ScrollUp)
			case KeyDown:
				messages.Scroll(ScrollDown)
			case KeyLeft:
				messages.Scroll(ScrollLeft)
			case KeyRight:
				messages.Scroll(ScrollRight)
			}
		}},
	}

	for _, r := range responses {
		if err := root.AddKey(r.b, r.h); err != nil {
			return fmt.Errorf("failed to bind %s: %w", r.b.Name, err)
		}
	}
	return nil
}
