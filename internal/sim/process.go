package sim

import (
	"go.uber.org/zap"

	"github.com/muurk/procdemo/internal/logging"
)

// ColorSetter defines a custom RGB color at a color slot. Channels use the
// 0-999 scale. Implementations may refuse, for example on terminals that
// cannot redefine colors.
type ColorSetter interface {
	DefineColor(slot, r, g, b int) error
}

// Process is the simulated external process: a Model plus the periodic update
// bodies that drive it.
type Process struct {
	model    *Model
	colors   ColorSetter
	slot     int
	rejected int
}

// NewProcess wraps m. Color pushes are skipped until AttachColor is called.
func NewProcess(m *Model) *Process {
	return &Process{model: m}
}

// Model returns the wrapped Model.
func (p *Process) Model() *Model { return p.model }

// AttachColor sets the color service and reserved slot that the demo color is
// written to, and pushes the current color once.
func (p *Process) AttachColor(cs ColorSetter, slot int) {
	p.colors = cs
	p.slot = slot
	p.pushColor()
}

// ColorSlot returns the reserved color slot.
func (p *Process) ColorSlot() int { return p.slot }

// RejectedColors returns how many color pushes the color service refused.
func (p *Process) RejectedColors() int { return p.rejected }

// Fast is the body of the fast periodic task.
func (p *Process) Fast() {
	p.updateColor()
	p.model.AdvancePercent()
}

// Slow is the body of the slow periodic task.
func (p *Process) Slow() {
	p.model.AdvanceTemperature()
	if p.model.TickState() {
		logging.Debug("State reselected", zap.String("state", p.model.State().Name()))
	}
	p.updateColor()
}

func (p *Process) updateColor() {
	p.model.AdvanceColors()
	p.pushColor()
}

// pushColor writes the clamped color to the color service. A refusal is
// logged and otherwise ignored so the calling task keeps running.
func (p *Process) pushColor() {
	if p.colors == nil {
		return
	}
	r, g, b := p.model.Colors().Clamped()
	if err := p.colors.DefineColor(p.slot, r, g, b); err != nil {
		p.rejected++
		logging.LogColorRejected(p.slot, err)
	}
}
