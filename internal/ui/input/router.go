// Package input routes window-space pointer gestures to sketch controller
// events. It depends only on gioui.org/f32, so it builds without a window
// system.
package input

import (
	"image"

	"gioui.org/f32"

	"github.com/OpenTraceLab/GateSketch/pkg/sketch"
)

// PaletteHit is the window-space box of one palette entry.
type PaletteHit struct {
	TypeID string
	Rect   image.Rectangle
}

// Router turns window-space pointer gestures into controller events.
// Geometry is refreshed by every frame; events are routed against the
// geometry of the frame the user saw.
type Router struct {
	ctrl *sketch.Controller

	// Canvas is the canvas box in window coordinates.
	Canvas  image.Rectangle
	Palette []PaletteHit

	recording bool
	recorded  []sketch.Event
}

// NewRouter creates a router feeding ctrl. With record set, every routed
// event is kept for Recorded.
func NewRouter(ctrl *sketch.Controller, record bool) *Router {
	return &Router{ctrl: ctrl, recording: record}
}

// Origin returns the canvas origin in window coordinates.
func (r *Router) Origin() sketch.Origin {
	return sketch.Origin{X: float64(r.Canvas.Min.X), Y: float64(r.Canvas.Min.Y)}
}

func (r *Router) inCanvas(p f32.Point) bool {
	return p.Round().In(r.Canvas)
}

func (r *Router) local(p f32.Point) (float64, float64) {
	return r.Origin().Local(float64(p.X), float64(p.Y))
}

func (r *Router) emit(ev sketch.Event) {
	if r.recording {
		r.recorded = append(r.recorded, ev)
	}
	r.ctrl.Handle(ev)
}

// Press starts a palette drag on an entry, or a canvas pointer-down.
func (r *Router) Press(p f32.Point) {
	pt := p.Round()
	for _, hit := range r.Palette {
		if pt.In(hit.Rect) {
			r.emit(sketch.DragStart(hit.TypeID))
			return
		}
	}
	if r.inCanvas(p) {
		r.emit(sketch.PointerDown(r.local(p)))
	}
}

// Drag reports pointer motion with the button held.
func (r *Router) Drag(p f32.Point) {
	switch r.ctrl.State() {
	case sketch.StatePendingPlacement:
		if r.inCanvas(p) {
			r.emit(sketch.DragOver(r.local(p)))
		}
	case sketch.StateDraggingExisting:
		r.emit(sketch.PointerMove(r.local(p)))
	}
}

// Release drops a pending palette type when over the canvas. Any other
// Release ends the interaction.
func (r *Router) Release(p f32.Point) {
	if r.ctrl.State() == sketch.StatePendingPlacement && r.inCanvas(p) {
		r.emit(sketch.Drop(r.local(p)))
		return
	}
	r.emit(sketch.PointerUp())
}

// Cancel ends the interaction when the pointer grab is lost.
func (r *Router) Cancel() {
	if r.ctrl.State() != sketch.StateIdle {
		r.emit(sketch.PointerUp())
	}
}

// Recorded returns a copy of the events routed so far when recording is
// enabled.
func (r *Router) Recorded() []sketch.Event {
	out := make([]sketch.Event, len(r.recorded))
	copy(out, r.recorded)
	return out
}
