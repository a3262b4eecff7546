package sketch

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/GateSketch/pkg/gates"
	"github.com/OpenTraceLab/GateSketch/pkg/grid"
)

// State is the interaction state of a Controller.
type State int

const (
	StateIdle State = iota
	StatePendingPlacement
	StateDraggingExisting
)

func (s State) String() string {
	switch s {
	case StatePendingPlacement:
		return "pending-placement"
	case StateDraggingExisting:
		return "dragging-existing"
	default:
		return "idle"
	}
}

// Controller is the placement state machine. It owns the Store; hit-testing
// and rendering only read it.
type Controller struct {
	grid    grid.Grid
	catalog *gates.Catalog
	store   *Store

	state State

	// PendingPlacement
	pendingType string
	overX       float64
	overY       float64
	hasOver     bool

	// DraggingExisting
	selected uuid.UUID
	grabX    float64
	grabY    float64

	onInvalidate func()
}

// NewController creates a controller with an empty store. A nil catalog
// selects the built-in one.
func NewController(g grid.Grid, catalog *gates.Catalog) *Controller {
	if catalog == nil {
		catalog = gates.Default()
	}
	return &Controller{
		grid:    g,
		catalog: catalog,
		store:   NewStore(),
	}
}

// SetInvalidateCallback sets the hook called whenever the store changes and
// the canvas must be redrawn.
func (c *Controller) SetInvalidateCallback(cb func()) {
	c.onInvalidate = cb
}

// Store returns the gate store. Callers must not hold on to it across event
// handling.
func (c *Controller) Store() *Store { return c.store }

// Grid returns the grid used for snapping.
func (c *Controller) Grid() grid.Grid { return c.grid }

// Catalog returns the gate catalog.
func (c *Controller) Catalog() *gates.Catalog { return c.catalog }

// State returns the current interaction state.
func (c *Controller) State() State { return c.state }

// PendingType returns the palette type awaiting a drop.
func (c *Controller) PendingType() (string, bool) {
	return c.pendingType, c.state == StatePendingPlacement
}

// DragPosition returns the last pointer position reported by DragOver.
func (c *Controller) DragPosition() (float64, float64) {
	return c.overX, c.overY
}

// Selected returns the ID of the gate being dragged.
func (c *Controller) Selected() (uuid.UUID, bool) {
	return c.selected, c.state == StateDraggingExisting
}

// Handle dispatches ev to the matching transition.
func (c *Controller) Handle(ev Event) {
	switch ev.Kind {
	case EventDragStart:
		c.DragStart(ev.Type)
	case EventDragOver:
		c.DragOver(ev.X, ev.Y)
	case EventDrop:
		c.Drop(ev.X, ev.Y)
	case EventPointerDown:
		c.PointerDown(ev.X, ev.Y)
	case EventPointerMove:
		c.PointerMove(ev.X, ev.Y)
	case EventPointerUp:
		c.PointerUp()
	}
}

// DragStart records typeID as the pending palette type. The canvas does not
// change. Ignored while a placed gate is being dragged.
func (c *Controller) DragStart(typeID string) {
	if c.state == StateDraggingExisting {
		return
	}
	c.state = StatePendingPlacement
	c.pendingType = typeID
	c.hasOver = false
	zap.S().Debugw("palette drag started", "type", typeID)
}

// DragOver tracks the pointer during a palette drag. It returns true when a
// drop is acceptable, which the caller must acknowledge to its event source.
func (c *Controller) DragOver(x, y float64) bool {
	if c.state != StatePendingPlacement {
		return false
	}
	c.overX, c.overY = x, y
	c.hasOver = true
	return true
}

// Preview returns the gate a drop at the last DragOver position would
// create. It reports false outside a palette drag, before the first
// DragOver, or when the pending type is unknown.
func (c *Controller) Preview() (Gate, bool) {
	if c.state != StatePendingPlacement || !c.hasOver {
		return Gate{}, false
	}
	t, err := c.catalog.Lookup(c.pendingType)
	if err != nil {
		return Gate{}, false
	}
	return c.place(t, c.overX, c.overY), true
}

// Drop places the pending type centred on (x, y). Unknown types are dropped
// silently. The controller returns to idle either way.
func (c *Controller) Drop(x, y float64) {
	if c.state != StatePendingPlacement {
		return
	}
	typeID := c.pendingType
	c.reset()

	t, err := c.catalog.Lookup(typeID)
	if err != nil {
		zap.S().Debugw("drop ignored", "type", typeID, "error", err)
		return
	}
	g := c.store.Add(c.place(t, x, y))
	zap.S().Debugw("gate placed", "type", t.ID, "id", g.ID, "x", g.X, "y", g.Y)
	c.invalidate()
}

// place builds an instance of t centred on (x, y) with its anchor snapped.
func (c *Controller) place(t gates.Type, x, y float64) Gate {
	fp := gates.FootprintOf(t)
	dx, dy := fp.AnchorOffset()
	role := grid.RoleFor(t.ID)
	return Gate{
		Type:    t,
		X:       c.grid.Snap(x-float64(fp.Width)/2+float64(dx), role),
		Y:       c.grid.Snap(y-float64(fp.Height)/2+float64(dy), role),
		Width:   fp.Width,
		Height:  fp.Height,
		Inputs:  fp.Inputs,
		Outputs: fp.Outputs,
	}
}

// PointerDown selects the gate under (x, y) for dragging. A miss leaves the
// controller idle.
func (c *Controller) PointerDown(x, y float64) {
	if c.state != StateIdle {
		return
	}
	g, ok := HitTest(c.store, x, y)
	if !ok {
		return
	}
	c.state = StateDraggingExisting
	c.selected = g.ID
	c.grabX = x - float64(g.X)
	c.grabY = y - float64(g.Y)
	zap.S().Debugw("drag started", "id", g.ID, "type", g.Type.ID)
}

// PointerMove moves the selected gate so the grab point follows the pointer,
// snapped to the grid.
func (c *Controller) PointerMove(x, y float64) {
	if c.state != StateDraggingExisting {
		return
	}
	g, ok := c.store.Get(c.selected)
	if !ok {
		c.reset()
		return
	}
	role := grid.RoleFor(g.Type.ID)
	c.store.moveTo(g.ID, c.grid.Snap(x-c.grabX, role), c.grid.Snap(y-c.grabY, role))
	c.invalidate()
}

// PointerUp ends any interaction and returns to idle.
func (c *Controller) PointerUp() {
	if c.state == StateDraggingExisting {
		if g, ok := c.store.Get(c.selected); ok {
			zap.S().Debugw("drag finished", "id", g.ID, "x", g.X, "y", g.Y)
		}
	}
	c.reset()
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.pendingType = ""
	c.hasOver = false
	c.selected = uuid.Nil
	c.grabX, c.grabY = 0, 0
}

func (c *Controller) invalidate() {
	if c.onInvalidate != nil {
		c.onInvalidate()
	}
}
