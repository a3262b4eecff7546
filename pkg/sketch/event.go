package sketch

import "fmt"

// EventKind identifies a palette or pointer event.
type EventKind int

const (
	EventDragStart EventKind = iota
	EventDragOver
	EventDrop
	EventPointerDown
	EventPointerMove
	EventPointerUp
)

func (k EventKind) String() string {
	switch k {
	case EventDragStart:
		return "drag-start"
	case EventDragOver:
		return "drag-over"
	case EventDrop:
		return "drop"
	case EventPointerDown:
		return "pointer-down"
	case EventPointerMove:
		return "pointer-move"
	case EventPointerUp:
		return "pointer-up"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one entry of the event queue consumed by Controller.Handle.
// Coordinates are canvas-local. Type is only used by EventDragStart.
type Event struct {
	Kind EventKind
	Type string
	X, Y float64
}

func (e Event) String() string {
	switch e.Kind {
	case EventDragStart:
		return fmt.Sprintf("(%s %q)", e.Kind, e.Type)
	case EventPointerUp:
		return fmt.Sprintf("(%s)", e.Kind)
	default:
		return fmt.Sprintf("(%s %g %g)", e.Kind, e.X, e.Y)
	}
}

// DragStart returns a palette drag-start event.
func DragStart(typeID string) Event { return Event{Kind: EventDragStart, Type: typeID} }

// DragOver returns a drag-over event.
func DragOver(x, y float64) Event { return Event{Kind: EventDragOver, X: x, Y: y} }

// Drop returns a drop event.
func Drop(x, y float64) Event { return Event{Kind: EventDrop, X: x, Y: y} }

// PointerDown returns a pointer-down event.
func PointerDown(x, y float64) Event { return Event{Kind: EventPointerDown, X: x, Y: y} }

// PointerMove returns a pointer-move event.
func PointerMove(x, y float64) Event { return Event{Kind: EventPointerMove, X: x, Y: y} }

// PointerUp returns a pointer-up event.
func PointerUp() Event { return Event{Kind: EventPointerUp} }
