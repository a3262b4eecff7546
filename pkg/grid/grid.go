// Package grid quantizes canvas coordinates onto the sketch grid.
package grid

import "math"

const (
	// DefaultSize is the spacing between snap points in canvas pixels.
	DefaultSize = 20

	// Default canvas bounds (pixels).
	DefaultWidth  = 860
	DefaultHeight = 480
)

// Role selects the anchoring rule used when snapping a coordinate.
type Role int

const (
	RoleDefault Role = iota
	RoleInput
	// RoleOutput snaps half a cell short of the grid line. Output terminals
	// are centred on their anchor, so the offset keeps the visible square on
	// a grid intersection.
	RoleOutput
)

// String returns the role name as used by gate type identifiers.
func (r Role) String() string {
	switch r {
	case RoleInput:
		return "input"
	case RoleOutput:
		return "output"
	default:
		return "default"
	}
}

// RoleFor returns the snap role for a gate type identifier.
func RoleFor(typeID string) Role {
	switch typeID {
	case "input":
		return RoleInput
	case "output":
		return RoleOutput
	default:
		return RoleDefault
	}
}

// Grid describes the snap spacing and the canvas it covers.
type Grid struct {
	Size   int
	Width  int
	Height int
}

// Default returns the grid used by the sketchpad.
func Default() Grid {
	return Grid{Size: DefaultSize, Width: DefaultWidth, Height: DefaultHeight}
}

// Snap quantizes value to the nearest grid multiple using DefaultSize.
func Snap(value float64, role Role) int {
	return Grid{Size: DefaultSize}.Snap(value, role)
}

// Snap quantizes value to the nearest multiple of g.Size. Halves round up
// (towards +Inf) so snapping an aligned value never moves it.
func (g Grid) Snap(value float64, role Role) int {
	size := g.size()
	snapped := int(math.Floor(value/float64(size)+0.5)) * size
	if role == RoleOutput {
		snapped -= size / 2
	}
	return snapped
}

// Aligned reports whether v is a snap result for role.
func (g Grid) Aligned(v int, role Role) bool {
	size := g.size()
	if role == RoleOutput {
		v += size / 2
	}
	return mod(v, size) == 0
}

// Points returns every grid intersection inside the canvas, edges included,
// in column-major order.
func (g Grid) Points() [][2]int {
	size := g.size()
	if g.Width < 0 || g.Height < 0 {
		return nil
	}
	cols := g.Width/size + 1
	rows := g.Height/size + 1
	pts := make([][2]int, 0, cols*rows)
	for x := 0; x <= g.Width; x += size {
		for y := 0; y <= g.Height; y += size {
			pts = append(pts, [2]int{x, y})
		}
	}
	return pts
}

func (g Grid) size() int {
	if g.Size <= 0 {
		return DefaultSize
	}
	return g.Size
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
