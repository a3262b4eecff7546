package sketch

import (
	"github.com/google/uuid"

	"github.com/OpenTraceLab/GateSketch/pkg/gates"
)

// Gate is a placed gate instance. X and Y hold the anchor in canvas pixels:
// the top-left corner, or the centre for the circular input terminal.
type Gate struct {
	ID      uuid.UUID
	Type    gates.Type
	X       int
	Y       int
	Width   int
	Height  int
	Inputs  int
	Outputs int
}

// Shape returns how the gate is drawn.
func (g Gate) Shape() gates.Shape {
	return gates.FootprintOf(g.Type).Shape
}

// Bounds returns the half-open box [MinX, MaxX) x [MinY, MaxY) covered by
// the gate.
func (g Gate) Bounds() Rect {
	dx, dy := gates.FootprintOf(g.Type).AnchorOffset()
	minX, minY := g.X-dx, g.Y-dy
	return Rect{MinX: minX, MinY: minY, MaxX: minX + g.Width, MaxY: minY + g.Height}
}

// Rect is an axis-aligned box in canvas pixels.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether (x, y) lies inside the half-open box.
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.MinX) && x < float64(r.MaxX) &&
		y >= float64(r.MinY) && y < float64(r.MaxY)
}

// Store is the insertion-ordered collection of placed gates. Order is the
// render z-order and the hit-test priority.
type Store struct {
	gates []Gate
	index map[uuid.UUID]int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{index: make(map[uuid.UUID]int)}
}

// Add appends g and returns it. A zero ID is replaced by a fresh one.
func (s *Store) Add(g Gate) Gate {
	if s.index == nil {
		s.index = make(map[uuid.UUID]int)
	}
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	s.index[g.ID] = len(s.gates)
	s.gates = append(s.gates, g)
	return g
}

// Len returns the number of placed gates.
func (s *Store) Len() int {
	return len(s.gates)
}

// At returns the i-th gate in insertion order.
func (s *Store) At(i int) Gate {
	return s.gates[i]
}

// Get returns the gate with the given ID.
func (s *Store) Get(id uuid.UUID) (Gate, bool) {
	i, ok := s.index[id]
	if !ok {
		return Gate{}, false
	}
	return s.gates[i], true
}

// Gates returns a copy of the placed gates in insertion order.
func (s *Store) Gates() []Gate {
	out := make([]Gate, len(s.gates))
	copy(out, s.gates)
	return out
}

// Each calls fn for every gate in insertion order until fn returns false.
func (s *Store) Each(fn func(i int, g Gate) bool) {
	for i, g := range s.gates {
		if !fn(i, g) {
			return
		}
	}
}

// moveTo repositions a gate. Only the controller moves gates.
func (s *Store) moveTo(id uuid.UUID, x, y int) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.gates[i].X = x
	s.gates[i].Y = y
	return true
}
