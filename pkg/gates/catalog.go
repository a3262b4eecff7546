package gates

import (
	"errors"
	"fmt"
)

// Geometry constants shared by the catalog and the renderer (canvas pixels).
const (
	// GateWidth is the body width of every logic gate.
	GateWidth = 40
	// TerminalPitch is the vertical distance between consecutive stubs.
	TerminalPitch = 40
	// PrimitiveSize is the bounding size of the input circle and output square.
	PrimitiveSize = 20
	// MaxPorts caps the inputs or outputs of a single gate type.
	MaxPorts = 64
)

// Identifiers of the primitive terminal types.
const (
	TypeInput  = "input"
	TypeOutput = "output"
)

// ErrUnknownGateType is returned when a type identifier is not registered.
var ErrUnknownGateType = errors.New("unknown gate type")

// Shape selects how a gate type is drawn.
type Shape int

const (
	ShapeBody Shape = iota // rounded body with label and terminal stubs
	ShapeCircle            // input terminal, anchored at its centre
	ShapeSquare            // output terminal, anchored at its top-left
)

// String returns the shape name
func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	default:
		return "body"
	}
}

// Type is an immutable gate type definition.
type Type struct {
	ID      string
	Inputs  int
	Outputs int
}

// IsPrimitive reports whether the type is a terminal rather than a gate.
func (t Type) IsPrimitive() bool {
	return t.ID == TypeInput || t.ID == TypeOutput
}

// Footprint is the rendered size of a gate type, derived from its port counts.
type Footprint struct {
	Width   int
	Height  int
	Inputs  int
	Outputs int
	Shape   Shape
}

// AnchorOffset returns the vector from the footprint's top-left corner to its
// anchor point.
func (f Footprint) AnchorOffset() (int, int) {
	if f.Shape == ShapeCircle {
		return f.Width / 2, f.Height / 2
	}
	return 0, 0
}

// FootprintOf derives the footprint of t.
func FootprintOf(t Type) Footprint {
	switch t.ID {
	case TypeInput:
		return Footprint{Width: PrimitiveSize, Height: PrimitiveSize, Inputs: t.Inputs, Outputs: t.Outputs, Shape: ShapeCircle}
	case TypeOutput:
		return Footprint{Width: PrimitiveSize, Height: PrimitiveSize, Inputs: t.Inputs, Outputs: t.Outputs, Shape: ShapeSquare}
	}

	ports := max(t.Inputs, t.Outputs, 1)
	return Footprint{
		Width:   GateWidth,
		Height:  ports * TerminalPitch,
		Inputs:  t.Inputs,
		Outputs: t.Outputs,
		Shape:   ShapeBody,
	}
}

// Catalog maps gate type identifiers to their definitions. The zero value is
// an empty catalog.
type Catalog struct {
	types []Type
	index map[string]int
}

// NewCatalog creates a catalog holding the given types.
func NewCatalog(types ...Type) (*Catalog, error) {
	c := &Catalog{}
	for _, t := range types {
		if err := c.Register(t); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Default returns the built-in catalog: AND, OR, NOT and the input/output
// terminals.
func Default() *Catalog {
	c, err := NewCatalog(
		Type{ID: "AND", Inputs: 2, Outputs: 1},
		Type{ID: "OR", Inputs: 2, Outputs: 1},
		Type{ID: "NOT", Inputs: 1, Outputs: 1},
		Type{ID: TypeInput, Inputs: 0, Outputs: 1},
		Type{ID: TypeOutput, Inputs: 1, Outputs: 0},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Register adds t to the catalog. Identifiers must be unique and non-empty.
func (c *Catalog) Register(t Type) error {
	if t.ID == "" {
		return fmt.Errorf("gate type has empty identifier")
	}
	if t.Inputs < 0 || t.Outputs < 0 {
		return fmt.Errorf("gate type %s: negative port count", t.ID)
	}
	if t.Inputs > MaxPorts || t.Outputs > MaxPorts {
		return fmt.Errorf("gate type %s: more than %d ports on one side", t.ID, MaxPorts)
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if _, ok := c.index[t.ID]; ok {
		return fmt.Errorf("gate type %s already registered", t.ID)
	}
	c.index[t.ID] = len(c.types)
	c.types = append(c.types, t)
	return nil
}

// Merge registers every type of other, stopping at the first conflict.
func (c *Catalog) Merge(other *Catalog) error {
	if other == nil {
		return nil
	}
	for _, t := range other.types {
		if err := c.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the type registered under id.
func (c *Catalog) Lookup(id string) (Type, error) {
	if c != nil {
		if i, ok := c.index[id]; ok {
			return c.types[i], nil
		}
	}
	return Type{}, fmt.Errorf("%w: %q", ErrUnknownGateType, id)
}

// Footprint returns the footprint of the type registered under id.
func (c *Catalog) Footprint(id string) (Footprint, error) {
	t, err := c.Lookup(id)
	if err != nil {
		return Footprint{}, err
	}
	return FootprintOf(t), nil
}

// Types returns the registered types in registration order.
func (c *Catalog) Types() []Type {
	if c == nil {
		return nil
	}
	out := make([]Type, len(c.types))
	copy(out, c.types)
	return out
}

// Len returns the number of registered types.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.types)
}
