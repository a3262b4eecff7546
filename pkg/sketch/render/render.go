// Package render turns the sketch model into draw commands and paints them
// with Gio.
package render

import (
	"fmt"
	"image/color"

	"github.com/OpenTraceLab/GateSketch/pkg/gates"
	"github.com/OpenTraceLab/GateSketch/pkg/grid"
	"github.com/OpenTraceLab/GateSketch/pkg/sketch"
)

// Drawing constants (canvas pixels).
const (
	DotRadius       = 1
	TerminalRadius  = gates.PrimitiveSize / 2
	CornerRadius    = 4
	OutlineWidth    = 1
	SelectionWidth  = 2
	LabelSize       = 14
	StubLength      = 10
	StubThickness   = 4
	StubBaseOffset  = gates.TerminalPitch/2 - StubThickness/2
	selectionMargin = 2
)

// Kind identifies a draw primitive.
type Kind int

const (
	FillRect      Kind = iota // X,Y top-left, W,H size
	FillCircle                // X,Y centre, Radius
	FillRoundRect             // X,Y top-left, W,H size, Radius corner radius
	StrokeRect                // X,Y top-left, W,H size, Width line width
	Text                      // Text centred in the X,Y,W,H box at Size
)

func (k Kind) String() string {
	switch k {
	case FillRect:
		return "fill-rect"
	case FillCircle:
		return "fill-circle"
	case FillRoundRect:
		return "fill-round-rect"
	case StrokeRect:
		return "stroke-rect"
	case Text:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Command is one draw primitive in canvas pixel space.
type Command struct {
	Kind   Kind
	X, Y   float32
	W, H   float32
	Radius float32
	Width  float32
	Text   string
	Size   float32
	Color  color.NRGBA
}

func (c Command) String() string {
	switch c.Kind {
	case FillCircle:
		return fmt.Sprintf("%s %g,%g r=%g", c.Kind, c.X, c.Y, c.Radius)
	case Text:
		return fmt.Sprintf("%s %q %g,%g %gx%g", c.Kind, c.Text, c.X, c.Y, c.W, c.H)
	default:
		return fmt.Sprintf("%s %g,%g %gx%g", c.Kind, c.X, c.Y, c.W, c.H)
	}
}

// Render draws the grid and every placed gate with the light theme.
func Render(g grid.Grid, s *sketch.Store) []Command {
	return RenderWithColors(g, s, GetColors(ThemeLight))
}

// RenderWithColors draws, back to front, the grid dots and then each gate
// in store order. It only reads the store.
func RenderWithColors(g grid.Grid, s *sketch.Store, colors *Colors) []Command {
	if colors == nil {
		colors = GetColors(ThemeLight)
	}

	pts := g.Points()
	cmds := make([]Command, 0, len(pts)+8*storeLen(s))

	// 1. Grid dots
	for _, p := range pts {
		cmds = append(cmds, Command{
			Kind:   FillCircle,
			X:      float32(p[0]),
			Y:      float32(p[1]),
			Radius: DotRadius,
			Color:  colors.GridDot,
		})
	}

	// 2. Gates, later placements on top
	if s != nil {
		s.Each(func(_ int, gate sketch.Gate) bool {
			cmds = appendGate(cmds, gate, colors)
			return true
		})
	}
	return cmds
}

// Selection returns an outline around gate, drawn by the UI while it is
// being dragged.
func Selection(gate sketch.Gate, colors *Colors) Command {
	b := gate.Bounds()
	return Command{
		Kind:  StrokeRect,
		X:     float32(b.MinX - selectionMargin),
		Y:     float32(b.MinY - selectionMargin),
		W:     float32(b.MaxX - b.MinX + 2*selectionMargin),
		H:     float32(b.MaxY - b.MinY + 2*selectionMargin),
		Width: SelectionWidth,
		Color: colors.Selection,
	}
}

func appendGate(cmds []Command, gate sketch.Gate, colors *Colors) []Command {
	x, y := float32(gate.X), float32(gate.Y)
	w, h := float32(gate.Width), float32(gate.Height)

	switch gate.Shape() {
	case gates.ShapeCircle:
		// Terminals are ports themselves: no stubs.
		return append(cmds, Command{Kind: FillCircle, X: x, Y: y, Radius: TerminalRadius, Color: colors.Terminal})
	case gates.ShapeSquare:
		return append(cmds, Command{Kind: FillRect, X: x, Y: y, W: w, H: h, Color: colors.Terminal})
	}

	cmds = append(cmds,
		Command{Kind: FillRoundRect, X: x, Y: y, W: w, H: h, Radius: CornerRadius, Color: colors.GateBody},
		Command{Kind: StrokeRect, X: x, Y: y, W: w, H: h, Width: OutlineWidth, Color: colors.GateOutline},
		Command{Kind: Text, X: x, Y: y, W: w, H: h, Text: gate.Type.ID, Size: LabelSize, Color: colors.GateLabel},
	)

	for i := 0; i < gate.Inputs; i++ {
		cmds = append(cmds, stub(x-StubLength, stubY(gate, i), colors))
	}
	for i := 0; i < gate.Outputs; i++ {
		cmds = append(cmds, stub(x+w, stubY(gate, i), colors))
	}
	return cmds
}

func stubY(gate sketch.Gate, i int) float32 {
	return float32(gate.Y + StubBaseOffset + i*gates.TerminalPitch)
}

func stub(x, y float32, colors *Colors) Command {
	return Command{Kind: FillRect, X: x, Y: y, W: StubLength, H: StubThickness, Color: colors.Stub}
}

func storeLen(s *sketch.Store) int {
	if s == nil {
		return 0
	}
	return s.Len()
}
