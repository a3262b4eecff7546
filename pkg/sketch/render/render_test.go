package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/GateSketch/pkg/grid"
	"github.com/OpenTraceLab/GateSketch/pkg/sketch"
)

func placed(types ...string) *sketch.Controller {
	c := sketch.NewController(grid.Grid{Size: 20, Width: 40, Height: 40}, nil)
	for i, id := range types {
		c.DragStart(id)
		c.Drop(float64(100+i*100), 100)
	}
	return c
}

func gateCommands(cmds []Command, g grid.Grid) []Command {
	return cmds[len(g.Points()):]
}

func TestRenderGridDotsFirst(t *testing.T) {
	g := grid.Grid{Size: 20, Width: 40, Height: 40}
	cmds := Render(g, sketch.NewStore())
	if len(cmds) != 9 {
		t.Fatalf("got %d commands for an empty 3x3 grid, want 9", len(cmds))
	}
	for _, c := range cmds {
		if c.Kind != FillCircle || c.Radius != DotRadius {
			t.Errorf("unexpected grid command %s", c)
		}
	}
	if last := cmds[8]; last.X != 40 || last.Y != 40 {
		t.Errorf("far corner dot at %g,%g", last.X, last.Y)
	}
}

func TestRenderLogicGate(t *testing.T) {
	c := placed("AND")
	colors := GetColors(ThemeLight)
	gate := c.Store().At(0) // (80,60) 40x80

	got := gateCommands(RenderWithColors(c.Grid(), c.Store(), colors), c.Grid())
	want := []Command{
		{Kind: FillRoundRect, X: 80, Y: 60, W: 40, H: 80, Radius: CornerRadius, Color: colors.GateBody},
		{Kind: StrokeRect, X: 80, Y: 60, W: 40, H: 80, Width: OutlineWidth, Color: colors.GateOutline},
		{Kind: Text, X: 80, Y: 60, W: 40, H: 80, Text: "AND", Size: LabelSize, Color: colors.GateLabel},
		{Kind: FillRect, X: 70, Y: 78, W: StubLength, H: StubThickness, Color: colors.Stub},
		{Kind: FillRect, X: 70, Y: 118, W: StubLength, H: StubThickness, Color: colors.Stub},
		{Kind: FillRect, X: 120, Y: 78, W: StubLength, H: StubThickness, Color: colors.Stub},
	}
	if gate.X != 80 || gate.Y != 60 {
		t.Fatalf("fixture gate at (%d,%d), want (80,60)", gate.X, gate.Y)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AND commands mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderStubsCentredOnGridRows(t *testing.T) {
	c := placed("NOT", "OR")
	for _, cmd := range gateCommands(Render(c.Grid(), c.Store()), c.Grid()) {
		if cmd.Kind != FillRect {
			continue
		}
		centre := int(cmd.Y) + StubThickness/2
		if centre%20 != 0 {
			t.Errorf("stub %s centre row %d is off grid", cmd, centre)
		}
	}
}

func TestRenderPrimitivesSkipStubs(t *testing.T) {
	c := placed("input", "output")
	colors := GetColors(ThemeLight)
	in, out := c.Store().At(0), c.Store().At(1)

	got := gateCommands(RenderWithColors(c.Grid(), c.Store(), colors), c.Grid())
	want := []Command{
		{Kind: FillCircle, X: float32(in.X), Y: float32(in.Y), Radius: TerminalRadius, Color: colors.Terminal},
		{Kind: FillRect, X: float32(out.X), Y: float32(out.Y), W: 20, H: 20, Color: colors.Terminal},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("primitive commands mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderZOrderFollowsStore(t *testing.T) {
	c := placed("OR", "NOT")
	var labels []string
	for _, cmd := range Render(c.Grid(), c.Store()) {
		if cmd.Kind == Text {
			labels = append(labels, cmd.Text)
		}
	}
	if diff := cmp.Diff([]string{"OR", "NOT"}, labels); diff != "" {
		t.Errorf("label order mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderIsPure(t *testing.T) {
	c := placed("AND", "input", "output", "NOT")
	before := c.Store().Gates()

	first := Render(c.Grid(), c.Store())
	second := Render(c.Grid(), c.Store())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("rendering twice differs:\n%s", diff)
	}
	if diff := cmp.Diff(before, c.Store().Gates()); diff != "" {
		t.Errorf("rendering mutated the store:\n%s", diff)
	}
}

func TestSelectionOutline(t *testing.T) {
	c := placed("NOT")
	gate := c.Store().At(0)
	sel := Selection(gate, GetColors(ThemeDark))
	b := gate.Bounds()
	if sel.Kind != StrokeRect || sel.X != float32(b.MinX-2) || sel.W != float32(gate.Width+4) {
		t.Errorf("selection outline = %s", sel)
	}
}

func TestThemes(t *testing.T) {
	if GetColors(ThemeDark).Background == GetColors(ThemeLight).Background {
		t.Errorf("dark and light backgrounds should differ")
	}
	if ThemeDark.String() != "Dark" || Theme(9).String() != "Unknown" {
		t.Errorf("unexpected theme names")
	}
	if len(Themes()) != 2 {
		t.Errorf("expected two themes")
	}
}
