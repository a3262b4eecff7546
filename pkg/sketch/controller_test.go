package sketch

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/GateSketch/pkg/gates"
	"github.com/OpenTraceLab/GateSketch/pkg/grid"
)

func newTestController() (*Controller, *int) {
	redraws := 0
	c := NewController(grid.Default(), nil)
	c.SetInvalidateCallback(func() { redraws++ })
	return c, &redraws
}

func placement(g Gate) [4]int {
	return [4]int{g.X, g.Y, g.Width, g.Height}
}

func TestPlaceThenDrag(t *testing.T) {
	c, redraws := newTestController()

	c.DragStart("AND")
	if c.State() != StatePendingPlacement {
		t.Fatalf("state after DragStart = %s", c.State())
	}
	if c.Store().Len() != 0 {
		t.Fatalf("DragStart must not change the store")
	}
	if !c.DragOver(100, 80) {
		t.Errorf("DragOver should accept the drop while a palette drag is pending")
	}
	c.Drop(103, 77)

	if c.State() != StateIdle {
		t.Fatalf("state after Drop = %s", c.State())
	}
	if c.Store().Len() != 1 {
		t.Fatalf("store has %d gates, want 1", c.Store().Len())
	}
	g := c.Store().At(0)
	// snap(103-20) = 80, snap(77-40) = 40
	if diff := cmp.Diff([4]int{80, 40, 40, 80}, placement(g)); diff != "" {
		t.Errorf("placed AND mismatch (-want +got):\n%s", diff)
	}
	if g.Inputs != 2 || g.Outputs != 1 {
		t.Errorf("port counts = %d/%d", g.Inputs, g.Outputs)
	}
	if *redraws != 1 {
		t.Errorf("redraws after drop = %d, want 1", *redraws)
	}

	c.PointerDown(110, 70)
	id, ok := c.Selected()
	if !ok || id != g.ID {
		t.Fatalf("PointerDown did not select the gate")
	}

	// Grab offset (30,30): snap(200-30) = 180
	c.PointerMove(200, 200)
	moved := c.Store().At(0)
	if moved.X != 180 || moved.Y != 180 {
		t.Errorf("after move gate at (%d,%d), want (180,180)", moved.X, moved.Y)
	}
	if moved.Width != 40 || moved.Height != 80 {
		t.Errorf("move changed the footprint: %dx%d", moved.Width, moved.Height)
	}

	c.PointerMove(201, 203)
	if *redraws != 3 {
		t.Errorf("redraws = %d, want one per move", *redraws)
	}

	c.PointerUp()
	if c.State() != StateIdle {
		t.Errorf("state after PointerUp = %s", c.State())
	}
	if _, ok := c.Selected(); ok {
		t.Errorf("selection should be cleared after PointerUp")
	}

	c.PointerMove(400, 400)
	if got := c.Store().At(0); got.X != 180 || got.Y != 180 {
		t.Errorf("move after PointerUp mutated the gate: (%d,%d)", got.X, got.Y)
	}
}

func TestGrabOffsetPreventsJump(t *testing.T) {
	c, _ := newTestController()
	c.DragStart("NOT")
	c.Drop(50, 50)
	g := c.Store().At(0)

	c.PointerDown(float64(g.X)+5, float64(g.Y)+5)
	c.PointerMove(float64(g.X)+5, float64(g.Y)+5)
	if got := c.Store().At(0); got.X != g.X || got.Y != g.Y {
		t.Errorf("gate jumped from (%d,%d) to (%d,%d)", g.X, g.Y, got.X, got.Y)
	}
}

func TestDropUnknownTypeIsNoop(t *testing.T) {
	c, redraws := newTestController()

	c.DragStart("XOR")
	c.DragOver(100, 100)
	c.Drop(100, 100)

	if c.Store().Len() != 0 {
		t.Errorf("unknown type created %d gates", c.Store().Len())
	}
	if c.State() != StateIdle {
		t.Errorf("state after failed drop = %s, want idle", c.State())
	}
	if *redraws != 0 {
		t.Errorf("failed drop requested %d redraws", *redraws)
	}
}

func TestCustomCatalogType(t *testing.T) {
	cat := gates.Default()
	if err := cat.Register(gates.Type{ID: "XOR", Inputs: 2, Outputs: 1}); err != nil {
		t.Fatal(err)
	}
	c := NewController(grid.Default(), cat)
	c.DragStart("XOR")
	c.Drop(100, 100)
	if c.Store().Len() != 1 || c.Store().At(0).Type.ID != "XOR" {
		t.Errorf("XOR from extended catalog was not placed")
	}
}

func TestPrimitivePlacement(t *testing.T) {
	c, _ := newTestController()

	c.DragStart("input")
	c.Drop(103, 77)
	c.DragStart("output")
	c.Drop(103, 77)

	in := c.Store().At(0)
	if in.Inputs != 0 || in.Outputs != 1 || in.Shape() != gates.ShapeCircle {
		t.Errorf("input gate = %+v", in)
	}
	// centre-anchored: snap(103), snap(77)
	if in.X != 100 || in.Y != 80 {
		t.Errorf("input anchored at (%d,%d), want (100,80)", in.X, in.Y)
	}

	out := c.Store().At(1)
	if out.Inputs != 1 || out.Outputs != 0 || out.Shape() != gates.ShapeSquare {
		t.Errorf("output gate = %+v", out)
	}
	// snap(93, output) = 90, snap(67, output) = 50
	if out.X != 90 || out.Y != 50 {
		t.Errorf("output anchored at (%d,%d), want (90,50)", out.X, out.Y)
	}
}

func TestGridAlignmentInvariant(t *testing.T) {
	c, _ := newTestController()
	g := c.Grid()

	points := [][2]float64{{3, 7}, {103, 77}, {251.5, 33.3}, {-17, 419}, {859, 479}}
	types := []string{"AND", "OR", "NOT", "input", "output"}
	for i, p := range points {
		c.DragStart(types[i%len(types)])
		c.Drop(p[0], p[1])
	}

	for i := 0; i < c.Store().Len(); i++ {
		gate := c.Store().At(i)
		c.PointerDown(float64(gate.Bounds().MinX)+1, float64(gate.Bounds().MinY)+1)
		c.PointerMove(p(i)*37.3, p(i)*-11.9)
		c.PointerUp()
	}

	c.Store().Each(func(_ int, gate Gate) bool {
		role := grid.RoleFor(gate.Type.ID)
		if !g.Aligned(gate.X, role) || !g.Aligned(gate.Y, role) {
			t.Errorf("%s at (%d,%d) is not grid-aligned", gate.Type.ID, gate.X, gate.Y)
		}
		return true
	})
}

func p(i int) float64 { return float64(i + 1) }

func TestPointerDownMissStaysIdle(t *testing.T) {
	c, _ := newTestController()
	c.DragStart("AND")
	c.Drop(103, 77)

	c.PointerDown(500, 400)
	if c.State() != StateIdle {
		t.Errorf("miss moved controller to %s", c.State())
	}
	c.PointerMove(600, 400)
	if got := c.Store().At(0); got.X != 80 || got.Y != 40 {
		t.Errorf("move without selection mutated gate: (%d,%d)", got.X, got.Y)
	}
}

func TestOverlapDragsEarliest(t *testing.T) {
	c, _ := newTestController()
	c.DragStart("AND")
	c.Drop(103, 77) // (80,40)
	c.DragStart("AND")
	c.Drop(113, 87) // (100,40)

	first, second := c.Store().At(0), c.Store().At(1)
	c.PointerDown(110, 50)
	id, _ := c.Selected()
	if id != first.ID {
		t.Fatalf("overlap selected %v, want earliest %v", id, first.ID)
	}
	c.PointerMove(310, 250)
	c.PointerUp()
	if got := c.Store().At(1); got != second {
		t.Errorf("later gate moved: %+v", got)
	}
}

func TestOutOfTableEventsIgnored(t *testing.T) {
	c, _ := newTestController()

	if c.DragOver(10, 10) {
		t.Errorf("DragOver while idle should not accept a drop")
	}
	c.Drop(10, 10)
	if c.Store().Len() != 0 {
		t.Errorf("drop without drag-start created a gate")
	}

	c.DragStart("AND")
	c.Drop(103, 77)
	c.PointerDown(110, 70)
	c.DragStart("OR")
	if c.State() != StateDraggingExisting {
		t.Errorf("DragStart interrupted an existing drag")
	}
	c.PointerUp()

	c.DragStart("OR")
	c.PointerDown(110, 70)
	if c.State() != StatePendingPlacement {
		t.Errorf("PointerDown during a palette drag changed state to %s", c.State())
	}
	c.PointerUp()
	if c.State() != StateIdle {
		t.Errorf("PointerUp should cancel a pending placement")
	}
	if _, ok := c.PendingType(); ok {
		t.Errorf("pending type should be cleared")
	}
}

func TestHandleDispatch(t *testing.T) {
	direct, _ := newTestController()
	direct.DragStart("OR")
	direct.DragOver(60, 60)
	direct.Drop(61, 62)
	direct.PointerDown(50, 50)
	direct.PointerMove(150, 90)
	direct.PointerUp()

	queued, _ := newTestController()
	for _, ev := range []Event{
		DragStart("OR"),
		DragOver(60, 60),
		Drop(61, 62),
		PointerDown(50, 50),
		PointerMove(150, 90),
		PointerUp(),
	} {
		queued.Handle(ev)
	}

	if diff := cmp.Diff(placement(direct.Store().At(0)), placement(queued.Store().At(0))); diff != "" {
		t.Errorf("queued events diverge from direct calls (-direct +queued):\n%s", diff)
	}
}

func TestEventString(t *testing.T) {
	tests := map[string]Event{
		`(drag-start "AND")`: DragStart("AND"),
		`(drop 103 77)`:      Drop(103, 77),
		`(pointer-up)`:       PointerUp(),
	}
	for want, ev := range tests {
		if got := ev.String(); got != want {
			t.Errorf("String() = %s, want %s", got, want)
		}
	}
}

func TestPreviewMatchesDrop(t *testing.T) {
	c, redraws := newTestController()
	if _, ok := c.Preview(); ok {
		t.Fatal("preview while idle")
	}
	c.DragStart("AND")
	if _, ok := c.Preview(); ok {
		t.Fatal("preview before the first drag-over")
	}
	c.DragOver(103, 77)
	preview, ok := c.Preview()
	if !ok {
		t.Fatal("no preview during palette drag")
	}
	if *redraws != 0 || c.Store().Len() != 0 {
		t.Fatalf("preview changed the canvas")
	}
	c.Drop(103, 77)
	placed := c.Store().At(0)
	if diff := cmp.Diff(placement(preview), placement(placed)); diff != "" {
		t.Errorf("preview differs from placement (-preview +placed):\n%s", diff)
	}
	if _, ok := c.Preview(); ok {
		t.Error("preview after drop")
	}

	c.DragStart("XOR")
	c.DragOver(50, 50)
	if _, ok := c.Preview(); ok {
		t.Error("preview for an unknown type")
	}
}
