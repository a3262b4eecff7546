package input

import (
	"image"
	"testing"

	"gioui.org/f32"
	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/GateSketch/pkg/grid"
	"github.com/OpenTraceLab/GateSketch/pkg/sketch"
)

func testRouter() *Router {
	ctrl := sketch.NewController(grid.Default(), nil)
	s := NewRouter(ctrl, true)
	s.Canvas = image.Rect(150, 60, 150+grid.DefaultWidth, 60+grid.DefaultHeight)
	s.Palette = []PaletteHit{
		{TypeID: "AND", Rect: image.Rect(8, 60, 140, 100)},
		{TypeID: "input", Rect: image.Rect(8, 108, 140, 148)},
	}
	return s
}

func TestPaletteDragPlacesGate(t *testing.T) {
	s := testRouter()

	s.Press(f32.Pt(20, 80))
	s.Drag(f32.Pt(100, 90)) // still over the palette
	s.Drag(f32.Pt(253, 137))
	s.Release(f32.Pt(253, 137))

	want := []sketch.Event{
		sketch.DragStart("AND"),
		sketch.DragOver(103, 77),
		sketch.Drop(103, 77),
	}
	if diff := cmp.Diff(want, s.Recorded()); diff != "" {
		t.Errorf("routed events (-want +got):\n%s", diff)
	}
	if s.ctrl.Store().Len() != 1 {
		t.Fatalf("store has %d gates, want 1", s.ctrl.Store().Len())
	}
	g := s.ctrl.Store().At(0)
	if g.X != 80 || g.Y != 40 {
		t.Errorf("gate at (%d,%d), want (80,40)", g.X, g.Y)
	}
}

func TestReleaseOutsideCanvasCancels(t *testing.T) {
	s := testRouter()

	s.Press(f32.Pt(20, 120))
	s.Release(f32.Pt(60, 300))

	if s.ctrl.State() != sketch.StateIdle {
		t.Errorf("state = %s, want idle", s.ctrl.State())
	}
	if s.ctrl.Store().Len() != 0 {
		t.Errorf("release outside the canvas placed a gate")
	}
	want := []sketch.Event{sketch.DragStart("input"), sketch.PointerUp()}
	if diff := cmp.Diff(want, s.Recorded()); diff != "" {
		t.Errorf("routed events (-want +got):\n%s", diff)
	}
}

func TestCanvasDragMovesGate(t *testing.T) {
	s := testRouter()
	s.Press(f32.Pt(20, 80))
	s.Drag(f32.Pt(253, 137))
	s.Release(f32.Pt(253, 137))

	s.Press(f32.Pt(260, 130))
	if s.ctrl.State() != sketch.StateDraggingExisting {
		t.Fatalf("state = %s, want dragging", s.ctrl.State())
	}
	s.Drag(f32.Pt(350, 260))
	// Dragging may leave the canvas; coordinates stay canvas-local.
	s.Drag(f32.Pt(10, 10))
	s.Release(f32.Pt(10, 10))

	g := s.ctrl.Store().At(0)
	if g.X != -160 || g.Y != -80 {
		t.Errorf("gate at (%d,%d), want (-160,-80)", g.X, g.Y)
	}
	if s.ctrl.State() != sketch.StateIdle {
		t.Errorf("state = %s, want idle", s.ctrl.State())
	}
}

func TestCancelOnlyWhenBusy(t *testing.T) {
	s := testRouter()
	s.Cancel()
	if len(s.Recorded()) != 0 {
		t.Errorf("cancel while idle emitted %v", s.Recorded())
	}
	s.Press(f32.Pt(20, 80))
	s.Cancel()
	if s.ctrl.State() != sketch.StateIdle {
		t.Errorf("state after cancel = %s", s.ctrl.State())
	}
}

func TestPressOutsideEverythingIsIgnored(t *testing.T) {
	s := testRouter()
	s.Press(f32.Pt(145, 20))
	if len(s.Recorded()) != 0 {
		t.Errorf("unexpected events %v", s.Recorded())
	}
}
