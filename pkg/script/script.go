// Package script reads and writes event scripts: S-expression files that
// describe a sequence of palette and pointer events for the sketch
// controller.
//
//	# place an AND gate and drag it
//	(origin 0 40)
//	(drag-start "AND")
//	(drop 103 117)
//	(pointer-down 110 110)
//	(pointer-move 200 240)
//	(pointer-up)
//
// Coordinates are client coordinates; each (origin x y) form sets the canvas
// origin used to translate the events that follow it.
package script

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/OpenTraceLab/GateSketch/pkg/sexp"
	"github.com/OpenTraceLab/GateSketch/pkg/sketch"
	"go.uber.org/zap"
)

// MaxCoordinate bounds the magnitude of script coordinates so that every
// position snaps to an int without overflow.
const MaxCoordinate = 1 << 24

// Script is a parsed event script. Events carry canvas-local coordinates.
type Script struct {
	Events []sketch.Event
}

// Parse reads a script from r.
func Parse(r io.Reader) (*Script, error) {
	exprs, err := sexp.Parse(r)
	if err != nil {
		return nil, err
	}

	s := &Script{}
	var origin sketch.Origin
	for _, expr := range exprs {
		l, ok := expr.(*sexp.List)
		if !ok {
			return nil, fmt.Errorf("line %d: expected a form, got %s", expr.Line(), expr)
		}
		if l.Head() == "origin" {
			x, y, err := point(l)
			if err != nil {
				return nil, err
			}
			origin = sketch.Origin{X: x, Y: y}
			continue
		}
		ev, err := event(l, origin)
		if err != nil {
			return nil, err
		}
		s.Events = append(s.Events, ev)
	}
	return s, nil
}

// ParseString reads a script from src.
func ParseString(src string) (*Script, error) {
	return Parse(strings.NewReader(src))
}

// ParseFile reads a script from the named file.
func ParseFile(filename string) (*Script, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// Replay feeds every event to c in order.
func (s *Script) Replay(c *sketch.Controller) {
	for _, ev := range s.Events {
		zap.S().Debugw("replay", "event", ev.String())
		c.Handle(ev)
	}
}

// Write emits events as a script with a zero origin, one form per line.
func Write(w io.Writer, events []sketch.Event) error {
	bw := bufio.NewWriter(w)
	for _, ev := range events {
		if _, err := fmt.Fprintln(bw, ev.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func event(l *sexp.List, origin sketch.Origin) (sketch.Event, error) {
	switch l.Head() {
	case "drag-start":
		if err := arity(l, 1); err != nil {
			return sketch.Event{}, err
		}
		a, err := l.Atom(1)
		if err != nil {
			return sketch.Event{}, err
		}
		return sketch.DragStart(a.Value), nil
	case "pointer-up":
		if err := arity(l, 0); err != nil {
			return sketch.Event{}, err
		}
		return sketch.PointerUp(), nil
	case "drag-over", "drop", "pointer-down", "pointer-move":
		cx, cy, err := point(l)
		if err != nil {
			return sketch.Event{}, err
		}
		x, y := origin.Local(cx, cy)
		switch l.Head() {
		case "drag-over":
			return sketch.DragOver(x, y), nil
		case "drop":
			return sketch.Drop(x, y), nil
		case "pointer-down":
			return sketch.PointerDown(x, y), nil
		default:
			return sketch.PointerMove(x, y), nil
		}
	case "":
		return sketch.Event{}, fmt.Errorf("line %d: form has no name: %s", l.Line(), l)
	default:
		return sketch.Event{}, fmt.Errorf("line %d: unknown event %q", l.Line(), l.Head())
	}
}

func point(l *sexp.List) (float64, float64, error) {
	if err := arity(l, 2); err != nil {
		return 0, 0, err
	}
	var xy [2]float64
	for i := range xy {
		a, err := l.Atom(i + 1)
		if err != nil {
			return 0, 0, err
		}
		if xy[i], err = a.Float(); err != nil {
			return 0, 0, err
		}
		if math.Abs(xy[i]) > MaxCoordinate {
			return 0, 0, fmt.Errorf("line %d: %s: coordinate %s out of range", a.Line(), l.Head(), a.Value)
		}
	}
	return xy[0], xy[1], nil
}

func arity(l *sexp.List, n int) error {
	if got := l.Len() - 1; got != n {
		return fmt.Errorf("line %d: %s takes %d arguments, got %d", l.Line(), l.Head(), n, got)
	}
	return nil
}
