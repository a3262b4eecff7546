package render

import (
	"image"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// Global theme for text rendering
var defaultTheme = material.NewTheme()

func init() {
	defaultTheme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
}

// Paint executes cmds on gtx in order. Coordinates are relative to the
// current transform, so callers offset gtx to the canvas origin first.
func Paint(gtx layout.Context, cmds []Command) {
	for _, c := range cmds {
		switch c.Kind {
		case FillRect:
			paint.FillShape(gtx.Ops, c.Color, clip.Rect(box(c)).Op())
		case FillCircle:
			paintCircle(gtx, c)
		case FillRoundRect:
			paint.FillShape(gtx.Ops, c.Color, clip.UniformRRect(box(c), int(c.Radius)).Op(gtx.Ops))
		case StrokeRect:
			stroke := clip.Stroke{Path: clip.Rect(box(c)).Path(), Width: c.Width}.Op()
			paint.FillShape(gtx.Ops, c.Color, stroke)
		case Text:
			paintText(gtx, c)
		}
	}
}

func box(c Command) image.Rectangle {
	return image.Rect(int(c.X), int(c.Y), int(c.X+c.W), int(c.Y+c.H))
}

func paintCircle(gtx layout.Context, c Command) {
	r := int(c.Radius)
	x, y := int(c.X), int(c.Y)
	rect := image.Rect(x-r, y-r, x+r, y+r)
	paint.FillShape(gtx.Ops, c.Color, clip.Ellipse(rect).Op(gtx.Ops))
}

func paintText(gtx layout.Context, c Command) {
	if c.Text == "" {
		return
	}
	defer op.Offset(image.Pt(int(c.X), int(c.Y))).Push(gtx.Ops).Pop()

	gtx.Constraints = layout.Exact(image.Pt(int(c.W), int(c.H)))
	lbl := material.Label(defaultTheme, unit.Sp(c.Size), c.Text)
	lbl.Color = c.Color
	lbl.Alignment = text.Middle
	lbl.MaxLines = 1
	layout.Center.Layout(gtx, lbl.Layout)
}
