package ui

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"go.uber.org/zap"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/GateSketch/internal/ui/input"
	"github.com/OpenTraceLab/GateSketch/pkg/gates"
)

type paletteEntry struct {
	typ  gates.Type
	icon *widget.Icon
}

func newPalette(catalog *gates.Catalog) []paletteEntry {
	makeIcon := func(data []byte, name string) *widget.Icon {
		icon, err := widget.NewIcon(data)
		if err != nil {
			zap.S().Warnw("failed to load icon", "name", name, "error", err)
			return nil
		}
		return icon
	}

	var entries []paletteEntry
	for _, t := range catalog.Types() {
		var data []byte
		switch gates.FootprintOf(t).Shape {
		case gates.ShapeCircle:
			data = icons.ImageBrightness1
		case gates.ShapeSquare:
			data = icons.ImageCropSquare
		default:
			data = icons.ActionSettingsInputComponent
		}
		entries = append(entries, paletteEntry{typ: t, icon: makeIcon(data, t.ID)})
	}
	return entries
}

// layoutPalette draws the entries in a column starting at top and returns
// their window-space boxes.
func (a *App) layoutPalette(gtx layout.Context, top int) []input.PaletteHit {
	margin := gtx.Dp(unit.Dp(8))
	width := gtx.Dp(paletteWidth) - 2*margin
	height := gtx.Dp(unit.Dp(40))
	pending, isPending := a.ctrl.PendingType()

	hits := make([]input.PaletteHit, 0, len(a.palette))
	y := top + margin
	for _, entry := range a.palette {
		rect := image.Rect(margin, y, margin+width, y+height)
		hits = append(hits, input.PaletteHit{TypeID: entry.typ.ID, Rect: rect})

		bg := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		if isPending && pending == entry.typ.ID {
			bg = color.NRGBA{R: 214, G: 226, B: 255, A: 255}
		}
		a.layoutPaletteEntry(gtx, entry, rect, bg)
		y += height + margin
	}
	return hits
}

func (a *App) layoutPaletteEntry(gtx layout.Context, entry paletteEntry, rect image.Rectangle, bg color.NRGBA) {
	defer op.Offset(rect.Min).Push(gtx.Ops).Pop()
	size := rect.Size()
	paint.FillShape(gtx.Ops, bg, clip.UniformRRect(image.Rectangle{Max: size}, gtx.Dp(unit.Dp(4))).Op(gtx.Ops))

	gtx.Constraints = layout.Exact(size)
	layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if entry.icon == nil {
					return layout.Dimensions{}
				}
				sz := gtx.Dp(unit.Dp(20))
				gtx.Constraints = layout.Exact(image.Pt(sz, sz))
				return entry.icon.Layout(gtx, a.Theme.Palette.Fg)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Body1(a.Theme, entry.typ.ID).Layout(gtx)
			}),
		)
	})
}
