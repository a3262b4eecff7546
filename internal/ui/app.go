package ui

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/GateSketch/internal/config"
	"github.com/OpenTraceLab/GateSketch/internal/ui/input"
	"github.com/OpenTraceLab/GateSketch/pkg/sketch"
	"github.com/OpenTraceLab/GateSketch/pkg/sketch/render"
)

const (
	toolbarHeight = unit.Dp(48)
	paletteWidth  = unit.Dp(140)
	canvasMargin  = unit.Dp(16)
)

// App drives the Gio-based sketchpad window.
type App struct {
	Window *app.Window
	Theme  *material.Theme

	cfg   *config.AppConfig
	ctrl  *sketch.Controller
	router *input.Router

	ops op.Ops

	palette []paletteEntry

	colorTheme render.Theme
	themeMenu  *menu.DropdownMenu
	themeBtn   widget.Clickable
	gvTheme    *theme.Theme
}

// New wires the Gio window, theme, and placement controller together.
func New(window *app.Window, opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	ctrl := sketch.NewController(cfg.Grid(), opts.Catalog)

	baseTheme := material.NewTheme()
	baseTheme.Palette = material.Palette{
		Bg:         color.NRGBA{R: 245, G: 246, B: 252, A: 255},
		Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
		ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
		ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
	a := &App{
		Window:     window,
		Theme:      baseTheme,
		cfg:        cfg,
		ctrl:       ctrl,
		router:     input.NewRouter(ctrl, opts.RecordPath != ""),
		palette:    newPalette(ctrl.Catalog()),
		colorTheme: cfg.ColorTheme(),
		gvTheme:    theme.NewTheme("", nil, true),
	}
	a.themeMenu = a.buildThemeMenu()
	ctrl.SetInvalidateCallback(a.invalidate)
	return a
}

// Run processes Gio events until the window is closed.
func (a *App) Run() error {
	for {
		e := a.Window.Event()
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) invalidate() {
	if a.Window != nil {
		a.Window.Invalidate()
	}
}

func (a *App) buildThemeMenu() *menu.DropdownMenu {
	themes := render.Themes()
	opts := make([]menu.MenuOption, 0, len(themes))
	for _, t := range themes {
		th := t
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				a.setColorTheme(th)
				return nil
			},
			Layout: func(gtx menu.C, gv *theme.Theme) menu.D {
				lbl := material.Body1(gv.Theme, th.String())
				if th == a.colorTheme {
					lbl.Color = gv.Palette.ContrastBg
				}
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(160)
	return drop
}

func (a *App) setColorTheme(t render.Theme) {
	if a.colorTheme == t {
		return
	}
	a.colorTheme = t
	a.cfg.Theme = int(t)
	if err := a.cfg.Save(); err != nil {
		zap.S().Warnw("failed to save config", "error", err)
	}
	a.invalidate()
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	a.handlePointer(gtx)
	size := gtx.Constraints.Max

	paint.FillShape(gtx.Ops, a.Theme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

	top := gtx.Dp(toolbarHeight)
	margin := gtx.Dp(canvasMargin)
	g := a.ctrl.Grid()
	a.router.Canvas = image.Rectangle{
		Min: image.Pt(gtx.Dp(paletteWidth)+margin, top+margin),
	}
	a.router.Canvas.Max = a.router.Canvas.Min.Add(image.Pt(g.Width, g.Height))

	// The pointer area is registered first so palette and canvas drawing sit
	// on top of it without intercepting input, while toolbar widgets stay
	// outside it.
	area := clip.Rect{Min: image.Pt(0, top), Max: gtx.Constraints.Max}.Push(gtx.Ops)
	event.Op(gtx.Ops, a)
	area.Pop()

	a.router.Palette = a.layoutPalette(gtx, top)
	a.layoutCanvas(gtx)

	gtx.Constraints.Max.Y = top
	gtx.Constraints.Min = image.Point{}
	a.layoutToolbar(gtx)

	return layout.Dimensions{Size: size}
}

func (a *App) handlePointer(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: a,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		pev, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch pev.Kind {
		case pointer.Press:
			if pev.Buttons == pointer.ButtonPrimary {
				a.router.Press(pev.Position)
			}
		case pointer.Drag:
			a.router.Drag(pev.Position)
		case pointer.Release:
			a.router.Release(pev.Position)
		case pointer.Cancel:
			a.router.Cancel()
		}
		gtx.Execute(op.InvalidateCmd{})
	}
}

func (a *App) layoutCanvas(gtx layout.Context) {
	defer op.Offset(a.router.Canvas.Min).Push(gtx.Ops).Pop()

	colors := render.GetColors(a.colorTheme)
	bounds := image.Rectangle{Max: a.router.Canvas.Size()}
	paint.FillShape(gtx.Ops, colors.Background, clip.Rect(bounds.Inset(-render.DotRadius)).Op())

	// Gates may be dragged past the edges; keep them inside the canvas.
	defer clip.Rect(bounds.Inset(-render.DotRadius)).Push(gtx.Ops).Pop()

	render.Paint(gtx, render.RenderWithColors(a.ctrl.Grid(), a.ctrl.Store(), colors))

	if id, ok := a.ctrl.Selected(); ok {
		if g, ok := a.ctrl.Store().Get(id); ok {
			render.Paint(gtx, []render.Command{render.Selection(g, colors)})
		}
	}
	if g, ok := a.ctrl.Preview(); ok {
		render.Paint(gtx, []render.Command{render.Selection(g, colors)})
	}
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, clip.Rect{Max: gtx.Constraints.Max}.Op())

	status := fmt.Sprintf("%d gates | %s", a.ctrl.Store().Len(), a.ctrl.State())
	return layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12), Top: unit.Dp(8), Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.H6(a.Theme, "GateSketch").Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(24)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return a.layoutThemeDropdown(gtx)
			}),
			layout.Flexed(1, layout.Spacer{}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Body2(a.Theme, status).Layout(gtx)
			}),
		)
	})
}

func (a *App) layoutThemeDropdown(gtx layout.Context) layout.Dimensions {
	if a.themeBtn.Clicked(gtx) {
		a.themeMenu.ToggleVisibility(gtx)
	}
	btn := material.Button(a.Theme, &a.themeBtn, "Theme: "+a.colorTheme.String())
	btn.TextSize = unit.Sp(13)
	dims := btn.Layout(gtx)

	// Layout menu after button so it appears on top
	a.themeMenu.Layout(gtx, a.gvTheme)

	return dims
}
