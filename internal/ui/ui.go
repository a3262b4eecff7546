package ui

import (
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/GateSketch/internal/config"
	"github.com/OpenTraceLab/GateSketch/pkg/gates"
	"github.com/OpenTraceLab/GateSketch/pkg/script"
)

// Options configures a sketchpad window.
type Options struct {
	Config  *config.AppConfig
	Catalog *gates.Catalog
	// RecordPath, when set, receives the routed events as an event script
	// once the window closes.
	RecordPath string
}

// Run launches the Gio UI and blocks until the window closes.
func Run(opts Options) error {
	if opts.Config == nil {
		opts.Config = config.Default()
	}

	go func() {
		w := new(app.Window)
		g := opts.Config.Grid()
		w.Option(app.Title("GateSketch"), app.Size(unit.Dp(float32(g.Width+220)), unit.Dp(float32(g.Height+120))))
		ui := New(w, opts)
		if err := ui.Run(); err != nil {
			zap.S().Errorw("ui stopped", "error", err)
		}
		if opts.RecordPath != "" {
			if err := writeRecording(opts.RecordPath, ui); err != nil {
				zap.S().Errorw("failed to save recording", "path", opts.RecordPath, "error", err)
			}
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}

func writeRecording(path string, a *App) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	events := a.router.Recorded()
	if err := script.Write(f, events); err != nil {
		f.Close()
		return err
	}
	zap.S().Infow("recording saved", "path", path, "events", len(events))
	return f.Close()
}
