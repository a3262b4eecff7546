package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/GateSketch/pkg/script"
	"github.com/OpenTraceLab/GateSketch/pkg/sketch"
	"github.com/OpenTraceLab/GateSketch/pkg/sketch/render"
)

var (
	replayCatalogFile string
	showCommands      bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Replay an event script and print the resulting placement",
	Long: `Feed the events of a script to the placement controller without opening a
window, then print every placed gate in store order.

Examples:
  gatesketch replay testdata/place_and_drag.gss
  gatesketch replay --commands --catalog testdata/extra.gates session.gss`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVar(&replayCatalogFile, "catalog", "", "extra gate definitions")
	replayCmd.Flags().BoolVarP(&showCommands, "commands", "c", false, "print the draw commands")
}

func runReplay(cmd *cobra.Command, args []string) error {
	filename := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(replayCatalogFile, cfg)
	if err != nil {
		return err
	}

	s, err := script.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("failed to parse script: %w", err)
	}

	ctrl := sketch.NewController(cfg.Grid(), catalog)
	s.Replay(ctrl)

	if verbose {
		fmt.Printf("Replayed %d events from %s\n\n", len(s.Events), filename)
	}

	store := ctrl.Store()
	fmt.Printf("Gates: %d\n", store.Len())
	store.Each(func(i int, g sketch.Gate) bool {
		fmt.Printf("  %3d %-8s x=%-5d y=%-5d %dx%d\n", i, g.Type.ID, g.X, g.Y, g.Width, g.Height)
		return true
	})
	if ctrl.State() != sketch.StateIdle {
		fmt.Printf("Final state: %s\n", ctrl.State())
	}

	if showCommands {
		cmds := render.RenderWithColors(cfg.Grid(), store, render.GetColors(cfg.ColorTheme()))
		fmt.Printf("\nDraw commands: %d (grid dots omitted)\n", len(cmds))
		for _, c := range cmds {
			if c.Kind == render.FillCircle && c.Radius == render.DotRadius {
				continue
			}
			fmt.Printf("  %s\n", c)
		}
	}
	return nil
}
