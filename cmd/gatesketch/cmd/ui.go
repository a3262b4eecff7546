package cmd

import (
	"github.com/spf13/cobra"

	appui "github.com/OpenTraceLab/GateSketch/internal/ui"
)

var (
	uiCatalogFile string
	uiRecordFile  string
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the sketchpad window",
	Long: `Launch the sketchpad. Drag gate types from the palette onto the canvas,
then press and drag placed gates to move them.

With --record, the palette and pointer events are written as an event script
when the window closes; the script can be replayed with "gatesketch replay".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(uiCatalogFile, cfg)
		if err != nil {
			return err
		}
		return appui.Run(appui.Options{
			Config:     cfg,
			Catalog:    catalog,
			RecordPath: uiRecordFile,
		})
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)

	uiCmd.Flags().StringVar(&uiCatalogFile, "catalog", "", "extra gate definitions")
	uiCmd.Flags().StringVar(&uiRecordFile, "record", "", "write routed events to this script file")
}
