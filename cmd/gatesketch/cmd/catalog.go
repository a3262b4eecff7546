package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/GateSketch/pkg/gates"
)

var catalogFile string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List gate types and their footprints",
	Long: `List every gate type available on the palette with its port counts and
footprint. Definitions from --catalog (or the config file) extend the
built-in AND, OR, NOT, input and output types.

Examples:
  gatesketch catalog
  gatesketch catalog --catalog testdata/extra.gates`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVar(&catalogFile, "catalog", "", "extra gate definitions")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(catalogFile, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Gate types: %d\n\n", catalog.Len())
	fmt.Printf("  %-10s %6s %7s %5s %6s  %s\n", "TYPE", "INPUTS", "OUTPUTS", "WIDTH", "HEIGHT", "SHAPE")
	for _, t := range catalog.Types() {
		fp := gates.FootprintOf(t)
		fmt.Printf("  %-10s %6d %7d %5d %6d  %s\n", t.ID, t.Inputs, t.Outputs, fp.Width, fp.Height, fp.Shape)
	}
	return nil
}
