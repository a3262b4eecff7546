package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/GateSketch/internal/config"
	"github.com/OpenTraceLab/GateSketch/pkg/gates"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "gatesketch",
	Short: "GateSketch - logic gate schematic sketchpad",
	Long: `GateSketch places logic gate symbols on a snapping grid. Gates are dragged
from a palette onto the canvas and can be moved afterwards.

Examples:
  gatesketch ui                                  # Launch the sketchpad
  gatesketch catalog --catalog extra.gates       # List available gate types
  gatesketch replay --commands session.gss       # Replay an event script`,
	Version:       "0.9.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is the user config directory)")
}

func setupLogging() error {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}

func loadConfig() (*config.AppConfig, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	cfg, err := config.Load()
	if err != nil {
		zap.S().Warnw("using default config", "error", err)
		return config.Default(), nil
	}
	return cfg, nil
}

// loadCatalog returns the built-in catalog extended with the definitions in
// filename, falling back to the catalog named by the config file.
func loadCatalog(filename string, cfg *config.AppConfig) (*gates.Catalog, error) {
	if filename == "" && cfg != nil {
		filename = cfg.Catalog
	}
	catalog, err := gates.LoadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	zap.S().Debugw("catalog loaded", "file", filename, "types", catalog.Len())
	return catalog, nil
}
