// celllab is a TUI laboratory for cellular automata in the terminal.
//
// Usage:
//
//	celllab list             - List available models
//	celllab run <model>      - Run a simulation session
//	celllab menu             - Start menu to pick models interactively
//	celllab serve            - Start SSH server for remote sessions
//	celllab presets          - Manage saved board presets
//	celllab runs             - Show recorded runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: from config)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.celllab/celllab.db)
//	--config <path> - Path to custom lab config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import automata to register them
	_ "github.com/celldev/celllab/internal/automata/fire"
	_ "github.com/celldev/celllab/internal/automata/life"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "celllab",
	Short: "Cell Lab - Cellular automata in your terminal",
	Long: `Cell Lab is a terminal laboratory for cellular automata: Conway's
Game of Life and a probabilistic forest-fire model, with mouse editing,
saved board presets and run records.

Available commands:
  list     - Show all available models
  run      - Run a model directly
  menu     - Interactive model picker menu
  serve    - Start SSH server for remote sessions
  presets  - Manage saved board presets
  runs     - View recorded runs

Examples:
  celllab list
  celllab run life
  celllab run fire --p-growth 0.02
  celllab menu
  celllab serve --ssh :2222
  celllab runs fire`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (ticks per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.celllab/celllab.db", "Path to preset/run database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom lab config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(runsCmd)
}
