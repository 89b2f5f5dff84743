package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/celldev/celllab/internal/sim"
	"github.com/celldev/celllab/internal/storage"
)

var flagPresetModel string

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage saved board presets",
	Long: `List, inspect and delete saved board presets.

Presets are saved from a running session with the S key and can be
loaded with 'celllab run <model> --preset <name>'.

Examples:
  celllab presets list
  celllab presets list --model fire
  celllab presets show my-glider
  celllab presets delete my-glider`,
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	Run:   runPresetsList,
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a preset's board",
	Args:  cobra.ExactArgs(1),
	Run:   runPresetsShow,
}

var presetsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a preset",
	Args:  cobra.ExactArgs(1),
	Run:   runPresetsDelete,
}

func init() {
	presetsListCmd.Flags().StringVar(&flagPresetModel, "model", "", "Only list presets for this model")
	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsShowCmd)
	presetsCmd.AddCommand(presetsDeleteCmd)
}

func openStoreOrExit() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runPresetsList(_ *cobra.Command, _ []string) {
	store := openStoreOrExit()
	defer store.Close()

	presets, err := store.ListPresets(flagPresetModel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(presets) == 0 {
		fmt.Println("No presets saved yet.")
		fmt.Println()
		fmt.Println("Press S during a session to save the board.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, p := range presets {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %-6s  %-9s  %-8s  %s\n", maxNameLen, "Name", "Model", "Size", "Edges", "Saved")
	fmt.Printf("  %-*s  %-6s  %-9s  %-8s  %s\n", maxNameLen, "----", "-----", "----", "-----", "-----")
	for _, p := range presets {
		fmt.Printf("  %-*s  %-6s  %-9s  %-8s  %s\n",
			maxNameLen, p.Name, p.Model,
			fmt.Sprintf("%dx%d", p.Rows, p.Cols),
			p.Edge,
			p.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runPresetsShow(_ *cobra.Command, args []string) {
	store := openStoreOrExit()
	defer store.Close()

	p, err := store.PresetByName(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	grid, err := sim.Decode(p.GridRLE, p.Rows, p.Cols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding board: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s  (%s, %dx%d, %s edges, saved %s)\n",
		p.Name, p.Model, p.Rows, p.Cols, p.Edge, p.CreatedAt.Format("2006-01-02 15:04"))
	if p.ParamsJSON != "" && p.ParamsJSON != "{}" {
		fmt.Printf("params: %s\n", p.ParamsJSON)
	}
	fmt.Println()

	glyphs := map[uint8]rune{0: '.', 1: '#', 2: '*'}
	for r := 0; r < grid.Rows; r++ {
		line := make([]rune, grid.Cols)
		for c := 0; c < grid.Cols; c++ {
			line[c] = glyphs[grid.At(r, c)]
		}
		fmt.Printf("  %s\n", string(line))
	}
}

func runPresetsDelete(_ *cobra.Command, args []string) {
	store := openStoreOrExit()
	defer store.Close()

	if err := store.DeletePreset(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted preset %q.\n", args[0])
}
