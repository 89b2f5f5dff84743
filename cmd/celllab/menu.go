package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/celldev/celllab/internal/core"
	"github.com/celldev/celllab/internal/platform/tui"
	"github.com/celldev/celllab/internal/registry"
	"github.com/celldev/celllab/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the lab with a model picker menu",
	Long: `Start the lab in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a model, Tab to
browse saved presets. After a session ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select model
  Tab          - Browse presets
  Q            - Quit

Examples:
  celllab menu
  celllab menu --fps 30
  celllab menu --db ./celllab.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	labCfg, err := loadLabConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyModelKnobs(labCfg)

	// Open preset/run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		store = nil
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		Rows:     labCfg.Board.Rows,
		Cols:     labCfg.Board.Cols,
		TickRate: labCfg.Board.TickRate,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep any size changes from the menu
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		var preset *storage.Preset
		modelID := menuResult.AutomatonID

		if menuResult.WantsPresets {
			browse, pbErr := tui.RunPresetBrowser(store, cfg.ScreenW, cfg.ScreenH)
			if pbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", pbErr)
			}
			if browse.Loaded == nil {
				if browse.GoBack {
					continue // Back to menu
				}
				break // User quit from the browser
			}
			preset = browse.Loaded
			modelID = preset.Model
		}

		if modelID == "" {
			break
		}

		automaton, err := registry.Create(modelID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating model: %v\n", err)
			continue
		}

		// New seed for each session
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(automaton, store, cfg, preset); err != nil {
			fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
