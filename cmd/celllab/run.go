package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/celldev/celllab/internal/automata/fire"
	"github.com/celldev/celllab/internal/automata/life"
	"github.com/celldev/celllab/internal/config"
	"github.com/celldev/celllab/internal/core"
	"github.com/celldev/celllab/internal/platform/tui"
	"github.com/celldev/celllab/internal/registry"
	"github.com/celldev/celllab/internal/storage"
)

var (
	flagRows         int
	flagCols         int
	flagEdges        string
	flagDensity      float64
	flagPattern      string
	flagPGrowth      float64
	flagPLightning   float64
	flagSeedStrategy string
	flagTreeDensity  float64
	flagFireDensity  float64
	flagPreset       string
)

var runCmd = &cobra.Command{
	Use:   "run <model>",
	Short: "Run a simulation session",
	Long: `Start a session with the specified model.

Controls:
  Space      - Play/pause
  N          - Step one tick while paused
  R          - Randomize the board
  C          - Clear the board
  P          - Stamp the next catalogue pattern (life)
  E          - Toggle bounded/toroidal edges
  +/-        - Change speed
  S          - Save the board as a preset
  Mouse      - Click or drag to edit cells
  Q/Ctrl+C   - Quit

Examples:
  celllab run life
  celllab run life --pattern glider --edges wrap
  celllab run fire --p-growth 0.02 --p-lightning 0.005
  celllab run fire --seed-strategy categorical --tree-density 0.7 --fire-density 0.05
  celllab run life --preset my-glider
  celllab run life --config ./my-lab.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagRows, "height", 0, "Board rows (0 = from config)")
	runCmd.Flags().IntVar(&flagCols, "width", 0, "Board columns (0 = from config)")
	runCmd.Flags().StringVar(&flagEdges, "edges", "", "Edge policy: bounded or wrap")
	runCmd.Flags().Float64Var(&flagDensity, "density", -1, "Life randomize density in [0,1]")
	runCmd.Flags().StringVar(&flagPattern, "pattern", "", "Life pattern stamped at start: glider, blinker, toad, beacon, pulsar")
	runCmd.Flags().Float64Var(&flagPGrowth, "p-growth", -1, "Fire growth probability in [0,1]")
	runCmd.Flags().Float64Var(&flagPLightning, "p-lightning", -1, "Fire lightning probability in [0,1]")
	runCmd.Flags().StringVar(&flagSeedStrategy, "seed-strategy", "", "Fire randomize strategy: layered or categorical")
	runCmd.Flags().Float64Var(&flagTreeDensity, "tree-density", -1, "Fire randomize tree density in [0,1]")
	runCmd.Flags().Float64Var(&flagFireDensity, "fire-density", -1, "Fire randomize burning density in [0,1]")
	runCmd.Flags().StringVar(&flagPreset, "preset", "", "Start from a saved preset (see 'celllab presets list')")
}

// loadLabConfig loads the YAML config and folds the command-line
// overrides into it, validating the result.
func loadLabConfig() (config.LabConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagRows > 0 {
		cfg.Board.Rows = flagRows
	}
	if flagCols > 0 {
		cfg.Board.Cols = flagCols
	}
	if flagFPS > 0 {
		cfg.Board.TickRate = flagFPS
	}
	if flagEdges != "" {
		cfg.Board.Edge = flagEdges
	}
	if flagDensity >= 0 {
		cfg.Life.Density = flagDensity
	}
	if flagPattern != "" {
		cfg.Life.Pattern = flagPattern
	}
	if flagPGrowth >= 0 {
		cfg.Fire.Growth = flagPGrowth
	}
	if flagPLightning >= 0 {
		cfg.Fire.Lightning = flagPLightning
	}
	if flagSeedStrategy != "" {
		cfg.Fire.SeedStrategy = flagSeedStrategy
	}
	if flagTreeDensity >= 0 {
		cfg.Fire.TreeDensity = flagTreeDensity
	}
	if flagFireDensity >= 0 {
		cfg.Fire.FireDensity = flagFireDensity
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyModelKnobs pushes the lab config into the automata packages
// before an automaton is created.
func applyModelKnobs(cfg config.LabConfig) {
	// Validate() already accepted the edge and seeding fields.
	edge, _ := cfg.EdgePolicy()
	seed, _ := cfg.FireSeed()

	life.SetEdgePolicy(edge)
	life.SetDensity(cfg.Life.Density)
	life.SetStartPattern(cfg.Life.Pattern)

	fire.SetEdgePolicy(edge)
	fire.SetParams(cfg.FireParams())
	fire.SetSeeding(seed)
}

// terminalSize returns the current terminal dimensions, with a fallback
// for non-terminal stdout.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runRun(cmd *cobra.Command, args []string) {
	modelID := args[0]

	if !registry.Exists(modelID) {
		fmt.Fprintf(os.Stderr, "Error: unknown model %q\n", modelID)
		fmt.Fprintln(os.Stderr, "Run 'celllab list' to see available models.")
		os.Exit(1)
	}

	labCfg, err := loadLabConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyModelKnobs(labCfg)

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		Rows:     labCfg.Board.Rows,
		Cols:     labCfg.Board.Cols,
		TickRate: labCfg.Board.TickRate,
		Seed:     flagSeed,
	}

	// Open preset/run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - the session still works
		store = nil
	}

	var preset *storage.Preset
	if flagPreset != "" {
		if store == nil {
			fmt.Fprintln(os.Stderr, "Error: --preset requires a database")
			os.Exit(1)
		}
		preset, err = store.PresetByName(flagPreset)
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if preset.Model != modelID {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: preset %q is a %s board, not %s\n",
				preset.Name, preset.Model, modelID)
			os.Exit(1)
		}
		// A preset starts from its own saved board; its edge policy is
		// applied when the session loads it.
		life.SetStartPattern("")
	}

	automaton, err := registry.Create(modelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating model: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(automaton, store, cfg, preset)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
