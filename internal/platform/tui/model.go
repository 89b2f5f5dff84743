package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/celldev/celllab/internal/core"
	"github.com/celldev/celllab/internal/registry"
	"github.com/celldev/celllab/internal/sim"
	"github.com/celldev/celllab/internal/storage"
)

// Model is the Bubble Tea model for running a lab session.
type Model struct {
	automaton  registry.Automaton
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	labState   core.LabState
	rows, cols int // current board shape, shrunk to fit the terminal
	lastEdit   core.CellEdit
	hasEdit    bool // whether lastEdit is valid for drag deduplication
	flash      string
	flashUntil time.Time
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewModel creates a new Bubble Tea model for the given automaton.
func NewModel(a registry.Automaton, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	a.Reset(cfg)

	return Model{
		automaton:  a,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		rows:       cfg.Rows,
		cols:       cfg.Cols,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "s" {
		m.savePreset()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack {
		m.saveRun()
		m.backToMenu = true
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// handleMouse translates clicks and drags on the board into cell
// edits. A drag emits one edit per cell entered, not per motion event.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.hasEdit = false
	case tea.MouseActionMotion:
		// Drag continues from a press.
	case tea.MouseActionRelease:
		m.hasEdit = false
		return m, nil
	default:
		return m, nil
	}

	board := core.BoardRect(m.config.ScreenW, m.config.ScreenH, m.rows, m.cols)
	row := msg.Y - board.Y
	col := msg.X - board.X
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return m, nil
	}

	edit := core.CellEdit{Row: row, Col: col}
	if m.hasEdit && edit == m.lastEdit {
		return m, nil
	}
	m.inputFrame.AddEdit(row, col)
	m.lastEdit = edit
	m.hasEdit = true
	return m, nil
}

// handleResize adapts the screen buffer and shrinks the board to fit
// the terminal, growing back toward the configured shape when room
// returns. The overlapping region survives each reshape.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	rows := core.Clamp(msg.Height-core.HUDRows-3, 1, m.config.Rows)
	cols := core.Clamp(msg.Width-2, 1, m.config.Cols)
	if rows != m.rows || cols != m.cols {
		if err := m.automaton.Resize(rows, cols); err == nil {
			m.rows = rows
			m.cols = cols
		}
	}

	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.automaton.Step(m.inputFrame)
	m.labState = result.State
	m.inputFrame.Clear()

	// The driver owns the tick rate; reschedule at its current value.
	return m, tickCmd(m.labState.TickRate)
}

// savePreset stores the current board under a timestamped name.
func (m *Model) savePreset() {
	if m.store == nil {
		m.setFlash("no database, preset not saved")
		return
	}

	grid := m.automaton.Grid()
	params, err := m.automaton.Params()
	if err != nil {
		m.setFlash("preset not saved: " + err.Error())
		return
	}

	name := fmt.Sprintf("%s-%s", m.automaton.ID(), time.Now().Format("20060102-150405"))
	_, err = m.store.SavePreset(storage.Preset{
		Name:       name,
		Model:      m.automaton.Model().String(),
		Rows:       grid.Rows,
		Cols:       grid.Cols,
		Edge:       m.automaton.Edge().String(),
		ParamsJSON: string(params),
		GridRLE:    sim.Encode(grid),
	})
	if err != nil {
		m.setFlash("preset not saved: " + err.Error())
		return
	}
	m.setFlash("saved preset " + name)
}

// saveRun records the finished session, once.
func (m *Model) saveRun() {
	if m.store == nil || m.runSaved || m.labState.Tick == 0 {
		return
	}

	grid := m.automaton.Grid()
	stats, err := m.automaton.StatsSummary()
	if err != nil {
		return
	}
	//nolint:errcheck // Best-effort save on the way out
	m.store.SaveRun(storage.RunRecord{
		Model:     m.automaton.Model().String(),
		Rows:      grid.Rows,
		Cols:      grid.Cols,
		Ticks:     m.labState.Tick,
		StatsJSON: string(stats),
	})
	m.runSaved = true
}

func (m *Model) setFlash(s string) {
	m.flash = s
	m.flashUntil = time.Now().Add(3 * time.Second)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.automaton.Render(m.screen)
	if m.flash != "" && time.Now().Before(m.flashUntil) {
		m.screen.DrawTextColored(1, m.screen.Height()-2, m.flash, core.ColorYellow)
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given automaton. A non-nil
// preset is loaded onto the freshly reset board before the first tick.
func Run(a registry.Automaton, store *storage.Store, cfg core.RuntimeConfig, preset *storage.Preset) error {
	if preset != nil {
		cfg.Rows = preset.Rows
		cfg.Cols = preset.Cols
	}

	model := NewModel(a, store, cfg)

	if preset != nil {
		grid, err := sim.Decode(preset.GridRLE, preset.Rows, preset.Cols)
		if err != nil {
			return fmt.Errorf("tui: preset %q: %w", preset.Name, err)
		}
		if err := a.SetGrid(grid); err != nil {
			return fmt.Errorf("tui: preset %q: %w", preset.Name, err)
		}
		if err := a.SetParams([]byte(preset.ParamsJSON)); err != nil {
			return fmt.Errorf("tui: preset %q: %w", preset.Name, err)
		}
		if edge, err := sim.ParseEdgePolicy(preset.Edge); err == nil {
			a.SetEdge(edge)
		}
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Cell edits by click and drag
	)

	_, err := p.Run()
	return err
}
