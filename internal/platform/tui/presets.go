package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/celldev/celllab/internal/storage"
)

// Preset browser layout constants
const (
	presetTableHeight = 8   // Fallback table height on tiny terminals
	maxPresets        = 200 // Max presets to load
)

// presetFilters are the model filters cycled with tab. Empty means all.
var presetFilters = []string{"", "life", "fire"}

// PresetKeyMap defines the key bindings for the preset browser.
type PresetKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Load       key.Binding
	Delete     key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PresetKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Load, k.Delete, k.NextFilter, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k PresetKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Load, k.Delete},
		{k.NextFilter, k.PrevFilter, k.Back, k.Quit},
	}
}

// DefaultPresetKeyMap returns default key bindings.
func DefaultPresetKeyMap() PresetKeyMap {
	return PresetKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Load: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next model"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev model"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PresetBrowserModel is the Bubble Tea model for the preset browser.
type PresetBrowserModel struct {
	store     *storage.Store
	presets   []storage.Preset
	filter    int // index into presetFilters
	table     table.Model
	help      help.Model
	keys      PresetKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	loaded    *storage.Preset // Set when user picks a preset to load
}

// NewPresetBrowserModel creates a new preset browser model.
func NewPresetBrowserModel(store *storage.Store, width, height int) PresetBrowserModel {
	h := help.New()
	h.ShowAll = false

	m := PresetBrowserModel{
		store:  store,
		keys:   DefaultPresetKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadPresets()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *PresetBrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 28},
		{Title: "Model", Width: 6},
		{Title: "Size", Width: 9},
		{Title: "Edges", Width: 8},
		{Title: "Saved", Width: 14},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = presetTableHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadPresets loads presets for the current filter.
func (m *PresetBrowserModel) loadPresets() {
	if m.store == nil {
		m.presets = nil
		m.updateTableRows()
		return
	}

	presets, err := m.store.ListPresets(presetFilters[m.filter])
	if err != nil {
		m.presets = nil
	} else {
		if len(presets) > maxPresets {
			presets = presets[:maxPresets]
		}
		m.presets = presets
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current presets.
func (m *PresetBrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.presets))
	for i, p := range m.presets {
		rows[i] = table.Row{
			p.Name,
			p.Model,
			fmt.Sprintf("%dx%d", p.Rows, p.Cols),
			p.Edge,
			p.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the preset browser model.
func (m PresetBrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the preset browser.
func (m PresetBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Load):
			if i := m.table.Cursor(); i >= 0 && i < len(m.presets) {
				p := m.presets[i]
				m.loaded = &p
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if i := m.table.Cursor(); i >= 0 && i < len(m.presets) && m.store != nil {
				//nolint:errcheck // The reload below reflects what happened
				m.store.DeletePreset(m.presets[i].Name)
				m.loadPresets()
			}
			return m, nil

		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % len(presetFilters)
			m.loadPresets()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filter--
			if m.filter < 0 {
				m.filter = len(presetFilters) - 1
			}
			m.loadPresets()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the preset browser.
func (m PresetBrowserModel) View() string {
	if m.quitting || m.goingBack || m.loaded != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "PRESETS"
	if f := presetFilters[m.filter]; f != "" {
		title = fmt.Sprintf("PRESETS - %s", f)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m PresetBrowserModel) renderTableContent() string {
	if len(m.presets) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No presets saved yet.\nPress s during a session to save the board.")
	}

	return m.table.View()
}

// Loaded returns the preset picked for loading, or nil.
func (m PresetBrowserModel) Loaded() *storage.Preset {
	return m.loaded
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m PresetBrowserModel) IsGoingBack() bool {
	return m.goingBack
}

// PresetBrowserResult holds the outcome of running the preset browser.
type PresetBrowserResult struct {
	Loaded *storage.Preset // Preset to start a session from, or nil
	GoBack bool
}

// RunPresetBrowser runs the preset browser screen.
func RunPresetBrowser(store *storage.Store, width, height int) (PresetBrowserResult, error) {
	p := tea.NewProgram(
		NewPresetBrowserModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PresetBrowserResult{}, err
	}

	m, ok := finalModel.(PresetBrowserModel)
	if !ok {
		return PresetBrowserResult{}, nil
	}

	return PresetBrowserResult{
		Loaded: m.Loaded(),
		GoBack: m.IsGoingBack(),
	}, nil
}
