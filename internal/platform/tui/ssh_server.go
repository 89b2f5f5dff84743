package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/celldev/celllab/internal/config"
	"github.com/celldev/celllab/internal/core"
	"github.com/celldev/celllab/internal/registry"
	"github.com/celldev/celllab/internal/sim"
	"github.com/celldev/celllab/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.celllab/host_key.
	HostKeyPath string

	// DBPath is the path to the preset/run database.
	DBPath string

	// Lab is the lab configuration applied to every session.
	Lab config.LabConfig

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.celllab/celllab.db",
		Lab:         config.DefaultLabConfig(),
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for the lab.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "celllab-ssh",
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".celllab", "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height
	cfg.Rows = s.config.Lab.Board.Rows
	cfg.Cols = s.config.Lab.Board.Cols
	cfg.TickRate = s.config.Lab.Board.TickRate
	cfg.Seed = time.Now().UnixNano()

	model := NewSessionModel(s.store, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the full lab flow: menu -> session -> menu,
// with a detour through the preset browser. This is the top-level
// model used for SSH sessions.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	menu     MenuModel
	presets  *PresetBrowserModel
	lab      *Model
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.lab != nil:
		return m.updateLab(msg)
	case m.presets != nil:
		return m.updatePresets(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsPresets() {
		browser := NewPresetBrowserModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.presets = &browser
		return m, m.presets.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		m.config = m.menu.Config()
		return m.startLab(selected.ID, nil)
	}

	return m, cmd
}

// updatePresets handles updates when browsing presets.
func (m SessionModel) updatePresets(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.presets.Update(msg)
	if browser, ok := newModel.(PresetBrowserModel); ok {
		m.presets = &browser
	}

	if loaded := m.presets.Loaded(); loaded != nil {
		m.presets = nil
		return m.startLab(loaded.Model, loaded)
	}

	if m.presets.IsGoingBack() {
		m.presets = nil
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	if m.presets.quitting {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// startLab creates an automaton, optionally loading a preset into it,
// and switches to the session view.
func (m SessionModel) startLab(id string, preset *storage.Preset) (tea.Model, tea.Cmd) {
	a, err := registry.Create(id)
	if err != nil {
		// Menu and browser only offer registered IDs.
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	cfg := m.config
	if preset != nil {
		cfg.Rows = preset.Rows
		cfg.Cols = preset.Cols
	}

	lab := NewModel(a, m.store, cfg)
	m.lab = &lab
	initCmd := m.lab.Init()

	if preset != nil {
		if grid, derr := sim.Decode(preset.GridRLE, preset.Rows, preset.Cols); derr == nil {
			//nolint:errcheck // Alphabet was validated when the preset was saved
			a.SetGrid(grid)
		}
		//nolint:errcheck // Same blob the automaton produced
		a.SetParams([]byte(preset.ParamsJSON))
		if edge, eerr := sim.ParseEdgePolicy(preset.Edge); eerr == nil {
			a.SetEdge(edge)
		}
	}

	return m, initCmd
}

// updateLab handles updates when running a session.
func (m SessionModel) updateLab(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.lab.Update(msg)
	if lab, ok := newModel.(Model); ok {
		m.lab = &lab
	}

	if m.lab.BackToMenu() {
		m.lab = nil
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	if m.lab.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.lab != nil:
		return m.lab.View()
	case m.presets != nil:
		return m.presets.View()
	default:
		return m.menu.View()
	}
}
