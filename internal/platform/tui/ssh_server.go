package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/bear-adventure/internal/core"
	"github.com/vovakirdan/bear-adventure/internal/registry"
	"github.com/vovakirdan/bear-adventure/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.bear/host_key.
	HostKeyPath string

	// DBPath is the path to the run records database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate and HoldTicks are passed to every session.
	TickRate  int
	HoldTicks int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.bear/runs.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		HoldTicks:   DefaultHoldTicks,
	}
}

// SSHServer wraps a Wish SSH server that hands every session a menu.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger logs to stderr.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "bear-ssh",
		})
	}

	// Styles are shared by every session, so render for a truecolor client
	// regardless of the server's own terminal.
	lipgloss.SetColorProfile(termenv.TrueColor)

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".bear", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	opts := Options{
		Player:    sess.User(),
		HoldTicks: s.config.HoldTicks,
		Logger:    s.logger.With("user", sess.User()),
		InMenu:    true,
	}

	return NewSessionModel(s.store, cfg, opts), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id := uuid.NewString()
		start := time.Now()
		s.logger.Info("session started",
			"session", id,
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"session", id,
			"user", sess.User(),
			"duration", time.Since(start).Round(time.Second),
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

// sessionScreen is what a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenRecords
)

// SessionModel manages a full session: menu, game and records screens.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	opts     Options
	screen   sessionScreen
	menu     MenuModel
	game     Model
	records  RecordsModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, opts Options) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return SessionModel{
		store:  store,
		config: cfg,
		opts:   opts,
		menu:   newEmbeddedMenu(cfg),
	}
}

func newEmbeddedMenu(cfg core.RuntimeConfig) MenuModel {
	m := NewMenuModel(cfg)
	m.embedded = true
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenRecords:
		return m.updateRecords(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	item := m.menu.Selected()
	if item == nil {
		return m, cmd
	}
	m.menu = newEmbeddedMenu(m.config)

	switch item.Kind {
	case MenuRecords:
		m.records = NewRecordsModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenRecords
		return m, m.records.Init()

	case MenuPlay:
		game, err := registry.Create(item.GameID)
		if err != nil {
			m.opts.Logger.Warn("cannot create game", "game", item.GameID, "err", err)
			return m, nil
		}
		if l, ok := game.(interface{ SetLogger(*log.Logger) }); ok {
			l.SetLogger(m.opts.Logger)
		}
		m.config.Seed = time.Now().UnixNano()
		m.game = NewModel(game, m.store, m.config, m.opts)
		m.screen = screenGame
		return m, m.game.Init()
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.screen = screenMenu
		return m, nil
	}
	return m, cmd
}

// updateRecords handles updates when showing records.
func (m SessionModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.records.Update(msg)
	if rm, ok := next.(RecordsModel); ok {
		m.records = rm
	}

	if m.records.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.records.IsGoingBack() {
		m.screen = screenMenu
		return m, nil
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenRecords:
		return m.records.View()
	}
	return m.menu.View()
}
