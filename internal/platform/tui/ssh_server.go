package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/vovakirdan/space-garbage/internal/games/spacegarbage"
	"github.com/vovakirdan/space-garbage/internal/registry"
	"github.com/vovakirdan/space-garbage/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.spacegarbage/host_key.
	HostKeyPath string

	// DBPath is the path to the runs database. Empty disables saving.
	DBPath string

	// Difficulty labels the runs saved by this server.
	Difficulty string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.spacegarbage/runs.db",
		Difficulty:  "normal",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer gives every SSH session its own game. Sessions share nothing
// but the runs table.
type SSHServer struct {
	config SSHServerConfig
	base   registry.RunOptions
	server *ssh.Server
	logger *log.Logger

	mu    sync.Mutex // guards store
	store *storage.Store

	sessions atomic.Int64
}

// NewSSHServer creates a new SSH server. Every session plays with the
// catalog and config from base; sound is never played server-side.
func NewSSHServer(cfg SSHServerConfig, base registry.RunOptions) (*SSHServer, error) {
	logger := base.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "spacegarbage-ssh",
		})
	}
	base.Sounder = nil

	keyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{
		config: cfg,
		base:   base,
		store:  openRunStore(cfg.DBPath, logger),
		logger: logger,
	}

	// Middlewares run last to first: log, require a PTY, count, play.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.newSession),
			srv.trackSessions,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
	)
	if err != nil {
		if srv.store != nil {
			srv.store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKey returns the host key location, creating its directory.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".spacegarbage", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// openRunStore opens the runs database, or returns nil so the server keeps
// serving without saving.
func openRunStore(path string, logger *log.Logger) *storage.Store {
	if path == "" {
		return nil
	}
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return nil
	}
	return store
}

// newSession builds the game model for one session. activeterm has
// already rejected sessions without a PTY.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	user := sess.User()

	opts := s.base
	opts.Seed = time.Now().UnixNano()
	opts.Logger = s.logger.With("user", user)
	opts.OnGameOver = func(sum spacegarbage.Summary) {
		s.saveRun(user, sum)
	}

	m := NewModel(opts, pty.Window.Width, pty.Window.Height, bubbletea.MakeRenderer(sess))
	return m, []tea.ProgramOption{tea.WithAltScreen()}
}

// trackSessions keeps the count of sessions currently playing.
func (s *SSHServer) trackSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		n := s.sessions.Add(1)
		s.logger.Debug("game started", "user", sess.User(), "active", n)
		defer func() {
			n := s.sessions.Add(-1)
			s.logger.Debug("game ended", "user", sess.User(), "active", n)
		}()
		next(sess)
	}
}

// Sessions returns the number of sessions currently playing.
func (s *SSHServer) Sessions() int64 {
	return s.sessions.Load()
}

// saveRun records a finished session run. Best-effort: failures are logged.
func (s *SSHServer) saveRun(user string, sum spacegarbage.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		s.logger.Warn("run not saved, no runs database", "user", user)
		return
	}
	id, err := s.store.SaveRun(storage.Run{
		Player:     user,
		Backend:    "ssh",
		Difficulty: s.config.Difficulty,
		Seed:       sum.Seed,
		StartYear:  sum.StartYear,
		EndYear:    sum.Year,
		Ticks:      sum.Ticks,
		Destroyed:  sum.Destroyed,
		Shots:      sum.Shots,
	})
	if err != nil {
		s.logger.Error("could not save run", "user", user, "error", err)
		return
	}
	s.logger.Info("run saved", "user", user, "id", id, "year", sum.Year)
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("starting SSH server", "address", s.config.Address)
	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.closeStore()
			return fmt.Errorf("ssh: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...", "active", s.Sessions())
	return s.Shutdown()
}

// Shutdown gracefully stops the server. Sessions that end while it waits
// still have their runs saved; the store is closed last.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
