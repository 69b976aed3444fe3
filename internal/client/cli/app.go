package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/coursehub/internal/client/client"
	"github.com/dmitrijs2005/coursehub/internal/client/config"
	"github.com/dmitrijs2005/coursehub/internal/client/services"
	"github.com/dmitrijs2005/coursehub/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	authService   services.AuthService
	courseService services.CourseService
	reader        *bufio.Reader
	out           io.Writer

	mu    sync.Mutex
	email string
	mode  Mode
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing session database: %w", err)
	}

	apiClient, err := client.NewHTTPClient(c.ServerURL,
		client.WithHTTPClient(&http.Client{Timeout: c.RequestTimeout}))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(c, logger,
		services.NewAuthService(apiClient, db),
		services.NewCourseService(apiClient, db),
		bufio.NewReader(os.Stdin), os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, logger logging.Logger, as services.AuthService, cs services.CourseService, r *bufio.Reader, w io.Writer) *App {
	return &App{
		config:        c,
		logger:        logger,
		authService:   as,
		courseService: cs,
		reader:        r,
		out:           w,
	}
}

// Run restores a stored session, starts the connectivity watcher and blocks
// in the REPL until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	email, err := a.authService.Restore(ctx)
	if err != nil {
		return err
	}
	a.setEmail(email)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(ctx, 5*time.Second)

	fmt.Fprintln(a.out, "Welcome to coursehub CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
	return nil
}

func (a *App) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(context.Background(), "closing session database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.email != ""
}

func (a *App) setEmail(email string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.email = email
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.email
	if a.mode != "" {
		if s != "" {
			s += " "
		}
		s += string(a.mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher probes the server every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.probe(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
