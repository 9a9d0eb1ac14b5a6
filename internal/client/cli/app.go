package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/recipebook/internal/client/client"
	"github.com/dmitrijs2005/recipebook/internal/client/config"
	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/client/planner"
	"github.com/dmitrijs2005/recipebook/internal/client/services"
	"github.com/dmitrijs2005/recipebook/internal/client/session"
	"github.com/dmitrijs2005/recipebook/internal/client/storage"
	"github.com/dmitrijs2005/recipebook/internal/filex"
	"github.com/dmitrijs2005/recipebook/internal/logging"
)

type App struct {
	log     logging.Logger
	api     *services.Service
	session *session.Manager
	planner *planner.Scheduler
	closer  io.Closer
	reader  *bufio.Reader
	out     io.Writer

	mu     sync.Mutex
	status string
}

// NewApp opens the credential store at c.StorePath and builds the client
// stack on top of it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel)

	path, err := filex.EnsureParentDir(c.StorePath)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(ctx, path, log)
	if err != nil {
		log.Error(ctx, "error opening credential store", "path", path, "error", err)
		return nil, err
	}

	gw := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, store,
		client.WithLogger(log),
		client.WithRateLimit(c.RequestsPerSecond),
	)

	a := newApp(log, store, gw, bufio.NewReader(os.Stdin), os.Stdout)
	a.closer = store
	return a, nil
}

func newApp(log logging.Logger, store storage.Store, gw client.Gateway, r *bufio.Reader, w io.Writer) *App {
	api := services.New(gw, log)
	a := &App{
		log:     log,
		api:     api,
		session: session.NewManager(api, store, log),
		planner: planner.NewScheduler(api, log),
		reader:  r,
		out:     w,
	}
	a.onSession(session.Initializing, nil)
	a.session.Subscribe(a.onSession)
	return a
}

// Run restores the previous session and runs the REPL until exit.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Recipe Book CLI (type 'help' for commands)")
	a.session.Start(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.log.Warn(context.Background(), "error closing credential store", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.Authenticated
}

// onSession keeps the prompt status in line with the session.
func (a *App) onSession(state session.State, user *models.UserProfile) {
	var s string
	switch {
	case state == session.Authenticated && user != nil:
		s = user.DisplayName()
	case state == session.Initializing:
		s = "starting"
	default:
		s = "guest"
	}

	a.mu.Lock()
	a.status = fmt.Sprintf("(%s)", s)
	a.mu.Unlock()
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// report prints a one-line error for the user and logs the detail.
func (a *App) report(ctx context.Context, action string, err error) error {
	a.log.Debug(ctx, action+" failed", "error", err)
	fmt.Fprintln(a.out, "Error:", err.Error())
	return err
}
