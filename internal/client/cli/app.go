package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/jabuspark/internal/client/client"
	"github.com/dmitrijs2005/jabuspark/internal/client/config"
	"github.com/dmitrijs2005/jabuspark/internal/client/repositories/kv"
	"github.com/dmitrijs2005/jabuspark/internal/client/router"
	"github.com/dmitrijs2005/jabuspark/internal/client/services"
	"github.com/dmitrijs2005/jabuspark/internal/client/session"
	"github.com/dmitrijs2005/jabuspark/internal/client/storage"
	"github.com/dmitrijs2005/jabuspark/internal/logging"
)

// maxViewChain bounds how many views one command may chain through.
const maxViewChain = 4

type App struct {
	db       *sql.DB
	store    *session.Store
	router   *router.Router
	svc      *services.Set
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	views    map[string]view
	validate *formValidator
	now      func() time.Time

	mu          sync.Mutex
	status      string
	current     *router.Match
	unsubscribe func()
}

// NewApp wires the client from c: logger, local database, session store,
// API client, services and router. Input is read from os.Stdin.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(c.LogBackend, c.LogLevel, os.Stderr)

	db, err := storage.InitDatabase(ctx, c.StoragePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.StoragePath, "error", err)
		return nil, err
	}

	store := session.NewStore(kv.NewSQLiteRepository(db), log)

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, store,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log),
		client.WithResponseHook(sessionRejectedHook(log)),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a, err := newApp(store, services.NewSet(apiClient, store, log), log, os.Stdin, os.Stdout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.db = db
	return a, nil
}

// newApp builds an App over already constructed dependencies.
func newApp(store *session.Store, svc *services.Set, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}
	r, err := router.New(store, Routes()...)
	if err != nil {
		return nil, err
	}

	a := &App{
		store:    store,
		router:   r,
		svc:      svc,
		log:      log,
		reader:   bufio.NewReader(in),
		out:      out,
		views:    defaultViews(),
		validate: newFormValidator(),
		now:      time.Now,
	}
	a.refreshStatus(context.Background())
	a.unsubscribe = store.Subscribe(func(ctx context.Context, _ session.Event) {
		a.refreshStatus(ctx)
	})
	return a, nil
}

// sessionRejectedHook logs when the server refuses a stored token. The
// session is kept; the user decides whether to log in again.
func sessionRejectedHook(log logging.Logger) client.ResponseHook {
	return func(resp *http.Response) error {
		if resp.StatusCode == http.StatusUnauthorized && resp.Request != nil &&
			resp.Request.Header.Get("Authorization") != "" {
			log.Warn(resp.Request.Context(), "server rejected the stored session", "path", resp.Request.URL.Path)
		}
		return nil
	}
}

// Run shows the start page and then reads commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.printf("Welcome to Jabuspark (type 'help' for commands)\n")
	_ = a.Navigate(ctx, "/")
	runREPL(ctx, a, a.reader, a.out)
}

// Close detaches the prompt listener and closes the local database.
func (a *App) Close() {
	a.mu.Lock()
	unsubscribe := a.unsubscribe
	a.unsubscribe = nil
	a.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

// Navigate runs the guard for path and shows the resulting view. Views may
// hand over to a follow-up path (login forwarding to its redirect target).
func (a *App) Navigate(ctx context.Context, path string) error {
	for i := 0; i < maxViewChain && path != ""; i++ {
		m, err := a.router.Navigate(ctx, path)
		if err != nil {
			if errors.Is(err, router.ErrNotFound) {
				a.printf("No such page: %s\n", path)
			} else {
				a.printf("Navigation failed: %v\n", err)
			}
			return err
		}

		a.mu.Lock()
		a.current = m
		a.mu.Unlock()

		v, ok := a.views[m.Route.Name]
		if !ok {
			return fmt.Errorf("%w: no view for %q", router.ErrUnknownRoute, m.Route.Name)
		}
		a.log.Debug(ctx, "showing view", "route", m.Route.Name, "path", m.FullPath)

		path, err = v(a, ctx, m)
		if err != nil {
			return err
		}
	}
	return nil
}

// Logout drops the session.
func (a *App) Logout(ctx context.Context) error {
	if !a.store.IsAuthenticated(ctx) {
		a.printf("You are not logged in.\n")
		return nil
	}
	a.svc.Auth.Logout(ctx)
	a.printf("Logged out.\n")
	return nil
}

// WhoAmI prints the stored user.
func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.store.GetUser(ctx)
	if !ok || !a.store.IsAuthenticated(ctx) {
		a.printf("Not logged in.\n")
		return nil
	}
	if u.Email != "" {
		a.printf("%s <%s> (%s)\n", u.Name, u.Email, u.Role)
	} else {
		a.printf("%s (%s)\n", u.Name, u.Role)
	}
	return nil
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.store.IsAuthenticated(ctx)
}

func (a *App) isAdmin(ctx context.Context) bool {
	u, ok := a.store.GetUser(ctx)
	return ok && u.HasRole("admin")
}

// getStatus is the prompt decoration, e.g. "(Ada student) /courses".
func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.status
	if a.current != nil {
		if s != "" {
			s += " "
		}
		s += a.current.Path
	}
	return s
}

func (a *App) refreshStatus(ctx context.Context) {
	status := ""
	if u, ok := a.store.GetUser(ctx); ok && a.store.IsAuthenticated(ctx) {
		status = fmt.Sprintf("(%s %s)", u.Name, u.Role)
	}
	a.mu.Lock()
	a.status = status
	a.mu.Unlock()
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) prompt(label string) (string, error) {
	return getSimpleText(a.reader, label, a.out)
}

// describeError renders err for the user. Server messages are shown as
// sent; transport failures get a generic hint.
func describeError(err error, fallback string) string {
	var apiErr *client.Error
	switch {
	case errors.As(err, &apiErr):
		return apiErr.MessageOr(fallback)
	case errors.Is(err, client.ErrMalformedResponse):
		return fallback + " (unexpected server response)"
	case errors.Is(err, context.DeadlineExceeded), isTimeout(err):
		return fallback + " (request timed out)"
	default:
		return fallback + " (check your connection)"
	}
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
