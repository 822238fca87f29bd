package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ceyizapp/ceyiz/internal/api"
	"github.com/ceyizapp/ceyiz/internal/auth"
	"github.com/ceyizapp/ceyiz/internal/config"
	"github.com/ceyizapp/ceyiz/internal/db"
	"github.com/ceyizapp/ceyiz/internal/notify"
	"github.com/ceyizapp/ceyiz/internal/service"
	"github.com/ceyizapp/ceyiz/internal/session"
)

// levelRouter is a slog.Handler that routes INFO/WARN to stdout and ERROR+ to stderr.
type levelRouter struct {
	stdout slog.Handler
	stderr slog.Handler
}

func (lr *levelRouter) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (lr *levelRouter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return lr.stderr.Handle(ctx, r)
	}
	return lr.stdout.Handle(ctx, r)
}

func (lr *levelRouter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithAttrs(attrs),
		stderr: lr.stderr.WithAttrs(attrs),
	}
}

func (lr *levelRouter) WithGroup(name string) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithGroup(name),
		stderr: lr.stderr.WithGroup(name),
	}
}

// setupLogger configures structured logging. By default slog output is
// discarded; notifications are the user-facing surface. With verbose set,
// INFO/WARN go to stdout and ERROR to stderr. If logPath is non-empty, all
// levels are also written to that file. Returns a cleanup function that
// closes the log file (if opened).
func setupLogger(logPath string, verbose bool) (func(), error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var cleanup func()

	stdoutW := io.Discard
	stderrW := io.Discard
	if verbose {
		stdoutW = os.Stdout
		stderrW = os.Stderr
	}

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		cleanup = func() { f.Close() }
		stdoutW = io.MultiWriter(stdoutW, f)
		stderrW = io.MultiWriter(stderrW, f)
	}

	handler := &levelRouter{
		stdout: slog.NewTextHandler(stdoutW, opts),
		stderr: slog.NewTextHandler(stderrW, opts),
	}
	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}

const usage = `Usage: ceyiz [-config <path>] [-log <path>] [-verbose] <command> [flags]

Commands:
  login             sign in and store the session locally
  logout            sign out and clear the stored session
  register          create an account (email verification follows)
  verify            confirm a registration with the emailed code
  forgot-password   request a password reset link
  reset-password    set a new password with a reset token
  whoami            validate the stored session against the server

  category          list, add, or remove categories
  items             browse a category's items (search/filter/sort/stats)
  item              add, update, remove, or toggle a single item
  book              bulk-import books from "Author – Title" lines
  image             upload (with optional crop), save, remove, or OCR images

Run 'ceyiz <command> -h' for command flags.
`

// app bundles everything a command needs: configuration, the local session,
// the API client, and the entity services.
type app struct {
	cfg      *config.Config
	db       *sql.DB
	session  *session.Store
	client   *api.Client
	notifier notify.Notifier

	categories *service.Category
	dowries    *service.Dowry
	books      *service.Book
}

func newApp(ctx context.Context, cfgPath string) (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	database, err := db.Open(cfg.SessionPath)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(database); err != nil {
		database.Close()
		return nil, err
	}

	store, err := session.Load(ctx, database)
	if err != nil {
		database.Close()
		return nil, err
	}

	client := api.New(cfg.APIURL, cfg.Timeout, store.Token)
	notifier := &notify.Terminal{Out: os.Stdout}

	return &app{
		cfg:        cfg,
		db:         database,
		session:    store,
		client:     client,
		notifier:   notifier,
		categories: service.NewCategory(client, notifier),
		dowries:    service.NewDowry(client, notifier),
		books:      service.NewBook(client, notifier),
	}, nil
}

func (a *app) close() {
	a.db.Close()
}

// requireLogin checks the stored session before an authenticated command
// issues a request that is guaranteed to bounce.
func (a *app) requireLogin() error {
	if !a.session.Authenticated() {
		return fmt.Errorf("not logged in, run 'ceyiz login' first")
	}
	if auth.Expired(a.session.Token()) {
		return fmt.Errorf("session expired, run 'ceyiz login' again")
	}
	return nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("ceyiz", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var cfgPath, logPath string
	var verbose bool
	fs.StringVar(&cfgPath, "config", config.DefaultPath(), "")
	fs.StringVar(&logPath, "log", "", "")
	fs.BoolVar(&verbose, "verbose", false, "")

	fs.Usage = func() { fmt.Fprint(os.Stdout, usage) }

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			fs.Usage()
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 1
	}

	closeLog, err := setupLogger(logPath, verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if closeLog != nil {
		defer closeLog()
	}

	ctx := context.Background()

	a, err := newApp(ctx, cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer a.close()

	command := fs.Arg(0)
	rest := fs.Args()[1:]

	var cmdErr error
	switch command {
	case "login":
		cmdErr = a.cmdLogin(ctx, rest)
	case "logout":
		cmdErr = a.cmdLogout(ctx)
	case "register":
		cmdErr = a.cmdRegister(ctx, rest)
	case "verify":
		cmdErr = a.cmdVerify(ctx, rest)
	case "forgot-password":
		cmdErr = a.cmdForgotPassword(ctx, rest)
	case "reset-password":
		cmdErr = a.cmdResetPassword(ctx, rest)
	case "whoami":
		cmdErr = a.cmdWhoami(ctx)
	case "category":
		cmdErr = a.cmdCategory(ctx, rest)
	case "items":
		cmdErr = a.cmdItems(ctx, rest)
	case "item":
		cmdErr = a.cmdItem(ctx, rest)
	case "book":
		cmdErr = a.cmdBook(ctx, rest)
	case "image":
		cmdErr = a.cmdImage(ctx, rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		fs.Usage()
		return 1
	}

	if cmdErr != nil {
		if cmdErr == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", cmdErr)
		return 1
	}
	return 0
}
