// Package main is cavctl, the admin command line for the site. It applies
// database migrations and runs interactive reorder sessions over the
// manually ordered collections.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/MiguelCav2025/sitecav/internal/adapters/repository"
	"github.com/MiguelCav2025/sitecav/internal/adapters/store"
	"github.com/MiguelCav2025/sitecav/internal/adapters/store/sqlstore"
	"github.com/MiguelCav2025/sitecav/internal/app"
	"github.com/MiguelCav2025/sitecav/internal/app/reorder"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/platform/config"
	"github.com/MiguelCav2025/sitecav/internal/platform/httpclient"
	"github.com/MiguelCav2025/sitecav/internal/platform/logging"
)

const usage = `usage: cavctl [flags] <command>

commands:
  migrate up|down|status         manage the SQL schema (backend.driver=sql)
  order institutional-projects   reorder institutional projects
  order gallery                  reorder gallery photos

flags:
`

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("cavctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	profile := fs.String("profile", envOr("APP_PROFILE", "local"), "config profile")
	configDir := fs.String("config-dir", "configs", "directory holding the config YAML files")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}
	rest := fs.Args()
	if len(rest) != 2 {
		fs.Usage()
		return errUsage
	}

	cfg, err := config.Load(*profile, config.WithConfigDir(*configDir), config.WithDotEnv(".env"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, stderr, slog.String("component", "cavctl"))

	switch rest[0] {
	case "migrate":
		return migrate(ctx, cfg, rest[1], stdout, logger)
	case "order":
		return order(ctx, cfg, rest[1], stdin, stdout, logger)
	default:
		fs.Usage()
		return errUsage
	}
}

// migrator is the schema surface of sqlstore.Store.
type migrator interface {
	Migrate(ctx context.Context) (int, error)
	Rollback(ctx context.Context) error
	Status(ctx context.Context) ([]sqlstore.MigrationStatus, error)
}

func migrate(ctx context.Context, cfg *config.Config, action string, out io.Writer, logger *slog.Logger) error {
	if cfg.Backend.Driver != config.DriverSQL {
		return fmt.Errorf("migrate requires backend.driver %q, got %q", config.DriverSQL, cfg.Backend.Driver)
	}
	dbCfg := cfg.Backend.Database
	dbCfg.Migrate = false

	s, err := sqlstore.Open(ctx, dbCfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	return runMigration(ctx, s, action, out)
}

func runMigration(ctx context.Context, m migrator, action string, out io.Writer) error {
	switch action {
	case "up":
		n, err := m.Migrate(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "applied %d migration(s)\n", n)
	case "down":
		if err := m.Rollback(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "rolled back 1 migration")
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "VERSION\tSTATE\tFILE")
		for _, st := range statuses {
			state := "pending"
			if st.Applied {
				state = "applied"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\n", st.Version, state, st.Path)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown migrate action %q: want up, down or status", action)
	}
	return nil
}

func order(ctx context.Context, cfg *config.Config, collection string, in io.Reader, out io.Writer, logger *slog.Logger) error {
	client := httpclient.New(&cfg.Client, "backend", nil, logger,
		httpclient.WithHeader("apikey", cfg.Backend.APIKey),
		httpclient.WithHeader("Authorization", "Bearer "+cfg.Backend.ToolBearer()),
	)
	tables, err := store.OpenTables(ctx, cfg.Backend, client, logger)
	if err != nil {
		return err
	}
	defer func() { _ = tables.Close() }()

	s, err := orderSession(collection, repository.NewRepositories(tables.Store), in, out, logger)
	if err != nil {
		return err
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s.prompt = true
	}
	return s.Run(ctx)
}

func orderSession(collection string, repos *repository.Repositories, in io.Reader, out io.Writer, logger *slog.Logger) (*session, error) {
	switch collection {
	case "institutional-projects":
		c := reorder.New[content.InstitutionalProject, *content.InstitutionalProject](
			repos.InstitutionalProjects, app.ColumnOrderPosition,
			reorder.WithLogger[content.InstitutionalProject](logger),
		)
		return newSession(collection, c, func(p content.InstitutionalProject) string { return p.Title }, in, out), nil
	case "gallery":
		c := reorder.New[content.Photo, *content.Photo](
			repos.Photos, app.ColumnGalleryOrder,
			reorder.WithLogger[content.Photo](logger),
		)
		return newSession(collection, c, photoLabel, in, out), nil
	default:
		return nil, fmt.Errorf("unknown collection %q: want institutional-projects or gallery", collection)
	}
}

func photoLabel(p content.Photo) string {
	if p.Title != "" {
		return p.Title
	}
	return p.ImageURL
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
