// Package sqlstore implements ports.TableStore on a SQL database (SQLite or
// Postgres) through sqlx. It lets the service run against a local database
// with the same table layout as the hosted backend.
package sqlstore

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/MiguelCav2025/sitecav/internal/domain/table"
	"github.com/MiguelCav2025/sitecav/internal/platform/config"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TableStore    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Store is a SQL-backed table store.
type Store struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// Open connects to the database described by cfg, pings it and, when
// cfg.Migrate is set, applies pending migrations.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	if cfg.Driver != DriverSQLite && cfg.Driver != DriverPostgres {
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", cfg.Driver)
	}

	db, err := sqlx.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging %s database: %w", cfg.Driver, err)
	}

	s := New(db, logger)
	if cfg.Migrate {
		if _, err := s.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return s, nil
}

// New wraps an open database.
func New(db *sqlx.DB, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Select returns the rows of tbl matching q.
func (s *Store) Select(ctx context.Context, tbl string, q table.Query) ([]table.Record, error) {
	query, args, err := buildSelect(tbl, q)
	if err != nil {
		return nil, err
	}
	rows, err := queryRecords(ctx, s.db, query, args...)
	if err != nil {
		return nil, s.fail(ctx, "select", tbl, err)
	}
	return rows, nil
}

// Insert writes rows in one transaction. Rows without an id get a random
// UUID.
func (s *Store) Insert(ctx context.Context, tbl string, rows ...table.Record) ([]table.Record, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	var out []table.Record
	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		for _, row := range rows {
			query, args, err := buildInsert(tbl, withNewID(row), false)
			if err != nil {
				return err
			}
			stored, err := queryRecords(ctx, tx, query, args...)
			if err != nil {
				return err
			}
			out = append(out, stored...)
		}
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "insert", tbl, err)
	}
	return out, nil
}

// Update applies patch to the rows matching filters.
func (s *Store) Update(
	ctx context.Context, tbl string, patch table.Record, filters ...table.Filter,
) ([]table.Record, error) {
	query, args, err := buildUpdate(tbl, patch, filters)
	if err != nil {
		return nil, err
	}
	rows, err := queryRecords(ctx, s.db, query, args...)
	if err != nil {
		return nil, s.fail(ctx, "update", tbl, err)
	}
	return rows, nil
}

// Upsert inserts or merges rows keyed by id inside one transaction, so
// either every row is written or none is.
func (s *Store) Upsert(ctx context.Context, tbl string, rows []table.Record) ([]table.Record, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	var out []table.Record
	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		for _, row := range rows {
			query, args, err := buildInsert(tbl, withNewID(row), true)
			if err != nil {
				return err
			}
			stored, err := queryRecords(ctx, tx, query, args...)
			if err != nil {
				return err
			}
			out = append(out, stored...)
		}
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "upsert", tbl, err)
	}
	return out, nil
}

// Delete removes the rows matching filters.
func (s *Store) Delete(ctx context.Context, tbl string, filters ...table.Filter) error {
	query, args, err := buildDelete(tbl, filters)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...); err != nil {
		return s.fail(ctx, "delete", tbl, err)
	}
	return nil
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (s *Store) Name() string {
	return "database"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store) fail(ctx context.Context, op, tbl string, err error) error {
	err = translate(err)
	s.logger.ErrorContext(ctx, "sql statement failed",
		slog.String("operation", op),
		slog.String("table", tbl),
		slog.String("error", err.Error()),
	)
	return err
}

// queryRecords runs a statement that returns rows and scans each into a
// Record.
func queryRecords(ctx context.Context, q sqlx.ExtContext, query string, args ...any) ([]table.Record, error) {
	rows, err := q.QueryxContext(ctx, q.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []table.Record
	for rows.Next() {
		row := make(map[string]any)
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		out = append(out, table.Record(row))
	}
	return out, rows.Err()
}

// withNewID returns row with a random id when it has none.
func withNewID(row table.Record) table.Record {
	if row.Has(table.ColumnID) && row.ID() != "" {
		return row
	}
	out := row.Clone()
	if out == nil {
		out = table.Record{}
	}
	out[table.ColumnID] = uuid.NewString()
	return out
}

// sortedColumns returns the record's columns in a stable order.
func sortedColumns(r table.Record) []string {
	return slices.Sorted(maps.Keys(r))
}
