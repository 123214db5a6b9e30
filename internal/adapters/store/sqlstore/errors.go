package sqlstore

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/MiguelCav2025/sitecav/internal/domain"
)

// translate maps driver errors onto domain sentinels, keeping the driver
// error in the chain.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if sentinel := classify(err); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}

func classify(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrNotFound
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone):
		return domain.ErrUnavailable
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505", "23503":
			return domain.ErrConflict
		case "23502", "23514", "22P02", "22001":
			return domain.ErrValidation
		}
		if pqErr.Code.Class() == "08" || pqErr.Code.Class() == "57" {
			return domain.ErrUnavailable
		}
		return nil
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		switch code {
		case sqlite3.SQLITE_CONSTRAINT_NOTNULL, sqlite3.SQLITE_CONSTRAINT_CHECK:
			return domain.ErrValidation
		}
		// Primary result code, for builds that report only that.
		switch code & 0xff {
		case sqlite3.SQLITE_CONSTRAINT:
			return domain.ErrConflict
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return domain.ErrUnavailable
		}
	}
	return nil
}
