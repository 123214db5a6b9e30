package ports

import (
	"context"
	"io"

	"github.com/MiguelCav2025/sitecav/internal/domain/table"
)

// TableStore is the table half of the hosted backend contract. Implemented
// by the PostgREST client, the SQL store and the in-memory store.
// Implementations translate transport failures into domain errors
// (domain.ErrNotFound, domain.ErrUnavailable, ...); they do not wrap them in
// the Fetch/Write taxonomy, which is the repository's job.
type TableStore interface {
	// Select returns the rows matching q, in q's order.
	Select(ctx context.Context, tbl string, q table.Query) ([]table.Record, error)

	// Insert writes new rows and returns them as stored, with server-assigned
	// columns (id, created_at) filled in.
	Insert(ctx context.Context, tbl string, rows ...table.Record) ([]table.Record, error)

	// Update applies patch to every row matching the filters and returns the
	// updated rows. Zero matching rows is not an error.
	Update(ctx context.Context, tbl string, patch table.Record, filters ...table.Filter) ([]table.Record, error)

	// Upsert inserts or merges rows keyed by id in a single all-or-nothing
	// write and returns them as stored.
	Upsert(ctx context.Context, tbl string, rows []table.Record) ([]table.Record, error)

	// Delete removes every row matching the filters. At least one filter is
	// required.
	Delete(ctx context.Context, tbl string, filters ...table.Filter) error
}

// ObjectStorage is the storage half of the hosted backend contract.
// Implemented by the hosted storage client, the S3 store and the in-memory
// store.
type ObjectStorage interface {
	// Upload stores body under bucket/path and returns the stored path.
	Upload(ctx context.Context, bucket, path string, body io.Reader, contentType string) (string, error)

	// PublicURL returns the public URL of bucket/path. It does not check
	// that the object exists.
	PublicURL(bucket, path string) string

	// Remove deletes the given objects. Missing objects are ignored.
	Remove(ctx context.Context, bucket string, paths ...string) error

	// ObjectPath is the inverse of PublicURL: it returns the object path of
	// a URL produced by PublicURL for bucket, or false if url belongs to
	// another bucket or host.
	ObjectPath(bucket, url string) (string, bool)
}

// Mailer delivers plain-text e-mail.
type Mailer interface {
	// Send delivers a message to the configured inbox. replyTo is set as the
	// Reply-To header when non-empty.
	Send(ctx context.Context, replyTo, subject, body string) error
}
