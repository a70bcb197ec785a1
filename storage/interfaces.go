package storage

import (
	"context"

	"github.com/poiesic/corpora/core"
)

// ArticleRepository provides read access to the raw article corpus plus the
// write path the loader uses to populate it. Implementations must be
// thread-safe and support concurrent access.
type ArticleRepository interface {
	// AddArticles stores one or more article records.
	// Records are validated before writing.
	AddArticles(ctx context.Context, articles ...*core.ArticleRecord) error

	// GetAllArticles retrieves every article record, ordered by article ID.
	// The pipeline calls this exactly once per run.
	GetAllArticles(ctx context.Context) ([]*core.ArticleRecord, error)

	// CountArticles returns the number of stored article records.
	CountArticles(ctx context.Context) (int, error)

	// Close closes the repository and releases resources.
	Close() error
}

// SentenceRepository is the append-only sink for derived sentence rows.
// Rows are grouped into named tables; there is no update or delete path and
// no uniqueness constraint beyond the generated row keys.
type SentenceRepository interface {
	// AppendRows appends all rows to the named table as one transaction.
	// Rows are validated before writing. Returns ErrStoreContended (possibly
	// wrapped) when the append lost a transaction conflict and can be retried.
	AppendRows(ctx context.Context, table string, rows []*core.SentenceRow) error

	// CountRows returns the number of rows in the named table.
	CountRows(ctx context.Context, table string) (int, error)

	// GetAllRows retrieves every row of the named table in key order.
	// Intended for tests and small inspections, not bulk processing.
	GetAllRows(ctx context.Context, table string) ([]*core.SentenceRow, error)

	// SetRunMarker records the run that populated the named table.
	SetRunMarker(ctx context.Context, table string, marker *core.RunMarker) error

	// GetRunMarker retrieves the run marker for the named table.
	// Returns ErrNotFound if no run has marked the table.
	GetRunMarker(ctx context.Context, table string) (*core.RunMarker, error)

	// Close closes the repository and releases resources.
	Close() error
}
