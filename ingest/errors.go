package ingest

import "errors"

var (
	// ErrArticleRepositoryRequired is returned when an article repository is not provided.
	ErrArticleRepositoryRequired = errors.New("article repository required")

	// ErrSentenceRepositoryRequired is returned when a sentence repository is not provided.
	ErrSentenceRepositoryRequired = errors.New("sentence repository required")

	// ErrInvalidMaxAttempts is returned when maxAttempts is not positive.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrTableNotEmpty is returned when a fresh run targets a table that
	// already contains rows. Pass a different table name or delete the store.
	ErrTableNotEmpty = errors.New("sentence table already contains rows")
)
