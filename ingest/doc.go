// Package ingest provides pipeline orchestration for preprocessing the
// article corpus into derived sentence tables.
//
// The Pipeline type manages the full run:
//   - Loading every article from storage
//   - Splitting the corpus into fixed-size chunks
//   - Normalizing chunks concurrently on a worker pool
//   - Sampling body sentences down to a per-article cap
//   - Optionally vectorizing each sentence
//   - Appending the resulting rows to a named sentence table
//
// Appends that lose a storage transaction conflict are retried with a fixed
// delay. A run marker recording the row count and option fingerprint is
// written once a run completes.
package ingest
