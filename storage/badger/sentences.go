package badger

import (
	"context"
	"errors"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/corpora/core"
	"github.com/poiesic/corpora/storage"
)

// SentenceRepository implements storage.SentenceRepository for BadgerDB.
// Row IDs come from a per-table BadgerDB sequence, so appends never collide
// and iteration order matches insertion order.
type SentenceRepository struct {
	backend *Backend

	mu   sync.Mutex
	seqs map[string]*badger.Sequence
}

var _ storage.SentenceRepository = (*SentenceRepository)(nil)

// NewSentenceRepository creates a new SentenceRepository.
func NewSentenceRepository(backend *Backend) (storage.SentenceRepository, error) {
	return &SentenceRepository{
		backend: backend,
		seqs:    make(map[string]*badger.Sequence),
	}, nil
}

// Close releases all table sequences.
func (r *SentenceRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for table, seq := range r.seqs {
		if err := seq.Release(); err != nil {
			errs = append(errs, err)
		}
		delete(r.seqs, table)
	}
	return errors.Join(errs...)
}

// sequence returns the row ID sequence for a table, creating it on first use.
func (r *SentenceRepository) sequence(table string) (*badger.Sequence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seq, ok := r.seqs[table]; ok {
		return seq, nil
	}
	seq, err := r.backend.GetSequence(makeSentenceSeqKey(table))
	if err != nil {
		return nil, err
	}
	r.seqs[table] = seq
	return seq, nil
}

// AppendRows appends all rows to the named table as one transaction.
func (r *SentenceRepository) AppendRows(ctx context.Context, table string, rows []*core.SentenceRow) error {
	if len(rows) == 0 {
		return nil
	}

	seq, err := r.sequence(table)
	if err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, row := range rows {
			if err := core.ValidateSentenceRow(row); err != nil {
				return err
			}

			nextID, err := seq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = seq.Next()
				if err != nil {
					return err
				}
			}

			key := makeSentenceKey(table, core.ID(nextID))
			if err := tx.Set(key, storage.MarshalSentenceRow(row)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// CountRows returns the number of rows in the named table.
func (r *SentenceRepository) CountRows(ctx context.Context, table string) (int, error) {
	count := 0

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeSentenceScanPrefix(table)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)

	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetAllRows retrieves every row of the named table in key order.
func (r *SentenceRepository) GetAllRows(ctx context.Context, table string) ([]*core.SentenceRow, error) {
	var rows []*core.SentenceRow

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeSentenceScanPrefix(table)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				row, err := storage.UnmarshalSentenceRow(val)
				if err != nil {
					return err
				}
				rows = append(rows, row)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SetRunMarker records the run that populated the named table.
func (r *SentenceRepository) SetRunMarker(ctx context.Context, table string, marker *core.RunMarker) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeRunMarkerKey(table), storage.MarshalRunMarker(marker)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetRunMarker retrieves the run marker for the named table.
func (r *SentenceRepository) GetRunMarker(ctx context.Context, table string) (*core.RunMarker, error) {
	var marker *core.RunMarker

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeRunMarkerKey(table))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			marker, err = storage.UnmarshalRunMarker(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return marker, nil
}
