package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/corpora/core"
	"github.com/poiesic/corpora/storage"
)

// ArticleRepository implements storage.ArticleRepository for BadgerDB.
type ArticleRepository struct {
	backend *Backend
}

var _ storage.ArticleRepository = (*ArticleRepository)(nil)

// NewArticleRepository creates a new ArticleRepository.
func NewArticleRepository(backend *Backend) (storage.ArticleRepository, error) {
	return &ArticleRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *ArticleRepository) Close() error {
	return nil
}

// AddArticles stores one or more article records.
func (r *ArticleRepository) AddArticles(ctx context.Context, articles ...*core.ArticleRecord) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, article := range articles {
			if err := core.ValidateArticleRecord(article); err != nil {
				return err
			}
			key := makeArticleKey(article.ID)
			if err := tx.Set(key, storage.MarshalArticleRecord(article)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetAllArticles retrieves every article record, ordered by article ID.
func (r *ArticleRepository) GetAllArticles(ctx context.Context) ([]*core.ArticleRecord, error) {
	var articles []*core.ArticleRecord

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeArticleScanPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				article, err := storage.UnmarshalArticleRecord(val)
				if err != nil {
					return err
				}
				articles = append(articles, article)
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
	return articles, nil
}

// CountArticles returns the number of stored article records.
func (r *ArticleRepository) CountArticles(ctx context.Context) (int, error) {
	count := 0

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeArticleScanPrefix()
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
