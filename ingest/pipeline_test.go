package ingest

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/poiesic/corpora/ai/mock"
	"github.com/poiesic/corpora/core"
	"github.com/poiesic/corpora/storage"
	badgerstore "github.com/poiesic/corpora/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Fresh = true
	cfg.ChunkSize = 2
	cfg.PoolSize = 4
	cfg.RetryDelay = time.Millisecond
	return cfg
}

func setupPipelineRepos(t *testing.T) (storage.ArticleRepository, storage.SentenceRepository) {
	t.Helper()
	articles, sentences, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		sentences.Close()
		articles.Close()
		backend.Close()
	})
	return articles, sentences
}

func seedArticles(t *testing.T, repo storage.ArticleRepository, n int) {
	t.Helper()
	records := make([]*core.ArticleRecord, 0, n)
	for _, a := range makeArticles(n) {
		a.Title = "Vaccination reduced hospital admissions."
		a.Abstract = "The cohort was followed for two years. Outcomes improved measurably."
		records = append(records, a)
	}
	require.NoError(t, repo.AddArticles(context.Background(), records...))
}

func TestPipeline_Run_WritesRows(t *testing.T) {
	articles, sentences := setupPipelineRepos(t)
	seedArticles(t, articles, 5)

	cfg := testConfig()
	p, err := NewPipeline(articles, sentences, nil, cfg, WithProgressWriter(io.Discard))
	require.NoError(t, err)

	require.NoError(t, p.Run(context.Background()))

	count, err := sentences.CountRows(context.Background(), cfg.Table)
	require.NoError(t, err)
	// 1 title + 2 abstract sentences per article
	assert.Equal(t, 15, count)

	rows, err := sentences.GetAllRows(context.Background(), cfg.Table)
	require.NoError(t, err)
	for _, row := range rows {
		assert.NotEmpty(t, row.ArticleID)
		assert.NotEmpty(t, row.Tokens)
		assert.Nil(t, row.Vector, "no vectorizer configured")
	}

	marker, err := sentences.GetRunMarker(context.Background(), cfg.Table)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), marker.Rows)
	assert.Equal(t, cfg.Fingerprint(), marker.Fingerprint)
	assert.False(t, marker.CompletedAt.IsZero())
}

func TestPipeline_Run_WithVectorizer(t *testing.T) {
	articles, sentences := setupPipelineRepos(t)
	seedArticles(t, articles, 2)

	vectorizer := mock.NewMockVectorizer()
	cfg := testConfig()
	p, err := NewPipeline(articles, sentences, vectorizer, cfg, WithProgressWriter(io.Discard))
	require.NoError(t, err)

	require.NoError(t, p.Run(context.Background()))

	rows, err := sentences.GetAllRows(context.Background(), cfg.Table)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	for _, row := range rows {
		assert.Len(t, row.Vector, 384)
	}
	assert.Equal(t, len(rows), vectorizer.CallCount())
}

func TestPipeline_Run_ReuseExistingTable(t *testing.T) {
	articles, sentences := setupPipelineRepos(t)
	seedArticles(t, articles, 3)

	cfg := testConfig()
	p, err := NewPipeline(articles, sentences, nil, cfg, WithProgressWriter(io.Discard))
	require.NoError(t, err)
	require.NoError(t, p.Run(context.Background()))

	before, err := sentences.CountRows(context.Background(), cfg.Table)
	require.NoError(t, err)

	// Second run without Fresh reuses the table untouched
	cfg.Fresh = false
	reuse, err := NewPipeline(articles, sentences, nil, cfg, WithProgressWriter(io.Discard))
	require.NoError(t, err)
	require.NoError(t, reuse.Run(context.Background()))

	after, err := sentences.CountRows(context.Background(), cfg.Table)
	require.NoError(t, err)
	assert.Equal(t, before, after, "reuse run must not write rows")
}

func TestPipeline_Run_FreshAgainstPopulatedTable(t *testing.T) {
	articles, sentences := setupPipelineRepos(t)
	seedArticles(t, articles, 1)

	cfg := testConfig()
	p, err := NewPipeline(articles, sentences, nil, cfg, WithProgressWriter(io.Discard))
	require.NoError(t, err)
	require.NoError(t, p.Run(context.Background()))

	again, err := NewPipeline(articles, sentences, nil, cfg, WithProgressWriter(io.Discard))
	require.NoError(t, err)
	assert.ErrorIs(t, again.Run(context.Background()), ErrTableNotEmpty)
}

func TestPipeline_Run_EmptyCorpus(t *testing.T) {
	articles, sentences := setupPipelineRepos(t)

	cfg := testConfig()
	p, err := NewPipeline(articles, sentences, nil, cfg, WithProgressWriter(io.Discard))
	require.NoError(t, err)

	require.NoError(t, p.Run(context.Background()))

	count, err := sentences.CountRows(context.Background(), cfg.Table)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPipeline_RequiresRepositories(t *testing.T) {
	articles, sentences := setupPipelineRepos(t)

	_, err := NewPipeline(nil, sentences, nil, testConfig())
	assert.ErrorIs(t, err, ErrArticleRepositoryRequired)

	_, err = NewPipeline(articles, nil, nil, testConfig())
	assert.ErrorIs(t, err, ErrSentenceRepositoryRequired)
}

// contendedSentenceRepo fails the first N appends with ErrStoreContended.
type contendedSentenceRepo struct {
	storage.SentenceRepository

	mu        sync.Mutex
	failures  int
	attempts  int
	succeeded int
}

func (c *contendedSentenceRepo) AppendRows(ctx context.Context, table string, rows []*core.SentenceRow) error {
	c.mu.Lock()
	c.attempts++
	fail := c.failures > 0
	if fail {
		c.failures--
	} else {
		c.succeeded++
	}
	c.mu.Unlock()

	if fail {
		return storage.ErrStoreContended
	}
	return c.SentenceRepository.AppendRows(ctx, table, rows)
}

func TestPipeline_Run_RetriesContendedAppends(t *testing.T) {
	articles, sentences := setupPipelineRepos(t)
	seedArticles(t, articles, 1)

	wrapped := &contendedSentenceRepo{SentenceRepository: sentences, failures: 2}

	cfg := testConfig()
	p, err := NewPipeline(articles, wrapped, nil, cfg, WithProgressWriter(io.Discard))
	require.NoError(t, err)

	require.NoError(t, p.Run(context.Background()))

	assert.GreaterOrEqual(t, wrapped.attempts, 3, "two contended attempts plus the success")

	count, err := sentences.CountRows(context.Background(), cfg.Table)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestPipeline_Run_GivesUpAfterMaxAttempts(t *testing.T) {
	articles, sentences := setupPipelineRepos(t)
	seedArticles(t, articles, 1)

	wrapped := &contendedSentenceRepo{SentenceRepository: sentences, failures: 100}

	cfg := testConfig()
	cfg.MaxAttempts = 3
	p, err := NewPipeline(articles, wrapped, nil, cfg, WithProgressWriter(io.Discard))
	require.NoError(t, err)

	err = p.Run(context.Background())
	assert.ErrorIs(t, err, storage.ErrStoreContended)
	assert.Equal(t, 3, wrapped.attempts)
}
