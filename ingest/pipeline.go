// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/corpora/ai"
	"github.com/poiesic/corpora/core"
	"github.com/poiesic/corpora/storage"
	"github.com/poiesic/corpora/text"
)

// Pipeline orchestrates a preprocessing run: it loads the article corpus,
// normalizes it into sentence rows on a worker pool, and appends the rows
// to a derived sentence table.
type Pipeline struct {
	articles       storage.ArticleRepository
	sentences      storage.SentenceRepository
	vectorizer     ai.Vectorizer // nil disables vectorization
	config         Config
	worker         *BatchWorker
	logger         *slog.Logger
	progressWriter io.Writer
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithProgressWriter sets the destination for progress output.
// Default is os.Stderr. Use io.Discard to silence progress.
func WithProgressWriter(w io.Writer) Option {
	return func(p *Pipeline) error {
		if w == nil {
			w = io.Discard
		}
		p.progressWriter = w
		return nil
	}
}

// NewPipeline creates a preprocessing pipeline.
// vectorizer may be nil; rows are then stored with null vectors.
// Zero-valued Config fields take their defaults.
func NewPipeline(
	articles storage.ArticleRepository,
	sentences storage.SentenceRepository,
	vectorizer ai.Vectorizer,
	config Config,
	opts ...Option,
) (*Pipeline, error) {
	if articles == nil {
		return nil, ErrArticleRepositoryRequired
	}
	if sentences == nil {
		return nil, ErrSentenceRepositoryRequired
	}

	config.normalize()

	p := &Pipeline{
		articles:       articles,
		sentences:      sentences,
		vectorizer:     vectorizer,
		config:         config,
		logger:         slog.Default(),
		progressWriter: os.Stderr,
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			return nil, optErr
		}
	}

	var normOpts []text.Option
	if config.StemWords {
		normOpts = append(normOpts, text.WithStemming())
	}
	if config.RemoveNumeric {
		normOpts = append(normOpts, text.WithNumericRemoval())
	}
	normalizer, err := text.NewNormalizer(normOpts...)
	if err != nil {
		return nil, err
	}

	p.worker = NewBatchWorker(normalizer, vectorizer, config.SampleSize, p.logger)

	return p, nil
}

// Run executes the preprocessing run.
//
// When Config.Fresh is false the run reuses the existing table and returns
// without touching storage. When Fresh is true the target table must be
// empty; a fresh run against a populated table fails with ErrTableNotEmpty
// rather than silently mixing two corpora.
//
// The run has two timed phases: preprocessing (concurrent, worker pool) and
// insertion (sequential appends, retried on store contention). A run marker
// recording row count and option fingerprint is written on success.
func (p *Pipeline) Run(ctx context.Context) error {
	logger := p.logger.With("run", uuid.NewString(), "table", p.config.Table)

	existing, err := p.sentences.CountRows(ctx, p.config.Table)
	if err != nil {
		return fmt.Errorf("failed to inspect sentence table: %w", err)
	}

	if !p.config.Fresh {
		if marker, merr := p.sentences.GetRunMarker(ctx, p.config.Table); merr == nil {
			logger.Info("reusing existing sentence table",
				"rows", existing, "completedAt", marker.CompletedAt, "fingerprint", marker.Fingerprint)
		} else {
			logger.Info("reusing existing sentence table", "rows", existing)
		}
		return nil
	}

	if existing > 0 {
		return fmt.Errorf("%w: %q has %d rows", ErrTableNotEmpty, p.config.Table, existing)
	}

	articles, err := p.articles.GetAllArticles(ctx)
	if err != nil {
		return fmt.Errorf("failed to load articles: %w", err)
	}
	if len(articles) == 0 {
		logger.Info("no articles to preprocess")
		return nil
	}

	chunks := SplitIntoChunks(articles, p.config.ChunkSize)
	logger.Info("starting preprocessing",
		"articles", len(articles), "chunks", len(chunks), "poolSize", p.config.PoolSize,
		"stem", p.config.StemWords, "removeNumeric", p.config.RemoveNumeric,
		"vectorize", p.vectorizer != nil)

	pool, err := ants.NewPool(p.config.PoolSize)
	if err != nil {
		return err
	}
	defer pool.Release()

	tracker := NewProgressTracker(p.progressWriter, len(articles), p.config.ReportInterval)
	tracker.Start()

	// Batches land in completion order; the table is unordered so the
	// arrival order of batches does not matter.
	results := make(chan []*core.SentenceRow, len(chunks))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var workerErrs []error

	for _, chunk := range chunks {
		chunk := chunk
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			rows, procErr := p.worker.Process(ctx, chunk)
			if procErr != nil {
				mu.Lock()
				workerErrs = append(workerErrs, procErr)
				mu.Unlock()
				return
			}

			results <- rows
			tracker.Increment(len(chunk))
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			workerErrs = append(workerErrs, submitErr)
			mu.Unlock()
		}
	}

	wg.Wait()
	close(results)
	tracker.Finish()

	if len(workerErrs) > 0 {
		return fmt.Errorf("preprocessing failed: %w", errors.Join(workerErrs...))
	}

	logger.Info("preprocessing complete", "elapsed", tracker.Elapsed())

	insertStart := time.Now()
	var totalRows uint64
	for batch := range results {
		if len(batch) == 0 {
			continue
		}

		appendErr := RetryFixed(ctx, func() error {
			return p.sentences.AppendRows(ctx, p.config.Table, batch)
		}, p.config.MaxAttempts, p.config.RetryDelay, func(err error) bool {
			return errors.Is(err, storage.ErrStoreContended)
		})
		if appendErr != nil {
			return fmt.Errorf("failed to append sentence rows after %d attempts: %w", p.config.MaxAttempts, appendErr)
		}

		totalRows += uint64(len(batch))
	}

	logger.Info("insertion complete", "rows", totalRows, "elapsed", time.Since(insertStart))

	marker := &core.RunMarker{
		Rows:        totalRows,
		Fingerprint: p.config.Fingerprint(),
		CompletedAt: time.Now().UTC(),
	}
	if err := p.sentences.SetRunMarker(ctx, p.config.Table, marker); err != nil {
		// The table itself is complete; a missing marker only degrades
		// the stats surface.
		logger.Warn("failed to record run marker", "err", err)
	}

	return nil
}
