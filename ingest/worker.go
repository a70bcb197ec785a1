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
	"log/slog"

	"github.com/poiesic/corpora/ai"
	"github.com/poiesic/corpora/core"
	"github.com/poiesic/corpora/text"
)

// BatchWorker converts a chunk of articles into sentence rows.
// One worker instance is shared by all pool goroutines; it holds no
// mutable state beyond the (thread-safe) normalizer and vectorizer.
type BatchWorker struct {
	normalizer *text.Normalizer
	vectorizer ai.Vectorizer // nil disables vectorization
	sampleSize int
	logger     *slog.Logger
}

// NewBatchWorker creates a batch worker.
// vectorizer may be nil, in which case rows are emitted with nil vectors.
// sampleSize caps the number of body sentences kept per article.
func NewBatchWorker(normalizer *text.Normalizer, vectorizer ai.Vectorizer, sampleSize int, logger *slog.Logger) *BatchWorker {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchWorker{
		normalizer: normalizer,
		vectorizer: vectorizer,
		sampleSize: sampleSize,
		logger:     logger,
	}
}

// Process normalizes every article in the chunk and returns the resulting
// sentence rows. Body sections are sampled down to the configured limit;
// title and abstract sentences are always kept in full.
//
// When a vectorizer is configured, a sentence whose embedding fails is
// dropped rather than failing the chunk: embedding services shed load
// under pressure and one lost sentence must not cost a thousand articles.
func (w *BatchWorker) Process(ctx context.Context, chunk []*core.ArticleRecord) ([]*core.SentenceRow, error) {
	var rows []*core.SentenceRow

	for _, article := range chunk {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for _, st := range article.SectionTexts() {
			tokens, raw := w.normalizer.Normalize(st.Text)
			if st.Section == core.SectionBody {
				tokens, raw = SampleSentencePairs(tokens, raw, w.sampleSize)
			}

			for i := range tokens {
				row := &core.SentenceRow{
					ArticleID: article.ID,
					Section:   st.Section,
					Raw:       raw[i],
					Tokens:    tokens[i],
				}

				if w.vectorizer != nil {
					vector, err := w.vectorizer.Vectorize(ctx, tokens[i])
					if err != nil {
						w.logger.Warn("dropping sentence after vectorization failure",
							"article", article.ID, "section", st.Section.String(), "err", err)
						continue
					}
					row.Vector = vector
				}

				rows = append(rows, row)
			}
		}
	}

	return rows, nil
}
