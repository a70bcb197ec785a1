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


package corpora

import (
	"log/slog"

	"github.com/poiesic/corpora/ai"
	"github.com/poiesic/corpora/ingest"
	"github.com/poiesic/corpora/storage"
	"github.com/poiesic/corpora/storage/badger"
)

// Database bundles the storage backend with the article and sentence
// repositories. It is the entry point for library users.
type Database struct {
	backend      *badger.Backend
	articleRepo  storage.ArticleRepository
	sentenceRepo storage.SentenceRepository
	logger       *slog.Logger
}

// NewDatabase opens (or creates) the corpus database at filePath.
func NewDatabase(filePath string) (*Database, error) {
	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create article repository
	articleRepo, err := badger.NewArticleRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create sentence repository
	sentenceRepo, err := badger.NewSentenceRepository(backend)
	if err != nil {
		articleRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:      backend,
		articleRepo:  articleRepo,
		sentenceRepo: sentenceRepo,
		logger:       slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Close repositories before the backend
	if err := db.sentenceRepo.Close(); err != nil {
		db.logger.Error("error closing sentence repository", "err", err)
		return err
	}
	if err := db.articleRepo.Close(); err != nil {
		db.logger.Error("error closing article repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) ArticleRepository() storage.ArticleRepository {
	return db.articleRepo
}

func (db *Database) SentenceRepository() storage.SentenceRepository {
	return db.sentenceRepo
}

// NewPreprocessor creates a preprocessing pipeline over this database.
// vectorizer may be nil to store sentences without embeddings; build one
// from an ai.Config via the ai/openai package.
func (db *Database) NewPreprocessor(vectorizer ai.Vectorizer, config ingest.Config, opts ...ingest.Option) (*ingest.Pipeline, error) {
	return ingest.NewPipeline(db.articleRepo, db.sentenceRepo, vectorizer, config, opts...)
}
