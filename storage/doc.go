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


// Package storage provides the storage abstraction layer for corpora.
//
// This package defines repository interfaces that decouple storage
// implementation from the preprocessing pipeline. The article corpus is
// read-only input; the sentences tables are append-only output.
//
// # Constructor Return Type Pattern
//
// Public constructors in implementation packages return these interfaces
// to enforce abstraction:
//
//	repo, err := badger.NewArticleRepository(backend) // returns storage.ArticleRepository
//
// Internal constructors may return concrete types since they are only used
// within the implementation package.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support concurrent
// access from multiple goroutines. Sentence appends that lose a transaction
// conflict surface ErrStoreContended so callers can apply a bounded retry.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific timeout
// requirements.
package storage
