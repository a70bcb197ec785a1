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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidArticleRecord indicates an ArticleRecord failed validation.
	ErrInvalidArticleRecord = errors.New("invalid article record")

	// ErrInvalidSentenceRow indicates a SentenceRow failed validation.
	ErrInvalidSentenceRow = errors.New("invalid sentence row")

	// ErrEmptyArticleID indicates the article ID field is empty.
	ErrEmptyArticleID = errors.New("article id cannot be empty")

	// ErrEmptyRawSentence indicates the raw sentence text is empty.
	ErrEmptyRawSentence = errors.New("raw sentence cannot be empty")

	// ErrEmptyTokens indicates a sentence row carries no normalized tokens.
	ErrEmptyTokens = errors.New("normalized tokens cannot be empty")

	// ErrInvalidSection indicates an invalid Section value.
	ErrInvalidSection = errors.New("invalid section")
)
