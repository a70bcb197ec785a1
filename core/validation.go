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

import "fmt"

// ValidateArticleRecord validates an ArticleRecord according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//
// NOT validated:
//   - Section texts (an article with no text in any section is legal input;
//     the pipeline simply produces no rows for it)
func ValidateArticleRecord(article *ArticleRecord) error {
	if article == nil {
		return fmt.Errorf("%w: article is nil", ErrInvalidArticleRecord)
	}

	if article.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidArticleRecord, ErrEmptyArticleID)
	}

	return nil
}

// ValidateSentenceRow validates a SentenceRow according to domain rules.
//
// Validation rules:
//   - ArticleID must not be empty
//   - Section must be valid
//   - Raw must not be empty
//   - Tokens must not be empty (empty sentences are dropped upstream,
//     never persisted)
//
// NOT validated:
//   - Vector (nil is the legal encoding for "no embedding")
func ValidateSentenceRow(row *SentenceRow) error {
	if row == nil {
		return fmt.Errorf("%w: row is nil", ErrInvalidSentenceRow)
	}

	if row.ArticleID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSentenceRow, ErrEmptyArticleID)
	}

	if err := ValidateSection(row.Section); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSentenceRow, err)
	}

	if row.Raw == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSentenceRow, ErrEmptyRawSentence)
	}

	if len(row.Tokens) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSentenceRow, ErrEmptyTokens)
	}

	return nil
}

// ValidateSection validates that a Section has a valid value.
func ValidateSection(section Section) error {
	if section != SectionTitle && section != SectionAbstract && section != SectionBody {
		return fmt.Errorf("%w: value %d", ErrInvalidSection, section)
	}
	return nil
}
