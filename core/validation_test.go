package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateArticleRecord(t *testing.T) {
	tests := []struct {
		name    string
		article *ArticleRecord
		wantErr error
	}{
		{
			name:    "valid article",
			article: &ArticleRecord{ID: "cord-1234", Title: "A title."},
		},
		{
			name:    "valid article with no text at all",
			article: &ArticleRecord{ID: "cord-5678"},
		},
		{
			name:    "nil article",
			article: nil,
			wantErr: ErrInvalidArticleRecord,
		},
		{
			name:    "empty id",
			article: &ArticleRecord{Title: "A title."},
			wantErr: ErrEmptyArticleID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArticleRecord(tt.article)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateSentenceRow(t *testing.T) {
	valid := func() *SentenceRow {
		return &SentenceRow{
			ArticleID: "cord-1234",
			Section:   SectionTitle,
			Raw:       "COVID-19 spreads fast.",
			Tokens:    []string{"covid", "spreads", "fast"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*SentenceRow)
		wantErr error
	}{
		{
			name:   "valid row without vector",
			mutate: func(r *SentenceRow) {},
		},
		{
			name:   "valid row with vector",
			mutate: func(r *SentenceRow) { r.Vector = []float32{0.1, 0.2} },
		},
		{
			name:    "empty article id",
			mutate:  func(r *SentenceRow) { r.ArticleID = "" },
			wantErr: ErrEmptyArticleID,
		},
		{
			name:    "invalid section",
			mutate:  func(r *SentenceRow) { r.Section = Section(9) },
			wantErr: ErrInvalidSection,
		},
		{
			name:    "empty raw sentence",
			mutate:  func(r *SentenceRow) { r.Raw = "" },
			wantErr: ErrEmptyRawSentence,
		},
		{
			name:    "empty tokens",
			mutate:  func(r *SentenceRow) { r.Tokens = nil },
			wantErr: ErrEmptyTokens,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := valid()
			tt.mutate(row)

			err := ValidateSentenceRow(row)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSentenceRow)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("nil row", func(t *testing.T) {
		err := ValidateSentenceRow(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSentenceRow)
	})
}
