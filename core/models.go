package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for persisted entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Section identifies which text field of an article a sentence came from.
type Section int

const (
	// SectionTitle is the article title.
	SectionTitle Section = iota + 1
	// SectionAbstract is the article abstract.
	SectionAbstract
	// SectionBody is the article body text.
	SectionBody
)

// String returns the persisted name of the section.
func (s Section) String() string {
	switch s {
	case SectionTitle:
		return "title"
	case SectionAbstract:
		return "abstract"
	case SectionBody:
		return "body"
	default:
		return "unknown"
	}
}

// ArticleRecord is one raw article as stored by the corpus loader.
// It is read-only input to the preprocessing pipeline; an empty section
// field means that section is absent for the article.
type ArticleRecord struct {
	ID       string
	Title    string
	Abstract string
	Body     string
}

// SectionText pairs a section identifier with its raw text.
type SectionText struct {
	Section Section
	Text    string
}

// SectionTexts returns the article's non-empty sections paired with their
// text, in title, abstract, body order.
func (a *ArticleRecord) SectionTexts() []SectionText {
	sections := make([]SectionText, 0, 3)
	if a.Title != "" {
		sections = append(sections, SectionText{Section: SectionTitle, Text: a.Title})
	}
	if a.Abstract != "" {
		sections = append(sections, SectionText{Section: SectionAbstract, Text: a.Abstract})
	}
	if a.Body != "" {
		sections = append(sections, SectionText{Section: SectionBody, Text: a.Body})
	}
	return sections
}

// SentenceRow is one persisted normalized sentence derived from an article
// section. Tokens preserve normalization order; Vector is nil when the run
// had no vectorizer configured.
type SentenceRow struct {
	ArticleID string
	Section   Section
	Raw       string
	Tokens    []string
	Vector    []float32
}

// RunMarker records the preprocessing run that populated a sentences table.
type RunMarker struct {
	Rows        uint64
	Fingerprint ID // hash of the run options that affect row contents
	CompletedAt time.Time
}
