package text

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// wordPattern matches word-like token runs; everything between matches
// (punctuation, whitespace) is discarded. Spelled out as letters, digits,
// and underscore rather than \w because RE2's \w is ASCII-only and would
// split accented words like "naïve" into fragments.
const wordPattern = `[\p{L}\p{N}_]+`

// Normalizer turns raw article text into cleaned, tokenized sentences.
// It is immutable after construction and safe for concurrent use, so one
// instance can be shared by every worker in a pool.
//
// The cleaning steps run in a fixed order for every sentence: lower-case,
// tokenize, remove stop words, optionally stem, optionally drop tokens that
// do not start with a letter, drop tokens of length <= 1. Reordering these
// steps changes results (stemming can expose or hide a leading digit), so
// the order is part of the contract.
type Normalizer struct {
	splitter      *sentences.DefaultSentenceTokenizer
	wordRE        *regexp.Regexp
	stemWords     bool
	removeNumeric bool
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithStemming reduces each token to its Snowball (Porter2) English stem.
func WithStemming() Option {
	return func(n *Normalizer) {
		n.stemWords = true
	}
}

// WithNumericRemoval drops tokens that do not begin with an ASCII letter,
// removing purely numeric tokens like "19" or "2020".
func WithNumericRemoval() Option {
	return func(n *Normalizer) {
		n.removeNumeric = true
	}
}

// NewNormalizer creates a Normalizer with English sentence boundary
// detection and the English stop-word set.
func NewNormalizer(opts ...Option) (*Normalizer, error) {
	splitter, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}

	n := &Normalizer{
		splitter: splitter,
		wordRE:   regexp.MustCompile(wordPattern),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// Normalize splits text into sentences and cleans each one. It returns the
// normalized token sequences and the raw sentence texts, index-aligned and
// of equal length: sentences whose token sequence ends up empty are dropped
// together with their raw counterpart.
func (n *Normalizer) Normalize(text string) (normalized [][]string, raw []string) {
	for _, sentence := range n.splitter.Tokenize(text) {
		rawSentence := strings.TrimSpace(sentence.Text)
		if rawSentence == "" {
			continue
		}

		tokens := n.normalizeSentence(rawSentence)
		if len(tokens) == 0 {
			continue
		}

		normalized = append(normalized, tokens)
		raw = append(raw, rawSentence)
	}
	return normalized, raw
}

// normalizeSentence applies the per-token cleaning steps to one sentence.
func (n *Normalizer) normalizeSentence(sentence string) []string {
	lowered := strings.ToLower(sentence)
	words := n.wordRE.FindAllString(lowered, -1)

	tokens := make([]string, 0, len(words))
	for _, tok := range words {
		if stopWords[tok] {
			continue
		}
		if n.stemWords {
			if stemmed, err := snowball.Stem(tok, "english", false); err == nil {
				tok = stemmed
			}
		}
		if n.removeNumeric && !startsWithLetter(tok) {
			continue
		}
		if len(tok) <= 1 {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// startsWithLetter reports whether the token begins with an ASCII letter.
// Tokens are already lower-cased when this runs.
func startsWithLetter(tok string) bool {
	return len(tok) > 0 && tok[0] >= 'a' && tok[0] <= 'z'
}
