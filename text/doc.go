// Package text provides the linguistic normalization capability used by the
// preprocessing pipeline: English sentence boundary detection, word
// tokenization, stop-word removal, and optional stemming and numeric-token
// removal.
//
// A Normalizer is constructed once with its cleaning flags and shared
// read-only across workers; it holds no per-call state.
package text
