package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/corpora/core"
)

// Key prefixes for different data types
const (
	articlePrefix   = "artrec"
	sentencePrefix  = "senrow"
	sentenceSeqName = "senrowseq"
	runMarkerPrefix = "senmeta"
)

// makeArticleKey generates a key for an article record by its external ID.
// Article IDs sort lexicographically, which fixes the corpus scan order.
func makeArticleKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", articlePrefix, id))
}

// makeArticleScanPrefix generates the prefix for iterating all articles.
func makeArticleScanPrefix() []byte {
	return []byte(articlePrefix + ":")
}

// makeSentenceKey generates a composite key for a sentence row.
// Format: prefix:table:rowID with the row ID written in BigEndian order so
// lexicographic iteration returns rows in insertion order.
func makeSentenceKey(table string, id core.ID) []byte {
	prefix := sentencePrefix + ":" + table + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeSentenceScanPrefix generates the prefix for iterating one table's rows.
func makeSentenceScanPrefix(table string) []byte {
	return []byte(sentencePrefix + ":" + table + ":")
}

// makeSentenceSeqKey generates the per-table row ID sequence name.
func makeSentenceSeqKey(table string) string {
	return fmt.Sprintf("%s:%s", sentenceSeqName, table)
}

// makeRunMarkerKey generates the key for a table's run marker.
func makeRunMarkerKey(table string) []byte {
	return []byte(fmt.Sprintf("%s:%s", runMarkerPrefix, table))
}
