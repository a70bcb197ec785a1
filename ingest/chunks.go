package ingest

import "github.com/poiesic/corpora/core"

// SplitIntoChunks partitions articles into contiguous chunks of at most
// chunkSize records. The final chunk may be smaller. Order is preserved.
func SplitIntoChunks(articles []*core.ArticleRecord, chunkSize int) [][]*core.ArticleRecord {
	if chunkSize < 1 {
		chunkSize = 1
	}
	if len(articles) == 0 {
		return nil
	}

	chunks := make([][]*core.ArticleRecord, 0, (len(articles)+chunkSize-1)/chunkSize)
	for start := 0; start < len(articles); start += chunkSize {
		end := start + chunkSize
		if end > len(articles) {
			end = len(articles)
		}
		chunks = append(chunks, articles[start:end])
	}
	return chunks
}
