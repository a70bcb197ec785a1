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


package storage

import (
	"github.com/poiesic/corpora/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalArticleRecord serializes an ArticleRecord to bytes.
func MarshalArticleRecord(article *core.ArticleRecord) []byte {
	buf := make([]byte, core.ArticleRecordMUS.Size(*article))
	core.ArticleRecordMUS.Marshal(*article, buf)
	return buf
}

// UnmarshalArticleRecord deserializes an ArticleRecord from bytes.
func UnmarshalArticleRecord(data []byte) (*core.ArticleRecord, error) {
	article, _, err := core.ArticleRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// MarshalSentenceRow serializes a SentenceRow to bytes.
func MarshalSentenceRow(row *core.SentenceRow) []byte {
	buf := make([]byte, core.SentenceRowMUS.Size(*row))
	core.SentenceRowMUS.Marshal(*row, buf)
	return buf
}

// UnmarshalSentenceRow deserializes a SentenceRow from bytes.
func UnmarshalSentenceRow(data []byte) (*core.SentenceRow, error) {
	row, _, err := core.SentenceRowMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// MarshalRunMarker serializes a RunMarker to bytes.
func MarshalRunMarker(marker *core.RunMarker) []byte {
	buf := make([]byte, core.RunMarkerMUS.Size(*marker))
	core.RunMarkerMUS.Marshal(*marker, buf)
	return buf
}

// UnmarshalRunMarker deserializes a RunMarker from bytes.
func UnmarshalRunMarker(data []byte) (*core.RunMarker, error) {
	marker, _, err := core.RunMarkerMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &marker, nil
}
