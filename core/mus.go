package core

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the persisted types. These are written by hand rather
// than generated: the type set is small and SentenceRow needs a nullable
// vector encoding (presence flag + values).
var (
	// IDMUS serializes ID values.
	IDMUS = idMUS{}
	// SectionMUS serializes Section values.
	SectionMUS = sectionMUS{}
	// ArticleRecordMUS serializes ArticleRecord values.
	ArticleRecordMUS = articleRecordMUS{}
	// SentenceRowMUS serializes SentenceRow values.
	SentenceRowMUS = sentenceRowMUS{}
	// RunMarkerMUS serializes RunMarker values.
	RunMarkerMUS = runMarkerMUS{}

	tokensMUS = ord.NewSliceSer[string](ord.String)
	vectorMUS = ord.NewSliceSer[float32](raw.Float32)
)

var (
	_ mus.Serializer[ID]            = IDMUS
	_ mus.Serializer[Section]       = SectionMUS
	_ mus.Serializer[ArticleRecord] = ArticleRecordMUS
	_ mus.Serializer[SentenceRow]   = SentenceRowMUS
	_ mus.Serializer[RunMarker]     = RunMarkerMUS
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type sectionMUS struct{}

func (sectionMUS) Marshal(s Section, bs []byte) int {
	return varint.Int.Marshal(int(s), bs)
}

func (sectionMUS) Unmarshal(bs []byte) (Section, int, error) {
	v, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return 0, n, err
	}
	s := Section(v)
	if err := ValidateSection(s); err != nil {
		return 0, n, err
	}
	return s, n, nil
}

func (sectionMUS) Size(s Section) int {
	return varint.Int.Size(int(s))
}

func (sectionMUS) Skip(bs []byte) (int, error) {
	return varint.Int.Skip(bs)
}

type articleRecordMUS struct{}

func (articleRecordMUS) Marshal(a ArticleRecord, bs []byte) (n int) {
	n = ord.String.Marshal(a.ID, bs)
	n += ord.String.Marshal(a.Title, bs[n:])
	n += ord.String.Marshal(a.Abstract, bs[n:])
	n += ord.String.Marshal(a.Body, bs[n:])
	return n
}

func (articleRecordMUS) Unmarshal(bs []byte) (a ArticleRecord, n int, err error) {
	var n1 int
	if a.ID, n, err = ord.String.Unmarshal(bs); err != nil {
		return a, n, err
	}
	if a.Title, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.Abstract, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	a.Body, n1, err = ord.String.Unmarshal(bs[n:])
	return a, n + n1, err
}

func (articleRecordMUS) Size(a ArticleRecord) (n int) {
	n = ord.String.Size(a.ID)
	n += ord.String.Size(a.Title)
	n += ord.String.Size(a.Abstract)
	n += ord.String.Size(a.Body)
	return n
}

func (articleRecordMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	for i := 0; i < 4; i++ {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	return n, nil
}

type sentenceRowMUS struct{}

func (sentenceRowMUS) Marshal(r SentenceRow, bs []byte) (n int) {
	n = ord.String.Marshal(r.ArticleID, bs)
	n += SectionMUS.Marshal(r.Section, bs[n:])
	n += ord.String.Marshal(r.Raw, bs[n:])
	n += tokensMUS.Marshal(r.Tokens, bs[n:])
	n += ord.Bool.Marshal(r.Vector != nil, bs[n:])
	if r.Vector != nil {
		n += vectorMUS.Marshal(r.Vector, bs[n:])
	}
	return n
}

func (sentenceRowMUS) Unmarshal(bs []byte) (r SentenceRow, n int, err error) {
	var n1 int
	if r.ArticleID, n, err = ord.String.Unmarshal(bs); err != nil {
		return r, n, err
	}
	if r.Section, n1, err = SectionMUS.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.Raw, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.Tokens, n1, err = tokensMUS.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	var hasVector bool
	if hasVector, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if hasVector {
		if r.Vector, n1, err = vectorMUS.Unmarshal(bs[n:]); err != nil {
			return r, n + n1, err
		}
		n += n1
	}
	return r, n, nil
}

func (sentenceRowMUS) Size(r SentenceRow) (n int) {
	n = ord.String.Size(r.ArticleID)
	n += SectionMUS.Size(r.Section)
	n += ord.String.Size(r.Raw)
	n += tokensMUS.Size(r.Tokens)
	n += ord.Bool.Size(r.Vector != nil)
	if r.Vector != nil {
		n += vectorMUS.Size(r.Vector)
	}
	return n
}

func (sentenceRowMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = ord.String.Skip(bs); err != nil {
		return n, err
	}
	if n1, err = SectionMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = ord.String.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = tokensMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	var hasVector bool
	if hasVector, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if hasVector {
		if n1, err = vectorMUS.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	return n, nil
}

type runMarkerMUS struct{}

func (runMarkerMUS) Marshal(m RunMarker, bs []byte) (n int) {
	n = varint.Uint64.Marshal(m.Rows, bs)
	n += IDMUS.Marshal(m.Fingerprint, bs[n:])
	n += varint.Int64.Marshal(m.CompletedAt.UnixMicro(), bs[n:])
	return n
}

func (runMarkerMUS) Unmarshal(bs []byte) (m RunMarker, n int, err error) {
	var n1 int
	if m.Rows, n, err = varint.Uint64.Unmarshal(bs); err != nil {
		return m, n, err
	}
	if m.Fingerprint, n1, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return m, n + n1, err
	}
	n += n1
	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	if err == nil {
		m.CompletedAt = time.UnixMicro(micros).UTC()
	}
	return m, n + n1, err
}

func (runMarkerMUS) Size(m RunMarker) (n int) {
	n = varint.Uint64.Size(m.Rows)
	n += IDMUS.Size(m.Fingerprint)
	n += varint.Int64.Size(m.CompletedAt.UnixMicro())
	return n
}

func (runMarkerMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = varint.Uint64.Skip(bs); err != nil {
		return n, err
	}
	if n1, err = IDMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	n1, err = varint.Int64.Skip(bs[n:])
	return n + n1, err
}
