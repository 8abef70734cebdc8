// entry.go - the LOB node kinds: SmallRoot / LargeRootYukon / Internal / Data / Null
package lob

import (
	"errors"

	"github.com/wilhasse/go-mdf/format"
	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
)

// ErrUnknownLobType is returned for a type byte outside the closed set.
var ErrUnknownLobType = errors.New("lob: unknown node type")

// Kind is the LOB type byte at fixed offset 8..10.
type Kind uint16

const (
	KindSmallRoot      Kind = 0
	KindInternal       Kind = 2
	KindData           Kind = 3
	KindLargeRootYukon Kind = 5
	KindNull           Kind = 8
)

func (k Kind) valid() bool {
	switch k {
	case KindSmallRoot, KindInternal, KindData, KindLargeRootYukon, KindNull:
		return true
	default:
		return false
	}
}

// Entry is one decoded LOB node. Child (LargeRootYukon/Internal) entries
// keep a reference to the owning record's fixed data to resolve child
// pointers lazily via ChildAt.
type Entry struct {
	Kind     Kind
	BlobID   uint64
	Data     []byte // SmallRoot / Data payload
	MaxLinks uint16 // LargeRootYukon / Internal
	CurLinks uint16
	Level    uint16

	fixedData []byte
}

// Parse decodes a LOB node from a record previously read off a TextMix/TextTree page.
func Parse(rec *record.Record) (*Entry, error) {
	d := rec.FixedData
	blobID, err := format.Le64(d, 0)
	if err != nil {
		return nil, err
	}
	typeVal, err := format.Le16(d, 8)
	if err != nil {
		return nil, err
	}
	kind := Kind(typeVal)
	if !kind.valid() {
		return nil, ErrUnknownLobType
	}

	switch kind {
	case KindSmallRoot:
		length, err := format.Le16(d, 10)
		if err != nil {
			return nil, err
		}
		data, err := format.Slice(d, 16, int(length))
		if err != nil {
			return nil, err
		}
		return &Entry{Kind: kind, BlobID: blobID, Data: data}, nil

	case KindData:
		return &Entry{Kind: kind, BlobID: blobID, Data: d[10:]}, nil

	case KindLargeRootYukon, KindInternal:
		maxLinks, err := format.Le16(d, 10)
		if err != nil {
			return nil, err
		}
		curLinks, err := format.Le16(d, 12)
		if err != nil {
			return nil, err
		}
		level, err := format.Le16(d, 14)
		if err != nil {
			return nil, err
		}
		return &Entry{
			Kind: kind, BlobID: blobID,
			MaxLinks: maxLinks, CurLinks: curLinks, Level: level,
			fixedData: d,
		}, nil

	default: // KindNull
		return &Entry{Kind: kind, BlobID: blobID}, nil
	}
}

// Child is a LOB pointer-tree child entry: the offset (Internal) or size
// (LargeRootYukon) the parent declares for it, plus the Record Pointer to
// resolve.
type Child struct {
	OffsetOrSize uint64
	Ptr          page.RecordPointer
}

// ChildAt returns child entry i, or ok=false if i >= CurLinks.
func (e *Entry) ChildAt(i int) (Child, bool) {
	if i < 0 || i >= int(e.CurLinks) {
		return Child{}, false
	}
	switch e.Kind {
	case KindLargeRootYukon:
		off := 20 + 12*i
		size, err := format.Le32(e.fixedData, off)
		if err != nil {
			return Child{}, false
		}
		rp, err := page.ParseRecordPointer(e.fixedData, off+4)
		if err != nil {
			return Child{}, false
		}
		return Child{OffsetOrSize: uint64(size), Ptr: rp}, true

	case KindInternal:
		off := 16 + 16*i
		o, err := format.Le64(e.fixedData, off)
		if err != nil {
			return Child{}, false
		}
		rp, err := page.ParseRecordPointer(e.fixedData, off+8)
		if err != nil {
			return Child{}, false
		}
		return Child{OffsetOrSize: o, Ptr: rp}, true

	default:
		return Child{}, false
	}
}
