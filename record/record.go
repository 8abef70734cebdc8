// record.go - decodes a single record: tags, fixed data, null bitmap, variable-length table
package record

import (
	"errors"

	"github.com/wilhasse/go-mdf/format"
)

// ErrUnsupportedType is returned when a record's variant is not one of
// Primary, Index or Blob. The caller drops the row and logs a diagnostic;
// it is never fatal.
var ErrUnsupportedType = errors.New("record: unsupported record type")

// ErrCorrupt signals a record whose fixed-data length field is implausible
// or whose computed extent runs past the page buffer.
var ErrCorrupt = errors.New("record: corrupt record header")

// varEntry is one decoded entry of the variable-length offset table: the
// ending byte offset (from record start) and whether the "complex" (LOB
// pointer) bit was set.
type varEntry struct {
	end     uint16
	complex bool
}

// Record is a single decoded record: its variant, fixed-data bytes, null
// bitmap, and variable-length offset table. Variable column payloads are
// read lazily from the owning page buffer via VarColumn.
type Record struct {
	TagA        TagA
	TagB        TagB
	Type        Type
	FixedData   []byte
	ColumnCount uint16
	nullBitmap  []byte
	varOffsets  []varEntry

	raw           []byte // the full page buffer this record was parsed from
	start         int    // byte offset of this record within raw
	varPayloadOff int    // absolute offset where the first variable payload begins
}

// Parse decodes the record starting at byte offset `start` of a page buffer.
// isIndex and pMinLen are hints carried by the owning page's header.
func Parse(pageData []byte, start int, isIndex bool, pMinLen uint16) (*Record, error) {
	tag0, err := format.Le8(pageData, start)
	if err != nil {
		return nil, err
	}
	tagA := TagA(tag0 & 0xF0)
	recType := Type((tag0 >> 1) & 0x07)

	var tagB TagB
	var fixedStart int
	var fixedLen int

	if isIndex {
		fixedStart = start + 1
		fixedLen = int(pMinLen) - 1
	} else {
		b1, err := format.Le8(pageData, start+1)
		if err != nil {
			return nil, err
		}
		tagB = TagB(b1)
		total, err := format.Le16(pageData, start+2)
		if err != nil {
			return nil, err
		}
		if total < 4 {
			return nil, ErrCorrupt
		}
		fixedStart = start + 4
		fixedLen = int(total) - 4
	}

	if fixedLen < 0 || fixedStart+fixedLen > len(pageData) {
		return nil, ErrCorrupt
	}
	fixedData := pageData[fixedStart : fixedStart+fixedLen]

	if !recType.Decodable() {
		return nil, ErrUnsupportedType
	}

	cur := fixedStart + fixedLen
	colCount, err := format.Le16(pageData, cur)
	if err != nil {
		return nil, ErrCorrupt
	}
	cur += 2

	var nullBitmap []byte
	if tagA.Has(HasNullBitmap) {
		n := int(colCount+7) / 8
		nullBitmap, err = format.Slice(pageData, cur, n)
		if err != nil {
			return nil, ErrCorrupt
		}
		cur += n
	}

	var varOffsets []varEntry
	var varPayloadOff int
	if tagA.Has(HasVarLengthCols) {
		count, err := format.Le16(pageData, cur)
		if err != nil {
			return nil, ErrCorrupt
		}
		cur += 2
		varOffsets = make([]varEntry, count)
		for i := 0; i < int(count); i++ {
			raw, err := format.Le16(pageData, cur)
			if err != nil {
				return nil, ErrCorrupt
			}
			cur += 2
			varOffsets[i] = varEntry{end: raw &^ 0x8000, complex: raw&0x8000 != 0}
		}
		varPayloadOff = cur
	}

	return &Record{
		TagA:          tagA,
		TagB:          tagB,
		Type:          recType,
		FixedData:     fixedData,
		ColumnCount:   colCount,
		nullBitmap:    nullBitmap,
		varOffsets:    varOffsets,
		raw:           pageData,
		start:         start,
		varPayloadOff: varPayloadOff,
	}, nil
}

// IsColumnNull reports whether the null bitmap marks column i as null.
// Columns outside the bitmap (added to the schema after this row was
// written) are treated as not-null.
func (r *Record) IsColumnNull(i int) bool {
	if r.nullBitmap == nil {
		return false
	}
	byteIdx := i / 8
	if byteIdx >= len(r.nullBitmap) {
		return false
	}
	return r.nullBitmap[byteIdx]&(1<<uint(i%8)) != 0
}

// HasVarLengthBlock reports whether this record carries a variable-length
// offset table at all.
func (r *Record) HasVarLengthBlock() bool { return r.varOffsets != nil }

// VarColumnCount is the number of entries in the variable-length offset table.
func (r *Record) VarColumnCount() int { return len(r.varOffsets) }

// VarColumn returns the i'th variable-length column's payload bytes and its
// complex (LOB pointer) bit. Requesting an index >= count yields an empty,
// non-complex slice.
func (r *Record) VarColumn(i int) ([]byte, bool) {
	if i < 0 || i >= len(r.varOffsets) {
		return nil, false
	}
	begin := r.varPayloadOff
	if i > 0 {
		begin = r.start + int(r.varOffsets[i-1].end)
	}
	end := r.start + int(r.varOffsets[i].end)
	if begin < 0 || end > len(r.raw) || begin > end {
		return nil, false
	}
	return r.raw[begin:end], r.varOffsets[i].complex
}
