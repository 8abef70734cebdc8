// Package testutil builds in-memory pages and a fake Provider for tests
// across the module; it is never imported by non-test code.
package testutil

import (
	"encoding/binary"
	"sort"

	"github.com/wilhasse/go-mdf/format"
	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
)

func putLE16(b []byte, off int, v uint16) { binary.LittleEndian.PutUint16(b[off:], v) }
func putLE32(b []byte, off int, v uint32) { binary.LittleEndian.PutUint32(b[off:], v) }
func putLE64(b []byte, off int, v uint64) { binary.LittleEndian.PutUint64(b[off:], v) }

func putPointer(b []byte, off int, p page.Pointer) {
	putLE32(b, off, p.PageID)
	putLE16(b, off+4, p.FileID)
}

// PutRecordPointer writes an 8-byte Record Pointer at off.
func PutRecordPointer(b []byte, off int, rp page.RecordPointer) {
	putPointer(b, off, rp.Page)
	putLE16(b, off+6, rp.Slot)
}

// PutLobPointer writes a 16-byte LobPointer at off.
func PutLobPointer(b []byte, off int, ts uint32, rp page.RecordPointer) {
	putLE32(b, off, ts)
	PutRecordPointer(b, off+8, rp)
}

// FixedOnlyRecord builds a non-index record with fixed data only: no null
// bitmap, no variable-length block. colCount is the declared column count.
func FixedOnlyRecord(recType record.Type, fixed []byte, colCount uint16) []byte {
	total := 4 + len(fixed)
	out := make([]byte, total+2)
	out[0] = byte(recType) << 1
	out[1] = 0
	putLE16(out, 2, uint16(total))
	copy(out[4:], fixed)
	putLE16(out, 4+len(fixed), colCount)
	return out
}

// VarEntrySpec is one entry of a variable-length offset table under
// construction: the payload bytes and whether it is a complex (LOB
// pointer) cell.
type VarEntrySpec struct {
	Data    []byte
	Complex bool
}

// NullableVarRecord builds a non-index record with a null bitmap and a
// variable-length offset table, exactly the shape record.Parse expects.
func NullableVarRecord(recType record.Type, fixed []byte, colCount uint16, nullBits []bool, varEntries []VarEntrySpec) []byte {
	tagA := byte(0x10 | 0x20) // HasNullBitmap | HasVarLengthCols
	tag0 := tagA | (byte(recType) << 1)

	nullBitmap := make([]byte, (int(colCount)+7)/8)
	for i, v := range nullBits {
		if v {
			nullBitmap[i/8] |= 1 << uint(i%8)
		}
	}

	head := make([]byte, 4+len(fixed)+2+len(nullBitmap)+2)
	head[0] = tag0
	head[1] = 0
	total := 4 + len(fixed)
	putLE16(head, 2, uint16(total))
	copy(head[4:], fixed)
	cur := 4 + len(fixed)
	putLE16(head, cur, colCount)
	cur += 2
	copy(head[cur:], nullBitmap)
	cur += len(nullBitmap)
	putLE16(head, cur, uint16(len(varEntries)))
	cur += 2

	offsetsLen := len(varEntries) * 2
	out := make([]byte, len(head)+offsetsLen)
	copy(out, head)

	// Running absolute end positions relative to record start.
	payloadStart := len(head) + offsetsLen
	running := payloadStart
	var payload []byte
	for i, e := range varEntries {
		running += len(e.Data)
		raw := uint16(running)
		if e.Complex {
			raw |= 0x8000
		}
		putLE16(out, len(head)+i*2, raw)
		payload = append(payload, e.Data...)
	}
	out = append(out, payload...)
	return out
}

// BuiltPage describes a page under construction.
type BuiltPage struct {
	Self, Prev, Next page.Pointer
	Type             page.Type
	Level            uint8
	IndexID          uint16
	PMinLen          uint16
	ObjectID         uint32
	Records          [][]byte
}

// Build lays out p.Records back-to-back starting right after the fixed
// header, with a trailing slot array, and parses the result the same way a
// real Provider would.
func (p BuiltPage) Build() *page.Page {
	buf := make([]byte, format.PageSize)
	buf[1] = byte(p.Type)
	buf[3] = p.Level
	putLE16(buf, 6, p.IndexID)
	putPointer(buf, 8, p.Prev)
	putLE16(buf, 14, p.PMinLen)
	putPointer(buf, 16, p.Next)
	putLE16(buf, 22, uint16(len(p.Records)))
	putLE32(buf, 24, p.ObjectID)
	putPointer(buf, 32, p.Self)

	cur := format.PageHeaderSize
	offsets := make([]int, len(p.Records))
	for i, rec := range p.Records {
		offsets[i] = cur
		copy(buf[cur:], rec)
		cur += len(rec)
	}
	for i, off := range offsets {
		slotOff := format.PageSize - format.SlotSize*(i+1)
		putLE16(buf, slotOff, uint16(off))
	}

	pg, err := page.Parse(buf)
	if err != nil {
		panic(err)
	}
	return pg
}

// MemProvider is a fake record.Provider backed by an in-memory page map.
type MemProvider struct {
	pages map[page.Pointer]*page.Page
	n     map[uint16]uint32
}

func NewMemProvider() *MemProvider {
	return &MemProvider{pages: make(map[page.Pointer]*page.Page), n: make(map[uint16]uint32)}
}

// Put registers pg at its own Self pointer.
func (m *MemProvider) Put(pg *page.Page) {
	m.pages[pg.Header.Self] = pg
	if pg.Header.Self.PageID+1 > m.n[pg.Header.Self.FileID] {
		m.n[pg.Header.Self.FileID] = pg.Header.Self.PageID + 1
	}
}

func (m *MemProvider) FileIDs() []uint16 {
	out := make([]uint16, 0, len(m.n))
	for id := range m.n {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (m *MemProvider) NumPages(fileID uint16) uint32 { return m.n[fileID] }

func (m *MemProvider) Get(ptr page.Pointer) (*page.Page, bool) {
	pg, ok := m.pages[ptr]
	return pg, ok
}

func (m *MemProvider) GetRecord(rp page.RecordPointer) (*record.Record, bool) {
	return record.GetRecordFromProvider(m, rp, nil)
}

var _ record.Provider = (*MemProvider)(nil)
