package lob

import (
	"testing"

	"github.com/wilhasse/go-mdf/internal/testutil"
	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
)

func TestParseSmallRoot(t *testing.T) {
	fixed := make([]byte, 16+5)
	putU64(fixed, 0, 7)   // blob_id
	putU16(fixed, 8, 0)   // type = SmallRoot
	putU16(fixed, 10, 5)  // length
	copy(fixed[16:], []byte("hello"))

	rec := mustParse(t, testutil.FixedOnlyRecord(record.Blob, fixed, 0))
	e, err := Parse(rec)
	if err != nil {
		t.Fatal(err)
	}
	if e.Kind != KindSmallRoot || e.BlobID != 7 {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if string(e.Data) != "hello" {
		t.Fatalf("data = %q", e.Data)
	}
}

func TestParseDataNode(t *testing.T) {
	fixed := make([]byte, 10+3)
	putU64(fixed, 0, 7)
	putU16(fixed, 8, 3) // type = Data
	copy(fixed[10:], []byte("xyz"))

	rec := mustParse(t, testutil.FixedOnlyRecord(record.Blob, fixed, 0))
	e, err := Parse(rec)
	if err != nil {
		t.Fatal(err)
	}
	if e.Kind != KindData || string(e.Data) != "xyz" {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestParseLargeRootYukonChildAt(t *testing.T) {
	fixed := make([]byte, 20+12*2)
	putU64(fixed, 0, 7)
	putU16(fixed, 8, 5) // type = LargeRootYukon
	putU16(fixed, 10, 2) // max_links
	putU16(fixed, 12, 2) // cur_links
	putU16(fixed, 14, 0) // level

	putU32(fixed, 20, 3000) // child 0 size
	rp0 := page.RecordPointer{Page: page.Pointer{FileID: 1, PageID: 10}, Slot: 0}
	testutil.PutRecordPointer(fixed, 24, rp0)

	putU32(fixed, 32, 5000) // child 1 size
	rp1 := page.RecordPointer{Page: page.Pointer{FileID: 1, PageID: 11}, Slot: 0}
	testutil.PutRecordPointer(fixed, 36, rp1)

	rec := mustParse(t, testutil.FixedOnlyRecord(record.Blob, fixed, 0))
	e, err := Parse(rec)
	if err != nil {
		t.Fatal(err)
	}
	if e.Kind != KindLargeRootYukon || e.CurLinks != 2 {
		t.Fatalf("unexpected entry: %+v", e)
	}

	c0, ok := e.ChildAt(0)
	if !ok || c0.OffsetOrSize != 3000 || c0.Ptr != rp0 {
		t.Fatalf("child 0 = %+v", c0)
	}
	c1, ok := e.ChildAt(1)
	if !ok || c1.OffsetOrSize != 5000 || c1.Ptr != rp1 {
		t.Fatalf("child 1 = %+v", c1)
	}
	if _, ok := e.ChildAt(2); ok {
		t.Fatal("expected ok=false beyond cur_links")
	}
}

func mustParse(t *testing.T, recBytes []byte) *record.Record {
	t.Helper()
	rec, err := record.Parse(recBytes, 0, false, 0)
	if err != nil {
		t.Fatal(err)
	}
	return rec
}

func putU16(b []byte, off int, v uint16) {
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
}

func putU32(b []byte, off int, v uint32) {
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
	b[off+2] = byte(v >> 16)
	b[off+3] = byte(v >> 24)
}

func putU64(b []byte, off int, v uint64) {
	for i := 0; i < 8; i++ {
		b[off+i] = byte(v >> (8 * uint(i)))
	}
}
