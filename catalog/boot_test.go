package catalog

import (
	"testing"

	"github.com/wilhasse/go-mdf/internal/testutil"
	"github.com/wilhasse/go-mdf/record"
)

func TestParseBootPage(t *testing.T) {
	fixed := make([]byte, 520)
	putU16(fixed, 0, 782)   // version
	putU16(fixed, 2, 611)   // create_version
	putU32(fixed, 32, 0)    // status
	putU32(fixed, 36, 256)  // next_id
	copy(fixed[48:], utf16("testdb"))
	putU16(fixed, 308, 5) // dbid
	putU64(fixed, 312, 0) // max timestamp
	// first_sys_indices page pointer @512: page_id=9, file_id=1
	putU32(fixed, 512, 9)
	putU16(fixed, 516, 1)

	recBytes := testutil.FixedOnlyRecord(record.Primary, fixed, 0)
	rec, err := record.Parse(recBytes, 0, false, 0)
	if err != nil {
		t.Fatal(err)
	}

	boot, err := ParseBootPage(rec)
	if err != nil {
		t.Fatal(err)
	}
	if boot.Version != 782 || boot.CreateVersion != 611 {
		t.Fatalf("versions: %+v", boot)
	}
	if boot.NextID != 256 {
		t.Fatalf("next_id = %d", boot.NextID)
	}
	if boot.DatabaseName != "testdb" {
		t.Fatalf("database name = %q", boot.DatabaseName)
	}
	if boot.DBID != 5 {
		t.Fatalf("dbid = %d", boot.DBID)
	}
	if boot.FirstSysIndices.PageID != 9 || boot.FirstSysIndices.FileID != 1 {
		t.Fatalf("first_sys_indices = %+v", boot.FirstSysIndices)
	}
}

func utf16(s string) []byte {
	out := make([]byte, 0, len(s)*2)
	for _, r := range s {
		out = append(out, byte(r), byte(r>>8))
	}
	return out
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
