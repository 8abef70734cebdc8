package table

import (
	"testing"

	"github.com/wilhasse/go-mdf/column"
	"github.com/wilhasse/go-mdf/internal/testutil"
	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
	"github.com/wilhasse/go-mdf/schema"
)

func intRecord(v int32) []byte {
	fixed := make([]byte, 4)
	fixed[0] = byte(v)
	fixed[1] = byte(v >> 8)
	fixed[2] = byte(v >> 16)
	fixed[3] = byte(v >> 24)
	return testutil.FixedOnlyRecord(record.Primary, fixed, 1)
}

// TestDegradedScanAcrossTwoFiles exercises a degraded scan whose p_min_len
// (11) is learned from the partition's first page at
// (file=1,page=42), then finds a second matching Data page at (file=2,page=7)
// with the linked-list pointers between them deliberately broken.
func TestDegradedScanAcrossTwoFiles(t *testing.T) {
	sch := schema.New([]schema.Column{
		{ColID: 1, Name: "n", Type: column.Simple(column.Int)},
	})

	// p_min_len for a non-index Data page is irrelevant to decoding (it only
	// matters for Index pages), but it is still the field the degraded scan
	// keys off; 11 is an arbitrary marker value for this fixture.
	partitionEntry := testutil.BuiltPage{
		Self:    page.Pointer{FileID: 1, PageID: 42},
		Type:    page.TypeData,
		PMinLen: 11,
		Records: [][]byte{intRecord(1)},
	}.Build()

	// A second Data page in another file, same p_min_len, NOT linked via
	// Header.Next/Prev from the partition entry page.
	otherFilePage := testutil.BuiltPage{
		Self:    page.Pointer{FileID: 2, PageID: 7},
		Type:    page.TypeData,
		PMinLen: 11,
		Records: [][]byte{intRecord(2)},
	}.Build()

	// A decoy page with a different p_min_len that must be skipped.
	decoy := testutil.BuiltPage{
		Self:    page.Pointer{FileID: 1, PageID: 43},
		Type:    page.TypeData,
		PMinLen: 99,
		Records: [][]byte{intRecord(999)},
	}.Build()

	prov := testutil.NewMemProvider()
	prov.Put(partitionEntry)
	prov.Put(decoy)
	prov.Put(otherFilePage)

	tb := OpenWithSchema("t", sch, []page.Pointer{partitionEntry.Header.Self}, prov, nil)

	scanner, ok := tb.ScanDB()
	if !ok {
		t.Fatal("expected a scanner")
	}

	var got []int64
	for {
		row, ok := scanner.Next()
		if !ok {
			break
		}
		got = append(got, row[0].Int)
	}

	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2: %v", len(got), got)
	}
	if got[0] != 1 || got[1] != 2 {
		t.Fatalf("unexpected row values: %v", got)
	}
}

func TestScanDBNoPartitionsReturnsFalse(t *testing.T) {
	tb := OpenWithSchema("t", schema.Schema{}, nil, testutil.NewMemProvider(), nil)
	if _, ok := tb.ScanDB(); ok {
		t.Fatal("expected ok=false with no partitions")
	}
}
