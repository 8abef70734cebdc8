package page_test

import (
	"testing"

	"github.com/wilhasse/go-mdf/internal/testutil"
	"github.com/wilhasse/go-mdf/page"
)

func TestParseHeaderRoundTrip(t *testing.T) {
	built := testutil.BuiltPage{
		Self:     page.Pointer{FileID: 1, PageID: 42},
		Prev:     page.Pointer{FileID: 1, PageID: 41},
		Next:     page.Pointer{FileID: 1, PageID: 43},
		Type:     page.TypeData,
		Level:    0,
		IndexID:  1,
		PMinLen:  11,
		ObjectID: 99,
	}
	pg := built.Build()

	if pg.Header.Self != built.Self {
		t.Fatalf("self = %+v", pg.Header.Self)
	}
	if pg.Header.Prev != built.Prev || pg.Header.Next != built.Next {
		t.Fatalf("prev/next mismatch: %+v / %+v", pg.Header.Prev, pg.Header.Next)
	}
	if pg.Header.Type != page.TypeData {
		t.Fatalf("type = %v", pg.Header.Type)
	}
	if pg.Header.PMinLen != 11 {
		t.Fatalf("p_min_len = %d", pg.Header.PMinLen)
	}
	if pg.RecordCount() != 0 {
		t.Fatalf("record count = %d", pg.RecordCount())
	}
}

func TestParseHeaderShortBuffer(t *testing.T) {
	if _, err := page.Parse(make([]byte, 10)); err == nil {
		t.Fatal("expected error for short buffer")
	}
}
