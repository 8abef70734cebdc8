package provider

import (
	"testing"

	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
)

func TestMMapProviderGetAndClose(t *testing.T) {
	pg := sampleRecordPage(1)
	path := writeTempFile(t, pg)

	mp, err := OpenMMapProvider(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	if mp.NumPages(1) != 2 {
		t.Fatalf("numPages = %d, want 2", mp.NumPages(1))
	}

	got, ok := mp.Get(page.Pointer{FileID: 1, PageID: 1})
	if !ok || got.Header.Type != page.TypeData {
		t.Fatalf("get mismatch: ok=%v header=%+v", ok, got)
	}

	rec, ok := mp.GetRecord(page.RecordPointer{Page: page.Pointer{FileID: 1, PageID: 1}, Slot: 0})
	if !ok || rec.Type != record.Primary {
		t.Fatalf("record mismatch: ok=%v rec=%+v", ok, rec)
	}

	if err := mp.Close(); err != nil {
		t.Fatal(err)
	}
}
