package provider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wilhasse/go-mdf/format"
	"github.com/wilhasse/go-mdf/internal/testutil"
	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
)

func writeTempFile(t *testing.T, pages ...*page.Page) string {
	t.Helper()
	maxPageID := uint32(0)
	for _, pg := range pages {
		if pg.Header.Self.PageID >= maxPageID {
			maxPageID = pg.Header.Self.PageID + 1
		}
	}
	buf := make([]byte, int(maxPageID)*format.PageSize)
	for _, pg := range pages {
		off := int(pg.Header.Self.PageID) * format.PageSize
		copy(buf[off:], pg.Data)
	}

	path := filepath.Join(t.TempDir(), "test.mdf")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func sampleRecordPage(pageID uint32) *page.Page {
	fixed := []byte{7, 0, 0, 0}
	rec := testutil.FixedOnlyRecord(record.Primary, fixed, 1)
	return testutil.BuiltPage{
		Self:    page.Pointer{FileID: 1, PageID: pageID},
		Type:    page.TypeData,
		Records: [][]byte{rec},
	}.Build()
}

func TestFileProviderGetAndNumPages(t *testing.T) {
	pg := sampleRecordPage(3)
	path := writeTempFile(t, pg)

	fp, err := OpenFileProvider(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()

	if fp.NumPages(1) != 4 {
		t.Fatalf("numPages = %d, want 4", fp.NumPages(1))
	}

	got, ok := fp.Get(page.Pointer{FileID: 1, PageID: 3})
	if !ok {
		t.Fatal("expected page 3 to resolve")
	}
	if got.Header.Type != page.TypeData {
		t.Fatalf("type = %v", got.Header.Type)
	}

	if _, ok := fp.Get(page.Pointer{FileID: 1, PageID: 99}); ok {
		t.Fatal("expected out-of-range page to miss")
	}
	if _, ok := fp.Get(page.Pointer{FileID: 9, PageID: 0}); ok {
		t.Fatal("expected unknown file id to miss")
	}
}

func TestFileProviderGetRecord(t *testing.T) {
	pg := sampleRecordPage(0)
	path := writeTempFile(t, pg)

	fp, err := OpenFileProvider(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()

	rec, ok := fp.GetRecord(page.RecordPointer{Page: page.Pointer{FileID: 1, PageID: 0}, Slot: 0})
	if !ok {
		t.Fatal("expected record to resolve")
	}
	if rec.Type != record.Primary {
		t.Fatalf("type = %v", rec.Type)
	}
}

func TestFileProviderAddFileMultipleIDs(t *testing.T) {
	pg1 := sampleRecordPage(0)
	pg2 := sampleRecordPage(0)
	path1 := writeTempFile(t, pg1)
	path2 := writeTempFile(t, pg2)

	fp, err := OpenFileProvider(path1, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	if err := fp.AddFile(2, path2); err != nil {
		t.Fatal(err)
	}

	ids := fp.FileIDs()
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("file ids = %v", ids)
	}
}
