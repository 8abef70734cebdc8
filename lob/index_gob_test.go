package lob

import (
	"bytes"
	"testing"

	"github.com/wilhasse/go-mdf/page"
)

func TestRootIndexSaveLoadRoundTrip(t *testing.T) {
	idx := RootIndex{
		{FileID: 1, PageID: 20, Slot: 0}: RootEntry{
			BlobID:   7,
			MaxLinks: 2,
			CurLinks: 2,
			Children: []page.RecordPointer{
				{Page: page.Pointer{FileID: 1, PageID: 10}, Slot: 0},
				{Page: page.Pointer{FileID: 1, PageID: 11}, Slot: 0},
			},
		},
	}

	var buf bytes.Buffer
	if err := idx.Save(&buf); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadRootIndex(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 {
		t.Fatalf("loaded %d entries, want 1", len(loaded))
	}
	for k, v := range idx {
		lv, ok := loaded[k]
		if !ok {
			t.Fatalf("missing key %+v", k)
		}
		if lv.BlobID != v.BlobID || len(lv.Children) != len(v.Children) {
			t.Fatalf("mismatch: %+v vs %+v", lv, v)
		}
	}
}
