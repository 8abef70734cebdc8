package lob

import (
	"testing"

	"github.com/wilhasse/go-mdf/page"
)

func TestComputeRealRootsExcludesReferencedChildren(t *testing.T) {
	child := RootKey{FileID: 1, PageID: 10, Slot: 0}
	root := RootKey{FileID: 1, PageID: 20, Slot: 0}
	unrelated := RootKey{FileID: 1, PageID: 30, Slot: 0}

	idx := RootIndex{
		root: RootEntry{Children: []page.RecordPointer{
			{Page: page.Pointer{FileID: child.FileID, PageID: child.PageID}, Slot: child.Slot},
		}},
		child:     RootEntry{},
		unrelated: RootEntry{},
	}

	real := ComputeRealRoots(idx)
	if real[child] {
		t.Fatal("child should not be a real root")
	}
	if !real[root] {
		t.Fatal("root should be a real root")
	}
	if !real[unrelated] {
		t.Fatal("unrelated entry should be a real root")
	}
}
