// index.go - the persisted LOB-root index, grounded on
// original_source/examples/lob_dumper.rs
package lob

import (
	"encoding/gob"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
)

// RootKey identifies a discovered LOB root by its own record location.
type RootKey struct {
	FileID uint16
	PageID uint32
	Slot   uint16
}

// RootEntry is everything lob_dumper.rs persisted about a root: enough to
// re-walk it without re-scanning the whole database.
type RootEntry struct {
	BlobID   uint64
	MaxLinks uint16
	Level    uint16
	CurLinks uint16
	Children []page.RecordPointer
}

// RootIndex is the round-trippable binary artefact keyed by (file_id,
// page_id, slot_id). The format is gob: no pack example ships a grounded
// Go equivalent of the reference's bincode, and gob is the standard
// library's own binary round-trip codec for exactly this shape of data
// (see DESIGN.md).
type RootIndex map[RootKey]RootEntry

// Save gob-encodes the index.
func (idx RootIndex) Save(w io.Writer) error {
	return gob.NewEncoder(w).Encode(idx)
}

// LoadRootIndex gob-decodes a previously saved index.
func LoadRootIndex(r io.Reader) (RootIndex, error) {
	var idx RootIndex
	if err := gob.NewDecoder(r).Decode(&idx); err != nil {
		return nil, err
	}
	return idx, nil
}

func logOrDefault(l *logrus.Logger) *logrus.Logger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}

// DiscoverRoots scans every TextMix/TextTree page across every file for
// LargeRootYukon/Internal roots, recording each with its immediate children.
func DiscoverRoots(provider record.Provider, logger *logrus.Logger) RootIndex {
	logger = logOrDefault(logger)
	idx := make(RootIndex)

	for _, fileID := range provider.FileIDs() {
		n := provider.NumPages(fileID)
		for pageID := uint32(0); pageID < n; pageID++ {
			pg, ok := provider.Get(page.Pointer{FileID: fileID, PageID: pageID})
			if !ok {
				continue
			}
			if pg.Header.Type != page.TypeTextMix && pg.Header.Type != page.TypeTextTree {
				continue
			}
			it := record.NewLocalIterator(pg, logger)
			for {
				rec, ok := it.Next()
				if !ok {
					break
				}
				slotID := it.Slot()
				entry, err := Parse(rec)
				if err != nil {
					continue
				}
				if entry.Kind != KindLargeRootYukon && entry.Kind != KindInternal {
					continue
				}
				var children []page.RecordPointer
				for i := 0; i < int(entry.CurLinks); i++ {
					if c, ok := entry.ChildAt(i); ok {
						children = append(children, c.Ptr)
					}
				}
				key := RootKey{FileID: fileID, PageID: pageID, Slot: uint16(slotID)}
				idx[key] = RootEntry{
					BlobID:   entry.BlobID,
					MaxLinks: entry.MaxLinks,
					Level:    entry.Level,
					CurLinks: entry.CurLinks,
					Children: children,
				}
			}
		}
	}
	return idx
}

// ComputeRealRoots returns the subset of idx's keys that are not themselves
// referenced as a child of another indexed root, via iterative removal
// (mirrors lob_dumper.rs's HashSet convergence loop).
func ComputeRealRoots(idx RootIndex) map[RootKey]bool {
	real := make(map[RootKey]bool, len(idx))
	for k := range idx {
		real[k] = true
	}

	for {
		removed := false
		for k := range real {
			for _, child := range idx[k].Children {
				ck := RootKey{FileID: child.Page.FileID, PageID: child.Page.PageID, Slot: child.Slot}
				if real[ck] {
					delete(real, ck)
					removed = true
				}
			}
		}
		if !removed {
			break
		}
	}
	return real
}
