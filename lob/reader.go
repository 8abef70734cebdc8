// reader.go - breadth-first pointer-tree walk into ordered byte extents
package lob

import (
	"bytes"
	"errors"
	"io"

	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
)

// ErrUnresolvedChild means a child pointer in the tree could not be
// resolved through the Provider; the entire walk is discarded.
var ErrUnresolvedChild = errors.New("lob: unresolved child pointer")

// Extent is one emitted (offset_or_size, bytes) pair. For the root SmallRoot
// or Data node, OffsetOrSize is len(Data); for a child reached through
// Internal/LargeRootYukon it is the value the parent entry declared.
type Extent struct {
	OffsetOrSize uint64
	Data         []byte
}

// DataBlocks is the ordered extent list a blob reads into: breadth-first
// order of the pointer tree, which is also file-write order.
type DataBlocks struct {
	Extents []Extent
}

// WriteTo concatenates the extents back-to-back, in insertion order
// regardless of OffsetOrSize monotonicity.
func (d *DataBlocks) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, e := range d.Extents {
		m, err := w.Write(e.Data)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Bytes concatenates every extent's data into one buffer.
func (d *DataBlocks) Bytes() []byte {
	var buf bytes.Buffer
	d.WriteTo(&buf)
	return buf.Bytes()
}

type queued struct {
	entry        *Entry
	offsetOrSize uint64
	hasOffset    bool
}

// Read resolves ptr to its root node and walks the pointer tree breadth
// first. An unresolvable child pointer aborts the whole read.
func Read(provider record.Provider, ptr page.LobPointer) (*DataBlocks, error) {
	rootRec, ok := provider.GetRecord(ptr.Record)
	if !ok {
		return nil, ErrUnresolvedChild
	}
	root, err := Parse(rootRec)
	if err != nil {
		return nil, err
	}
	return walk(provider, root)
}

// WalkEntry walks an already-parsed node, for callers (such as the
// persisted-index dumper) that resolved the root through means other than
// a single LobPointer.
func WalkEntry(provider record.Provider, root *Entry) (*DataBlocks, error) {
	return walk(provider, root)
}

func walk(provider record.Provider, root *Entry) (*DataBlocks, error) {
	var out DataBlocks
	queue := []queued{{entry: root}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		switch item.entry.Kind {
		case KindSmallRoot, KindData:
			size := uint64(len(item.entry.Data))
			if item.hasOffset {
				size = item.offsetOrSize
			}
			out.Extents = append(out.Extents, Extent{OffsetOrSize: size, Data: item.entry.Data})

		case KindLargeRootYukon, KindInternal:
			for i := 0; i < int(item.entry.CurLinks); i++ {
				child, ok := item.entry.ChildAt(i)
				if !ok {
					return nil, ErrUnresolvedChild
				}
				childRec, ok := provider.GetRecord(child.Ptr)
				if !ok {
					return nil, ErrUnresolvedChild
				}
				childEntry, err := Parse(childRec)
				if err != nil {
					return nil, err
				}
				queue = append(queue, queued{entry: childEntry, offsetOrSize: child.OffsetOrSize, hasOffset: true})
			}

		case KindNull:
			// nothing to emit

		default:
			return nil, ErrUnknownLobType
		}
	}

	return &out, nil
}
