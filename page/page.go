// page.go - the Raw Page: header plus slot array, addressed by PAGE_SIZE-sized buffers
package page

import "github.com/wilhasse/go-mdf/format"

// Page is one parsed 8 KiB page: the fixed header plus the raw bytes needed
// to resolve slots and record data. Owning the byte slice is the caller's
// responsibility (see Provider).
type Page struct {
	Header Header
	Data   []byte // exactly format.PageSize bytes
}

// Parse validates the buffer length and parses the fixed header.
func Parse(b []byte) (*Page, error) {
	if len(b) != format.PageSize {
		return nil, format.ErrShortRead
	}
	h, err := ParseHeader(b)
	if err != nil {
		return nil, err
	}
	return &Page{Header: h, Data: b}, nil
}

// RecordCount is the number of valid slot-array entries on this page.
func (p *Page) RecordCount() int { return int(p.Header.SlotCount) }

// SlotOffset returns the byte offset (from the start of the page) of the
// record stored at slot i, read from the trailing slot array.
func (p *Page) SlotOffset(i int) (uint16, error) {
	if i < 0 || i >= p.RecordCount() {
		return 0, format.ErrShortRead
	}
	off := format.PageSize - format.SlotSize*(i+1)
	return format.Le16(p.Data, off)
}

// Provider is the external contract the core consumes to resolve page bytes.
// It must tolerate reentrant/overlapping calls and owns any caching.
type Provider interface {
	// FileIDs enumerates the logical data-file ids present, in ascending order.
	FileIDs() []uint16
	// NumPages returns the number of addressable pages in fileID.
	NumPages(fileID uint16) uint32
	// Get returns the page at ptr, or ok=false if it is out of range,
	// unallocated, or unreadable.
	Get(ptr Pointer) (pg *Page, ok bool)
}
