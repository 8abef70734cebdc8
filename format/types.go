// types.go - fixed sizes shared across the page/record/column layers
package format

const (
	// PageSize is the fixed on-disk page size of every file in the database.
	PageSize = 8192

	// PageHeaderSize is the length in bytes of the fixed page header at the
	// start of every page.
	PageHeaderSize = 96

	// SlotSize is the width in bytes of one slot-array entry.
	SlotSize = 2

	// PagePointerSize is the on-disk width of a Page Pointer: page_id (u32) + file_id (u16).
	PagePointerSize = 6

	// RecordPointerSize is the on-disk width of a Record Pointer: PagePointerSize + slot_id (u16).
	RecordPointerSize = 8

	// LobPointerSize is the on-disk width of a LobPointer: timestamp (u32) + 4 reserved bytes + RecordPointerSize.
	LobPointerSize = 16
)
