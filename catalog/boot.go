// boot.go - the fixed boot anchor at (file_id=1, page_id=9), record 0
package catalog

import (
	"github.com/wilhasse/go-mdf/column"
	"github.com/wilhasse/go-mdf/format"
	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
)

// BootPointer is the fixed location of the boot page in every database.
var BootPointer = page.Pointer{FileID: 1, PageID: 9}

// BootPage is record 0's decoded fixed-data fields.
type BootPage struct {
	Version         uint16
	CreateVersion   uint16
	Status          uint32
	NextID          uint32
	DatabaseName    string
	DBID            uint16
	MaxDBTimestamp  uint64
	FirstSysIndices page.Pointer
}

// ParseBootPage decodes record 0 of the boot page.
func ParseBootPage(rec *record.Record) (*BootPage, error) {
	d := rec.FixedData

	version, err := format.Le16(d, 0)
	if err != nil {
		return nil, err
	}
	createVersion, err := format.Le16(d, 2)
	if err != nil {
		return nil, err
	}
	status, err := format.Le32(d, 32)
	if err != nil {
		return nil, err
	}
	nextID, err := format.Le32(d, 36)
	if err != nil {
		return nil, err
	}
	nameBytes, err := format.Slice(d, 48, 304-48)
	if err != nil {
		return nil, err
	}
	name, err := column.DecodeUTF16LE(trimUTF16NUL(nameBytes))
	if err != nil {
		return nil, err
	}
	dbID, err := format.Le16(d, 308)
	if err != nil {
		return nil, err
	}
	maxTS, err := format.Le64(d, 312)
	if err != nil {
		return nil, err
	}
	firstSysIndices, err := page.ParsePointer(d, 512)
	if err != nil {
		return nil, err
	}

	return &BootPage{
		Version:         version,
		CreateVersion:   createVersion,
		Status:          status,
		NextID:          nextID,
		DatabaseName:    name,
		DBID:            dbID,
		MaxDBTimestamp:  maxTS,
		FirstSysIndices: firstSysIndices,
	}, nil
}

// trimUTF16NUL strips trailing zero UTF-16 code units (0x00 0x00) from a
// fixed-width name field before decoding.
func trimUTF16NUL(b []byte) []byte {
	end := len(b)
	for end >= 2 && b[end-2] == 0 && b[end-1] == 0 {
		end -= 2
	}
	return b[:end]
}
