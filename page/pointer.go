// pointer.go - Page Pointer / Record Pointer and the closed Page Type set
package page

import (
	"fmt"

	"github.com/wilhasse/go-mdf/format"
)

// Pointer addresses a single page: (file_id, page_id). file_id == 0 is the
// null pointer.
type Pointer struct {
	FileID uint16
	PageID uint32
}

// IsNull reports whether this is the null pointer (file_id == 0).
func (p Pointer) IsNull() bool { return p.FileID == 0 }

func (p Pointer) String() string {
	if p.IsNull() {
		return "<nil-page>"
	}
	return fmt.Sprintf("(file=%d,page=%d)", p.FileID, p.PageID)
}

// ParsePointer reads a 6-byte Page Pointer: little-endian page_id (u32) then file_id (u16).
func ParsePointer(b []byte, off int) (Pointer, error) {
	s, err := format.Slice(b, off, format.PagePointerSize)
	if err != nil {
		return Pointer{}, err
	}
	pageID, _ := format.Le32(s, 0)
	fileID, _ := format.Le16(s, 4)
	return Pointer{FileID: fileID, PageID: pageID}, nil
}

// RecordPointer addresses a single record: a Page Pointer plus a slot id.
type RecordPointer struct {
	Page Pointer
	Slot uint16
}

func (r RecordPointer) IsNull() bool { return r.Page.IsNull() }

func (r RecordPointer) String() string {
	if r.IsNull() {
		return "<nil-record>"
	}
	return fmt.Sprintf("%s/slot=%d", r.Page, r.Slot)
}

// ParseRecordPointer reads an 8-byte Record Pointer: a Page Pointer followed by a u16 slot id.
func ParseRecordPointer(b []byte, off int) (RecordPointer, error) {
	s, err := format.Slice(b, off, format.RecordPointerSize)
	if err != nil {
		return RecordPointer{}, err
	}
	ptr, err := ParsePointer(s, 0)
	if err != nil {
		return RecordPointer{}, err
	}
	slot, _ := format.Le16(s, 4)
	return RecordPointer{Page: ptr, Slot: slot}, nil
}

// Type is the closed set of page types that can appear in the file header byte 1.
type Type uint8

const (
	TypeUnAlloc         Type = 0
	TypeData            Type = 1
	TypeIndex           Type = 2
	TypeTextMix         Type = 3
	TypeTextTree        Type = 4
	TypeSort            Type = 7
	TypeGAM             Type = 8
	TypeSGAM            Type = 9
	TypeIAM             Type = 10
	TypePFS             Type = 11
	TypeBoot            Type = 13
	TypeFileHeader      Type = 15
	TypeDiffMap         Type = 16
	TypeMLMap           Type = 17
	TypeCheckDBTemp     Type = 18
	TypeAlterIndexTemp  Type = 19
	TypePreAlloc        Type = 20
)

func (t Type) String() string {
	switch t {
	case TypeUnAlloc:
		return "UnAlloc"
	case TypeData:
		return "Data"
	case TypeIndex:
		return "Index"
	case TypeTextMix:
		return "TextMix"
	case TypeTextTree:
		return "TextTree"
	case TypeSort:
		return "Sort"
	case TypeGAM:
		return "GAM"
	case TypeSGAM:
		return "SGAM"
	case TypeIAM:
		return "IAM"
	case TypePFS:
		return "PFS"
	case TypeBoot:
		return "Boot"
	case TypeFileHeader:
		return "FileHeader"
	case TypeDiffMap:
		return "DiffMap"
	case TypeMLMap:
		return "MLMap"
	case TypeCheckDBTemp:
		return "CheckDBTemp"
	case TypeAlterIndexTemp:
		return "AlterIndexTemp"
	case TypePreAlloc:
		return "PreAlloc"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}
