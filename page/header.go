// header.go - 96-byte page header, fixed little-endian offsets
package page

import "github.com/wilhasse/go-mdf/format"

// Header is the fixed 96-byte header present at the start of every page.
type Header struct {
	Self      Pointer
	Type      Type
	Level     uint8
	IndexID   uint16
	Prev      Pointer
	PMinLen   uint16
	Next      Pointer
	SlotCount uint16
	ObjectID  uint32
}

// ParseHeader reads the fixed-offset page header fields out of a full page buffer.
func ParseHeader(p []byte) (Header, error) {
	if len(p) < format.PageHeaderSize {
		return Header{}, format.ErrShortRead
	}

	ty, err := format.Le8(p, 1)
	if err != nil {
		return Header{}, err
	}
	level, err := format.Le8(p, 3)
	if err != nil {
		return Header{}, err
	}
	indexID, err := format.Le16(p, 6)
	if err != nil {
		return Header{}, err
	}
	prev, err := ParsePointer(p, 8)
	if err != nil {
		return Header{}, err
	}
	pMinLen, err := format.Le16(p, 14)
	if err != nil {
		return Header{}, err
	}
	next, err := ParsePointer(p, 16)
	if err != nil {
		return Header{}, err
	}
	slotCount, err := format.Le16(p, 22)
	if err != nil {
		return Header{}, err
	}
	objectID, err := format.Le32(p, 24)
	if err != nil {
		return Header{}, err
	}
	self, err := ParsePointer(p, 32)
	if err != nil {
		return Header{}, err
	}

	return Header{
		Self:      self,
		Type:      Type(ty),
		Level:     level,
		IndexID:   indexID,
		Prev:      prev,
		PMinLen:   pMinLen,
		Next:      next,
		SlotCount: slotCount,
		ObjectID:  objectID,
	}, nil
}
