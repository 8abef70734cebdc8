// lobpointer.go - the 16-byte LobPointer value embedded in VarBinary/NVarChar/Image/NText cells
package page

import "github.com/wilhasse/go-mdf/format"

// LobPointer is carried inline wherever a variable-length cell is offloaded
// out-of-row: a 4-byte timestamp, 4 reserved bytes, then a Record Pointer.
type LobPointer struct {
	Timestamp uint32
	Record    RecordPointer
}

// ParseLobPointer reads a 16-byte LobPointer: timestamp u32 @0, Record Pointer @8..16.
func ParseLobPointer(b []byte, off int) (LobPointer, error) {
	s, err := format.Slice(b, off, format.LobPointerSize)
	if err != nil {
		return LobPointer{}, err
	}
	ts, _ := format.Le32(s, 0)
	rp, err := ParseRecordPointer(s, 8)
	if err != nil {
		return LobPointer{}, err
	}
	return LobPointer{Timestamp: ts, Record: rp}, nil
}
