// value.go - the decoded SqlValue, tagged by SqlType.Kind
package column

import (
	"fmt"
	"time"

	"github.com/wilhasse/go-mdf/page"
)

// Value is one decoded cell. Exactly one of the typed fields is meaningful,
// selected by Type.Kind; Null and Lob short-circuit the rest.
type Value struct {
	Type SqlType

	Null bool
	// Lob is set instead of Bytes/Str when a variable-length cell was
	// offloaded out-of-row (the "complex" bit was set).
	Lob *page.LobPointer

	Int    int64
	Float  float64
	Bit    bool
	Bytes  []byte
	Str    string
	GUID   [16]byte
	Time   time.Time
	Variant []byte
}

// IsLobRef reports whether this value is an out-of-row pointer rather than
// inline data.
func (v Value) IsLobRef() bool { return v.Lob != nil }

// String renders v for diagnostic output; it is not a wire format.
func (v Value) String() string {
	if v.Null {
		return "NULL"
	}
	if v.Lob != nil {
		return fmt.Sprintf("LOB%s", v.Lob.Record)
	}
	switch v.Type.Kind {
	case TinyInt, SmallInt, Int, BigInt:
		return fmt.Sprintf("%d", v.Int)
	case Bit:
		return fmt.Sprintf("%v", v.Bit)
	case Float:
		return fmt.Sprintf("%g", v.Float)
	case UniqueIdentifier:
		return fmt.Sprintf("%x", v.GUID)
	case DateTime, SmallDateTime:
		return v.Time.Format("2006-01-02T15:04:05.000")
	case Binary, VarBinary, Image:
		return fmt.Sprintf("0x%x", v.Bytes)
	case SqlVariant:
		return fmt.Sprintf("variant(%d bytes)", len(v.Variant))
	default:
		return v.Str
	}
}
