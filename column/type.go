// type.go - the closed SqlType set
package column

// Kind is the closed set of SQL types this decoder understands.
type Kind uint8

const (
	TinyInt Kind = iota
	SmallInt
	Int
	BigInt
	Binary
	Char
	NChar
	VarBinary
	VarChar
	Bit
	SqlVariant
	NVarChar
	SysName
	DateTime
	SmallDateTime
	UniqueIdentifier
	Image
	NText
	Float
)

// SqlType is Kind plus the length/max-length parameters a handful of kinds carry.
type SqlType struct {
	Kind Kind
	// Len is the fixed byte length for Binary/Char, and the character count
	// for NChar (2 bytes per character).
	Len int
	// MaxLen is the declared max length for VarBinary/VarChar; -1 means "no declared max".
	MaxLen int
}

func NewBinary(n int) SqlType   { return SqlType{Kind: Binary, Len: n} }
func NewChar(n int) SqlType     { return SqlType{Kind: Char, Len: n} }
func NewNChar(n int) SqlType    { return SqlType{Kind: NChar, Len: n} }
func NewVarBinary(max int) SqlType {
	if max == 0 {
		max = -1
	}
	return SqlType{Kind: VarBinary, MaxLen: max}
}
func NewVarChar(max int) SqlType {
	if max == 0 {
		max = -1
	}
	return SqlType{Kind: VarChar, MaxLen: max}
}
func Simple(k Kind) SqlType { return SqlType{Kind: k} }

// IsVarLength partitions the type set: these kinds are decoded from the
// record's variable-length block rather than its fixed-data cursor.
func (t SqlType) IsVarLength() bool {
	switch t.Kind {
	case VarBinary, VarChar, SqlVariant, NVarChar, SysName, Image, NText:
		return true
	default:
		return false
	}
}

// FixedSize returns the number of bytes this type occupies in the fixed-data
// cursor, or -1 if it is variable-length (and so has no fixed size).
func (t SqlType) FixedSize() int {
	switch t.Kind {
	case TinyInt:
		return 1
	case SmallInt:
		return 2
	case Int:
		return 4
	case BigInt:
		return 8
	case Float:
		return 8
	case UniqueIdentifier:
		return 16
	case DateTime:
		return 8
	case SmallDateTime:
		return 4
	case Binary:
		return t.Len
	case Char:
		return t.Len
	case NChar:
		return t.Len * 2
	case Bit:
		return 0 // consumed from the persistent bit cursor, not the byte cursor
	default:
		return -1
	}
}
