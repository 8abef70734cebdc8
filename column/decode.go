// decode.go - fixed-length and variable-length value decoding
package column

import (
	"errors"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wilhasse/go-mdf/format"
	"github.com/wilhasse/go-mdf/page"
)

// ErrUnsupportedValue is returned for fixed/variable-length mismatches and
// for variable-length cells whose complex bit or size does not fit the type
// (a complex SysName, a non-pointer Image/NText).
var ErrUnsupportedValue = errors.New("column: unsupported value")

// epoch is the SQL Server "day zero" all DateTime/SmallDateTime values are
// measured from.
var epoch = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

func logOrDefault(l *logrus.Logger) *logrus.Logger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}

// ParseFixed decodes one value of a fixed-length type from cur (and, for
// Bit, from bits), sharing both cursors across every column of the row.
func ParseFixed(t SqlType, cur *Cursor, bits *BitCursor) (Value, error) {
	switch t.Kind {
	case TinyInt:
		v, err := cur.TakeU8()
		return Value{Type: t, Int: int64(v)}, err
	case SmallInt:
		v, err := cur.TakeU16()
		return Value{Type: t, Int: int64(int16(v))}, err
	case Int:
		v, err := cur.TakeU32()
		return Value{Type: t, Int: int64(int32(v))}, err
	case BigInt:
		v, err := cur.TakeU64()
		return Value{Type: t, Int: int64(v)}, err
	case Bit:
		v, err := bits.Next()
		return Value{Type: t, Bit: v}, err
	case Float:
		v, err := cur.TakeU64()
		return Value{Type: t, Float: math.Float64frombits(v)}, err
	case UniqueIdentifier:
		b, err := cur.Take(16)
		if err != nil {
			return Value{}, err
		}
		var g [16]byte
		copy(g[:], b)
		return Value{Type: t, GUID: g}, nil
	case DateTime:
		timeTicks, err := cur.TakeU32()
		if err != nil {
			return Value{}, err
		}
		dateDays, err := cur.TakeU32()
		if err != nil {
			return Value{}, err
		}
		days := int32(dateDays)
		if days <= 0 || days >= 1_000_000 {
			days = 0
		}
		ms := int64(int32(timeTicks)) * 1000 / 300
		tm := epoch.AddDate(0, 0, int(days)).Add(time.Duration(ms) * time.Millisecond)
		return Value{Type: t, Time: tm}, nil
	case SmallDateTime:
		minutes, err := cur.TakeU16()
		if err != nil {
			return Value{}, err
		}
		days, err := cur.TakeU16()
		if err != nil {
			return Value{}, err
		}
		tm := epoch.AddDate(0, 0, int(days)).Add(time.Duration(minutes) * time.Minute)
		return Value{Type: t, Time: tm}, nil
	case Binary:
		b, err := cur.Take(t.Len)
		return Value{Type: t, Bytes: append([]byte(nil), b...)}, err
	case Char:
		b, err := cur.Take(t.Len)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: t, Str: string(b)}, nil
	case NChar:
		b, err := cur.Take(t.Len * 2)
		if err != nil {
			return Value{}, err
		}
		s, err := DecodeUTF16LE(b)
		return Value{Type: t, Str: s}, err
	default:
		return Value{}, ErrUnsupportedValue
	}
}

// ParseVarLength decodes one value of a variable-length type from raw bytes
// already sliced out of the record's variable-length block. complex is the
// high-bit marker: the payload is a LobPointer rather than inline bytes.
func ParseVarLength(t SqlType, complex bool, raw []byte, logger *logrus.Logger) (Value, error) {
	logger = logOrDefault(logger)
	switch t.Kind {
	case VarBinary:
		if complex {
			lob, err := parseLobBytes(raw)
			if err != nil {
				return Value{}, err
			}
			return Value{Type: t, Lob: &lob}, nil
		}
		if t.MaxLen > 0 && len(raw) > t.MaxLen {
			logger.WithField("len", len(raw)).WithField("max", t.MaxLen).Warn("column: oversize VarBinary, keeping anyway")
		}
		return Value{Type: t, Bytes: append([]byte(nil), raw...)}, nil

	case VarChar:
		if t.MaxLen > 0 && len(raw) > t.MaxLen {
			logger.WithField("len", len(raw)).WithField("max", t.MaxLen).Warn("column: oversize VarChar, keeping anyway")
		}
		return Value{Type: t, Str: string(raw)}, nil

	case Image, NText:
		if len(raw) == 0 {
			return Value{Type: t, Null: true}, nil
		}
		if !complex || len(raw) != format.LobPointerSize {
			return Value{}, ErrUnsupportedValue
		}
		lob, err := parseLobBytes(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: t, Lob: &lob}, nil

	case SysName:
		if complex {
			return Value{}, ErrUnsupportedValue
		}
		s, err := DecodeUTF16LE(raw)
		return Value{Type: t, Str: s}, err

	case NVarChar:
		if complex {
			lob, err := parseLobBytes(raw)
			if err != nil {
				return Value{}, err
			}
			return Value{Type: t, Lob: &lob}, nil
		}
		s, err := DecodeUTF16LE(raw)
		return Value{Type: t, Str: s}, err

	case SqlVariant:
		return Value{Type: t, Variant: append([]byte(nil), raw...)}, nil

	default:
		return Value{}, ErrUnsupportedValue
	}
}

func parseLobBytes(raw []byte) (page.LobPointer, error) {
	if len(raw) != format.LobPointerSize {
		return page.LobPointer{}, ErrUnsupportedValue
	}
	return page.ParseLobPointer(raw, 0)
}
