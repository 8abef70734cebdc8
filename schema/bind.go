// bind.go - binds a Schema to a Record, projecting an ordered Row
package schema

import (
	"github.com/sirupsen/logrus"
	"github.com/wilhasse/go-mdf/column"
	"github.com/wilhasse/go-mdf/record"
)

// Row is an ordered vector of decoded values, one per schema column (always
// the same length as the Schema it was bound against).
type Row []column.Value

func logOrDefault(l *logrus.Logger) *logrus.Logger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}

// BindRow projects rec through sch, following the tolerant binding protocol:
// computed columns never advance any cursor; columns beyond the record's
// declared column_count, or marked null in the bitmap, are left null;
// variable-length columns missing their block get a synthesized empty value
// instead of failing.
func BindRow(sch Schema, rec *record.Record, logger *logrus.Logger) (Row, error) {
	logger = logOrDefault(logger)
	row := make(Row, len(sch.Columns))
	for i := range row {
		row[i] = column.Value{Null: true}
	}

	cur := column.NewCursor(rec.FixedData)
	bits := column.NewBitCursor(cur)
	v := 0
	n := 0

	for i, col := range sch.Columns {
		if col.Computed {
			continue
		}

		switch {
		case n >= int(rec.ColumnCount):
			// trailing schema drift: leave null.

		case rec.IsColumnNull(n):
			// leave null.

		case col.Type.IsVarLength():
			var raw []byte
			var complex bool
			if rec.HasVarLengthBlock() {
				raw, complex = rec.VarColumn(v)
				v++
			} else {
				raw, complex = nil, false
			}
			val, err := column.ParseVarLength(col.Type, complex, raw, logger)
			if err != nil {
				logger.WithError(err).WithField("column", col.Name).Warn("schema: dropping unreadable cell")
				break
			}
			val.Type = col.Type
			row[i] = val

		default:
			val, err := column.ParseFixed(col.Type, cur, bits)
			if err != nil {
				logger.WithError(err).WithField("column", col.Name).Warn("schema: dropping unreadable cell")
				break
			}
			row[i] = val
		}

		n++
	}

	return row, nil
}
