// columnbuild.go - builds a schema.Schema from (SysColPar, SysScalarType) pairs
package catalog

import (
	"fmt"

	"github.com/wilhasse/go-mdf/column"
	"github.com/wilhasse/go-mdf/schema"
)

// sysTypeFromScalarType maps a SQL Server system base-type id (SysScalarType.XType)
// and a declared byte length into a column.SqlType. Rejected entirely: sparse,
// filestream and xml-document columns are handled by the caller before this is
// reached; decimal/numeric/money/datetime2-family types are out of the decoded
// set and return an error.
func sysTypeFromScalarType(xtype int8, length int16) (column.SqlType, error) {
	// xtype is stored as an unsigned tinyint on disk; ids above 127 wrap in int8.
	switch uint8(xtype) {
	case 48:
		return column.Simple(column.TinyInt), nil
	case 52:
		return column.Simple(column.SmallInt), nil
	case 56:
		return column.Simple(column.Int), nil
	case 127:
		return column.Simple(column.BigInt), nil
	case 104:
		return column.Simple(column.Bit), nil
	case 62:
		return column.Simple(column.Float), nil
	case 58:
		return column.Simple(column.SmallDateTime), nil
	case 61:
		return column.Simple(column.DateTime), nil
	case 36:
		return column.Simple(column.UniqueIdentifier), nil
	case 34:
		return column.Simple(column.Image), nil
	case 99:
		return column.Simple(column.NText), nil
	case 98:
		return column.Simple(column.SqlVariant), nil
	case 173:
		return column.NewBinary(int(length)), nil
	case 165:
		return column.NewVarBinary(int(length)), nil
	case 175:
		return column.NewChar(int(length)), nil
	case 167:
		return column.NewVarChar(int(length)), nil
	case 239:
		return column.NewNChar(int(length) / 2), nil
	case 231:
		max := int(length)
		if max > 0 {
			max = max / 2
		}
		return column.SqlType{Kind: column.NVarChar, MaxLen: max}, nil
	default:
		return column.SqlType{}, fmt.Errorf("catalog: unsupported system type id %d", xtype)
	}
}

// BuildSchema pairs each column-parent with its scalar type, rejects
// sparse/filestream/xml-document columns, and sorts ascending by col_id
// (done by schema.New).
func (c *Catalog) BuildSchema(t *SysSchObj) (schema.Schema, error) {
	var cols []schema.Column
	for _, cp := range c.ColumnsForTable(t) {
		if cp.Status.Has(ColParSparse) || cp.Status.Has(ColParFilestream) || cp.Status.Has(ColParXMLDocument) {
			continue
		}
		st := c.TypeForColumn(cp)
		if st == nil {
			continue
		}
		sqlType, err := sysTypeFromScalarType(cp.XType, cp.Length)
		if err != nil {
			continue
		}
		name := st.Name
		if cp.Name != nil {
			name = *cp.Name
		}
		cols = append(cols, schema.Column{
			ColID:    cp.ColID,
			Name:     name,
			Type:     sqlType,
			Nullable: cp.Status.Has(ColParNullable),
			Computed: cp.Status.Has(ColParComputed),
		})
	}
	return schema.New(cols), nil
}
