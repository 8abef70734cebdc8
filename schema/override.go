// override.go - manual CREATE TABLE override for degraded recovery when the
// catalog bootstrap cannot be trusted (generalizes the teacher CLI's -sql flag)
package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xwb1989/sqlparser"
	"github.com/wilhasse/go-mdf/column"
)

// ParseOverrideFromSQL parses a single CREATE TABLE statement and returns the
// Schema an operator can hand to table.OpenWithSchema in place of a catalog lookup,
// for use when sys.* bootstrap fails on a damaged database but the operator
// still knows the table's layout (e.g. from a sibling backup).
func ParseOverrideFromSQL(sql string) (Schema, error) {
	stmt, err := sqlparser.Parse(sql)
	if err != nil {
		return Schema{}, fmt.Errorf("schema: parse override SQL: %w", err)
	}
	ddl, ok := stmt.(*sqlparser.DDL)
	if !ok || ddl.Action != sqlparser.CreateStr || ddl.TableSpec == nil {
		return Schema{}, fmt.Errorf("schema: override SQL is not a CREATE TABLE")
	}

	cols := make([]Column, 0, len(ddl.TableSpec.Columns))
	for i, cd := range ddl.TableSpec.Columns {
		t, err := overrideType(cd.Type)
		if err != nil {
			return Schema{}, fmt.Errorf("schema: column %s: %w", cd.Name.String(), err)
		}
		cols = append(cols, Column{
			ColID:    int32(i + 1),
			Name:     cd.Name.String(),
			Type:     t,
			Nullable: !bool(cd.Type.NotNull),
		})
	}
	return New(cols), nil
}

func overrideType(t sqlparser.ColumnType) (column.SqlType, error) {
	name := strings.ToUpper(t.Type)
	length := -1
	if t.Length != nil {
		if n, err := strconv.Atoi(string(t.Length.Val)); err == nil {
			length = n
		}
	}

	switch name {
	case "TINYINT":
		return column.Simple(column.TinyInt), nil
	case "SMALLINT":
		return column.Simple(column.SmallInt), nil
	case "INT", "INTEGER":
		return column.Simple(column.Int), nil
	case "BIGINT":
		return column.Simple(column.BigInt), nil
	case "BIT":
		return column.Simple(column.Bit), nil
	case "FLOAT", "REAL":
		return column.Simple(column.Float), nil
	case "DATETIME":
		return column.Simple(column.DateTime), nil
	case "SMALLDATETIME":
		return column.Simple(column.SmallDateTime), nil
	case "UNIQUEIDENTIFIER":
		return column.Simple(column.UniqueIdentifier), nil
	case "BINARY":
		return column.NewBinary(length), nil
	case "CHAR":
		return column.NewChar(length), nil
	case "NCHAR":
		return column.NewNChar(length), nil
	case "VARBINARY":
		return column.NewVarBinary(length), nil
	case "VARCHAR":
		return column.NewVarChar(length), nil
	case "NVARCHAR":
		return column.SqlType{Kind: column.NVarChar, MaxLen: length}, nil
	case "SYSNAME":
		return column.Simple(column.SysName), nil
	case "IMAGE":
		return column.Simple(column.Image), nil
	case "NTEXT":
		return column.Simple(column.NText), nil
	case "SQL_VARIANT":
		return column.Simple(column.SqlVariant), nil
	default:
		return column.SqlType{}, fmt.Errorf("unsupported override type %q", t.Type)
	}
}
