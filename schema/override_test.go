package schema

import (
	"testing"

	"github.com/wilhasse/go-mdf/column"
)

func TestParseOverrideFromSQL(t *testing.T) {
	sch, err := ParseOverrideFromSQL("CREATE TABLE orphans (id INT, name VARCHAR(50), flag BIT)")
	if err != nil {
		t.Fatal(err)
	}
	if len(sch.Columns) != 3 {
		t.Fatalf("column count = %d", len(sch.Columns))
	}
	if sch.Columns[0].Name != "id" || sch.Columns[0].Type.Kind != column.Int {
		t.Fatalf("col0 = %+v", sch.Columns[0])
	}
	if sch.Columns[1].Name != "name" || sch.Columns[1].Type.Kind != column.VarChar || sch.Columns[1].Type.MaxLen != 50 {
		t.Fatalf("col1 = %+v", sch.Columns[1])
	}
	if sch.Columns[2].Type.Kind != column.Bit {
		t.Fatalf("col2 = %+v", sch.Columns[2])
	}
}

func TestParseOverrideFromSQLRejectsNonCreate(t *testing.T) {
	if _, err := ParseOverrideFromSQL("SELECT * FROM t"); err == nil {
		t.Fatal("expected an error for a non-CREATE-TABLE statement")
	}
}
