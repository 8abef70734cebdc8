package catalog

import "testing"

func TestBuildSchemaSortsAndSkipsSparse(t *testing.T) {
	schObj := &SysSchObj{ID: 1, Name: "orders"}
	cat := &Catalog{
		ColPars: []*SysColPar{
			{ID: 1, ColID: 3, Name: strPtr("amount"), XType: 56, Status: 0},
			{ID: 1, ColID: 1, Name: strPtr("id"), XType: 56, Status: 0},
			{ID: 1, ColID: 2, Name: strPtr("note"), XType: 98, Status: ColParSparse},
			{ID: 2, ColID: 1, Name: strPtr("other_table"), XType: 56, Status: 0},
		},
		ScalarTypes: []*SysScalarType{
			{ID: 56, XType: 56, Name: "int"},
			{ID: 98, XType: 98, Name: "sql_variant"},
		},
	}

	sch, err := cat.BuildSchema(schObj)
	if err != nil {
		t.Fatal(err)
	}
	if len(sch.Columns) != 2 {
		t.Fatalf("expected 2 columns (sparse + other table excluded), got %d: %+v", len(sch.Columns), sch.Columns)
	}
	if sch.Columns[0].Name != "id" || sch.Columns[1].Name != "amount" {
		t.Fatalf("not sorted by col_id: %+v", sch.Columns)
	}
}

func TestColumnsForTableSorted(t *testing.T) {
	cat := &Catalog{
		ColPars: []*SysColPar{
			{ID: 5, ColID: 2},
			{ID: 5, ColID: 1},
			{ID: 5, ColID: 3},
		},
	}
	cols := cat.ColumnsForTable(&SysSchObj{ID: 5})
	if len(cols) != 3 {
		t.Fatalf("got %d columns", len(cols))
	}
	if cols[0].ColID != 1 || cols[1].ColID != 2 || cols[2].ColID != 3 {
		t.Fatalf("not sorted: %+v", cols)
	}
}

func TestPartitionsForTable(t *testing.T) {
	cat := &Catalog{
		RowSets: []*SysRowSet{
			{IDMajor: 10, IDMinor: 0, RowSetID: 100},
			{IDMajor: 10, IDMinor: 1, RowSetID: 101},
			{IDMajor: 10, IDMinor: 2, RowSetID: 102}, // an index, excluded
			{IDMajor: 20, IDMinor: 0, RowSetID: 200},
		},
	}
	parts := cat.PartitionsForTable(&SysSchObj{ID: 10})
	if len(parts) != 2 {
		t.Fatalf("got %d partitions, want 2: %+v", len(parts), parts)
	}
}

func strPtr(s string) *string { return &s }
