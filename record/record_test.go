package record

import "testing"

// TestParseNullBitmapAndVarLength decodes a 3-column record: a fixed int32
// (value 42), a non-null 2-byte variable-length cell ("AB"), and a
// null variable-length cell flagged in the null bitmap.
func TestParseNullBitmapAndVarLength(t *testing.T) {
	data := []byte{
		0x30, 0x00, // tag0 (HasNullBitmap|HasVarLengthCols, Primary), tagB
		0x08, 0x00, // total = 8 (fixedLen = 4)
		0x2A, 0x00, 0x00, 0x00, // fixed data: int32 42
		0x03, 0x00, // col_count = 3
		0x04,       // null bitmap: bit 2 set (third column is null)
		0x01, 0x00, // var-length column count = 1
		0x11, 0x00, // offset[0].end = 17 (no complex bit)
		0x41, 0x42, // "AB"
	}

	rec, err := Parse(data, 0, false, 0)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Type != Primary {
		t.Fatalf("type = %v", rec.Type)
	}
	if rec.ColumnCount != 3 {
		t.Fatalf("column count = %d", rec.ColumnCount)
	}
	if rec.IsColumnNull(0) || rec.IsColumnNull(1) {
		t.Fatal("columns 0 and 1 should not be null")
	}
	if !rec.IsColumnNull(2) {
		t.Fatal("column 2 should be null")
	}
	if !rec.HasVarLengthBlock() || rec.VarColumnCount() != 1 {
		t.Fatalf("var length block: has=%v count=%d", rec.HasVarLengthBlock(), rec.VarColumnCount())
	}
	raw, complex := rec.VarColumn(0)
	if complex {
		t.Fatal("column should not be complex")
	}
	if string(raw) != "AB" {
		t.Fatalf("var column = %q", raw)
	}
}

func TestParseIndexRecordUsesPMinLen(t *testing.T) {
	data := []byte{
		0x06, // tag0: recType = Index (3) -> (3<<1)=6, TagA=0
		0xAA, 0xBB, 0xCC, // 3 bytes of fixed data (pMinLen-1 = 3)
		0x00, 0x00, // col_count = 0
	}
	rec, err := Parse(data, 0, true, 4)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Type != Index {
		t.Fatalf("type = %v", rec.Type)
	}
	if len(rec.FixedData) != 3 {
		t.Fatalf("fixed data len = %d", len(rec.FixedData))
	}
}

func TestParseCorruptTotal(t *testing.T) {
	data := []byte{0x00, 0x00, 0x02, 0x00} // total = 2, below the minimum of 4
	if _, err := Parse(data, 0, false, 0); err != ErrCorrupt {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestParseUnsupportedType(t *testing.T) {
	// recType = Forwarding (2): (2<<1) = 4
	data := []byte{0x04, 0x00, 0x04, 0x00}
	if _, err := Parse(data, 0, false, 0); err != ErrUnsupportedType {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestVarColumnOutOfRange(t *testing.T) {
	data := []byte{
		0x30, 0x00,
		0x04, 0x00,
		0x03, 0x00, // col_count
		0x00,       // null bitmap
		0x00, 0x00, // zero var-length entries
	}
	rec, err := Parse(data, 0, false, 0)
	if err != nil {
		t.Fatal(err)
	}
	if raw, complex := rec.VarColumn(5); complex || len(raw) != 0 {
		t.Fatal("expected an empty, non-complex slice for out-of-range var column")
	}
}
