// rows.go - the seven system-table row types (six loaded by Bootstrap, SysRsCol
// reserved), hand-expanded from the
// reference implementation's create_row_parser! macro (system_tables.rs)
package catalog

import (
	"time"

	"github.com/wilhasse/go-mdf/column"
	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
	"github.com/wilhasse/go-mdf/schema"
)

func fixedCol(id int32, name string, k column.Kind) schema.Column {
	return schema.Column{ColID: id, Name: name, Type: column.Simple(k)}
}

func binCol(id int32, name string, n int) schema.Column {
	return schema.Column{ColID: id, Name: name, Type: column.NewBinary(n)}
}

func sysNameCol(id int32, name string) schema.Column {
	return schema.Column{ColID: id, Name: name, Type: column.Simple(column.SysName)}
}

func charCol(id int32, name string, n int) schema.Column {
	return schema.Column{ColID: id, Name: name, Type: column.NewChar(n)}
}

func varBinCol(id int32, name string) schema.Column {
	return schema.Column{ColID: id, Name: name, Type: column.NewVarBinary(-1)}
}

// bindSystemRow is a thin wrapper so every system-table parser shares the
// same row-binding error policy (log and skip, never fatal; see DESIGN.md).
func bindSystemRow(sch schema.Schema, rec *record.Record) (schema.Row, error) {
	return schema.BindRow(sch, rec, nil)
}

func optPointer(v column.Value) *page.Pointer {
	if v.Null || len(v.Bytes) < 6 {
		return nil
	}
	p, err := page.ParsePointer(v.Bytes, 0)
	if err != nil {
		return nil
	}
	return &p
}

func optInt32(v column.Value) *int32 {
	if v.Null {
		return nil
	}
	i := int32(v.Int)
	return &i
}

func optInt16(v column.Value) *int16 {
	if v.Null {
		return nil
	}
	i := int16(v.Int)
	return &i
}

func optInt8(v column.Value) *int8 {
	if v.Null {
		return nil
	}
	i := int8(v.Int)
	return &i
}

func optBytes(v column.Value) []byte {
	if v.Null {
		return nil
	}
	if v.Bytes != nil {
		return v.Bytes
	}
	return []byte(v.Str)
}

// --- SysAllocUnit ---

var sysAllocUnitSchema = schema.New([]schema.Column{
	fixedCol(1, "au_id", column.BigInt),
	fixedCol(2, "ty", column.TinyInt),
	fixedCol(3, "owner_id", column.BigInt),
	fixedCol(4, "status", column.Int),
	fixedCol(5, "fgid", column.SmallInt),
	binCol(6, "pg_first", 6),
	binCol(7, "pg_root", 6),
	binCol(8, "pg_firstiam", 6),
	fixedCol(9, "pc_used", column.BigInt),
	fixedCol(10, "pc_data", column.BigInt),
	fixedCol(11, "pc_reserved", column.BigInt),
	fixedCol(12, "db_frag_id", column.Int),
})

type SysAllocUnit struct {
	AUID        int64
	Type        AllocUnitType
	OwnerID     int64
	Status      int32
	FgID        int16
	PgFirst     *page.Pointer
	PgRoot      *page.Pointer
	PgFirstIAM  *page.Pointer
	PcUsed      int64
	PcData      int64
	PcReserved  int64
	DbFragID    *int32
}

func ParseSysAllocUnit(rec *record.Record) (*SysAllocUnit, error) {
	row, err := bindSystemRow(sysAllocUnitSchema, rec)
	if err != nil {
		return nil, err
	}
	ty, ok := parseAllocUnitType(int8(row[1].Int))
	if !ok {
		return nil, errUnknownEnum("SysAllocUnit.ty", row[1].Int)
	}
	return &SysAllocUnit{
		AUID:       row[0].Int,
		Type:       ty,
		OwnerID:    row[2].Int,
		Status:     int32(row[3].Int),
		FgID:       int16(row[4].Int),
		PgFirst:    optPointer(row[5]),
		PgRoot:     optPointer(row[6]),
		PgFirstIAM: optPointer(row[7]),
		PcUsed:     row[8].Int,
		PcData:     row[9].Int,
		PcReserved: row[10].Int,
		DbFragID:   optInt32(row[11]),
	}, nil
}

// --- SysRowSet ---

var sysRowSetSchema = schema.New([]schema.Column{
	fixedCol(1, "row_set_id", column.BigInt),
	fixedCol(2, "owner_type", column.TinyInt),
	fixedCol(3, "id_major", column.Int),
	fixedCol(4, "id_minor", column.Int),
	fixedCol(5, "num_part", column.Int),
	fixedCol(6, "status", column.Int),
	fixedCol(7, "fgidfs", column.SmallInt),
	fixedCol(8, "rcrows", column.BigInt),
	fixedCol(9, "cmpr_level", column.TinyInt),
	fixedCol(10, "fill_fact", column.TinyInt),
	fixedCol(11, "max_leaf", column.Int),
	fixedCol(12, "max_int", column.SmallInt),
	fixedCol(13, "min_leaf", column.SmallInt),
	fixedCol(14, "min_int", column.SmallInt),
	varBinCol(15, "rs_guid"),
	varBinCol(16, "lock_res"),
	fixedCol(17, "db_frag_id", column.Int),
})

type SysRowSet struct {
	RowSetID  int64
	OwnerType int8
	IDMajor   int32
	IDMinor   int32
	NumPart   int32
	Status    int32
	FgIDFS    int16
	RCRows    int64
	CmprLevel *int8
	FillFact  *int8
	MaxLeaf   *int32
	MaxInt    *int16
	MinLeaf   *int16
	MinInt    *int16
	RSGuid    []byte
	LockRes   []byte
	DbFragID  *int32
}

func ParseSysRowSet(rec *record.Record) (*SysRowSet, error) {
	row, err := bindSystemRow(sysRowSetSchema, rec)
	if err != nil {
		return nil, err
	}
	return &SysRowSet{
		RowSetID:  row[0].Int,
		OwnerType: int8(row[1].Int),
		IDMajor:   int32(row[2].Int),
		IDMinor:   int32(row[3].Int),
		NumPart:   int32(row[4].Int),
		Status:    int32(row[5].Int),
		FgIDFS:    int16(row[6].Int),
		RCRows:    row[7].Int,
		CmprLevel: optInt8(row[8]),
		FillFact:  optInt8(row[9]),
		MaxLeaf:   optInt32(row[10]),
		MaxInt:    optInt16(row[11]),
		MinLeaf:   optInt16(row[12]),
		MinInt:    optInt16(row[13]),
		RSGuid:    optBytes(row[14]),
		LockRes:   optBytes(row[15]),
		DbFragID:  optInt32(row[16]),
	}, nil
}

// --- SysSchObj ---

var sysSchObjSchema = schema.New([]schema.Column{
	fixedCol(1, "id", column.Int),
	sysNameCol(2, "name"),
	fixedCol(3, "ns_id", column.Int),
	fixedCol(4, "ns_class", column.TinyInt),
	fixedCol(5, "status", column.Int),
	charCol(6, "ty", 2),
	fixedCol(7, "pid", column.Int),
	fixedCol(8, "pcall", column.TinyInt),
	fixedCol(9, "int_prop", column.Int),
	fixedCol(10, "created", column.DateTime),
	fixedCol(11, "modified", column.DateTime),
})

type SysSchObj struct {
	ID       int32
	Name     string
	NsID     int32
	NsClass  int8
	Status   int32
	Type     SchType
	PID      int32
	PCall    int8
	IntProp  int32
	Created  time.Time
	Modified time.Time
}

func ParseSysSchObj(rec *record.Record) (*SysSchObj, error) {
	row, err := bindSystemRow(sysSchObjSchema, rec)
	if err != nil {
		return nil, err
	}
	return &SysSchObj{
		ID:       int32(row[0].Int),
		Name:     row[1].Str,
		NsID:     int32(row[2].Int),
		NsClass:  int8(row[3].Int),
		Status:   int32(row[4].Int),
		Type:     parseSchType(row[5].Str),
		PID:      int32(row[6].Int),
		PCall:    int8(row[7].Int),
		IntProp:  int32(row[8].Int),
		Created:  row[9].Time,
		Modified: row[10].Time,
	}, nil
}

// --- SysColPar ---

var sysColParSchema = schema.New([]schema.Column{
	fixedCol(1, "id", column.Int),
	fixedCol(2, "number", column.SmallInt),
	fixedCol(3, "col_id", column.Int),
	sysNameCol(4, "name"),
	fixedCol(5, "xtype", column.TinyInt),
	fixedCol(6, "utype", column.Int),
	fixedCol(7, "length", column.SmallInt),
	fixedCol(8, "prec", column.TinyInt),
	fixedCol(9, "scale", column.TinyInt),
	fixedCol(10, "collation_id", column.Int),
	fixedCol(11, "status", column.Int),
	fixedCol(12, "max_in_row", column.SmallInt),
	fixedCol(13, "xml_ns", column.Int),
	fixedCol(14, "dflt", column.Int),
	fixedCol(15, "chk", column.Int),
	varBinCol(16, "idt_val"),
})

type SysColPar struct {
	ID           int32
	Number       int16
	ColID        int32
	Name         *string
	XType        int8
	UType        int32
	Length       int16
	Prec         int8
	Scale        int8
	CollationID  int32
	Status       ColParStatus
	MaxInRow     int16
	XMLNs        int32
	Dflt         int32
	Chk          int32
	IdtVal       []byte
}

func ParseSysColPar(rec *record.Record) (*SysColPar, error) {
	row, err := bindSystemRow(sysColParSchema, rec)
	if err != nil {
		return nil, err
	}
	var name *string
	if !row[3].Null {
		s := row[3].Str
		name = &s
	}
	return &SysColPar{
		ID:          int32(row[0].Int),
		Number:      int16(row[1].Int),
		ColID:       int32(row[2].Int),
		Name:        name,
		XType:       int8(row[4].Int),
		UType:       int32(row[5].Int),
		Length:      int16(row[6].Int),
		Prec:        int8(row[7].Int),
		Scale:       int8(row[8].Int),
		CollationID: int32(row[9].Int),
		Status:      ColParStatus(row[10].Int),
		MaxInRow:    int16(row[11].Int),
		XMLNs:       int32(row[12].Int),
		Dflt:        int32(row[13].Int),
		Chk:         int32(row[14].Int),
		IdtVal:      optBytes(row[15]),
	}, nil
}

// --- SysScalarType ---

var sysScalarTypeSchema = schema.New([]schema.Column{
	fixedCol(1, "id", column.Int),
	fixedCol(2, "sch_id", column.Int),
	sysNameCol(3, "name"),
	fixedCol(4, "xtype", column.TinyInt),
	fixedCol(5, "length", column.SmallInt),
	fixedCol(6, "prec", column.TinyInt),
	fixedCol(7, "scale", column.TinyInt),
	fixedCol(8, "collation_id", column.Int),
	fixedCol(9, "status", column.Int),
	fixedCol(10, "created", column.DateTime),
	fixedCol(11, "modified", column.DateTime),
	fixedCol(12, "dflt", column.Int),
	fixedCol(13, "chk", column.Int),
})

type SysScalarType struct {
	ID          int32
	SchID       int32
	Name        string
	XType       int8
	Length      int16
	Prec        int8
	Scale       int8
	CollationID int32
	Status      int32
	Created     time.Time
	Modified    time.Time
	Dflt        int32
	Chk         int32
}

func ParseSysScalarType(rec *record.Record) (*SysScalarType, error) {
	row, err := bindSystemRow(sysScalarTypeSchema, rec)
	if err != nil {
		return nil, err
	}
	return &SysScalarType{
		ID:          int32(row[0].Int),
		SchID:       int32(row[1].Int),
		Name:        row[2].Str,
		XType:       int8(row[3].Int),
		Length:      int16(row[4].Int),
		Prec:        int8(row[5].Int),
		Scale:       int8(row[6].Int),
		CollationID: int32(row[7].Int),
		Status:      int32(row[8].Int),
		Created:     row[9].Time,
		Modified:    row[10].Time,
		Dflt:        int32(row[11].Int),
		Chk:         int32(row[12].Int),
	}, nil
}

// --- SysRsCol (reserved) ---

// SysRsCol mirrors the reference schema but is never populated by Bootstrap
// (see the Open Question decision in DESIGN.md): Catalog.RowSetColumns is
// always an empty slice. Kept as a typed struct so a future bootstrap step
// has a destination to parse into.
type SysRsCol struct {
	RowSetID     int64
	RowSetColID  int32
	HobtColID    int32
	Status       int32
	RcModified   int64
	MaxInRowLen  int16
}

var sysRsColSchema = schema.New([]schema.Column{
	fixedCol(1, "row_set_id", column.BigInt),
	fixedCol(2, "row_set_col_id", column.Int),
	fixedCol(3, "hobt_col_id", column.Int),
	fixedCol(4, "status", column.Int),
	fixedCol(5, "rc_modified", column.BigInt),
	fixedCol(6, "max_in_row_len", column.SmallInt),
})

func ParseSysRsCol(rec *record.Record) (*SysRsCol, error) {
	row, err := bindSystemRow(sysRsColSchema, rec)
	if err != nil {
		return nil, err
	}
	return &SysRsCol{
		RowSetID:    row[0].Int,
		RowSetColID: int32(row[1].Int),
		HobtColID:   int32(row[2].Int),
		Status:      int32(row[3].Int),
		RcModified:  row[4].Int,
		MaxInRowLen: int16(row[5].Int),
	}, nil
}

// --- SysSingleObjRef ---

var sysSingleObjRefSchema = schema.New([]schema.Column{
	fixedCol(1, "class", column.TinyInt),
	fixedCol(2, "dep_id", column.Int),
	fixedCol(3, "dep_sub_id", column.Int),
	fixedCol(4, "in_dep_id", column.Int),
	fixedCol(5, "in_dep_sub_id", column.Int),
	fixedCol(6, "status", column.Int),
})

type SysSingleObjRef struct {
	Class      int8
	DepID      int32
	DepSubID   int32
	InDepID    int32
	InDepSubID int32
	Status     int32
}

func ParseSysSingleObjRef(rec *record.Record) (*SysSingleObjRef, error) {
	row, err := bindSystemRow(sysSingleObjRefSchema, rec)
	if err != nil {
		return nil, err
	}
	return &SysSingleObjRef{
		Class:      int8(row[0].Int),
		DepID:      int32(row[1].Int),
		DepSubID:   int32(row[2].Int),
		InDepID:    int32(row[3].Int),
		InDepSubID: int32(row[4].Int),
		Status:     int32(row[5].Int),
	}, nil
}
