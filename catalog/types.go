// types.go - system-catalog enums and bitflags, grounded on
// original_source/src/system_tables.rs
package catalog

// Catalog anchor constants.
const (
	SysRowSetAUID         = 327680
	SysSchObjsIDMajor     = 34
	SysColParsIDMajor     = 41
	SysScalarTypesIDMajor = 50
	// SysRsColsIDMajor is reserved: Bootstrap does not look up its row-set
	// or alloc-unit and parses no rows for it, so RowSetColumns is always
	// empty (see DESIGN.md).
	SysRsColsIDMajor         = 4
	SysSingleObjRefsIDMajor = 74
)

// AllocUnitType is SysAllocUnit.Type's closed set.
type AllocUnitType int8

const (
	Dropped AllocUnitType = iota
	InRowData
	LobData
	RowOverflowData
)

func parseAllocUnitType(v int8) (AllocUnitType, bool) {
	switch v {
	case 0:
		return Dropped, true
	case 1:
		return InRowData, true
	case 2:
		return LobData, true
	case 3:
		return RowOverflowData, true
	default:
		return 0, false
	}
}

// SchType is SysSchObj.Type's closed set, keyed by the two-character code
// SQL Server stores in sys.sysschobjs.
type SchType int

const (
	SchUnknown SchType = iota
	SystemTable
	SqlScalarFunction
	UserTable
	ServiceQueue
	InternalTable
	DefaultConstraint
	PrimaryKey
	StoredProcedure
	Unique
	SqlTableFunction
	View
	Trigger
)

var schTypeCodes = map[string]SchType{
	"S ": SystemTable,
	"FN": SqlScalarFunction,
	"U ": UserTable,
	"SQ": ServiceQueue,
	"IT": InternalTable,
	"D ": DefaultConstraint,
	"PK": PrimaryKey,
	"P ": StoredProcedure,
	"UQ": Unique,
	"IF": SqlTableFunction,
	"V ": View,
	"TR": Trigger,
}

func parseSchType(s string) SchType {
	if t, ok := schTypeCodes[s]; ok {
		return t
	}
	return SchUnknown
}

// ColParStatus is SysColPar.Status's bitflag set.
type ColParStatus int32

const (
	ColParNullable         ColParStatus = 1 << 0
	ColParAnsiPadded       ColParStatus = 1 << 1
	ColParIdentity         ColParStatus = 1 << 2
	ColParRowGUIDCol       ColParStatus = 1 << 3
	ColParComputed         ColParStatus = 1 << 4
	ColParFilestream       ColParStatus = 1 << 5
	ColParXMLDocument      ColParStatus = 1 << 11
	ColParReplicated       ColParStatus = 1 << 17
	ColParNonSQLSubscribed ColParStatus = 1 << 18
	ColParMergePublished   ColParStatus = 1 << 19
	ColParDtsReplicated    ColParStatus = 1 << 21
	ColParSparse           ColParStatus = 1 << 24
	ColParColumnSet        ColParStatus = 1 << 25
)

func (s ColParStatus) Has(flag ColParStatus) bool { return s&flag != 0 }
