// catalog.go - the strict four-step bootstrap and read-only catalog queries
package catalog

import (
	"github.com/sirupsen/logrus"
	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
)

// Catalog is the seven typed row-vectors recovered from the system tables.
// RowSetColumns is always empty: see the Open Question decision in
// DESIGN.md.
type Catalog struct {
	Boot          *BootPage
	AllocUnits    []*SysAllocUnit
	RowSets       []*SysRowSet
	SchObjs       []*SysSchObj
	ColPars       []*SysColPar
	ScalarTypes   []*SysScalarType
	RowSetColumns []*SysRsCol
	SingleObjRefs []*SysSingleObjRef
}

func logOrDefault(l *logrus.Logger) *logrus.Logger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}

// Bootstrap walks the fixed boot anchor -> sys.allocunits -> sys.rowsets ->
// {sys.schobjs, sys.colpars, sys.scalartypes, sys.singleobjrefs}, a strict
// non-recursive four-step sequence. Any missing anchor is fatal: the file
// is not a usable database.
func Bootstrap(provider record.Provider, logger *logrus.Logger) (*Catalog, error) {
	logger = logOrDefault(logger)

	bootRec, ok := provider.GetRecord(page.RecordPointer{Page: BootPointer, Slot: 0})
	if !ok {
		return nil, ErrAnchorMissing
	}
	boot, err := ParseBootPage(bootRec)
	if err != nil {
		return nil, err
	}

	allocUnits := loadAllocUnits(provider, boot.FirstSysIndices, logger)

	rowSetAU := findAllocUnit(allocUnits, func(au *SysAllocUnit) bool {
		return au.AUID == SysRowSetAUID && au.Type == InRowData
	})
	if rowSetAU == nil || rowSetAU.PgFirst == nil {
		return nil, ErrAnchorMissing
	}
	rowSets := loadRowSets(provider, *rowSetAU.PgFirst, logger)

	schObjs, err := loadSystemTable(provider, allocUnits, rowSets, SysSchObjsIDMajor, logger,
		func(rec *record.Record) (*SysSchObj, error) { return ParseSysSchObj(rec) })
	if err != nil {
		return nil, err
	}
	colPars, err := loadSystemTable(provider, allocUnits, rowSets, SysColParsIDMajor, logger,
		func(rec *record.Record) (*SysColPar, error) { return ParseSysColPar(rec) })
	if err != nil {
		return nil, err
	}
	scalarTypes, err := loadSystemTable(provider, allocUnits, rowSets, SysScalarTypesIDMajor, logger,
		func(rec *record.Record) (*SysScalarType, error) { return ParseSysScalarType(rec) })
	if err != nil {
		return nil, err
	}
	singleObjRefs, err := loadSystemTable(provider, allocUnits, rowSets, SysSingleObjRefsIDMajor, logger,
		func(rec *record.Record) (*SysSingleObjRef, error) { return ParseSysSingleObjRef(rec) })
	if err != nil {
		return nil, err
	}

	return &Catalog{
		Boot:          boot,
		AllocUnits:    allocUnits,
		RowSets:       rowSets,
		SchObjs:       schObjs,
		ColPars:       colPars,
		ScalarTypes:   scalarTypes,
		RowSetColumns: nil,
		SingleObjRefs: singleObjRefs,
	}, nil
}

func loadAllocUnits(provider record.Provider, start page.Pointer, logger *logrus.Logger) []*SysAllocUnit {
	var out []*SysAllocUnit
	it := record.NewLinkedIterator(provider, start, logger)
	for {
		rec, ok := it.Next()
		if !ok {
			break
		}
		au, err := ParseSysAllocUnit(rec)
		if err != nil {
			logger.WithError(err).Warn("catalog: dropping unreadable SysAllocUnit row")
			continue
		}
		out = append(out, au)
	}
	return out
}

func loadRowSets(provider record.Provider, start page.Pointer, logger *logrus.Logger) []*SysRowSet {
	var out []*SysRowSet
	it := record.NewLinkedIterator(provider, start, logger)
	for {
		rec, ok := it.Next()
		if !ok {
			break
		}
		rs, err := ParseSysRowSet(rec)
		if err != nil {
			logger.WithError(err).Warn("catalog: dropping unreadable SysRowSet row")
			continue
		}
		out = append(out, rs)
	}
	return out
}

// loadSystemTable implements the repeated "find rowset(id_major, id_minor=1)
// -> find owning alloc-unit -> load all records from its chain" step shared
// by every system table past sys.rowsets itself.
func loadSystemTable[T any](
	provider record.Provider,
	allocUnits []*SysAllocUnit,
	rowSets []*SysRowSet,
	idMajor int32,
	logger *logrus.Logger,
	parse func(*record.Record) (*T, error),
) ([]*T, error) {
	rs := findRowSet(rowSets, func(r *SysRowSet) bool {
		return r.IDMajor == idMajor && r.IDMinor == 1
	})
	if rs == nil {
		return nil, ErrAnchorMissing
	}
	au := findAllocUnit(allocUnits, func(a *SysAllocUnit) bool {
		return a.OwnerID == rs.RowSetID && a.Type == InRowData
	})
	if au == nil || au.PgFirst == nil {
		return nil, ErrAnchorMissing
	}

	var out []*T
	it := record.NewLinkedIterator(provider, *au.PgFirst, logger)
	for {
		rec, ok := it.Next()
		if !ok {
			break
		}
		row, err := parse(rec)
		if err != nil {
			logger.WithError(err).Warn("catalog: dropping unreadable system-table row")
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func findAllocUnit(xs []*SysAllocUnit, pred func(*SysAllocUnit) bool) *SysAllocUnit {
	for _, x := range xs {
		if pred(x) {
			return x
		}
	}
	return nil
}

func findRowSet(xs []*SysRowSet, pred func(*SysRowSet) bool) *SysRowSet {
	for _, x := range xs {
		if pred(x) {
			return x
		}
	}
	return nil
}

// Tables returns every schema-object whose type is UserTable or SystemTable.
func (c *Catalog) Tables() []*SysSchObj {
	var out []*SysSchObj
	for _, o := range c.SchObjs {
		if o.Type == UserTable || o.Type == SystemTable {
			out = append(out, o)
		}
	}
	return out
}

// ColumnsForTable returns the column-parents belonging to t, already sorted
// ascending by col_id.
func (c *Catalog) ColumnsForTable(t *SysSchObj) []*SysColPar {
	var out []*SysColPar
	for _, cp := range c.ColPars {
		if cp.ID == t.ID {
			out = append(out, cp)
		}
	}
	sortColParsByColID(out)
	return out
}

func sortColParsByColID(xs []*SysColPar) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1].ColID > xs[j].ColID; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// TypeForColumn returns the first scalar-type matching the column's xtype,
// restricted to system base types (id <= 255).
func (c *Catalog) TypeForColumn(cp *SysColPar) *SysScalarType {
	for _, st := range c.ScalarTypes {
		if st.XType == cp.XType && st.ID <= 255 {
			return st
		}
	}
	return nil
}

// PartitionsForTable returns the row-sets that partition table t.
func (c *Catalog) PartitionsForTable(t *SysSchObj) []*SysRowSet {
	var out []*SysRowSet
	for _, rs := range c.RowSets {
		if rs.IDMajor == t.ID && rs.IDMinor <= 1 {
			out = append(out, rs)
		}
	}
	return out
}

// AllocationUnitForPartition returns the first in-row-data alloc-unit owned
// by partition p.
func (c *Catalog) AllocationUnitForPartition(p *SysRowSet) *SysAllocUnit {
	return findAllocUnit(c.AllocUnits, func(au *SysAllocUnit) bool {
		return au.OwnerID == p.RowSetID && au.Type == InRowData
	})
}
