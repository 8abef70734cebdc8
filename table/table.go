// table.go - materializes a named table: schema plus partition entry-page pointers
package table

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/wilhasse/go-mdf/catalog"
	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
	"github.com/wilhasse/go-mdf/schema"
)

// ErrNoPartitions is logged by ScanDBFrom when a table has no partition
// entry page at all; ScanDBFrom then returns ok=false.
var ErrNoPartitions = errors.New("table: no resolvable partitions")

// Table binds a name, schema, and partition entry pages to a Provider.
type Table struct {
	Name       string
	Schema     schema.Schema
	Partitions []page.Pointer

	provider record.Provider
	logger   *logrus.Logger
}

func logOrDefault(l *logrus.Logger) *logrus.Logger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}

// Open binds catalog metadata for schObj into a scannable Table.
func Open(cat *catalog.Catalog, schObj *catalog.SysSchObj, provider record.Provider, logger *logrus.Logger) (*Table, error) {
	logger = logOrDefault(logger)
	sch, err := cat.BuildSchema(schObj)
	if err != nil {
		return nil, err
	}

	var partitions []page.Pointer
	for _, p := range cat.PartitionsForTable(schObj) {
		au := cat.AllocationUnitForPartition(p)
		if au == nil || au.PgFirst == nil {
			continue
		}
		partitions = append(partitions, *au.PgFirst)
	}

	return &Table{
		Name:       schObj.Name,
		Schema:     sch,
		Partitions: partitions,
		provider:   provider,
		logger:     logger,
	}, nil
}

// OpenWithSchema builds a Table directly from an already-resolved Schema and
// partition entry pages, for the degraded-recovery manual-override path
// (schema.ParseOverrideFromSQL) where the catalog cannot be trusted.
func OpenWithSchema(name string, sch schema.Schema, partitions []page.Pointer, provider record.Provider, logger *logrus.Logger) *Table {
	return &Table{Name: name, Schema: sch, Partitions: partitions, provider: provider, logger: logOrDefault(logger)}
}
