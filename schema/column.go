// column.go - a catalog-derived column definition
package schema

import "github.com/wilhasse/go-mdf/column"

// Column is one entry of a Schema: a catalog column-id, name, decoded SQL
// type, nullability and whether it is computed (never occupies a row slot).
type Column struct {
	ColID    int32
	Name     string
	Type     column.SqlType
	Nullable bool
	Computed bool
}
