// schema.go - an ordered column list, sorted ascending by col_id
package schema

import "sort"

// Schema is the authoritative, ascending-by-col_id column order for a table.
type Schema struct {
	Columns []Column
}

// New builds a Schema from an unordered column set, sorting ascending by ColID.
func New(cols []Column) Schema {
	out := make([]Column, len(cols))
	copy(out, cols)
	sort.Slice(out, func(i, j int) bool { return out[i].ColID < out[j].ColID })
	return Schema{Columns: out}
}

func (s Schema) Len() int { return len(s.Columns) }
