package domain

// Row is a single record keyed by column name.
// Produced by headered delimited parsing when no typed record is declared.
type Row map[string]string

// Table is a dynamic view of a loaded dataset, used by surfaces that
// cannot know the record type at compile time (CLI output, user catalogs).
// Rows preserve source order; every row has len(Columns) cells.
type Table struct {
	// Columns are the column names, in declaration order.
	Columns []string

	// Rows are the rendered cell values.
	Rows [][]string
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
