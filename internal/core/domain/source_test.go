package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLSource(t *testing.T) {
	src := URLSource("https://example.org/data.csv")
	assert.Equal(t, SourceURL, src.Kind)
	assert.Equal(t, "https://example.org/data.csv", src.URL)
}

func TestSource_Identifier(t *testing.T) {
	src := URLSource("https://example.org/data.csv")
	assert.Equal(t, "https://example.org/data.csv", src.Identifier())
}

func TestTable_Len(t *testing.T) {
	var nilTable *Table
	assert.Zero(t, nilTable.Len())

	table := &Table{Columns: []string{"a"}, Rows: [][]string{{"1"}, {"2"}}}
	assert.Equal(t, 2, table.Len())
}
