package catalog

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/custodia-labs/datakit-cli/internal/core/domain"
	"github.com/custodia-labs/datakit-cli/internal/dataset"
)

// Tabulate adapts a typed dataset to a LoadFunc producing a dynamic
// table. T may be a struct (columns from csv/json tags or field
// names), a string-keyed map (columns from the sorted key union), or
// []string (generated column names).
func Tabulate[T any](ds dataset.Dataset[T]) LoadFunc {
	return func(ctx context.Context, cacheDir string) (*domain.Table, error) {
		records, err := ds.Load(ctx, cacheDir)
		if err != nil {
			return nil, err
		}
		return tabulate(records)
	}
}

func tabulate[T any](records []T) (*domain.Table, error) {
	t := reflect.TypeFor[T]()

	switch {
	case t.Kind() == reflect.Struct:
		return tabulateStructs(records, t), nil
	case t.Kind() == reflect.Map && t.Key().Kind() == reflect.String:
		return tabulateMaps(records), nil
	case t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.String:
		return tabulateSlices(records), nil
	default:
		return nil, fmt.Errorf("%w: cannot tabulate records of %s", domain.ErrUnsupportedType, t)
	}
}

func tabulateStructs[T any](records []T, t reflect.Type) *domain.Table {
	var columns []string
	var indexes [][]int
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		columns = append(columns, columnName(f))
		indexes = append(indexes, f.Index)
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		v := reflect.ValueOf(rec)
		row := make([]string, 0, len(indexes))
		for _, idx := range indexes {
			row = append(row, renderCell(v.FieldByIndex(idx)))
		}
		rows = append(rows, row)
	}
	return &domain.Table{Columns: columns, Rows: rows}
}

func columnName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("csv"); ok && tag != "" && tag != "-" {
		return tag
	}
	if tag, ok := f.Tag.Lookup("json"); ok && tag != "" && tag != "-" {
		return tag
	}
	return f.Name
}

func tabulateMaps[T any](records []T) *domain.Table {
	seen := make(map[string]bool)
	var columns []string
	for _, rec := range records {
		v := reflect.ValueOf(rec)
		for _, key := range v.MapKeys() {
			if !seen[key.String()] {
				seen[key.String()] = true
				columns = append(columns, key.String())
			}
		}
	}
	sort.Strings(columns)

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		v := reflect.ValueOf(rec)
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			cell := v.MapIndex(reflect.ValueOf(col))
			if !cell.IsValid() {
				row = append(row, "")
				continue
			}
			row = append(row, renderCell(cell))
		}
		rows = append(rows, row)
	}
	return &domain.Table{Columns: columns, Rows: rows}
}

func tabulateSlices[T any](records []T) *domain.Table {
	width := 0
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		v := reflect.ValueOf(rec)
		row := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			row = append(row, v.Index(i).String())
		}
		if len(row) > width {
			width = len(row)
		}
		rows = append(rows, row)
	}

	columns := make([]string, width)
	for i := range columns {
		columns[i] = fmt.Sprintf("col%d", i+1)
	}
	return &domain.Table{Columns: columns, Rows: rows}
}

// renderCell formats a single value for display. Nil pointers and
// interfaces render as the empty string.
func renderCell(v reflect.Value) string {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	return fmt.Sprintf("%v", v.Interface())
}
