package delimited

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/custodia-labs/datakit-cli/internal/core/domain"
	"github.com/custodia-labs/datakit-cli/internal/textproc"
)

type targetKind int

const (
	targetStruct targetKind = iota
	targetSlice
	targetMap
)

// decoder maps delimited records onto values of T.
type decoder[T any] struct {
	kind   targetKind
	fields []reflect.StructField

	// Set by bindHeader for headered parses.
	header   []string
	byColumn []int // column index -> field index, -1 for unmatched
	bound    bool
}

func newDecoder[T any]() (*decoder[T], error) {
	t := reflect.TypeFor[T]()

	switch {
	case t.Kind() == reflect.Struct:
		d := &decoder[T]{kind: targetStruct}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || f.Tag.Get("csv") == "-" {
				continue
			}
			d.fields = append(d.fields, f)
		}
		if len(d.fields) == 0 {
			return nil, fmt.Errorf("%w: %s has no decodable fields", domain.ErrUnsupportedType, t)
		}
		return d, nil
	case t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.String:
		return &decoder[T]{kind: targetSlice}, nil
	case t.Kind() == reflect.Map && t.Key().Kind() == reflect.String && t.Elem().Kind() == reflect.String:
		return &decoder[T]{kind: targetMap}, nil
	default:
		return nil, fmt.Errorf("%w: cannot decode delimited records into %s", domain.ErrUnsupportedType, t)
	}
}

// bindHeader resolves column names to record fields. Struct fields
// match their csv tag first, then the field name compared against the
// camel-cased column name. Unmatched columns are skipped; unmatched
// fields stay zero.
func (d *decoder[T]) bindHeader(header []string) error {
	d.header = make([]string, len(header))
	d.byColumn = make([]int, len(header))

	for col, name := range header {
		name = strings.TrimSpace(name)
		d.header[col] = name
		d.byColumn[col] = d.fieldFor(name)
	}
	d.bound = true
	return nil
}

func (d *decoder[T]) fieldFor(column string) int {
	if d.kind != targetStruct {
		return -1
	}
	for i, f := range d.fields {
		if tag, ok := f.Tag.Lookup("csv"); ok && tag == column {
			return i
		}
	}
	normalised := textproc.DashesToCamelCase(column)
	for i, f := range d.fields {
		if _, ok := f.Tag.Lookup("csv"); ok {
			continue
		}
		if strings.EqualFold(f.Name, normalised) {
			return i
		}
	}
	return -1
}

func (d *decoder[T]) decode(record []string, out *T) error {
	v := reflect.ValueOf(out).Elem()

	switch d.kind {
	case targetSlice:
		v.Set(reflect.ValueOf(append([]string(nil), record...)).Convert(v.Type()))
		return nil

	case targetMap:
		if !d.bound {
			return fmt.Errorf("%w: map records need a headered parse", domain.ErrUnsupportedType)
		}
		m := reflect.MakeMapWithSize(v.Type(), len(record))
		for col, cell := range record {
			if col >= len(d.header) {
				break
			}
			m.SetMapIndex(reflect.ValueOf(d.header[col]), reflect.ValueOf(cell))
		}
		v.Set(m)
		return nil

	default:
		if d.bound {
			return d.decodeByName(record, v)
		}
		return d.decodePositional(record, v)
	}
}

func (d *decoder[T]) decodePositional(record []string, v reflect.Value) error {
	if len(record) != len(d.fields) {
		return fmt.Errorf("%w: record has %d fields, %s wants %d",
			domain.ErrParse, len(record), v.Type(), len(d.fields))
	}
	for i, f := range d.fields {
		if err := textproc.SetScalar(v.FieldByIndex(f.Index), record[i]); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
	}
	return nil
}

func (d *decoder[T]) decodeByName(record []string, v reflect.Value) error {
	for col, cell := range record {
		if col >= len(d.byColumn) || d.byColumn[col] < 0 {
			continue
		}
		f := d.fields[d.byColumn[col]]
		if err := textproc.SetScalar(v.FieldByIndex(f.Index), cell); err != nil {
			return fmt.Errorf("column %q: %w", d.header[col], err)
		}
	}
	return nil
}
