// Package delimited parses delimited text (comma-separated by default)
// into typed records. It supports headerless positional decoding,
// headered by-name decoding, caller-supplied separators, and a
// byte-level preprocessing hook applied before parsing.
//
// Decoding is all-or-nothing: the first record that fails to decode
// aborts the parse with no partial results.
package delimited

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/oleg578/swiftcsv"

	"github.com/custodia-labs/datakit-cli/internal/core/domain"
)

// Transform is a byte-level preprocessing hook applied to the raw
// payload before parsing. Transforms must be pure.
type Transform func([]byte) ([]byte, error)

// Options configures a single parse.
type Options struct {
	// Headered treats the first record as column names and decodes
	// subsequent records by name instead of position.
	Headered bool

	// Separator is the field delimiter. Zero means comma.
	Separator byte

	// Preprocess, when set, transforms the payload before parsing.
	// A transform failure aborts the parse as a parse error.
	Preprocess Transform
}

// Records parses data into a slice of T according to opts.
// T may be a struct (positional or by-name), []string (positional), or
// map[string]string (by-name, headered only). Source order is preserved.
func Records[T any](data []byte, opts Options) ([]T, error) {
	if opts.Preprocess != nil {
		var err error
		data, err = runTransform(opts.Preprocess, data)
		if err != nil {
			return nil, err
		}
	}

	records, err := readAll(data, opts.Separator)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	dec, err := newDecoder[T]()
	if err != nil {
		return nil, err
	}

	if opts.Headered {
		if err := dec.bindHeader(records[0]); err != nil {
			return nil, err
		}
		records = records[1:]
	}

	out := make([]T, 0, len(records))
	for i, record := range records {
		var rec T
		if err := dec.decode(record, &rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// runTransform applies fn, converting both returned errors and panics
// into parse errors so a misbehaving hook cannot take down the caller.
func runTransform(fn Transform, data []byte) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: preprocess: %v", domain.ErrParse, r)
		}
	}()

	out, err = fn(data)
	if err != nil {
		// A failing hook is a parse failure; the original error stays
		// in the chain for errors.Is.
		return nil, fmt.Errorf("%w: preprocess: %w", domain.ErrParse, err)
	}
	return out, nil
}

// readAll drains the swiftcsv reader, wrapping its diagnostics in
// domain.ErrParse. A lone empty trailing record (a blank final line) is
// tolerated and skipped; any other width mismatch is fatal.
func readAll(data []byte, sep byte) ([][]string, error) {
	reader := swiftcsv.NewReader(bytes.NewReader(data))
	if sep != 0 {
		reader.Comma = sep
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			if errors.Is(err, swiftcsv.ErrorFieldCount) && isBlankRecord(record) {
				continue
			}
			return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
		}
		if isBlankRecord(record) {
			continue
		}
		records = append(records, record)
	}
}

func isBlankRecord(record []string) bool {
	return len(record) == 0 || (len(record) == 1 && record[0] == "")
}
