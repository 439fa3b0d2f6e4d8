// Package textproc provides the pure byte and string transforms used as
// preprocessing hooks before structural parsing: locale-decimal repair,
// fixed-width-to-delimited conversion, line skipping, and field-name
// normalisation. Every transform is pure; none touches the filesystem
// or network.
package textproc

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/datakit-cli/internal/core/domain"
)

// DashesToCamelCase rewrites "-x" sequences to uppercase "X" and leaves
// everything else untouched: "foo-bar-baz" becomes "fooBarBaz". Used to
// normalise dashed column names before matching them against record
// field names. A trailing dash has no following character and is kept.
func DashesToCamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '-' && i+1 < len(runes) {
			i++
			b.WriteRune(unicodeUpper(runes[i]))
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

func unicodeUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

// FixAmericanDecimals replaces every ",." with ",0." so that
// locale-formatted decimals lacking a leading zero survive numeric
// parsing: "1,.5" becomes "1,0.5".
func FixAmericanDecimals(b []byte) []byte {
	return bytes.ReplaceAll(b, []byte(",."), []byte(",0."))
}

// FixedWidthToCSV collapses each run of spaces into a single comma,
// line by line, converting fixed-width-column text into delimited text.
// Newlines terminate a run, so column state never leaks across lines.
func FixedWidthToCSV(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] == ' ' {
			out = append(out, ',')
			for i+1 < len(b) && b[i+1] == ' ' {
				i++
			}
			continue
		}
		out = append(out, b[i])
	}
	return out
}

// DropLines removes the first n newline-terminated lines from b.
// If b holds fewer than n newline-terminated lines the call fails with
// domain.ErrInvalidInput rather than returning a partial result.
func DropLines(n int, b []byte) ([]byte, error) {
	rest := b
	for i := 0; i < n; i++ {
		idx := bytes.IndexByte(rest, '\n')
		if idx < 0 {
			return nil, fmt.Errorf("%w: drop %d lines: input has only %d", domain.ErrInvalidInput, n, i)
		}
		rest = rest[idx+1:]
	}
	return rest, nil
}

// Scalar parses s into T via the type's canonical textual form.
// Supported targets are strings, booleans, and the integer, unsigned,
// and float kinds. Failures wrap domain.ErrFieldDecode.
func Scalar[T any](s string) (T, error) {
	var out T
	if err := SetScalar(reflect.ValueOf(&out).Elem(), s); err != nil {
		return out, err
	}
	return out, nil
}

// ScalarAfterDashes normalises dashed text with DashesToCamelCase and
// then parses it as a scalar.
func ScalarAfterDashes[T any](s string) (T, error) {
	return Scalar[T](DashesToCamelCase(s))
}

// SetScalar parses s into the addressable value dst. It backs both
// Scalar and the delimited record decoder.
func SetScalar(dst reflect.Value, s string) error {
	s = strings.TrimSpace(s)

	switch dst.Kind() {
	case reflect.String:
		dst.SetString(s)
		return nil
	case reflect.Bool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return decodeErr(s, dst.Type())
		}
		dst.SetBool(v)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(s, 10, dst.Type().Bits())
		if err != nil {
			return decodeErr(s, dst.Type())
		}
		dst.SetInt(v)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(s, 10, dst.Type().Bits())
		if err != nil {
			return decodeErr(s, dst.Type())
		}
		dst.SetUint(v)
		return nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(s, dst.Type().Bits())
		if err != nil {
			return decodeErr(s, dst.Type())
		}
		dst.SetFloat(v)
		return nil
	case reflect.Pointer:
		if s == "" {
			dst.SetZero()
			return nil
		}
		elem := reflect.New(dst.Type().Elem())
		if err := SetScalar(elem.Elem(), s); err != nil {
			return err
		}
		dst.Set(elem)
		return nil
	default:
		return fmt.Errorf("%w: cannot decode into %s", domain.ErrUnsupportedType, dst.Type())
	}
}

func decodeErr(s string, t reflect.Type) error {
	return fmt.Errorf("%w: %q as %s", domain.ErrFieldDecode, s, t)
}

// FractionalYearToTime converts a fractional calendar year such as
// 1998.5 to the corresponding UTC instant, scaling the fraction by the
// actual length of that year (leap years included).
func FractionalYearToTime(y float64) time.Time {
	year := int(math.Floor(y))
	frac := y - math.Floor(y)

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start.Add(time.Duration(frac * float64(end.Sub(start))))
}
