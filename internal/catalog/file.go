package catalog

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/datakit-cli/internal/core/domain"
	"github.com/custodia-labs/datakit-cli/internal/dataset"
	"github.com/custodia-labs/datakit-cli/internal/parsers/delimited"
	"github.com/custodia-labs/datakit-cli/internal/textproc"
)

// Catalog file formats.
const (
	formatCSV         = "csv"
	formatCSVHeadered = "csv-headered"
	formatJSON        = "json"
)

// catalogFile is the YAML shape of a user catalog.
type catalogFile struct {
	Datasets []fileEntry `yaml:"datasets"`
}

// fileEntry is one dataset declaration in a user catalog.
type fileEntry struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	URL         string   `yaml:"url"`
	Format      string   `yaml:"format"`
	Separator   string   `yaml:"separator"`
	Preprocess  []string `yaml:"preprocess"`
}

// LoadFile reads a YAML catalog file and builds loadable entries.
// Headerless CSV entries decode into positional rows, headered ones
// into name-keyed rows, and JSON entries into dynamic documents.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: catalog %s: %v", domain.ErrInvalidInput, path, err)
	}

	entries := make([]Entry, 0, len(file.Datasets))
	for _, fe := range file.Datasets {
		entry, err := buildEntry(fe)
		if err != nil {
			return nil, fmt.Errorf("catalog %s, dataset %q: %w", path, fe.Name, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func buildEntry(fe fileEntry) (Entry, error) {
	if fe.Name == "" || fe.URL == "" {
		return Entry{}, fmt.Errorf("%w: name and url are required", domain.ErrInvalidInput)
	}

	src := domain.URLSource(fe.URL)
	opts, err := entryOptions(fe)
	if err != nil {
		return Entry{}, err
	}

	var load LoadFunc
	switch fe.Format {
	case formatCSV, "":
		load = Tabulate(dataset.FromDelimited[[]string](src, opts...))
	case formatCSVHeadered:
		load = Tabulate(dataset.FromDelimitedHeadered[domain.Row](src, opts...))
	case formatJSON:
		load = Tabulate(dataset.FromDocument[map[string]any](src))
	default:
		return Entry{}, fmt.Errorf("%w: format %q", domain.ErrUnsupportedType, fe.Format)
	}

	return Entry{
		Name:        fe.Name,
		Description: fe.Description,
		Source:      src,
		Load:        load,
	}, nil
}

func entryOptions(fe fileEntry) ([]dataset.Option, error) {
	var opts []dataset.Option

	if fe.Separator != "" {
		if len(fe.Separator) != 1 {
			return nil, fmt.Errorf("%w: separator must be one character, got %q", domain.ErrInvalidInput, fe.Separator)
		}
		opts = append(opts, dataset.WithSeparator(fe.Separator[0]))
	}

	if len(fe.Preprocess) > 0 {
		transform, err := buildTransform(fe.Preprocess)
		if err != nil {
			return nil, err
		}
		opts = append(opts, dataset.WithPreprocess(transform))
	}
	return opts, nil
}

// buildTransform composes the named preprocessing steps, applied in
// declaration order. Supported: "fix-decimals", "fixed-width", and
// "drop-lines:N".
func buildTransform(steps []string) (delimited.Transform, error) {
	transforms := make([]delimited.Transform, 0, len(steps))

	for _, step := range steps {
		switch {
		case step == "fix-decimals":
			transforms = append(transforms, func(b []byte) ([]byte, error) {
				return textproc.FixAmericanDecimals(b), nil
			})
		case step == "fixed-width":
			transforms = append(transforms, func(b []byte) ([]byte, error) {
				return textproc.FixedWidthToCSV(b), nil
			})
		case strings.HasPrefix(step, "drop-lines:"):
			n, err := strconv.Atoi(strings.TrimPrefix(step, "drop-lines:"))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: preprocess step %q", domain.ErrInvalidInput, step)
			}
			transforms = append(transforms, func(b []byte) ([]byte, error) {
				return textproc.DropLines(n, b)
			})
		default:
			return nil, fmt.Errorf("%w: preprocess step %q", domain.ErrUnsupportedType, step)
		}
	}

	return func(b []byte) ([]byte, error) {
		var err error
		for _, t := range transforms {
			b, err = t(b)
			if err != nil {
				return nil, err
			}
		}
		return b, nil
	}, nil
}
