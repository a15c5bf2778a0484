package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

type options struct {
	comma rune
}

// Option configures the reader.
type Option func(*options)

// WithComma sets the field delimiter. The default is ','.
func WithComma(r rune) Option {
	return func(o *options) { o.comma = r }
}

// Load reads the file at path and validates it against schema. A zero
// Schema accepts any header.
func Load(path string, schema Schema, opts ...Option) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Source: path, Wrapped: ErrFileNotFound}
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	return Read(file, path, schema, opts...)
}

// Read parses delimited text from r. source names the input in errors.
func Read(r io.Reader, source string, schema Schema, opts ...Option) (*Table, error) {
	o := options{comma: ','}
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &Error{Source: source, Line: 1, Detail: "missing header", Wrapped: ErrMalformedInput}
	}
	if err != nil {
		return nil, parseError(source, err)
	}

	t, err := newTable(source, header)
	if err != nil {
		return nil, err
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseError(source, err)
		}
		if len(record) != len(header) {
			line, _ := cr.FieldPos(0)
			return nil, &Error{
				Source:  source,
				Line:    line,
				Detail:  fmt.Sprintf("got %d fields, header has %d", len(record), len(header)),
				Wrapped: ErrMalformedInput,
			}
		}
		t.rows = append(t.rows, record)
	}

	if err := schema.Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

func parseError(source string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &Error{Source: source, Line: pe.Line, Detail: pe.Err.Error(), Wrapped: ErrMalformedInput}
	}
	return fmt.Errorf("read %s: %w", source, err)
}
