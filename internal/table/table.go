package table

import (
	"math"
	"strconv"
	"strings"
)

// Record is one row addressed by column name.
type Record map[string]string

// Table is an ordered, read-only set of rows sharing one header.
type Table struct {
	source  string
	columns []string
	index   map[string]int
	rows    [][]string
}

func newTable(source string, header []string) (*Table, error) {
	t := &Table{
		source:  source,
		columns: make([]string, len(header)),
		index:   make(map[string]int, len(header)),
	}
	for i, name := range header {
		if _, dup := t.index[name]; dup {
			return nil, &Error{Source: source, Line: 1, Column: name, Detail: "duplicate header", Wrapped: ErrMalformedInput}
		}
		t.columns[i] = name
		t.index[name] = i
	}
	return t, nil
}

// Source returns the name the table was loaded from.
func (t *Table) Source() string { return t.source }

// Columns returns the header in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Row returns data row i as a name-keyed record.
func (t *Table) Row(i int) Record {
	rec := make(Record, len(t.columns))
	for j, name := range t.columns {
		rec[name] = t.rows[i][j]
	}
	return rec
}

// Column returns the raw values of a column in row order.
func (t *Table) Column(name string) ([]string, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, t.missing(name)
	}
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[j]
	}
	return out, nil
}

// Floats parses a column as finite float64 values. Empty, unparsable, NaN
// and infinite values all fail with ErrNonNumericData.
func (t *Table) Floats(name string) ([]float64, error) {
	raw, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &Error{
				Source:  t.source,
				Row:     i + 1,
				Column:  name,
				Detail:  strconv.Quote(s),
				Wrapped: ErrNonNumericData,
			}
		}
		out[i] = v
	}
	return out, nil
}

// IsNumeric reports whether every value of the column parses as a finite number.
func (t *Table) IsNumeric(name string) bool {
	_, err := t.Floats(name)
	return err == nil
}

func (t *Table) missing(name string) error {
	return &Error{Source: t.source, Column: name, Wrapped: ErrMissingColumn}
}
