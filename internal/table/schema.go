package table

import (
	"fmt"
	"strings"
)

// Schema lists the columns a table must carry.
type Schema struct {
	Required []string
}

func NewSchema(columns ...string) Schema {
	return Schema{Required: columns}
}

// Validate checks every required column at once and reports all that are
// absent in a single ErrMissingColumn.
func (s Schema) Validate(t *Table) error {
	var missing []string
	for _, name := range s.Required {
		if !t.Has(name) {
			missing = append(missing, name)
		}
	}
	switch len(missing) {
	case 0:
		return nil
	case 1:
		return t.missing(missing[0])
	default:
		return &Error{
			Source:  t.source,
			Detail:  fmt.Sprintf("columns %s", strings.Join(quoteAll(missing), ", ")),
			Wrapped: ErrMissingColumn,
		}
	}
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%q", n)
	}
	return out
}
