// Package table loads delimited text dumps into an immutable record table.
//
// A [Table] keeps the header order and the row order of its source. Values
// are stored as the trimmed text found in the file; numeric access goes
// through [Table.Floats], which reports [ErrNonNumericData] for anything
// that cannot be plotted.
//
// # Example
//
//	schema := table.NewSchema("Element", "data.velocity.x")
//	t, err := table.Load("data.csv", schema)
//	if err != nil {
//		return err
//	}
//	vx, err := t.Floats("data.velocity.x")
//
// # Errors
//
// Every failure wraps one of the package sentinels inside an [*Error] that
// names the offending file, line, row and column, so callers can match with
// errors.Is and report with err.Error().
package table
