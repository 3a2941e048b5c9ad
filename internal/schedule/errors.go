package schedule

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rag3karn/HOF-Scheduler/internal/table"
)

// LoadError means the input could not be read as a table.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return "Error loading file: " + e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// SchemaError lists required columns absent from the header row.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "Missing required columns: " + strings.Join(e.Missing, ", ")
}

// RowErrorKind says which row constraint failed.
type RowErrorKind int

const (
	MissingValue RowErrorKind = iota + 1
	NotPositive
	NotEven
	NegativePrice
	NotDateTime
	EndNotAfterStart
	TooLarge
)

// MaxPlayerCapacity bounds playerCapacity so it always fits an int.
const MaxPlayerCapacity = math.MaxInt32

func (k RowErrorKind) String() string {
	switch k {
	case MissingValue:
		return "missing_value"
	case NotPositive:
		return "not_positive"
	case NotEven:
		return "not_even"
	case NegativePrice:
		return "negative_price"
	case NotDateTime:
		return "not_datetime"
	case EndNotAfterStart:
		return "end_not_after_start"
	case TooLarge:
		return "too_large"
	}
	return "unknown"
}

// RowError is a single violation in a data row. Row is the spreadsheet row
// number (first data row is 2).
type RowError struct {
	Row    int
	Column string
	Kind   RowErrorKind
	Value  interface{}
}

func (e *RowError) Error() string {
	switch e.Kind {
	case MissingValue:
		return fmt.Sprintf("Row %d: Missing value in column '%s'", e.Row, e.Column)
	case NotPositive:
		return fmt.Sprintf("Row %d: '%s' must be a positive number (found: %s)", e.Row, e.Column, table.String(e.Value))
	case NotEven:
		return fmt.Sprintf("Row %d: '%s' must be an even number (found: %s)", e.Row, e.Column, table.String(e.Value))
	case NegativePrice:
		return fmt.Sprintf("Row %d: '%s' must be a non-negative number (found: %s)", e.Row, e.Column, table.String(e.Value))
	case NotDateTime:
		return fmt.Sprintf("Row %d: '%s' must be a valid date/time (found: %s)", e.Row, e.Column, table.String(e.Value))
	case EndNotAfterStart:
		return fmt.Sprintf("Row %d: 'endTime' must be after 'startTime'", e.Row)
	case TooLarge:
		return fmt.Sprintf("Row %d: '%s' must be at most %d (found: %s)", e.Row, e.Column, MaxPlayerCapacity, table.String(e.Value))
	}
	return fmt.Sprintf("Row %d: invalid value in column '%s'", e.Row, e.Column)
}

// UnexpectedError wraps anything the pipeline did not anticipate, including
// recovered panics.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return "Unexpected error: " + e.Err.Error()
}

func (e *UnexpectedError) Unwrap() error { return e.Err }
