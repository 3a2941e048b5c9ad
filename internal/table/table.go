package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Table is one worksheet as read from a spreadsheet: a header row followed by
// data rows of typed cells. A cell is nil, string, float64, bool or time.Time.
type Table struct {
	Columns []string
	Rows    [][]interface{}
}

// New builds a table from header names and data rows.
func New(columns []string, rows [][]interface{}) *Table {
	return &Table{Columns: columns, Rows: rows}
}

// Index returns the position of the named column, or -1.
// The first occurrence wins when a header is repeated.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

func (t *Table) Has(name string) bool {
	return t.Index(name) >= 0
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Get returns the cell of data row i under the named column.
// Short rows and unknown columns read as nil.
func (t *Table) Get(i int, name string) interface{} {
	idx := t.Index(name)
	if idx < 0 || i < 0 || i >= len(t.Rows) {
		return nil
	}
	return cell(t.Rows[i], idx)
}

func cell(row []interface{}, idx int) interface{} {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	return row[idx]
}

// IsBlank reports whether a cell counts as missing: nil, NaN, or text made of
// whitespace only.
func IsBlank(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case string:
		return strings.TrimSpace(x) == ""
	case time.Time:
		return x.IsZero()
	}
	return false
}

// Number returns the numeric value of a cell. Text is never coerced.
func Number(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, !math.IsNaN(x)
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

// Time returns the date-time value of a cell.
func Time(v interface{}) (time.Time, bool) {
	x, ok := v.(time.Time)
	return x, ok
}

// String renders a cell the way it is quoted back in error messages.
func String(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "nan"
	case string:
		return x
	case float64:
		if math.IsNaN(x) {
			return "nan"
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	}
	return fmt.Sprint(v)
}
