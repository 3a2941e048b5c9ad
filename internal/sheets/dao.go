package sheets

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Rag3karn/HOF-Scheduler/internal/models"
	"github.com/Rag3karn/HOF-Scheduler/internal/table"
	"github.com/Rag3karn/HOF-Scheduler/internal/xlsx"
)

// DefaultRange is read when no range is configured.
const DefaultRange = "Schedule!A:Z"

// readAll fetches unformatted cell values: numbers arrive as float64 and
// date-times as serial day numbers.
func (c *Client) readAll(ctx context.Context, a1 string) ([][]interface{}, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, a1).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("SERIAL_NUMBER").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// LoadTable reads a schedule range into a raw table. The sheet carries no
// type for date cells, so startTime and endTime serials are turned into
// times here; everything else keeps the API's type.
func (c *Client) LoadTable(ctx context.Context, a1 string) (*table.Table, error) {
	if strings.TrimSpace(a1) == "" {
		a1 = DefaultRange
	}
	values, err := c.readAll(ctx, a1)
	if err != nil {
		return nil, fmt.Errorf("sheets: read %s: %w", a1, err)
	}
	return ToTable(values, models.ColStartTime, models.ColEndTime)
}

// ToTable converts API values (header row first) into a raw table.
// Numeric cells under dateColumns are treated as serial date-times.
func ToTable(values [][]interface{}, dateColumns ...string) (*table.Table, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("sheets: range is empty")
	}

	header := make([]string, len(values[0]))
	for i := range values[0] {
		header[i] = get(values[0], i)
	}

	isDate := map[int]bool{}
	for _, col := range dateColumns {
		for i, h := range header {
			if h == col {
				isDate[i] = true
			}
		}
	}

	// header row at index 0
	rows := make([][]interface{}, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		row := make([]interface{}, len(values[i]))
		for j, v := range values[i] {
			row[j] = cellValue(v, isDate[j])
		}
		rows = append(rows, row)
	}
	return table.New(header, rows), nil
}

func cellValue(v interface{}, date bool) interface{} {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		if x == "" {
			return nil
		}
		return x
	case bool:
		return x
	case float64:
		if date && !math.IsNaN(x) {
			t, err := xlsx.SerialToTime(x)
			if err == nil {
				return t
			}
			if errors.Is(err, xlsx.ErrTimeOnly) {
				return xlsx.TimeOfDay(x)
			}
		}
		return x
	case int:
		return cellValue(float64(x), date)
	case int64:
		return cellValue(float64(x), date)
	}
	return fmt.Sprint(v)
}

// ---------- helpers ----------

func get(row []interface{}, idx int) string {
	if idx < 0 || idx >= len(row) || row[idx] == nil {
		return ""
	}
	return fmt.Sprint(row[idx])
}
