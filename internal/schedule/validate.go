// Package schedule validates match-schedule tables and renders the weekly
// announcement.
package schedule

import (
	"math"
	"time"

	"github.com/Rag3karn/HOF-Scheduler/internal/models"
	"github.com/Rag3karn/HOF-Scheduler/internal/table"
)

// headerRows is added to a zero-based data index to get the row number a
// spreadsheet editor shows.
const headerRows = 2

// Result is the outcome of validating one table. Exactly one of Table and
// Errors is populated.
type Result struct {
	Table  models.ScheduleTable
	Errors []error
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Messages renders the errors in order.
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, err := range r.Errors {
		out = append(out, err.Error())
	}
	return out
}

// Validator checks a raw table against the schedule schema. The zero value
// stops at the first violation in the table. With CollectAll it reports the
// first violation of every failing row instead.
type Validator struct {
	CollectAll bool
}

// Validate runs the column check and then the row checks.
func (v Validator) Validate(t *table.Table) Result {
	if missing := missingColumns(t); len(missing) > 0 {
		return Result{Errors: []error{&SchemaError{Missing: missing}}}
	}

	var (
		rows = make(models.ScheduleTable, 0, t.Len())
		errs []error
	)
	for i := 0; i < t.Len(); i++ {
		row, err := validateRow(t, i)
		if err != nil {
			errs = append(errs, err)
			if !v.CollectAll {
				break
			}
			continue
		}
		rows = append(rows, row)
	}

	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{Table: rows}
}

// Validate checks t in the default stop-at-first-error mode.
func Validate(t *table.Table) Result {
	return Validator{}.Validate(t)
}

func missingColumns(t *table.Table) []string {
	var missing []string
	for _, col := range models.RequiredColumns {
		if t == nil || !t.Has(col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// validateRow applies the row checks in their fixed order and returns the
// first violation.
func validateRow(t *table.Table, i int) (models.ScheduleRow, *RowError) {
	rowNum := i + headerRows
	get := func(col string) interface{} { return t.Get(i, col) }

	for _, col := range models.RequiredColumns {
		if table.IsBlank(get(col)) {
			return models.ScheduleRow{}, &RowError{Row: rowNum, Column: col, Kind: MissingValue, Value: get(col)}
		}
	}

	capValue := get(models.ColPlayerCapacity)
	capacity, ok := table.Number(capValue)
	if !ok || capacity <= 0 {
		return models.ScheduleRow{}, &RowError{Row: rowNum, Column: models.ColPlayerCapacity, Kind: NotPositive, Value: capValue}
	}
	if capacity > MaxPlayerCapacity {
		return models.ScheduleRow{}, &RowError{Row: rowNum, Column: models.ColPlayerCapacity, Kind: TooLarge, Value: capValue}
	}
	if math.Mod(capacity, 2) != 0 {
		return models.ScheduleRow{}, &RowError{Row: rowNum, Column: models.ColPlayerCapacity, Kind: NotEven, Value: capValue}
	}

	prices := map[string]float64{}
	for _, col := range []string{models.ColSlotPrice, models.ColOfferPrice} {
		p, ok := table.Number(get(col))
		if !ok || p < 0 {
			return models.ScheduleRow{}, &RowError{Row: rowNum, Column: col, Kind: NegativePrice, Value: get(col)}
		}
		prices[col] = p
	}

	times := map[string]time.Time{}
	for _, col := range []string{models.ColStartTime, models.ColEndTime} {
		ts, ok := table.Time(get(col))
		if !ok {
			return models.ScheduleRow{}, &RowError{Row: rowNum, Column: col, Kind: NotDateTime, Value: get(col)}
		}
		times[col] = ts
	}
	start, end := times[models.ColStartTime], times[models.ColEndTime]
	if !end.After(start) {
		return models.ScheduleRow{}, &RowError{Row: rowNum, Column: models.ColEndTime, Kind: EndNotAfterStart, Value: get(models.ColEndTime)}
	}

	return models.ScheduleRow{
		Row:            rowNum,
		CityName:       text(get(models.ColCityName)),
		VenueName:      text(get(models.ColVenueName)),
		MatchTypeName:  text(get(models.ColMatchTypeName)),
		StartTime:      start,
		EndTime:        end,
		PlayerCapacity: int(capacity),
		SlotPrice:      prices[models.ColSlotPrice],
		OfferPrice:     prices[models.ColOfferPrice],
	}, nil
}

// text renders a name cell. Names are usually text but a venue called "7"
// arrives as a number.
func text(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return table.String(v)
}
