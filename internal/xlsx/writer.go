package xlsx

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Rag3karn/HOF-Scheduler/internal/models"
	"github.com/Rag3karn/HOF-Scheduler/internal/table"
)

// TemplateFileName is the name the schedule template is sent under.
const TemplateFileName = "hof_schedule_template.xlsx"

const dateTimeFormat = "yyyy-mm-dd hh:mm"

// Write renders a table as a single-sheet workbook. time.Time cells get a
// date-time number format so they read back as dates.
func Write(t *table.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	dateFmt := dateTimeFormat
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return nil, fmt.Errorf("xlsx: date style: %w", err)
	}

	for col, name := range t.Columns {
		if err := setCell(f, sheet, col+1, 1, name, dateStyle); err != nil {
			return nil, err
		}
	}
	for i, row := range t.Rows {
		for col, v := range row {
			if v == nil {
				continue
			}
			if err := setCell(f, sheet, col+1, i+2, v, dateStyle); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: write: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, sheet string, col, row int, v interface{}, dateStyle int) error {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, axis, v); err != nil {
		return fmt.Errorf("xlsx: set %s: %w", axis, err)
	}
	if _, ok := v.(time.Time); ok {
		if err := f.SetCellStyle(sheet, axis, axis, dateStyle); err != nil {
			return fmt.Errorf("xlsx: style %s: %w", axis, err)
		}
	}
	return nil
}

// Template returns a workbook with the required header and one example row.
func Template() ([]byte, error) {
	start := time.Date(2024, 6, 3, 19, 0, 0, 0, time.UTC)
	return Write(table.New(
		append([]string(nil), models.RequiredColumns...),
		[][]interface{}{{"Pune", "Turf A", "Football", start, start.Add(time.Hour), 10, 1000, 800}},
	))
}
