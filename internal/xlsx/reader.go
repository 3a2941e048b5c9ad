package xlsx

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Rag3karn/HOF-Scheduler/internal/table"
)

// Open reads the first worksheet of the workbook at path.
func Open(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("xlsx: open %s: %w", path, err)
	}
	defer f.Close()
	return readFirstSheet(f)
}

// Read reads the first worksheet of a workbook held in r.
func Read(r io.Reader) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsx: open: %w", err)
	}
	defer f.Close()
	return readFirstSheet(f)
}

func readFirstSheet(f *excelize.File) (*table.Table, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx: workbook has no sheets")
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("xlsx: read rows of %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return table.New(nil, nil), nil
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	r := &sheetReader{f: f, sheet: sheet, date1904: date1904, dateStyles: map[int]bool{}}

	header := make([]string, len(rows[0]))
	copy(header, rows[0])

	data := make([][]interface{}, 0, len(rows)-1)
	// rows[i] is spreadsheet row i+1
	for i := 1; i < len(rows); i++ {
		out := make([]interface{}, len(rows[i]))
		for col, raw := range rows[i] {
			out[col] = r.value(col+1, i+1, raw)
		}
		data = append(data, out)
	}

	for len(data) > 0 && blankRow(data[len(data)-1]) {
		data = data[:len(data)-1]
	}

	return table.New(header, data), nil
}

type sheetReader struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

// value turns one raw cell string into a typed cell.
func (r *sheetReader) value(col, row int, raw string) interface{} {
	if raw == "" {
		return nil
	}
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return raw
	}
	typ, _ := r.f.GetCellType(r.sheet, axis)

	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeError:
		return raw
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return t
		}
		return raw
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	if r.isDateCell(axis) {
		t, err := serialToTime(n, r.date1904)
		if err == nil {
			return t
		}
		if errors.Is(err, ErrTimeOnly) {
			return TimeOfDay(n)
		}
	}
	return n
}

func (r *sheetReader) isDateCell(axis string) bool {
	styleID, err := r.f.GetCellStyle(r.sheet, axis)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := r.dateStyles[styleID]; ok {
		return isDate
	}
	isDate := false
	if style, err := r.f.GetStyle(styleID); err == nil && style != nil {
		isDate = IsBuiltInDateFormat(style.NumFmt) ||
			(style.CustomNumFmt != nil && IsDateFormat(*style.CustomNumFmt))
	}
	r.dateStyles[styleID] = isDate
	return isDate
}

// ErrTimeOnly is returned for serials under one day in the 1900 date system.
// Such a cell holds a time of day without a date.
var ErrTimeOnly = errors.New("xlsx: time of day without a date")

// SerialToTime converts a spreadsheet serial day number (1900 date system,
// the one Google Sheets also uses) into a time.
func SerialToTime(serial float64) (time.Time, error) {
	return serialToTime(serial, false)
}

func serialToTime(serial float64, date1904 bool) (time.Time, error) {
	if !date1904 && serial >= 0 && serial < 1 {
		return time.Time{}, ErrTimeOnly
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return time.Time{}, err
	}
	// serials carry float noise; 19:00 can come back as 18:59:59.999
	return t.Round(time.Second), nil
}

// TimeOfDay renders the fraction of a day held in serial as hh:mm:ss.
func TimeOfDay(serial float64) string {
	secs := int(math.Round((serial - math.Floor(serial)) * 86400))
	if secs >= 86400 {
		secs = 86399
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseISODate(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func blankRow(row []interface{}) bool {
	for _, v := range row {
		if !table.IsBlank(v) {
			return false
		}
	}
	return true
}
