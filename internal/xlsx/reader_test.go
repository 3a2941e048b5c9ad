package xlsx

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Rag3karn/HOF-Scheduler/internal/table"
)

func TestWriteThenRead(t *testing.T) {
	start := time.Date(2024, 6, 3, 19, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 3, 20, 30, 0, 0, time.UTC)
	src := table.New(
		[]string{"cityName", "startTime", "endTime", "playerCapacity", "slotPrice", "paid"},
		[][]interface{}{
			{"Pune", start, end, 10, 999.5, true},
			{"  ", nil, end, 7, 0, false},
		},
	)

	data, err := Write(src)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if strings.Join(got.Columns, ",") != "cityName,startTime,endTime,playerCapacity,slotPrice,paid" {
		t.Errorf("Columns = %v", got.Columns)
	}
	if got.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", got.Len())
	}

	if v := got.Get(0, "cityName"); v != "Pune" {
		t.Errorf("cityName = %#v, want \"Pune\"", v)
	}
	if v, ok := got.Get(0, "startTime").(time.Time); !ok || !v.Equal(start) {
		t.Errorf("startTime = %#v, want %v", got.Get(0, "startTime"), start)
	}
	if v, ok := got.Get(0, "endTime").(time.Time); !ok || !v.Equal(end) {
		t.Errorf("endTime = %#v, want %v", got.Get(0, "endTime"), end)
	}
	if v := got.Get(0, "playerCapacity"); v != 10.0 {
		t.Errorf("playerCapacity = %#v, want 10.0", v)
	}
	if v := got.Get(0, "slotPrice"); v != 999.5 {
		t.Errorf("slotPrice = %#v, want 999.5", v)
	}
	if v := got.Get(0, "paid"); v != true {
		t.Errorf("paid = %#v, want true", v)
	}

	if v := got.Get(1, "cityName"); v != "  " {
		t.Errorf("blank city = %#v, want the whitespace kept", v)
	}
	if v := got.Get(1, "startTime"); v != nil {
		t.Errorf("empty cell = %#v, want nil", v)
	}
	if v := got.Get(1, "slotPrice"); v != 0.0 {
		t.Errorf("zero price = %#v, want 0.0", v)
	}
}

func TestRead_NumbersStoredAsTextStayText(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	_ = f.SetCellValue(sheet, "A1", "playerCapacity")
	_ = f.SetCellStr(sheet, "A2", "12")

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer() error = %v", err)
	}
	got, err := Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if v := got.Get(0, "playerCapacity"); v != "12" {
		t.Errorf("playerCapacity = %#v, want the string \"12\"", v)
	}
}

func TestRead_FirstSheetOnly(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	first := f.GetSheetName(0)
	_ = f.SetCellValue(first, "A1", "cityName")
	_ = f.SetCellValue(first, "A2", "Pune")
	if _, err := f.NewSheet("Other"); err != nil {
		t.Fatalf("NewSheet() error = %v", err)
	}
	_ = f.SetCellValue("Other", "A1", "venueName")

	buf, _ := f.WriteToBuffer()
	got, err := Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got.Columns) != 1 || got.Columns[0] != "cityName" {
		t.Errorf("Columns = %v, want the first sheet's header", got.Columns)
	}
}

func TestRead_TrailingBlankRowsDropped(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	_ = f.SetCellValue(sheet, "A1", "cityName")
	_ = f.SetCellValue(sheet, "A2", "Pune")
	_ = f.SetCellValue(sheet, "A4", "Mumbai")
	_ = f.SetCellValue(sheet, "A6", "   ")

	buf, _ := f.WriteToBuffer()
	got, err := Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	// the blank row 3 stays so row numbers keep matching the sheet
	if got.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", got.Len())
	}
	if v := got.Get(2, "cityName"); v != "Mumbai" {
		t.Errorf("row 4 cityName = %#v, want Mumbai", v)
	}
}

func TestOpen(t *testing.T) {
	data, err := Template()
	if err != nil {
		t.Fatalf("Template() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), TemplateFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got.Len() != 1 || got.Get(0, "venueName") != "Turf A" {
		t.Errorf("Open() = %+v", got)
	}
}

func TestOpen_Errors(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Error("Open() of a missing file should fail")
	}
	if _, err := Read(strings.NewReader("cityName,venueName\nPune,Turf A\n")); err == nil {
		t.Error("Read() of CSV text should fail")
	}
}

func TestSerialToTime(t *testing.T) {
	got, err := SerialToTime(45446 + 19.0/24)
	if err != nil {
		t.Fatalf("SerialToTime() error = %v", err)
	}
	want := time.Date(2024, 6, 3, 19, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("SerialToTime() = %v, want %v", got, want)
	}
}

func TestRead_TimeOnlyCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	_ = f.SetCellValue(sheet, "A1", "startTime")
	_ = f.SetCellValue(sheet, "B1", "endTime")
	_ = f.SetCellValue(sheet, "A2", 19.0/24)
	_ = f.SetCellValue(sheet, "B2", 45446+20.0/24)

	timeStyle, err := f.NewStyle(&excelize.Style{NumFmt: 20}) // h:mm
	if err != nil {
		t.Fatal(err)
	}
	dateTimeStyle, err := f.NewStyle(&excelize.Style{NumFmt: 22}) // m/d/yy h:mm
	if err != nil {
		t.Fatal(err)
	}
	_ = f.SetCellStyle(sheet, "A2", "A2", timeStyle)
	_ = f.SetCellStyle(sheet, "B2", "B2", dateTimeStyle)

	buf, _ := f.WriteToBuffer()
	got, err := Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if v := got.Get(0, "startTime"); v != "19:00:00" {
		t.Errorf("time-only cell = %#v, want \"19:00:00\"", v)
	}
	want := time.Date(2024, 6, 3, 20, 0, 0, 0, time.UTC)
	if v, ok := got.Get(0, "endTime").(time.Time); !ok || !v.Equal(want) {
		t.Errorf("date-time cell = %#v, want %v", got.Get(0, "endTime"), want)
	}
}

func TestRead_EmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	buf, _ := f.WriteToBuffer()
	got, err := Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got.Columns) != 0 || got.Len() != 0 {
		t.Errorf("Read() = %+v, want an empty table", got)
	}
}

func TestSerialToTime_TimeOnly(t *testing.T) {
	if _, err := SerialToTime(19.0 / 24); !errors.Is(err, ErrTimeOnly) {
		t.Errorf("SerialToTime(0.79) error = %v, want ErrTimeOnly", err)
	}
	if _, err := SerialToTime(0); !errors.Is(err, ErrTimeOnly) {
		t.Errorf("SerialToTime(0) error = %v, want ErrTimeOnly", err)
	}
}

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		serial float64
		want   string
	}{
		{0, "00:00:00"},
		{19.0 / 24, "19:00:00"},
		{6.5 / 24, "06:30:00"},
		{0.9999999, "23:59:59"},
	}
	for _, tt := range tests {
		if got := TimeOfDay(tt.serial); got != tt.want {
			t.Errorf("TimeOfDay(%v) = %q, want %q", tt.serial, got, tt.want)
		}
	}
}
