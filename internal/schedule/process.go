package schedule

import (
	"context"
	"fmt"
	"io"

	"github.com/Rag3karn/HOF-Scheduler/internal/table"
	"github.com/Rag3karn/HOF-Scheduler/internal/xlsx"
)

// Outcome is what a caller gets back for one schedule: either the
// announcement or the ordered error messages, never both.
type Outcome struct {
	Announcement string
	Errors       []string
	Rows         int
}

func (o Outcome) OK() bool {
	return len(o.Errors) == 0
}

func failed(err error) Outcome {
	return Outcome{Errors: []string{err.Error()}}
}

// AnnouncementFileName is the name announcements are downloaded or sent under.
const AnnouncementFileName = "hof_announcement.txt"

// SheetLoader reads a schedule range from a spreadsheet service.
type SheetLoader interface {
	LoadTable(ctx context.Context, a1 string) (*table.Table, error)
}

// LoadFunc produces the raw table, e.g. by reading a workbook.
type LoadFunc func() (*table.Table, error)

// Processor runs load, validate and format for one schedule at a time. It
// holds no state between calls.
type Processor struct {
	CollectAll bool
}

// Process never panics: load failures, validation failures and anything
// unexpected all come back as Outcome.Errors.
func (p Processor) Process(load LoadFunc) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = failed(&UnexpectedError{Err: fmt.Errorf("%v", r)})
		}
	}()

	t, err := load()
	if err != nil {
		return failed(&LoadError{Err: err})
	}
	return p.ProcessTable(t)
}

// ProcessTable validates and formats an already loaded table.
func (p Processor) ProcessTable(t *table.Table) Outcome {
	res := Validator{CollectAll: p.CollectAll}.Validate(t)
	if !res.Valid() {
		return Outcome{Errors: res.Messages(), Rows: t.Len()}
	}

	text, err := Format(res.Table)
	if err != nil {
		return failed(&UnexpectedError{Err: err})
	}
	return Outcome{Announcement: text, Rows: len(res.Table)}
}

// ProcessFile reads the first worksheet of the .xlsx file at path.
func (p Processor) ProcessFile(path string) Outcome {
	return p.Process(func() (*table.Table, error) { return xlsx.Open(path) })
}

// ProcessReader reads an .xlsx workbook from r.
func (p Processor) ProcessReader(r io.Reader) Outcome {
	return p.Process(func() (*table.Table, error) { return xlsx.Read(r) })
}

// ProcessFile handles one file in the default stop-at-first-error mode.
func ProcessFile(path string) Outcome {
	return Processor{}.ProcessFile(path)
}
