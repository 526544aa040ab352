package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"
)

// All code interacting with files is here

const (
	Sep        = ','
	DateFormat = time.DateOnly
)

// Files reads and writes delimited files. Dates are written with DateFormat and the
// strings in NAs read as missing.
type Files struct {
	Sep        rune
	DateFormat string
	NAs        []string

	fileName string
	file     *os.File
	rdr      *csv.Reader
	wrtr     *csv.Writer
}

type FileOpt func(f *Files) error

func NewFiles(opts ...FileOpt) (*Files, error) {
	f := &Files{
		Sep:        Sep,
		DateFormat: DateFormat,
	}

	for _, opt := range opts {
		if e := opt(f); e != nil {
			return nil, e
		}
	}

	return f, nil
}

// *********** Setters ***********

// FileNA sets the strings read as missing values.
func FileNA(nas ...string) FileOpt {
	return func(f *Files) error {
		f.NAs = nas
		return nil
	}
}

// *********** Methods ***********

func (f *Files) Open(fileName string) error {
	var e error
	f.fileName = fileName
	if f.file, e = os.Open(fileName); e != nil {
		return e
	}

	f.rdr = csv.NewReader(f.file)
	f.rdr.Comma = f.Sep
	f.rdr.FieldsPerRecord = -1

	return nil
}

func (f *Files) Create(fileName string) error {
	var e error
	f.fileName = fileName
	if f.file, e = os.Create(fileName); e != nil {
		return e
	}

	f.wrtr = csv.NewWriter(f.file)
	f.wrtr.Comma = f.Sep

	return nil
}

func (f *Files) Close() error {
	if f.file == nil {
		return fmt.Errorf("no open files")
	}

	if f.wrtr != nil {
		f.wrtr.Flush()
		if e := f.wrtr.Error(); e != nil {
			_ = f.file.Close()
			return e
		}
	}

	e := f.file.Close()
	f.file, f.rdr, f.wrtr = nil, nil, nil

	return e
}

func (f *Files) IsNA(s string) bool {
	return Has(s, f.NAs)
}

// ReadGrid reads every remaining record of the open file. Rows may be ragged.
func (f *Files) ReadGrid() ([][]string, error) {
	if f.rdr == nil {
		return nil, fmt.Errorf("file not open for reading")
	}

	var grid [][]string
	for {
		row, e := f.rdr.Read()
		if e == io.EOF {
			break
		}

		if e != nil {
			return nil, fmt.Errorf("%s: %w", f.fileName, e)
		}

		grid = append(grid, row)
	}

	if len(grid) == 0 {
		return nil, fmt.Errorf("%s: empty file", f.fileName)
	}

	return grid, nil
}

func (f *Files) WriteHeader(fieldNames []string) error {
	if fieldNames == nil {
		return fmt.Errorf("field names not set")
	}

	return f.wrtr.Write(fieldNames)
}

func (f *Files) WriteLine(v []any) error {
	if f.wrtr == nil {
		return fmt.Errorf("file not open for writing")
	}

	line := make([]string, len(v))
	for ind := 0; ind < len(v); ind++ {
		line[ind] = f.Format(v[ind])
	}

	return f.wrtr.Write(line)
}

func (f *Files) Format(x any) string {
	switch d := x.(type) {
	case float64:
		return FormatFloat(d)
	case time.Time:
		return d.Format(f.DateFormat)
	case string:
		return d
	default:
		return "#err#"
	}
}

// Save writes the columns of df to fileName, in df's column order.
func (f *Files) Save(fileName string, df DF) (err error) {
	if e := f.Create(fileName); e != nil {
		return e
	}

	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()

	names := df.ColumnNames()
	if e := f.WriteHeader(names); e != nil {
		return e
	}

	cols := make([]*Vector, len(names))
	for ind, nm := range names {
		cols[ind] = df.Column(nm).Data()
	}

	row := make([]any, len(cols))
	for r := 0; r < df.RowCount(); r++ {
		for c := 0; c < len(cols); c++ {
			row[c] = cols[c].Element(r)
		}

		if e := f.WriteLine(row); e != nil {
			return e
		}
	}

	return nil
}
