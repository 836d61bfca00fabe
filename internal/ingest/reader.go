package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrSourceUnreadable matches every *SourceError.
var ErrSourceUnreadable = errors.New("source unreadable")

// SourceError is a fatal failure to open or read the source itself, as
// opposed to a problem with one of its rows.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("reading source: %v", e.Err)
	}
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool { return target == ErrSourceUnreadable }

// Batch is the result of reading a source.
type Batch struct {
	Accepted   []Record // source order
	Rejected   int
	Rejections []*RowError
}

// Total returns the number of data rows seen.
func (b *Batch) Total() int {
	return len(b.Accepted) + b.Rejected
}

// ReadFile opens path and reads it with ReadAll. The file is closed before
// returning on every path.
func ReadFile(path string, schema Schema) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	defer f.Close()

	b, err := ReadAll(f, schema)
	var se *SourceError
	if errors.As(err, &se) && se.Path == "" {
		se.Path = path
	}
	return b, err
}

// ReadAll reads a header-delimited CSV source and checks every data row
// against schema. Under SkipInvalid, bad rows are counted and skipped; under
// FailFast the first bad row aborts the read with a "row N" error. Only I/O
// failures produce a *SourceError.
func ReadAll(r io.Reader, schema Schema) (*Batch, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	cols, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Batch{}, nil
	}
	if err != nil {
		return nil, &SourceError{Err: fmt.Errorf("reading header: %w", err)}
	}
	header := NewHeader(cols)

	b := &Batch{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var (
			out  Outcome
			line int
			pe   *csv.ParseError
		)
		switch {
		case err == nil:
			line, _ = cr.FieldPos(0)
			out = schema.Check(header, rec)
		case errors.As(err, &pe):
			line = pe.StartLine
			out = rejected("", "malformed row", err)
		default:
			return nil, &SourceError{Err: err}
		}

		if out.Accepted() {
			b.Accepted = append(b.Accepted, out.Record)
			continue
		}
		if schema.Policy == FailFast {
			return nil, fmt.Errorf("row %d: %w", line, out.Err)
		}
		b.Rejected++
		b.Rejections = append(b.Rejections, out.Err)
	}
	return b, nil
}
