package ingest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Policy decides what happens to a row that fails its schema.
type Policy int

const (
	// SkipInvalid counts a bad row and moves on.
	SkipInvalid Policy = iota
	// FailFast aborts the whole read on the first bad row.
	FailFast
)

// ErrRowRejected matches every *RowError.
var ErrRowRejected = errors.New("row rejected")

// Schema describes the columns a tabular source must provide.
type Schema struct {
	Required []string // present and non-empty
	Numeric  []string // must parse as a decimal number
	Optional []string // copied through, "" when absent
	Policy   Policy
}

// RowError explains why a single row was rejected.
type RowError struct {
	Field  string
	Reason string
	Err    error
}

func (e *RowError) Error() string {
	msg := e.Reason
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *RowError) Unwrap() error { return e.Err }

func (e *RowError) Is(target error) bool { return target == ErrRowRejected }

// Record is an accepted row, keyed by column name.
type Record struct {
	values  map[string]string
	numbers map[string]decimal.Decimal
}

// String returns the raw value of a column, or "" if it was absent.
func (r Record) String(name string) string {
	return r.values[name]
}

// Decimal returns the parsed value of a numeric column.
func (r Record) Decimal(name string) decimal.Decimal {
	return r.numbers[name]
}

// Outcome is the result of checking one row: either an accepted Record or a
// rejection reason.
type Outcome struct {
	Record Record
	Err    *RowError
}

// Accepted reports whether the row passed the schema.
func (o Outcome) Accepted() bool { return o.Err == nil }

func rejected(field, reason string, err error) Outcome {
	return Outcome{Err: &RowError{Field: field, Reason: reason, Err: err}}
}

// Header maps column names to their positions in a row.
type Header map[string]int

// NewHeader indexes a header row. A leading UTF-8 BOM is ignored and, for
// duplicate names, the first column wins.
func NewHeader(cols []string) Header {
	h := make(Header, len(cols))
	for i, c := range cols {
		if i == 0 {
			c = strings.TrimPrefix(c, "\ufeff")
		}
		if _, dup := h[c]; !dup {
			h[c] = i
		}
	}
	return h
}

// Value returns the named cell of row. ok is false when the column is missing
// from the header or the row is too short to contain it.
func (h Header) Value(row []string, name string) (string, bool) {
	i, ok := h[name]
	if !ok || i >= len(row) {
		return "", false
	}
	return row[i], true
}

// Check validates a single row against the schema.
func (s Schema) Check(h Header, row []string) Outcome {
	for _, name := range s.Required {
		v, ok := h.Value(row, name)
		if !ok {
			return rejected(name, "missing field", nil)
		}
		if v == "" {
			return rejected(name, "empty field", nil)
		}
	}

	rec := Record{
		values:  make(map[string]string, len(s.Required)+len(s.Numeric)+len(s.Optional)),
		numbers: make(map[string]decimal.Decimal, len(s.Numeric)),
	}

	for _, name := range s.Numeric {
		v, _ := h.Value(row, name)
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return rejected(name, fmt.Sprintf("invalid number %q", v), err)
		}
		rec.numbers[name] = d
	}

	for _, group := range [][]string{s.Required, s.Numeric, s.Optional} {
		for _, name := range group {
			v, _ := h.Value(row, name)
			rec.values[name] = v
		}
	}

	return Outcome{Record: rec}
}
