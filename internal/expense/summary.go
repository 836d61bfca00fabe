package expense

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Entry is one category total.
type Entry struct {
	Category string
	Total    decimal.Decimal
}

// Summary maps categories to their totals. Entries keep the order in which
// each category first appeared.
type Summary struct {
	order  []string
	totals map[string]decimal.Decimal
}

// Summarize folds expenses into per-category totals.
func Summarize(expenses []model.Expense) *Summary {
	s := &Summary{totals: make(map[string]decimal.Decimal)}
	for _, e := range expenses {
		cur, seen := s.totals[e.Category]
		if !seen {
			s.order = append(s.order, e.Category)
		}
		s.totals[e.Category] = cur.Add(e.Amount)
	}
	return s
}

// Len returns the number of categories.
func (s *Summary) Len() int { return len(s.order) }

// Total returns the total for a category.
func (s *Summary) Total(category string) (decimal.Decimal, bool) {
	t, ok := s.totals[category]
	return t, ok
}

// Entries returns the totals in first-appearance order.
func (s *Summary) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, c := range s.order {
		out = append(out, Entry{Category: c, Total: s.totals[c]})
	}
	return out
}

// Map returns a copy of the totals keyed by category.
func (s *Summary) Map() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(s.totals))
	for k, v := range s.totals {
		m[k] = v
	}
	return m
}

// Filter returns the expenses whose category matches category, ignoring case
// and surrounding whitespace. Order is preserved.
func Filter(expenses []model.Expense, category string) []model.Expense {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(category))
	out := []model.Expense{}
	for _, e := range expenses {
		if fold.String(strings.TrimSpace(e.Category)) == want {
			out = append(out, e)
		}
	}
	return out
}

// SortKey selects the ordering of summary entries.
type SortKey string

const (
	SortAmountDesc SortKey = "amount_desc"
	SortAmountAsc  SortKey = "amount_asc"
	SortCategory   SortKey = "category"
)

// SortKeys lists the accepted keys.
var SortKeys = []SortKey{SortAmountAsc, SortAmountDesc, SortCategory}

// ParseSortKey validates a sort key name.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	if slices.Contains(SortKeys, k) {
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q (want one of %s, %s, %s)", s, SortAmountAsc, SortAmountDesc, SortCategory)
}

// Sort returns entries ordered by key. The sort is stable: entries that
// compare equal keep their relative order. The input is not modified.
func Sort(entries []Entry, key SortKey) []Entry {
	out := slices.Clone(entries)
	switch key {
	case SortAmountDesc:
		slices.SortStableFunc(out, func(a, b Entry) int { return b.Total.Cmp(a.Total) })
	case SortAmountAsc:
		slices.SortStableFunc(out, func(a, b Entry) int { return a.Total.Cmp(b.Total) })
	case SortCategory:
		slices.SortStableFunc(out, func(a, b Entry) int { return strings.Compare(a.Category, b.Category) })
	}
	return out
}

// Top returns at most n entries from the front of entries.
func Top(entries []Entry, n int) []Entry {
	if n < 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}

// ErrUnsupportedFilter is returned by ParseFilter for fields other than category.
var ErrUnsupportedFilter = errors.New("only filtering by category is supported")

// ParseFilter splits a "field=value" filter expression and returns the
// category to filter on.
func ParseFilter(expr string) (string, error) {
	field, value, ok := strings.Cut(expr, "=")
	if !ok {
		return "", fmt.Errorf("invalid filter %q: expected field=value", expr)
	}
	if f := strings.ToLower(strings.TrimSpace(field)); f != fieldCategory {
		return "", fmt.Errorf("filter field %q: %w", f, ErrUnsupportedFilter)
	}
	return value, nil
}
