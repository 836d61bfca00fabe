package expense

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var sampleExpenses = []model.Expense{
	{Category: "food", Amount: dec("10.0")},
	{Category: "travel", Amount: dec("100.0")},
	{Category: "food", Amount: dec("25.50")},
	{Category: "misc", Amount: dec("5.0")},
	{Category: "travel", Amount: dec("50.0")},
}

func sampleEntries() []Entry {
	return []Entry{
		{Category: "travel", Total: dec("150.0")},
		{Category: "food", Total: dec("35.50")},
		{Category: "misc", Total: dec("5.0")},
	}
}

func categories(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Category
	}
	return out
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleExpenses)
	m := s.Map()
	require.Len(t, m, 3)
	assert.Equal(t, "35.50", m["food"].StringFixed(2))
	assert.Equal(t, "150.00", m["travel"].StringFixed(2))
	assert.Equal(t, "5.00", m["misc"].StringFixed(2))

	assert.Equal(t, []string{"food", "travel", "misc"}, categories(s.Entries()))

	_, ok := s.Total("shopping")
	assert.False(t, ok, "absent categories are not zero-filled")
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Map())
	assert.Empty(t, s.Entries())
}

func TestSummarize_ExactDecimal(t *testing.T) {
	var exps []model.Expense
	for i := 0; i < 10; i++ {
		exps = append(exps, model.Expense{Category: "x", Amount: dec("0.1")})
	}
	total, _ := Summarize(exps).Total("x")
	assert.True(t, total.Equal(dec("1")), "got %s", total)
}

func TestFilter(t *testing.T) {
	got := Filter(sampleExpenses, "food")
	require.Len(t, got, 2)
	assert.Equal(t, "food", got[0].Category)
	assert.Equal(t, "food", got[1].Category)
	assert.True(t, got[0].Amount.Equal(dec("10")))
	assert.True(t, got[1].Amount.Equal(dec("25.50")))
}

func TestFilter_CaseAndWhitespace(t *testing.T) {
	assert.Len(t, Filter(sampleExpenses, "  FOOD "), 2)
	assert.Len(t, Filter([]model.Expense{{Category: "Straße"}}, "STRASSE"), 1)
}

func TestFilter_NoMatch(t *testing.T) {
	got := Filter(sampleExpenses, "shopping")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_EmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, "food"))
}

func TestSort_AmountDesc(t *testing.T) {
	assert.Equal(t, []string{"travel", "food", "misc"}, categories(Sort(sampleEntries(), SortAmountDesc)))
}

func TestSort_AmountAsc(t *testing.T) {
	assert.Equal(t, []string{"misc", "food", "travel"}, categories(Sort(sampleEntries(), SortAmountAsc)))
}

func TestSort_Category(t *testing.T) {
	assert.Equal(t, []string{"food", "misc", "travel"}, categories(Sort(sampleEntries(), SortCategory)))
}

func TestSort_DoesNotModifyInput(t *testing.T) {
	in := sampleEntries()
	_ = Sort(in, SortCategory)
	assert.Equal(t, []string{"travel", "food", "misc"}, categories(in))
}

func TestSort_ReversePermutation(t *testing.T) {
	entries := []Entry{
		{Category: "a", Total: dec("3")},
		{Category: "b", Total: dec("1")},
		{Category: "c", Total: dec("7")},
		{Category: "d", Total: dec("-2")},
		{Category: "e", Total: dec("4.5")},
	}
	desc := categories(Sort(entries, SortAmountDesc))
	asc := categories(Sort(entries, SortAmountAsc))
	for i := range desc {
		assert.Equal(t, desc[i], asc[len(asc)-1-i])
	}
}

func TestSort_StableTies(t *testing.T) {
	entries := []Entry{
		{Category: "x", Total: dec("5")},
		{Category: "y", Total: dec("9")},
		{Category: "z", Total: dec("5.00")},
		{Category: "w", Total: dec("5")},
	}
	assert.Equal(t, []string{"y", "x", "z", "w"}, categories(Sort(entries, SortAmountDesc)))
	assert.Equal(t, []string{"x", "z", "w", "y"}, categories(Sort(entries, SortAmountAsc)))
}

func TestSort_CategoryNonDecreasing(t *testing.T) {
	entries := []Entry{{Category: "b"}, {Category: "B"}, {Category: "a"}, {Category: "b"}, {Category: ""}}
	got := categories(Sort(entries, SortCategory))
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1], got[i])
	}
}

func TestParseSortKey(t *testing.T) {
	for _, k := range SortKeys {
		got, err := ParseSortKey(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseSortKey("date")
	assert.ErrorContains(t, err, "unknown sort key")
}

func TestTop(t *testing.T) {
	entries := sampleEntries()
	assert.Len(t, Top(entries, 2), 2)
	assert.Len(t, Top(entries, 0), 0)
	assert.Len(t, Top(entries, 10), 3)
	assert.Len(t, Top(entries, -1), 3)
}

func TestParseFilter(t *testing.T) {
	got, err := ParseFilter("category=food")
	require.NoError(t, err)
	assert.Equal(t, "food", got)

	got, err = ParseFilter(" Category =a=b")
	require.NoError(t, err)
	assert.Equal(t, "a=b", got)

	_, err = ParseFilter("food")
	assert.ErrorContains(t, err, "expected field=value")

	_, err = ParseFilter("date=2025-01-01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFilter))
}
