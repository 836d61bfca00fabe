package expense

import (
	"fmt"
	"io"

	"github.com/cleared-dev/ledgerlab/internal/ingest"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

const (
	fieldCategory = "category"
	fieldAmount   = "amount"
	fieldDate     = "date"
)

var expenseSchema = ingest.Schema{
	Required: []string{fieldCategory, fieldAmount},
	Numeric:  []string{fieldAmount},
	Optional: []string{fieldDate},
	Policy:   ingest.SkipInvalid,
}

// LoadResult holds the expenses read from a source and the rows that were skipped.
type LoadResult struct {
	Expenses   []model.Expense
	Skipped    int
	Rejections []*ingest.RowError
}

// Load reads a category,amount,date CSV file. Bad rows are skipped and counted;
// only an unreadable file is an error.
func Load(path string) (*LoadResult, error) {
	b, err := ingest.ReadFile(path, expenseSchema)
	if err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}
	return fromBatch(b), nil
}

// Read is Load for an already open stream.
func Read(r io.Reader) (*LoadResult, error) {
	b, err := ingest.ReadAll(r, expenseSchema)
	if err != nil {
		return nil, fmt.Errorf("reading expenses: %w", err)
	}
	return fromBatch(b), nil
}

func fromBatch(b *ingest.Batch) *LoadResult {
	res := &LoadResult{
		Expenses:   make([]model.Expense, 0, len(b.Accepted)),
		Skipped:    b.Rejected,
		Rejections: b.Rejections,
	}
	for _, rec := range b.Accepted {
		res.Expenses = append(res.Expenses, model.Expense{
			Category: rec.String(fieldCategory),
			Amount:   rec.Decimal(fieldAmount),
			Date:     rec.String(fieldDate),
		})
	}
	return res
}
