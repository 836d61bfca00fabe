// Package report renders ledger statements and expense summaries as
// fixed-width text tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/expense"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

const (
	statementWidth = 48
	summaryWidth   = 26
	places         = 2
)

// NoData is printed instead of a summary when no records remain.
const NoData = "No data to display."

// Statement is what WriteStatement needs from an account.
type Statement interface {
	Owner() string
	Balance() decimal.Decimal
	Statement() []model.Transaction
}

// WriteStatement renders the account's transactions and final balance.
func WriteStatement(w io.Writer, s Statement) error {
	rule := strings.Repeat("-", statementWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "Statement for %s\n", s.Owner())
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "%-4s %-10s %10s %12s %s\n", "ID", "Type", "Amount", "Balance", "Note")
	fmt.Fprintln(&b, rule)
	for _, tx := range s.Statement() {
		line := fmt.Sprintf("%-4d %-10s %10s %12s  %s",
			tx.Index, tx.Type, tx.Amount.StringFixed(places), tx.BalanceAfter.StringFixed(places), tx.Note)
		fmt.Fprintln(&b, strings.TrimRight(line, " "))
	}
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Final Balance: %s\n", s.Balance().StringFixed(places))

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSummary renders category totals in the given order. An empty slice
// still prints the header and rule; callers print NoData when there were no
// records to summarize.
func WriteSummary(w io.Writer, entries []expense.Entry) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-15s %10s\n", "category", "total")
	fmt.Fprintln(&b, strings.Repeat("-", summaryWidth))
	for _, e := range entries {
		fmt.Fprintf(&b, "%-15s %10s\n", e.Category, e.Total.StringFixed(places))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
