package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/expense"
	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestWriteStatement(t *testing.T) {
	acct := ledger.NewAccount("Alice", dec("100"))
	require.NoError(t, ledger.ApplyAll(acct, []model.TransactionInput{
		{Type: model.TxDeposit, Amount: dec("50"), Note: "paycheck"},
		{Type: model.TxWithdraw, Amount: dec("25.5")},
	}))

	var buf bytes.Buffer
	require.NoError(t, WriteStatement(&buf, acct))

	want := "Statement for Alice\n" +
		"------------------------------------------------\n" +
		"ID   Type           Amount      Balance Note\n" +
		"------------------------------------------------\n" +
		"0    deposit         50.00       150.00  paycheck\n" +
		"1    withdraw        25.50       124.50\n" +
		"------------------------------------------------\n" +
		"Final Balance: 124.50\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteStatement_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStatement(&buf, ledger.NewAccount("Bob", dec("7.1"))))
	assert.Contains(t, buf.String(), "Statement for Bob\n")
	assert.Contains(t, buf.String(), "Final Balance: 7.10\n")
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSummary(&buf, []expense.Entry{
		{Category: "travel", Total: dec("150")},
		{Category: "food", Total: dec("35.5")},
	})
	require.NoError(t, err)

	want := "category             total\n" +
		"--------------------------\n" +
		"travel              150.00\n" +
		"food                 35.50\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, nil))
	assert.Equal(t, "category             total\n--------------------------\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteSummary_WriterError(t *testing.T) {
	err := WriteSummary(failWriter{}, []expense.Entry{{Category: "a", Total: dec("1")}})
	assert.Error(t, err)
}
