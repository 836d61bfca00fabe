package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/ingest"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// StatementHeader is the CSV header written by WriteStatement.
const StatementHeader = "index,type,amount,balance_after,note"

const (
	numFields    = 5
	colIndex     = 0
	colType      = 1
	colAmount    = 2
	colBalance   = 3
	colNote      = 4
	amountPlaces = 2
)

// transactionSchema rejects the whole file on the first bad amount.
var transactionSchema = ingest.Schema{
	Numeric:  []string{"amount"},
	Optional: []string{"type", "note"},
	Policy:   ingest.FailFast,
}

// LoadTransactions reads a type,amount,note CSV file.
func LoadTransactions(path string) ([]model.TransactionInput, error) {
	b, err := ingest.ReadFile(path, transactionSchema)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	return toInputs(b), nil
}

// ReadTransactions reads a type,amount,note CSV stream.
func ReadTransactions(r io.Reader) ([]model.TransactionInput, error) {
	b, err := ingest.ReadAll(r, transactionSchema)
	if err != nil {
		return nil, fmt.Errorf("reading transactions: %w", err)
	}
	return toInputs(b), nil
}

func toInputs(b *ingest.Batch) []model.TransactionInput {
	inputs := make([]model.TransactionInput, 0, len(b.Accepted))
	for _, rec := range b.Accepted {
		inputs = append(inputs, model.TransactionInput{
			Type:   model.TxType(rec.String("type")),
			Amount: rec.Decimal("amount"),
			Note:   rec.String("note"),
		})
	}
	return inputs
}

// MarshalTransaction converts a committed Transaction to a CSV row.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colIndex] = strconv.Itoa(tx.Index)
	row[colType] = string(tx.Type)
	row[colAmount] = tx.Amount.StringFixed(amountPlaces)
	row[colBalance] = tx.BalanceAfter.StringFixed(amountPlaces)
	row[colNote] = tx.Note
	return row
}

// UnmarshalTransaction converts a statement CSV row back to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	idx, err := strconv.Atoi(record[colIndex])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing index %q: %w", record[colIndex], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	return model.Transaction{
		Index:        idx,
		Type:         model.TxType(record[colType]),
		Amount:       amount,
		BalanceAfter: balance,
		Note:         record[colNote],
	}, nil
}

// WriteStatement writes a statement as CSV, header included.
func WriteStatement(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(StatementHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txns {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadStatement reads a CSV written by WriteStatement.
func ReadStatement(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, tx)
	}
	return txns, nil
}

// ExportStatement writes the account's statement to a CSV file at path.
func ExportStatement(path string, a *Account) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating statement file: %w", err)
	}
	defer f.Close()

	if err := WriteStatement(f, a.Statement()); err != nil {
		return fmt.Errorf("writing statement: %w", err)
	}
	return nil
}
