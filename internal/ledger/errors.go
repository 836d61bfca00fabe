package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrNegativeAmount         = errors.New("negative amount")
)

// InvalidTypeError reports a transaction type outside deposit/withdraw.
type InvalidTypeError struct {
	Type model.TxType
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid transaction type %q", e.Type)
}

func (e *InvalidTypeError) Is(target error) bool { return target == ErrInvalidTransactionType }

// InsufficientFundsError reports a withdrawal larger than the balance.
type InsufficientFundsError struct {
	Balance decimal.Decimal
	Amount  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %s, withdrawal %s",
		e.Balance.StringFixed(2), e.Amount.StringFixed(2))
}

func (e *InsufficientFundsError) Is(target error) bool { return target == ErrInsufficientFunds }

// BatchError identifies the input that stopped ApplyAll.
type BatchError struct {
	Position int // 0-based index into the input slice
	Input    model.TransactionInput
	Err      error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("transaction %d (%s %s): %v", e.Position, e.Input.Type, e.Input.Amount, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
