package ledger

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Account is a single running balance with an append-only statement.
// It is not safe for concurrent use.
type Account struct {
	owner   string
	opening decimal.Decimal
	balance decimal.Decimal
	txns    []model.Transaction
}

// NewAccount creates an Account with the given opening balance.
func NewAccount(owner string, balance decimal.Decimal) *Account {
	return &Account{owner: owner, opening: balance, balance: balance}
}

// Owner returns the account holder.
func (a *Account) Owner() string { return a.owner }

// Opening returns the balance the account was created with.
func (a *Account) Opening() decimal.Decimal { return a.opening }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Len returns the number of committed transactions.
func (a *Account) Len() int { return len(a.txns) }

// Apply validates in and, if it is acceptable, updates the balance and
// appends a record to the statement. On error the account is unchanged.
func (a *Account) Apply(in model.TransactionInput) (model.Transaction, error) {
	if !in.Type.Valid() {
		return model.Transaction{}, &InvalidTypeError{Type: in.Type}
	}
	if in.Amount.IsNegative() {
		return model.Transaction{}, fmt.Errorf("%w: %s", ErrNegativeAmount, in.Amount)
	}

	next := a.balance
	switch in.Type {
	case model.TxDeposit:
		next = next.Add(in.Amount)
	case model.TxWithdraw:
		if in.Amount.GreaterThan(a.balance) {
			return model.Transaction{}, &InsufficientFundsError{Balance: a.balance, Amount: in.Amount}
		}
		next = next.Sub(in.Amount)
	}

	tx := model.Transaction{
		Index:        len(a.txns),
		Type:         in.Type,
		Amount:       in.Amount,
		BalanceAfter: next,
		Note:         in.Note,
	}
	a.txns = append(a.txns, tx)
	a.balance = next
	return tx, nil
}

// Statement returns a copy of the committed transactions in commit order.
func (a *Account) Statement() []model.Transaction {
	return slices.Clone(a.txns)
}

// ApplyAll applies inputs in order and stops at the first failure, leaving
// the account as it was after the last successful transaction. The returned
// error is a *BatchError naming the failing position.
func ApplyAll(a *Account, inputs []model.TransactionInput) error {
	for i, in := range inputs {
		if _, err := a.Apply(in); err != nil {
			return &BatchError{Position: i, Input: in, Err: err}
		}
	}
	return nil
}
