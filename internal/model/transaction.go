package model

import (
	"github.com/shopspring/decimal"
)

// TxType classifies a ledger transaction.
type TxType string

const (
	TxDeposit  TxType = "deposit"
	TxWithdraw TxType = "withdraw"
)

// Valid reports whether t is one of the known transaction types.
func (t TxType) Valid() bool {
	return t == TxDeposit || t == TxWithdraw
}

// TransactionInput is one row of a ledger CSV before it is applied.
type TransactionInput struct {
	Type   TxType
	Amount decimal.Decimal // zero when the source omits it
	Note   string
}

// Transaction is a committed entry in an account's statement.
type Transaction struct {
	Index        int
	Type         TxType
	Amount       decimal.Decimal // always non-negative, sign comes from Type
	BalanceAfter decimal.Decimal
	Note         string
}

// Signed returns the amount with the sign implied by the transaction type.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TxWithdraw {
		return t.Amount.Neg()
	}
	return t.Amount
}
