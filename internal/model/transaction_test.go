package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTxTypeValid(t *testing.T) {
	tests := []struct {
		typ  TxType
		want bool
	}{
		{TxDeposit, true},
		{TxWithdraw, true},
		{"invoice", false},
		{"Deposit", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.Valid(), "Valid(%q)", tt.typ)
	}
}

func TestTransactionSigned(t *testing.T) {
	amt := decimal.RequireFromString("25.50")

	dep := Transaction{Type: TxDeposit, Amount: amt}
	assert.True(t, dep.Signed().Equal(amt))

	wd := Transaction{Type: TxWithdraw, Amount: amt}
	assert.Equal(t, "-25.50", wd.Signed().StringFixed(2))
}
