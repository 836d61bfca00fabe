package log

import (
	"fmt"

	"go.uber.org/zap"
)

// Field names.
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldPath      = "path"
	FieldOwner     = "owner"
	FieldBalance   = "balance"
	FieldAmount    = "amount"
	FieldType      = "type"
	FieldIndex     = "index"
	FieldPosition  = "position"
	FieldAccepted  = "accepted"
	FieldRejected  = "rejected"
	FieldReason    = "reason"
	FieldCategory  = "category"
	FieldSortKey   = "sort"
	FieldCommand   = "command"
)

// Component names.
const (
	ComponentCLI     = "cli"
	ComponentLedger  = "ledger"
	ComponentExpense = "expense"
	ComponentConfig  = "config"
)

func String(key, value string) Field { return zap.String(key, value) }
func Int(key string, value int) Field { return zap.Int(key, value) }
func Err(err error) Field             { return zap.Error(err) }

// Stringer logs any value with a String method, such as decimal.Decimal.
func Stringer(key string, value fmt.Stringer) Field { return zap.Stringer(key, value) }
