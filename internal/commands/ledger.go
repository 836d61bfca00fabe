package commands

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/log"
	"github.com/cleared-dev/ledgerlab/internal/report"
)

type ledgerOptions struct {
	owner   string
	balance string
	csvPath string
	export  string
}

func newLedgerCommand(a *app) *cobra.Command {
	var opts ledgerOptions

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Replay a transactions CSV against an opening balance and print the statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.owner == "" {
				opts.owner = a.cfg.Ledger.DefaultOwner
			}
			if opts.owner == "" {
				return errors.New(`required flag "owner" not set`)
			}
			return runLedger(cmd, a.logger.WithComponent(log.ComponentLedger), opts)
		},
	}

	cmd.Flags().StringVar(&opts.owner, "owner", "", "account owner (defaults to ledger.default_owner)")
	cmd.Flags().StringVar(&opts.balance, "balance", "", "opening balance (required)")
	cmd.Flags().StringVar(&opts.csvPath, "from-csv", "", "transactions CSV with type,amount,note columns (required)")
	cmd.Flags().StringVar(&opts.export, "export", "", "also write the statement as CSV to this path")
	_ = cmd.MarkFlagRequired("balance")
	_ = cmd.MarkFlagRequired("from-csv")

	return cmd
}

func runLedger(cmd *cobra.Command, logger *log.Logger, opts ledgerOptions) error {
	opening, err := decimal.NewFromString(opts.balance)
	if err != nil {
		return fmt.Errorf("invalid balance %q: %w", opts.balance, err)
	}

	txns, err := ledger.LoadTransactions(opts.csvPath)
	if err != nil {
		return err
	}
	logger.Info("transactions loaded",
		log.String(log.FieldPath, opts.csvPath),
		log.Int(log.FieldAccepted, len(txns)))

	acct := ledger.NewAccount(opts.owner, opening)
	if err := ledger.ApplyAll(acct, txns); err != nil {
		var be *ledger.BatchError
		if errors.As(err, &be) {
			logger.Info("transaction rejected",
				log.Int(log.FieldPosition, be.Position),
				log.String(log.FieldType, string(be.Input.Type)),
				log.Stringer(log.FieldAmount, be.Input.Amount),
				log.Err(be.Err))
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	logger.Info("transactions applied",
		log.String(log.FieldOwner, acct.Owner()),
		log.Stringer(log.FieldBalance, acct.Balance()))

	if err := report.WriteStatement(cmd.OutOrStdout(), acct); err != nil {
		return fmt.Errorf("writing statement: %w", err)
	}

	if opts.export != "" {
		if err := ledger.ExportStatement(opts.export, acct); err != nil {
			return err
		}
		logger.Info("statement exported", log.String(log.FieldPath, opts.export))
	}
	return nil
}
