package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/expense"
	"github.com/cleared-dev/ledgerlab/internal/log"
	"github.com/cleared-dev/ledgerlab/internal/report"
)

type expensesOptions struct {
	path   string
	sort   string
	top    int
	filter string
}

func newExpensesCommand(a *app) *cobra.Command {
	var opts expensesOptions

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Summarize an expenses CSV by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.sort == "" {
				opts.sort = a.cfg.Expenses.DefaultSort
			}
			if !cmd.Flags().Changed("top") && a.cfg.Expenses.Top > 0 {
				opts.top = a.cfg.Expenses.Top
			}
			return runExpenses(cmd, a.logger.WithComponent(log.ComponentExpense), opts)
		},
	}

	cmd.Flags().StringVar(&opts.path, "path", "", "expenses CSV with category,amount,date columns (required)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort order: amount_desc, amount_asc or category (default from config)")
	cmd.Flags().IntVar(&opts.top, "top", -1, "show only the first N categories")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "filter expression, e.g. category=food")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

func runExpenses(cmd *cobra.Command, logger *log.Logger, opts expensesOptions) error {
	key, err := expense.ParseSortKey(opts.sort)
	if err != nil {
		return err
	}
	if opts.top < -1 {
		return fmt.Errorf("invalid --top %d: must not be negative", opts.top)
	}

	res, err := expense.Load(opts.path)
	if err != nil {
		return err
	}
	logger.Info("expenses loaded",
		log.String(log.FieldPath, opts.path),
		log.Int(log.FieldAccepted, len(res.Expenses)),
		log.Int(log.FieldRejected, res.Skipped))
	for _, re := range res.Rejections {
		logger.Debug("row skipped", log.String(log.FieldReason, re.Error()))
	}
	if res.Skipped > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Skipped %d invalid rows.\n", res.Skipped)
	}

	expenses := res.Expenses
	if opts.filter != "" {
		category, err := expense.ParseFilter(opts.filter)
		switch {
		case errors.Is(err, expense.ErrUnsupportedFilter):
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		case err != nil:
			return err
		default:
			expenses = expense.Filter(expenses, category)
			logger.Info("filter applied",
				log.String(log.FieldCategory, category),
				log.Int(log.FieldAccepted, len(expenses)))
		}
	}

	if len(expenses) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), report.NoData)
		return err
	}

	entries := expense.Sort(expense.Summarize(expenses).Entries(), key)
	if opts.top >= 0 {
		entries = expense.Top(entries, opts.top)
	}
	return report.WriteSummary(cmd.OutOrStdout(), entries)
}
