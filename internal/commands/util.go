package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/util"
)

func newUtilCommand() *cobra.Command {
	utilCmd := &cobra.Command{
		Use:   "util",
		Short: "Small numeric and string helpers",
	}
	utilCmd.AddCommand(newDivCommand())
	utilCmd.AddCommand(newSlugifyCommand())
	utilCmd.AddCommand(newMedianCommand())
	return utilCmd
}

func newDivCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "div <a> <b>",
		Short: "Divide a by b, rounded to three decimal places",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseFloats(args)
			if err != nil {
				return err
			}
			q, ok := util.SafeDiv(nums[0], nums[1])
			if !ok {
				return errors.New("division by zero")
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(q))
			return nil
		},
	}
}

func newSlugifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "slugify <text>...",
		Short: "Turn text into a lowercase hyphenated slug",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), util.Slugify(strings.Join(args, " ")))
			return nil
		},
	}
}

func newMedianCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "median <n>...",
		Short: "Print the median of the given numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseFloats(args)
			if err != nil {
				return err
			}
			m, err := util.Median(nums)
			if err != nil {
				return fmt.Errorf("median: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(m))
			return nil
		},
	}
}

func parseFloats(args []string) ([]float64, error) {
	nums := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		nums[i] = f
	}
	return nums, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
