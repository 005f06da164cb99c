package cli

import (
	"context"

	"github.com/spf13/cobra"

	"loan-simulator/report"
	"loan-simulator/service"
)

func newCompareCmd(opts *globalOptions) *cobra.Command {
	var (
		loan   loanFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the totals of every amortization method",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			formatter, err := newFormatter(cfg)
			if err != nil {
				return err
			}

			ctx := context.Background()
			cache, closer, err := newCache(ctx, cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			comparison, err := service.NewLoanService(cache).CompareMethods(ctx, loan.principal, loan.term, loan.rate)
			if err != nil {
				return err
			}

			if output == "table" {
				return report.RenderComparison(cmd.OutOrStdout(), comparison, formatter)
			}
			return writeStructured(cmd.OutOrStdout(), output, comparison)
		},
	}

	loan.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json or yaml")
	return cmd
}
