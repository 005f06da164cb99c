package cli

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"loan-simulator/domain"
	"loan-simulator/service"
)

func newRecommendCmd(opts *globalOptions) *cobra.Command {
	var (
		input      domain.TermRecommendationInput
		method     string
		preference string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a term that fits a monthly budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			m, err := domain.ParseMethod(method)
			if err != nil {
				return errors.Wrapf(err, "%q", method)
			}
			input.Method = m
			input.Preference = domain.Preference(preference)

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

			svc := service.NewTermRecommendationService(service.NewLoanService(cache))
			result, err := svc.RecommendTerm(ctx, input)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "table" {
				return writeStructured(out, output, result)
			}

			fmt.Fprintf(out, "Recommended term: %d months\n\n", result.RecommendedTerm)
			fmt.Fprintf(out, "%6s  %16s  %16s  %6s\n", "Months", "Installment", "Total interest", "Score")
			for _, r := range result.Recommendations {
				fmt.Fprintf(out, "%6d  %16s  %16s  %6.2f\n",
					r.TermMonths, formatter.Format(r.FirstInstallment), formatter.Format(r.TotalInterest), r.Score)
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&input.Principal, "principal", "p", 10000, "loan principal")
	cmd.Flags().Float64VarP(&input.AnnualRatePercent, "rate", "r", 24, "annual nominal rate in percent")
	cmd.Flags().IntVar(&input.MinTermMonths, "min-term", 3, "shortest term to consider")
	cmd.Flags().IntVar(&input.MaxTermMonths, "max-term", 36, "longest term to consider")
	cmd.Flags().Float64Var(&input.MaxMonthlyPayment, "max-payment", 1000, "largest affordable first installment")
	cmd.Flags().StringVarP(&method, "method", "m", "french", "amortization method")
	cmd.Flags().StringVar(&preference, "preference", string(domain.PreferenceBalanced), "minimize_interest, minimize_payment or balanced")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json or yaml")
	return cmd
}
