package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/strongo/log"
	"gopkg.in/yaml.v3"

	"loan-simulator/domain"
	"loan-simulator/report"
	"loan-simulator/service"
)

// loanFlags are shared by the commands that take a loan.
type loanFlags struct {
	principal float64
	term      int
	rate      float64
}

func (f *loanFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.principal, "principal", "p", 10000, "loan principal")
	cmd.Flags().IntVarP(&f.term, "term", "t", 12, "term in months")
	cmd.Flags().Float64VarP(&f.rate, "rate", "r", 24, "annual nominal rate in percent")
}

func writeStructured(w io.Writer, output string, v interface{}) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return errors.Errorf("unknown output format %q", output)
}

func newScheduleCmd(opts *globalOptions) *cobra.Command {
	var (
		loan    loanFlags
		method  string
		output  string
		pdfPath string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the amortization schedule of a loan",
		Example: `  loansim schedule --principal 10000 --term 12 --rate 24 --method german
  loansim schedule -p 5000 -t 24 -r 18 --output json
  loansim schedule --method american --pdf schedule.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			m, err := domain.ParseMethod(method)
			if err != nil {
				return errors.Wrapf(err, "%q", method)
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

			schedule, err := service.NewLoanService(cache).CalculateSchedule(ctx, domain.LoanParameters{
				Principal:         loan.principal,
				TermMonths:        loan.term,
				AnnualRatePercent: loan.rate,
				Method:            m,
			})
			if err != nil {
				return err
			}

			if pdfPath != "" {
				file, err := os.Create(pdfPath)
				if err != nil {
					return errors.Wrap(err, "failed to create pdf")
				}
				if err := report.WritePDF(file, schedule, formatter); err != nil {
					file.Close()
					return err
				}
				if err := file.Close(); err != nil {
					return errors.Wrap(err, "failed to close pdf")
				}
				log.Infof(ctx, "wrote %s", pdfPath)
			}

			out := cmd.OutOrStdout()
			if output == "table" {
				return report.RenderTable(out, schedule, formatter)
			}
			return writeStructured(out, output, schedule)
		},
	}

	loan.register(cmd)
	cmd.Flags().StringVarP(&method, "method", "m", "french", "amortization method: french, german or american")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json or yaml")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also write the schedule to this PDF file")
	return cmd
}
