package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"loan-simulator/domain"
)

// CompareMethods computes the schedule of every method for the same loan
// and reports the one with the lowest total interest.
func (s *LoanService) CompareMethods(
	ctx context.Context,
	principal float64,
	termMonths int,
	annualRatePercent float64,
) (domain.Comparison, error) {

	schedules := make([]domain.Schedule, len(domain.Methods))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range domain.Methods {
		i, m := i, m
		g.Go(func() error {
			schedule, err := s.CalculateSchedule(gctx, domain.LoanParameters{
				Principal:         principal,
				TermMonths:        termMonths,
				AnnualRatePercent: annualRatePercent,
				Method:            m,
			})
			if err != nil {
				return err
			}
			schedules[i] = schedule
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Comparison{}, err
	}

	cheapest := schedules[0]
	for _, sch := range schedules[1:] {
		if sch.Summary.TotalInterest < cheapest.Summary.TotalInterest {
			cheapest = sch
		}
	}

	return domain.Comparison{
		Principal:         principal,
		TermMonths:        termMonths,
		AnnualRatePercent: annualRatePercent,
		Schedules:         schedules,
		Cheapest:          cheapest.Parameters.Method,
	}, nil
}
