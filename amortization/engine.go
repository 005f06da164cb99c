// Package amortization computes loan amortization schedules.
//
// Every function here is pure: identical inputs always produce an identical
// schedule and nothing is shared between calls.
package amortization

import (
	"math"

	"github.com/pkg/errors"

	"loan-simulator/domain"
)

// MaxTermMonths is the longest term a schedule can be computed for.
const MaxTermMonths = 600

// MonthlyRate converts an annual nominal rate in percent to a monthly
// fraction.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 12 / 100
}

// FixedPayment returns the constant installment of the French method.
func FixedPayment(principal float64, termMonths int, monthlyRate float64) float64 {
	n := float64(termMonths)
	if monthlyRate == 0 {
		return principal / n
	}
	// 1 - (1+i)^-n, written so it keeps its precision as i approaches 0.
	discount := -math.Expm1(-n * math.Log1p(monthlyRate))
	if !(discount > 0) || math.IsInf(discount, 0) {
		return principal / n
	}
	return principal * monthlyRate / discount
}

// Validate checks the parameters in the order principal, term, rate, method
// and returns the first failure.
func Validate(p domain.LoanParameters) error {
	if !(p.Principal > 0) || math.IsInf(p.Principal, 0) {
		return errors.Wrapf(domain.ErrInvalidPrincipal, "principal %v must be positive", p.Principal)
	}
	if p.TermMonths <= 0 {
		return errors.Wrapf(domain.ErrInvalidTerm, "term %d must be at least one month", p.TermMonths)
	}
	if p.TermMonths > MaxTermMonths {
		return errors.Wrapf(domain.ErrInvalidTerm, "term %d exceeds the maximum of %d months", p.TermMonths, MaxTermMonths)
	}
	if !(p.AnnualRatePercent >= 0) || math.IsInf(p.AnnualRatePercent, 0) {
		return errors.Wrapf(domain.ErrInvalidRate, "annual rate %v must not be negative", p.AnnualRatePercent)
	}
	if !p.Method.Valid() {
		return errors.Wrapf(domain.ErrUnknownMethod, "%q", string(p.Method))
	}
	return nil
}

// ComputeSchedule builds the full amortization schedule for p.
func ComputeSchedule(p domain.LoanParameters) (domain.Schedule, error) {
	if err := Validate(p); err != nil {
		return domain.Schedule{}, err
	}

	rate := MonthlyRate(p.AnnualRatePercent)
	n := p.TermMonths
	installments := make([]domain.Installment, 0, n)

	var fixed float64
	if p.Method == domain.MethodFrench {
		fixed = FixedPayment(p.Principal, n, rate)
	}

	balance := p.Principal
	for k := 1; k <= n; k++ {
		interest := balance * rate
		var capital, total float64

		switch p.Method {
		case domain.MethodFrench:
			capital = fixed - interest
			total = fixed
		case domain.MethodGerman:
			capital = p.Principal / float64(n)
			total = capital + interest
		case domain.MethodAmerican:
			if k == n {
				capital = p.Principal
			}
			total = capital + interest
		}

		balance = math.Max(0, balance-capital)
		installments = append(installments, domain.Installment{
			Period:   k,
			Capital:  capital,
			Interest: interest,
			Total:    total,
			Balance:  balance,
		})
	}

	return domain.Schedule{
		Parameters:   p,
		MonthlyRate:  rate,
		Installments: installments,
		Summary:      Summarize(p.Principal, installments),
	}, nil
}

// Summarize derives the aggregate totals of a schedule.
func Summarize(principal float64, installments []domain.Installment) domain.Summary {
	var s domain.Summary
	for _, in := range installments {
		s.TotalInterest += in.Interest
		s.TotalCapital += in.Capital
	}
	s.TotalPayable = principal + s.TotalInterest
	if len(installments) > 0 {
		s.FirstInstallment = installments[0].Total
	}
	return s
}
