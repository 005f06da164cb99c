package service

import (
	"context"
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/strongo/log"

	"loan-simulator/domain"
)

var (
	ErrInvalidTermRange  = errors.New("invalid term range")
	ErrInvalidPayment    = errors.New("invalid maximum monthly payment")
	ErrUnknownPreference = errors.New("unknown preference")
	ErrNoFeasibleTerm    = errors.New("no term fits the maximum monthly payment")
)

type TermRecommendationService struct {
	loanService *LoanService
}

func NewTermRecommendationService(loanService *LoanService) *TermRecommendationService {
	return &TermRecommendationService{loanService: loanService}
}

// RecommendTerm evaluates every term in the input range and ranks the ones
// whose first installment is affordable, best first.
func (s *TermRecommendationService) RecommendTerm(
	ctx context.Context,
	input domain.TermRecommendationInput,
) (domain.TermRecommendationResult, error) {

	if !(input.Principal > 0) {
		return domain.TermRecommendationResult{}, domain.ErrInvalidPrincipal
	}
	if !(input.AnnualRatePercent >= 0) {
		return domain.TermRecommendationResult{}, domain.ErrInvalidRate
	}
	if !input.Method.Valid() {
		return domain.TermRecommendationResult{}, domain.ErrUnknownMethod
	}
	if input.MinTermMonths < MinTermMonths || input.MaxTermMonths < input.MinTermMonths {
		return domain.TermRecommendationResult{}, ErrInvalidTermRange
	}
	if input.MaxTermMonths > MaxTermMonths {
		return domain.TermRecommendationResult{}, errors.Wrapf(ErrInvalidTermRange, "maximum term exceeds %d months", MaxTermMonths)
	}
	if input.MaxTermMonths-input.MinTermMonths > MaxTermRangeMonths {
		return domain.TermRecommendationResult{}, errors.Wrapf(ErrInvalidTermRange, "range wider than %d months", MaxTermRangeMonths)
	}
	if !(input.MaxMonthlyPayment > 0) {
		return domain.TermRecommendationResult{}, ErrInvalidPayment
	}
	switch input.Preference {
	case domain.PreferenceMinimizeInterest, domain.PreferenceMinimizePayment, domain.PreferenceBalanced:
	default:
		return domain.TermRecommendationResult{}, ErrUnknownPreference
	}

	recommendations := []domain.TermRecommendation{}
	for term := input.MinTermMonths; term <= input.MaxTermMonths; term++ {
		schedule, err := s.loanService.CalculateSchedule(ctx, domain.LoanParameters{
			Principal:         input.Principal,
			TermMonths:        term,
			AnnualRatePercent: input.AnnualRatePercent,
			Method:            input.Method,
		})
		if err != nil {
			return domain.TermRecommendationResult{}, errors.Wrapf(err, "term %d", term)
		}
		if schedule.Summary.FirstInstallment > input.MaxMonthlyPayment {
			continue
		}
		recommendations = append(recommendations, domain.TermRecommendation{
			TermMonths:       term,
			FirstInstallment: schedule.Summary.FirstInstallment,
			TotalInterest:    schedule.Summary.TotalInterest,
			Reason:           reasonFor(input.Preference),
		})
	}

	if len(recommendations) == 0 {
		return domain.TermRecommendationResult{}, ErrNoFeasibleTerm
	}

	score(recommendations, input)
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	log.Debugf(ctx, "evaluated %d terms, %d feasible", input.MaxTermMonths-input.MinTermMonths+1, len(recommendations))

	return domain.TermRecommendationResult{
		RecommendedTerm: recommendations[0].TermMonths,
		Recommendations: recommendations,
	}, nil
}

// score assigns each recommendation a 0..10 score relative to the other
// feasible terms.
func score(recs []domain.TermRecommendation, input domain.TermRecommendationInput) {
	minInterest, maxInterest := math.Inf(1), math.Inf(-1)
	minPayment, maxPayment := math.Inf(1), math.Inf(-1)
	minTerm, maxTerm := recs[0].TermMonths, recs[len(recs)-1].TermMonths
	for _, r := range recs {
		minInterest = math.Min(minInterest, r.TotalInterest)
		maxInterest = math.Max(maxInterest, r.TotalInterest)
		minPayment = math.Min(minPayment, r.FirstInstallment)
		maxPayment = math.Max(maxPayment, r.FirstInstallment)
	}

	for i := range recs {
		interestScore := normalize(recs[i].TotalInterest, minInterest, maxInterest)
		paymentScore := normalize(recs[i].FirstInstallment, minPayment, maxPayment)
		termScore := normalize(float64(recs[i].TermMonths), float64(minTerm), float64(maxTerm))

		var s float64
		switch input.Preference {
		case domain.PreferenceMinimizeInterest:
			s = 0.6*interestScore + 0.2*paymentScore + 0.2*termScore
		case domain.PreferenceMinimizePayment:
			s = 0.2*interestScore + 0.6*paymentScore + 0.2*termScore
		default:
			s = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
		}
		recs[i].Score = math.Round(s*100) / 100
	}
}

// normalize maps v in [lo, hi] to 10 (at lo) .. 0 (at hi).
func normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 10
	}
	return 10 * (1 - (v-lo)/(hi-lo))
}

func reasonFor(p domain.Preference) string {
	switch p {
	case domain.PreferenceMinimizeInterest:
		return "term optimized to minimize total interest"
	case domain.PreferenceMinimizePayment:
		return "term optimized to minimize the monthly installment"
	}
	return "balance between monthly installment and total cost"
}
