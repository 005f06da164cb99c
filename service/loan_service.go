package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sanity-io/litter"
	"github.com/strongo/log"

	"loan-simulator/amortization"
	"loan-simulator/domain"
	"loan-simulator/repository"
)

type LoanService struct {
	cache repository.CacheRepository
}

// NewLoanService creates a LoanService that memoizes schedules in cache.
func NewLoanService(cache repository.CacheRepository) *LoanService {
	return &LoanService{cache: cache}
}

func checkLimits(p domain.LoanParameters) error {
	if p.Principal > MaxLoanAmount {
		return errors.Wrapf(domain.ErrInvalidPrincipal, "principal exceeds the maximum of %.2f", MaxLoanAmount)
	}
	if p.AnnualRatePercent > MaxInterestRate {
		return errors.Wrapf(domain.ErrInvalidRate, "annual rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	return nil
}

func cacheKey(p domain.LoanParameters) string {
	return fmt.Sprintf("schedule:%s:%v:%d:%v", p.Method, p.Principal, p.TermMonths, p.AnnualRatePercent)
}

// CalculateSchedule returns the amortization schedule for p.
func (s *LoanService) CalculateSchedule(
	ctx context.Context,
	p domain.LoanParameters,
) (domain.Schedule, error) {

	if err := amortization.Validate(p); err != nil {
		return domain.Schedule{}, err
	}
	if err := checkLimits(p); err != nil {
		return domain.Schedule{}, err
	}

	key := cacheKey(p)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var schedule domain.Schedule
		err := json.Unmarshal([]byte(cached), &schedule)
		if err == nil {
			log.Debugf(ctx, "schedule cache hit: %s", key)
			return schedule, nil
		}
		log.Warningf(ctx, "discarding corrupt cache entry %s: %v", key, err)
	}

	log.Debugf(ctx, "computing schedule: %s", litter.Sdump(p))
	schedule, err := amortization.ComputeSchedule(p)
	if err != nil {
		return domain.Schedule{}, err
	}

	// Caching is best effort.
	if encoded, err := json.Marshal(schedule); err != nil {
		log.Warningf(ctx, "failed to encode schedule %s: %v", key, err)
	} else if err := s.cache.Set(ctx, key, string(encoded)); err != nil {
		log.Warningf(ctx, "failed to cache schedule %s: %v", key, err)
	}

	return schedule, nil
}
