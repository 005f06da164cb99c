package service

import "loan-simulator/amortization"

const (
	MaxLoanAmount   = 1_000_000_000.0
	MaxInterestRate = 1000.0 // percent per year
	MaxTermMonths   = amortization.MaxTermMonths
	MinTermMonths   = 1

	// Widest term range RecommendTerm evaluates in one call.
	MaxTermRangeMonths = 120
)
