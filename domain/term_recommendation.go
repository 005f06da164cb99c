package domain

type Preference string

const (
	PreferenceMinimizeInterest Preference = "minimize_interest"
	PreferenceMinimizePayment  Preference = "minimize_payment"
	PreferenceBalanced         Preference = "balanced"
)

type TermRecommendationInput struct {
	Principal         float64    `json:"principal"`
	AnnualRatePercent float64    `json:"annual_rate"`
	Method            Method     `json:"method"`
	MinTermMonths     int        `json:"min_term_months"`
	MaxTermMonths     int        `json:"max_term_months"`
	MaxMonthlyPayment float64    `json:"max_monthly_payment"`
	Preference        Preference `json:"preference"`
}

type TermRecommendation struct {
	TermMonths       int     `json:"term_months"`
	FirstInstallment float64 `json:"first_installment"`
	TotalInterest    float64 `json:"total_interest"`
	Score            float64 `json:"score"`
	Reason           string  `json:"reason"`
}

type TermRecommendationResult struct {
	RecommendedTerm int                  `json:"recommended_term"`
	Recommendations []TermRecommendation `json:"recommendations"`
}
