package domain

// Comparison holds the schedules of every method for the same loan.
type Comparison struct {
	Principal         float64    `json:"principal" yaml:"principal"`
	TermMonths        int        `json:"term_months" yaml:"term_months"`
	AnnualRatePercent float64    `json:"annual_rate" yaml:"annual_rate"`
	Schedules         []Schedule `json:"schedules" yaml:"schedules"`
	Cheapest          Method     `json:"cheapest" yaml:"cheapest"`
}

// Schedule returns the schedule computed for m.
func (c Comparison) Schedule(m Method) (Schedule, bool) {
	for _, s := range c.Schedules {
		if s.Parameters.Method == m {
			return s, true
		}
	}
	return Schedule{}, false
}
