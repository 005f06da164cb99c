package domain

import (
	"errors"
	"strings"
)

// Method is an amortization convention.
type Method string

const (
	MethodFrench   Method = "french"
	MethodGerman   Method = "german"
	MethodAmerican Method = "american"
)

// Methods lists every supported method in display order.
var Methods = []Method{MethodFrench, MethodGerman, MethodAmerican}

var (
	ErrInvalidPrincipal = errors.New("invalid principal")
	ErrInvalidTerm      = errors.New("invalid term")
	ErrInvalidRate      = errors.New("invalid rate")
	ErrUnknownMethod    = errors.New("unknown amortization method")
)

var methodAliases = map[string]Method{
	"french":    MethodFrench,
	"frances":   MethodFrench,
	"francés":   MethodFrench,
	"german":    MethodGerman,
	"aleman":    MethodGerman,
	"alemán":    MethodGerman,
	"american":  MethodAmerican,
	"americano": MethodAmerican,
}

// ParseMethod resolves a method name, accepting the Spanish names used by
// the simulator page as well.
func ParseMethod(s string) (Method, error) {
	m, ok := methodAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrUnknownMethod
	}
	return m, nil
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	switch m {
	case MethodFrench, MethodGerman, MethodAmerican:
		return true
	}
	return false
}

func (m Method) String() string {
	return string(m)
}

type LoanParameters struct {
	Principal         float64 `json:"principal" yaml:"principal"`
	TermMonths        int     `json:"term_months" yaml:"term_months"`
	AnnualRatePercent float64 `json:"annual_rate" yaml:"annual_rate"`
	Method            Method  `json:"method" yaml:"method"`
}

// Installment is one period of an amortization schedule.
type Installment struct {
	Period   int     `json:"period" yaml:"period"`
	Capital  float64 `json:"capital" yaml:"capital"`
	Interest float64 `json:"interest" yaml:"interest"`
	Total    float64 `json:"total" yaml:"total"`
	Balance  float64 `json:"balance" yaml:"balance"`
}

type Summary struct {
	TotalInterest    float64 `json:"total_interest" yaml:"total_interest"`
	TotalPayable     float64 `json:"total_payable" yaml:"total_payable"`
	TotalCapital     float64 `json:"total_capital" yaml:"total_capital"`
	FirstInstallment float64 `json:"first_installment" yaml:"first_installment"`
}

type Schedule struct {
	Parameters   LoanParameters `json:"parameters" yaml:"parameters"`
	MonthlyRate  float64        `json:"monthly_rate" yaml:"monthly_rate"`
	Installments []Installment  `json:"installments" yaml:"installments"`
	Summary      Summary        `json:"summary" yaml:"summary"`
}
