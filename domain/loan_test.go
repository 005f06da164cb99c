package domain

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestParseMethod(t *testing.T) {
	is := is.New(t)

	for input, expected := range map[string]Method{
		"french":    MethodFrench,
		"Frances":   MethodFrench,
		" GERMAN ":  MethodGerman,
		"aleman":    MethodGerman,
		"american":  MethodAmerican,
		"americano": MethodAmerican,
	} {
		m, err := ParseMethod(input)
		is.NoErr(err)
		is.Equal(m, expected)
	}
}

func TestParseMethod_Unknown(t *testing.T) {
	is := is.New(t)

	_, err := ParseMethod("italian")
	is.True(errors.Is(err, ErrUnknownMethod))
	is.True(!Method("italian").Valid())
}

func TestComparison_Schedule(t *testing.T) {
	is := is.New(t)

	c := Comparison{Schedules: []Schedule{
		{Parameters: LoanParameters{Method: MethodFrench}},
		{Parameters: LoanParameters{Method: MethodGerman}},
	}}
	s, ok := c.Schedule(MethodGerman)
	is.True(ok)
	is.Equal(s.Parameters.Method, MethodGerman)

	_, ok = c.Schedule(MethodAmerican)
	is.True(!ok)
}
