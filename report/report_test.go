package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"

	"loan-simulator/amortization"
	"loan-simulator/domain"
	"loan-simulator/format"
)

func schedule(t *testing.T, m domain.Method, term int) domain.Schedule {
	t.Helper()
	s, err := amortization.ComputeSchedule(domain.LoanParameters{
		Principal:         10000,
		TermMonths:        term,
		AnnualRatePercent: 24,
		Method:            m,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestRenderTable(t *testing.T) {
	is := is.New(t)
	f := format.MustFormatter("en-US", "USD")

	var buf bytes.Buffer
	is.NoErr(RenderTable(&buf, schedule(t, domain.MethodGerman, 12), f))

	out := buf.String()
	is.True(strings.Contains(out, "German"))
	is.True(strings.Contains(out, "Installment"))
	is.True(strings.Contains(out, "$ 1,033.33"))
	is.True(strings.Contains(out, "$ 850.00"))
	is.True(strings.Contains(out, "$ 11,300.00"))
}

func TestRenderComparison(t *testing.T) {
	is := is.New(t)
	f := format.MustFormatter("en-US", "USD")
	c := domain.Comparison{
		Principal:         10000,
		TermMonths:        12,
		AnnualRatePercent: 24,
		Schedules: []domain.Schedule{
			schedule(t, domain.MethodFrench, 12),
			schedule(t, domain.MethodGerman, 12),
			schedule(t, domain.MethodAmerican, 12),
		},
		Cheapest: domain.MethodGerman,
	}

	var buf bytes.Buffer
	is.NoErr(RenderComparison(&buf, c, f))
	out := buf.String()
	is.True(strings.Contains(out, "French"))
	is.True(strings.Contains(out, "American"))
	is.True(strings.Contains(out, "Lowest total interest: German"))
}

func TestWritePDF(t *testing.T) {
	is := is.New(t)
	f := format.MustFormatter(format.DefaultLocale, format.DefaultCurrency)

	var buf bytes.Buffer
	// long enough to span several pages
	is.NoErr(WritePDF(&buf, schedule(t, domain.MethodFrench, 120), f))
	is.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestMethodTitle(t *testing.T) {
	is := is.New(t)
	is.Equal(MethodTitle(domain.MethodAmerican), "American (balloon)")
	is.Equal(MethodTitle("other"), "other")
}
