// Package report renders amortization schedules for people: a styled
// terminal table and a PDF document.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"loan-simulator/domain"
	"loan-simulator/format"
)

var (
	colorAccent = lipgloss.Color("#F97316") // orange
	colorMuted  = lipgloss.Color("#6B7280")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle = lipgloss.NewStyle().Bold(true)
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
)

var methodTitles = map[domain.Method]string{
	domain.MethodFrench:   "French (fixed installment)",
	domain.MethodGerman:   "German (fixed capital)",
	domain.MethodAmerican: "American (balloon)",
}

// MethodTitle returns a human readable name for m.
func MethodTitle(m domain.Method) string {
	if t, ok := methodTitles[m]; ok {
		return t
	}
	return string(m)
}

var columns = []struct {
	title string
	width int
}{
	{"Month", 6},
	{"Capital", 16},
	{"Interest", 16},
	{"Installment", 16},
	{"Balance", 16},
}

func cell(text string, width int, style lipgloss.Style) string {
	return style.Width(width).Align(lipgloss.Right).Render(text)
}

func row(style lipgloss.Style, values ...string) string {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = cell(v, columns[i].width, style)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// RenderTable writes the schedule as an aligned table followed by totals.
func RenderTable(w io.Writer, s domain.Schedule, f *format.Formatter) error {
	var b strings.Builder

	p := s.Parameters
	b.WriteString(titleStyle.Render(MethodTitle(p.Method)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s over %d months at %.2f%% per year (%.4f%% per month)",
		f.Format(p.Principal), p.TermMonths, p.AnnualRatePercent, s.MonthlyRate*100)))
	b.WriteString("\n\n")

	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.title
	}
	b.WriteString(row(headerStyle, titles...))
	b.WriteString("\n")

	plain := lipgloss.NewStyle()
	for _, in := range s.Installments {
		b.WriteString(row(plain,
			fmt.Sprintf("%d", in.Period),
			f.Format(in.Capital),
			f.Format(in.Interest),
			f.Format(in.Total),
			f.Format(in.Balance),
		))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(SummaryLines(s.Summary, f, totalStyle))

	_, err := io.WriteString(w, b.String())
	return err
}

// SummaryLines renders the schedule totals, one per line.
func SummaryLines(sum domain.Summary, f *format.Formatter, style lipgloss.Style) string {
	return style.Render(fmt.Sprintf("First installment: %s", f.Format(sum.FirstInstallment))) + "\n" +
		style.Render(fmt.Sprintf("Total interest:    %s", f.Format(sum.TotalInterest))) + "\n" +
		style.Render(fmt.Sprintf("Total payable:     %s", f.Format(sum.TotalPayable))) + "\n"
}

// RenderComparison writes one summary block per method and names the
// cheapest.
func RenderComparison(w io.Writer, c domain.Comparison, f *format.Formatter) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s over %d months at %.2f%% per year",
		f.Format(c.Principal), c.TermMonths, c.AnnualRatePercent)))
	b.WriteString("\n\n")

	for _, s := range c.Schedules {
		b.WriteString(headerStyle.Render(MethodTitle(s.Parameters.Method)))
		b.WriteString("\n")
		b.WriteString(SummaryLines(s.Summary, f, lipgloss.NewStyle()))
		b.WriteString("\n")
	}
	b.WriteString(totalStyle.Render("Lowest total interest: " + MethodTitle(c.Cheapest)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
