package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"loan-simulator/domain"
	"loan-simulator/format"
)

const (
	pdfMargin    = 15.0
	pdfRowHeight = 6.0
)

// WritePDF renders the schedule as an A4 document.
func WritePDF(w io.Writer, s domain.Schedule, f *format.Formatter) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	// Core fonts are cp1252; the translator keeps symbols like € intact.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pdfMargin
	widths := []float64{18, 0, 0, 0, 0}
	for i := 1; i < len(widths); i++ {
		widths[i] = (contentWidth - widths[0]) / 4
	}

	header := func() {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(255, 237, 213)
		for i, title := range []string{"Month", "Capital", "Interest", "Installment", "Balance"} {
			pdf.CellFormat(widths[i], pdfRowHeight+1, title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(contentWidth, 10, "Loan Simulation", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	p := s.Parameters
	pdf.SetFont("Arial", "", 11)
	for _, line := range []string{
		fmt.Sprintf("Method: %s", MethodTitle(p.Method)),
		fmt.Sprintf("Principal: %s", f.Format(p.Principal)),
		fmt.Sprintf("Term: %d months", p.TermMonths),
		fmt.Sprintf("Annual rate: %.2f%% (monthly %.4f%%)", p.AnnualRatePercent, s.MonthlyRate*100),
	} {
		pdf.CellFormat(contentWidth, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	header()
	_, pageHeight := pdf.GetPageSize()
	for i, in := range s.Installments {
		if pdf.GetY()+pdfRowHeight > pageHeight-pdfMargin {
			pdf.AddPage()
			header()
		}
		fill := i%2 == 1
		pdf.SetFillColor(249, 250, 251)
		pdf.CellFormat(widths[0], pdfRowHeight, fmt.Sprintf("%d", in.Period), "LR", 0, "C", fill, 0, "")
		for j, v := range []float64{in.Capital, in.Interest, in.Total, in.Balance} {
			pdf.CellFormat(widths[j+1], pdfRowHeight, tr(f.Format(v)), "LR", 0, "R", fill, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.CellFormat(contentWidth, 0, "", "T", 1, "", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	for _, line := range []string{
		fmt.Sprintf("First installment: %s", f.Format(s.Summary.FirstInstallment)),
		fmt.Sprintf("Total interest: %s", f.Format(s.Summary.TotalInterest)),
		fmt.Sprintf("Total payable: %s", f.Format(s.Summary.TotalPayable)),
	} {
		pdf.CellFormat(contentWidth, 7, tr(line), "", 1, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "failed to write pdf")
	}
	return nil
}
