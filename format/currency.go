// Package format renders schedule amounts for display.
package format

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/strongo/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultLocale   = "es-PE"
	DefaultCurrency = "PEN"
)

// symbols overrides the CLDR narrow symbol where the local convention
// differs.
var symbols = map[string]string{
	"PEN": "S/",
	"USD": "$",
	"EUR": "€",
	"NIO": "C$",
}

type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
	symbol  string
}

// NewFormatter builds a Formatter for a BCP 47 locale and an ISO 4217
// currency code.
func NewFormatter(locale, currencyCode string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errors.Wrapf(err, "locale %q", locale)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, errors.Wrapf(err, "currency %q", currencyCode)
	}
	symbol, ok := symbols[unit.String()]
	if !ok {
		symbol = unit.String()
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
		symbol:  symbol,
	}, nil
}

// MustFormatter is NewFormatter for known-good arguments.
func MustFormatter(locale, currencyCode string) *Formatter {
	f, err := NewFormatter(locale, currencyCode)
	if err != nil {
		panic(err)
	}
	return f
}

// Currency returns the ISO code of the formatter's currency.
func (f *Formatter) Currency() string {
	return f.unit.String()
}

// Cents converts amount to a cent-precision decimal, rounding half away
// from zero.
func Cents(amount float64) decimal.Decimal64p2 {
	return decimal.Decimal64p2(math.Round(amount * 100))
}

// Round returns amount rounded to cents.
func Round(amount float64) float64 {
	return Cents(amount).AsFloat64()
}

// ParseAmount parses a user supplied amount with at most two fractional
// digits, e.g. "10000" or "2500.50". More precise values are rejected
// rather than rounded.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > 2 {
		return 0, errors.Errorf("amount %q has more than two decimals", s)
	}
	d, err := decimal.ParseDecimal64p2(s)
	if err != nil {
		return 0, errors.Wrapf(err, "amount %q", s)
	}
	return d.AsFloat64(), nil
}

// Number renders amount with two fractional digits and locale grouping.
func (f *Formatter) Number(amount float64) string {
	return f.printer.Sprintf("%.2f", Round(amount))
}

// Format renders amount as a currency string, e.g. "S/ 10,000.00".
func (f *Formatter) Format(amount float64) string {
	s := f.Number(amount)
	if strings.HasPrefix(s, "-") {
		return "-" + f.symbol + " " + s[1:]
	}
	return f.symbol + " " + s
}
