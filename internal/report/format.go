package report

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale groups digits the Indian way (1,50,000).
const DefaultLocale = "en-IN"

// Formatter renders rupee amounts for a locale.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter(locale string) (*Formatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}

	return &Formatter{printer: message.NewPrinter(tag)}, nil
}

// INR formats d with the rupee sign. Whole amounts drop the fraction.
func (f *Formatter) INR(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return "₹" + f.printer.Sprintf("%d", d.IntPart())
	}

	return "₹" + f.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// Percent formats p without trailing zeros.
func Percent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}
