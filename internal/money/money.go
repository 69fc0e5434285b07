// Package money renders amounts as currency strings for a locale.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultCurrency = "INR"
	DefaultLocale   = "en-IN"
)

// Formatter formats amounts in one currency for one locale.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// New returns a Formatter for the ISO 4217 currency code and the BCP 47 locale.
func New(code, locale string) (Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	return Formatter{
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

// Default returns the Formatter for Indian Rupees.
func Default() Formatter {
	f, _ := New(DefaultCurrency, DefaultLocale)
	return f
}

// Currency returns the ISO code of the currency.
func (f Formatter) Currency() string {
	return f.unit.String()
}

// Symbol returns the locale specific currency symbol, e.g. "₹".
func (f Formatter) Symbol() string {
	return f.printer.Sprint(currency.Symbol(f.unit))
}

// Format renders the amount with the currency symbol and locale grouping,
// e.g. "₹5,000" or "-₹12.50".
func (f Formatter) Format(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	value, _ := amount.Round(2).Float64()
	return sign + f.Symbol() + f.printer.Sprint(number.Decimal(value, number.MaxFractionDigits(2)))
}
