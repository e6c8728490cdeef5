package dashboard

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formats amounts as currency for a locale.
type Formatter struct {
	unit   currency.Unit
	tag    language.Tag
	symbol string
	scale  int
}

// NewFormatter returns a formatter for the ISO 4217 currency code and the
// BCP 47 locale, e.g. "BRL" and "pt-BR".
func NewFormatter(code, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	scale, _ := currency.Standard.Rounding(unit)

	return &Formatter{
		unit:   unit,
		tag:    tag,
		symbol: message.NewPrinter(tag).Sprint(currency.Symbol(unit)),
		scale:  scale,
	}, nil
}

// Currency returns the ISO 4217 code of the currency.
func (f *Formatter) Currency() string {
	return f.unit.String()
}

// Format returns the amount with the currency symbol and the number
// formatted for the locale.
func (f *Formatter) Format(amount decimal.Decimal) string {
	p := message.NewPrinter(f.tag)
	return f.symbol + " " + p.Sprint(number.Decimal(amount.InexactFloat64(), number.Scale(f.scale)))
}
