package format

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money formats whole currency amounts with a symbol prefix and locale-grouped digits.
// Example: NewMoney("₦", "en").Format(12500) => "₦12,500"
type Money struct {
	symbol  string
	printer *message.Printer
}

// NewMoney builds a formatter for the given currency symbol and BCP 47 locale.
// Unparseable locales fall back to English grouping.
func NewMoney(symbol, locale string) Money {
	return Money{
		symbol:  symbol,
		printer: message.NewPrinter(parseLocale(locale)),
	}
}

// Format renders amount, e.g. "₦1,000". Negative amounts keep the sign before the symbol.
func (m Money) Format(amount int64) string {
	if m.printer == nil {
		m.printer = message.NewPrinter(language.English)
	}
	if amount < 0 {
		return "-" + m.symbol + m.printer.Sprintf("%d", -amount)
	}
	return m.symbol + m.printer.Sprintf("%d", amount)
}

// Symbol returns the configured currency symbol.
func (m Money) Symbol() string { return m.symbol }

// Price is a convenience for one-off formatting.
func Price(amount int64, symbol, locale string) string {
	return NewMoney(symbol, locale).Format(amount)
}

func parseLocale(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}
