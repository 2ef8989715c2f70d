// Package money formats sterling amounts for broker-facing output.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BritishEnglish)

// GBP renders a whole-pound amount with thousands grouping, e.g. "£250,000".
func GBP(amount float64) string {
	return printer.Sprintf("£%d", int64(amount))
}

// Range renders an amount range, e.g. "£5,000 - £250,000".
func Range(min, max float64) string {
	return printer.Sprintf("£%d - £%d", int64(min), int64(max))
}

// Percent renders a commission band, e.g. "1.5%-3.0%".
func Percent(min, max float64) string {
	return printer.Sprintf("%.1f%%-%.1f%%", min, max)
}
