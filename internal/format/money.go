// Package format renders amounts for people: pounds with thousands
// separators and a leading sign for changes.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BritishEnglish)

// Money formats d as £1,234.56, with a leading minus for negatives.
func Money(d decimal.Decimal) string {
	r := d.Round(2)
	if r.IsNegative() {
		return "-" + pounds(r.Neg())
	}
	return pounds(r)
}

// Change formats d like Money but always signed, e.g. +£288.00.
func Change(d decimal.Decimal) string {
	r := d.Round(2)
	if r.IsPositive() {
		return "+" + pounds(r)
	}
	return Money(r)
}

// Percent formats a fraction such as 0.107 as 10.7%.
func Percent(f float64) string {
	return printer.Sprintf("%.1f%%", f*100)
}

// Number formats a plain figure with two decimals and grouping.
func Number(f float64) string {
	return printer.Sprintf("%.2f", f)
}

func pounds(d decimal.Decimal) string {
	return printer.Sprintf("£%.2f", d.InexactFloat64())
}
