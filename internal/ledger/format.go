package ledger

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency selects one of the two currencies of a trip.
type Currency int

const (
	Primary Currency = iota
	Secondary
)

// Default currency codes.
const (
	DefaultPrimary   = "JPY"
	DefaultSecondary = "TWD"
)

var half = decimal.NewFromFloat(0.5)

// Formatter renders amounts in whole units of the trip currencies. Symbols and
// separators come from the ISO currency table.
type Formatter struct {
	primary   *money.Currency
	secondary *money.Currency
}

// NewFormatter returns a formatter for the given ISO 4217 codes.
func NewFormatter(primaryCode, secondaryCode string) (*Formatter, error) {
	p := money.GetCurrency(strings.ToUpper(primaryCode))
	if p == nil {
		return nil, fmt.Errorf("unknown currency %q", primaryCode)
	}
	s := money.GetCurrency(strings.ToUpper(secondaryCode))
	if s == nil {
		return nil, fmt.Errorf("unknown currency %q", secondaryCode)
	}
	return &Formatter{primary: p, secondary: s}, nil
}

var defaultFormatter, _ = NewFormatter(DefaultPrimary, DefaultSecondary)

// FormatAmount formats value with the default currencies.
func FormatAmount(value float64, c Currency, rate float64) string {
	return defaultFormatter.Format(value, c, rate)
}

// Format renders value, given in the primary currency, as a rounded integer.
// The secondary currency shows round(value*rate). Halves round up.
func (f *Formatter) Format(value float64, c Currency, rate float64) string {
	amount := decimal.NewFromFloat(value)
	cur := f.primary
	if c == Secondary {
		amount = amount.Mul(decimal.NewFromFloat(rate))
		cur = f.secondary
	}
	units := RoundHalfUp(amount)
	return money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, "$1").Format(units)
}

// Code returns the ISO code of c.
func (f *Formatter) Code(c Currency) string {
	if c == Secondary {
		return f.secondary.Code
	}
	return f.primary.Code
}

// RoundHalfUp rounds to the nearest integer, halves towards positive infinity.
func RoundHalfUp(d decimal.Decimal) int64 {
	return d.Add(half).Floor().IntPart()
}
