// Package money provides the value types and pure functions the ledger uses
// for amounts, installment splitting and due-date schedules.
//
// Amounts are stored as integer counts of the currency's smallest unit, so
// every sum in the ledger is exact. Decimal strings only appear at the edges
// (wire messages, logs) and are converted with Parse and Amount.Format.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a quantity of money in minor units (cents for USD/EUR).
type Amount int64

// Currencies whose minor unit is not the usual 1/100.
var minorUnitOverrides = map[string]int32{
	"JPY": 0,
	"KRW": 0,
	"CLP": 0,
	"VND": 0,
	"ISK": 0,
	"BHD": 3,
	"KWD": 3,
	"OMR": 3,
	"JOD": 3,
	"TND": 3,
}

// MaxAmount is the largest magnitude the ledger accepts for a single amount,
// in minor units. Thousands of such amounts still sum inside an int64.
const MaxAmount Amount = 1_000_000_000_000_000

var maxAmount = decimal.NewFromInt(int64(MaxAmount))

// MinorUnits returns the number of fractional digits used by currency.
func MinorUnits(currency string) int32 {
	if units, ok := minorUnitOverrides[currency]; ok {
		return units
	}
	return 2
}

// ValidateCurrency checks that currency is a three-letter upper-case code.
func ValidateCurrency(currency string) error {
	if len(currency) != 3 {
		return fmt.Errorf("currency %q must be a 3-letter code", currency)
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("currency %q must be upper-case letters", currency)
		}
	}
	return nil
}

// Parse converts a decimal string such as "12.30" into an Amount for currency.
// It rejects values with more fractional digits than the currency allows.
func Parse(s, currency string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("amount is empty")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	minor := d.Shift(MinorUnits(currency))
	if !minor.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than %d decimal places for %s", s, MinorUnits(currency), currency)
	}
	if minor.Abs().GreaterThan(maxAmount) {
		return 0, fmt.Errorf("amount %q is out of range", s)
	}
	return Amount(minor.IntPart()), nil
}

// CheckRange rejects amounts whose magnitude exceeds MaxAmount.
func CheckRange(a Amount) error {
	if a > MaxAmount || a < -MaxAmount {
		return fmt.Errorf("amount %d is out of range", a)
	}
	return nil
}

// MustParse is Parse for literals in tests and fixtures. It panics on error.
func MustParse(s, currency string) Amount {
	a, err := Parse(s, currency)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the amount as a decimal in major units of currency.
func (a Amount) Decimal(currency string) decimal.Decimal {
	return decimal.New(int64(a), -MinorUnits(currency))
}

// Format renders the amount with exactly the currency's number of decimals.
func (a Amount) Format(currency string) string {
	return a.Decimal(currency).StringFixed(MinorUnits(currency))
}

// Abs returns the absolute value of a.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

// Sum adds up amounts.
func Sum(amounts ...Amount) Amount {
	var total Amount
	for _, a := range amounts {
		total += a
	}
	return total
}

// Min returns the smaller of a and b.
func Min(a, b Amount) Amount {
	if a < b {
		return a
	}
	return b
}
