package models

import "github.com/shopspring/decimal"

// AmountScale is the maximum number of decimal places of an amount.
//
// Amounts are stored as their decimal string, they round-trip exactly.
const AmountScale = 8

// ValidateAmount verifies that d is positive and has at most AmountScale
// decimal places. name describes the amount in the error message.
func ValidateAmount(name string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return Validationf("the %s must be greater than zero", name)
	}

	if !d.Equal(d.Truncate(AmountScale)) {
		return Validationf("the %s must not have more than %d decimal places", name, AmountScale)
	}

	return nil
}
