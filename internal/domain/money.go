package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is the single currency every balance is held in.
const Currency = "BWP"

var (
	SavingsInterestRate             = decimal.RequireFromString("0.0005")
	InvestmentInterestRate          = decimal.RequireFromString("0.05")
	InvestmentMinimumOpeningBalance = decimal.RequireFromString("500.00")
)

// RoundMoney rounds to the two decimal places the ledger stores.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ValidAmount reports whether d is a positive amount with no sub-cent digits.
func ValidAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(RoundMoney(d))
}

func FormatMoney(d decimal.Decimal) string {
	return fmt.Sprintf("%s %s", Currency, d.StringFixed(2))
}
