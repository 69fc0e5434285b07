package summary

import (
	"fmt"

	"github.com/finance-tracker/backend/internal/money"
	"github.com/shopspring/decimal"
)

// Recommendations returns the list of saving advice shown on the dashboard.
//
// The advice is static, only the amounts are rendered in the configured currency.
func Recommendations(f money.Formatter) []string {
	return []string{
		fmt.Sprintf("Based on your spending pattern, you could save %s by reducing dining out expenses.", f.Format(decimal.NewFromInt(5000))),
		"You've spent 85% of your entertainment budget already. Consider planning free activities for the rest of the month.",
		"Your electricity bill is higher than average. Consider energy-saving measures to reduce costs.",
		fmt.Sprintf("You have %s in your savings account. Consider investing in a fixed deposit for better returns.", f.Format(decimal.NewFromInt(50000))),
		fmt.Sprintf("Based on your income, you should aim to save at least %s per month for your emergency fund.", f.Format(decimal.NewFromInt(15000))),
	}
}
