package summary

import (
	"github.com/finance-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

func sumOfType(transactions []models.Transaction, t models.TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for _, transaction := range transactions {
		if transaction.Type == t {
			sum = sum.Add(transaction.Amount)
		}
	}

	return sum
}

// TotalIncome returns the sum of all income transactions.
func TotalIncome(transactions []models.Transaction) decimal.Decimal {
	return sumOfType(transactions, models.TransactionTypeIncome)
}

// TotalExpenses returns the sum of all expense transactions.
func TotalExpenses(transactions []models.Transaction) decimal.Decimal {
	return sumOfType(transactions, models.TransactionTypeExpense)
}

// Balance is the total income minus the total expenses.
func Balance(transactions []models.Transaction) decimal.Decimal {
	return TotalIncome(transactions).Sub(TotalExpenses(transactions))
}

// percentage returns part/whole*100 or 0 if whole is not positive.
func percentage(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}

	return part.Div(whole).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// roundCapped rounds the percentage and caps it to 100 for display.
func roundCapped(p float64) int {
	rounded := int(decimal.NewFromFloat(p).Round(0).IntPart())
	if rounded > 100 {
		return 100
	}

	return rounded
}
