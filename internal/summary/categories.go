package summary

import (
	"strings"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// CategoryTotal is the sum of all expenses in a category.
type CategoryTotal struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"0fa3b0ce-6c5a-4f52-9f35-5f6b1fa3a9a1"`
	Name       string          `json:"name" example:"Food & Dining"`
	Icon       string          `json:"icon" example:"utensils"`
	Amount     decimal.Decimal `json:"amount" example:"6500"`
	Percentage float64         `json:"percentage" example:"42.5"`
	Color      Color           `json:"color"`
}

// TopExpenseCategories groups expenses by category and returns the n categories
// with the highest sums. Categories with the same sum are ordered by name.
//
// Percentages are relative to the total of all expenses.
func TopExpenseCategories(transactions []models.Transaction, categories []models.Category, n int) []CategoryTotal {
	byID := make(map[uuid.UUID]models.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	index := make(map[uuid.UUID]int)
	totals := []CategoryTotal{}

	for _, transaction := range transactions {
		if transaction.Type != models.TransactionTypeExpense {
			continue
		}

		i, ok := index[transaction.CategoryID]
		if !ok {
			category := byID[transaction.CategoryID]
			index[transaction.CategoryID] = len(totals)
			totals = append(totals, CategoryTotal{
				CategoryID: transaction.CategoryID,
				Name:       category.Name,
				Icon:       category.Icon,
				Amount:     transaction.Amount,
				Color:      CategoryColor(category.Name),
			})
			continue
		}

		totals[i].Amount = totals[i].Amount.Add(transaction.Amount)
	}

	slices.SortStableFunc(totals, func(a, b CategoryTotal) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	if len(totals) > n {
		totals = totals[:n]
	}

	expenses := TotalExpenses(transactions)
	for i := range totals {
		totals[i].Percentage = percentage(totals[i].Amount, expenses)
	}

	return totals
}

// CategoryDonut returns the chart slices for the category totals.
func CategoryDonut(totals []CategoryTotal) []Slice {
	items := make([]DonutItem, 0, len(totals))
	for _, t := range totals {
		items = append(items, DonutItem{Label: t.Name, Value: t.Amount, Color: t.Color})
	}

	return Donut(items)
}
