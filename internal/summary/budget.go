package summary

import (
	"github.com/finance-tracker/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Level string

const (
	LevelOK       Level = "ok"
	LevelWarning  Level = "warning"
	LevelExceeded Level = "exceeded"
)

const (
	warningThreshold  = 75
	exceededThreshold = 90
	alertThreshold    = 80
)

// BudgetUsage describes how much of a budget has been used.
type BudgetUsage struct {
	BudgetID       uuid.UUID       `json:"budgetId" example:"b4d5e1c8-3756-4d4a-8f52-2b4b7d1a0c6e"`
	CategoryID     uuid.UUID       `json:"categoryId" example:"0fa3b0ce-6c5a-4f52-9f35-5f6b1fa3a9a1"`
	Spent          decimal.Decimal `json:"spent" example:"6500"`
	Limit          decimal.Decimal `json:"limit" example:"8000"`
	Remaining      decimal.Decimal `json:"remaining" example:"1500"`    // Never negative
	Percentage     float64         `json:"percentage" example:"81.25"`  // Exact percentage, can exceed 100
	UsedPercentage int             `json:"usedPercentage" example:"81"` // Rounded and capped at 100 for progress bars
	Level          Level           `json:"level" example:"warning" enums:"ok,warning,exceeded"`
}

// BudgetStatus sums all expenses in the budget's category.
//
// The budget period is not used to restrict the transactions.
func BudgetStatus(budget models.Budget, transactions []models.Transaction) BudgetUsage {
	spent := decimal.Zero
	for _, transaction := range transactions {
		if transaction.Type == models.TransactionTypeExpense && transaction.CategoryID == budget.CategoryID {
			spent = spent.Add(transaction.Amount)
		}
	}

	p := percentage(spent, budget.Limit)

	level := LevelOK
	if p > exceededThreshold {
		level = LevelExceeded
	} else if p > warningThreshold {
		level = LevelWarning
	}

	return BudgetUsage{
		BudgetID:       budget.ID,
		CategoryID:     budget.CategoryID,
		Spent:          spent,
		Limit:          budget.Limit,
		Remaining:      decimal.Max(decimal.Zero, budget.Limit.Sub(spent)),
		Percentage:     p,
		UsedPercentage: roundCapped(p),
		Level:          level,
	}
}

// BudgetAlerts returns at most n budgets that have used more than 80% of their limit.
func BudgetAlerts(usages []BudgetUsage, n int) []BudgetUsage {
	alerts := []BudgetUsage{}
	for _, usage := range usages {
		if len(alerts) >= n {
			break
		}

		if usage.Percentage > alertThreshold {
			alerts = append(alerts, usage)
		}
	}

	return alerts
}
