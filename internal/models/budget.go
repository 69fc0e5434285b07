package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
)

// Budget is a spending limit for an expense category.
type Budget struct {
	DefaultModel
	Category   Category        `gorm:"constraint:OnDelete:CASCADE"`
	CategoryID uuid.UUID       `gorm:"uniqueIndex"`
	Limit      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Period     BudgetPeriod
	Note       string
}

func (b *Budget) BeforeSave(tx *gorm.DB) error {
	b.Note = strings.TrimSpace(b.Note)

	if b.Period == "" {
		b.Period = BudgetPeriodMonthly
	}

	if b.Period != BudgetPeriodMonthly && b.Period != BudgetPeriodWeekly {
		return ErrBudgetPeriodInvalid
	}

	if !b.Limit.IsPositive() {
		return ErrBudgetLimitNotPositive
	}

	category, err := findCategory(tx, b.CategoryID)
	if err != nil {
		return err
	}

	if category.Type == CategoryTypeIncome {
		return ErrBudgetCategoryType
	}

	return nil
}
