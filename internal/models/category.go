package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryType restricts which transactions can use a category.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeBoth    CategoryType = "both"
)

// Allows reports if transactions of type t can be filed under the category type.
func (c CategoryType) Allows(t TransactionType) bool {
	switch c {
	case CategoryTypeBoth:
		return true
	case CategoryTypeIncome:
		return t == TransactionTypeIncome
	case CategoryTypeExpense:
		return t == TransactionTypeExpense
	}

	return false
}

// Category groups transactions, e.g. "Groceries" or "Salary".
type Category struct {
	DefaultModel
	Name string `gorm:"uniqueIndex"`
	Type CategoryType
	Icon string
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Icon = strings.TrimSpace(c.Icon)

	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	switch c.Type {
	case CategoryTypeIncome, CategoryTypeExpense, CategoryTypeBoth:
	default:
		return ErrCategoryTypeInvalid
	}

	// Categories that are not yet created have no transactions or budgets
	if c.ID == uuid.Nil {
		return nil
	}

	return c.checkTypeInUse(tx)
}

// checkTypeInUse verifies that the transactions and the budget of the
// category are still allowed with its type.
func (c Category) checkTypeInUse(tx *gorm.DB) error {
	var conflicting TransactionType
	switch c.Type {
	case CategoryTypeIncome:
		conflicting = TransactionTypeExpense
	case CategoryTypeExpense:
		conflicting = TransactionTypeIncome
	default:
		return nil
	}

	var transactions int64
	err := tx.Model(&Transaction{}).Where("category_id = ? AND type = ?", c.ID, conflicting).Count(&transactions).Error
	if err != nil {
		return err
	}

	if transactions > 0 {
		return ErrCategoryTypeInUse
	}

	if c.Type != CategoryTypeIncome {
		return nil
	}

	var budgets int64
	err = tx.Model(&Budget{}).Where("category_id = ?", c.ID).Count(&budgets).Error
	if err != nil {
		return err
	}

	if budgets > 0 {
		return ErrCategoryTypeInUse
	}

	return nil
}

// findCategory loads the category with the given ID.
func findCategory(tx *gorm.DB, id uuid.UUID) (Category, error) {
	var category Category
	err := tx.Where("id = ?", id).First(&category).Error

	return category, err
}
