package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCredit     PaymentMethod = "credit"
	PaymentMethodDebit      PaymentMethod = "debit"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetbanking PaymentMethod = "netbanking"
	PaymentMethodOther      PaymentMethod = "other"
)

// Transaction is a single income or expense.
type Transaction struct {
	DefaultModel
	Date          time.Time
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description   string
	Category      Category `gorm:"constraint:OnDelete:RESTRICT"`
	CategoryID    uuid.UUID
	Type          TransactionType
	PaymentMethod PaymentMethod
}

// AfterFind enforces the date to be in UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - sets the date to now if it is not set and enforces UTC
//   - trims whitespace from string fields
//   - validates amount, type and payment method
//   - verifies that the category allows transactions of this type
func (t *Transaction) BeforeSave(tx *gorm.DB) (err error) {
	t.Description = strings.TrimSpace(t.Description)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if t.PaymentMethod == "" {
		t.PaymentMethod = PaymentMethodOther
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if t.Type != TransactionTypeIncome && t.Type != TransactionTypeExpense {
		return ErrTransactionTypeInvalid
	}

	switch t.PaymentMethod {
	case PaymentMethodCash, PaymentMethodCredit, PaymentMethodDebit, PaymentMethodUPI, PaymentMethodNetbanking, PaymentMethodOther:
	default:
		return ErrPaymentMethodInvalid
	}

	if t.CategoryID == uuid.Nil {
		return ErrTransactionCategoryMissing
	}

	category, err := findCategory(tx, t.CategoryID)
	if err != nil {
		return err
	}

	if !category.Type.Allows(t.Type) {
		return ErrTransactionCategoryType
	}

	return nil
}
