package models_test

import (
	"testing"
	"time"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionDefaults() {
	before := time.Now().Add(-1 * time.Second)
	transaction := suite.createTestTransaction(models.Transaction{Description: "  Coffee shop "})

	assert.Equal(suite.T(), "Coffee shop", transaction.Description)
	assert.Equal(suite.T(), models.PaymentMethodOther, transaction.PaymentMethod)
	assert.True(suite.T(), transaction.Date.After(before), "Date was not defaulted to now")
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionDateUTC() {
	loc := time.FixedZone("IST", 5*60*60+30*60)
	transaction := suite.createTestTransaction(models.Transaction{Date: time.Date(2024, 3, 1, 9, 0, 0, 0, loc)})

	var found models.Transaction
	err := models.DB.First(&found, "id = ?", transaction.ID).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), time.UTC, found.Date.Location())
	assert.True(suite.T(), transaction.Date.Equal(found.Date))
}

func (suite *TestSuiteStandard) TestTransactionValidation() {
	income := suite.createTestCategory(models.Category{Type: models.CategoryTypeIncome})
	expense := suite.createTestCategory(models.Category{Type: models.CategoryTypeExpense})

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"Zero amount", models.Transaction{CategoryID: expense.ID, Type: models.TransactionTypeExpense}, models.ErrTransactionAmountNotPositive},
		{"Negative amount", models.Transaction{CategoryID: expense.ID, Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(-3)}, models.ErrTransactionAmountNotPositive},
		{"Invalid type", models.Transaction{CategoryID: expense.ID, Type: "transfer", Amount: decimal.NewFromFloat(3)}, models.ErrTransactionTypeInvalid},
		{"Invalid payment method", models.Transaction{CategoryID: expense.ID, Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(3), PaymentMethod: "cheque"}, models.ErrPaymentMethodInvalid},
		{"No category", models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(3)}, models.ErrTransactionCategoryMissing},
		{"Non-existing category", models.Transaction{CategoryID: uuid.New(), Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(3)}, models.ErrResourceNotFound},
		{"Expense on income category", models.Transaction{CategoryID: income.ID, Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(3)}, models.ErrTransactionCategoryType},
		{"Income on expense category", models.Transaction{CategoryID: expense.ID, Type: models.TransactionTypeIncome, Amount: decimal.NewFromFloat(3)}, models.ErrTransactionCategoryType},
		{"Valid", models.Transaction{CategoryID: income.ID, Type: models.TransactionTypeIncome, Amount: decimal.NewFromFloat(70000), PaymentMethod: models.PaymentMethodNetbanking}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.transaction).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
