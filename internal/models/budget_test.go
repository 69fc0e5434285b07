package models_test

import (
	"testing"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetDefaultPeriod() {
	budget := suite.createTestBudget(models.Budget{Note: " Keep it low  "})

	assert.Equal(suite.T(), models.BudgetPeriodMonthly, budget.Period)
	assert.Equal(suite.T(), "Keep it low", budget.Note)
}

func (suite *TestSuiteStandard) TestBudgetValidation() {
	income := suite.createTestCategory(models.Category{Type: models.CategoryTypeIncome})
	expense := suite.createTestCategory(models.Category{Type: models.CategoryTypeExpense})
	both := suite.createTestCategory(models.Category{Type: models.CategoryTypeBoth})

	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{"Zero limit", models.Budget{CategoryID: expense.ID}, models.ErrBudgetLimitNotPositive},
		{"Invalid period", models.Budget{CategoryID: expense.ID, Limit: decimal.NewFromFloat(10), Period: "yearly"}, models.ErrBudgetPeriodInvalid},
		{"Income category", models.Budget{CategoryID: income.ID, Limit: decimal.NewFromFloat(10)}, models.ErrBudgetCategoryType},
		{"Non-existing category", models.Budget{CategoryID: uuid.New(), Limit: decimal.NewFromFloat(10)}, models.ErrResourceNotFound},
		{"Weekly on both", models.Budget{CategoryID: both.ID, Limit: decimal.NewFromFloat(10), Period: models.BudgetPeriodWeekly}, nil},
		{"Monthly on expense", models.Budget{CategoryID: expense.ID, Limit: decimal.NewFromFloat(8000)}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.budget).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetCategoryNotUnique() {
	budget := suite.createTestBudget(models.Budget{})

	duplicate := models.Budget{CategoryID: budget.CategoryID, Limit: decimal.NewFromFloat(50)}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetCategoryNotUnique)
}
