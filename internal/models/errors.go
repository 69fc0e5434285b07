package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Category errors
var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrCategoryNameEmpty     = errors.New("the category name must not be empty")
	ErrCategoryTypeInvalid   = errors.New("the category type must be one of 'income', 'expense' or 'both'")
	ErrCategoryInUse         = errors.New("the category is still used by transactions and cannot be deleted")
	ErrCategoryTypeInUse     = errors.New("the category type does not allow all of its transactions or its budget")
)

// Transaction errors
var (
	ErrTransactionAmountNotPositive = errors.New("the transaction amount must be larger than zero")
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be one of 'income' or 'expense'")
	ErrPaymentMethodInvalid         = errors.New("the payment method must be one of 'cash', 'credit', 'debit', 'upi', 'netbanking' or 'other'")
	ErrTransactionCategoryMissing   = errors.New("the transaction needs a category and no category rule matched its description")
	ErrTransactionCategoryType      = errors.New("the category type does not allow transactions of this type")
)

// Budget errors
var (
	ErrBudgetCategoryNotUnique = errors.New("there is already a budget for this category")
	ErrBudgetLimitNotPositive  = errors.New("the budget limit must be larger than zero")
	ErrBudgetPeriodInvalid     = errors.New("the budget period must be one of 'weekly' or 'monthly'")
	ErrBudgetCategoryType      = errors.New("budgets can only be set for categories of type 'expense' or 'both'")
)

// Goal errors
var (
	ErrGoalNameEmpty           = errors.New("the goal name must not be empty")
	ErrGoalTargetNotPositive   = errors.New("the goal target amount must be larger than zero")
	ErrGoalCurrentNegative     = errors.New("the goal current amount must not be negative")
	ErrGoalTargetDateMissing   = errors.New("the goal target date must be set")
	ErrContributionNotPositive = errors.New("contributions must be larger than zero")
)

// Investment errors
var (
	ErrInvestmentNameEmpty         = errors.New("the investment name must not be empty")
	ErrInvestmentAmountNotPositive = errors.New("the invested amount must be larger than zero")
	ErrInvestmentValueNegative     = errors.New("the current value of an investment must not be negative")
	ErrInvestmentTypeInvalid       = errors.New("the investment type must be one of 'stock', 'mutualFund', 'fd', 'pf', 'gold', 'realEstate', 'crypto' or 'other'")
)

var ErrCategoryRuleMatchEmpty = errors.New("the match pattern of a category rule must not be empty")
