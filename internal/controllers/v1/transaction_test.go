package v1_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	v1 "github.com/finance-tracker/backend/internal/controllers/v1"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Type: models.CategoryTypeExpense})
	date := time.Date(2024, 3, 14, 12, 30, 0, 0, time.UTC)

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:          date,
		Amount:        decimal.NewFromFloat(1250.5),
		Description:   " Swiggy order ",
		CategoryID:    category.Data.ID,
		Type:          models.TransactionTypeExpense,
		PaymentMethod: models.PaymentMethodUPI,
	})

	assert.Equal(suite.T(), date, transaction.Data.Date)
	assert.True(suite.T(), decimal.NewFromFloat(1250.5).Equal(transaction.Data.Amount))
	assert.Equal(suite.T(), "Swiggy order", transaction.Data.Description)
	assert.Equal(suite.T(), models.PaymentMethodUPI, transaction.Data.PaymentMethod)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), transaction.Data.Links.Self)
	assert.Equal(suite.T(), category.Data.Links.Self, transaction.Data.Links.Category)
}

func (suite *TestSuiteStandard) TestTransactionsCreateDefaults() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	before := time.Now().Add(-time.Second)
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: category.Data.ID})

	assert.Equal(suite.T(), models.PaymentMethodOther, transaction.Data.PaymentMethod)
	assert.True(suite.T(), transaction.Data.Date.After(before), "Date defaults to now, but is %s", transaction.Data.Date)
}

func (suite *TestSuiteStandard) TestTransactionsCreateCategoryRules() {
	food := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food", Type: models.CategoryTypeExpense})
	delivery := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Delivery", Type: models.CategoryTypeExpense})

	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{CategoryID: delivery.Data.ID, Match: "*order*", Priority: 2})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{CategoryID: food.Data.ID, Match: "swiggy*", Priority: 1})

	tests := []struct {
		name        string
		description string
		categoryID  uuid.UUID
		want        uuid.UUID
	}{
		{"Rule with lowest priority wins", "Swiggy order", uuid.Nil, food.Data.ID},
		{"Second rule", "Amazon order", uuid.Nil, delivery.Data.ID},
		{"Explicit category is kept", "Swiggy order", delivery.Data.ID, delivery.Data.ID},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := createTestTransaction(t, v1.TransactionEditable{Description: tt.description, CategoryID: tt.categoryID})
			assert.Equal(t, tt.want, transaction.Data.CategoryID)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	income := createTestCategory(suite.T(), v1.CategoryEditable{Type: models.CategoryTypeIncome})
	expense := createTestCategory(suite.T(), v1.CategoryEditable{Type: models.CategoryTypeExpense})

	tests := []struct {
		name     string
		body     any
		status   int
		errorMsg string
	}{
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken body", `[{ "amount": true }]`, http.StatusBadRequest, ""},
		{"No category and no rule", []v1.TransactionEditable{{Amount: decimal.NewFromInt(10), Type: models.TransactionTypeExpense, Description: "Unknown"}}, http.StatusBadRequest, models.ErrTransactionCategoryMissing.Error()},
		{"Category does not exist", []v1.TransactionEditable{{Amount: decimal.NewFromInt(10), Type: models.TransactionTypeExpense, CategoryID: uuid.New()}}, http.StatusNotFound, "there is no"},
		{"Zero amount", []v1.TransactionEditable{{CategoryID: expense.Data.ID, Type: models.TransactionTypeExpense}}, http.StatusBadRequest, models.ErrTransactionAmountNotPositive.Error()},
		{"Negative amount", []v1.TransactionEditable{{CategoryID: expense.Data.ID, Amount: decimal.NewFromInt(-5), Type: models.TransactionTypeExpense}}, http.StatusBadRequest, models.ErrTransactionAmountNotPositive.Error()},
		{"Invalid type", []v1.TransactionEditable{{CategoryID: expense.Data.ID, Amount: decimal.NewFromInt(10), Type: "transfer"}}, http.StatusBadRequest, models.ErrTransactionTypeInvalid.Error()},
		{"Invalid payment method", []v1.TransactionEditable{{CategoryID: expense.Data.ID, Amount: decimal.NewFromInt(10), Type: models.TransactionTypeExpense, PaymentMethod: "cheque"}}, http.StatusBadRequest, models.ErrPaymentMethodInvalid.Error()},
		{"Expense in income category", []v1.TransactionEditable{{CategoryID: income.Data.ID, Amount: decimal.NewFromInt(10), Type: models.TransactionTypeExpense}}, http.StatusBadRequest, models.ErrTransactionCategoryType.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &response)

			if response.Error != nil {
				assert.Contains(t, *response.Error, tt.errorMsg)
				return
			}

			assert.Contains(t, *response.Data[0].Error, tt.errorMsg)
		})
	}
}

// TestTransactionsCreatePartial verifies that the status is the highest
// status of all creations and that valid transactions are still created.
func (suite *TestSuiteStandard) TestTransactionsCreatePartial() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{
		{CategoryID: category.Data.ID, Amount: decimal.NewFromInt(10), Type: models.TransactionTypeIncome},
		{CategoryID: uuid.New(), Amount: decimal.NewFromInt(10), Type: models.TransactionTypeIncome},
		{CategoryID: category.Data.ID, Type: models.TransactionTypeIncome},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 3)
	assert.NotNil(suite.T(), response.Data[0].Data)
	assert.NotNil(suite.T(), response.Data[1].Error)
	assert.NotNil(suite.T(), response.Data[2].Error)
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: createTestCategory(suite.T(), v1.CategoryEditable{}).Data.ID})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing", transaction.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET Not existing", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "-56", http.StatusBadRequest, http.MethodGet},
		{"OPTIONS Existing", transaction.Data.ID.String(), http.StatusNoContent, http.MethodOptions},
		{"PATCH Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Not existing", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	salary := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Salary", Type: models.CategoryTypeIncome})
	groceries := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries", Type: models.CategoryTypeExpense})
	dining := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Dining Out", Type: models.CategoryTypeExpense})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:          time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(70000),
		Description:   "Monthly salary",
		CategoryID:    salary.Data.ID,
		Type:          models.TransactionTypeIncome,
		PaymentMethod: models.PaymentMethodNetbanking,
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:          time.Date(2024, 3, 5, 18, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(2000),
		Description:   "Weekly shopping",
		CategoryID:    groceries.Data.ID,
		Type:          models.TransactionTypeExpense,
		PaymentMethod: models.PaymentMethodUPI,
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:          time.Date(2024, 3, 10, 13, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(500),
		Description:   "Lunch with colleagues",
		CategoryID:    dining.Data.ID,
		Type:          models.TransactionTypeExpense,
		PaymentMethod: models.PaymentMethodCredit,
	})

	tests := []struct {
		name      string
		query     string
		len       int
		checkFunc func(t *testing.T, transactions []v1.Transaction)
	}{
		{"All, newest first", "", 3, func(t *testing.T, transactions []v1.Transaction) {
			assert.Equal(t, "Lunch with colleagues", transactions[0].Description)
			assert.Equal(t, "Weekly shopping", transactions[1].Description)
			assert.Equal(t, "Monthly salary", transactions[2].Description)
		}},
		{"Type all", "type=all", 3, nil},
		{"Type income", "type=income", 1, nil},
		{"Type expense", "type=expense", 2, func(t *testing.T, transactions []v1.Transaction) {
			for _, transaction := range transactions {
				assert.Equal(t, models.TransactionTypeExpense, transaction.Type)
			}
		}},
		{"Category", fmt.Sprintf("category=%s", groceries.Data.ID), 1, nil},
		{"Category not existing", fmt.Sprintf("category=%s", uuid.New()), 0, nil},
		{"Payment method", "paymentMethod=upi", 1, nil},
		{"From date", "fromDate=2024-03-05", 2, nil},
		{"Until date is inclusive", "untilDate=2024-03-05", 2, nil},
		{"Date range", "fromDate=2024-03-02&untilDate=2024-03-09", 1, nil},
		{"Amount more or equal", "amountMoreOrEqual=2000", 2, nil},
		{"Amount less or equal", "amountLessOrEqual=2000", 2, nil},
		{"Amount range", "amountMoreOrEqual=1000&amountLessOrEqual=5000", 1, nil},
		{"Search description", "search=lunch", 1, nil},
		{"Search category name", "search=grocer", 1, nil},
		{"Search matches nothing", "search=rent", 0, nil},
		{"Search and type", "search=a&type=income", 1, nil},
		{"Offset 1", "offset=1", 2, nil},
		{"Limit 1", "limit=1", 1, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.TransactionListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))

			if tt.checkFunc != nil {
				tt.checkFunc(t, re.Data)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetSearch() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food", Type: models.CategoryTypeExpense})

	for _, description := range []string{"Lunch", "Café crème", "100% cashback_bonus"} {
		_ = createTestTransaction(suite.T(), v1.TransactionEditable{Description: description, CategoryID: category.Data.ID})
	}

	tests := []struct {
		search string
		len    int
	}{
		{"%", 1},
		{"_", 1},
		{`\`, 0},
		{"100%", 1},
		{"café", 1},
		{"CAFÉ", 1},
		{"Crème", 1},
		{"LUNCH", 1},
		{"FOOD", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.search, func(t *testing.T) {
			var re v1.TransactionListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?search=%s", url.QueryEscape(tt.search)), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data))
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFilterInvalid() {
	tests := []struct {
		name     string
		query    string
		errorMsg string
	}{
		{"Invalid type", "type=transfer", "the type filter must be one of"},
		{"From after until", "fromDate=2024-03-10&untilDate=2024-03-01", "fromDate must not be after untilDate"},
		{"Invalid date", "fromDate=yesterday", "the query string contains unparseable data"},
		{"Invalid category", "category=NotAUUID", "the query string contains unparseable data"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.errorMsg)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		CategoryID:  category.Data.ID,
		Amount:      decimal.NewFromInt(300),
		Description: "Coffee",
	})

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"amount":        "350.25",
		"paymentMethod": "cash",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), decimal.NewFromFloat(350.25).Equal(updated.Data.Amount), updated.Data.Amount.String())
	assert.Equal(suite.T(), models.PaymentMethodCash, updated.Data.PaymentMethod)
	assert.Equal(suite.T(), "Coffee", updated.Data.Description)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateFails() {
	income := createTestCategory(suite.T(), v1.CategoryEditable{Type: models.CategoryTypeIncome})
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		CategoryID: createTestCategory(suite.T(), v1.CategoryEditable{Type: models.CategoryTypeExpense}).Data.ID,
	})

	tests := []struct {
		name     string
		body     any
		status   int
		errorMsg string
	}{
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Zero amount", map[string]any{"amount": "0"}, http.StatusBadRequest, models.ErrTransactionAmountNotPositive.Error()},
		{"Income category", map[string]any{"categoryId": income.Data.ID}, http.StatusBadRequest, models.ErrTransactionCategoryType.Error()},
		{"Category does not exist", map[string]any{"categoryId": uuid.New()}, http.StatusNotFound, "there is no"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, transaction.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.errorMsg)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: createTestCategory(suite.T(), v1.CategoryEditable{}).Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
