package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/finance-tracker/backend/internal/controllers/v1"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestInvestmentsDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/investments", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
	assert.Contains(suite.T(), test.DecodeError(suite.T(), recorder.Body.Bytes()), models.ErrGeneral.Error())
}

func (suite *TestSuiteStandard) TestInvestmentsCreate() {
	value := decimal.NewFromInt(63500)
	purchased := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)

	investment := createTestInvestment(suite.T(), v1.InvestmentEditable{
		Name:         "Nifty 50 Index Fund",
		Type:         models.InvestmentTypeMutualFund,
		Amount:       decimal.NewFromInt(50000),
		CurrentValue: &value,
		PurchaseDate: purchased,
		Notes:        "Monthly SIP ",
	})

	assert.Equal(suite.T(), "Mutual Funds", investment.Data.Label)
	assert.Equal(suite.T(), "Monthly SIP", investment.Data.Notes)
	assert.Equal(suite.T(), purchased, investment.Data.PurchaseDate)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/investments/%s", investment.Data.ID), investment.Data.Links.Self)
	assert.True(suite.T(), decimal.NewFromInt(13500).Equal(investment.Data.Returns.Returns), investment.Data.Returns.Returns.String())
	assert.Equal(suite.T(), float64(27), investment.Data.Returns.ReturnPercentage)
}

func (suite *TestSuiteStandard) TestInvestmentsCreateDefaults() {
	before := time.Now().Add(-time.Second)
	investment := createTestInvestment(suite.T(), v1.InvestmentEditable{Amount: decimal.NewFromInt(1200)})

	assert.Equal(suite.T(), models.InvestmentTypeOther, investment.Data.Type)
	assert.Equal(suite.T(), "Other", investment.Data.Label)
	assert.True(suite.T(), investment.Data.PurchaseDate.After(before), "Purchase date defaults to now, but is %s", investment.Data.PurchaseDate)

	if assert.NotNil(suite.T(), investment.Data.CurrentValue) {
		assert.True(suite.T(), decimal.NewFromInt(1200).Equal(*investment.Data.CurrentValue), "Current value defaults to the amount")
	}
	assert.True(suite.T(), investment.Data.Returns.Returns.IsZero())
	assert.Equal(suite.T(), float64(0), investment.Data.Returns.ReturnPercentage)
}

func (suite *TestSuiteStandard) TestInvestmentsCreateLoss() {
	value := decimal.NewFromInt(7500)
	investment := createTestInvestment(suite.T(), v1.InvestmentEditable{
		Type:         models.InvestmentTypeCrypto,
		Amount:       decimal.NewFromInt(10000),
		CurrentValue: &value,
	})

	assert.True(suite.T(), decimal.NewFromInt(-2500).Equal(investment.Data.Returns.Returns))
	assert.Equal(suite.T(), float64(-25), investment.Data.Returns.ReturnPercentage)
}

func (suite *TestSuiteStandard) TestInvestmentsCreateFails() {
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name     string
		body     any
		status   int
		errorMsg string
	}{
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken body", `[{ "amount": [] }]`, http.StatusBadRequest, ""},
		{"No name", []v1.InvestmentEditable{{Amount: decimal.NewFromInt(100)}}, http.StatusBadRequest, models.ErrInvestmentNameEmpty.Error()},
		{"Invalid type", []v1.InvestmentEditable{{Name: "Bond", Type: "bond", Amount: decimal.NewFromInt(100)}}, http.StatusBadRequest, models.ErrInvestmentTypeInvalid.Error()},
		{"No amount", []v1.InvestmentEditable{{Name: "Gold coins", Type: models.InvestmentTypeGold}}, http.StatusBadRequest, models.ErrInvestmentAmountNotPositive.Error()},
		{"Negative value", []v1.InvestmentEditable{{Name: "Gold coins", Amount: decimal.NewFromInt(100), CurrentValue: &negative}}, http.StatusBadRequest, models.ErrInvestmentValueNegative.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/investments", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.InvestmentCreateResponse
			test.DecodeResponse(t, &r, &response)

			if response.Error != nil {
				assert.Contains(t, *response.Error, tt.errorMsg)
				return
			}

			assert.Contains(t, *response.Data[0].Error, tt.errorMsg)
		})
	}
}

func (suite *TestSuiteStandard) TestInvestmentsGetSingle() {
	investment := createTestInvestment(suite.T(), v1.InvestmentEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing", investment.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET Not existing", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "123", http.StatusBadRequest, http.MethodGet},
		{"OPTIONS Existing", investment.Data.ID.String(), http.StatusNoContent, http.MethodOptions},
		{"PATCH Not existing", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"DELETE Not existing", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/investments/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestInvestmentsGetFilter() {
	_ = createTestInvestment(suite.T(), v1.InvestmentEditable{
		Name:         "HDFC Bank Shares",
		Type:         models.InvestmentTypeStock,
		PurchaseDate: time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC),
	})

	_ = createTestInvestment(suite.T(), v1.InvestmentEditable{
		Name:         "Axis Bluechip Fund",
		Type:         models.InvestmentTypeMutualFund,
		PurchaseDate: time.Date(2022, 9, 10, 0, 0, 0, 0, time.UTC),
		Notes:        "Monthly SIP",
	})

	_ = createTestInvestment(suite.T(), v1.InvestmentEditable{
		Name:         "SBI Fixed Deposit",
		Type:         models.InvestmentTypeFD,
		PurchaseDate: time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC),
		Notes:        "7% interest rate",
	})

	tests := []struct {
		name      string
		query     string
		len       int
		checkFunc func(t *testing.T, investments []v1.Investment)
	}{
		{"All, newest first, then by name", "", 3, func(t *testing.T, investments []v1.Investment) {
			assert.Equal(t, "HDFC Bank Shares", investments[0].Name)
			assert.Equal(t, "SBI Fixed Deposit", investments[1].Name)
			assert.Equal(t, "Axis Bluechip Fund", investments[2].Name)
		}},
		{"Type", "type=stock", 1, nil},
		{"Type without investments", "type=gold", 0, nil},
		{"Name", "name=bank", 1, nil},
		{"Notes", "notes=sip", 1, nil},
		{"Empty notes", "notes=", 1, nil},
		{"Search in name", "search=fund", 1, nil},
		{"Search in notes", "search=interest", 1, nil},
		{"Search in both", "search=s", 3, nil},
		{"Offset", "offset=1", 2, nil},
		{"Limit", "limit=2", 2, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.InvestmentListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/investments?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))

			if tt.checkFunc != nil {
				tt.checkFunc(t, re.Data)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestInvestmentsUpdate() {
	value := decimal.NewFromInt(52000)
	investment := createTestInvestment(suite.T(), v1.InvestmentEditable{Amount: decimal.NewFromInt(50000), CurrentValue: &value})

	r := test.Request(suite.T(), http.MethodPatch, investment.Data.Links.Self, map[string]any{
		"currentValue": "55000",
		"type":         "gold",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.InvestmentResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), decimal.NewFromInt(55000).Equal(*updated.Data.CurrentValue))
	assert.True(suite.T(), decimal.NewFromInt(50000).Equal(updated.Data.Amount))
	assert.Equal(suite.T(), "Gold", updated.Data.Label)
	assert.Equal(suite.T(), float64(10), updated.Data.Returns.ReturnPercentage)

	// Updating the amount keeps the current value
	r = test.Request(suite.T(), http.MethodPatch, investment.Data.Links.Self, map[string]any{
		"amount": "60000",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), decimal.NewFromInt(55000).Equal(*updated.Data.CurrentValue))
}

func (suite *TestSuiteStandard) TestInvestmentsUpdateCurrentValueNull() {
	tests := []struct {
		name  string
		body  map[string]any
		value decimal.Decimal
	}{
		{"Only current value", map[string]any{"currentValue": nil}, decimal.NewFromInt(50000)},
		{"With amount", map[string]any{"currentValue": nil, "amount": "60000"}, decimal.NewFromInt(60000)},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			value := decimal.NewFromInt(63500)
			investment := createTestInvestment(t, v1.InvestmentEditable{Amount: decimal.NewFromInt(50000), CurrentValue: &value})

			r := test.Request(t, http.MethodPatch, investment.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var updated v1.InvestmentResponse
			test.DecodeResponse(t, &r, &updated)
			assert.True(t, tt.value.Equal(*updated.Data.CurrentValue), "current value is %s", updated.Data.CurrentValue)
			assert.Equal(t, float64(0), updated.Data.Returns.ReturnPercentage)
		})
	}
}

func (suite *TestSuiteStandard) TestInvestmentsUpdateFails() {
	investment := createTestInvestment(suite.T(), v1.InvestmentEditable{})

	tests := []struct {
		name     string
		body     any
		errorMsg string
	}{
		{"Empty body", "", "the request body must not be empty"},
		{"Empty name", map[string]any{"name": ""}, models.ErrInvestmentNameEmpty.Error()},
		{"Invalid type", map[string]any{"type": "bond"}, models.ErrInvestmentTypeInvalid.Error()},
		{"Negative value", map[string]any{"currentValue": "-5"}, models.ErrInvestmentValueNegative.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, investment.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.errorMsg)
		})
	}
}

func (suite *TestSuiteStandard) TestInvestmentsDelete() {
	investment := createTestInvestment(suite.T(), v1.InvestmentEditable{})

	r := test.Request(suite.T(), http.MethodDelete, investment.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, investment.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
