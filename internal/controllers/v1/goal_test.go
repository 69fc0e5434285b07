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

func (suite *TestSuiteStandard) TestGoalsDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
	assert.Contains(suite.T(), test.DecodeError(suite.T(), recorder.Body.Bytes()), models.ErrGeneral.Error())
}

func (suite *TestSuiteStandard) TestGoalsCreate() {
	target := time.Now().AddDate(0, 0, 90).UTC()

	goal := createTestGoal(suite.T(), v1.GoalEditable{
		Name:          " Emergency Fund ",
		Description:   "Six months of expenses",
		TargetAmount:  decimal.NewFromInt(100000),
		CurrentAmount: decimal.NewFromInt(25000),
		TargetDate:    target,
	})

	assert.Equal(suite.T(), "Emergency Fund", goal.Data.Name)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/goals/%s", goal.Data.ID), goal.Data.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/goals/%s/contributions", goal.Data.ID), goal.Data.Links.Contributions)

	progress := goal.Data.Progress
	assert.Equal(suite.T(), float64(25), progress.Progress)
	assert.Equal(suite.T(), 25, progress.CompletePercentage)
	assert.True(suite.T(), decimal.NewFromInt(75000).Equal(progress.Remaining), progress.Remaining.String())
	assert.Equal(suite.T(), 90, progress.DaysRemaining)
	assert.Equal(suite.T(), 3, progress.MonthsRemaining)
	assert.True(suite.T(), decimal.NewFromInt(25000).Equal(progress.MonthlyRequired), progress.MonthlyRequired.String())
}

func (suite *TestSuiteStandard) TestGoalsCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int
		errorMsg string
	}{
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken body", `[{ "name": 2 }]`, http.StatusBadRequest, ""},
		{"No name", []v1.GoalEditable{{TargetAmount: decimal.NewFromInt(100), TargetDate: time.Now()}}, http.StatusBadRequest, models.ErrGoalNameEmpty.Error()},
		{"No target amount", []v1.GoalEditable{{Name: "Car", TargetDate: time.Now()}}, http.StatusBadRequest, models.ErrGoalTargetNotPositive.Error()},
		{"Negative current amount", []v1.GoalEditable{{Name: "Car", TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.NewFromInt(-1), TargetDate: time.Now()}}, http.StatusBadRequest, models.ErrGoalCurrentNegative.Error()},
		{"No target date", []v1.GoalEditable{{Name: "Car", TargetAmount: decimal.NewFromInt(100)}}, http.StatusBadRequest, models.ErrGoalTargetDateMissing.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/goals", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.GoalCreateResponse
			test.DecodeResponse(t, &r, &response)

			if response.Error != nil {
				assert.Contains(t, *response.Error, tt.errorMsg)
				return
			}

			assert.Contains(t, *response.Data[0].Error, tt.errorMsg)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetSingle() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name   string
		path   string
		status int
		method string
	}{
		{"GET Existing", goal.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET Not existing", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "invalid", http.StatusBadRequest, http.MethodGet},
		{"OPTIONS Existing", goal.Data.ID.String(), http.StatusNoContent, http.MethodOptions},
		{"OPTIONS contributions", fmt.Sprintf("%s/contributions", goal.Data.ID), http.StatusNoContent, http.MethodOptions},
		{"OPTIONS contributions not existing", fmt.Sprintf("%s/contributions", uuid.New()), http.StatusNotFound, http.MethodOptions},
		{"OPTIONS contributions invalid ID", "invalid/contributions", http.StatusBadRequest, http.MethodOptions},
		{"DELETE Not existing", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/goals/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsContributionsOptions() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	r := test.Request(suite.T(), http.MethodOptions, goal.Data.Links.Contributions, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGoalsContribute() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(200),
	})

	r := test.Request(suite.T(), http.MethodPost, goal.Data.Links.Contributions, v1.GoalContribution{Amount: decimal.NewFromInt(300)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), decimal.NewFromInt(500).Equal(response.Data.CurrentAmount), response.Data.CurrentAmount.String())
	assert.Equal(suite.T(), 50, response.Data.Progress.CompletePercentage)

	// The contribution is persisted
	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), decimal.NewFromInt(500).Equal(response.Data.CurrentAmount), response.Data.CurrentAmount.String())

	// Contributions beyond the target are allowed, the percentage is capped
	r = test.Request(suite.T(), http.MethodPost, goal.Data.Links.Contributions, v1.GoalContribution{Amount: decimal.NewFromInt(1000)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), 100, response.Data.Progress.CompletePercentage)
	assert.Equal(suite.T(), float64(150), response.Data.Progress.Progress)
}

func (suite *TestSuiteStandard) TestGoalsContributeFails() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name     string
		url      string
		body     any
		status   int
		errorMsg string
	}{
		{"Empty body", goal.Data.Links.Contributions, "", http.StatusBadRequest, "the request body must not be empty"},
		{"Zero", goal.Data.Links.Contributions, v1.GoalContribution{}, http.StatusBadRequest, models.ErrContributionNotPositive.Error()},
		{"Negative", goal.Data.Links.Contributions, map[string]string{"amount": "-50"}, http.StatusBadRequest, models.ErrContributionNotPositive.Error()},
		{"Goal not existing", fmt.Sprintf("http://example.com/v1/goals/%s/contributions", uuid.New()), v1.GoalContribution{Amount: decimal.NewFromInt(10)}, http.StatusNotFound, "there is no goal"},
		{"Invalid ID", "http://example.com/v1/goals/notanid/contributions", v1.GoalContribution{Amount: decimal.NewFromInt(10)}, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.errorMsg)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetFilter() {
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Emergency Fund", Description: "Six months of expenses"})
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Vacation", Description: "Trip to the mountains"})
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "New Laptop"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Name", "name=fund", 1},
		{"Description", "description=months", 1},
		{"Empty description", "description=", 1},
		{"Search in name", "search=laptop", 1},
		{"Search in description", "search=trip", 1},
		{"Search in both", "search=n", 3},
		{"Search matches nothing", "search=house", 0},
		{"Offset", "offset=1", 2},
		{"Limit", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.GoalListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetOrder() {
	first := createTestGoal(suite.T(), v1.GoalEditable{Name: "Zebra"})
	second := createTestGoal(suite.T(), v1.GoalEditable{Name: "Aardvark"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var re v1.GoalListResponse
	test.DecodeResponse(suite.T(), &r, &re)

	if assert.Len(suite.T(), re.Data, 2) {
		assert.Equal(suite.T(), first.Data.ID, re.Data[0].ID)
		assert.Equal(suite.T(), second.Data.ID, re.Data[1].ID)
	}
}

func (suite *TestSuiteStandard) TestGoalsUpdate() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Name: "Car", Description: "Down payment"})

	r := test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{
		"name":         "Electric car",
		"targetAmount": "400000",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "Electric car", updated.Data.Name)
	assert.Equal(suite.T(), "Down payment", updated.Data.Description)
	assert.True(suite.T(), decimal.NewFromInt(400000).Equal(updated.Data.TargetAmount))
}

func (suite *TestSuiteStandard) TestGoalsUpdateFails() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name     string
		body     any
		errorMsg string
	}{
		{"Empty body", "", "the request body must not be empty"},
		{"Empty name", map[string]any{"name": " "}, models.ErrGoalNameEmpty.Error()},
		{"Zero target", map[string]any{"targetAmount": "0"}, models.ErrGoalTargetNotPositive.Error()},
		{"Negative current amount", map[string]any{"currentAmount": "-1"}, models.ErrGoalCurrentNegative.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, goal.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.errorMsg)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsDelete() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	r := test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
