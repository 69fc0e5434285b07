package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/finance-tracker/backend/internal/controllers/v1"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryRulesCreate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})
	rule := createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{CategoryID: category.Data.ID, Match: " Swiggy* ", Priority: 3})

	assert.Equal(suite.T(), "Swiggy*", rule.Data.Match)
	assert.Equal(suite.T(), uint(3), rule.Data.Priority)
	assert.Equal(suite.T(), category.Data.ID, rule.Data.CategoryID)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/category-rules/%s", rule.Data.ID), rule.Data.Links.Self)
	assert.Equal(suite.T(), category.Data.Links.Self, rule.Data.Links.Category)
}

func (suite *TestSuiteStandard) TestCategoryRulesCreateFails() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name     string
		body     any
		status   int
		errorMsg string
	}{
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Empty match", []v1.CategoryRuleEditable{{CategoryID: category.Data.ID, Match: "  "}}, http.StatusBadRequest, models.ErrCategoryRuleMatchEmpty.Error()},
		{"Non-existing category", []v1.CategoryRuleEditable{{CategoryID: uuid.New(), Match: "*"}}, http.StatusNotFound, "there is no"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/category-rules", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CategoryRuleCreateResponse
			test.DecodeResponse(t, &r, &response)

			if response.Error != nil {
				assert.Contains(t, *response.Error, tt.errorMsg)
				return
			}

			assert.Contains(t, *response.Data[0].Error, tt.errorMsg)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryRulesGetSingle() {
	rule := createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Match: "Uber*"})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing", rule.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET Not existing", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"OPTIONS Existing", rule.Data.ID.String(), http.StatusNoContent, http.MethodOptions},
		{"OPTIONS Not existing", uuid.New().String(), http.StatusNotFound, http.MethodOptions},
		{"PATCH Not existing", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"DELETE Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/category-rules/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryRulesGetFilter() {
	c1 := createTestCategory(suite.T(), v1.CategoryEditable{})
	c2 := createTestCategory(suite.T(), v1.CategoryEditable{})

	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{CategoryID: c1.Data.ID, Match: "Swiggy*", Priority: 2})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{CategoryID: c1.Data.ID, Match: "Zomato*", Priority: 1})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{CategoryID: c2.Data.ID, Match: "Uber*", Priority: 2})

	tests := []struct {
		name      string
		query     string
		len       int
		checkFunc func(t *testing.T, rules []v1.CategoryRule)
	}{
		{"All, ordered by priority and match", "", 3, func(t *testing.T, rules []v1.CategoryRule) {
			assert.Equal(t, "Zomato*", rules[0].Match)
			assert.Equal(t, "Swiggy*", rules[1].Match)
			assert.Equal(t, "Uber*", rules[2].Match)
		}},
		{"Category 1", fmt.Sprintf("category=%s", c1.Data.ID), 2, nil},
		{"Category 2", fmt.Sprintf("category=%s", c2.Data.ID), 1, nil},
		{"Category not existing", fmt.Sprintf("category=%s", uuid.New()), 0, nil},
		{"Priority 2", "priority=2", 2, nil},
		{"Fuzzy match", "match=gg", 1, nil},
		{"Empty match", "match=", 0, nil},
		{"Limit 1", "limit=1", 1, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.CategoryRuleListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/category-rules?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))

			if tt.checkFunc != nil {
				tt.checkFunc(t, re.Data)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryRulesGetFilterInvalid() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/category-rules?category=NotAUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryRulesUpdate() {
	rule := createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Match: "Netflix*", Priority: 5})
	other := createTestCategory(suite.T(), v1.CategoryEditable{})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{
		"categoryId": other.Data.ID,
		"priority":   1,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.CategoryRuleResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), other.Data.ID, updated.Data.CategoryID)
	assert.Equal(suite.T(), uint(1), updated.Data.Priority)
	assert.Equal(suite.T(), "Netflix*", updated.Data.Match)

	r = test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{"match": ""})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrCategoryRuleMatchEmpty.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestCategoryRulesDelete() {
	rule := createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Match: "Delete me"})

	r := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
