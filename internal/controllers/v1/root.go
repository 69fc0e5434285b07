package v1

import (
	"net/http"

	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes of the v1 API with the group.
func RegisterRoutes(r *gin.RouterGroup) {
	RegisterRootRoutes(r)
	RegisterCategoryRoutes(r.Group("/categories"))
	RegisterCategoryRuleRoutes(r.Group("/category-rules"))
	RegisterTransactionRoutes(r.Group("/transactions"))
	RegisterBudgetRoutes(r.Group("/budgets"))
	RegisterGoalRoutes(r.Group("/goals"))
	RegisterInvestmentRoutes(r.Group("/investments"))
	RegisterPortfolioRoutes(r.Group("/portfolio"))
	RegisterDashboardRoutes(r.Group("/dashboard"))
	RegisterRecommendationRoutes(r.Group("/recommendations"))
}

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budgets         string `json:"budgets" example:"https://example.com/api/v1/budgets"`                 // URL of Budget collection endpoint
	Categories      string `json:"categories" example:"https://example.com/api/v1/categories"`           // URL of Category collection endpoint
	CategoryRules   string `json:"categoryRules" example:"https://example.com/api/v1/category-rules"`    // URL of Category Rule collection endpoint
	Dashboard       string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`             // URL of the dashboard
	Goals           string `json:"goals" example:"https://example.com/api/v1/goals"`                     // URL of Goal collection endpoint
	Investments     string `json:"investments" example:"https://example.com/api/v1/investments"`         // URL of Investment collection endpoint
	Portfolio       string `json:"portfolio" example:"https://example.com/api/v1/portfolio"`             // URL of the portfolio summary
	Recommendations string `json:"recommendations" example:"https://example.com/api/v1/recommendations"` // URL of the recommendations
	Transactions    string `json:"transactions" example:"https://example.com/api/v1/transactions"`       // URL of Transaction collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budgets:         url + "/v1/budgets",
			Categories:      url + "/v1/categories",
			CategoryRules:   url + "/v1/category-rules",
			Dashboard:       url + "/v1/dashboard",
			Goals:           url + "/v1/goals",
			Investments:     url + "/v1/investments",
			Portfolio:       url + "/v1/portfolio",
			Recommendations: url + "/v1/recommendations",
			Transactions:    url + "/v1/transactions",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
