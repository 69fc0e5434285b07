package v1

import (
	"net/http"

	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/summary"
	"github.com/gin-gonic/gin"
)

type RecommendationsResponse struct {
	Data []string `json:"data" example:"Your electricity bill is higher than average. Consider energy-saving measures to reduce costs."` // Saving advice
}

func RegisterRecommendationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsRecommendations)
	r.GET("", GetRecommendations)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recommendations
// @Success		204
// @Router			/v1/recommendations [options]
func OptionsRecommendations(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get recommendations
// @Description	Returns advice on how to save money. Amounts are rendered in the configured currency.
// @Tags			Recommendations
// @Produce		json
// @Success		200	{object}	RecommendationsResponse
// @Router			/v1/recommendations [get]
func GetRecommendations(c *gin.Context) {
	c.JSON(http.StatusOK, RecommendationsResponse{
		Data: summary.Recommendations(formatter(c)),
	})
}
