package v1

import (
	"net/http"

	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/summary"
	"github.com/gin-gonic/gin"
)

// Portfolio is the summary of all investments.
type Portfolio struct {
	summary.PortfolioSummary
	Chart []summary.Slice `json:"chart"` // Donut chart of the allocation
}

type PortfolioResponse struct {
	Error *string    `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  *Portfolio `json:"data"`                                                                // The portfolio summary
}

func RegisterPortfolioRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPortfolio)
	r.GET("", GetPortfolio)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Portfolio
// @Success		204
// @Router			/v1/portfolio [options]
func OptionsPortfolio(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get portfolio
// @Description	Returns the totals of all investments and how the current value is allocated to investment types
// @Tags			Portfolio
// @Produce		json
// @Success		200	{object}	PortfolioResponse
// @Failure		500	{object}	PortfolioResponse
// @Router			/v1/portfolio [get]
func GetPortfolio(c *gin.Context) {
	var investments []models.Investment
	err := models.DB.Order("investments.created_at ASC").Find(&investments).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PortfolioResponse{
			Error: &e,
		})
		return
	}

	p := summary.Portfolio(investments)
	c.JSON(http.StatusOK, PortfolioResponse{
		Data: &Portfolio{
			PortfolioSummary: p,
			Chart:            p.Donut(),
		},
	})
}
