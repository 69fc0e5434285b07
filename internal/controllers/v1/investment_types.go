package v1

import (
	"fmt"
	"time"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/summary"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InvestmentEditable struct {
	Name string                `json:"name" example:"Nifty 50 Index Fund" binding:"max=255"`                                                  // Name of the investment
	Type models.InvestmentType `json:"type" example:"mutualFund" enums:"stock,mutualFund,fd,pf,gold,realEstate,crypto,other" default:"other"` // Type of the investment

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount       decimal.Decimal  `json:"amount" example:"50000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount originally invested
	CurrentValue *decimal.Decimal `json:"currentValue" example:"63500" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"`    // The current value. Defaults to the invested amount.

	PurchaseDate time.Time `json:"purchaseDate" example:"2023-06-15T00:00:00Z"`               // When the investment was bought. Defaults to now.
	Notes        string    `json:"notes" example:"Monthly SIP" default:"" binding:"max=1024"` // Notes
}

func (editable InvestmentEditable) model() models.Investment {
	currentValue := editable.Amount
	if editable.CurrentValue != nil {
		currentValue = *editable.CurrentValue
	}

	return models.Investment{
		Name:         editable.Name,
		Type:         editable.Type,
		Amount:       editable.Amount,
		CurrentValue: currentValue,
		PurchaseDate: editable.PurchaseDate,
		Notes:        editable.Notes,
	}
}

type InvestmentLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/investments/9d1bd3d9-6b5e-4b42-8b83-9a04de3bd1f7"` // The investment itself
}

// Investment is the API representation of an Investment.
type Investment struct {
	models.DefaultModel
	InvestmentEditable
	Label   string          `json:"label" example:"Mutual Funds"` // Human readable name of the investment type
	Returns summary.Return  `json:"returns"`                      // Gain or loss of the investment
	Links   InvestmentLinks `json:"links"`
}

func newInvestment(c *gin.Context, model models.Investment) Investment {
	url := c.GetString(string(models.DBContextURL))
	currentValue := model.CurrentValue

	return Investment{
		DefaultModel: model.DefaultModel,
		InvestmentEditable: InvestmentEditable{
			Name:         model.Name,
			Type:         model.Type,
			Amount:       model.Amount,
			CurrentValue: &currentValue,
			PurchaseDate: model.PurchaseDate,
			Notes:        model.Notes,
		},
		Label:   model.Type.Label(),
		Returns: summary.InvestmentReturn(model),
		Links: InvestmentLinks{
			Self: fmt.Sprintf("%s/v1/investments/%s", url, model.ID),
		},
	}
}

type InvestmentListResponse struct {
	Data       []Investment `json:"data"`                                                          // List of investments
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type InvestmentCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []InvestmentResponse `json:"data"`                                                          // List of created investments
}

func (i *InvestmentCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, InvestmentResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type InvestmentResponse struct {
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this investment
	Data  *Investment `json:"data"`                                                          // Data for the investment
}

type InvestmentQueryFilter struct {
	Name   string                `form:"name" filterField:"false"`   // By name
	Type   models.InvestmentType `form:"type"`                       // By type
	Notes  string                `form:"notes" filterField:"false"`  // By notes
	Search string                `form:"search" filterField:"false"` // By string in name or notes
	Offset uint                  `form:"offset" filterField:"false"` // The offset of the first investment returned. Defaults to 0.
	Limit  int                   `form:"limit" filterField:"false"`  // Maximum number of investments to return. Defaults to 50.
}

func (f InvestmentQueryFilter) model() models.Investment {
	return models.Investment{
		Type: f.Type,
	}
}
