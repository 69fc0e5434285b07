package v1

import (
	"fmt"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/summary"
	ez_uuid "github.com/finance-tracker/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	CategoryID uuid.UUID `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category the budget limits. Every category can have at most one budget.

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Limit decimal.Decimal `json:"limit" example:"8000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The maximum amount to spend in the category

	Period models.BudgetPeriod `json:"period" example:"monthly" enums:"weekly,monthly" default:"monthly"` // The period the limit applies to
	Note   string              `json:"note" example:"Includes ordering in" default:"" binding:"max=255"`  // A note
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		CategoryID: editable.CategoryID,
		Limit:      editable.Limit,
		Period:     editable.Period,
		Note:       editable.Note,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                    // The budget itself
	Category     string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                             // The category the budget limits
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f&type=expense"` // Expenses counted against the budget
}

// Budget is the API representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Status summary.BudgetUsage `json:"status"` // How much of the budget is used
	Links  BudgetLinks         `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget, usage summary.BudgetUsage) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			CategoryID: model.CategoryID,
			Limit:      model.Limit,
			Period:     model.Period,
			Note:       model.Note,
		},
		Status: usage,
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Category:     fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s&type=expense", url, model.CategoryID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this budget
	Data  *Budget `json:"data"`                                                          // Data for the budget
}

type BudgetQueryFilter struct {
	CategoryID ez_uuid.UUID        `form:"category"`                   // By ID of the category
	Period     models.BudgetPeriod `form:"period"`                     // By period
	Note       string              `form:"note" filterField:"false"`   // By note
	Offset     uint                `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit      int                 `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		CategoryID: f.CategoryID.UUID,
		Period:     f.Period,
	}
}
