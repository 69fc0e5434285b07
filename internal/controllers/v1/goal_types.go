package v1

import (
	"fmt"
	"time"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/summary"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name        string `json:"name" example:"Emergency Fund" binding:"max=255"`                            // Name of the goal
	Description string `json:"description" example:"Six months of expenses" default:"" binding:"max=1024"` // Description of the goal

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"300000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`     // How much money should be saved
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"125000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // How much money is already saved

	TargetDate time.Time `json:"targetDate" example:"2025-12-31T00:00:00Z"` // When the goal should be reached
}

func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:          editable.Name,
		Description:   editable.Description,
		TargetAmount:  editable.TargetAmount,
		CurrentAmount: editable.CurrentAmount,
		TargetDate:    editable.TargetDate,
	}
}

type GoalLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-47fc-9e5f-55f2e1b7a2b9"`                        // The goal itself
	Contributions string `json:"contributions" example:"https://example.com/api/v1/goals/438cc6c0-9baf-47fc-9e5f-55f2e1b7a2b9/contributions"` // Add money to the goal
}

// Goal is the API representation of a Goal.
type Goal struct {
	models.DefaultModel
	GoalEditable
	Progress summary.Progress `json:"progress"` // Progress towards the target at the time of the request
	Links    GoalLinks        `json:"links"`
}

func newGoal(c *gin.Context, model models.Goal, now time.Time) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:          model.Name,
			Description:   model.Description,
			TargetAmount:  model.TargetAmount,
			CurrentAmount: model.CurrentAmount,
			TargetDate:    model.TargetDate,
		},
		Progress: summary.GoalProgress(model, now),
		Links: GoalLinks{
			Self:          fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Contributions: fmt.Sprintf("%s/v1/goals/%s/contributions", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created goals
}

func (g *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	g.Data = append(g.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this goal
	Data  *Goal   `json:"data"`                                                          // Data for the goal
}

// GoalContribution is money added to a goal.
type GoalContribution struct {
	Amount decimal.Decimal `json:"amount" example:"5000" minimum:"0.00000001"` // The amount to add to the current amount
}

type GoalQueryFilter struct {
	Name        string `form:"name" filterField:"false"`        // By name
	Description string `form:"description" filterField:"false"` // By description
	Search      string `form:"search" filterField:"false"`      // By string in name or description
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first goal returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of goals to return. Defaults to 50.
}
