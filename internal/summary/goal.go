package summary

import (
	"math"
	"time"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Progress describes how far a goal is from its target.
type Progress struct {
	Progress           float64         `json:"progress" example:"43.75"`
	Remaining          decimal.Decimal `json:"remaining" example:"45000"`
	DaysRemaining      int             `json:"daysRemaining" example:"122"`
	MonthsRemaining    int             `json:"monthsRemaining" example:"5"`
	MonthlyRequired    decimal.Decimal `json:"monthlyRequired" example:"9000"`
	CompletePercentage int             `json:"completePercentage" example:"44"`
}

// GoalProgress calculates the progress of the goal at the time now.
//
// At least one month is always assumed to be left, so goals with a
// target date in the past require the full remaining amount now.
func GoalProgress(goal models.Goal, now time.Time) Progress {
	p := percentage(goal.CurrentAmount, goal.TargetAmount)
	remaining := goal.TargetAmount.Sub(goal.CurrentAmount)

	days := int(math.Ceil(goal.TargetDate.Sub(now).Hours() / 24))

	months := int(math.Ceil(float64(days) / 30))
	if months < 1 {
		months = 1
	}

	return Progress{
		Progress:           p,
		Remaining:          remaining,
		DaysRemaining:      days,
		MonthsRemaining:    months,
		MonthlyRequired:    remaining.Div(decimal.NewFromInt(int64(months))).Round(2),
		CompletePercentage: roundCapped(p),
	}
}
