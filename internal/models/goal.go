package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings target to be reached by a specific date.
type Goal struct {
	DefaultModel
	Name          string
	Description   string
	TargetAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TargetDate    time.Time
}

func (g *Goal) AfterFind(tx *gorm.DB) (err error) {
	err = g.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	g.TargetDate = g.TargetDate.In(time.UTC)
	return nil
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Description = strings.TrimSpace(g.Description)
	g.TargetDate = g.TargetDate.In(time.UTC)

	if g.Name == "" {
		return ErrGoalNameEmpty
	}

	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrGoalCurrentNegative
	}

	if g.TargetDate.IsZero() {
		return ErrGoalTargetDateMissing
	}

	return nil
}

// Contribute adds the amount to the money already saved for the goal.
func (g *Goal) Contribute(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrContributionNotPositive
	}

	g.CurrentAmount = g.CurrentAmount.Add(amount)
	return nil
}
