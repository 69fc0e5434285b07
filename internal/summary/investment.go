package summary

import (
	"github.com/finance-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Return is the gain or loss of an investment.
type Return struct {
	Returns          decimal.Decimal `json:"returns" example:"13500"`
	ReturnPercentage float64         `json:"returnPercentage" example:"27"`
}

// InvestmentReturn compares the current value of the investment to the invested amount.
func InvestmentReturn(investment models.Investment) Return {
	returns := investment.CurrentValue.Sub(investment.Amount)

	return Return{
		Returns:          returns,
		ReturnPercentage: percentage(returns, investment.Amount),
	}
}

// Allocation is the current value of all investments of one type.
type Allocation struct {
	Type  models.InvestmentType `json:"type" example:"stock"`
	Label string                `json:"label" example:"Stocks"`
	Value decimal.Decimal       `json:"value" example:"63500"`
	Color Color                 `json:"color"`
}

// PortfolioSummary aggregates all investments.
type PortfolioSummary struct {
	TotalInvested    decimal.Decimal `json:"totalInvested" example:"125000"`
	TotalValue       decimal.Decimal `json:"totalValue" example:"147300"`
	TotalReturn      decimal.Decimal `json:"totalReturn" example:"22300"`
	ReturnPercentage float64         `json:"returnPercentage" example:"17.84"`
	Allocation       []Allocation    `json:"allocation"`
}

// Portfolio sums up the investments. The allocation lists investment
// types in the order they first appear in investments.
func Portfolio(investments []models.Investment) PortfolioSummary {
	summary := PortfolioSummary{
		TotalInvested: decimal.Zero,
		TotalValue:    decimal.Zero,
		Allocation:    []Allocation{},
	}

	index := make(map[models.InvestmentType]int)
	for _, investment := range investments {
		summary.TotalInvested = summary.TotalInvested.Add(investment.Amount)
		summary.TotalValue = summary.TotalValue.Add(investment.CurrentValue)

		i, ok := index[investment.Type]
		if !ok {
			index[investment.Type] = len(summary.Allocation)
			summary.Allocation = append(summary.Allocation, Allocation{
				Type:  investment.Type,
				Label: investment.Type.Label(),
				Value: investment.CurrentValue,
				Color: InvestmentColor(investment.Type),
			})
			continue
		}

		summary.Allocation[i].Value = summary.Allocation[i].Value.Add(investment.CurrentValue)
	}

	summary.TotalReturn = summary.TotalValue.Sub(summary.TotalInvested)
	summary.ReturnPercentage = percentage(summary.TotalReturn, summary.TotalInvested)

	return summary
}

// Donut returns the chart slices for the allocation.
func (p PortfolioSummary) Donut() []Slice {
	items := make([]DonutItem, 0, len(p.Allocation))
	for _, a := range p.Allocation {
		items = append(items, DonutItem{Label: a.Label, Value: a.Value, Color: a.Color})
	}

	return Donut(items)
}
