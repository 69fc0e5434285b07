package summary

import (
	"math"

	"github.com/shopspring/decimal"
)

// DonutItem is one value to be shown in a donut chart.
type DonutItem struct {
	Label string
	Value decimal.Decimal
	Color Color
}

// Slice is a donut chart segment. Angles are in radians, 0 is at 3 o'clock.
type Slice struct {
	Label      string          `json:"label" example:"Food & Dining"`
	Value      decimal.Decimal `json:"value" example:"6500"`
	Color      Color           `json:"color"`
	Percentage float64         `json:"percentage" example:"42.5"`
	StartAngle float64         `json:"startAngle" example:"-1.5707963267948966"`
	EndAngle   float64         `json:"endAngle" example:"1.1938052083641213"`
}

// Donut lays out the items clockwise, starting at 12 o'clock.
//
// If the values sum up to zero, all slices have zero width.
func Donut(items []DonutItem) []Slice {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Value)
	}

	slices := make([]Slice, 0, len(items))
	angle := -0.5 * math.Pi

	for _, item := range items {
		p := percentage(item.Value, total)
		start := angle
		angle += p / 100 * 2 * math.Pi

		slices = append(slices, Slice{
			Label:      item.Label,
			Value:      item.Value,
			Color:      item.Color,
			Percentage: p,
			StartAngle: start,
			EndAngle:   angle,
		})
	}

	return slices
}
