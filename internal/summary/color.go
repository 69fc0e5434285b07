package summary

import "github.com/finance-tracker/backend/internal/models"

// Color is a named chart colour.
type Color struct {
	Name string `json:"name" example:"emerald"`
	Hex  string `json:"hex" example:"#10B981"`
}

var (
	Blue    = Color{"blue", "#3B82F6"}
	Emerald = Color{"emerald", "#10B981"}
	Amber   = Color{"amber", "#F59E0B"}
	Purple  = Color{"purple", "#8B5CF6"}
	Rose    = Color{"rose", "#F43F5E"}
	Cyan    = Color{"cyan", "#06B6D4"}
	Indigo  = Color{"indigo", "#6366F1"}
	Pink    = Color{"pink", "#EC4899"}
	Gray    = Color{"gray", "#6B7280"}
)

// Palette is the set of colours assigned to categories.
var Palette = []Color{Blue, Emerald, Amber, Purple, Rose, Cyan, Indigo, Pink}

// CategoryColor picks a colour from the palette using the sum of the
// character codes of the name, so a category always gets the same colour.
func CategoryColor(name string) Color {
	sum := 0
	for _, r := range name {
		sum += int(r)
	}

	return Palette[sum%len(Palette)]
}

// InvestmentColor returns the fixed colour for an investment type.
func InvestmentColor(t models.InvestmentType) Color {
	switch t {
	case models.InvestmentTypeStock:
		return Blue
	case models.InvestmentTypeMutualFund:
		return Emerald
	case models.InvestmentTypeFD:
		return Amber
	case models.InvestmentTypePF:
		return Purple
	case models.InvestmentTypeGold:
		return Rose
	case models.InvestmentTypeRealEstate:
		return Cyan
	case models.InvestmentTypeCrypto:
		return Indigo
	}

	return Gray
}
