package v1

import (
	"fmt"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type CategoryEditable struct {
	Name string              `json:"name" example:"Food & Dining" binding:"max=255"`      // Name of the category
	Type models.CategoryType `json:"type" example:"expense" enums:"income,expense,both"`  // Which transactions the category can be used for
	Icon string              `json:"icon" example:"utensils" default:"" binding:"max=64"` // Name of the icon shown in the frontend
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name: editable.Name,
		Type: editable.Type,
		Icon: editable.Icon,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"`
	Rules        string `json:"rules" example:"https://example.com/api/v1/category-rules?category=3b1ea324-d438-4419-882a-2fc91d71772f"`
}

// Category is the API representation of a Category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name: model.Name,
			Type: model.Type,
			Icon: model.Icon,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
			Rules:        fmt.Sprintf("%s/v1/category-rules?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`                                                          // List of created categories
}

func (c *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this category
	Data  *Category `json:"data"`                                                          // Data for the category
}

type CategoryQueryFilter struct {
	Name   string              `form:"name" filterField:"false"`   // By name
	Type   models.CategoryType `form:"type"`                       // By type
	Icon   string              `form:"icon" filterField:"false"`   // By icon
	Search string              `form:"search" filterField:"false"` // By string in name
	Offset uint                `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit  int                 `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return CategoryEditable{
		Type: f.Type,
	}.model()
}
