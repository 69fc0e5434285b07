package v1

import (
	"reflect"

	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type resource interface {
	models.Category | models.CategoryRule | models.Transaction | models.Budget | models.Goal | models.Investment
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R resource](c *gin.Context, resource R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// update copies the named fields from update to stored and saves them.
//
// The hooks of the model validate the merged resource, so a patch
// cannot bring a resource into an invalid state.
func update[R resource](stored *R, update R, fields []string) error {
	src := reflect.ValueOf(update)
	dst := reflect.ValueOf(stored).Elem()

	selected := make([]any, 0, len(fields))
	for _, field := range fields {
		dst.FieldByName(field).Set(src.FieldByName(field))
		selected = append(selected, field)
	}

	return models.DB.Model(stored).Select("", selected...).Updates(stored).Error
}
