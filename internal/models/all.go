package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Resources lists all models in an order in which they can
// be deleted without violating foreign key constraints.
//
// When adding a model, add it *before* any of the models it references.
var Resources = []any{
	Transaction{},
	Budget{},
	CategoryRule{},
	Goal{},
	Investment{},
	Category{},
}

// DeleteAll permanently deletes all resources.
func DeleteAll(tx *gorm.DB) error {
	for _, model := range Resources {
		err := tx.Where("true").Delete(&model).Error
		if err != nil {
			return fmt.Errorf("could not delete %T resources: %w", model, err)
		}
	}

	return nil
}
