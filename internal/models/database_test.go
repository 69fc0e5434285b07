package models_test

import (
	"github.com/finance-tracker/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestDatabaseNotFoundMessage() {
	err := models.DB.First(&models.Category{}, "id = ?", uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no category matching your query", err.Error())

	err = models.DB.First(&models.CategoryRule{}, "id = ?", uuid.New()).Error
	assert.Equal(suite.T(), "there is no category rule matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	err := models.DB.First(&models.Goal{}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestDeleteAll() {
	category := suite.createTestCategory(models.Category{Type: models.CategoryTypeExpense})
	_ = suite.createTestTransaction(models.Transaction{CategoryID: category.ID})
	_ = suite.createTestBudget(models.Budget{CategoryID: category.ID})
	_ = suite.createTestGoal(models.Goal{})

	err := models.DeleteAll(models.DB)
	assert.Nil(suite.T(), err)

	for _, model := range []any{&[]models.Category{}, &[]models.Transaction{}, &[]models.Budget{}, &[]models.Goal{}} {
		var count int64
		err := models.DB.Model(model).Count(&count).Error
		assert.Nil(suite.T(), err)
		assert.Equal(suite.T(), int64(0), count, "%T not deleted", model)
	}
}
