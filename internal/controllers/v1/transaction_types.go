package v1

import (
	"fmt"
	"time"

	"github.com/finance-tracker/backend/internal/models"
	ez_uuid "github.com/finance-tracker/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date time.Time `json:"date" example:"2024-03-14T12:30:00Z"` // Date of the transaction. Defaults to now.

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"1250.50" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction

	Description   string                 `json:"description" example:"Swiggy order" default:"" binding:"max=255"`                            // What the money was spent on or received for
	CategoryID    uuid.UUID              `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`                                  // ID of the category. If empty, category rules are applied to the description.
	Type          models.TransactionType `json:"type" example:"expense" enums:"income,expense"`                                              // Type of the transaction
	PaymentMethod models.PaymentMethod   `json:"paymentMethod" example:"upi" enums:"cash,credit,debit,upi,netbanking,other" default:"other"` // How the transaction was paid
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:          editable.Date,
		Amount:        editable.Amount,
		Description:   editable.Description,
		CategoryID:    editable.CategoryID,
		Type:          editable.Type,
		PaymentMethod: editable.PaymentMethod,
	}
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`   // The transaction itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category of the transaction
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:          model.Date,
			Amount:        model.Amount,
			Description:   model.Description,
			CategoryID:    model.CategoryID,
			Type:          model.Type,
			PaymentMethod: model.PaymentMethod,
		},
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Search            string               `form:"search" filterField:"false"`                             // Description or category name contains this string
	Type              string               `form:"type" filterField:"false"`                               // One of "all", "income" or "expense"
	CategoryID        ez_uuid.UUID         `form:"category"`                                               // ID of the category
	PaymentMethod     models.PaymentMethod `form:"paymentMethod"`                                          // How the transaction was paid
	FromDate          time.Time            `form:"fromDate" time_format:"2006-01-02" filterField:"false"`  // From this date
	UntilDate         time.Time            `form:"untilDate" time_format:"2006-01-02" filterField:"false"` // Until this date, inclusive
	AmountMoreOrEqual decimal.Decimal      `form:"amountMoreOrEqual" filterField:"false"`                  // Amount more than or equal to this
	AmountLessOrEqual decimal.Decimal      `form:"amountLessOrEqual" filterField:"false"`                  // Amount less than or equal to this
	Offset            uint                 `form:"offset" filterField:"false"`                             // The offset of the first transaction returned. Defaults to 0.
	Limit             int                  `form:"limit" filterField:"false"`                              // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		CategoryID:    f.CategoryID.UUID,
		PaymentMethod: f.PaymentMethod,
	}
}
