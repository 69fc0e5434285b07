package summary

import (
	"strings"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/google/uuid"
)

// TransactionFilter selects transactions. Zero values do not filter.
type TransactionFilter struct {
	Search     string // Case insensitive match on description or category name
	Type       string // "all", "income" or "expense"
	CategoryID uuid.UUID
}

// Filter returns the transactions matching the filter, keeping their order.
func Filter(transactions []models.Transaction, categories []models.Category, filter TransactionFilter) []models.Transaction {
	names := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = models.Fold(category.Name)
	}

	search := models.Fold(strings.TrimSpace(filter.Search))

	filtered := []models.Transaction{}
	for _, transaction := range transactions {
		if filter.Type != "" && filter.Type != "all" && string(transaction.Type) != filter.Type {
			continue
		}

		if filter.CategoryID != uuid.Nil && transaction.CategoryID != filter.CategoryID {
			continue
		}

		if search != "" &&
			!strings.Contains(models.Fold(transaction.Description), search) &&
			!strings.Contains(names[transaction.CategoryID], search) {
			continue
		}

		filtered = append(filtered, transaction)
	}

	return filtered
}
