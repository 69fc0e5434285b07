package v1

import (
	"github.com/finance-tracker/backend/internal/money"
	"github.com/gin-gonic/gin"
)

// ContextFormatter is the key of the money.Formatter in the gin context.
const ContextFormatter = "finance-tracker-money-formatter"

// MoneyMiddleware makes the formatter available to all handlers
// that render amounts as text.
func MoneyMiddleware(f money.Formatter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextFormatter, f)
		c.Next()
	}
}

// formatter returns the formatter for the request. If none is set,
// the default formatter is used.
func formatter(c *gin.Context) money.Formatter {
	if f, ok := c.Get(ContextFormatter); ok {
		if formatter, ok := f.(money.Formatter); ok {
			return formatter
		}
	}

	return money.Default()
}
