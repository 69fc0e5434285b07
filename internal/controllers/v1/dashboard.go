package v1

import (
	"net/http"
	"time"

	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/summary"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Number of entries shown per dashboard section
const (
	dashboardTransactions = 5
	dashboardCategories   = 5
	dashboardAlerts       = 2
	dashboardGoals        = 2
)

// DashboardTransaction is a recent transaction with display information.
type DashboardTransaction struct {
	Transaction
	RelativeDate  string        `json:"relativeDate" example:"Yesterday"` // Date relative to the time of the request
	CategoryName  string        `json:"categoryName" example:"Food & Dining"`
	CategoryIcon  string        `json:"categoryIcon" example:"utensils"`
	CategoryColor summary.Color `json:"categoryColor"`
}

// DashboardBudgetAlert is a budget that is close to or over its limit.
type DashboardBudgetAlert struct {
	summary.BudgetUsage
	CategoryName string `json:"categoryName" example:"Entertainment"`
}

type Dashboard struct {
	Balance            decimal.Decimal         `json:"balance" example:"53500"`  // Income minus expenses
	Income             decimal.Decimal         `json:"income" example:"85000"`   // Sum of all income
	Expenses           decimal.Decimal         `json:"expenses" example:"31500"` // Sum of all expenses
	Formatted          DashboardFormatted      `json:"formatted"`                // The totals rendered in the configured currency
	RecentTransactions []DashboardTransaction  `json:"recentTransactions"`       // The most recent transactions
	TopCategories      []summary.CategoryTotal `json:"topCategories"`            // The categories with the highest expenses
	CategoryChart      []summary.Slice         `json:"categoryChart"`            // Donut chart of the top categories
	BudgetAlerts       []DashboardBudgetAlert  `json:"budgetAlerts"`             // Budgets that have used more than 80% of their limit
	Goals              []Goal                  `json:"goals"`                    // The first goals
	Recommendations    []string                `json:"recommendations"`          // Saving advice
}

type DashboardFormatted struct {
	Balance  string `json:"balance" example:"₹53,500"`
	Income   string `json:"income" example:"₹85,000"`
	Expenses string `json:"expenses" example:"₹31,500"`
}

type DashboardResponse struct {
	Error *string    `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  *Dashboard `json:"data"`                                                                // The dashboard
}

func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the balance, recent transactions, top expense categories, budget alerts, goals and recommendations
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	d, err := dashboard(c, time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &d})
}

func dashboard(c *gin.Context, now time.Time) (Dashboard, error) {
	var transactions []models.Transaction
	err := models.DB.Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").Find(&transactions).Error
	if err != nil {
		return Dashboard{}, err
	}

	var categories []models.Category
	err = models.DB.Find(&categories).Error
	if err != nil {
		return Dashboard{}, err
	}

	var budgets []models.Budget
	err = models.DB.Order("budgets.created_at ASC").Find(&budgets).Error
	if err != nil {
		return Dashboard{}, err
	}

	var goals []models.Goal
	err = models.DB.Order("goals.created_at ASC").Limit(dashboardGoals).Find(&goals).Error
	if err != nil {
		return Dashboard{}, err
	}

	byID := make(map[uuid.UUID]models.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	f := formatter(c)
	d := Dashboard{
		Balance:            summary.Balance(transactions),
		Income:             summary.TotalIncome(transactions),
		Expenses:           summary.TotalExpenses(transactions),
		RecentTransactions: make([]DashboardTransaction, 0, dashboardTransactions),
		BudgetAlerts:       make([]DashboardBudgetAlert, 0, dashboardAlerts),
		Goals:              make([]Goal, 0, len(goals)),
		Recommendations:    summary.Recommendations(f),
	}

	d.Formatted = DashboardFormatted{
		Balance:  f.Format(d.Balance),
		Income:   f.Format(d.Income),
		Expenses: f.Format(d.Expenses),
	}

	for i, transaction := range transactions {
		if i >= dashboardTransactions {
			break
		}

		category := byID[transaction.CategoryID]
		d.RecentTransactions = append(d.RecentTransactions, DashboardTransaction{
			Transaction:   newTransaction(c, transaction),
			RelativeDate:  summary.RelativeDate(transaction.Date, now),
			CategoryName:  category.Name,
			CategoryIcon:  category.Icon,
			CategoryColor: summary.CategoryColor(category.Name),
		})
	}

	d.TopCategories = summary.TopExpenseCategories(transactions, categories, dashboardCategories)
	d.CategoryChart = summary.CategoryDonut(d.TopCategories)

	usages := make([]summary.BudgetUsage, 0, len(budgets))
	for _, budget := range budgets {
		usages = append(usages, summary.BudgetStatus(budget, transactions))
	}

	for _, alert := range summary.BudgetAlerts(usages, dashboardAlerts) {
		d.BudgetAlerts = append(d.BudgetAlerts, DashboardBudgetAlert{
			BudgetUsage:  alert,
			CategoryName: byID[alert.CategoryID].Name,
		})
	}

	for _, goal := range goals {
		d.Goals = append(d.Goals, newGoal(c, goal, now))
	}

	return d, nil
}
