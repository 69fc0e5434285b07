package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/money"
	"github.com/finance-tracker/backend/internal/summary"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type summaryOptions struct {
	search   string
	kind     string
	category string
	limit    int
}

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	var s summaryOptions

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print balance, totals and recent transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := money.New(opts.config.Currency, opts.config.Locale)
			if err != nil {
				return err
			}

			if err := connect(opts.config); err != nil {
				return err
			}
			defer disconnect()

			return printSummary(cmd.OutOrStdout(), f, s, time.Now())
		},
	}

	cmd.Flags().StringVarP(&s.search, "search", "s", "", "only list transactions whose description or category contains this text")
	cmd.Flags().StringVarP(&s.kind, "type", "t", "all", "only list transactions of this type: all, income or expense")
	cmd.Flags().StringVarP(&s.category, "category", "c", "", "only list transactions in the category with this name")
	cmd.Flags().IntVarP(&s.limit, "limit", "n", 5, "maximum number of transactions to list")

	return cmd
}

func printSummary(out io.Writer, f money.Formatter, s summaryOptions, now time.Time) error {
	switch s.kind {
	case "", "all", string(models.TransactionTypeIncome), string(models.TransactionTypeExpense):
	default:
		return fmt.Errorf("invalid transaction type '%s': must be one of [all income expense]", s.kind)
	}

	var transactions []models.Transaction
	err := models.DB.Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").Find(&transactions).Error
	if err != nil {
		return err
	}

	var categories []models.Category
	if err := models.DB.Find(&categories).Error; err != nil {
		return err
	}

	filter := summary.TransactionFilter{
		Search: s.search,
		Type:   s.kind,
	}

	names := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
		if s.category != "" && category.Name == s.category {
			filter.CategoryID = category.ID
		}
	}

	if s.category != "" && filter.CategoryID == uuid.Nil {
		return fmt.Errorf("there is no category with the name '%s'", s.category)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "Balance:\t%s\n", f.Format(summary.Balance(transactions)))
	fmt.Fprintf(w, "Income:\t%s\n", f.Format(summary.TotalIncome(transactions)))
	fmt.Fprintf(w, "Expenses:\t%s\n", f.Format(summary.TotalExpenses(transactions)))
	fmt.Fprintln(w)

	filtered := summary.Filter(transactions, categories, filter)
	if len(filtered) == 0 {
		fmt.Fprintln(w, "No transactions found")
		return w.Flush()
	}

	if s.limit > 0 && len(filtered) > s.limit {
		filtered = filtered[:s.limit]
	}

	fmt.Fprintln(w, "Recent transactions")
	for _, t := range filtered {
		amount := t.Amount
		if t.Type == models.TransactionTypeExpense {
			amount = amount.Neg()
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", summary.RelativeDate(t.Date, now), t.Description, names[t.CategoryID], f.Format(amount))
	}

	return w.Flush()
}
