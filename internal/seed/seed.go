// Package seed loads fixture data into the database.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed demo.yaml
var demo []byte

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrEmptyFixture    = errors.New("the fixture does not contain any resources")
)

// Date is a date relative to the time of seeding.
//
// Months are subtracted or added first, then days are subtracted.
// If Day is set, the result is the start of that day of the month in UTC.
type Date struct {
	DaysAgo       int `yaml:"daysAgo"`
	MonthsAgo     int `yaml:"monthsAgo"`
	MonthsFromNow int `yaml:"monthsFromNow"`
	Day           int `yaml:"day"`
}

// Resolve returns the absolute time for the reference time now.
func (d Date) Resolve(now time.Time) time.Time {
	t := now.UTC().AddDate(0, d.MonthsFromNow-d.MonthsAgo, -d.DaysAgo)
	if d.Day > 0 {
		t = time.Date(t.Year(), t.Month(), d.Day, 0, 0, 0, 0, time.UTC)
	}

	return t
}

type Category struct {
	Name string              `yaml:"name"`
	Type models.CategoryType `yaml:"type"`
	Icon string              `yaml:"icon"`
}

type Rule struct {
	Category string `yaml:"category"`
	Match    string `yaml:"match"`
	Priority uint   `yaml:"priority"`
}

type Transaction struct {
	Description   string                 `yaml:"description"`
	Amount        decimal.Decimal        `yaml:"amount"`
	Category      string                 `yaml:"category"` // Optional, rules are applied if empty
	Type          models.TransactionType `yaml:"type"`
	PaymentMethod models.PaymentMethod   `yaml:"paymentMethod"`
	Date          Date                   `yaml:"date"`
}

type Budget struct {
	Category string              `yaml:"category"`
	Limit    decimal.Decimal     `yaml:"limit"`
	Period   models.BudgetPeriod `yaml:"period"`
	Note     string              `yaml:"note"`
}

type Goal struct {
	Name          string          `yaml:"name"`
	Description   string          `yaml:"description"`
	TargetAmount  decimal.Decimal `yaml:"targetAmount"`
	CurrentAmount decimal.Decimal `yaml:"currentAmount"`
	TargetDate    Date            `yaml:"targetDate"`
	CreatedAt     *Date           `yaml:"createdAt"`
}

type Investment struct {
	Name         string                `yaml:"name"`
	Type         models.InvestmentType `yaml:"type"`
	Amount       decimal.Decimal       `yaml:"amount"`
	CurrentValue *decimal.Decimal      `yaml:"currentValue"` // Defaults to Amount
	PurchaseDate Date                  `yaml:"purchaseDate"`
	Notes        string                `yaml:"notes"`
}

// Fixture is a set of resources to seed the database with.
type Fixture struct {
	Categories   []Category    `yaml:"categories"`
	Rules        []Rule        `yaml:"rules"`
	Transactions []Transaction `yaml:"transactions"`
	Budgets      []Budget      `yaml:"budgets"`
	Goals        []Goal        `yaml:"goals"`
	Investments  []Investment  `yaml:"investments"`
}

// Len returns the number of resources in the fixture.
func (f Fixture) Len() int {
	return len(f.Categories) + len(f.Rules) + len(f.Transactions) + len(f.Budgets) + len(f.Goals) + len(f.Investments)
}

// Load parses a YAML fixture. Unknown fields are rejected.
func Load(r io.Reader) (Fixture, error) {
	var f Fixture

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	err := decoder.Decode(&f)
	if errors.Is(err, io.EOF) || (err == nil && f.Len() == 0) {
		return Fixture{}, ErrEmptyFixture
	}

	if err != nil {
		return Fixture{}, fmt.Errorf("could not parse fixture: %w", err)
	}

	return f, nil
}

// Demo returns the embedded demo data set.
func Demo() Fixture {
	f, err := Load(bytes.NewReader(demo))
	if err != nil {
		panic(fmt.Sprintf("embedded demo fixture is invalid: %s", err))
	}

	return f
}

// Apply creates all resources of the fixture in a single database transaction.
// Relative dates are resolved against now.
func Apply(db *gorm.DB, f Fixture, now time.Time) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		categories := make(map[string]uuid.UUID, len(f.Categories))

		// Categories referenced by name must either be part of the fixture
		// or already exist in the database
		lookup := func(name string) (uuid.UUID, error) {
			if id, ok := categories[name]; ok {
				return id, nil
			}

			var category models.Category
			err := tx.Where(&models.Category{Name: name}).Limit(1).Find(&category).Error
			if err != nil {
				return uuid.Nil, err
			}

			if category.ID == uuid.Nil {
				return uuid.Nil, fmt.Errorf("%w '%s'", ErrUnknownCategory, name)
			}

			categories[name] = category.ID
			return category.ID, nil
		}

		for _, c := range f.Categories {
			category := models.Category{
				Name: c.Name,
				Type: c.Type,
				Icon: c.Icon,
			}

			if err := tx.Create(&category).Error; err != nil {
				return fmt.Errorf("could not create category '%s': %w", c.Name, err)
			}
			categories[category.Name] = category.ID
		}

		for _, r := range f.Rules {
			id, err := lookup(r.Category)
			if err != nil {
				return fmt.Errorf("could not create rule '%s': %w", r.Match, err)
			}

			rule := models.CategoryRule{
				CategoryID: id,
				Match:      r.Match,
				Priority:   r.Priority,
			}

			if err := tx.Create(&rule).Error; err != nil {
				return fmt.Errorf("could not create rule '%s': %w", r.Match, err)
			}
		}

		var rules []models.CategoryRule
		if err := tx.Order("priority ASC, match ASC").Find(&rules).Error; err != nil {
			return err
		}

		for _, t := range f.Transactions {
			transaction := models.Transaction{
				Date:          t.Date.Resolve(now),
				Amount:        t.Amount,
				Description:   t.Description,
				Type:          t.Type,
				PaymentMethod: t.PaymentMethod,
			}

			if t.Category != "" {
				id, err := lookup(t.Category)
				if err != nil {
					return fmt.Errorf("could not create transaction '%s': %w", t.Description, err)
				}
				transaction.CategoryID = id
			} else {
				transaction.CategoryID = models.MatchCategory(rules, t.Description)
			}

			if err := tx.Create(&transaction).Error; err != nil {
				return fmt.Errorf("could not create transaction '%s': %w", t.Description, err)
			}
		}

		for _, b := range f.Budgets {
			id, err := lookup(b.Category)
			if err != nil {
				return fmt.Errorf("could not create budget for '%s': %w", b.Category, err)
			}

			budget := models.Budget{
				CategoryID: id,
				Limit:      b.Limit,
				Period:     b.Period,
				Note:       b.Note,
			}

			if err := tx.Create(&budget).Error; err != nil {
				return fmt.Errorf("could not create budget for '%s': %w", b.Category, err)
			}
		}

		for _, g := range f.Goals {
			goal := models.Goal{
				Name:          g.Name,
				Description:   g.Description,
				TargetAmount:  g.TargetAmount,
				CurrentAmount: g.CurrentAmount,
				TargetDate:    g.TargetDate.Resolve(now),
			}

			if g.CreatedAt != nil {
				goal.CreatedAt = g.CreatedAt.Resolve(now)
			}

			if err := tx.Create(&goal).Error; err != nil {
				return fmt.Errorf("could not create goal '%s': %w", g.Name, err)
			}
		}

		for _, i := range f.Investments {
			investment := models.Investment{
				Name:         i.Name,
				Type:         i.Type,
				Amount:       i.Amount,
				CurrentValue: i.Amount,
				PurchaseDate: i.PurchaseDate.Resolve(now),
				Notes:        i.Notes,
			}

			if i.CurrentValue != nil {
				investment.CurrentValue = *i.CurrentValue
			}

			if err := tx.Create(&investment).Error; err != nil {
				return fmt.Errorf("could not create investment '%s': %w", i.Name, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Int("resources", f.Len()).Msg("seeded database")
	return nil
}
