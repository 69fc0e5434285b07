package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvestmentType string

const (
	InvestmentTypeStock      InvestmentType = "stock"
	InvestmentTypeMutualFund InvestmentType = "mutualFund"
	InvestmentTypeFD         InvestmentType = "fd"
	InvestmentTypePF         InvestmentType = "pf"
	InvestmentTypeGold       InvestmentType = "gold"
	InvestmentTypeRealEstate InvestmentType = "realEstate"
	InvestmentTypeCrypto     InvestmentType = "crypto"
	InvestmentTypeOther      InvestmentType = "other"
)

// Label returns the human readable name of the investment type.
func (t InvestmentType) Label() string {
	switch t {
	case InvestmentTypeStock:
		return "Stocks"
	case InvestmentTypeMutualFund:
		return "Mutual Funds"
	case InvestmentTypeFD:
		return "Fixed Deposit"
	case InvestmentTypePF:
		return "Provident Fund"
	case InvestmentTypeGold:
		return "Gold"
	case InvestmentTypeRealEstate:
		return "Real Estate"
	case InvestmentTypeCrypto:
		return "Cryptocurrency"
	}

	return "Other"
}

// Investment is a holding with the amount originally invested
// and its current value.
type Investment struct {
	DefaultModel
	Name         string
	Type         InvestmentType
	Amount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentValue decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PurchaseDate time.Time
	Notes        string
}

func (i *Investment) AfterFind(tx *gorm.DB) (err error) {
	err = i.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	i.PurchaseDate = i.PurchaseDate.In(time.UTC)
	return nil
}

func (i *Investment) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.Notes = strings.TrimSpace(i.Notes)

	if i.Type == "" {
		i.Type = InvestmentTypeOther
	}

	if i.PurchaseDate.IsZero() {
		i.PurchaseDate = time.Now().In(time.UTC)
	} else {
		i.PurchaseDate = i.PurchaseDate.In(time.UTC)
	}

	if i.Name == "" {
		return ErrInvestmentNameEmpty
	}

	switch i.Type {
	case InvestmentTypeStock, InvestmentTypeMutualFund, InvestmentTypeFD, InvestmentTypePF, InvestmentTypeGold, InvestmentTypeRealEstate, InvestmentTypeCrypto, InvestmentTypeOther:
	default:
		return ErrInvestmentTypeInvalid
	}

	if !i.Amount.IsPositive() {
		return ErrInvestmentAmountNotPositive
	}

	if i.CurrentValue.IsNegative() {
		return ErrInvestmentValueNegative
	}

	return nil
}
