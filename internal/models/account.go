package models

import (
	"strings"
	"unicode/utf8"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account is a bank account, a wallet or an investment.
type Account struct {
	DefaultModel
	Name           string
	Type           client.AccountType
	InitialBalance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// BeforeSave trims the name and verifies the account.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)

	if utf8.RuneCountInString(a.Name) < 2 {
		return ErrNameTooShort
	}

	if !a.Type.Valid() {
		return ErrTypeInvalid
	}

	if a.InitialBalance.IsNegative() {
		return ErrBalanceNegative
	}

	return nil
}
