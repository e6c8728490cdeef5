package models

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreditCard is a credit card with a monthly statement.
type CreditCard struct {
	DefaultModel
	Name       string
	ClosingDay int             // Day of the month the statement closes
	DueDay     int             // Day of the month the statement is due
	LimitValue decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// BeforeSave trims the name and verifies the credit card.
func (c *CreditCard) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if utf8.RuneCountInString(c.Name) < 2 {
		return ErrNameTooShort
	}

	if c.ClosingDay < 1 || c.ClosingDay > 31 || c.DueDay < 1 || c.DueDay > 31 {
		return ErrDayInvalid
	}

	if c.LimitValue.IsNegative() {
		return ErrLimitNegative
	}

	return nil
}
