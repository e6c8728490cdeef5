package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is an income, an expense or a transfer.
type Transaction struct {
	DefaultModel
	Description        string
	Amount             decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date               types.Date      `gorm:"index"`
	Paid               bool
	Type               client.TransactionType
	CategoryID         uuid.UUID
	Category           Category
	AccountID          *uuid.UUID
	Account            *Account
	CreditCardID       *uuid.UUID
	CreditCard         *CreditCard
	InstallmentCurrent *int
	InstallmentTotal   *int
}

// BeforeSave verifies the transaction
//   - description, amount, date and type must be valid
//   - expenses must not reference both an account and a credit card
//   - installments must both be set and in range, or both be unset
//   - the category must exist and match the type for income and expenses
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if utf8.RuneCountInString(t.Description) < 2 {
		return ErrNameTooShort
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Date.IsZero() {
		return ErrDateMissing
	}

	if !t.Type.Valid() {
		return ErrTypeInvalid
	}

	// Ensure that unset references are nil, not the nil UUID
	if t.AccountID != nil && *t.AccountID == uuid.Nil {
		t.AccountID = nil
	}

	if t.CreditCardID != nil && *t.CreditCardID == uuid.Nil {
		t.CreditCardID = nil
	}

	if t.Type == client.TypeExpense && t.AccountID != nil && t.CreditCardID != nil {
		return ErrPaymentSourceExclusive
	}

	if (t.InstallmentCurrent == nil) != (t.InstallmentTotal == nil) {
		return ErrInstallmentRange
	}

	if t.InstallmentCurrent != nil && (*t.InstallmentCurrent < 1 || *t.InstallmentTotal < 1 || *t.InstallmentCurrent > *t.InstallmentTotal) {
		return ErrInstallmentRange
	}

	var category Category
	err := tx.Session(&gorm.Session{NewDB: true}).First(&category, "id = ?", t.CategoryID).Error
	if errors.Is(err, ErrResourceNotFound) {
		return fmt.Errorf("%w: category %s", ErrReferenceNotFound, t.CategoryID)
	} else if err != nil {
		return err
	}

	if t.Type != client.TypeTransfer && string(category.Type) != string(t.Type) {
		return ErrCategoryTypeMismatch
	}

	return nil
}

// AccountName returns the name of the account, or the empty string
// if it is not set or not loaded.
func (t Transaction) AccountName() string {
	if t.Account == nil {
		return ""
	}
	return t.Account.Name
}

// CreditCardName returns the name of the credit card, or the empty string
// if it is not set or not loaded.
func (t Transaction) CreditCardName() string {
	if t.CreditCard == nil {
		return ""
	}
	return t.CreditCard.Name
}
