// Package form implements the transaction form: the draft a user edits,
// the rules it is validated with, the fields derived from user events and
// the translation of a valid draft into a request for the finance API.
package form

import (
	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Draft is the in-progress state of a transaction being created or edited.
//
// Optional references are nil when nothing is selected. A draft is owned
// by exactly one form and is never shared.
type Draft struct {
	Description        string                 `json:"description" validate:"min=2"`
	Amount             decimal.Decimal        `json:"amount" validate:"gt=0"`
	Date               types.Date             `json:"date" validate:"required"`
	Paid               bool                   `json:"paid"`
	Type               client.TransactionType `json:"type" validate:"oneof=INCOME EXPENSE TRANSFER"`
	CategoryID         string                 `json:"categoryId" validate:"required"`
	AccountID          *string                `json:"accountId"`
	CreditCardID       *string                `json:"creditCardId"`
	HasInstallments    bool                   `json:"hasInstallments"`
	InstallmentCurrent int                    `json:"installmentCurrent"`
	InstallmentTotal   int                    `json:"installmentTotal"`
}

// NewDraft returns the draft for a new transaction.
//
// New transactions are unpaid expenses dated today. The installment
// fields start at 1 of 1 but are disabled.
func NewDraft(today types.Date) Draft {
	return Draft{
		Date:               today,
		Type:               client.TypeExpense,
		InstallmentCurrent: 1,
		InstallmentTotal:   1,
	}
}

// Hydrate returns the draft for editing an existing transaction.
func Hydrate(t client.Transaction) Draft {
	d := Draft{
		Description:        t.Description,
		Amount:             t.Amount,
		Date:               t.Date,
		Paid:               t.Paid,
		Type:               t.Type,
		CategoryID:         t.CategoryID,
		AccountID:          ref(deref(t.AccountID)),
		CreditCardID:       ref(deref(t.CreditCardID)),
		InstallmentCurrent: 1,
		InstallmentTotal:   1,
	}

	if t.InstallmentCurrent != nil {
		d.InstallmentCurrent = *t.InstallmentCurrent
	}

	if t.InstallmentTotal != nil {
		d.InstallmentTotal = *t.InstallmentTotal
	}

	// A single installment is a regular transaction
	d.HasInstallments = d.InstallmentTotal > 1

	return d
}

// Sections are the payment source selectors shown for a transaction type.
type Sections struct {
	Account    bool `json:"account"`    // Is the account selector shown?
	CreditCard bool `json:"creditCard"` // Is the credit card selector shown?
}

// SectionsFor returns the payment source selectors for the type.
//
// Income only has a destination account, expenses are paid either from an
// account or with a credit card. Transfers have no payment source.
func SectionsFor(t client.TransactionType) Sections {
	switch t {
	case client.TypeIncome:
		return Sections{Account: true}
	case client.TypeExpense:
		return Sections{Account: true, CreditCard: true}
	default:
		return Sections{}
	}
}

// FilterCategories returns the categories that can be selected for the
// transaction type. All categories are selectable for transfers.
func FilterCategories(t client.TransactionType, categories []client.Category) []client.Category {
	filtered := make([]client.Category, 0, len(categories))
	for _, c := range categories {
		if t == client.TypeTransfer || string(c.Type) == string(t) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}

// ref returns a reference to the ID, or nil for the empty ID.
func ref(id string) *string {
	if id == "" {
		return nil
	}

	return &id
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
