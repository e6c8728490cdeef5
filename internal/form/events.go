package form

import (
	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Event is a discrete user interaction with a draft.
type Event interface {
	apply(Draft) Draft
}

// Reduce returns the draft that results from applying the event.
//
// The passed draft is not modified.
func Reduce(d Draft, e Event) Draft {
	return e.apply(d)
}

// TypeChanged changes the transaction type.
//
// The category is cleared since categories are filtered by type. Income
// only has a destination account and transfers have no payment source,
// so payment sources not shown for the new type are cleared.
type TypeChanged struct {
	Type client.TransactionType
}

func (e TypeChanged) apply(d Draft) Draft {
	d.Type = e.Type
	d.CategoryID = ""

	switch e.Type {
	case client.TypeIncome:
		d.CreditCardID = nil
	case client.TypeTransfer:
		d.AccountID = nil
		d.CreditCardID = nil
	}

	return d
}

// AccountSelected selects the account. An empty ID clears the selection.
type AccountSelected struct {
	ID string
}

func (e AccountSelected) apply(d Draft) Draft {
	d.AccountID = ref(e.ID)

	// Expenses are paid either from an account or with a credit card
	if e.ID != "" && d.Type == client.TypeExpense {
		d.CreditCardID = nil
	}

	return d
}

// AccountCleared clears the account selection.
type AccountCleared struct{}

func (AccountCleared) apply(d Draft) Draft {
	d.AccountID = nil
	return d
}

// CreditCardSelected selects the credit card. An empty ID clears the selection.
type CreditCardSelected struct {
	ID string
}

func (e CreditCardSelected) apply(d Draft) Draft {
	d.CreditCardID = ref(e.ID)

	if e.ID != "" && d.Type == client.TypeExpense {
		d.AccountID = nil
	}

	return d
}

// CreditCardCleared clears the credit card selection.
type CreditCardCleared struct{}

func (CreditCardCleared) apply(d Draft) Draft {
	d.CreditCardID = nil
	return d
}

// InstallmentsToggled enables or disables installments.
//
// The installment values are kept so that re-enabling restores them.
type InstallmentsToggled struct {
	Enabled bool
}

func (e InstallmentsToggled) apply(d Draft) Draft {
	d.HasInstallments = e.Enabled
	return d
}

type DescriptionChanged struct {
	Description string
}

func (e DescriptionChanged) apply(d Draft) Draft {
	d.Description = e.Description
	return d
}

type AmountChanged struct {
	Amount decimal.Decimal
}

func (e AmountChanged) apply(d Draft) Draft {
	d.Amount = e.Amount
	return d
}

type DateChanged struct {
	Date types.Date
}

func (e DateChanged) apply(d Draft) Draft {
	d.Date = e.Date
	return d
}

type PaidChanged struct {
	Paid bool
}

func (e PaidChanged) apply(d Draft) Draft {
	d.Paid = e.Paid
	return d
}

type CategorySelected struct {
	ID string
}

func (e CategorySelected) apply(d Draft) Draft {
	d.CategoryID = e.ID
	return d
}

type InstallmentCurrentChanged struct {
	Current int
}

func (e InstallmentCurrentChanged) apply(d Draft) Draft {
	d.InstallmentCurrent = e.Current
	return d
}

type InstallmentTotalChanged struct {
	Total int
}

func (e InstallmentTotalChanged) apply(d Draft) Draft {
	d.InstallmentTotal = e.Total
	return d
}
