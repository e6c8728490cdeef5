package client

import (
	"github.com/finance-dashboard/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// swagger:enum TransactionType
type TransactionType string

const (
	TypeIncome   TransactionType = "INCOME"
	TypeExpense  TransactionType = "EXPENSE"
	TypeTransfer TransactionType = "TRANSFER"
)

// TransactionTypes lists all known transaction types.
var TransactionTypes = []TransactionType{TypeIncome, TypeExpense, TypeTransfer}

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return slices.Contains(TransactionTypes, t)
}

// swagger:enum CategoryType
type CategoryType string

const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

// CategoryTypes lists all known category types.
var CategoryTypes = []CategoryType{CategoryIncome, CategoryExpense}

// Valid reports whether t is a known category type.
func (t CategoryType) Valid() bool {
	return slices.Contains(CategoryTypes, t)
}

// swagger:enum AccountType
type AccountType string

const (
	AccountChecking   AccountType = "CHECKING"
	AccountSavings    AccountType = "SAVINGS"
	AccountCash       AccountType = "CASH"
	AccountInvestment AccountType = "INVESTMENT"
)

// AccountTypes lists all known account types.
var AccountTypes = []AccountType{AccountChecking, AccountSavings, AccountCash, AccountInvestment}

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	return slices.Contains(AccountTypes, t)
}

// TransactionRequest is the body for creating and updating transactions.
//
// Optional references and installment fields are omitted from the JSON
// document when they are nil. The finance API must never receive an
// empty string as a reference.
type TransactionRequest struct {
	Description        string          `json:"description" example:"Market"`
	Amount             decimal.Decimal `json:"amount" example:"50" swaggertype:"number"`
	Date               types.Date      `json:"date" example:"2024-01-05" swaggertype:"string"`
	Paid               bool            `json:"paid" example:"false"`
	Type               TransactionType `json:"type" example:"EXPENSE"`
	CategoryID         string          `json:"categoryId" example:"cat-1"`
	AccountID          *string         `json:"accountId,omitempty" example:"acc-1"`
	CreditCardID       *string         `json:"creditCardId,omitempty" example:"card-1"`
	InstallmentCurrent *int            `json:"installmentCurrent,omitempty" example:"1"`
	InstallmentTotal   *int            `json:"installmentTotal,omitempty" example:"3"`
}

// Transaction is a transaction as returned by the finance API.
//
// The *Name fields are display snapshots of the referenced resources.
// They are not authoritative, use the IDs for references.
type Transaction struct {
	ID                 string          `json:"id" example:"3f0c2b53-1b1e-4a53-9c43-9e2a7ad4b1aa"`
	Description        string          `json:"description" example:"Market"`
	Amount             decimal.Decimal `json:"amount" example:"50" swaggertype:"number"`
	Date               types.Date      `json:"date" example:"2024-01-05" swaggertype:"string"`
	Paid               bool            `json:"paid" example:"false"`
	Type               TransactionType `json:"type" example:"EXPENSE"`
	CategoryID         string          `json:"categoryId" example:"cat-1"`
	CategoryName       string          `json:"categoryName" example:"Groceries"`
	AccountID          *string         `json:"accountId,omitempty" example:"acc-1"`
	AccountName        string          `json:"accountName,omitempty" example:"Checking"`
	CreditCardID       *string         `json:"creditCardId,omitempty"`
	CreditCardName     string          `json:"creditCardName,omitempty"`
	InstallmentCurrent *int            `json:"installmentCurrent,omitempty"`
	InstallmentTotal   *int            `json:"installmentTotal,omitempty"`
}

// CategoryRequest is the body for creating and updating categories.
type CategoryRequest struct {
	Name string       `json:"name" example:"Groceries"`
	Icon string       `json:"icon,omitempty" example:"shopping-cart"`
	Type CategoryType `json:"type" example:"EXPENSE"`
}

// Category is a category as returned by the finance API.
type Category struct {
	ID   string       `json:"id" example:"cat-1"`
	Name string       `json:"name" example:"Groceries"`
	Icon string       `json:"icon,omitempty" example:"shopping-cart"`
	Type CategoryType `json:"type" example:"EXPENSE"`
}

// AccountRequest is the body for creating and updating accounts.
type AccountRequest struct {
	Name           string          `json:"name" example:"Checking"`
	InitialBalance decimal.Decimal `json:"initialBalance" example:"1500" swaggertype:"number"`
	Type           AccountType     `json:"type" example:"CHECKING"`
}

// Account is an account as returned by the finance API.
type Account struct {
	ID             string          `json:"id" example:"acc-1"`
	Name           string          `json:"name" example:"Checking"`
	InitialBalance decimal.Decimal `json:"initialBalance" example:"1500" swaggertype:"number"`
	CurrentBalance decimal.Decimal `json:"currentBalance" example:"1320.45" swaggertype:"number"`
	Type           AccountType     `json:"type" example:"CHECKING"`
}

// CreditCardRequest is the body for creating and updating credit cards.
type CreditCardRequest struct {
	Name       string          `json:"name" example:"Gold"`
	ClosingDay int             `json:"closingDay" example:"3"`
	DueDay     int             `json:"dueDay" example:"10"`
	LimitValue decimal.Decimal `json:"limitValue" example:"5000" swaggertype:"number"`
}

// CreditCard is a credit card as returned by the finance API.
type CreditCard struct {
	ID             string          `json:"id" example:"card-1"`
	Name           string          `json:"name" example:"Gold"`
	ClosingDay     int             `json:"closingDay" example:"3"`
	DueDay         int             `json:"dueDay" example:"10"`
	LimitValue     decimal.Decimal `json:"limitValue" example:"5000" swaggertype:"number"`
	UsedLimit      decimal.Decimal `json:"usedLimit" example:"1200" swaggertype:"number"`
	AvailableLimit decimal.Decimal `json:"availableLimit" example:"3800" swaggertype:"number"`
}

// Period is a closed date range. The zero Period matches all dates.
type Period struct {
	Start types.Date
	End   types.Date
}

// MonthPeriod returns the period spanning the month the date is in.
func MonthPeriod(d types.Date) Period {
	return Period{Start: d.StartOfMonth(), End: d.EndOfMonth()}
}

// IsZero reports whether the period is unbounded.
func (p Period) IsZero() bool {
	return p.Start.IsZero() && p.End.IsZero()
}
