package v1

import (
	"github.com/finance-dashboard/backend/internal/client"
	"github.com/shopspring/decimal"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name string              `json:"name" binding:"min=2" example:"Groceries"`              // Name of the category
	Icon string              `json:"icon" example:"shopping-cart"`                          // Icon shown for the category
	Type client.CategoryType `json:"type" binding:"oneof=INCOME EXPENSE" example:"EXPENSE"` // Type of transactions the category is used for
}

func (e CategoryEditable) request() client.CategoryRequest {
	return client.CategoryRequest{
		Name: e.Name,
		Icon: e.Icon,
		Type: e.Type,
	}
}

// CategoryQueryFilter contains the query parameters for the category list.
type CategoryQueryFilter struct {
	Type string `form:"type" example:"INCOME"` // Only return categories of this type
}

// AccountEditable represents all user configurable parameters
type AccountEditable struct {
	Name           string             `json:"name" binding:"min=2" example:"Checking"`                                  // Name of the account
	InitialBalance decimal.Decimal    `json:"initialBalance" binding:"gte=0" example:"1500" swaggertype:"number"`       // Balance when the account was added
	Type           client.AccountType `json:"type" binding:"oneof=CHECKING SAVINGS CASH INVESTMENT" example:"CHECKING"` // Type of the account
}

func (e AccountEditable) request() client.AccountRequest {
	return client.AccountRequest{
		Name:           e.Name,
		InitialBalance: e.InitialBalance,
		Type:           e.Type,
	}
}

// CreditCardEditable represents all user configurable parameters
type CreditCardEditable struct {
	Name       string          `json:"name" binding:"min=2" example:"Gold"`                            // Name of the credit card
	ClosingDay int             `json:"closingDay" binding:"min=1,max=31" example:"3"`                  // Day of the month the invoice closes
	DueDay     int             `json:"dueDay" binding:"min=1,max=31" example:"10"`                     // Day of the month the invoice is due
	LimitValue decimal.Decimal `json:"limitValue" binding:"gte=0" example:"5000" swaggertype:"number"` // Credit limit
}

func (e CreditCardEditable) request() client.CreditCardRequest {
	return client.CreditCardRequest{
		Name:       e.Name,
		ClosingDay: e.ClosingDay,
		DueDay:     e.DueDay,
		LimitValue: e.LimitValue,
	}
}
