package v1

import (
	"time"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/dashboard"
	"github.com/shopspring/decimal"
)

type QueryMonth struct {
	Month time.Time `form:"month" time_format:"2006-01" time_utc:"1" example:"2024-01"` // Year and month in YYYY-MM format
}

// DashboardAmounts are the amounts of the dashboard formatted as currency.
type DashboardAmounts struct {
	TotalBalance string `json:"totalBalance" example:"R$ 1.500,00"`
	Income       string `json:"income" example:"R$ 5.000,00"`
	Expense      string `json:"expense" example:"R$ 3.120,50"`
	CreditUsed   string `json:"creditUsed" example:"R$ 1.200,00"`
}

type Dashboard struct {
	Month              string                    `json:"month" example:"2024-01"`                          // The month shown
	Currency           string                    `json:"currency" example:"BRL"`                           // ISO 4217 code of the currency of all amounts
	TotalBalance       decimal.Decimal           `json:"totalBalance" example:"1500" swaggertype:"number"` // Sum of the current balances of all accounts
	Income             decimal.Decimal           `json:"income" example:"5000" swaggertype:"number"`       // Income in the month
	Expense            decimal.Decimal           `json:"expense" example:"3120.5" swaggertype:"number"`    // Expenses in the month
	CreditUsed         decimal.Decimal           `json:"creditUsed" example:"1200" swaggertype:"number"`   // Sum of the used limit of all credit cards
	Formatted          DashboardAmounts          `json:"formatted"`                                        // The amounts above, formatted as currency
	ExpensesByCategory []dashboard.CategoryTotal `json:"expensesByCategory"`                               // Categories with the highest expenses in the month
	Recent             []client.Transaction      `json:"recent"`                                           // Latest transactions of the month
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                             // Data for the dashboard
	Error *string    `json:"error" example:"the month query parameter must be set as YYYY-MM"` // The error, if any occurred
}
