package form

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/types"
	"github.com/shopspring/decimal"
)

// None is the value selector widgets use when nothing is selected.
const None = "none"

var (
	ErrUnknownField = errors.New("the form has no field with this name")
	ErrInvalidValue = errors.New("the value is not valid for this field")
)

// Widget is the draft as presented to input widgets.
//
// Selectors cannot represent an absent value, they use None instead.
// Amounts and dates are formatted from the draft. Text that could not be
// parsed when it was entered is shown empty.
type Widget struct {
	Description        string `json:"description" example:"Market"`
	Amount             string `json:"amount" example:"50"`
	Date               string `json:"date" example:"2024-01-05"`
	Paid               bool   `json:"paid" example:"false"`
	Type               string `json:"type" example:"EXPENSE"`
	CategoryID         string `json:"categoryId" example:"cat-1"`
	AccountID          string `json:"accountId" example:"acc-1"`
	CreditCardID       string `json:"creditCardId" example:"none"`
	HasInstallments    bool   `json:"hasInstallments" example:"false"`
	InstallmentCurrent int    `json:"installmentCurrent" example:"1"`
	InstallmentTotal   int    `json:"installmentTotal" example:"1"`
}

// WidgetOf returns the widget values for the draft.
func WidgetOf(d Draft) Widget {
	w := Widget{
		Description:        d.Description,
		Date:               d.Date.String(),
		Paid:               d.Paid,
		Type:               string(d.Type),
		CategoryID:         d.CategoryID,
		AccountID:          selected(d.AccountID),
		CreditCardID:       selected(d.CreditCardID),
		HasInstallments:    d.HasInstallments,
		InstallmentCurrent: d.InstallmentCurrent,
		InstallmentTotal:   d.InstallmentTotal,
	}

	if !d.Amount.IsZero() {
		w.Amount = d.Amount.String()
	}

	return w
}

func selected(id *string) string {
	if id == nil || *id == "" {
		return None
	}

	return *id
}

// ParseEvent translates a change of a widget into the event for the draft.
//
// field is the wire name of the field. Text that cannot be parsed as an
// amount, date or installment number results in an empty value, which is
// then reported by validation.
func ParseEvent(field string, value json.RawMessage) (Event, error) {
	switch field {
	case "description":
		s, err := decodeString(value)
		if err != nil {
			return nil, err
		}
		return DescriptionChanged{Description: s}, nil

	case "amount":
		return AmountChanged{Amount: parseAmount(value)}, nil

	case "date":
		s, err := decodeString(value)
		if err != nil {
			return nil, err
		}

		date, err := types.ParseDate(s)
		if err != nil {
			date = types.Date{}
		}
		return DateChanged{Date: date}, nil

	case "paid":
		b, err := decodeBool(value)
		if err != nil {
			return nil, err
		}
		return PaidChanged{Paid: b}, nil

	case "type":
		s, err := decodeString(value)
		if err != nil {
			return nil, err
		}
		return TypeChanged{Type: client.TransactionType(s)}, nil

	case "categoryId":
		s, err := decodeString(value)
		if err != nil {
			return nil, err
		}
		if s == None {
			s = ""
		}
		return CategorySelected{ID: s}, nil

	case "accountId":
		s, err := decodeString(value)
		if err != nil {
			return nil, err
		}
		if s == "" || s == None {
			return AccountCleared{}, nil
		}
		return AccountSelected{ID: s}, nil

	case "creditCardId":
		s, err := decodeString(value)
		if err != nil {
			return nil, err
		}
		if s == "" || s == None {
			return CreditCardCleared{}, nil
		}
		return CreditCardSelected{ID: s}, nil

	case "hasInstallments":
		b, err := decodeBool(value)
		if err != nil {
			return nil, err
		}
		return InstallmentsToggled{Enabled: b}, nil

	case "installmentCurrent":
		return InstallmentCurrentChanged{Current: parseInt(value)}, nil

	case "installmentTotal":
		return InstallmentTotalChanged{Total: parseInt(value)}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
}

func decodeString(value json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", fmt.Errorf("%w: expected a string", ErrInvalidValue)
	}

	return s, nil
}

func decodeBool(value json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(value, &b); err != nil {
		return false, fmt.Errorf("%w: expected true or false", ErrInvalidValue)
	}

	return b, nil
}

// text returns the value as text. JSON strings are unquoted, all other
// values are used as they are.
func text(value json.RawMessage) string {
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return strings.TrimSpace(s)
	}

	return strings.TrimSpace(string(value))
}

func parseAmount(value json.RawMessage) decimal.Decimal {
	d, err := decimal.NewFromString(text(value))
	if err != nil {
		return decimal.Zero
	}

	return d
}

func parseInt(value json.RawMessage) int {
	i, err := strconv.Atoi(text(value))
	if err != nil {
		return 0
	}

	return i
}
