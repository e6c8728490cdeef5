package form

import (
	"errors"

	"github.com/finance-dashboard/backend/internal/client"
)

var ErrNotValidated = errors.New("the draft has not been validated")

// ToRequest translates a valid draft into the request for the finance API.
//
// Unselected references are omitted, never sent as empty strings. The
// installment fields are only sent when installments are enabled.
//
// ErrNotValidated is returned for a ValidDraft that was not returned by
// Validate or ValidateWithCategories.
func ToRequest(v ValidDraft) (client.TransactionRequest, error) {
	if !v.validated {
		return client.TransactionRequest{}, ErrNotValidated
	}

	d := v.draft

	r := client.TransactionRequest{
		Description:  d.Description,
		Amount:       d.Amount,
		Date:         d.Date,
		Paid:         d.Paid,
		Type:         d.Type,
		CategoryID:   d.CategoryID,
		AccountID:    ref(deref(d.AccountID)),
		CreditCardID: ref(deref(d.CreditCardID)),
	}

	if d.HasInstallments {
		current, total := d.InstallmentCurrent, d.InstallmentTotal
		r.InstallmentCurrent = &current
		r.InstallmentTotal = &total
	}

	return r, nil
}
