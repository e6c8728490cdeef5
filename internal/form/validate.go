package form

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Reason describes why a field failed validation.
type Reason string

const (
	TooShort     Reason = "TooShort"     // The text is shorter than 2 characters
	NotPositive  Reason = "NotPositive"  // The amount is zero or negative
	Missing      Reason = "Missing"      // A required value is not set
	Invalid      Reason = "Invalid"      // The value is not one of the allowed values
	InvalidRange Reason = "InvalidRange" // The installment position is not within the series
	TypeMismatch Reason = "TypeMismatch" // The category type does not match the transaction type
	Unknown      Reason = "Unknown"      // The referenced resource does not exist
)

var messages = map[Reason]string{
	TooShort:     "must be at least 2 characters long",
	NotPositive:  "must be greater than zero",
	Missing:      "is required",
	Invalid:      "is not a valid value",
	InvalidRange: "must be between 1 and the total number of installments",
	TypeMismatch: "does not match the transaction type",
	Unknown:      "references a resource that does not exist",
}

// Message returns a human readable description of the reason.
func (r Reason) Message() string {
	if m, ok := messages[r]; ok {
		return m
	}

	return string(r)
}

// FieldErrors maps the wire name of each invalid field to the reason it
// is invalid. All invalid fields of a draft are reported at once.
type FieldErrors map[string]Reason

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s %s", field, e[field].Message()))
	}

	return "the transaction is not valid: " + strings.Join(parts, ", ")
}

// Messages returns the human readable message for each invalid field.
func (e FieldErrors) Messages() map[string]string {
	m := make(map[string]string, len(e))
	for field, reason := range e {
		m[field] = reason.Message()
	}

	return m
}

// ValidDraft is a draft that passed validation. Only the values returned
// by Validate and ValidateWithCategories are accepted by ToRequest.
type ValidDraft struct {
	draft     Draft
	validated bool
}

// Draft returns a copy of the validated draft.
func (v ValidDraft) Draft() Draft {
	return v.draft
}

var validate = newValidator()

// tagReasons maps validator tags to the reason reported for them.
var tagReasons = map[string]Reason{
	"min":          TooShort,
	"gt":           NotPositive,
	"required":     Missing,
	"oneof":        Invalid,
	"installments": InvalidRange,
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by the names used on the wire
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	RegisterTypes(v)
	v.RegisterStructValidation(validateInstallments, Draft{})

	return v
}

// RegisterTypes teaches a validator how to validate decimals and dates.
//
// Decimals are validated by their sign, so "gt=0" requires a positive and
// "gte=0" a non-negative amount. Dates are validated as time.Time.
func RegisterTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.Sign()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(types.Date); ok {
			return time.Time(d)
		}
		return nil
	}, types.Date{})
}

// validateInstallments verifies that the installment position is within
// the series. Both fields are reported when the range is invalid.
func validateInstallments(sl validator.StructLevel) {
	d := sl.Current().Interface().(Draft)
	if !d.HasInstallments {
		return
	}

	if d.InstallmentCurrent >= 1 && d.InstallmentTotal >= 1 && d.InstallmentCurrent <= d.InstallmentTotal {
		return
	}

	sl.ReportError(d.InstallmentCurrent, "installmentCurrent", "InstallmentCurrent", "installments", "")
	sl.ReportError(d.InstallmentTotal, "installmentTotal", "InstallmentTotal", "installments", "")
}

// Validate checks all field rules of the draft.
//
// Either a ValidDraft or the errors of all invalid fields are returned.
func Validate(d Draft) (ValidDraft, FieldErrors) {
	err := validate.Struct(d)
	if err == nil {
		return ValidDraft{draft: d, validated: true}, nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Only returned for invalid arguments, which a Draft never is
		panic(err)
	}

	errs := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		reason, ok := tagReasons[fe.Tag()]
		if !ok {
			reason = Invalid
		}
		errs[fe.Field()] = reason
	}

	return ValidDraft{}, errs
}

// ValidateWithCategories validates the draft like Validate and also checks
// that the category exists and fits the transaction type.
//
// Transfers may use a category of any type.
func ValidateWithCategories(d Draft, categories []client.Category) (ValidDraft, FieldErrors) {
	valid, errs := Validate(d)

	if d.CategoryID == "" {
		return valid, errs
	}

	var reason Reason
	category, found := findCategory(categories, d.CategoryID)
	switch {
	case !found:
		reason = Unknown
	case d.Type.Valid() && d.Type != client.TypeTransfer && string(category.Type) != string(d.Type):
		reason = TypeMismatch
	default:
		return valid, errs
	}

	if errs == nil {
		errs = FieldErrors{}
	}
	errs["categoryId"] = reason

	return ValidDraft{}, errs
}

func findCategory(categories []client.Category, id string) (client.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}

	return client.Category{}, false
}
