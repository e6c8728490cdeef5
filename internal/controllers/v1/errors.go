package v1

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/form"
	"github.com/finance-dashboard/backend/internal/httputil"
	"github.com/finance-dashboard/backend/internal/uuid"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error   string            `json:"error" example:"the specified resource ID is not a valid UUID"`             // The error
	Fields  map[string]string `json:"fields,omitempty" example:"description:must be at least 2 characters long"` // Errors of single fields, if the request was invalid
	Problem *client.Problem   `json:"problem,omitempty"`                                                         // The error as sent by the finance API, if any
}

var (
	errMonthInvalid  = errors.New("the month query parameter must be set as YYYY-MM")
	errPeriodInvalid = errors.New("startDate and endDate must both be set as YYYY-MM-DD")
	errTabInvalid    = errors.New("the tab must be one of all, INCOME, EXPENSE, pending")
	errTypeInvalid   = errors.New("the type must be one of INCOME, EXPENSE")
	errFieldsInvalid = errors.New("the request contains invalid fields")
)

// status returns the appropriate status for an error
func status(err error) int {
	var (
		fieldErrors      form.FieldErrors
		validationErrors validator.ValidationErrors
		session          *client.SessionError
		problem          *client.Problem
	)

	switch {
	case errors.As(err, &fieldErrors):
		return http.StatusUnprocessableEntity
	case errors.As(err, &validationErrors):
		return http.StatusBadRequest
	case errors.Is(err, form.ErrSubmissionInFlight), errors.Is(err, form.ErrFormBusy):
		return http.StatusConflict
	case errors.Is(err, form.ErrFormNotFound), errors.Is(err, form.ErrFormClosed):
		return http.StatusNotFound
	case errors.As(err, &session):
		return http.StatusUnauthorized
	case errors.As(err, &problem):
		if problem.Status >= 400 && problem.Status <= 599 {
			return problem.Status
		}
		return http.StatusBadGateway
	case errors.Is(err, client.ErrUnavailable), errors.Is(err, client.ErrInvalidResponse):
		return http.StatusBadGateway
	}

	return http.StatusBadRequest
}

// newHTTPError builds the response body for an error.
func newHTTPError(err error) httpError {
	e := httpError{
		Error: err.Error(),
	}

	var fieldErrors form.FieldErrors
	if errors.As(err, &fieldErrors) {
		e.Fields = fieldErrors.Messages()
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		e.Error = errFieldsInvalid.Error()
		e.Fields = make(map[string]string, len(validationErrors))
		for _, fe := range validationErrors {
			e.Fields[fe.Field()] = validationMessage(fe)
		}
	}

	var problem *client.Problem
	if errors.As(err, &problem) {
		e.Problem = problem
	}

	return e
}

// validationMessage returns the message for a failed binding rule.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must be set"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters long"
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must not be negative"
	case "oneof":
		return "must be one of " + fe.Param()
	}

	return "is not valid"
}

// fail sends the error with the appropriate status.
func fail(c *gin.Context, err error) {
	s := status(err)
	if s == http.StatusBadGateway {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	c.JSON(s, newHTTPError(err))
}

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// bindFormID binds the ID of a transaction form.
func bindFormID(c *gin.Context) (uuid.UUID, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return uuid.Nil, false
	}

	return uri.ID, true
}
