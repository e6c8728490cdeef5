// Package sandbox implements the REST contract of the finance API on top
// of SQLite. It is used for local development and in tests.
//
// Balances and credit card limits are not computed: the current balance
// of an account is its initial balance and no limit is used.
package sandbox

import (
	"crypto/subtle"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/models"
	"github.com/finance-dashboard/backend/internal/uuid"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	errInvalidID   = errors.New("the specified resource ID is not a valid UUID")
	errInvalidBody = errors.New("the body of your request contains invalid or un-parseable data")
	errEmptyBody   = errors.New("the request body must not be empty")
	errPeriod      = errors.New("startDate and endDate must be set as YYYY-MM-DD")
	errTokenFailed = errors.New("the bearer token is missing or invalid")
)

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

// RegisterRoutes registers the routes of the finance API with the
// RouterGroup that is passed.
//
// If token is not empty, all requests must authenticate with it as
// bearer token.
func RegisterRoutes(r *gin.RouterGroup, token string) {
	api := r.Group("/api")
	if token != "" {
		api.Use(authenticate(token))
	}

	registerAccountRoutes(api.Group("/accounts"))
	registerCategoryRoutes(api.Group("/categories"))
	registerCreditCardRoutes(api.Group("/credit-cards"))
	registerTransactionRoutes(api.Group("/transactions"))
}

// authenticate rejects all requests that do not send the token.
func authenticate(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sent, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1 {
			problem(c, http.StatusUnauthorized, errTokenFailed)
			c.Abort()
			return
		}

		c.Next()
	}
}

// status returns the appropriate status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInUse):
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// problem sends the error as problem document.
func problem(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	c.JSON(status, client.Problem{
		Type:      "about:blank",
		Title:     http.StatusText(status),
		Status:    status,
		Detail:    err.Error(),
		Timestamp: time.Now().In(time.UTC).Format(time.RFC3339),
	})
}

// bindID binds the ID from the URI.
func bindID(c *gin.Context) (uuid.UUID, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		problem(c, http.StatusBadRequest, errInvalidID)
		return uuid.Nil, false
	}

	return uri.ID, true
}

// bindBody binds the JSON body of the request.
func bindBody(c *gin.Context, data any) bool {
	err := c.ShouldBindJSON(data)
	if errors.Is(err, io.EOF) {
		problem(c, http.StatusBadRequest, errEmptyBody)
		return false
	} else if err != nil {
		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		problem(c, http.StatusBadRequest, errInvalidBody)
		return false
	}

	return true
}
