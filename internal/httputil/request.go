package httputil

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type ContextKey string

// ContextURL is the key for the base URL of the API in the gin context.
const ContextURL ContextKey = "requestURL"

// BaseURL returns the base URL of the API for the request.
func BaseURL(c *gin.Context) string {
	return c.GetString(string(ContextURL))
}

// BindData binds the data from the request to the struct passed in the interface.
//
// Validation errors from binding tags are returned as they are, all other
// errors are replaced with ErrInvalidBody or ErrRequestBodyEmpty.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return validationErrors
	}

	var jsonUnmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &jsonUnmarshalTypeError) {
		return err
	}

	log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}
