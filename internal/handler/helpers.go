package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/fritz-immanuel/luxtrack/internal/apierror"
	"github.com/fritz-immanuel/luxtrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// decimal.Decimal is a struct; validate it through its string form so
	// tags like required and gte work on money fields.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// bindAndValidate decodes the JSON body into req and runs struct validation.
// On failure it writes the error response and returns false; the handler
// must return immediately.
func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid request body"))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[strings.ToLower(fe.Field())] = fe.Tag()
			}
			c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
			return false
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Validation error"))
		return false
	}
	return true
}

// respondError resolves a service error to its status and envelope.
// Unexpected errors get logged with the request id; their cause never
// reaches the client.
func respondError(c *gin.Context, err error) {
	status, resp := apierror.Resolve(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}
	c.JSON(status, resp)
}
