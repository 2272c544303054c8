package server

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var requestValidator = newRequestValidator()

// newRequestValidator reports fields under the path or query name the client sent.
func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"param", "query"} {
			if name := f.Tag.Get(tag); name != "" && name != "-" {
				return name
			}
		}
		return strings.ToLower(f.Name)
	})
	return v
}

// bindStockRequest fills req from the path and query, applies default tags
// and validates the symbol and period. It returns nil or a []ValidationError.
func bindStockRequest(c echo.Context, req *StockRequest) interface{} {
	if err := c.Bind(req); err != nil {
		return requestErrors(err)
	}
	if err := defaults.Set(req); err != nil {
		return requestErrors(err)
	}
	req.Symbol = strings.TrimSpace(req.Symbol)
	if err := requestValidator.StructCtx(c.Request().Context(), req); err != nil {
		return requestErrors(err)
	}
	return nil
}

func requestErrors(err error) []ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		msg := err.Error()
		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg = fmt.Sprint(he.Message)
		}
		return []ValidationError{{Code: "ERR_BAD_REQUEST", Message: msg}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		ve := ValidationError{
			Code:  "ERR_INVALID_" + strings.ToUpper(fe.Field()),
			Field: fe.Field(),
		}
		switch fe.Field() {
		case "symbol":
			ve.Message = symbolMessage(fe)
		case "period":
			ve.Message = "period must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
			ve.Params = map[string]interface{}{"allowed": strings.Fields(fe.Param())}
		default:
			ve.Message = fmt.Sprintf("%s is invalid", fe.Field())
		}
		out = append(out, ve)
	}
	return out
}

func symbolMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "a ticker symbol is required"
	case "max":
		return fmt.Sprintf("ticker symbols are at most %s characters", fe.Param())
	}
	return "symbol is not a valid ticker"
}
