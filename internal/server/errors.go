package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"StockDashboard/internal/calculator"
	"StockDashboard/internal/collector"
)

// AppError represents application-level error with HTTP status.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error.
func NewAppError(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, Status: status}
}

// WithError wraps an underlying error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// MapError translates service errors into the status the client sees.
func MapError(err error) *AppError {
	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, collector.ErrInvalidSymbol):
		return NewAppError("ERR_INVALID_SYMBOL", "symbol is not a valid ticker", http.StatusBadRequest).WithError(err)
	case errors.Is(err, collector.ErrInvalidPeriod):
		return NewAppError("ERR_INVALID_PERIOD", "period must be one of 30d, 60d, 90d, all", http.StatusBadRequest).WithError(err)
	case errors.Is(err, collector.ErrSymbolNotFound):
		return NewAppError("ERR_NOT_FOUND", "symbol not found", http.StatusNotFound).WithError(err)
	case errors.Is(err, collector.ErrNoData):
		return NewAppError("ERR_NO_DATA", "no data found for symbol", http.StatusNotFound).WithError(err)
	case errors.Is(err, collector.ErrRateLimited):
		return NewAppError("ERR_RATE_LIMITED", "data source rate limit reached, try again later", http.StatusTooManyRequests).WithError(err)
	case errors.Is(err, calculator.ErrInvalidInput):
		return NewAppError("ERR_INVALID_SERIES", "data source returned an unusable price series", http.StatusUnprocessableEntity).WithError(err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return NewAppError("ERR_UPSTREAM", "data source did not respond in time", http.StatusBadGateway).WithError(err)
	case isUpstream(err):
		return NewAppError("ERR_UPSTREAM", "unable to fetch data from the data source", http.StatusBadGateway).WithError(err)
	default:
		return NewAppError("ERR_INTERNAL", "Something went wrong", http.StatusInternalServerError).WithError(err)
	}
}

// isUpstream reports whether err came out of a fetch.
func isUpstream(err error) bool {
	var fe *collector.FetchError
	return errors.As(err, &fe)
}
