package calculator

import "errors"

// ErrInvalidInput is the only error the calculator returns. It is wrapped with
// detail; match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
