package upstream

import (
	"errors"
	"fmt"

	"github.com/GlebRadaev/otpshop/pkg/utils"
)

// APIError is any failed call to the upstream API. Message is what the user sees.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

var errEmptyToken = errors.New("empty token in response")

func newAPIError(status int, message string, err error) *APIError {
	if message == "" {
		message = utils.FallbackMessage
	}
	return &APIError{Status: status, Message: message, Err: err}
}
