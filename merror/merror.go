// Package merror defines the error types surfaced by the MarzPay SDK.
package merror

import (
	"fmt"
	"strings"
)

// ValidationError describes a single failed input check.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every failed check for a request so callers
// can fix all of them at once instead of round-tripping per failure.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(msgs, "; "))
}

// Messages returns the failure messages in the order the checks ran.
func (v ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// APIError is a non-success response from the MarzPay API. The SDK does
// not retry or reinterpret these; they carry whatever the service said.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("marzpay: %s (%s, http %d)", e.Message, e.Code, e.Status)
	}
	if e.Message != "" {
		return fmt.Sprintf("marzpay: %s (http %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("marzpay: request failed with http %d", e.Status)
}
