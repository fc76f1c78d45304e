// Package verification confirms customer phone numbers before payments
// are attempted against them.
package verification

import (
	"context"
	"net/http"
	"strings"

	"github.com/Katznicho/marzpay-go/merror"
	"github.com/Katznicho/marzpay-go/phone"
	"github.com/Katznicho/marzpay-go/transport"
)

// API drives the phone verification flow. Stateless; safe for
// concurrent use.
type API struct {
	requester transport.Requester
}

// New constructs a verification API over the given transport.
func New(requester transport.Requester) *API {
	return &API{requester: requester}
}

// VerifyPhone asks MarzPay to send a verification code to the number.
// The number is normalized the same way collection requests are.
func (a *API) VerifyPhone(ctx context.Context, phoneNumber string) (transport.Result, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return nil, merror.ValidationErrors{{Field: "phone_number", Message: "Phone number is required"}}
	}

	return a.requester.Request(ctx, http.MethodPost, "/verify/phone", map[string]any{
		"phone_number": phone.Normalize(phoneNumber),
	})
}

// ConfirmPhone submits the code the customer received. Both failures are
// reported together when number and code are missing.
func (a *API) ConfirmPhone(ctx context.Context, phoneNumber, code string) (transport.Result, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	code = strings.TrimSpace(code)

	var verrs merror.ValidationErrors
	if phoneNumber == "" {
		verrs = append(verrs, merror.ValidationError{Field: "phone_number", Message: "Phone number is required"})
	}
	if code == "" {
		verrs = append(verrs, merror.ValidationError{Field: "code", Message: "Verification code is required"})
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	return a.requester.Request(ctx, http.MethodPost, "/verify/phone/confirm", map[string]any{
		"phone_number": phone.Normalize(phoneNumber),
		"code":         code,
	})
}
