// Package webhook verifies and parses the callbacks MarzPay sends to
// the URL supplied in collection and disbursement requests.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw request body.
const SignatureHeader = "X-MarzPay-Signature"

// ErrInvalidSignature is returned when the callback signature does not
// match the webhook secret.
var ErrInvalidSignature = errors.New("webhook signature mismatch")

// Event is one callback delivery.
type Event struct {
	Type string         `json:"event"`
	Data map[string]any `json:"data"`
}

// Verifier checks callback authenticity against the account webhook
// secret.
type Verifier struct {
	secret []byte
}

// NewVerifier builds a verifier for the given webhook secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify compares the signature against the raw body in constant time.
func (v *Verifier) Verify(body []byte, signature string) error {
	want, err := hex.DecodeString(signature)
	if err != nil {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	if !hmac.Equal(mac.Sum(nil), want) {
		return ErrInvalidSignature
	}
	return nil
}

// ParseEvent verifies the signature and decodes the event payload.
func (v *Verifier) ParseEvent(body []byte, signature string) (Event, error) {
	if err := v.Verify(body, signature); err != nil {
		return Event{}, err
	}

	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return Event{}, fmt.Errorf("decode webhook body: %w", err)
	}
	return event, nil
}

// Sign computes the signature MarzPay would attach to body. Exposed for
// test servers and local tooling.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Handler adapts the verifier into a Fiber handler, invoking fn for each
// authenticated event.
func Handler(v *Verifier, logger *slog.Logger, fn func(Event) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		event, err := v.ParseEvent(c.Body(), c.Get(SignatureHeader))
		if err != nil {
			if errors.Is(err, ErrInvalidSignature) {
				return fiber.NewError(fiber.StatusUnauthorized, "invalid signature")
			}
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if logger != nil {
			logger.Info("webhook event received", "type", event.Type)
		}

		if err := fn(event); err != nil {
			if logger != nil {
				logger.Error("webhook handler failed", "type", event.Type, "error", err)
			}
			return fiber.NewError(fiber.StatusInternalServerError, "handler failure")
		}

		return c.JSON(fiber.Map{"received": true})
	}
}
