// Package disbursements sends money to customers via mobile money and
// queries previously created disbursements.
package disbursements

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Katznicho/marzpay-go/internal/query"
	"github.com/Katznicho/marzpay-go/merror"
	"github.com/Katznicho/marzpay-go/phone"
	"github.com/Katznicho/marzpay-go/reference"
	"github.com/Katznicho/marzpay-go/refstore"
	"github.com/Katznicho/marzpay-go/transport"
)

const (
	// MinAmount is the smallest disbursable amount in UGX.
	MinAmount = 500
	// MaxAmount is the largest disbursable amount in UGX.
	MaxAmount = 10_000_000
	// DefaultCountry is used when the caller does not specify one.
	DefaultCountry = "UG"
)

// API issues disbursement requests against the MarzPay API. Stateless;
// safe for concurrent use.
type API struct {
	requester transport.Requester
	refs      reference.Generator
	store     refstore.Store
	validate  *validator.Validate
}

// Option customizes an API instance.
type Option func(*API)

// WithReferenceGenerator replaces the UUIDv4 reference source.
func WithReferenceGenerator(g reference.Generator) Option {
	return func(a *API) { a.refs = g }
}

// WithReferenceStore enables local duplicate-reference rejection.
func WithReferenceStore(s refstore.Store) Option {
	return func(a *API) { a.store = s }
}

// New constructs a disbursements API over the given transport.
func New(requester transport.Requester, opts ...Option) *API {
	a := &API{
		requester: requester,
		refs:      reference.UUIDGenerator{},
		validate:  validator.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SendParams describes one money-disbursement request. The amount
// bounds and required fields match collections.
type SendParams struct {
	Amount      int64  `validate:"required,gte=500,lte=10000000"`
	PhoneNumber string `validate:"required"`
	Reference   string `validate:"required"`
	Description string
	CallbackURL string
	Country     string
}

// SendMoney validates and normalizes the parameters, then dispatches
// exactly one POST /disbursements request.
func (a *API) SendMoney(ctx context.Context, params SendParams) (transport.Result, error) {
	params.PhoneNumber = strings.TrimSpace(params.PhoneNumber)
	params.Reference = strings.TrimSpace(params.Reference)

	if err := a.validateSendParams(params); err != nil {
		return nil, err
	}

	if params.Country == "" {
		params.Country = DefaultCountry
	}

	if a.store != nil {
		if err := a.store.Register(ctx, params.Reference); err != nil {
			if errors.Is(err, refstore.ErrDuplicate) {
				return nil, merror.ValidationErrors{{
					Field:   "reference",
					Message: fmt.Sprintf("Reference %q has already been used", params.Reference),
				}}
			}
			return nil, fmt.Errorf("reference store: %w", err)
		}
	}

	data := map[string]any{
		"amount":       params.Amount,
		"phone_number": phone.Normalize(params.PhoneNumber),
		"reference":    params.Reference,
		"country":      params.Country,
	}
	if params.Description != "" {
		data["description"] = params.Description
	}
	if params.CallbackURL != "" {
		data["callback_url"] = params.CallbackURL
	}

	return a.requester.Request(ctx, http.MethodPost, "/disbursements", data)
}

// GetDisbursement fetches one disbursement by ID.
func (a *API) GetDisbursement(ctx context.Context, disbursementID string) (transport.Result, error) {
	if disbursementID == "" {
		return nil, merror.ValidationErrors{{Field: "disbursement_id", Message: "Disbursement ID is required"}}
	}
	return a.requester.Request(ctx, http.MethodGet, "/disbursements/"+disbursementID, nil)
}

// ListFilters narrows a GetDisbursements query. Zero values are omitted.
type ListFilters struct {
	Page     int
	Limit    int
	Status   string
	FromDate string // YYYY-MM-DD
	ToDate   string // YYYY-MM-DD
}

// GetDisbursements lists disbursements with the same fixed filter order
// as collections.
func (a *API) GetDisbursements(ctx context.Context, filters ListFilters) (transport.Result, error) {
	endpoint := "/disbursements" + query.Encode([]query.Pair{
		query.Int("page", filters.Page),
		query.Int("limit", filters.Limit),
		query.String("status", filters.Status),
		query.String("from_date", filters.FromDate),
		query.String("to_date", filters.ToDate),
	})
	return a.requester.Request(ctx, http.MethodGet, endpoint, nil)
}

// GetServices lists the mobile-money services available for disbursements.
func (a *API) GetServices(ctx context.Context) (transport.Result, error) {
	return a.requester.Request(ctx, http.MethodGet, "/disbursements/services", nil)
}

// GenerateReference returns a fresh unique reference suitable for
// SendParams.Reference.
func (a *API) GenerateReference() string {
	return a.refs.NewReference()
}

func (a *API) validateSendParams(params SendParams) error {
	err := a.validate.Struct(params)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(merror.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, sendMessage(fe))
	}
	return out
}

func sendMessage(fe validator.FieldError) merror.ValidationError {
	switch fe.StructField() {
	case "Amount":
		switch fe.Tag() {
		case "required":
			return merror.ValidationError{Field: "amount", Message: "Amount is required"}
		case "gte":
			return merror.ValidationError{Field: "amount", Message: fmt.Sprintf("Amount must be at least %d UGX", MinAmount)}
		case "lte":
			return merror.ValidationError{Field: "amount", Message: "Amount must not exceed 10,000,000 UGX"}
		}
	case "PhoneNumber":
		return merror.ValidationError{Field: "phone_number", Message: "Phone number is required"}
	case "Reference":
		return merror.ValidationError{Field: "reference", Message: "Reference is required"}
	}
	return merror.ValidationError{Field: fe.StructField(), Message: fmt.Sprintf("%s is invalid", fe.StructField())}
}
