// Package collections initiates money collections from customers via
// mobile money and queries previously created collections.
package collections

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
	// MinAmount is the smallest collectable amount in UGX.
	MinAmount = 500
	// MaxAmount is the largest collectable amount in UGX.
	MaxAmount = 10_000_000
	// DefaultCountry is used when the caller does not specify one.
	DefaultCountry = "UG"
)

// API issues collection requests against the MarzPay API. It holds no
// mutable state, so a single instance is safe for concurrent use.
type API struct {
	requester transport.Requester
	refs      reference.Generator
	store     refstore.Store
	validate  *validator.Validate
}

// Option customizes an API instance.
type Option func(*API)

// WithReferenceGenerator replaces the UUIDv4 reference source, letting
// tests supply deterministic values.
func WithReferenceGenerator(g reference.Generator) Option {
	return func(a *API) { a.refs = g }
}

// WithReferenceStore enables local duplicate-reference rejection before
// dispatch. Without it, reference uniqueness stays the caller's
// responsibility and nothing is tracked.
func WithReferenceStore(s refstore.Store) Option {
	return func(a *API) { a.store = s }
}

// New constructs a collections API over the given transport.
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

// CollectParams describes one money-collection request.
type CollectParams struct {
	// Amount to collect, in UGX.
	Amount int64 `validate:"required,gte=500,lte=10000000"`
	// PhoneNumber of the customer, in any common local or
	// international format.
	PhoneNumber string `validate:"required"`
	// Reference must be unique per account; use GenerateReference.
	Reference string `validate:"required"`
	// Description of the payment (optional).
	Description string
	// CallbackURL overrides the account-level webhook URL (optional).
	CallbackURL string
	// Country code, ISO-3166 alpha-2. Defaults to "UG".
	Country string
}

// CollectMoney validates and normalizes the parameters, then dispatches
// exactly one POST /collections request. All validation failures are
// collected into a single merror.ValidationErrors before any network
// activity; transport failures propagate unchanged.
func (a *API) CollectMoney(ctx context.Context, params CollectParams) (transport.Result, error) {
	params.PhoneNumber = strings.TrimSpace(params.PhoneNumber)
	params.Reference = strings.TrimSpace(params.Reference)

	if err := a.validateCollectParams(params); err != nil {
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

	return a.requester.Request(ctx, http.MethodPost, "/collections", data)
}

// GetCollection fetches one collection by ID.
func (a *API) GetCollection(ctx context.Context, collectionID string) (transport.Result, error) {
	if collectionID == "" {
		return nil, merror.ValidationErrors{{Field: "collection_id", Message: "Collection ID is required"}}
	}
	return a.requester.Request(ctx, http.MethodGet, "/collections/"+collectionID, nil)
}

// ListFilters narrows a GetCollections query. Zero values are omitted
// from the request entirely.
type ListFilters struct {
	Page     int
	Limit    int
	Status   string
	FromDate string // YYYY-MM-DD
	ToDate   string // YYYY-MM-DD
}

// GetCollections lists collections. Provided filters are sent in a fixed
// page, limit, status, from_date, to_date order with percent-encoded
// values; filter contents are not validated locally.
func (a *API) GetCollections(ctx context.Context, filters ListFilters) (transport.Result, error) {
	endpoint := "/collections" + query.Encode([]query.Pair{
		query.Int("page", filters.Page),
		query.Int("limit", filters.Limit),
		query.String("status", filters.Status),
		query.String("from_date", filters.FromDate),
		query.String("to_date", filters.ToDate),
	})
	return a.requester.Request(ctx, http.MethodGet, endpoint, nil)
}

// GetServices lists the mobile-money services available for collections.
func (a *API) GetServices(ctx context.Context) (transport.Result, error) {
	return a.requester.Request(ctx, http.MethodGet, "/collections/services", nil)
}

// GenerateReference returns a fresh unique reference suitable for
// CollectParams.Reference.
func (a *API) GenerateReference() string {
	return a.refs.NewReference()
}

func (a *API) validateCollectParams(params CollectParams) error {
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
		out = append(out, collectMessage(fe))
	}
	return out
}

func collectMessage(fe validator.FieldError) merror.ValidationError {
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
