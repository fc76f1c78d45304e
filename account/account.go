// Package account exposes read-side account operations: balance and
// transaction history.
package account

import (
	"context"
	"net/http"

	"github.com/Katznicho/marzpay-go/internal/query"
	"github.com/Katznicho/marzpay-go/merror"
	"github.com/Katznicho/marzpay-go/transport"
)

// API queries account state. Stateless; safe for concurrent use.
type API struct {
	requester transport.Requester
}

// New constructs an account API over the given transport.
func New(requester transport.Requester) *API {
	return &API{requester: requester}
}

// GetBalance returns the current account balance.
func (a *API) GetBalance(ctx context.Context) (transport.Result, error) {
	return a.requester.Request(ctx, http.MethodGet, "/balance", nil)
}

// ListFilters narrows a GetTransactions query. Zero values are omitted.
type ListFilters struct {
	Page  int
	Limit int
}

// GetTransactions lists account transactions.
func (a *API) GetTransactions(ctx context.Context, filters ListFilters) (transport.Result, error) {
	endpoint := "/transactions" + query.Encode([]query.Pair{
		query.Int("page", filters.Page),
		query.Int("limit", filters.Limit),
	})
	return a.requester.Request(ctx, http.MethodGet, endpoint, nil)
}

// GetTransaction fetches one transaction by ID.
func (a *API) GetTransaction(ctx context.Context, transactionID string) (transport.Result, error) {
	if transactionID == "" {
		return nil, merror.ValidationErrors{{Field: "transaction_id", Message: "Transaction ID is required"}}
	}
	return a.requester.Request(ctx, http.MethodGet, "/transactions/"+transactionID, nil)
}
