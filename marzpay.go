// Package marzpay is the Go SDK for the MarzPay mobile-money API. It
// shapes, validates and dispatches requests; all payment processing
// happens on the MarzPay side.
//
//	cfg := config.Config{APIUser: "...", APIKey: "..."}
//	client, err := marzpay.New(cfg)
//	if err != nil {
//		// ...
//	}
//
//	result, err := client.Collections().CollectMoney(ctx, collections.CollectParams{
//		Amount:      5000,
//		PhoneNumber: "0759983853",
//		Reference:   client.Collections().GenerateReference(),
//		Description: "Payment for services",
//	})
package marzpay

import (
	"fmt"
	"log/slog"

	"github.com/Katznicho/marzpay-go/account"
	"github.com/Katznicho/marzpay-go/collections"
	"github.com/Katznicho/marzpay-go/config"
	"github.com/Katznicho/marzpay-go/disbursements"
	"github.com/Katznicho/marzpay-go/logging"
	"github.com/Katznicho/marzpay-go/reference"
	"github.com/Katznicho/marzpay-go/refstore"
	"github.com/Katznicho/marzpay-go/transport"
	"github.com/Katznicho/marzpay-go/verification"
	"github.com/Katznicho/marzpay-go/webhook"
)

// Result is the decoded response document returned by every API call.
type Result = transport.Result

// Client is the entry point to the SDK. It is stateless apart from its
// configuration and safe for concurrent use.
type Client struct {
	cfg       config.Config
	requester transport.Requester
	logger    *slog.Logger
	refs      reference.Generator
	store     refstore.Store

	collections   *collections.API
	disbursements *disbursements.API
	account       *account.API
	verification  *verification.API
	webhooks      *webhook.Verifier
}

// Option customizes a Client.
type Option func(*Client)

// WithRequester replaces the HTTP transport, e.g. with a stub in tests.
func WithRequester(r transport.Requester) Option {
	return func(c *Client) { c.requester = r }
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithReferenceGenerator replaces the UUIDv4 reference source.
func WithReferenceGenerator(g reference.Generator) Option {
	return func(c *Client) { c.refs = g }
}

// WithReferenceStore enables local duplicate-reference rejection for
// collections and disbursements. Off by default: without a store the
// SDK tracks nothing and uniqueness stays the caller's responsibility.
func WithReferenceStore(s refstore.Store) Option {
	return func(c *Client) { c.store = s }
}

// New builds a Client from the given configuration.
func New(cfg config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("marzpay: %w", err)
	}

	c := &Client{
		cfg:  cfg,
		refs: reference.UUIDGenerator{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logging.New(cfg.LogLevel)
	}
	if c.requester == nil {
		c.requester = transport.NewClient(cfg, c.logger)
	}

	resourceOpts := []collections.Option{collections.WithReferenceGenerator(c.refs)}
	disburseOpts := []disbursements.Option{disbursements.WithReferenceGenerator(c.refs)}
	if c.store != nil {
		resourceOpts = append(resourceOpts, collections.WithReferenceStore(c.store))
		disburseOpts = append(disburseOpts, disbursements.WithReferenceStore(c.store))
	}

	c.collections = collections.New(c.requester, resourceOpts...)
	c.disbursements = disbursements.New(c.requester, disburseOpts...)
	c.account = account.New(c.requester)
	c.verification = verification.New(c.requester)
	c.webhooks = webhook.NewVerifier(cfg.WebhookSecret)

	return c, nil
}

// NewFromEnv builds a Client from environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// Collections accesses money-collection operations.
func (c *Client) Collections() *collections.API { return c.collections }

// Disbursements accesses money-sending operations.
func (c *Client) Disbursements() *disbursements.API { return c.disbursements }

// Account accesses balance and transaction history.
func (c *Client) Account() *account.API { return c.account }

// Verification accesses the phone verification flow.
func (c *Client) Verification() *verification.API { return c.verification }

// Webhooks verifies callback deliveries against the configured secret.
func (c *Client) Webhooks() *webhook.Verifier { return c.webhooks }
