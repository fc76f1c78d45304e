package marzpay

import (
	"context"
	"testing"

	"github.com/Katznicho/marzpay-go/collections"
	"github.com/Katznicho/marzpay-go/config"
	"github.com/Katznicho/marzpay-go/logging"
	"github.com/Katznicho/marzpay-go/transport"
)

type stubRequester struct {
	paths []string
}

func (s *stubRequester) Request(_ context.Context, _, path string, _ map[string]any) (transport.Result, error) {
	s.paths = append(s.paths, path)
	return transport.Result{}, nil
}

func testConfig() config.Config {
	return config.Config{APIUser: "user", APIKey: "key"}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(config.Config{}); err == nil {
		t.Fatal("expected error for missing credentials")
	}
}

func TestNewWiresAllResources(t *testing.T) {
	client, err := New(testConfig(), WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if client.Collections() == nil || client.Disbursements() == nil ||
		client.Account() == nil || client.Verification() == nil || client.Webhooks() == nil {
		t.Fatal("resource API not wired")
	}
}

func TestInjectedRequesterIsUsed(t *testing.T) {
	stub := &stubRequester{}
	client, err := New(testConfig(), WithRequester(stub), WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	params := collections.CollectParams{
		Amount:      5000,
		PhoneNumber: "0759983853",
		Reference:   client.Collections().GenerateReference(),
	}
	if _, err := client.Collections().CollectMoney(context.Background(), params); err != nil {
		t.Fatalf("collect money: %v", err)
	}
	if _, err := client.Account().GetBalance(context.Background()); err != nil {
		t.Fatalf("get balance: %v", err)
	}

	if len(stub.paths) != 2 || stub.paths[0] != "/collections" || stub.paths[1] != "/balance" {
		t.Fatalf("unexpected dispatches %v", stub.paths)
	}
}
