package disbursements

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Katznicho/marzpay-go/merror"
	"github.com/Katznicho/marzpay-go/transport"
)

type recordedCall struct {
	method string
	path   string
	data   map[string]any
}

type stubRequester struct {
	mu    sync.Mutex
	calls []recordedCall
	err   error
}

func (s *stubRequester) Request(_ context.Context, method, path string, data map[string]any) (transport.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, recordedCall{method: method, path: path, data: data})
	return transport.Result{}, s.err
}

func (s *stubRequester) lastCall(t *testing.T) recordedCall {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		t.Fatal("no request was dispatched")
	}
	return s.calls[len(s.calls)-1]
}

func TestSendMoneyDispatchesNormalizedRequest(t *testing.T) {
	stub := &stubRequester{}
	api := New(stub)

	params := SendParams{
		Amount:      25_000,
		PhoneNumber: "+256 759 983 853",
		Reference:   "payout-001",
	}

	if _, err := api.SendMoney(context.Background(), params); err != nil {
		t.Fatalf("send money: %v", err)
	}

	call := stub.lastCall(t)
	if call.method != "POST" || call.path != "/disbursements" {
		t.Fatalf("unexpected dispatch %s %s", call.method, call.path)
	}
	if call.data["phone_number"] != "256759983853" {
		t.Fatalf("phone not normalized: %v", call.data["phone_number"])
	}
	if call.data["country"] != "UG" {
		t.Fatalf("country not defaulted: %v", call.data["country"])
	}
}

func TestSendMoneyValidationCollectsAllFailures(t *testing.T) {
	stub := &stubRequester{}
	api := New(stub)

	_, err := api.SendMoney(context.Background(), SendParams{Amount: 100})

	var verrs merror.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	want := []string{"Amount must be at least 500 UGX", "Phone number is required", "Reference is required"}
	got := verrs.Messages()
	if len(got) != len(want) {
		t.Fatalf("expected %d messages, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("message %d = %q, want %q", i, got[i], want[i])
		}
	}
	if len(stub.calls) != 0 {
		t.Fatal("network call attempted despite validation failure")
	}
}

func TestGetDisbursementEmptyID(t *testing.T) {
	api := New(&stubRequester{})

	var verrs merror.ValidationErrors
	if _, err := api.GetDisbursement(context.Background(), ""); !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
}

func TestGetDisbursementsFilterOrder(t *testing.T) {
	stub := &stubRequester{}
	api := New(stub)

	filters := ListFilters{Page: 1, Limit: 25, Status: "successful"}
	if _, err := api.GetDisbursements(context.Background(), filters); err != nil {
		t.Fatalf("get disbursements: %v", err)
	}

	want := "/disbursements?page=1&limit=25&status=successful"
	if call := stub.lastCall(t); call.path != want {
		t.Fatalf("endpoint %q, want %q", call.path, want)
	}
}

func TestGetServices(t *testing.T) {
	stub := &stubRequester{}
	api := New(stub)

	if _, err := api.GetServices(context.Background()); err != nil {
		t.Fatalf("get services: %v", err)
	}

	if call := stub.lastCall(t); call.path != "/disbursements/services" {
		t.Fatalf("unexpected endpoint %q", call.path)
	}
}
