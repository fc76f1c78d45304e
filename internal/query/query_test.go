package query

import "testing"

func TestEncodePreservesPairOrder(t *testing.T) {
	got := Encode([]Pair{
		Int("page", 2),
		Int("limit", 10),
		String("status", ""),
	})
	if got != "?page=2&limit=10" {
		t.Fatalf("got %q, want %q", got, "?page=2&limit=10")
	}
}

func TestEncodeEmpty(t *testing.T) {
	if got := Encode([]Pair{Int("page", 0), String("status", "")}); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestEncodeEscapesValues(t *testing.T) {
	got := Encode([]Pair{String("status", "in progress&pending")})
	if got != "?status=in+progress%26pending" {
		t.Fatalf("got %q", got)
	}
}
