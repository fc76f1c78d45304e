package phone

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "local format", in: "0759983853", want: "256759983853"},
		{name: "international with plus", in: "+256759983853", want: "256759983853"},
		{name: "bare subscriber number", in: "759983853", want: "256759983853"},
		{name: "already normalized", in: "256759983853", want: "256759983853"},
		{name: "spaces and dashes", in: "+256 759 983-853", want: "256759983853"},
		{name: "parentheses", in: "(0759) 983853", want: "256759983853"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize("0759983853")
	twice := Normalize(once)
	if once != twice {
		t.Fatalf("normalization not idempotent: %q != %q", once, twice)
	}
}
