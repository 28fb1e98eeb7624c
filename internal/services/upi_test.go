package services

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractUpiID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare handle", "merchant@bank", "merchant@bank"},
		{"bare handle with whitespace", "  merchant@bank\n", "merchant@bank"},
		{"intent url", "upi://pay?pa=merchant%40bank&am=10", "merchant@bank"},
		{"intent url uppercase param", "UPI://PAY?PA=shop%40bank&am=5", "shop@bank"},
		{"query fragment", "am=10&pa=shop%40bank", "shop@bank"},
		{"pa param in arbitrary url", "https://example.com/qr?pa=vendor%40upi&mc=1234", "vendor@upi"},
		{"malformed query falls back to scan", "upi://pay?pa=shop@bank&am=%zz", "shop@bank"},
		{"intent url without pa", "upi://pay?am=10", ""},
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		if got := ExtractUpiID(tt.input); got != tt.want {
			t.Errorf("%s: ExtractUpiID(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
		}
	}
}

func TestExtractThenValidateRoundTrip(t *testing.T) {
	// Deep link and bare string must resolve to the same canonical handle.
	fromLink := ExtractUpiID("upi://pay?pa=merchant%40bank&am=10")
	fromBare := ExtractUpiID("merchant@bank")
	if fromLink != fromBare {
		t.Fatalf("deep link yields %q, bare string yields %q", fromLink, fromBare)
	}
	if err := ValidateUpiID(fromLink); err != nil {
		t.Fatalf("canonical handle failed validation: %v", err)
	}
}

func TestValidateUpiID(t *testing.T) {
	valid := []string{"merchant@bank", "a@b", "user.name-1@ok-bank", "user_name@upi"}
	for _, handle := range valid {
		if err := ValidateUpiID(handle); err != nil {
			t.Errorf("ValidateUpiID(%q) = %v, want nil", handle, err)
		}
	}

	invalidCases := []string{
		"",
		"no-at-sign",
		"two@at@signs",
		"spaces in@handle",
		strings.Repeat("a", 100) + "@bank", // over 100 chars
	}
	for _, handle := range invalidCases {
		err := ValidateUpiID(handle)
		if err == nil {
			t.Errorf("ValidateUpiID(%q) = nil, want error", handle)
			continue
		}
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("ValidateUpiID(%q) returned %T, want *ValidationError", handle, err)
		}
	}
}

func TestPaymentDeepLink(t *testing.T) {
	tests := []struct {
		app  string
		want string
	}{
		{"gpay", "gpay://upi/pay?pa=merchant%40bank"},
		{"phonepe", "phonepe://pay?pa=merchant%40bank"},
		{"paytm", "paytmmp://pay?pa=merchant%40bank"},
		{"unknown", ""},
	}
	for _, tt := range tests {
		if got := PaymentDeepLink("merchant@bank", tt.app); got != tt.want {
			t.Errorf("PaymentDeepLink(merchant@bank, %s) = %q, want %q", tt.app, got, tt.want)
		}
	}
}
