package services

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateReport(t *testing.T) {
	valid := ReportInput{
		Reason:  "Fake merchant QR",
		Details: "Scanned at a shop, money went to a different name entirely.",
	}
	if err := validateReport(valid); err != nil {
		t.Fatalf("valid report rejected: %v", err)
	}

	withEvidence := valid
	withEvidence.EvidenceURL = "https://example.com/screenshot.png"
	if err := validateReport(withEvidence); err != nil {
		t.Fatalf("report with evidence rejected: %v", err)
	}

	tests := []struct {
		name  string
		input ReportInput
		field string
	}{
		{
			name:  "short reason",
			input: ReportInput{Reason: "bad", Details: valid.Details},
			field: "reason",
		},
		{
			name:  "long reason",
			input: ReportInput{Reason: strings.Repeat("x", 201), Details: valid.Details},
			field: "reason",
		},
		{
			name:  "short details",
			input: ReportInput{Reason: valid.Reason, Details: "too short"},
			field: "details",
		},
		{
			name:  "long details",
			input: ReportInput{Reason: valid.Reason, Details: strings.Repeat("x", 2001)},
			field: "details",
		},
		{
			name:  "relative evidence url",
			input: ReportInput{Reason: valid.Reason, Details: valid.Details, EvidenceURL: "not-a-url"},
			field: "evidence_url",
		},
		{
			name:  "non-http scheme",
			input: ReportInput{Reason: valid.Reason, Details: valid.Details, EvidenceURL: "ftp://example.com/x"},
			field: "evidence_url",
		},
		{
			name: "oversized evidence url",
			input: ReportInput{
				Reason:      valid.Reason,
				Details:     valid.Details,
				EvidenceURL: "https://example.com/" + strings.Repeat("a", 500),
			},
			field: "evidence_url",
		},
	}

	for _, tt := range tests {
		err := validateReport(tt.input)
		if err == nil {
			t.Errorf("%s: expected validation error", tt.name)
			continue
		}
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("%s: got %T, want *ValidationError", tt.name, err)
			continue
		}
		if validationErr.Field != tt.field {
			t.Errorf("%s: violated field = %s, want %s", tt.name, validationErr.Field, tt.field)
		}
	}
}
