package services

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
	"time"
	"upishield/internal/db"
	"upishield/internal/models"

	"gorm.io/gorm"
)

var (
	upiIDPattern   = regexp.MustCompile(`^[\w.-]+@[\w.-]+$`)
	paMarkerRegex  = regexp.MustCompile(`(?i)[?&]pa=`)
	paExtractRegex = regexp.MustCompile(`(?i)[?&]pa=([^&\s]+)`)
)

// ExtractUpiID pulls a UPI handle out of raw input: a payment deep link
// (upi://pay?pa=...), a bare query-string fragment carrying pa=, or the handle
// itself. Returns "" when nothing can be extracted.
func ExtractUpiID(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if strings.Contains(strings.ToLower(input), "://pay") || paMarkerRegex.MatchString(input) {
		query := input
		if idx := strings.Index(input, "?"); idx >= 0 {
			query = input[idx+1:]
		}
		// ParseQuery percent-decodes the value for us
		if params, err := url.ParseQuery(query); err == nil {
			if pa := params.Get("pa"); pa != "" {
				return pa
			}
			if pa := params.Get("PA"); pa != "" {
				return pa
			}
		}
		// Malformed query string: raw scan before giving up
		if m := paExtractRegex.FindStringSubmatch(input); m != nil {
			if decoded, err := url.QueryUnescape(m[1]); err == nil {
				return decoded
			}
			return m[1]
		}
		return ""
	}

	// Otherwise treat it as a direct UPI ID
	return input
}

// ValidateUpiID checks the canonical handle format (username@bank).
func ValidateUpiID(upiID string) error {
	if upiID == "" {
		return invalid("upi_id", "UPI ID is required")
	}
	if len(upiID) > 100 {
		return invalid("upi_id", "UPI ID must be less than 100 characters")
	}
	if !upiIDPattern.MatchString(upiID) {
		return invalid("upi_id", "invalid UPI ID format, expected username@bank")
	}
	return nil
}

// ResolveIdentity maps raw input to its canonical identity row, creating one
// on first sight. Get-or-create is race-safe: losing the insert race against
// the unique index falls back to re-reading the winner's row.
func ResolveIdentity(rawInput string) (*models.UpiIdentity, error) {
	upiID := ExtractUpiID(rawInput)
	if err := ValidateUpiID(upiID); err != nil {
		return nil, err
	}

	var identity models.UpiIdentity
	err := db.DB.Where("upi_id = ?", upiID).First(&identity).Error
	if err == nil {
		return &identity, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	identity = models.UpiIdentity{UpiID: upiID, LastSeenAt: time.Now()}
	if err := db.DB.Create(&identity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the creation race, the row exists now
			if err := db.DB.Where("upi_id = ?", upiID).First(&identity).Error; err != nil {
				return nil, ErrConflict
			}
			return &identity, nil
		}
		return nil, err
	}
	return &identity, nil
}

// PaymentDeepLink builds an app-specific payment URI for a verified handle.
// Supported apps: gpay, phonepe, paytm.
func PaymentDeepLink(upiID, app string) string {
	encoded := url.QueryEscape(upiID)
	switch app {
	case "gpay":
		return "gpay://upi/pay?pa=" + encoded
	case "phonepe":
		return "phonepe://pay?pa=" + encoded
	case "paytm":
		return "paytmmp://pay?pa=" + encoded
	default:
		return ""
	}
}
