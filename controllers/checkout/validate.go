package checkoutControllers

import (
	"regexp"
	"strings"

	"github.com/Pavan17153/SS/models"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// NormalizePhone strips everything but digits and requires 7-15 of them.
func NormalizePhone(raw string) (string, error) {
	digits := nonDigitPattern.ReplaceAllString(raw, "")
	if len(digits) < 7 || len(digits) > 15 {
		return "", &ValidationError{Field: "phone", Reason: "must contain 7 to 15 digits"}
	}
	return digits, nil
}

// ValidateBilling checks every required field before any network call and
// normalizes the phone number in place. Company, country and order notes
// are optional.
func ValidateBilling(b *models.BillingDetails) error {
	required := []struct {
		field string
		value string
	}{
		{"first_name", b.FirstName},
		{"last_name", b.LastName},
		{"address1", b.Address1},
		{"address2", b.Address2},
		{"city", b.City},
		{"state", b.State},
		{"pin", b.Pin},
		{"phone", b.Phone},
		{"email", b.Email},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Reason: "is required"}
		}
	}

	if !emailPattern.MatchString(b.Email) {
		return &ValidationError{Field: "email", Reason: "is not a valid email address"}
	}

	phone, err := NormalizePhone(b.Phone)
	if err != nil {
		return err
	}
	b.Phone = phone

	return nil
}
