package checkoutControllers

import (
	"testing"

	"github.com/Pavan17153/SS/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBilling() models.BillingDetails {
	return models.BillingDetails{
		FirstName: "Asha",
		LastName:  "Nair",
		Country:   "India",
		Address1:  "12 Beach Road",
		Address2:  "Flat 4B",
		City:      "Kochi",
		State:     "Kerala",
		Pin:       "682001",
		Phone:     "+91 98765-43210",
		Email:     "asha@example.com",
	}
}

func TestValidateBillingOK(t *testing.T) {
	b := validBilling()
	require.NoError(t, ValidateBilling(&b))
	assert.Equal(t, "919876543210", b.Phone, "phone should be normalized to digits")
}

func TestValidateBillingRequiredFields(t *testing.T) {
	cases := []struct {
		field string
		mut   func(*models.BillingDetails)
	}{
		{"first_name", func(b *models.BillingDetails) { b.FirstName = "" }},
		{"last_name", func(b *models.BillingDetails) { b.LastName = "  " }},
		{"address1", func(b *models.BillingDetails) { b.Address1 = "" }},
		{"address2", func(b *models.BillingDetails) { b.Address2 = "" }},
		{"city", func(b *models.BillingDetails) { b.City = "" }},
		{"state", func(b *models.BillingDetails) { b.State = "" }},
		{"pin", func(b *models.BillingDetails) { b.Pin = "" }},
		{"phone", func(b *models.BillingDetails) { b.Phone = "" }},
		{"email", func(b *models.BillingDetails) { b.Email = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			b := validBilling()
			tc.mut(&b)
			err := ValidateBilling(&b)
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestValidateBillingOptionalFields(t *testing.T) {
	b := validBilling()
	b.Company = ""
	b.OrderNotes = ""
	assert.NoError(t, ValidateBilling(&b))
}

func TestValidateBillingBadEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "a@b", "a b@c.com", "@example.com"} {
		b := validBilling()
		b.Email = email
		err := ValidateBilling(&b)
		require.Error(t, err, email)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "email", vErr.Field)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"9876543", "9876543", true},
		{"+91 (98765) 43210", "919876543210", true},
		{"123456789012345", "123456789012345", true},
		{"123456", "", false},
		{"1234567890123456", "", false},
		{"abc", "", false},
	}
	for _, tc := range cases {
		got, err := NormalizePhone(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.want, got)
		} else {
			assert.Error(t, err, tc.in)
		}
	}
}
