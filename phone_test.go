package contactfind_test

import (
	"testing"

	"github.com/contactfind/contactfind"
	"github.com/stretchr/testify/assert"
)

func TestExtractPhones(t *testing.T) {
	t.Parallel()

	t.Run("accepts plus-prefixed numbers", func(t *testing.T) {
		t.Parallel()

		phones := contactfind.ExtractPhones("Call us: +91 98765 43210")

		assert.Equal(t, []string{"+919876543210"}, phones)
	})

	t.Run("rejects numbers without plus prefix", func(t *testing.T) {
		t.Parallel()

		phones := contactfind.ExtractPhones("Call us: 9876543210")

		assert.Empty(t, phones)
	})

	t.Run("rejects repeated-digit runs", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, contactfind.ExtractPhones("phone +91 1111111100"))
	})

	t.Run("rejects sequential runs", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, contactfind.ExtractPhones("phone +1 2345678901"), "ascending")
		assert.Empty(t, contactfind.ExtractPhones("phone +9 8765432109"), "descending")
	})

	t.Run("keyword proximity outranks free-floating numbers", func(t *testing.T) {
		t.Parallel()

		text := "+14155552671 appears early. Much later in the page, call +919876543210 now."
		phones := contactfind.ExtractPhones(text)

		assert.Equal(t, "+919876543210", phones[0], "number near 'call' should rank first")
		assert.Contains(t, phones, "+14155552671")
	})

	t.Run("separators are stripped", func(t *testing.T) {
		t.Parallel()

		phones := contactfind.ExtractPhones("Tel: +1 (415) 555-2671")

		assert.Equal(t, []string{"+14155552671"}, phones)
	})

	t.Run("digit count bounds", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, contactfind.ExtractPhones("contact +12 34 56 78 9"), "too few digits")
		assert.Empty(t, contactfind.ExtractPhones("contact +1234567890123456"), "too many digits")
	})
}

func TestValidPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"valid indian mobile", "+919876543210", true},
		{"valid us number", "+14155552671", true},
		{"missing plus", "919876543210", false},
		{"seven identical digits", "+9111111114", false},
		{"embedded identical run", "+121111111145", false},
		{"leading ascending run", "+12345678901", false},
		{"leading descending run", "+98765432109", false},
		{"too short", "+145655267", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, contactfind.ValidPhone(tt.phone))
		})
	}
}

func TestPhoneFromTel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		href string
		want string
	}{
		{"already international", "tel:+919876543210", "+919876543210"},
		{"bare indian mobile gets +91", "tel:9876543210", "+919876543210"},
		{"national trunk zero dropped", "tel:09876543210", "+919876543210"},
		{"leading 00 becomes plus", "tel:00919876543210", "+919876543210"},
		{"other bare number gets plus", "tel:14155552671", "+14155552671"},
		{"separators inside href", "tel:+91-98765-43210", "+919876543210"},
		{"invalid after normalization", "tel:1234", ""},
		{"empty", "tel:", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, contactfind.PhoneFromTel(tt.href))
		})
	}
}

func TestRepairPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"international passes through", "+91 99229 93972", "+919922993972"},
		{"national format with trunk zero", "099229 93972", "+919922993972"},
		{"bare indian mobile gets +91", "9922993972", "+919922993972"},
		{"leading 00 becomes plus", "0091 9922993972", "+919922993972"},
		{"too short after repair", "12345", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, contactfind.RepairPhone(tt.raw))
		})
	}
}
