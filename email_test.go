package contactfind_test

import (
	"testing"

	"github.com/contactfind/contactfind"
	"github.com/stretchr/testify/assert"
)

func TestExtractEmails(t *testing.T) {
	t.Parallel()

	t.Run("standard form", func(t *testing.T) {
		t.Parallel()

		emails := contactfind.ExtractEmails("Reach us at sales@acmetools.com for a quote.")

		assert.Equal(t, []string{"sales@acmetools.com"}, emails)
	})

	t.Run("multiple addresses keep first-occurrence order", func(t *testing.T) {
		t.Parallel()

		text := "support@widgets.in then billing@widgets.in then support@widgets.in again"
		emails := contactfind.ExtractEmails(text)

		assert.Equal(t, []string{"support@widgets.in", "billing@widgets.in"}, emails)
	})

	t.Run("obfuscated bracket forms", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			text string
			want string
		}{
			{"square brackets", "info [at] acmetools [dot] com", "info@acmetools.com"},
			{"parentheses", "info (at) acmetools (dot) com", "info@acmetools.com"},
			{"curly braces", "info {at} acmetools {dot} com", "info@acmetools.com"},
			{"bare words", "write to info at acmetools dot com today", "info@acmetools.com"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				emails := contactfind.ExtractEmails(tt.text)

				assert.Equal(t, []string{tt.want}, emails)
			})
		}
	})

	t.Run("placeholder addresses are rejected", func(t *testing.T) {
		t.Parallel()

		placeholders := []string{
			"test@test.com",
			"info@example.com",
			"user@acmetools.com",
			"someone@yourdomain.com",
			"a@email.com",
		}
		for _, p := range placeholders {
			assert.Empty(t, contactfind.ExtractEmails("email: "+p), "expected %q to be rejected", p)
		}
	})

	t.Run("disallowed TLD is rejected", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, contactfind.ExtractEmails("hello@acmetools.xyz"))
	})

	t.Run("length bounds", func(t *testing.T) {
		t.Parallel()

		long := "a" // 101 chars total: 91 + "@" + "tools.com" (9)
		for range 90 {
			long += "a"
		}
		assert.Empty(t, contactfind.ExtractEmails(long+"@tools.com"))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, contactfind.ExtractEmails(""))
	})
}

func TestEmailFromMailto(t *testing.T) {
	t.Parallel()

	t.Run("strips scheme and query params", func(t *testing.T) {
		t.Parallel()

		email := contactfind.EmailFromMailto("mailto:sales@acmetools.com?subject=Hello")

		assert.Equal(t, "sales@acmetools.com", email)
	})

	t.Run("invalid address yields empty string", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, contactfind.EmailFromMailto("mailto:info@example.com"))
		assert.Empty(t, contactfind.EmailFromMailto("mailto:not-an-email"))
	})
}

func TestNormalizeObfuscatedEmail(t *testing.T) {
	t.Parallel()

	t.Run("normalizes mixed obfuscation", func(t *testing.T) {
		t.Parallel()

		got := contactfind.NormalizeObfuscatedEmail("sales [at] acme-tools (dot) com")

		assert.Equal(t, "sales@acme-tools.com", got)
	})

	t.Run("garbage yields empty string", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, contactfind.NormalizeObfuscatedEmail("at dot at dot"))
	})
}
