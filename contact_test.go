package contactfind_test

import (
	"testing"

	"github.com/contactfind/contactfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompanyQuery(t *testing.T) {
	t.Parallel()

	t.Run("guesses website from name", func(t *testing.T) {
		t.Parallel()

		q, err := contactfind.NewCompanyQuery("Acme Tools Pvt. Ltd.")

		require.NoError(t, err)
		assert.Equal(t, "Acme Tools Pvt. Ltd.", q.Name)
		assert.Equal(t, "http://www.acme-tools-pvt-ltd.com", q.Website)
	})

	t.Run("empty name is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := contactfind.NewCompanyQuery("   ")

		assert.Equal(t, contactfind.EINVALID, contactfind.ErrorCode(err))
	})
}

func TestNameVariants(t *testing.T) {
	t.Parallel()

	t.Run("hyphenated, concatenated, acronym", func(t *testing.T) {
		t.Parallel()

		variants := contactfind.NameVariants("Acme Tools Limited")

		assert.Equal(t, []string{"acme-tools-limited", "acmetoolslimited", "atl"}, variants)
	})

	t.Run("single-word name deduplicates", func(t *testing.T) {
		t.Parallel()

		variants := contactfind.NameVariants("Acme")

		assert.Equal(t, []string{"acme", "a"}, variants)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, contactfind.NameVariants(""))
	})
}

func TestContactRecord(t *testing.T) {
	t.Parallel()

	t.Run("Complete requires both fields", func(t *testing.T) {
		t.Parallel()

		rec := &contactfind.ContactRecord{CompanyName: "Acme", Email: "sales@acme.com"}
		assert.False(t, rec.Complete())

		rec.Phone = "+919876543210"
		assert.True(t, rec.Complete())
	})

	t.Run("Validate requires company name", func(t *testing.T) {
		t.Parallel()

		rec := &contactfind.ContactRecord{}

		assert.Equal(t, contactfind.EINVALID, contactfind.ErrorCode(rec.Validate()))
	})

	t.Run("Source prefers email provenance", func(t *testing.T) {
		t.Parallel()

		rec := &contactfind.ContactRecord{EmailSource: "website (footer)", PhoneSource: "indiamart"}
		assert.Equal(t, "website (footer)", rec.Source())

		rec.EmailSource = ""
		assert.Equal(t, "indiamart", rec.Source())
	})
}
