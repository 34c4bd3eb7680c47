package goquery_test

import (
	"testing"

	"github.com/contactfind/contactfind"
	"github.com/contactfind/contactfind/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Contacts(t *testing.T) {
	t.Parallel()

	t.Run("mailto and tel links rank first", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<footer>Write to sales@acme.in or call +91 11 4567 8901</footer>
			<a href="mailto:info@acme.in">Email us</a>
			<a href="tel:+914412345678">Call us</a>
		</body></html>`

		p := goquery.NewParser()
		contacts, err := p.Contacts(html)
		require.NoError(t, err)

		require.NotEmpty(t, contacts.Emails)
		assert.Equal(t, "info@acme.in", contacts.Emails[0].Value)
		assert.Equal(t, "mailto link", contacts.Emails[0].Context)

		require.NotEmpty(t, contacts.Phones)
		assert.Equal(t, "+914412345678", contacts.Phones[0].Value)
		assert.Equal(t, "tel link", contacts.Phones[0].Context)
	})

	t.Run("footer text candidates carry section context", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="site-footer">Reach us at support@widgets.co.in, phone: +91 98201 23456</div>
		</body></html>`

		p := goquery.NewParser()
		contacts, err := p.Contacts(html)
		require.NoError(t, err)

		require.NotEmpty(t, contacts.Emails)
		assert.Equal(t, "support@widgets.co.in", contacts.Emails[0].Value)
		assert.Equal(t, "footer", contacts.Emails[0].Context)

		require.NotEmpty(t, contacts.Phones)
		assert.Equal(t, "+919820123456", contacts.Phones[0].Value)
	})

	t.Run("deduplicates across sources", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="mailto:info@acme.in">info@acme.in</a>
			<footer>Email: info@acme.in</footer>
		</body></html>`

		p := goquery.NewParser()
		contacts, err := p.Contacts(html)
		require.NoError(t, err)

		require.Len(t, contacts.Emails, 1)
		assert.Equal(t, "mailto link", contacts.Emails[0].Context)
	})

	t.Run("invalid candidates are dropped", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<footer>Email: someone@example.com, call 12345</footer>
		</body></html>`

		p := goquery.NewParser()
		contacts, err := p.Contacts(html)
		require.NoError(t, err)

		assert.Empty(t, contacts.Emails)
		assert.Empty(t, contacts.Phones)
	})

	t.Run("empty page yields empty contacts", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewParser()
		contacts, err := p.Contacts("<html><body><p>Welcome</p></body></html>")
		require.NoError(t, err)

		assert.Empty(t, contacts.Emails)
		assert.Empty(t, contacts.Phones)
		email, _ := contacts.BestEmail()
		assert.Equal(t, "", email)
	})
}

func TestParser_ImplementsPageParser(t *testing.T) {
	t.Parallel()

	var _ contactfind.PageParser = goquery.NewParser()
}
