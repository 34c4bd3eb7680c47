package htmltomarkdown_test

import (
	"testing"

	"github.com/contactfind/contactfind"
	"github.com/contactfind/contactfind/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements contactfind.Converter at compile time.
var _ contactfind.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<p>Reach us at our Pune office.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Reach us at our Pune office.")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Contact Us</h1><h2>Sales</h2><h3>Support</h3>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Contact Us")
		assert.Contains(t, md, "## Sales")
		assert.Contains(t, md, "### Support")
	})

	t.Run("preserves mailto link targets", func(t *testing.T) {
		t.Parallel()

		html := `<p>Email <a href="mailto:sales@acme.in">our sales team</a> for quotes.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "mailto:sales@acme.in")
	})

	t.Run("converts unordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>Phone: +91 98765 12340</li><li>Fax: none</li></ul>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- Phone: +91 98765 12340")
		assert.Contains(t, md, "- Fax: none")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Office</th><th>Phone</th></tr></thead>
<tbody><tr><td>Pune</td><td>+91 20 1234 5678</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Office")
		assert.Contains(t, md, "Pune")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Equal(t, contactfind.EINVALID, contactfind.ErrorCode(err))
	})
}
