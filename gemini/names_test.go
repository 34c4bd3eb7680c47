package gemini_test

import (
	"testing"

	"github.com/contactfind/contactfind/gemini"
	"github.com/stretchr/testify/assert"
)

func TestParseNamesResponse(t *testing.T) {
	t.Parallel()

	t.Run("strict JSON array", func(t *testing.T) {
		t.Parallel()

		names := gemini.ParseNamesResponse(`["Acme Widgets", "Bharat Pumps"]`)
		assert.Equal(t, []string{"Acme Widgets", "Bharat Pumps"}, names)
	})

	t.Run("deduplicates and sorts", func(t *testing.T) {
		t.Parallel()

		names := gemini.ParseNamesResponse(`["Zeta Corp", "Acme Widgets", "Zeta Corp"]`)
		assert.Equal(t, []string{"Acme Widgets", "Zeta Corp"}, names)
	})

	t.Run("line fallback on non-JSON answer", func(t *testing.T) {
		t.Parallel()

		raw := "- Acme Widgets\n- Bharat Pumps\n"
		names := gemini.ParseNamesResponse(raw)
		assert.Equal(t, []string{"Acme Widgets", "Bharat Pumps"}, names)
	})

	t.Run("fenced JSON array", func(t *testing.T) {
		t.Parallel()

		raw := "```json\n[\"Acme Widgets\"]\n```"
		names := gemini.ParseNamesResponse(raw)
		assert.Equal(t, []string{"Acme Widgets"}, names)
	})

	t.Run("empty answer yields empty list", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, gemini.ParseNamesResponse("[]"))
	})
}

func TestBuildNamesPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildNamesPrompt("Invoice from Acme Widgets Pvt Ltd")
	assert.Contains(t, prompt, "JSON array")
	assert.Contains(t, prompt, "Acme Widgets Pvt Ltd")
}
