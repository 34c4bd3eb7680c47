package mock

import "github.com/contactfind/contactfind"

var _ contactfind.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of contactfind.TextExtractor.
type TextExtractor struct {
	ExtractFn func(html string) (*contactfind.ExtractResult, error)
}

func (e *TextExtractor) Extract(html string) (*contactfind.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ contactfind.Converter = (*Converter)(nil)

// Converter is a mock implementation of contactfind.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
