package services

import (
	"encoding/xml"
	"strings"

	"github.com/custodia-labs/onebox/internal/core/domain"
)

const (
	xmlHeader   = `<?xml version="1.0" encoding="UTF-8"?>`
	rootElement = `<OneBoxResults xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"` +
		` xsi:noNamespaceSchemaLocation="oneboxresults.xsd">`
)

// Serializer renders a ResultSet as a OneBox XML document.
//
// By default stored values are embedded as-is, matching what OneBox clients
// have always received; a value containing markup produces markup. With
// escaping enabled every text node and attribute value is XML-escaped.
type Serializer struct {
	escape bool
}

// NewSerializer creates a serializer. escape controls XML escaping.
func NewSerializer(escape bool) *Serializer {
	return &Serializer{escape: escape}
}

// Serialize renders res. It is deterministic and has no side effects.
func (s *Serializer) Serialize(res *domain.ResultSet) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(rootElement)

	s.element(&b, "resultCode", res.Code().String())
	if diag, ok := res.Diagnostics(); ok {
		s.element(&b, "Diagnostics", truncate(diag, domain.MaxDiagnosticsLength))
	}
	if provider, ok := res.ProviderText(); ok {
		s.element(&b, "provider", truncate(provider, domain.MaxProviderTextLength))
	}
	if text, link, ok := res.TitleLink(); ok {
		b.WriteString("<title>")
		s.element(&b, "urlText", truncate(text, domain.MaxTitleTextLength))
		s.element(&b, "urlLink", link)
		b.WriteString("</title>")
	}
	if image, ok := res.ImageURL(); ok {
		s.element(&b, "IMAGE_SOURCE", image)
	}

	for _, mr := range res.Results() {
		b.WriteString("<MODULE_RESULT>")
		s.element(&b, "U", mr.URL)
		s.element(&b, "Title", mr.Title)
		for _, f := range mr.Fields {
			b.WriteString("<Field")
			for _, attr := range f.Attrs() {
				b.WriteByte(' ')
				b.WriteString(attr.Name)
				b.WriteString(`="`)
				s.text(&b, attr.Value)
				b.WriteByte('"')
			}
			b.WriteByte('>')
			s.text(&b, f.Value)
			b.WriteString("</Field>")
		}
		b.WriteString("</MODULE_RESULT>")
	}

	b.WriteString("</OneBoxResults>")
	return b.String()
}

func (s *Serializer) element(b *strings.Builder, name, value string) {
	b.WriteByte('<')
	b.WriteString(name)
	b.WriteByte('>')
	s.text(b, value)
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
}

func (s *Serializer) text(b *strings.Builder, value string) {
	if !s.escape {
		b.WriteString(value)
		return
	}
	// strings.Builder never returns a write error.
	_ = xml.EscapeText(b, []byte(value))
}

// truncate returns at most n characters of s.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
