package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/onebox/internal/core/domain"
)

func document(body string) string {
	return xmlHeader + rootElement + body + "</OneBoxResults>"
}

func TestSerializer_EmptySuccess(t *testing.T) {
	out := NewSerializer(false).Serialize(domain.NewResultSet())

	assert.Equal(t, document("<resultCode>success</resultCode>"), out)
}

func TestSerializer_ElementOrder(t *testing.T) {
	res := domain.NewResultSet()
	res.SetImageURL("http://h/images/acme.JPG")
	res.SetResultsTitleLink("2 matching results", "http://h/acme_directory.html")
	res.SetProviderText("Directory")

	mr := domain.NewModuleResult("Brown, Susan", "http://h/acme_directory.html")
	f := domain.NewField("phone", "(408) 393-3165")
	f.AddAttr("type", "work")
	mr.AddField(f)
	mr.AddField(domain.NewField("email", "sbrown@acme.com"))
	assert.NoError(t, res.AddResult(mr))

	out := NewSerializer(false).Serialize(res)

	assert.Equal(t, document(
		"<resultCode>success</resultCode>"+
			"<provider>Directory</provider>"+
			"<title><urlText>2 matching results</urlText><urlLink>http://h/acme_directory.html</urlLink></title>"+
			"<IMAGE_SOURCE>http://h/images/acme.JPG</IMAGE_SOURCE>"+
			"<MODULE_RESULT><U>http://h/acme_directory.html</U><Title>Brown, Susan</Title>"+
			`<Field name="phone" type="work">(408) 393-3165</Field>`+
			`<Field name="email">sbrown@acme.com</Field>`+
			"</MODULE_RESULT>"), out)
}

func TestSerializer_Failure(t *testing.T) {
	res := domain.NewFailure(domain.ResultSecurityFailure, "User authentication failed")

	out := NewSerializer(false).Serialize(res)

	assert.Equal(t, document(
		"<resultCode>securityFailure</resultCode>"+
			"<Diagnostics>User authentication failed</Diagnostics>"), out)
}

func TestSerializer_Truncation(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		element string
		set     func(*domain.ResultSet, string)
	}{
		{"diagnostics", domain.MaxDiagnosticsLength, "Diagnostics", func(r *domain.ResultSet, s string) {
			r.SetFailure(domain.ResultLookupFailure, s)
		}},
		{"provider", domain.MaxProviderTextLength, "provider", func(r *domain.ResultSet, s string) {
			r.SetProviderText(s)
		}},
		{"title", domain.MaxTitleTextLength, "urlText", func(r *domain.ResultSet, s string) {
			r.SetResultsTitleLink(s, "http://h/")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/over limit", func(t *testing.T) {
			res := domain.NewResultSet()
			tt.set(res, strings.Repeat("x", tt.limit+50))

			out := NewSerializer(false).Serialize(res)

			assert.Contains(t, out, "<"+tt.element+">"+strings.Repeat("x", tt.limit)+"</"+tt.element+">")
		})
		t.Run(tt.name+"/at limit", func(t *testing.T) {
			res := domain.NewResultSet()
			tt.set(res, strings.Repeat("y", tt.limit))

			out := NewSerializer(false).Serialize(res)

			assert.Contains(t, out, "<"+tt.element+">"+strings.Repeat("y", tt.limit)+"</"+tt.element+">")
		})
		t.Run(tt.name+"/short", func(t *testing.T) {
			res := domain.NewResultSet()
			tt.set(res, "short")

			out := NewSerializer(false).Serialize(res)

			assert.Contains(t, out, "<"+tt.element+">short</"+tt.element+">")
		})
	}
}

func TestSerializer_TruncatesCharactersNotBytes(t *testing.T) {
	res := domain.NewResultSet()
	res.SetResultsTitleLink(strings.Repeat("é", 45), "http://h/")

	out := NewSerializer(false).Serialize(res)

	assert.Contains(t, out, "<urlText>"+strings.Repeat("é", 40)+"</urlText>")
}

func TestSerializer_LongEntryValuesAreNotTruncated(t *testing.T) {
	long := strings.Repeat("z", 500)
	res := domain.NewResultSet()
	mr := domain.NewModuleResult(long, "http://h/"+long)
	mr.AddField(domain.NewField("office", long))
	assert.NoError(t, res.AddResult(mr))

	out := NewSerializer(false).Serialize(res)

	assert.Contains(t, out, "<Title>"+long+"</Title>")
	assert.Contains(t, out, "<U>http://h/"+long+"</U>")
	assert.Contains(t, out, `<Field name="office">`+long+"</Field>")
}

func TestSerializer_Escaping(t *testing.T) {
	build := func() *domain.ResultSet {
		res := domain.NewResultSet()
		res.SetProviderText("R&D <lab>")
		mr := domain.NewModuleResult("O'Neil & Sons", "http://h/?a=1&b=2")
		f := domain.NewField("note", `a<b`)
		f.AddAttr("hint", `say "hi"`)
		mr.AddField(f)
		assert.NoError(t, res.AddResult(mr))
		return res
	}

	t.Run("raw by default", func(t *testing.T) {
		out := NewSerializer(false).Serialize(build())

		assert.Contains(t, out, "<provider>R&D <lab></provider>")
		assert.Contains(t, out, "<Title>O'Neil & Sons</Title>")
		assert.Contains(t, out, `<Field name="note" hint="say "hi"">a<b</Field>`)
	})

	t.Run("escaped", func(t *testing.T) {
		out := NewSerializer(true).Serialize(build())

		assert.Contains(t, out, "<provider>R&amp;D &lt;lab&gt;</provider>")
		assert.Contains(t, out, "<Title>O&#39;Neil &amp; Sons</Title>")
		assert.Contains(t, out, "<U>http://h/?a=1&amp;b=2</U>")
		assert.Contains(t, out, `<Field name="note" hint="say &#34;hi&#34;">a&lt;b</Field>`)
	})
}

func TestSerializer_Deterministic(t *testing.T) {
	res := domain.NewFailure(domain.ResultTimeout, "slow")
	s := NewSerializer(false)

	assert.Equal(t, s.Serialize(res), s.Serialize(res))
	assert.Contains(t, s.Serialize(res), "<resultCode>timeout</resultCode>")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", truncate("", 5))
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "", truncate("abc", 0))
}
