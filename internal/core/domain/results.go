package domain

import "fmt"

// Output limits.
const (
	// MaxResults is the largest number of module results in one response.
	MaxResults = 8
	// MaxDiagnosticsLength bounds the Diagnostics element, in characters.
	MaxDiagnosticsLength = 256
	// MaxProviderTextLength bounds the provider element, in characters.
	MaxProviderTextLength = 128
	// MaxTitleTextLength bounds the title urlText element, in characters.
	MaxTitleTextLength = 40
)

// ResultCode is the top-level status of a response.
type ResultCode string

// Result codes recognised by OneBox clients.
const (
	ResultSuccess         ResultCode = "success"
	ResultLookupFailure   ResultCode = "lookupFailure"
	ResultSecurityFailure ResultCode = "securityFailure"
	// ResultTimeout is never set by the provider itself.
	ResultTimeout ResultCode = "timeout"
)

// String returns the wire value.
func (c ResultCode) String() string {
	return string(c)
}

// Attr is one XML attribute of a Field.
type Attr struct {
	Name  string
	Value string
}

// Field is a named value attached to a module result. The name is always
// the first attribute.
type Field struct {
	attrs []Attr
	Value string
}

// NewField creates a field with the mandatory name attribute.
func NewField(name, value string) Field {
	return Field{
		attrs: []Attr{{Name: "name", Value: name}},
		Value: value,
	}
}

// AddAttr appends an attribute after the existing ones.
func (f *Field) AddAttr(name, value string) {
	f.attrs = append(f.attrs, Attr{Name: name, Value: value})
}

// Name returns the value of the name attribute.
func (f Field) Name() string {
	if len(f.attrs) == 0 {
		return ""
	}
	return f.attrs[0].Value
}

// Attrs returns the attributes in insertion order.
func (f Field) Attrs() []Attr {
	return f.attrs
}

// ModuleResult is one renderable entry: a title, a link and its fields.
type ModuleResult struct {
	Title  string
	URL    string
	Fields []Field
}

// NewModuleResult creates an entry with no fields.
func NewModuleResult(title, url string) *ModuleResult {
	return &ModuleResult{Title: title, URL: url}
}

// AddField appends a field.
func (m *ModuleResult) AddField(f Field) {
	m.Fields = append(m.Fields, f)
}

// FieldValue returns the value of the first field with the given name.
func (m *ModuleResult) FieldValue(name string) (string, bool) {
	for _, f := range m.Fields {
		if f.Name() == name {
			return f.Value, true
		}
	}
	return "", false
}

// ResultSet is the response aggregate for a single request. Optional
// elements are unset until their setter is called.
type ResultSet struct {
	code         ResultCode
	diagnostics  *string
	providerText *string
	urlText      *string
	urlLink      *string
	imageURL     *string
	results      []ModuleResult
}

// NewResultSet returns an empty successful result set.
func NewResultSet() *ResultSet {
	return &ResultSet{code: ResultSuccess}
}

// NewFailure returns a result set carrying only a failure.
func NewFailure(code ResultCode, diagnostic string) *ResultSet {
	r := NewResultSet()
	r.SetFailure(code, diagnostic)
	return r
}

// SetFailure records a result code and its diagnostic message.
func (r *ResultSet) SetFailure(code ResultCode, diagnostic string) {
	r.code = code
	r.diagnostics = &diagnostic
}

// Code returns the result code.
func (r *ResultSet) Code() ResultCode {
	return r.code
}

// Failed returns true if the result code is not success.
func (r *ResultSet) Failed() bool {
	return r.code != ResultSuccess
}

// Diagnostics returns the diagnostic text, if set.
func (r *ResultSet) Diagnostics() (string, bool) {
	return deref(r.diagnostics)
}

// SetProviderText sets the provider label.
func (r *ResultSet) SetProviderText(text string) {
	r.providerText = &text
}

// ProviderText returns the provider label, if set.
func (r *ResultSet) ProviderText() (string, bool) {
	return deref(r.providerText)
}

// SetResultsTitleLink sets the title line and the link to the full results.
func (r *ResultSet) SetResultsTitleLink(text, url string) {
	r.urlText = &text
	r.urlLink = &url
}

// TitleLink returns the title text and link. ok is false unless both are set.
func (r *ResultSet) TitleLink() (text, url string, ok bool) {
	if r.urlText == nil || r.urlLink == nil {
		return "", "", false
	}
	return *r.urlText, *r.urlLink, true
}

// SetImageURL sets the image shown next to the result set.
func (r *ResultSet) SetImageURL(url string) {
	r.imageURL = &url
}

// ImageURL returns the image reference, if set.
func (r *ResultSet) ImageURL() (string, bool) {
	return deref(r.imageURL)
}

// CanAddResult returns true while fewer than MaxResults entries are held.
func (r *ResultSet) CanAddResult() bool {
	return len(r.results) < MaxResults
}

// AddResult appends an entry. It fails with ErrTooManyResults once
// MaxResults entries are held; callers check CanAddResult first.
func (r *ResultSet) AddResult(m *ModuleResult) error {
	if !r.CanAddResult() {
		return fmt.Errorf("%w: limit is %d", ErrTooManyResults, MaxResults)
	}
	r.results = append(r.results, *m)
	return nil
}

// Results returns the entries in insertion order.
func (r *ResultSet) Results() []ModuleResult {
	return r.results
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
