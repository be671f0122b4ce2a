package domain

// Request parameter names.
const (
	ParamAPIMajor   = "apiMaj"
	ParamAPIMinor   = "apiMin"
	ParamModuleName = "oneboxName"
	ParamDateTime   = "dateTime"
	ParamIPAddr     = "ipAddr"
	ParamLang       = "lang"
	ParamQuery      = "query"
	ParamAuthType   = "authType"
	ParamUserName   = "userName"
	ParamPassword   = "password"

	// ParamMatchGroupPrefix is followed by 0, 1, 2, ... for match groups.
	ParamMatchGroupPrefix = "p"
)

// Params is the generic form of an incoming request: named string
// parameters plus the request's cookie set.
type Params struct {
	Values  map[string]string
	Cookies []Cookie

	// BaseURL is the absolute URL that result links are built on,
	// ending in "/".
	BaseURL string
}

// Get returns a parameter value and whether it was present.
func (p Params) Get(name string) (string, bool) {
	v, ok := p.Values[name]
	return v, ok
}

// Value returns a parameter value or "" when absent.
func (p Params) Value(name string) string {
	return p.Values[name]
}

// Cookie returns the first cookie with the given name.
func (p Params) Cookie(name string) (*Cookie, bool) {
	for i := range p.Cookies {
		if p.Cookies[i].Name == name {
			c := p.Cookies[i]
			return &c, true
		}
	}
	return nil, false
}

// APIVersion is the OneBox API version a client speaks.
type APIVersion struct {
	Major int
	Minor int
}

// AtLeast returns true if v is the same as or newer than baseline.
func (v APIVersion) AtLeast(baseline APIVersion) bool {
	if v.Major != baseline.Major {
		return v.Major > baseline.Major
	}
	return v.Minor >= baseline.Minor
}

// Request is a parsed OneBox query.
type Request struct {
	Version     APIVersion
	ModuleName  string
	DateTime    string
	IPAddr      string
	Lang        string
	Query       string
	MatchGroups []string
	Credential  Credential
	BaseURL     string
}
