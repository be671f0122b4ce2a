package domain

// AuthType selects how the requester's identity is established.
type AuthType string

// Recognised authentication types. Matching is case-sensitive.
const (
	AuthTypeNone  AuthType = "none"
	AuthTypeBasic AuthType = "basic"
	AuthTypeLDAP  AuthType = "ldap"
	AuthTypeSSO   AuthType = "sso"
)

// AllAuthTypes lists every recognised authentication type in dispatch order.
var AllAuthTypes = []AuthType{AuthTypeNone, AuthTypeBasic, AuthTypeLDAP, AuthTypeSSO}

// ParseAuthType returns the AuthType for an exact selector value.
func ParseAuthType(s string) (AuthType, bool) {
	switch AuthType(s) {
	case AuthTypeNone, AuthTypeBasic, AuthTypeLDAP, AuthTypeSSO:
		return AuthType(s), true
	default:
		return "", false
	}
}

// Label returns the display name used in diagnostics.
func (t AuthType) Label() string {
	switch t {
	case AuthTypeNone:
		return "None"
	case AuthTypeBasic:
		return "Basic"
	case AuthTypeLDAP:
		return "LDAP"
	case AuthTypeSSO:
		return "SSO"
	default:
		return string(t)
	}
}

// Capability returns the capability bit for this type.
func (t AuthType) Capability() AuthCapability {
	switch t {
	case AuthTypeNone:
		return AuthCapAnonymous
	case AuthTypeBasic:
		return AuthCapBasic
	case AuthTypeLDAP:
		return AuthCapLDAP
	case AuthTypeSSO:
		return AuthCapSSO
	default:
		return 0
	}
}

// String returns the selector value.
func (t AuthType) String() string {
	return string(t)
}

// Cookie is a name/value pair taken from the request's cookie set.
type Cookie struct {
	Name  string
	Value string
}

// Credential is the identity-bearing input of one authentication variant.
// The concrete types are AnonymousCredential, BasicCredential,
// LDAPCredential and SSOCredential.
type Credential interface {
	AuthType() AuthType
	isCredential()
}

// AnonymousCredential carries no identity.
type AnonymousCredential struct{}

// BasicCredential is a username and password pair.
type BasicCredential struct {
	Username string
	Password string
}

// LDAPCredential is a distinguished name that was authenticated upstream.
type LDAPCredential struct {
	DistinguishedName string
}

// SSOCredential names the session cookie. Cookie is nil when the request
// carried no cookie with that name.
type SSOCredential struct {
	CookieName string
	Cookie     *Cookie
}

func (AnonymousCredential) AuthType() AuthType { return AuthTypeNone }
func (BasicCredential) AuthType() AuthType     { return AuthTypeBasic }
func (LDAPCredential) AuthType() AuthType      { return AuthTypeLDAP }
func (SSOCredential) AuthType() AuthType       { return AuthTypeSSO }

func (AnonymousCredential) isCredential() {}
func (BasicCredential) isCredential()     {}
func (LDAPCredential) isCredential()      {}
func (SSOCredential) isCredential()       {}
