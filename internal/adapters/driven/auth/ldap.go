package auth

import (
	"strings"

	"github.com/custodia-labs/onebox/internal/core/ports/driven"
)

// Ensure DNResolver implements the interface.
var _ driven.DNResolver = (*DNResolver)(nil)

// DNResolver pulls the user id out of an LDAP distinguished name.
type DNResolver struct {
	prefix string
}

// NewDNResolver creates a resolver for the given identity attribute,
// e.g. "UID". The attribute name is matched case-insensitively.
func NewDNResolver(attribute string) *DNResolver {
	return &DNResolver{prefix: strings.ToUpper(attribute) + "="}
}

// UserID scans the comma-separated RDNs of dn, and the "+"-separated
// attribute-value pairs within each, returning the value of the first pair
// whose key is the identity attribute.
func (r *DNResolver) UserID(dn string) (string, bool) {
	for _, rdn := range strings.Split(dn, ",") {
		for _, atv := range strings.Split(rdn, "+") {
			atv = strings.TrimLeft(atv, " ")
			if len(atv) < len(r.prefix) || !strings.EqualFold(atv[:len(r.prefix)], r.prefix) {
				continue
			}
			value := atv[len(r.prefix):]
			if value == "" {
				return "", false
			}
			return value, true
		}
	}
	return "", false
}
