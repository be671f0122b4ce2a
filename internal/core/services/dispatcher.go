package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/custodia-labs/onebox/internal/core/domain"
	"github.com/custodia-labs/onebox/internal/core/ports/driving"
	"github.com/custodia-labs/onebox/internal/logger"
)

// Ensure Dispatcher implements the interface.
var _ driving.Dispatcher = (*Dispatcher)(nil)

// Dispatcher turns generic request parameters into a OneBox document.
type Dispatcher struct {
	provider   driving.Provider
	serializer *Serializer
}

// NewDispatcher creates a dispatcher in front of provider.
func NewDispatcher(provider driving.Provider, serializer *Serializer) *Dispatcher {
	if serializer == nil {
		serializer = NewSerializer(false)
	}
	return &Dispatcher{
		provider:   provider,
		serializer: serializer,
	}
}

// Dispatch resolves params and renders the result.
func (d *Dispatcher) Dispatch(ctx context.Context, params domain.Params) string {
	return d.Render(d.Resolve(ctx, params))
}

// Render serializes res.
func (d *Dispatcher) Render(res *domain.ResultSet) string {
	return d.serializer.Serialize(res)
}

// Resolve parses params, routes on the auth type and returns the provider's
// ResultSet. It always returns a non-nil ResultSet.
func (d *Dispatcher) Resolve(ctx context.Context, params domain.Params) *domain.ResultSet {
	logger.Section("OneBox Dispatch")

	authType := params.Value(domain.ParamAuthType)
	req, ok := ParseRequest(params)
	if !ok {
		logger.Debug("Unrecognised auth type %q", authType)
		return domain.NewFailure(domain.ResultSecurityFailure,
			"User authentication type not recognized: "+authType)
	}
	logger.Debug("%s", logger.KV(
		"auth", authType,
		"version", strconv.Itoa(req.Version.Major)+"."+strconv.Itoa(req.Version.Minor),
		"lang", req.Lang,
		"query", strconv.Quote(req.Query),
		"match_groups", len(req.MatchGroups),
	))

	res, err := d.provider.Provide(ctx, req)
	if err != nil {
		var unsupported *domain.UnsupportedAuthError
		if errors.As(err, &unsupported) {
			logger.Debug("Provider does not support %s", unsupported.Type)
			return domain.NewFailure(domain.ResultSecurityFailure, unsupported.Error())
		}
		logger.Warn("Provider failed: %v", err)
		return domain.NewFailure(domain.ResultLookupFailure, "Provider failure: "+err.Error())
	}
	if res == nil {
		logger.Warn("Provider returned no result set")
		return domain.NewFailure(domain.ResultLookupFailure, "Provider returned no results")
	}

	logger.Info("Result: %s (%d entries)", res.Code(), len(res.Results()))
	return res
}

// ParseRequest extracts the typed request from params. ok is false when the
// authType selector is not one of none, basic, ldap or sso.
//
// Version components that are missing or not integers parse as -1 so that
// the version gate rejects them.
func ParseRequest(params domain.Params) (domain.Request, bool) {
	cred, ok := parseCredential(params)
	if !ok {
		return domain.Request{}, false
	}
	return domain.Request{
		Version: domain.APIVersion{
			Major: parseVersionPart(params.Value(domain.ParamAPIMajor)),
			Minor: parseVersionPart(params.Value(domain.ParamAPIMinor)),
		},
		ModuleName:  params.Value(domain.ParamModuleName),
		DateTime:    params.Value(domain.ParamDateTime),
		IPAddr:      params.Value(domain.ParamIPAddr),
		Lang:        params.Value(domain.ParamLang),
		Query:       params.Value(domain.ParamQuery),
		MatchGroups: matchGroups(params),
		Credential:  cred,
		BaseURL:     params.BaseURL,
	}, true
}

func parseCredential(params domain.Params) (domain.Credential, bool) {
	authType, ok := domain.ParseAuthType(params.Value(domain.ParamAuthType))
	if !ok {
		return nil, false
	}

	switch authType {
	case domain.AuthTypeNone:
		return domain.AnonymousCredential{}, true
	case domain.AuthTypeBasic:
		return domain.BasicCredential{
			Username: params.Value(domain.ParamUserName),
			Password: params.Value(domain.ParamPassword),
		}, true
	case domain.AuthTypeLDAP:
		return domain.LDAPCredential{
			DistinguishedName: params.Value(domain.ParamUserName),
		}, true
	case domain.AuthTypeSSO:
		name := params.Value(domain.ParamUserName)
		cred := domain.SSOCredential{CookieName: name}
		if name != "" {
			if c, found := params.Cookie(name); found {
				cred.Cookie = c
			}
		}
		return cred, true
	}
	return nil, false
}

// matchGroups collects p0, p1, ... stopping at the first missing index.
func matchGroups(params domain.Params) []string {
	var groups []string
	for i := 0; ; i++ {
		v, ok := params.Get(domain.ParamMatchGroupPrefix + strconv.Itoa(i))
		if !ok {
			return groups
		}
		groups = append(groups, v)
	}
}

func parseVersionPart(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1
	}
	return n
}
