package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/custodia-labs/onebox/internal/core/domain"
	"github.com/custodia-labs/onebox/internal/core/ports/driven"
	"github.com/custodia-labs/onebox/internal/core/ports/driving"
	"github.com/custodia-labs/onebox/internal/logger"
)

// Ensure DirectoryProvider implements the interface.
var _ driving.Provider = (*DirectoryProvider)(nil)

// Diagnostics reported by the directory provider.
const (
	DiagVersionUnsupported  = "OneBox API versions older than %d.%d not supported by provider"
	DiagLanguageUnsupported = "Languages other than english not supported by provider"
	DiagAuthFailed          = "User authentication failed"
	DiagLookupFailure       = "Lookup failure during authorization"
	DiagDirectoryFailure    = "Directory lookup failed"
)

// DirectoryProvider answers OneBox queries against the employee directory,
// applying the role-based authorization policy to every candidate.
type DirectoryProvider struct {
	settings  domain.ProviderSettings
	directory driven.Directory
	roles     driven.RoleStore

	verifier driven.CredentialVerifier
	dn       driven.DNResolver
	cookies  driven.CookieResolver
}

// NewDirectoryProvider creates a provider over directory and roles.
// Basic, LDAP and SSO handling stay disabled until their collaborator is set.
func NewDirectoryProvider(
	settings domain.ProviderSettings,
	directory driven.Directory,
	roles driven.RoleStore,
) *DirectoryProvider {
	return &DirectoryProvider{
		settings:  settings,
		directory: directory,
		roles:     roles,
	}
}

// SetCredentialVerifier enables basic authentication.
func (p *DirectoryProvider) SetCredentialVerifier(v driven.CredentialVerifier) {
	p.verifier = v
}

// SetDNResolver enables LDAP identities.
func (p *DirectoryProvider) SetDNResolver(r driven.DNResolver) {
	p.dn = r
}

// SetCookieResolver enables SSO identities.
func (p *DirectoryProvider) SetCookieResolver(r driven.CookieResolver) {
	p.cookies = r
}

// Capabilities returns the auth types this provider will handle: those
// enabled in settings whose collaborator is configured.
func (p *DirectoryProvider) Capabilities() domain.AuthCapability {
	c := p.settings.AuthTypes & domain.AuthCapAnonymous
	if p.verifier != nil {
		c |= p.settings.AuthTypes & domain.AuthCapBasic
	}
	if p.dn != nil {
		c |= p.settings.AuthTypes & domain.AuthCapLDAP
	}
	if p.cookies != nil {
		c |= p.settings.AuthTypes & domain.AuthCapSSO
	}
	return c
}

// Provide handles one request.
func (p *DirectoryProvider) Provide(ctx context.Context, req domain.Request) (*domain.ResultSet, error) {
	if req.Credential == nil {
		return nil, fmt.Errorf("%w: request has no credential", domain.ErrInvalidInput)
	}
	authType := req.Credential.AuthType()
	if !p.Capabilities().Supports(authType) {
		return nil, &domain.UnsupportedAuthError{Type: authType}
	}

	res := domain.NewResultSet()
	if !p.checkCompatibility(req, res) {
		return res, nil
	}

	switch cred := req.Credential.(type) {
	case domain.AnonymousCredential:
		p.provideAnonymous(ctx, req, res)
	case domain.BasicCredential:
		p.provideBasic(ctx, req, cred, res)
	case domain.LDAPCredential:
		p.provideLDAP(ctx, req, cred, res)
	case domain.SSOCredential:
		p.provideSSO(ctx, req, cred, res)
	default:
		return nil, &domain.UnsupportedAuthError{Type: authType}
	}
	return res, nil
}

// checkCompatibility applies the version and language gate. It returns
// false after recording a lookupFailure on res.
func (p *DirectoryProvider) checkCompatibility(req domain.Request, res *domain.ResultSet) bool {
	minVersion := p.settings.MinVersion
	if !req.Version.AtLeast(minVersion) {
		logger.Debug("Rejecting API version %d.%d", req.Version.Major, req.Version.Minor)
		res.SetFailure(domain.ResultLookupFailure,
			fmt.Sprintf(DiagVersionUnsupported, minVersion.Major, minVersion.Minor))
		return false
	}
	if !strings.EqualFold(req.Lang, p.settings.Language) {
		logger.Debug("Rejecting language %q", req.Lang)
		res.SetFailure(domain.ResultLookupFailure, DiagLanguageUnsupported)
		return false
	}
	return true
}

func (p *DirectoryProvider) provideAnonymous(ctx context.Context, req domain.Request, res *domain.ResultSet) {
	p.decorate(req, res)
	p.search(ctx, req, nil, res)
}

func (p *DirectoryProvider) provideBasic(
	ctx context.Context, req domain.Request, cred domain.BasicCredential, res *domain.ResultSet,
) {
	// Rejected logins carry no provider decoration.
	if err := p.verifier.Verify(ctx, cred.Username, cred.Password); err != nil {
		if !errors.Is(err, domain.ErrAuthInvalid) {
			logger.Warn("Credential verification error: %v", err)
		}
		res.SetFailure(domain.ResultSecurityFailure, DiagAuthFailed)
		return
	}
	p.decorate(req, res)
	p.provideFor(ctx, req, cred.Username, res)
}

func (p *DirectoryProvider) provideLDAP(
	ctx context.Context, req domain.Request, cred domain.LDAPCredential, res *domain.ResultSet,
) {
	p.decorate(req, res)
	userID, ok := p.dn.UserID(cred.DistinguishedName)
	if !ok {
		logger.Debug("No identity attribute in DN %q", cred.DistinguishedName)
		res.SetFailure(domain.ResultLookupFailure, DiagLookupFailure)
		return
	}
	p.provideFor(ctx, req, userID, res)
}

func (p *DirectoryProvider) provideSSO(
	ctx context.Context, req domain.Request, cred domain.SSOCredential, res *domain.ResultSet,
) {
	p.decorate(req, res)
	if cred.Cookie == nil {
		logger.Debug("No cookie named %q", cred.CookieName)
		res.SetFailure(domain.ResultLookupFailure, DiagLookupFailure)
		return
	}
	userID, err := p.cookies.UserID(ctx, *cred.Cookie)
	if err != nil || userID == "" {
		logger.Debug("Cookie %q did not resolve: %v", cred.CookieName, err)
		res.SetFailure(domain.ResultLookupFailure, DiagLookupFailure)
		return
	}
	p.provideFor(ctx, req, userID, res)
}

// provideFor resolves userID to an identity and runs the search as that
// identity.
func (p *DirectoryProvider) provideFor(ctx context.Context, req domain.Request, userID string, res *domain.ResultSet) {
	identity, err := p.resolveIdentity(ctx, userID)
	if err != nil {
		logger.Debug("Identity %q not resolved: %v", userID, err)
		res.SetFailure(domain.ResultLookupFailure, DiagLookupFailure)
		return
	}
	logger.Debug("Requester %s role=%s department=%s", identity.UserID, identity.Role, identity.Record.Department)
	p.search(ctx, req, identity, res)
}

func (p *DirectoryProvider) resolveIdentity(ctx context.Context, userID string) (*domain.Identity, error) {
	role, err := p.roles.Role(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("role: %w", err)
	}
	record, err := p.directory.Lookup(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	return &domain.Identity{UserID: userID, Role: role, Record: *record}, nil
}

// search evaluates every directory record against the query and the
// policy, collects up to domain.MaxResults entries and sets the title link
// with the total number of authorized matches.
func (p *DirectoryProvider) search(
	ctx context.Context, req domain.Request, requester *domain.Identity, res *domain.ResultSet,
) int {
	records, err := p.directory.Iterate(ctx)
	if err != nil {
		logger.Warn("Directory iteration failed: %v", err)
		res.SetFailure(domain.ResultLookupFailure, DiagDirectoryFailure)
		return 0
	}

	fold := cases.Fold()
	query := fold.String(req.Query)
	col := newCollector(res)

	for i := range records {
		candidate := records[i]
		if fold.String(candidate.LastName) != query {
			continue
		}
		visibility := domain.Authorize(requester, candidate)
		if !visibility.IsVisible() {
			continue
		}
		col.countMatch()
		if !col.canAccept() {
			continue
		}
		if err := col.add(p.entry(req, candidate, visibility)); err != nil {
			logger.Warn("Dropping %s: %v", candidate.ID, err)
		}
	}

	logger.Debug("Matches: %d, entries: %d", col.matches, len(res.Results()))
	res.SetResultsTitleLink(
		fmt.Sprintf("%d matching results in the %s", col.matches, p.settings.DirectoryName),
		p.url(req, p.settings.DirectoryPage),
	)
	return col.matches
}

// entry builds the module result for an authorized candidate.
func (p *DirectoryProvider) entry(req domain.Request, r domain.Record, v domain.Visibility) *domain.ModuleResult {
	mr := domain.NewModuleResult(r.DisplayName(), p.url(req, p.settings.DirectoryPage))
	mr.AddField(domain.NewField("position", r.Position))
	mr.AddField(domain.NewField("department", r.Department))
	if v == domain.VisibleWithDetail {
		mr.AddField(domain.NewField("phone", r.Phone))
		mr.AddField(domain.NewField("email", r.Email))
		mr.AddField(domain.NewField("building", r.Building))
		mr.AddField(domain.NewField("office", r.Office))
	}
	return mr
}

// decorate sets the provider label and image.
func (p *DirectoryProvider) decorate(req domain.Request, res *domain.ResultSet) {
	res.SetProviderText(p.settings.ProviderLabel())
	if p.settings.ImagePath != "" {
		res.SetImageURL(p.url(req, p.settings.ImagePath))
	}
}

// url resolves path against the configured base URL, falling back to the
// request's base URL.
func (p *DirectoryProvider) url(req domain.Request, path string) string {
	base := p.settings.BaseURL
	if base == "" {
		base = req.BaseURL
	}
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + path
}
