package driving

import (
	"context"

	"github.com/custodia-labs/onebox/internal/core/domain"
)

// Provider answers typed OneBox requests.
type Provider interface {
	// Provide handles one request. Every failure the provider understands is
	// recorded on the returned ResultSet. The only error returned is a
	// *domain.UnsupportedAuthError for a variant the provider does not implement.
	Provide(ctx context.Context, req domain.Request) (*domain.ResultSet, error)
}

// Dispatcher is the protocol entry point. It never fails: every outcome is
// a well-formed OneBox document.
type Dispatcher interface {
	// Resolve parses params, selects the auth variant and returns the
	// resulting ResultSet without rendering it.
	Resolve(ctx context.Context, params domain.Params) *domain.ResultSet

	// Dispatch is Resolve followed by serialization.
	Dispatch(ctx context.Context, params domain.Params) string

	// Render serializes a ResultSet built outside the provider.
	Render(res *domain.ResultSet) string
}
