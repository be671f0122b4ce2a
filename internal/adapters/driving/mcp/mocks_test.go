package mcp

import (
	"context"

	"github.com/custodia-labs/onebox/internal/core/domain"
	"github.com/custodia-labs/onebox/internal/core/services"
)

// mockDispatcher returns a canned result set and records the params.
type mockDispatcher struct {
	res  *domain.ResultSet
	last domain.Params
}

func (m *mockDispatcher) Resolve(_ context.Context, params domain.Params) *domain.ResultSet {
	m.last = params
	if m.res == nil {
		return domain.NewResultSet()
	}
	return m.res
}

func (m *mockDispatcher) Dispatch(ctx context.Context, params domain.Params) string {
	return m.Render(m.Resolve(ctx, params))
}

func (m *mockDispatcher) Render(res *domain.ResultSet) string {
	return services.NewSerializer(false).Serialize(res)
}

// mockProvider reports a fixed capability set.
type mockProvider struct {
	caps domain.AuthCapability
}

func (m *mockProvider) Capabilities() domain.AuthCapability {
	return m.caps
}
