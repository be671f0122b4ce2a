package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/onebox/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/onebox/internal/adapters/driven/storage/seed"
	"github.com/custodia-labs/onebox/internal/core/domain"
	"github.com/custodia-labs/onebox/internal/core/services"
)

func TestQueryInput_Defaults(t *testing.T) {
	params := QueryInput{Query: "  Brown "}.params()

	assert.Equal(t, "Brown", params.Value(domain.ParamQuery))
	assert.Equal(t, "none", params.Value(domain.ParamAuthType))
	assert.Equal(t, "en", params.Value(domain.ParamLang))
	assert.Equal(t, "1", params.Value(domain.ParamAPIMajor))
	assert.Equal(t, "0", params.Value(domain.ParamAPIMinor))
	_, ok := params.Get(domain.ParamUserName)
	assert.False(t, ok)
	assert.Empty(t, params.Cookies)
}

func TestQueryInput_Explicit(t *testing.T) {
	major, minor := 2, 3
	params := QueryInput{
		Query:       "Brown",
		AuthType:    "sso",
		UserName:    "acme_sso",
		Cookie:      "wbrown",
		Lang:        "fr",
		APIMajor:    &major,
		APIMinor:    &minor,
		MatchGroups: []string{"a", "b"},
	}.params()

	assert.Equal(t, "2", params.Value(domain.ParamAPIMajor))
	assert.Equal(t, "3", params.Value(domain.ParamAPIMinor))
	assert.Equal(t, "fr", params.Value(domain.ParamLang))
	assert.Equal(t, "a", params.Value("p0"))
	assert.Equal(t, "b", params.Value("p1"))
	c, ok := params.Cookie("acme_sso")
	require.True(t, ok)
	assert.Equal(t, "wbrown", c.Value)
}

func TestServer_handleQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("maps result set", func(t *testing.T) {
		res := domain.NewResultSet()
		res.SetResultsTitleLink("1 matching results", "http://h/")
		mr := domain.NewModuleResult("Brown, Susan", "http://h/acme_directory.html")
		mr.AddField(domain.NewField("position", "Sr Associate"))
		require.NoError(t, res.AddResult(mr))
		d := &mockDispatcher{res: res}

		server, err := NewServer(&Ports{Dispatcher: d})
		require.NoError(t, err)

		_, output, err := server.handleQuery(ctx, nil, QueryInput{Query: "Brown"})

		require.NoError(t, err)
		assert.Equal(t, "success", output.ResultCode)
		assert.Equal(t, "1 matching results", output.Title)
		require.Len(t, output.Entries, 1)
		assert.Equal(t, "Brown, Susan", output.Entries[0].Title)
		assert.Equal(t, "Sr Associate", output.Entries[0].Fields["position"])
		assert.Contains(t, output.XML, "<Title>Brown, Susan</Title>")
		assert.Equal(t, "Brown", d.last.Value(domain.ParamQuery))
	})

	t.Run("failure is data", func(t *testing.T) {
		d := &mockDispatcher{res: domain.NewFailure(domain.ResultSecurityFailure, "User authentication failed")}
		server, err := NewServer(&Ports{Dispatcher: d})
		require.NoError(t, err)

		_, output, err := server.handleQuery(ctx, nil, QueryInput{Query: "Brown", AuthType: "basic"})

		require.NoError(t, err)
		assert.Equal(t, "securityFailure", output.ResultCode)
		assert.Equal(t, "User authentication failed", output.Diagnostics)
		assert.Empty(t, output.Entries)
	})

	t.Run("real dispatcher", func(t *testing.T) {
		f := seed.ACME()
		directory, err := memory.NewDirectoryStore(f)
		require.NoError(t, err)
		provider := services.NewDirectoryProvider(domain.DefaultProviderSettings(), directory, memory.NewRoleStore(f))
		server, err := NewServer(&Ports{Dispatcher: services.NewDispatcher(provider, nil)})
		require.NoError(t, err)

		_, output, err := server.handleQuery(ctx, nil, QueryInput{Query: "brown"})

		require.NoError(t, err)
		assert.Equal(t, "success", output.ResultCode)
		assert.Len(t, output.Entries, 3)
		assert.Equal(t, "rbrown@acme.com", output.Entries[0].Fields["email"])
	})
}
