package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/onebox/internal/core/domain"
)

func TestQueryCmd_RequiresExactlyOneArg(t *testing.T) {
	setupTestApp(t)

	_, err := execute(t, "query")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestQueryCmd_Flags(t *testing.T) {
	flag := queryCmd.Flags().Lookup("auth")
	require.NotNil(t, flag)
	assert.Equal(t, "a", flag.Shorthand)
	assert.Equal(t, "none", flag.DefValue)
	assert.Equal(t, "en", queryCmd.Flags().Lookup("lang").DefValue)
	assert.Equal(t, "1", queryCmd.Flags().Lookup("api-maj").DefValue)
}

func TestQueryCmd_Anonymous(t *testing.T) {
	setupTestApp(t)

	out, err := execute(t, "query", "Brown")

	require.NoError(t, err)
	assert.Contains(t, out, "OneBoxDirectoryProvider: ACME Employee Directory")
	assert.Contains(t, out, "3 matching results in the ACME Employee Directory")
	assert.Contains(t, out, "Brown, Ronald")
	assert.Contains(t, out, "rbrown@acme.com")
}

func TestQueryCmd_BasicWithPrompt(t *testing.T) {
	setupTestApp(t)
	rootCmd.SetIn(strings.NewReader("rmiller\n"))

	out, err := execute(t, "query", "Brown", "--auth", "basic", "--user", "rmiller")

	require.NoError(t, err)
	assert.Contains(t, out, "Password:")
	assert.Contains(t, out, "Brown, Susan")
	assert.Contains(t, out, "Brown, William")
	assert.NotContains(t, out, "Brown, Ronald")
}

func TestQueryCmd_XML(t *testing.T) {
	setupTestApp(t)

	out, err := execute(t, "query", "Brown", "--auth", "sso", "--user", "acme_sso", "--cookie", "wbrown", "--xml")

	require.NoError(t, err)
	assert.Contains(t, out, "<resultCode>success</resultCode>")
	assert.Equal(t, 1, strings.Count(out, "<MODULE_RESULT>"))
}

func TestQueryCmd_Failure(t *testing.T) {
	setupTestApp(t)

	out, err := execute(t, "query", "Brown", "--lang", "fr")

	require.Error(t, err)
	assert.Contains(t, out, "lookupFailure")
	assert.Contains(t, out, "Languages other than english not supported by provider")
}

func TestQueryParams(t *testing.T) {
	setupTestApp(t)
	queryAuth = "sso"
	queryUser = "acme_sso"
	queryCookie = "wbrown"
	queryMatch = []string{"Brown"}

	params := queryParams("Brown")

	assert.Equal(t, "sso", params.Value(domain.ParamAuthType))
	assert.Equal(t, "Brown", params.Value("p0"))
	c, ok := params.Cookie("acme_sso")
	require.True(t, ok)
	assert.Equal(t, "wbrown", c.Value)
}

func TestReadPassword_NonTerminal(t *testing.T) {
	assert.Equal(t, "secret", readPassword(strings.NewReader("  secret \nignored")))
	assert.Equal(t, "", readPassword(strings.NewReader("")))
}
