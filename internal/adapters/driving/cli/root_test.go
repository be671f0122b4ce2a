package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "onebox", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{"directory", "mcp", "query", "serve", "settings", "version"}
	var got []string
	for _, cmd := range rootCmd.Commands() {
		got = append(got, cmd.Name())
	}
	for _, name := range want {
		assert.Contains(t, got, name)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)

	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config-dir"))
}

func TestVersionCmd(t *testing.T) {
	setupTestApp(t)
	original := version
	SetVersion("test-version-1.0.0")
	defer func() { version = original }()

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "onebox version test-version-1.0.0")
}

func TestServeCmd_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("addr")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestServeCmd_RejectsArgs(t *testing.T) {
	setupTestApp(t)

	_, err := execute(t, "serve", "extra")

	assert.Error(t, err)
}

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}
