// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the OneBox provider. It lets AI assistants run directory queries through
// the same dispatcher, policy and serializer as the HTTP transport.
package mcp

import "errors"

// ErrMissingDispatcher is returned when the dispatcher is not provided.
var ErrMissingDispatcher = errors.New("mcp: dispatcher is required")
