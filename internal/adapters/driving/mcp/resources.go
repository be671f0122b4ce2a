package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/onebox/internal/core/domain"
)

// uriScheme is the custom URI scheme for OneBox resources.
const uriScheme = "onebox://"

// capabilitiesInfo describes what the provider accepts.
type capabilitiesInfo struct {
	Provider   string   `json:"provider"`
	AuthTypes  []string `json:"auth_types"`
	MinVersion string   `json:"min_api_version"`
	Language   string   `json:"language"`
	MaxResults int      `json:"max_results"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "capabilities",
		Name:        "capabilities",
		Description: "Authentication types, API version and language accepted by the provider",
		MIMEType:    "application/json",
	}, s.handleCapabilitiesResource)
}

// handleCapabilitiesResource describes the provider.
func (s *Server) handleCapabilitiesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := s.ports.Settings
	caps := settings.AuthTypes
	if s.ports.Provider != nil {
		caps = s.ports.Provider.Capabilities()
	}

	info := capabilitiesInfo{
		Provider:   settings.ProviderLabel(),
		AuthTypes:  []string{},
		MinVersion: fmt.Sprintf("%d.%d", settings.MinVersion.Major, settings.MinVersion.Minor),
		Language:   settings.Language,
		MaxResults: domain.MaxResults,
	}
	for _, t := range caps.Types() {
		info.AuthTypes = append(info.AuthTypes, string(t))
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling capabilities: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
