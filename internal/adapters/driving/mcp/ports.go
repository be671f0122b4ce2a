package mcp

import (
	"github.com/custodia-labs/onebox/internal/core/domain"
	"github.com/custodia-labs/onebox/internal/core/ports/driving"
)

// CapabilityReporter reports the auth types a provider handles.
type CapabilityReporter interface {
	Capabilities() domain.AuthCapability
}

// Ports aggregates what the MCP server needs.
type Ports struct {
	// Dispatcher resolves and renders queries.
	Dispatcher driving.Dispatcher

	// Provider is optional; it backs the capabilities resource.
	Provider CapabilityReporter

	// Settings describe the provider in the capabilities resource.
	Settings domain.ProviderSettings
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Dispatcher == nil {
		return ErrMissingDispatcher
	}
	return nil
}
