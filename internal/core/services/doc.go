// Package services implements the driving port interfaces.
// Services contain the protocol dispatch, authorization and result
// serialization logic and orchestrate calls to driven ports (adapters).
//
// Services are pure computation over in-memory inputs and keep no
// cross-request mutable state.
package services
