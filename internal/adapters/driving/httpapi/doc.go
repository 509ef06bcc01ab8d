// Package httpapi exposes the recipe service over HTTP.
//
// Routes live under /api/v1 and speak JSON. Recipes are addressed by
// their external id, which the handlers resolve to a storage path before
// calling into the service.
//
// # Import Rules
//
// This package may import:
//   - internal/core/domain: for entities and error sentinels
//   - internal/core/ports/driving: for the service interface
//   - internal/logger: for request logging
//
// This package must NOT import:
//   - internal/core/services: handlers talk to the port, not the implementation
//   - internal/adapters/driven/*: storage is behind the service
package httpapi
