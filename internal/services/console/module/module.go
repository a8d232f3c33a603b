// Package module defines the feature contract used by console composition.
package module

import (
	"net/http"

	"github.com/actext/console/internal/services/console/platform/identity"
)

// ResolveIdentity resolves the cached identity record for a request.
//
// Modules receive identity as an injected dependency rather than reading
// ambient storage themselves, so tests can substitute any record.
type ResolveIdentity func(*http.Request) (identity.Identity, bool)

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by console composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report
// their operational availability. Modules with gateway dependencies
// implement this so the server can derive health without centralizing
// client knowledge.
type HealthReporter interface {
	Healthy() bool
}
