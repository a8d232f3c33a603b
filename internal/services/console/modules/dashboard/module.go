package dashboard

import (
	"net/http"

	"github.com/actext/console/internal/marketapi"
	module "github.com/actext/console/internal/services/console/module"
	"github.com/actext/console/internal/services/console/routepath"
)

// Module provides the admin dashboard routes.
type Module struct {
	gateway         Gateway
	resolveIdentity module.ResolveIdentity
	reconcile       ReconciliationStrategy
}

// New returns a dashboard module backed by the marketplace API client.
func New(client *marketapi.Client, resolveIdentity module.ResolveIdentity) Module {
	return NewWithGateway(NewClientGateway(client), resolveIdentity, RefetchStrategy{})
}

// NewWithGateway returns a dashboard module with injectable collaborators.
func NewWithGateway(gateway Gateway, resolveIdentity module.ResolveIdentity, reconcile ReconciliationStrategy) Module {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if reconcile == nil {
		reconcile = RefetchStrategy{}
	}
	return Module{gateway: gateway, resolveIdentity: resolveIdentity, reconcile: reconcile}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Healthy reports whether the module has a live gateway.
func (m Module) Healthy() bool {
	_, degraded := m.gateway.(unavailableGateway)
	return !degraded
}

// Mount wires dashboard route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway, m.reconcile), m.resolveIdentity)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.AdminPrefix, Handler: mux}, nil
}
