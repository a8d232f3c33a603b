package profile

import (
	"net/http"

	"github.com/actext/console/internal/marketapi"
	module "github.com/actext/console/internal/services/console/module"
	"github.com/actext/console/internal/services/console/platform/identity"
	"github.com/actext/console/internal/services/console/platform/requestmeta"
	"github.com/actext/console/internal/services/console/routepath"
)

// Module provides the user profile routes.
type Module struct {
	gateway         Gateway
	resolveIdentity module.ResolveIdentity
	writeIdentity   IdentityWriter
	flashMeta       requestmeta.SchemePolicy
}

// New returns a profile module backed by the marketplace API client.
// The codec rewrites the session cookie after a successful save.
func New(client *marketapi.Client, resolveIdentity module.ResolveIdentity, codec *identity.Codec, policy requestmeta.SchemePolicy) Module {
	var writer IdentityWriter
	if codec != nil {
		writer = codec.Write
	}
	return NewWithGateway(NewClientGateway(client), resolveIdentity, writer, policy)
}

// NewWithGateway returns a profile module with injectable collaborators.
func NewWithGateway(gateway Gateway, resolveIdentity module.ResolveIdentity, writeIdentity IdentityWriter, policy requestmeta.SchemePolicy) Module {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return Module{
		gateway:         gateway,
		resolveIdentity: resolveIdentity,
		writeIdentity:   writeIdentity,
		flashMeta:       policy,
	}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "profile" }

// Healthy reports whether the module has a live gateway.
func (m Module) Healthy() bool {
	_, degraded := m.gateway.(unavailableGateway)
	return !degraded
}

// Mount wires profile route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.resolveIdentity, m.writeIdentity, m.flashMeta)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ProfilePrefix, Handler: mux}, nil
}
