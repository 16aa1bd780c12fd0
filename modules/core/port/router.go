package port

import (
	"fmt"

	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
)

// Router maps a bound PortId to the IBCModule that owns it.
// Binding is one-shot: once a port is bound it cannot be silently rebound,
// mirroring how a real chain's module manager wires ports once at genesis.
type Router struct {
	routes map[string]IBCModule
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{routes: make(map[string]IBCModule)}
}

// AddRoute binds portID to module. It panics on a malformed port id or a
// duplicate binding, the same fail-fast posture the teacher's module wiring
// takes for configuration errors discovered at startup (app wiring, not a
// runtime handler path, so no error return is called for here).
func (r *Router) AddRoute(portID string, module IBCModule) *Router {
	if err := host.ValidatePortID(portID); err != nil {
		panic(fmt.Sprintf("invalid port id for route: %s", err))
	}
	if r.HasRoute(portID) {
		panic(fmt.Sprintf("route already registered for port %q", portID))
	}
	r.routes[portID] = module
	return r
}

// HasRoute reports whether portID has been bound.
func (r *Router) HasRoute(portID string) bool {
	_, ok := r.routes[portID]
	return ok
}

// Route returns the module bound to portID.
func (r *Router) Route(portID string) (IBCModule, bool) {
	m, ok := r.routes[portID]
	return m, ok
}
