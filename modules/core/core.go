// Package core wires the client, connection, and channel subsystem keepers
// and the port router into a single entry point: Dispatch accepts any
// protocol message and routes it to its subsystem's validate-then-execute
// handler pair.
package core

import (
	clientkeeper "github.com/tokenize-x/ibc-core/modules/core/02-client/keeper"
	connectionkeeper "github.com/tokenize-x/ibc-core/modules/core/03-connection/keeper"
	channelkeeper "github.com/tokenize-x/ibc-core/modules/core/04-channel/keeper"
	"github.com/tokenize-x/ibc-core/modules/core/port"
)

// Keeper composes the client, connection, and channel subsystem keepers with
// the application port router, the shape a host chain's message server
// embeds.
type Keeper struct {
	ClientKeeper     clientkeeper.Keeper
	ConnectionKeeper connectionkeeper.Keeper
	ChannelKeeper    channelkeeper.Keeper
	PortRouter       *port.Router
}

// NewKeeper returns a Keeper over already-constructed subsystem keepers and
// a port router bound to its applications.
func NewKeeper(clientKeeper clientkeeper.Keeper, connectionKeeper connectionkeeper.Keeper, channelKeeper channelkeeper.Keeper, portRouter *port.Router) Keeper {
	return Keeper{
		ClientKeeper:     clientKeeper,
		ConnectionKeeper: connectionKeeper,
		ChannelKeeper:    channelKeeper,
		PortRouter:       portRouter,
	}
}

// routeModule resolves portID to its bound application, failing the message
// if nothing has claimed that port.
func (k Keeper) routeModule(portID string) (port.IBCModule, error) {
	module, ok := k.PortRouter.Route(portID)
	if !ok {
		return nil, errUnboundPort(portID)
	}
	return module, nil
}
