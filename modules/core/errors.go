package core

import errorsmod "cosmossdk.io/errors"

const moduleName = "ibc"

var (
	errPortNotBound    = errorsmod.Register(moduleName, 2, "port is not bound to any application module")
	errUnrecognizedMsg = errorsmod.Register(moduleName, 3, "unrecognized IBC message type")
)

func errUnboundPort(portID string) error {
	return errorsmod.Wrapf(errPortNotBound, "port %s", portID)
}
