package types

import errorsmod "cosmossdk.io/errors"

const ModuleName = "connection"

var (
	ErrConnectionNotFound        = errorsmod.Register(ModuleName, 2, "connection not found")
	ErrInvalidConnection         = errorsmod.Register(ModuleName, 3, "invalid connection")
	ErrInvalidConnectionState    = errorsmod.Register(ModuleName, 4, "connection state is unexpected for this transition")
	ErrConnectionMismatch        = errorsmod.Register(ModuleName, 5, "connection does not match expected counterparty state")
	ErrVersionNegotiationFailed  = errorsmod.Register(ModuleName, 6, "version negotiation failed")
	ErrInvalidVersion            = errorsmod.Register(ModuleName, 7, "invalid version")
	ErrInvalidCounterparty       = errorsmod.Register(ModuleName, 8, "invalid counterparty")
	ErrDelayPeriodNotPassed      = errorsmod.Register(ModuleName, 9, "connection delay period has not yet elapsed")
	ErrInvalidProof              = errorsmod.Register(ModuleName, 10, "invalid or missing proof")
)
