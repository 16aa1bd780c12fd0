package types

import errorsmod "cosmossdk.io/errors"

// ModuleName is this subsystem's error codespace, matching the teacher's
// one-codespace-per-module convention (x/pse/types/errors.go).
const ModuleName = "client"

var (
	ErrClientNotFound          = errorsmod.Register(ModuleName, 2, "light client not found")
	ErrClientTypeNotFound      = errorsmod.Register(ModuleName, 3, "light client type not found")
	ErrInvalidClient           = errorsmod.Register(ModuleName, 4, "invalid light client")
	ErrInvalidClientType       = errorsmod.Register(ModuleName, 5, "invalid client type")
	ErrInvalidConsensus        = errorsmod.Register(ModuleName, 6, "invalid consensus state")
	ErrConsensusStateNotFound  = errorsmod.Register(ModuleName, 7, "consensus state not found")
	ErrClientFrozen            = errorsmod.Register(ModuleName, 8, "client is frozen")
	ErrClientExpired           = errorsmod.Register(ModuleName, 9, "client is expired")
	ErrClientNotActive         = errorsmod.Register(ModuleName, 10, "client state is not active")
	ErrHeaderVerificationFailed = errorsmod.Register(ModuleName, 11, "header failed verification")
	ErrInvalidHeader           = errorsmod.Register(ModuleName, 12, "invalid header")
	ErrInvalidHeight            = errorsmod.Register(ModuleName, 13, "invalid height")
	ErrInvalidMisbehaviour      = errorsmod.Register(ModuleName, 14, "invalid misbehaviour")
	ErrInvalidUpgradeClient     = errorsmod.Register(ModuleName, 15, "invalid client upgrade")
	ErrHostConsensusStateMissing = errorsmod.Register(ModuleName, 16, "host consensus state not found for local height")
	ErrInvalidSelfClient        = errorsmod.Register(ModuleName, 17, "self client state does not match host chain")
)
