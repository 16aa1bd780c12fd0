package host

import errorsmod "cosmossdk.io/errors"

// ModuleName is the codespace for identifier and path validation errors.
const ModuleName = "host"

var (
	ErrInvalidID               = errorsmod.Register(ModuleName, 2, "invalid identifier")
	ErrInvalidPath             = errorsmod.Register(ModuleName, 3, "invalid path")
	ErrUnformattedRevision     = errorsmod.Register(ModuleName, 4, "chain id is not in {name}-{revision} format")
	ErrRevisionNumberOverflow  = errorsmod.Register(ModuleName, 5, "revision number overflow")
	ErrInvalidChainID          = errorsmod.Register(ModuleName, 6, "invalid chain id")
)
