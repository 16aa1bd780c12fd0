package types

import errorsmod "cosmossdk.io/errors"

const ModuleName = "channel"

var (
	ErrChannelNotFound            = errorsmod.Register(ModuleName, 2, "channel not found")
	ErrInvalidChannel             = errorsmod.Register(ModuleName, 3, "invalid channel")
	ErrInvalidChannelState        = errorsmod.Register(ModuleName, 4, "channel state is unexpected for this transition")
	ErrChannelMismatch            = errorsmod.Register(ModuleName, 5, "channel does not match expected counterparty state")
	ErrInvalidChannelOrdering     = errorsmod.Register(ModuleName, 6, "invalid channel ordering")
	ErrInvalidConnectionHops      = errorsmod.Register(ModuleName, 7, "invalid connection hops")
	ErrInvalidProof               = errorsmod.Register(ModuleName, 8, "invalid or missing proof")
	ErrInvalidPacket               = errorsmod.Register(ModuleName, 9, "invalid packet")
	ErrPacketCommitmentNotFound    = errorsmod.Register(ModuleName, 10, "packet commitment not found")
	ErrPacketCommitmentMismatch    = errorsmod.Register(ModuleName, 11, "packet commitment does not match packet")
	ErrPacketReceiptAlreadyExists  = errorsmod.Register(ModuleName, 12, "packet receipt already exists")
	ErrAcknowledgementNotFound     = errorsmod.Register(ModuleName, 13, "acknowledgement not found")
	ErrAcknowledgementExists       = errorsmod.Register(ModuleName, 14, "acknowledgement already exists")
	ErrUnexpectedSequence          = errorsmod.Register(ModuleName, 15, "packet sequence does not match the expected next sequence")
	ErrPacketTimeout                = errorsmod.Register(ModuleName, 16, "packet has timed out")
	ErrTimeoutNotReached            = errorsmod.Register(ModuleName, 17, "packet has not yet timed out")
	ErrInvalidVersion               = errorsmod.Register(ModuleName, 18, "invalid channel version")
)
