package types

import "context"

// ValidationContext is the read-only view the channel and packet handlers
// need: resolving channels, sequence counters, and the commitment/receipt/
// acknowledgement bookkeeping, without being able to mutate any of it
// (mirrors 02-client/types/context.go and 03-connection/types/context.go).
type ValidationContext interface {
	ClientKeeper
	ConnectionKeeper

	GetChannel(ctx context.Context, portID, channelID string) (ChannelEnd, error)

	GetNextSequenceSend(ctx context.Context, portID, channelID string) (uint64, error)
	GetNextSequenceRecv(ctx context.Context, portID, channelID string) (uint64, error)
	GetNextSequenceAck(ctx context.Context, portID, channelID string) (uint64, error)

	GetPacketCommitment(ctx context.Context, portID, channelID string, sequence uint64) ([]byte, error)
	HasPacketReceipt(ctx context.Context, portID, channelID string, sequence uint64) (bool, error)
	GetPacketAcknowledgement(ctx context.Context, portID, channelID string, sequence uint64) ([]byte, error)
}

// ExecutionContext extends ValidationContext with the mutations the open/
// close handshake and the packet lifecycle handlers apply once validation
// has passed.
type ExecutionContext interface {
	ValidationContext

	SetChannel(ctx context.Context, portID, channelID string, channel ChannelEnd) error

	SetNextSequenceSend(ctx context.Context, portID, channelID string, seq uint64) error
	SetNextSequenceRecv(ctx context.Context, portID, channelID string, seq uint64) error
	SetNextSequenceAck(ctx context.Context, portID, channelID string, seq uint64) error

	SetPacketCommitment(ctx context.Context, portID, channelID string, sequence uint64, commitment []byte) error
	DeletePacketCommitment(ctx context.Context, portID, channelID string, sequence uint64) error
	SetPacketReceipt(ctx context.Context, portID, channelID string, sequence uint64) error
	SetPacketAcknowledgement(ctx context.Context, portID, channelID string, sequence uint64, ackCommitment []byte) error
}
