// Package keeper implements the channel subsystem's open/close handshake
// and the packet lifecycle: Send, Recv, Acknowledge, Timeout, and
// TimeoutOnClose, each split into a pure validate step and
// a mutating execute step, matching the client and connection subsystems'
// shape.
package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
	connectiontypes "github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/modules/core/04-channel/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
	"github.com/tokenize-x/ibc-core/store"
)

// Keeper implements the channel subsystem's ValidationContext and
// ExecutionContext, depending on the client and connection subsystems only
// through their narrow expected-keeper interfaces.
type Keeper struct {
	cdc              codec.BinaryCodec
	store            store.KVStore
	clientKeeper     types.ClientKeeper
	connectionKeeper types.ConnectionKeeper
}

var (
	_ types.ValidationContext = Keeper{}
	_ types.ExecutionContext  = Keeper{}
)

// NewKeeper returns a new channel subsystem keeper.
func NewKeeper(cdc codec.BinaryCodec, kvStore store.KVStore, clientKeeper types.ClientKeeper, connectionKeeper types.ConnectionKeeper) Keeper {
	return Keeper{cdc: cdc, store: kvStore, clientKeeper: clientKeeper, connectionKeeper: connectionKeeper}
}

func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) GetClientState(ctx context.Context, clientID string) (exported.ClientState, error) {
	return k.clientKeeper.GetClientState(ctx, clientID)
}

func (k Keeper) GetConsensusState(ctx context.Context, clientID string, height exported.Height) (exported.ConsensusState, error) {
	return k.clientKeeper.GetConsensusState(ctx, clientID, height)
}

func (k Keeper) ClientStore(ctx context.Context, clientID string) exported.ClientStore {
	return k.clientKeeper.ClientStore(ctx, clientID)
}

func (k Keeper) GetConnection(ctx context.Context, connectionID string) (connectiontypes.ConnectionEnd, error) {
	return k.connectionKeeper.GetConnection(ctx, connectionID)
}

func (k Keeper) GetCommitmentPrefix() exported.Prefix {
	return k.connectionKeeper.GetCommitmentPrefix()
}

// GetChannel returns the stored channel end for (portID, channelID).
func (k Keeper) GetChannel(ctx context.Context, portID, channelID string) (types.ChannelEnd, error) {
	bz, err := k.store.Get(ctx, host.ChannelPath(portID, channelID))
	if err != nil {
		return types.ChannelEnd{}, err
	}
	if bz == nil {
		return types.ChannelEnd{}, errorsmod.Wrapf(types.ErrChannelNotFound, "port %s channel %s", portID, channelID)
	}
	return types.UnmarshalChannelEnd(bz)
}

// SetChannel stores channel under (portID, channelID)'s path.
func (k Keeper) SetChannel(ctx context.Context, portID, channelID string, channel types.ChannelEnd) error {
	bz, err := types.MarshalChannelEnd(channel)
	if err != nil {
		return err
	}
	return k.store.Set(ctx, host.ChannelPath(portID, channelID), bz)
}

func (k Keeper) GetNextSequenceSend(ctx context.Context, portID, channelID string) (uint64, error) {
	return k.getSequence(ctx, host.NextSequenceSendPath(portID, channelID))
}

func (k Keeper) SetNextSequenceSend(ctx context.Context, portID, channelID string, seq uint64) error {
	return k.store.Set(ctx, host.NextSequenceSendPath(portID, channelID), host.EncodeSequence(seq))
}

func (k Keeper) GetNextSequenceRecv(ctx context.Context, portID, channelID string) (uint64, error) {
	return k.getSequence(ctx, host.NextSequenceRecvPath(portID, channelID))
}

func (k Keeper) SetNextSequenceRecv(ctx context.Context, portID, channelID string, seq uint64) error {
	return k.store.Set(ctx, host.NextSequenceRecvPath(portID, channelID), host.EncodeSequence(seq))
}

func (k Keeper) GetNextSequenceAck(ctx context.Context, portID, channelID string) (uint64, error) {
	return k.getSequence(ctx, host.NextSequenceAckPath(portID, channelID))
}

func (k Keeper) SetNextSequenceAck(ctx context.Context, portID, channelID string, seq uint64) error {
	return k.store.Set(ctx, host.NextSequenceAckPath(portID, channelID), host.EncodeSequence(seq))
}

func (k Keeper) getSequence(ctx context.Context, path string) (uint64, error) {
	bz, err := k.store.Get(ctx, path)
	if err != nil {
		return 0, err
	}
	if bz == nil {
		// Sequences are 1-indexed;
		// an unset counter therefore reads as 1, not 0.
		return 1, nil
	}
	return host.DecodeSequence(bz), nil
}

// GetPacketCommitment returns the stored commitment at sequence, or nil if absent.
func (k Keeper) GetPacketCommitment(ctx context.Context, portID, channelID string, sequence uint64) ([]byte, error) {
	return k.store.Get(ctx, host.PacketCommitmentPath(portID, channelID, sequence))
}

func (k Keeper) SetPacketCommitment(ctx context.Context, portID, channelID string, sequence uint64, commitment []byte) error {
	return k.store.Set(ctx, host.PacketCommitmentPath(portID, channelID, sequence), commitment)
}

func (k Keeper) DeletePacketCommitment(ctx context.Context, portID, channelID string, sequence uint64) error {
	return k.store.Delete(ctx, host.PacketCommitmentPath(portID, channelID, sequence))
}

// HasPacketReceipt reports whether a receipt marker is present (unordered
// channels only, spec §3: "Packet receipt").
func (k Keeper) HasPacketReceipt(ctx context.Context, portID, channelID string, sequence uint64) (bool, error) {
	return k.store.Has(ctx, host.PacketReceiptPath(portID, channelID, sequence))
}

func (k Keeper) SetPacketReceipt(ctx context.Context, portID, channelID string, sequence uint64) error {
	return k.store.Set(ctx, host.PacketReceiptPath(portID, channelID, sequence), []byte{1})
}

// GetPacketAcknowledgement returns the stored acknowledgement commitment, or
// nil if absent.
func (k Keeper) GetPacketAcknowledgement(ctx context.Context, portID, channelID string, sequence uint64) ([]byte, error) {
	return k.store.Get(ctx, host.PacketAcknowledgementPath(portID, channelID, sequence))
}

func (k Keeper) SetPacketAcknowledgement(ctx context.Context, portID, channelID string, sequence uint64, ackCommitment []byte) error {
	return k.store.Set(ctx, host.PacketAcknowledgementPath(portID, channelID, sequence), ackCommitment)
}

// nextChannelSequence returns and increments the global channel sequence
// counter used to assign "channel-{seq}" ids.
func (k Keeper) nextChannelSequence(ctx context.Context) (uint64, error) {
	bz, err := k.store.Get(ctx, host.NextChannelSequencePath())
	if err != nil {
		return 0, err
	}
	seq := host.DecodeSequence(bz)
	if err := k.store.Set(ctx, host.NextChannelSequencePath(), host.EncodeSequence(seq+1)); err != nil {
		return 0, err
	}
	return seq, nil
}
