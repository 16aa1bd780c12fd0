package keeper

import (
	"bytes"
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	connectiontypes "github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/modules/core/04-channel/types"
)

// ValidateTimeoutPacket checks our packet commitment still matches the
// timed-out packet, that the packet has actually timed out against
// proofHeight, and proves the counterparty never delivered it: receipt
// absence for UNORDERED channels, or nextSequenceRecv <= packet.Sequence for
// ORDERED channels.
func (k Keeper) ValidateTimeoutPacket(ctx context.Context, msg types.MsgTimeout) (types.ChannelEnd, error) {
	packet := msg.Packet
	channel, conn, err := k.checkTimeoutCommitment(ctx, packet)
	if err != nil {
		return types.ChannelEnd{}, err
	}
	if err := requireTimedOut(packet, msg.ProofHeight); err != nil {
		return types.ChannelEnd{}, err
	}

	switch channel.Ordering {
	case types.ORDERED:
		if err := k.verifyNextSequenceRecv(ctx, conn, msg.ProofHeight, msg.ProofUnreceived, packet.DestinationPort, packet.DestinationChannel, msg.NextSequenceRecv, packet.Sequence); err != nil {
			return types.ChannelEnd{}, err
		}
	case types.UNORDERED:
		if err := k.verifyPacketReceiptAbsence(ctx, conn, msg.ProofHeight, msg.ProofUnreceived, packet.DestinationPort, packet.DestinationChannel, packet.Sequence); err != nil {
			return types.ChannelEnd{}, err
		}
	default:
		return types.ChannelEnd{}, errorsmod.Wrap(types.ErrInvalidChannelOrdering, "channel ordering is unset")
	}
	return channel, nil
}

// ExecuteTimeoutPacket deletes the packet commitment and, for ORDERED
// channels, closes the channel, then emits TimeoutPacket.
func (k Keeper) ExecuteTimeoutPacket(ctx context.Context, packet types.Packet, channel types.ChannelEnd) error {
	if err := k.DeletePacketCommitment(ctx, packet.SourcePort, packet.SourceChannel, packet.Sequence); err != nil {
		return err
	}
	if channel.Ordering == types.ORDERED && channel.State != types.CLOSED {
		channel.State = types.CLOSED
		if err := k.SetChannel(ctx, packet.SourcePort, packet.SourceChannel, channel); err != nil {
			return err
		}
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(types.NewTimeoutPacketEvent(packet))
	return nil
}

// ValidateTimeoutOnClose proves the counterparty channel has closed, in
// addition to the non-receipt proof ValidateTimeoutPacket makes. Unlike
// ValidateTimeoutPacket it does not require the timeout height/timestamp to
// have passed, so a packet can be timed out early when the counterparty has
// already closed the channel.
func (k Keeper) ValidateTimeoutOnClose(ctx context.Context, msg types.MsgTimeoutOnClose) (types.ChannelEnd, error) {
	packet := msg.Packet
	channel, conn, err := k.checkTimeoutCommitment(ctx, packet)
	if err != nil {
		return types.ChannelEnd{}, err
	}

	expectedCounterparty := types.ChannelEnd{
		State:    types.CLOSED,
		Ordering: channel.Ordering,
		Counterparty: types.Counterparty{
			PortId:    packet.SourcePort,
			ChannelId: packet.SourceChannel,
		},
		ConnectionHops: []string{conn.Counterparty.ConnectionId},
		Version:        channel.Version,
	}
	if err := k.verifyChannelState(ctx, conn, msg.ProofHeight, msg.ProofClose, channel.Counterparty.PortId, channel.Counterparty.ChannelId, expectedCounterparty); err != nil {
		return types.ChannelEnd{}, err
	}

	switch channel.Ordering {
	case types.ORDERED:
		if err := k.verifyNextSequenceRecv(ctx, conn, msg.ProofHeight, msg.ProofUnreceived, packet.DestinationPort, packet.DestinationChannel, msg.NextSequenceRecv, packet.Sequence); err != nil {
			return types.ChannelEnd{}, err
		}
	case types.UNORDERED:
		if err := k.verifyPacketReceiptAbsence(ctx, conn, msg.ProofHeight, msg.ProofUnreceived, packet.DestinationPort, packet.DestinationChannel, packet.Sequence); err != nil {
			return types.ChannelEnd{}, err
		}
	default:
		return types.ChannelEnd{}, errorsmod.Wrap(types.ErrInvalidChannelOrdering, "channel ordering is unset")
	}
	return channel, nil
}

// ExecuteTimeoutOnClose mirrors ExecuteTimeoutPacket.
func (k Keeper) ExecuteTimeoutOnClose(ctx context.Context, packet types.Packet, channel types.ChannelEnd) error {
	return k.ExecuteTimeoutPacket(ctx, packet, channel)
}

// checkTimeoutCommitment resolves the channel and connection for packet's
// source and confirms the stored commitment still matches it, the shared
// precondition both TimeoutPacket and TimeoutOnClose require.
func (k Keeper) checkTimeoutCommitment(ctx context.Context, packet types.Packet) (types.ChannelEnd, connectiontypes.ConnectionEnd, error) {
	if err := packet.ValidateBasic(); err != nil {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, err
	}
	channel, err := k.GetChannel(ctx, packet.SourcePort, packet.SourceChannel)
	if err != nil {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, err
	}
	if channel.Counterparty.PortId != packet.DestinationPort || channel.Counterparty.ChannelId != packet.DestinationChannel {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrap(types.ErrInvalidPacket, "packet destination does not match channel counterparty")
	}

	commitment, err := k.GetPacketCommitment(ctx, packet.SourcePort, packet.SourceChannel, packet.Sequence)
	if err != nil {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, err
	}
	if commitment == nil {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(types.ErrPacketCommitmentNotFound, "no commitment for sequence %d, already acknowledged or timed out", packet.Sequence)
	}
	if !bytes.Equal(commitment, types.CommitPacket(packet)) {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrap(types.ErrPacketCommitmentMismatch, "commitment does not match timed-out packet")
	}

	conn, err := k.connectionFor(ctx, channel)
	if err != nil {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, err
	}
	return channel, conn, nil
}

// requireTimedOut checks packet actually exceeded at least one of its
// timeout bounds as of proofHeight. There is no wall clock in this engine, so
// the timeout timestamp is checked against proofHeight's revision height,
// the same height-stands-in-for-time approximation the delay-period check
// in verify.go uses.
func requireTimedOut(packet types.Packet, proofHeight interface {
	GetRevisionHeight() uint64
}) error {
	if packet.TimeoutHeight != nil && !packet.TimeoutHeight.IsZero() &&
		proofHeight.GetRevisionHeight() >= packet.TimeoutHeight.GetRevisionHeight() {
		return nil
	}
	if packet.TimeoutTimestamp != 0 && proofHeight.GetRevisionHeight() >= packet.TimeoutTimestamp {
		return nil
	}
	return errorsmod.Wrap(types.ErrTimeoutNotReached, "packet has not yet timed out")
}
