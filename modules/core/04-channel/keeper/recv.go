package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-core/modules/core/04-channel/types"
)

// ValidateRecvPacket checks the channel is Open, the packet has not timed
// out against our current height, and proves the sender's packet commitment
// is present at the sender's side.
//
// For an ORDERED channel it additionally requires packet.Sequence equal the
// next expected recv sequence; an UNORDERED channel instead rejects a replay
// by checking no receipt is already stored (spec's invariant 2: "exactly
// once delivery per channel ordering mode").
func (k Keeper) ValidateRecvPacket(ctx context.Context, msg types.MsgRecvPacket) error {
	packet := msg.Packet
	if err := packet.ValidateBasic(); err != nil {
		return err
	}
	channel, err := k.GetChannel(ctx, packet.DestinationPort, packet.DestinationChannel)
	if err != nil {
		return err
	}
	if err := expectState(channel, types.OPEN); err != nil {
		return err
	}
	if channel.Counterparty.PortId != packet.SourcePort || channel.Counterparty.ChannelId != packet.SourceChannel {
		return errorsmod.Wrap(types.ErrInvalidPacket, "packet source does not match channel counterparty")
	}

	if packet.TimeoutHeight != nil && !packet.TimeoutHeight.IsZero() && msg.ProofHeight.GTE(packet.TimeoutHeight) {
		return errorsmod.Wrap(types.ErrPacketTimeout, "packet timeout height has already elapsed")
	}
	// No wall clock in this engine: the timeout timestamp is checked against
	// the proof height's revision height, the same approximation verify.go's
	// delay-period check and keeper/timeout.go's requireTimedOut use.
	if packet.TimeoutTimestamp != 0 && msg.ProofHeight.GetRevisionHeight() >= packet.TimeoutTimestamp {
		return errorsmod.Wrap(types.ErrPacketTimeout, "packet timeout timestamp has already elapsed")
	}

	switch channel.Ordering {
	case types.ORDERED:
		nextRecv, err := k.GetNextSequenceRecv(ctx, packet.DestinationPort, packet.DestinationChannel)
		if err != nil {
			return err
		}
		if packet.Sequence != nextRecv {
			return errorsmod.Wrapf(types.ErrUnexpectedSequence, "expected sequence %d, got %d", nextRecv, packet.Sequence)
		}
	case types.UNORDERED:
		has, err := k.HasPacketReceipt(ctx, packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
		if err != nil {
			return err
		}
		if has {
			return errorsmod.Wrapf(types.ErrPacketReceiptAlreadyExists, "packet %d already received", packet.Sequence)
		}
	default:
		return errorsmod.Wrap(types.ErrInvalidChannelOrdering, "channel ordering is unset")
	}

	conn, err := k.connectionFor(ctx, channel)
	if err != nil {
		return err
	}
	return k.verifyPacketCommitment(ctx, conn, msg.ProofHeight, msg.ProofCommitment, packet.SourcePort, packet.SourceChannel, packet.Sequence, types.CommitPacket(packet))
}

// ExecuteRecvPacket records delivery (receipt for UNORDERED, advances
// next-recv for ORDERED), writes the acknowledgement commitment if ack is
// not empty, and emits ReceivePacket and, when applicable,
// WriteAcknowledgement.
func (k Keeper) ExecuteRecvPacket(ctx context.Context, packet types.Packet, channel types.ChannelEnd, ack types.Acknowledgement) error {
	switch channel.Ordering {
	case types.ORDERED:
		if err := k.SetNextSequenceRecv(ctx, packet.DestinationPort, packet.DestinationChannel, packet.Sequence+1); err != nil {
			return err
		}
	case types.UNORDERED:
		if err := k.SetPacketReceipt(ctx, packet.DestinationPort, packet.DestinationChannel, packet.Sequence); err != nil {
			return err
		}
	}

	em := sdk.UnwrapSDKContext(ctx).EventManager()
	em.EmitEvent(types.NewReceivePacketEvent(packet))

	if ack.IsEmpty() {
		return nil
	}
	bz, err := ack.Marshal()
	if err != nil {
		return err
	}
	if err := k.SetPacketAcknowledgement(ctx, packet.DestinationPort, packet.DestinationChannel, packet.Sequence, types.CommitAcknowledgement(bz)); err != nil {
		return err
	}
	em.EmitEvent(types.NewWriteAcknowledgementEvent(packet, bz))
	return nil
}
