package keeper

import (
	"context"
	"bytes"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-core/modules/core/04-channel/types"
)

// ValidateAcknowledgePacket checks our packet commitment still matches the
// packet being acknowledged, that an ORDERED channel is acknowledging in
// sequence, and proves the counterparty committed exactly this
// acknowledgement at the expected path. Every check is read-only: execute
// must never observe a failure this step could have already caught.
func (k Keeper) ValidateAcknowledgePacket(ctx context.Context, msg types.MsgAcknowledgement) (types.ChannelEnd, error) {
	packet := msg.Packet
	if err := packet.ValidateBasic(); err != nil {
		return types.ChannelEnd{}, err
	}
	channel, err := k.GetChannel(ctx, packet.SourcePort, packet.SourceChannel)
	if err != nil {
		return types.ChannelEnd{}, err
	}
	if err := expectState(channel, types.OPEN); err != nil {
		return types.ChannelEnd{}, err
	}
	if channel.Counterparty.PortId != packet.DestinationPort || channel.Counterparty.ChannelId != packet.DestinationChannel {
		return types.ChannelEnd{}, errorsmod.Wrap(types.ErrInvalidPacket, "packet destination does not match channel counterparty")
	}

	commitment, err := k.GetPacketCommitment(ctx, packet.SourcePort, packet.SourceChannel, packet.Sequence)
	if err != nil {
		return types.ChannelEnd{}, err
	}
	if commitment == nil {
		return types.ChannelEnd{}, errorsmod.Wrapf(types.ErrPacketCommitmentNotFound, "no commitment for sequence %d, already acknowledged or timed out", packet.Sequence)
	}
	if !bytes.Equal(commitment, types.CommitPacket(packet)) {
		return types.ChannelEnd{}, errorsmod.Wrap(types.ErrPacketCommitmentMismatch, "commitment does not match acknowledged packet")
	}

	if channel.Ordering == types.ORDERED {
		nextAck, err := k.GetNextSequenceAck(ctx, packet.SourcePort, packet.SourceChannel)
		if err != nil {
			return types.ChannelEnd{}, err
		}
		if packet.Sequence != nextAck {
			return types.ChannelEnd{}, errorsmod.Wrapf(types.ErrUnexpectedSequence, "expected next ack sequence %d, got %d", nextAck, packet.Sequence)
		}
	}

	conn, err := k.connectionFor(ctx, channel)
	if err != nil {
		return types.ChannelEnd{}, err
	}
	ackCommitment := types.CommitAcknowledgement(msg.Acknowledgement)
	if err := k.verifyPacketAcknowledgement(ctx, conn, msg.ProofHeight, msg.ProofAcked, packet.DestinationPort, packet.DestinationChannel, packet.Sequence, ackCommitment); err != nil {
		return types.ChannelEnd{}, err
	}
	return channel, nil
}

// ExecuteAcknowledgePacket deletes the packet commitment (closing the
// exactly-once window for this sequence), advances next-ack for ORDERED
// channels, and emits AcknowledgePacket. The ordering sequence itself was
// already checked in ValidateAcknowledgePacket, so this never fails.
func (k Keeper) ExecuteAcknowledgePacket(ctx context.Context, msg types.MsgAcknowledgement, channel types.ChannelEnd) error {
	packet := msg.Packet
	if err := k.DeletePacketCommitment(ctx, packet.SourcePort, packet.SourceChannel, packet.Sequence); err != nil {
		return err
	}

	if channel.Ordering == types.ORDERED {
		nextAck, err := k.GetNextSequenceAck(ctx, packet.SourcePort, packet.SourceChannel)
		if err != nil {
			return err
		}
		if err := k.SetNextSequenceAck(ctx, packet.SourcePort, packet.SourceChannel, nextAck+1); err != nil {
			return err
		}
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(types.NewAcknowledgePacketEvent(packet))
	return nil
}
