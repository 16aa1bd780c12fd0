package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	"github.com/tokenize-x/ibc-core/modules/core/04-channel/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// ValidateSendPacket checks the channel is Open, the packet's ports/channels
// match the channel end, the packet's assigned sequence equals the next
// expected send sequence, the underlying connection is Open, the client is
// Active, and the packet's timeout has not already elapsed relative to the
// counterparty's latest known height/timestamp.
func (k Keeper) ValidateSendPacket(ctx context.Context, packet types.Packet) error {
	if err := packet.ValidateBasic(); err != nil {
		return err
	}
	channel, err := k.GetChannel(ctx, packet.SourcePort, packet.SourceChannel)
	if err != nil {
		return err
	}
	if err := expectState(channel, types.OPEN); err != nil {
		return err
	}
	if channel.Counterparty.PortId != packet.DestinationPort || channel.Counterparty.ChannelId != packet.DestinationChannel {
		return errorsmod.Wrap(types.ErrInvalidPacket, "packet destination does not match channel counterparty")
	}

	nextSeq, err := k.GetNextSequenceSend(ctx, packet.SourcePort, packet.SourceChannel)
	if err != nil {
		return err
	}
	if packet.Sequence != nextSeq {
		return errorsmod.Wrapf(types.ErrUnexpectedSequence, "expected sequence %d, got %d", nextSeq, packet.Sequence)
	}

	conn, err := k.connectionFor(ctx, channel)
	if err != nil {
		return err
	}
	clientState, err := k.clientKeeper.GetClientState(ctx, conn.ClientId)
	if err != nil {
		return err
	}
	clientStore := k.clientKeeper.ClientStore(ctx, conn.ClientId)
	if status := clientState.Status(ctx, clientStore, k.cdc); status != exported.Active {
		return errorsmod.Wrapf(clienttypes.ErrClientNotActive, "client %s status is %s", conn.ClientId, status)
	}

	latestHeight := clientState.GetLatestHeight()
	if packet.TimeoutHeight != nil && !packet.TimeoutHeight.IsZero() && latestHeight.GTE(packet.TimeoutHeight) {
		return errorsmod.Wrap(types.ErrPacketTimeout, "packet timeout height has already elapsed relative to the counterparty's latest known height")
	}
	if packet.TimeoutTimestamp != 0 {
		consState, err := k.clientKeeper.GetConsensusState(ctx, conn.ClientId, latestHeight)
		if err != nil {
			return err
		}
		if consState.GetTimestamp() >= packet.TimeoutTimestamp {
			return errorsmod.Wrap(types.ErrPacketTimeout, "packet timeout timestamp has already elapsed relative to the counterparty's latest known timestamp")
		}
	}
	return nil
}

// ExecuteSendPacket stores the packet commitment, advances the channel's
// next-send sequence, and emits SendPacket.
func (k Keeper) ExecuteSendPacket(ctx context.Context, packet types.Packet) error {
	if err := k.SetPacketCommitment(ctx, packet.SourcePort, packet.SourceChannel, packet.Sequence, types.CommitPacket(packet)); err != nil {
		return err
	}
	if err := k.SetNextSequenceSend(ctx, packet.SourcePort, packet.SourceChannel, packet.Sequence+1); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(types.NewSendPacketEvent(packet))
	return nil
}
