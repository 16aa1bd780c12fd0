package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-core/modules/core/04-channel/types"
)

// ValidateChanCloseInit checks our channel is Open; a channel already Closed
// has nothing left to close.
func (k Keeper) ValidateChanCloseInit(ctx context.Context, msg types.MsgChannelCloseInit) (types.ChannelEnd, error) {
	if err := msg.ValidateBasic(); err != nil {
		return types.ChannelEnd{}, err
	}
	channel, err := k.GetChannel(ctx, msg.PortId, msg.ChannelId)
	if err != nil {
		return types.ChannelEnd{}, err
	}
	if err := expectState(channel, types.OPEN); err != nil {
		return types.ChannelEnd{}, err
	}
	if _, err := k.connectionFor(ctx, channel); err != nil {
		return types.ChannelEnd{}, err
	}
	return channel, nil
}

// ExecuteChanCloseInit transitions the channel Open -> Closed locally, no
// proof required.
func (k Keeper) ExecuteChanCloseInit(ctx context.Context, msg types.MsgChannelCloseInit, channel types.ChannelEnd) error {
	channel.State = types.CLOSED
	if err := k.SetChannel(ctx, msg.PortId, msg.ChannelId, channel); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		types.NewChannelCloseInitEvent(msg.PortId, msg.ChannelId, channel.Counterparty.PortId, channel.Counterparty.ChannelId, channel.ConnectionHops[0]),
	)
	return nil
}

// ValidateChanCloseConfirm checks our channel is Open and proves the
// counterparty has already transitioned to Closed.
func (k Keeper) ValidateChanCloseConfirm(ctx context.Context, msg types.MsgChannelCloseConfirm) (types.ChannelEnd, error) {
	if err := msg.ValidateBasic(); err != nil {
		return types.ChannelEnd{}, err
	}
	channel, err := k.GetChannel(ctx, msg.PortId, msg.ChannelId)
	if err != nil {
		return types.ChannelEnd{}, err
	}
	if err := expectState(channel, types.OPEN); err != nil {
		return types.ChannelEnd{}, err
	}
	conn, err := k.connectionFor(ctx, channel)
	if err != nil {
		return types.ChannelEnd{}, err
	}

	expected := types.ChannelEnd{
		State:    types.CLOSED,
		Ordering: channel.Ordering,
		Counterparty: types.Counterparty{
			PortId:    msg.PortId,
			ChannelId: msg.ChannelId,
		},
		ConnectionHops: []string{conn.Counterparty.ConnectionId},
		Version:        channel.Version,
	}
	if err := k.verifyChannelState(ctx, conn, msg.ProofHeight, msg.ProofInit, channel.Counterparty.PortId, channel.Counterparty.ChannelId, expected); err != nil {
		return types.ChannelEnd{}, err
	}
	return channel, nil
}

// ExecuteChanCloseConfirm transitions the channel Open -> Closed locally.
func (k Keeper) ExecuteChanCloseConfirm(ctx context.Context, msg types.MsgChannelCloseConfirm, channel types.ChannelEnd) error {
	channel.State = types.CLOSED
	if err := k.SetChannel(ctx, msg.PortId, msg.ChannelId, channel); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		types.NewChannelCloseConfirmEvent(msg.PortId, msg.ChannelId, channel.Counterparty.PortId, channel.Counterparty.ChannelId, channel.ConnectionHops[0]),
	)
	return nil
}
