package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	connectiontypes "github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
	"github.com/tokenize-x/ibc-core/modules/core/04-channel/types"
)

// ValidateChanOpenInit checks the message is well formed and that the named
// connection exists and is Open.
func (k Keeper) ValidateChanOpenInit(ctx context.Context, msg types.MsgChannelOpenInit) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	conn, err := k.connectionKeeper.GetConnection(ctx, msg.Channel.ConnectionHops[0])
	if err != nil {
		return err
	}
	if conn.State != connectiontypes.OPEN {
		return errorsmod.Wrapf(connectiontypes.ErrInvalidConnectionState, "connection %s is not Open", msg.Channel.ConnectionHops[0])
	}
	return nil
}

// ExecuteChanOpenInit allocates "channel-{seq}", stores the new ChannelEnd
// in Init, and emits ChannelOpenInit. The application callback
// may override the proposed version.
func (k Keeper) ExecuteChanOpenInit(ctx context.Context, msg types.MsgChannelOpenInit, version string) (string, error) {
	seq, err := k.nextChannelSequence(ctx)
	if err != nil {
		return "", err
	}
	channelID := host.FormatChannelIdentifier(seq)

	channel := msg.Channel
	channel.State = types.INIT
	channel.Version = version
	if err := k.SetChannel(ctx, msg.PortId, channelID, channel); err != nil {
		return "", err
	}
	if err := k.SetNextSequenceSend(ctx, msg.PortId, channelID, 1); err != nil {
		return "", err
	}
	if err := k.SetNextSequenceRecv(ctx, msg.PortId, channelID, 1); err != nil {
		return "", err
	}
	if err := k.SetNextSequenceAck(ctx, msg.PortId, channelID, 1); err != nil {
		return "", err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		types.NewChannelOpenInitEvent(msg.PortId, channelID, channel.Counterparty.PortId, channel.ConnectionHops[0]),
	)
	return channelID, nil
}

// ValidateChanOpenTry proves the counterparty's channel end is in Init with
// matching counterparty and ordering.
func (k Keeper) ValidateChanOpenTry(ctx context.Context, msg types.MsgChannelOpenTry) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	conn, err := k.connectionFor(ctx, msg.Channel)
	if err != nil {
		return err
	}

	expected := types.ChannelEnd{
		State:    types.INIT,
		Ordering: msg.Channel.Ordering,
		Counterparty: types.Counterparty{
			PortId:    msg.PortId,
			ChannelId: "",
		},
		ConnectionHops: []string{conn.Counterparty.ConnectionId},
		Version:        msg.CounterpartyVersion,
	}
	return k.verifyChannelState(ctx, conn, msg.ProofHeight, msg.ProofInit, msg.Channel.Counterparty.PortId, msg.Channel.Counterparty.ChannelId, expected)
}

// ExecuteChanOpenTry allocates a fresh channel id and stores the new
// ChannelEnd in TryOpen.
func (k Keeper) ExecuteChanOpenTry(ctx context.Context, msg types.MsgChannelOpenTry, version string) (string, error) {
	seq, err := k.nextChannelSequence(ctx)
	if err != nil {
		return "", err
	}
	channelID := host.FormatChannelIdentifier(seq)

	channel := msg.Channel
	channel.State = types.TRYOPEN
	channel.Version = version
	if err := k.SetChannel(ctx, msg.PortId, channelID, channel); err != nil {
		return "", err
	}
	if err := k.SetNextSequenceSend(ctx, msg.PortId, channelID, 1); err != nil {
		return "", err
	}
	if err := k.SetNextSequenceRecv(ctx, msg.PortId, channelID, 1); err != nil {
		return "", err
	}
	if err := k.SetNextSequenceAck(ctx, msg.PortId, channelID, 1); err != nil {
		return "", err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		types.NewChannelOpenTryEvent(msg.PortId, channelID, channel.Counterparty.PortId, channel.Counterparty.ChannelId, channel.ConnectionHops[0]),
	)
	return channelID, nil
}

// ValidateChanOpenAck checks our channel is in Init and proves the
// counterparty's channel end is in TryOpen with matching counterparty and ordering.
func (k Keeper) ValidateChanOpenAck(ctx context.Context, msg types.MsgChannelOpenAck) (types.ChannelEnd, error) {
	if err := msg.ValidateBasic(); err != nil {
		return types.ChannelEnd{}, err
	}
	channel, err := k.GetChannel(ctx, msg.PortId, msg.ChannelId)
	if err != nil {
		return types.ChannelEnd{}, err
	}
	if err := expectState(channel, types.INIT); err != nil {
		return types.ChannelEnd{}, err
	}
	conn, err := k.connectionFor(ctx, channel)
	if err != nil {
		return types.ChannelEnd{}, err
	}

	expected := types.ChannelEnd{
		State:    types.TRYOPEN,
		Ordering: channel.Ordering,
		Counterparty: types.Counterparty{
			PortId:    msg.PortId,
			ChannelId: msg.ChannelId,
		},
		ConnectionHops: []string{conn.Counterparty.ConnectionId},
		Version:        msg.CounterpartyVersion,
	}
	if err := k.verifyChannelState(ctx, conn, msg.ProofHeight, msg.ProofTry, channel.Counterparty.PortId, msg.CounterpartyChannelId, expected); err != nil {
		return types.ChannelEnd{}, err
	}
	return channel, nil
}

// ExecuteChanOpenAck transitions the channel Init -> Open, pinning the
// counterparty's channel id and its chosen version. channel
// must be the value ValidateChanOpenAck returned.
func (k Keeper) ExecuteChanOpenAck(ctx context.Context, msg types.MsgChannelOpenAck, channel types.ChannelEnd) error {
	channel.State = types.OPEN
	channel.Version = msg.CounterpartyVersion
	channel.Counterparty.ChannelId = msg.CounterpartyChannelId
	if err := k.SetChannel(ctx, msg.PortId, msg.ChannelId, channel); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		types.NewChannelOpenAckEvent(msg.PortId, msg.ChannelId, channel.Counterparty.PortId, msg.CounterpartyChannelId, channel.ConnectionHops[0]),
	)
	return nil
}

// ValidateChanOpenConfirm checks our channel is in TryOpen and proves the
// counterparty has observed Open.
func (k Keeper) ValidateChanOpenConfirm(ctx context.Context, msg types.MsgChannelOpenConfirm) (types.ChannelEnd, error) {
	if err := msg.ValidateBasic(); err != nil {
		return types.ChannelEnd{}, err
	}
	channel, err := k.GetChannel(ctx, msg.PortId, msg.ChannelId)
	if err != nil {
		return types.ChannelEnd{}, err
	}
	if err := expectState(channel, types.TRYOPEN); err != nil {
		return types.ChannelEnd{}, err
	}
	conn, err := k.connectionFor(ctx, channel)
	if err != nil {
		return types.ChannelEnd{}, err
	}

	expected := types.ChannelEnd{
		State:    types.OPEN,
		Ordering: channel.Ordering,
		Counterparty: types.Counterparty{
			PortId:    msg.PortId,
			ChannelId: msg.ChannelId,
		},
		ConnectionHops: []string{conn.Counterparty.ConnectionId},
		Version:        channel.Version,
	}
	if err := k.verifyChannelState(ctx, conn, msg.ProofHeight, msg.ProofAck, channel.Counterparty.PortId, channel.Counterparty.ChannelId, expected); err != nil {
		return types.ChannelEnd{}, err
	}
	return channel, nil
}

// ExecuteChanOpenConfirm transitions the channel TryOpen -> Open.
func (k Keeper) ExecuteChanOpenConfirm(ctx context.Context, msg types.MsgChannelOpenConfirm, channel types.ChannelEnd) error {
	channel.State = types.OPEN
	if err := k.SetChannel(ctx, msg.PortId, msg.ChannelId, channel); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		types.NewChannelOpenConfirmEvent(msg.PortId, msg.ChannelId, channel.Counterparty.PortId, channel.Counterparty.ChannelId, channel.ConnectionHops[0]),
	)
	return nil
}
