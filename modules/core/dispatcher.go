package core

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	clientkeeper "github.com/tokenize-x/ibc-core/modules/core/02-client/keeper"
	clienttypes "github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	connectiontypes "github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
	channeltypes "github.com/tokenize-x/ibc-core/modules/core/04-channel/types"
)

// Dispatch routes msg to its subsystem's validate-then-execute handler pair
//. It is the one function a host chain's message server needs to
// call for every inbound IBC message type.
func (k Keeper) Dispatch(ctx context.Context, msg any) (handlerResult, error) {
	switch m := msg.(type) {
	case clienttypes.MsgCreateClient:
		return k.HandleMsgCreateClient(ctx, m)
	case clienttypes.MsgUpdateClient:
		return k.HandleMsgUpdateClient(ctx, m)
	case clienttypes.MsgUpgradeClient:
		return k.HandleMsgUpgradeClient(ctx, m)
	case clienttypes.MsgSubmitMisbehaviour:
		return k.HandleMsgSubmitMisbehaviour(ctx, m)

	case connectiontypes.MsgConnectionOpenInit:
		return k.HandleMsgConnectionOpenInit(ctx, m)
	case connectiontypes.MsgConnectionOpenTry:
		return k.HandleMsgConnectionOpenTry(ctx, m)
	case connectiontypes.MsgConnectionOpenAck:
		return k.HandleMsgConnectionOpenAck(ctx, m)
	case connectiontypes.MsgConnectionOpenConfirm:
		return k.HandleMsgConnectionOpenConfirm(ctx, m)

	case channeltypes.MsgChannelOpenInit:
		return k.HandleMsgChannelOpenInit(ctx, m)
	case channeltypes.MsgChannelOpenTry:
		return k.HandleMsgChannelOpenTry(ctx, m)
	case channeltypes.MsgChannelOpenAck:
		return k.HandleMsgChannelOpenAck(ctx, m)
	case channeltypes.MsgChannelOpenConfirm:
		return k.HandleMsgChannelOpenConfirm(ctx, m)
	case channeltypes.MsgChannelCloseInit:
		return k.HandleMsgChannelCloseInit(ctx, m)
	case channeltypes.MsgChannelCloseConfirm:
		return k.HandleMsgChannelCloseConfirm(ctx, m)

	case channeltypes.MsgRecvPacket:
		return k.HandleMsgRecvPacket(ctx, m)
	case channeltypes.MsgAcknowledgement:
		return k.HandleMsgAcknowledgement(ctx, m)
	case channeltypes.MsgTimeout:
		return k.HandleMsgTimeout(ctx, m)
	case channeltypes.MsgTimeoutOnClose:
		return k.HandleMsgTimeoutOnClose(ctx, m)

	default:
		return handlerResult{}, errorsmod.Wrapf(errUnrecognizedMsg, "%T", msg)
	}
}

// --- client subsystem ---

func (k Keeper) HandleMsgCreateClient(ctx context.Context, msg clienttypes.MsgCreateClient) (handlerResult, error) {
	if err := clientkeeper.ValidateCreateClient(msg); err != nil {
		return handlerResult{}, err
	}
	if err := k.ClientKeeper.ValidateSelfClient(ctx, msg.ClientState); err != nil {
		return handlerResult{}, err
	}
	clientID, err := k.ClientKeeper.ExecuteCreateClient(ctx, msg)
	if err != nil {
		return handlerResult{}, err
	}
	return handlerResult{ID: clientID}, nil
}

func (k Keeper) HandleMsgUpdateClient(ctx context.Context, msg clienttypes.MsgUpdateClient) (handlerResult, error) {
	cs, err := k.ClientKeeper.ValidateUpdateClient(ctx, msg)
	if err != nil {
		return handlerResult{}, err
	}
	if err := k.ClientKeeper.ExecuteUpdateClient(ctx, msg, cs); err != nil {
		return handlerResult{}, err
	}
	return handlerResult{ID: msg.ClientID}, nil
}

func (k Keeper) HandleMsgUpgradeClient(ctx context.Context, msg clienttypes.MsgUpgradeClient) (handlerResult, error) {
	cs, err := k.ClientKeeper.ValidateUpgradeClient(ctx, msg)
	if err != nil {
		return handlerResult{}, err
	}
	if err := k.ClientKeeper.ExecuteUpgradeClient(ctx, msg, cs); err != nil {
		return handlerResult{}, err
	}
	return handlerResult{ID: msg.ClientID}, nil
}

func (k Keeper) HandleMsgSubmitMisbehaviour(ctx context.Context, msg clienttypes.MsgSubmitMisbehaviour) (handlerResult, error) {
	cs, err := k.ClientKeeper.ValidateSubmitMisbehaviour(ctx, msg)
	if err != nil {
		return handlerResult{}, err
	}
	if err := k.ClientKeeper.ExecuteSubmitMisbehaviour(ctx, msg, cs); err != nil {
		return handlerResult{}, err
	}
	return handlerResult{ID: msg.ClientID}, nil
}

// --- connection subsystem ---

func (k Keeper) HandleMsgConnectionOpenInit(ctx context.Context, msg connectiontypes.MsgConnectionOpenInit) (handlerResult, error) {
	if err := k.ConnectionKeeper.ValidateConnOpenInit(ctx, msg); err != nil {
		return handlerResult{}, err
	}
	connID, err := k.ConnectionKeeper.ExecuteConnOpenInit(ctx, msg)
	if err != nil {
		return handlerResult{}, err
	}
	return handlerResult{ID: connID}, nil
}

func (k Keeper) HandleMsgConnectionOpenTry(ctx context.Context, msg connectiontypes.MsgConnectionOpenTry) (handlerResult, error) {
	version, err := k.ConnectionKeeper.ValidateConnOpenTry(ctx, msg)
	if err != nil {
		return handlerResult{}, err
	}
	connID, err := k.ConnectionKeeper.ExecuteConnOpenTry(ctx, msg, version)
	if err != nil {
		return handlerResult{}, err
	}
	return handlerResult{ID: connID}, nil
}

func (k Keeper) HandleMsgConnectionOpenAck(ctx context.Context, msg connectiontypes.MsgConnectionOpenAck) (handlerResult, error) {
	conn, err := k.ConnectionKeeper.ValidateConnOpenAck(ctx, msg)
	if err != nil {
		return handlerResult{}, err
	}
	if err := k.ConnectionKeeper.ExecuteConnOpenAck(ctx, msg, conn); err != nil {
		return handlerResult{}, err
	}
	return handlerResult{ID: msg.ConnectionId}, nil
}

func (k Keeper) HandleMsgConnectionOpenConfirm(ctx context.Context, msg connectiontypes.MsgConnectionOpenConfirm) (handlerResult, error) {
	conn, err := k.ConnectionKeeper.ValidateConnOpenConfirm(ctx, msg)
	if err != nil {
		return handlerResult{}, err
	}
	if err := k.ConnectionKeeper.ExecuteConnOpenConfirm(ctx, msg, conn); err != nil {
		return handlerResult{}, err
	}
	return handlerResult{ID: msg.ConnectionId}, nil
}

// --- channel subsystem ---

// HandleMsgChannelOpenInit validates the handshake step, then invokes the
// bound application's OnChanOpenInit so it can veto the handshake or
// override the proposed version before the channel is actually created.
func (k Keeper) HandleMsgChannelOpenInit(ctx context.Context, msg channeltypes.MsgChannelOpenInit) (handlerResult, error) {
	if err := k.ChannelKeeper.ValidateChanOpenInit(ctx, msg); err != nil {
		return handlerResult{}, err
	}
	module, err := k.routeModule(msg.PortId)
	if err != nil {
		return handlerResult{}, err
	}
	version, err := module.OnChanOpenInit(ctx, msg.Channel.Ordering, msg.Channel.ConnectionHops, msg.PortId, "", msg.Channel.Counterparty, msg.Channel.Version)
	if err != nil {
		return handlerResult{}, err
	}
	channelID, err := k.ChannelKeeper.ExecuteChanOpenInit(ctx, msg, version)
	if err != nil {
		return handlerResult{}, err
	}
	return handlerResult{ID: channelID}, nil
}

func (k Keeper) HandleMsgChannelOpenTry(ctx context.Context, msg channeltypes.MsgChannelOpenTry) (handlerResult, error) {
	if err := k.ChannelKeeper.ValidateChanOpenTry(ctx, msg); err != nil {
		return handlerResult{}, err
	}
	module, err := k.routeModule(msg.PortId)
	if err != nil {
		return handlerResult{}, err
	}
	version, err := module.OnChanOpenTry(ctx, msg.Channel.Ordering, msg.Channel.ConnectionHops, msg.PortId, "", msg.Channel.Counterparty, msg.CounterpartyVersion)
	if err != nil {
		return handlerResult{}, err
	}
	channelID, err := k.ChannelKeeper.ExecuteChanOpenTry(ctx, msg, version)
	if err != nil {
		return handlerResult{}, err
	}
	return handlerResult{ID: channelID}, nil
}

func (k Keeper) HandleMsgChannelOpenAck(ctx context.Context, msg channeltypes.MsgChannelOpenAck) (handlerResult, error) {
	channel, err := k.ChannelKeeper.ValidateChanOpenAck(ctx, msg)
	if err != nil {
		return handlerResult{}, err
	}
	module, err := k.routeModule(msg.PortId)
	if err != nil {
		return handlerResult{}, err
	}
	if err := module.OnChanOpenAck(ctx, msg.PortId, msg.ChannelId, msg.CounterpartyVersion); err != nil {
		return handlerResult{}, err
	}
	if err := k.ChannelKeeper.ExecuteChanOpenAck(ctx, msg, channel); err != nil {
		return handlerResult{}, err
	}
	return handlerResult{ID: msg.ChannelId}, nil
}

func (k Keeper) HandleMsgChannelOpenConfirm(ctx context.Context, msg channeltypes.MsgChannelOpenConfirm) (handlerResult, error) {
	channel, err := k.ChannelKeeper.ValidateChanOpenConfirm(ctx, msg)
	if err != nil {
		return handlerResult{}, err
	}
	module, err := k.routeModule(msg.PortId)
	if err != nil {
		return handlerResult{}, err
	}
	if err := module.OnChanOpenConfirm(ctx, msg.PortId, msg.ChannelId); err != nil {
		return handlerResult{}, err
	}
	if err := k.ChannelKeeper.ExecuteChanOpenConfirm(ctx, msg, channel); err != nil {
		return handlerResult{}, err
	}
	return handlerResult{ID: msg.ChannelId}, nil
}

func (k Keeper) HandleMsgChannelCloseInit(ctx context.Context, msg channeltypes.MsgChannelCloseInit) (handlerResult, error) {
	channel, err := k.ChannelKeeper.ValidateChanCloseInit(ctx, msg)
	if err != nil {
		return handlerResult{}, err
	}
	module, err := k.routeModule(msg.PortId)
	if err != nil {
		return handlerResult{}, err
	}
	if err := module.OnChanCloseInit(ctx, msg.PortId, msg.ChannelId); err != nil {
		return handlerResult{}, err
	}
	if err := k.ChannelKeeper.ExecuteChanCloseInit(ctx, msg, channel); err != nil {
		return handlerResult{}, err
	}
	return handlerResult{ID: msg.ChannelId}, nil
}

func (k Keeper) HandleMsgChannelCloseConfirm(ctx context.Context, msg channeltypes.MsgChannelCloseConfirm) (handlerResult, error) {
	channel, err := k.ChannelKeeper.ValidateChanCloseConfirm(ctx, msg)
	if err != nil {
		return handlerResult{}, err
	}
	module, err := k.routeModule(msg.PortId)
	if err != nil {
		return handlerResult{}, err
	}
	if err := module.OnChanCloseConfirm(ctx, msg.PortId, msg.ChannelId); err != nil {
		return handlerResult{}, err
	}
	if err := k.ChannelKeeper.ExecuteChanCloseConfirm(ctx, msg, channel); err != nil {
		return handlerResult{}, err
	}
	return handlerResult{ID: msg.ChannelId}, nil
}

// --- packet subsystem ---

// SendPacket is the entry point an application module calls directly
// (it is never relayed in, so it has no Msg wrapper or port-router step):
// validate then execute, same shape as every other handler pair.
func (k Keeper) SendPacket(ctx context.Context, packet channeltypes.Packet) error {
	if err := k.ChannelKeeper.ValidateSendPacket(ctx, packet); err != nil {
		return err
	}
	return k.ChannelKeeper.ExecuteSendPacket(ctx, packet)
}

func (k Keeper) HandleMsgRecvPacket(ctx context.Context, msg channeltypes.MsgRecvPacket) (handlerResult, error) {
	if err := k.ChannelKeeper.ValidateRecvPacket(ctx, msg); err != nil {
		return handlerResult{}, err
	}
	channel, err := k.ChannelKeeper.GetChannel(ctx, msg.Packet.DestinationPort, msg.Packet.DestinationChannel)
	if err != nil {
		return handlerResult{}, err
	}
	module, err := k.routeModule(msg.Packet.DestinationPort)
	if err != nil {
		return handlerResult{}, err
	}
	ack := module.OnRecvPacket(ctx, msg.Packet, msg.Signer)
	if err := k.ChannelKeeper.ExecuteRecvPacket(ctx, msg.Packet, channel, ack); err != nil {
		return handlerResult{}, err
	}
	ackBz, err := ack.Marshal()
	if err != nil {
		return handlerResult{}, err
	}
	return handlerResult{Ack: ackBz}, nil
}

func (k Keeper) HandleMsgAcknowledgement(ctx context.Context, msg channeltypes.MsgAcknowledgement) (handlerResult, error) {
	channel, err := k.ChannelKeeper.ValidateAcknowledgePacket(ctx, msg)
	if err != nil {
		return handlerResult{}, err
	}
	module, err := k.routeModule(msg.Packet.SourcePort)
	if err != nil {
		return handlerResult{}, err
	}
	if err := module.OnAcknowledgementPacket(ctx, msg.Packet, msg.Acknowledgement, msg.Signer); err != nil {
		return handlerResult{}, err
	}
	if err := k.ChannelKeeper.ExecuteAcknowledgePacket(ctx, msg, channel); err != nil {
		return handlerResult{}, err
	}
	return handlerResult{}, nil
}

func (k Keeper) HandleMsgTimeout(ctx context.Context, msg channeltypes.MsgTimeout) (handlerResult, error) {
	channel, err := k.ChannelKeeper.ValidateTimeoutPacket(ctx, msg)
	if err != nil {
		return handlerResult{}, err
	}
	module, err := k.routeModule(msg.Packet.SourcePort)
	if err != nil {
		return handlerResult{}, err
	}
	if err := module.OnTimeoutPacket(ctx, msg.Packet, msg.Signer); err != nil {
		return handlerResult{}, err
	}
	if err := k.ChannelKeeper.ExecuteTimeoutPacket(ctx, msg.Packet, channel); err != nil {
		return handlerResult{}, err
	}
	return handlerResult{}, nil
}

func (k Keeper) HandleMsgTimeoutOnClose(ctx context.Context, msg channeltypes.MsgTimeoutOnClose) (handlerResult, error) {
	channel, err := k.ChannelKeeper.ValidateTimeoutOnClose(ctx, msg)
	if err != nil {
		return handlerResult{}, err
	}
	module, err := k.routeModule(msg.Packet.SourcePort)
	if err != nil {
		return handlerResult{}, err
	}
	if err := module.OnTimeoutPacket(ctx, msg.Packet, msg.Signer); err != nil {
		return handlerResult{}, err
	}
	if err := k.ChannelKeeper.ExecuteTimeoutOnClose(ctx, msg.Packet, channel); err != nil {
		return handlerResult{}, err
	}
	return handlerResult{}, nil
}
