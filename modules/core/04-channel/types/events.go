package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeChannelOpenInit    = "channel_open_init"
	EventTypeChannelOpenTry     = "channel_open_try"
	EventTypeChannelOpenAck     = "channel_open_ack"
	EventTypeChannelOpenConfirm = "channel_open_confirm"
	EventTypeChannelCloseInit   = "channel_close_init"
	EventTypeChannelCloseConfirm = "channel_close_confirm"

	EventTypeSendPacket            = "send_packet"
	EventTypeReceivePacket         = "receive_packet"
	EventTypeWriteAck              = "write_acknowledgement"
	EventTypeAcknowledgePacket     = "acknowledge_packet"
	EventTypeTimeoutPacket         = "timeout_packet"

	AttributeKeyPortID              = "port_id"
	AttributeKeyChannelID            = "channel_id"
	AttributeKeyCounterpartyPortID    = "counterparty_port_id"
	AttributeKeyCounterpartyChannelID = "counterparty_channel_id"
	AttributeKeyConnectionID          = "connection_id"

	AttributeKeySequence          = "packet_sequence"
	AttributeKeySrcPort           = "packet_src_port"
	AttributeKeySrcChannel        = "packet_src_channel"
	AttributeKeyDstPort           = "packet_dst_port"
	AttributeKeyDstChannel        = "packet_dst_channel"
	AttributeKeyTimeoutHeight      = "packet_timeout_height"
	AttributeKeyTimeoutTimestamp   = "packet_timeout_timestamp"
	AttributeKeyData               = "packet_data"
	AttributeKeyAck                 = "packet_ack"
)

func newChannelEvent(eventType, portID, channelID, counterpartyPortID, counterpartyChannelID, connectionID string) sdk.Event {
	return sdk.NewEvent(
		eventType,
		sdk.NewAttribute(AttributeKeyPortID, portID),
		sdk.NewAttribute(AttributeKeyChannelID, channelID),
		sdk.NewAttribute(AttributeKeyCounterpartyPortID, counterpartyPortID),
		sdk.NewAttribute(AttributeKeyCounterpartyChannelID, counterpartyChannelID),
		sdk.NewAttribute(AttributeKeyConnectionID, connectionID),
	)
}

func NewChannelOpenInitEvent(portID, channelID, counterpartyPortID, connectionID string) sdk.Event {
	return newChannelEvent(EventTypeChannelOpenInit, portID, channelID, counterpartyPortID, "", connectionID)
}

func NewChannelOpenTryEvent(portID, channelID, counterpartyPortID, counterpartyChannelID, connectionID string) sdk.Event {
	return newChannelEvent(EventTypeChannelOpenTry, portID, channelID, counterpartyPortID, counterpartyChannelID, connectionID)
}

func NewChannelOpenAckEvent(portID, channelID, counterpartyPortID, counterpartyChannelID, connectionID string) sdk.Event {
	return newChannelEvent(EventTypeChannelOpenAck, portID, channelID, counterpartyPortID, counterpartyChannelID, connectionID)
}

func NewChannelOpenConfirmEvent(portID, channelID, counterpartyPortID, counterpartyChannelID, connectionID string) sdk.Event {
	return newChannelEvent(EventTypeChannelOpenConfirm, portID, channelID, counterpartyPortID, counterpartyChannelID, connectionID)
}

func NewChannelCloseInitEvent(portID, channelID, counterpartyPortID, counterpartyChannelID, connectionID string) sdk.Event {
	return newChannelEvent(EventTypeChannelCloseInit, portID, channelID, counterpartyPortID, counterpartyChannelID, connectionID)
}

func NewChannelCloseConfirmEvent(portID, channelID, counterpartyPortID, counterpartyChannelID, connectionID string) sdk.Event {
	return newChannelEvent(EventTypeChannelCloseConfirm, portID, channelID, counterpartyPortID, counterpartyChannelID, connectionID)
}

// newPacketEvent carries the packet's identifying fields and timeouts, as
// spec §6's event taxonomy requires for packet lifecycle steps.
func newPacketEvent(eventType string, packet Packet, extra ...sdk.Attribute) sdk.Event {
	attrs := []sdk.Attribute{
		sdk.NewAttribute(AttributeKeySequence, fmt.Sprintf("%d", packet.Sequence)),
		sdk.NewAttribute(AttributeKeySrcPort, packet.SourcePort),
		sdk.NewAttribute(AttributeKeySrcChannel, packet.SourceChannel),
		sdk.NewAttribute(AttributeKeyDstPort, packet.DestinationPort),
		sdk.NewAttribute(AttributeKeyDstChannel, packet.DestinationChannel),
		sdk.NewAttribute(AttributeKeyTimeoutHeight, packet.TimeoutHeight.String()),
		sdk.NewAttribute(AttributeKeyTimeoutTimestamp, fmt.Sprintf("%d", packet.TimeoutTimestamp)),
		sdk.NewAttribute(AttributeKeyData, string(packet.Data)),
	}
	attrs = append(attrs, extra...)
	return sdk.NewEvent(eventType, attrs...)
}

func NewSendPacketEvent(packet Packet) sdk.Event {
	return newPacketEvent(EventTypeSendPacket, packet)
}

func NewReceivePacketEvent(packet Packet) sdk.Event {
	return newPacketEvent(EventTypeReceivePacket, packet)
}

func NewWriteAcknowledgementEvent(packet Packet, ack []byte) sdk.Event {
	return newPacketEvent(EventTypeWriteAck, packet, sdk.NewAttribute(AttributeKeyAck, string(ack)))
}

func NewAcknowledgePacketEvent(packet Packet) sdk.Event {
	return newPacketEvent(EventTypeAcknowledgePacket, packet)
}

func NewTimeoutPacketEvent(packet Packet) sdk.Event {
	return newPacketEvent(EventTypeTimeoutPacket, packet)
}
