package types

import sdk "github.com/cosmos/cosmos-sdk/types"

const (
	EventTypeConnectionOpenInit    = "connection_open_init"
	EventTypeConnectionOpenTry     = "connection_open_try"
	EventTypeConnectionOpenAck     = "connection_open_ack"
	EventTypeConnectionOpenConfirm = "connection_open_confirm"

	AttributeKeyConnectionID             = "connection_id"
	AttributeKeyClientID                 = "client_id"
	AttributeKeyCounterpartyClientID     = "counterparty_client_id"
	AttributeKeyCounterpartyConnectionID = "counterparty_connection_id"
)

func newConnectionEvent(eventType, connectionID, clientID, counterpartyClientID, counterpartyConnectionID string) sdk.Event {
	return sdk.NewEvent(
		eventType,
		sdk.NewAttribute(AttributeKeyConnectionID, connectionID),
		sdk.NewAttribute(AttributeKeyClientID, clientID),
		sdk.NewAttribute(AttributeKeyCounterpartyClientID, counterpartyClientID),
		sdk.NewAttribute(AttributeKeyCounterpartyConnectionID, counterpartyConnectionID),
	)
}

func NewConnectionOpenInitEvent(connectionID, clientID, counterpartyClientID string) sdk.Event {
	return newConnectionEvent(EventTypeConnectionOpenInit, connectionID, clientID, counterpartyClientID, "")
}

func NewConnectionOpenTryEvent(connectionID, clientID, counterpartyClientID, counterpartyConnectionID string) sdk.Event {
	return newConnectionEvent(EventTypeConnectionOpenTry, connectionID, clientID, counterpartyClientID, counterpartyConnectionID)
}

func NewConnectionOpenAckEvent(connectionID, clientID, counterpartyClientID, counterpartyConnectionID string) sdk.Event {
	return newConnectionEvent(EventTypeConnectionOpenAck, connectionID, clientID, counterpartyClientID, counterpartyConnectionID)
}

func NewConnectionOpenConfirmEvent(connectionID, clientID, counterpartyClientID, counterpartyConnectionID string) sdk.Event {
	return newConnectionEvent(EventTypeConnectionOpenConfirm, connectionID, clientID, counterpartyClientID, counterpartyConnectionID)
}
