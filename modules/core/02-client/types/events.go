package types

import sdk "github.com/cosmos/cosmos-sdk/types"

// Event types and attribute keys for the client subsystem.
const (
	EventTypeCreateClient       = "create_client"
	EventTypeUpdateClient       = "update_client"
	EventTypeUpgradeClient      = "upgrade_client"
	EventTypeSubmitMisbehaviour = "client_misbehaviour"

	AttributeKeyClientID       = "client_id"
	AttributeKeyClientType     = "client_type"
	AttributeKeyConsensusHeight = "consensus_height"
)

// NewCreateClientEvent builds the event emitted on successful MsgCreateClient execution.
func NewCreateClientEvent(clientID, clientType string, height string) sdk.Event {
	return sdk.NewEvent(
		EventTypeCreateClient,
		sdk.NewAttribute(AttributeKeyClientID, clientID),
		sdk.NewAttribute(AttributeKeyClientType, clientType),
		sdk.NewAttribute(AttributeKeyConsensusHeight, height),
	)
}

// NewUpdateClientEvent builds the event emitted on successful MsgUpdateClient execution.
func NewUpdateClientEvent(clientID, clientType string, height string) sdk.Event {
	return sdk.NewEvent(
		EventTypeUpdateClient,
		sdk.NewAttribute(AttributeKeyClientID, clientID),
		sdk.NewAttribute(AttributeKeyClientType, clientType),
		sdk.NewAttribute(AttributeKeyConsensusHeight, height),
	)
}

// NewUpgradeClientEvent builds the event emitted on successful MsgUpgradeClient execution.
func NewUpgradeClientEvent(clientID, clientType string, height string) sdk.Event {
	return sdk.NewEvent(
		EventTypeUpgradeClient,
		sdk.NewAttribute(AttributeKeyClientID, clientID),
		sdk.NewAttribute(AttributeKeyClientType, clientType),
		sdk.NewAttribute(AttributeKeyConsensusHeight, height),
	)
}

// NewSubmitMisbehaviourEvent builds the event emitted when a client is frozen
// due to detected misbehaviour.
func NewSubmitMisbehaviourEvent(clientID, clientType string) sdk.Event {
	return sdk.NewEvent(
		EventTypeSubmitMisbehaviour,
		sdk.NewAttribute(AttributeKeyClientID, clientID),
		sdk.NewAttribute(AttributeKeyClientType, clientType),
	)
}
