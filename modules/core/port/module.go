// Package port implements the application callback interface and the
// PortId -> IBCModule router the dispatcher consults before mutating
// channel/packet state.
package port

import (
	"context"

	channeltypes "github.com/tokenize-x/ibc-core/modules/core/04-channel/types"
)

// IBCModule is the set of callbacks an application module registers for a
// port. The dispatcher invokes these before state mutation; a module may
// veto a handshake step (return a non-nil error) or override the proposed
// channel version.
type IBCModule interface {
	OnChanOpenInit(ctx context.Context, order channeltypes.Order, connectionHops []string, portID, channelID string, counterparty channeltypes.Counterparty, version string) (string, error)
	OnChanOpenTry(ctx context.Context, order channeltypes.Order, connectionHops []string, portID, channelID string, counterparty channeltypes.Counterparty, counterpartyVersion string) (string, error)
	OnChanOpenAck(ctx context.Context, portID, channelID, counterpartyVersion string) error
	OnChanOpenConfirm(ctx context.Context, portID, channelID string) error
	OnChanCloseInit(ctx context.Context, portID, channelID string) error
	OnChanCloseConfirm(ctx context.Context, portID, channelID string) error

	OnRecvPacket(ctx context.Context, packet channeltypes.Packet, relayer string) channeltypes.Acknowledgement
	OnAcknowledgementPacket(ctx context.Context, packet channeltypes.Packet, acknowledgement []byte, relayer string) error
	OnTimeoutPacket(ctx context.Context, packet channeltypes.Packet, relayer string) error
}
