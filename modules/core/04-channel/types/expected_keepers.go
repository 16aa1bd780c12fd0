package types

import (
	"context"

	connectiontypes "github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// ClientKeeper is the narrow slice of the client subsystem the channel and
// packet subsystems depend on (mirrors 03-connection/types/expected_keepers.go).
type ClientKeeper interface {
	GetClientState(ctx context.Context, clientID string) (exported.ClientState, error)
	GetConsensusState(ctx context.Context, clientID string, height exported.Height) (exported.ConsensusState, error)
	ClientStore(ctx context.Context, clientID string) exported.ClientStore
}

// ConnectionKeeper is the narrow slice of the connection subsystem a channel
// needs: the connection a channel's single connection hop names, and our
// own commitment prefix for building expected-counterparty values.
type ConnectionKeeper interface {
	GetConnection(ctx context.Context, connectionID string) (connectiontypes.ConnectionEnd, error)
	GetCommitmentPrefix() exported.Prefix
}
