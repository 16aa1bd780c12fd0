package types

import (
	"context"

	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// ClientKeeper is the narrow slice of the client subsystem the connection
// subsystem depends on: enough to load a client's state/consensus history
// and hand a light client its own store view for proof verification.
// Mirrors the teacher's expected-keeper convention (x/pse/types/expected_keepers.go).
type ClientKeeper interface {
	GetClientState(ctx context.Context, clientID string) (exported.ClientState, error)
	GetConsensusState(ctx context.Context, clientID string, height exported.Height) (exported.ConsensusState, error)
	ClientStore(ctx context.Context, clientID string) exported.ClientStore
}
