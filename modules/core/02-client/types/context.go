package types

import (
	"context"

	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// ValidationContext is the read-only view of the client subsystem's store
// that validate steps (here and in the connection/channel subsystems) need:
// resolving a client's current state and its history of consensus states
// without being able to mutate either. Grounded on the Rust original's
// ClientValidationContext/ClientExecutionContext split (ics02_client/context.rs),
// which exists so a handler's read-only half can be typechecked separately
// from its mutating half.
type ValidationContext interface {
	// ClientStore returns the narrow key-value view scoped to clientID, the
	// same view a light client's own VerifyClientMessage/VerifyMembership see.
	ClientStore(ctx context.Context, clientID string) exported.ClientStore
	// GetClientState returns the stored client state for clientID.
	GetClientState(ctx context.Context, clientID string) (exported.ClientState, error)
	// GetConsensusState returns the consensus state clientID stored at height.
	GetConsensusState(ctx context.Context, clientID string, height exported.Height) (exported.ConsensusState, error)
	// ValidateSelfClient checks a client state that purports to track this
	// host chain for self-consistency before CreateClient stores it.
	ValidateSelfClient(ctx context.Context, clientState exported.ClientState) error
}

// ExecutionContext extends ValidationContext with the mutations Create/Update/
// Upgrade/SubmitMisbehaviour apply once validation has passed.
type ExecutionContext interface {
	ValidationContext

	// SetClientState stores cs under clientID's client state path.
	SetClientState(ctx context.Context, clientID string, cs exported.ClientState) error
	// SetConsensusState stores cs for clientID at height.
	SetConsensusState(ctx context.Context, clientID string, height exported.Height, clientType string, cs exported.ConsensusState) error
}
