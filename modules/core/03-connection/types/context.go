package types

import (
	"context"

	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// ValidationContext is the read-only view the connection handshake's
// validate steps need: resolving existing connections and the client
// subsystem's state, without being able to mutate either. Mirrors the
// client subsystem's ValidationContext/ExecutionContext split
// (02-client/types/context.go).
type ValidationContext interface {
	ClientKeeper

	// GetConnection returns the stored connection end for connectionID.
	GetConnection(ctx context.Context, connectionID string) (ConnectionEnd, error)
	// GetCommitmentPrefix returns this chain's own commitment prefix, the
	// value every counterparty verifies proofs against.
	GetCommitmentPrefix() exported.Prefix
}

// ExecutionContext extends ValidationContext with the mutations
// OpenInit/Try/Ack/Confirm apply once validation has passed.
type ExecutionContext interface {
	ValidationContext

	// SetConnection stores conn under connectionID's path.
	SetConnection(ctx context.Context, connectionID string, conn ConnectionEnd) error
	// SetClientConnectionPath records connectionID in clientID's
	// client-connection index.
	SetClientConnectionPath(ctx context.Context, clientID, connectionID string) error
}
