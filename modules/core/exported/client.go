package exported

import (
	"context"

	"github.com/cosmos/cosmos-sdk/codec"
)

// Status is the runtime status of a client, derived from its frozen height
// and the elapsed time since its latest consensus state relative to the
// trusting period.
type Status string

const (
	Active  Status = "Active"
	Frozen  Status = "Frozen"
	Expired Status = "Expired"
	Unknown Status = "Unknown"
)

// ClientState is the capability set every concrete light client type (07-tendermint,
// a mock client used by tests, and future types) must implement. Handlers in
// the connection, channel, and packet subsystems are polymorphic over this
// interface and never branch on concrete client type.
type ClientState interface {
	// ClientType returns the identifier prefix for this client type, e.g. "07-tendermint".
	ClientType() string
	// GetLatestHeight returns the highest height this client has verified a consensus state for.
	GetLatestHeight() Height
	// Validate performs stateless sanity checks on the client state fields.
	Validate() error
	// Status derives the client's current status from its stored state and the host's view of time.
	Status(ctx context.Context, clientStore ClientStore, cdc codec.BinaryCodec) Status
	// ZeroCustomFields returns a copy of the client state with client-specific customizable fields zeroed.
	// No handler in this module calls it; there is no substitute-client recovery path.
	ZeroCustomFields() ClientState
	// Marshal encodes the client state for storage under its client's path prefix.
	// Wire/proof encoding is out of scope; each light client type picks its own
	// encoding and reads it back in its registered registry.ClientStateUnmarshaler.
	Marshal() ([]byte, error)

	// VerifyClientMessage checks a header or misbehaviour submission is internally well formed and,
	// for headers, that it was in fact signed by the counterparty's validator set.
	VerifyClientMessage(ctx context.Context, cdc codec.BinaryCodec, clientStore ClientStore, clientMsg ClientMessage) error
	// CheckForMisbehaviour returns true if the client message proves equivocation (two conflicting
	// signed commitments for the same or overlapping height).
	CheckForMisbehaviour(ctx context.Context, cdc codec.BinaryCodec, clientStore ClientStore, clientMsg ClientMessage) bool
	// UpdateStateOnMisbehaviour freezes the client at its current height; no new consensus state is stored.
	UpdateStateOnMisbehaviour(ctx context.Context, cdc codec.BinaryCodec, clientStore ClientStore, clientMsg ClientMessage)
	// UpdateState stores the consensus state(s) derived from clientMsg and returns the heights stored.
	// Idempotent: replaying a header for an already-stored height is a no-op that still returns that height.
	UpdateState(ctx context.Context, cdc codec.BinaryCodec, clientStore ClientStore, clientMsg ClientMessage) []Height

	// VerifyMembership checks proof of the existence of value at path, anchored at the consensus
	// state stored for height. delayTimePeriod and delayBlockPeriod carry the connection's delay
	// period; the connection and channel keepers check it before calling, and the mock and
	// 07-tendermint clients do not check it again.
	VerifyMembership(
		ctx context.Context, clientStore ClientStore, cdc codec.BinaryCodec,
		height Height, delayTimePeriod, delayBlockPeriod uint64,
		proof []byte, path Path, value []byte,
	) error
	// VerifyNonMembership checks proof of the absence of any value at path.
	VerifyNonMembership(
		ctx context.Context, clientStore ClientStore, cdc codec.BinaryCodec,
		height Height, delayTimePeriod, delayBlockPeriod uint64,
		proof []byte, path Path,
	) error

	// VerifyUpgradeAndUpdateState checks proof that the counterparty has committed to new
	// client/consensus states at an upgrade height and, on success, replaces the stored states.
	VerifyUpgradeAndUpdateState(
		ctx context.Context, cdc codec.BinaryCodec, clientStore ClientStore,
		newClient ClientState, newConsState ConsensusState,
		upgradeClientProof, upgradeConsStateProof []byte,
	) error
}

// ConsensusState is the counterparty's header-derived commitment root and timestamp
// at a specific height; the anchor every membership/non-membership proof is checked against.
type ConsensusState interface {
	ClientType() string
	// GetRoot returns the commitment root committed to at this consensus state's height.
	GetRoot() []byte
	// GetTimestamp returns the consensus timestamp in unix nanoseconds.
	GetTimestamp() uint64
	// ValidateBasic performs stateless sanity checks on the consensus state fields.
	ValidateBasic() error
	// Marshal encodes the consensus state for storage, mirroring ClientState.Marshal.
	Marshal() ([]byte, error)
}

// ClientMessage is the sealed set of message types a ClientState's VerifyClientMessage
// accepts: a Header (ordinary update) or a Misbehaviour submission (equivocation proof).
type ClientMessage interface {
	ClientType() string
	ValidateBasic() error
}

// Path is an opaque, already-rendered ICS-24 store path, as produced by the
// 24-host path constructors. Client implementations treat it as bytes; only
// 24-host knows the string layout.
type Path interface {
	String() string
	Bytes() []byte
}

// ClientStore is the narrow key-value view a client implementation is given over its
// own namespace (clients/{client-id}/...). It never sees other clients' or other
// subsystems' state.
type ClientStore interface {
	Get(ctx context.Context, key []byte) ([]byte, error)
	Set(ctx context.Context, key, value []byte) error
	Delete(ctx context.Context, key []byte) error
}

// Prefix is the counterparty-chosen commitment prefix (ICS-23) combined with an
// ICS-24 path to produce the absolute path a proof is checked against.
type Prefix interface {
	Bytes() []byte
	IsEmpty() bool
}
