// Package types holds the connection subsystem's data model: ConnectionEnd's
// four-state handshake machine, version negotiation, and the Msg* types
// OpenInit/Try/Ack/Confirm decode into.
package types

import "github.com/tokenize-x/ibc-core/modules/core/exported"

// State is a connection's position in the four-step handshake.
type State int32

const (
	UNINITIALIZED State = iota
	INIT
	TRYOPEN
	OPEN
)

func (s State) String() string {
	switch s {
	case INIT:
		return "STATE_INIT"
	case TRYOPEN:
		return "STATE_TRYOPEN"
	case OPEN:
		return "STATE_OPEN"
	default:
		return "STATE_UNINITIALIZED_UNSPECIFIED"
	}
}

// Version is a supported feature set, e.g. {Identifier: "1", Features: ["ORDER_ORDERED", "ORDER_UNORDERED"]}.
type Version struct {
	Identifier string
	Features   []string
}

// Counterparty identifies the connection end on the other chain: its client,
// its connection id (empty until the counterparty allocates one), and the
// commitment prefix under which its IBC state lives.
type Counterparty struct {
	ClientId     string
	ConnectionId string
	Prefix       exported.Prefix
}

// ConnectionEnd is the full state of one side of a connection.
type ConnectionEnd struct {
	ClientId     string
	Versions     []Version
	State        State
	Counterparty Counterparty
	DelayPeriod  uint64
}

// MerklePrefix is the concrete exported.Prefix every connection end stores:
// the counterparty's chosen commitment prefix, almost always "ibc" (spec's
// GLOSSARY: "the counterparty-chosen path prefix under which its IBC state lives").
type MerklePrefix struct {
	KeyPrefix []byte
}

var _ exported.Prefix = MerklePrefix{}

func (p MerklePrefix) Bytes() []byte { return p.KeyPrefix }
func (p MerklePrefix) IsEmpty() bool { return len(p.KeyPrefix) == 0 }

// NewMerklePrefix wraps a raw commitment prefix.
func NewMerklePrefix(keyPrefix []byte) MerklePrefix {
	return MerklePrefix{KeyPrefix: keyPrefix}
}
