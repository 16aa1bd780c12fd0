// Package testing assembles the shared fixtures every subsystem's tests
// build on: an in-memory store, a fully wired set of client/connection/
// channel keepers backed by the mock light client, and proof helpers that
// exploit the mock client's literal byte-equality check so tests never need
// a real Merkle proof system.
package testing

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/google/uuid"

	clientkeeper "github.com/tokenize-x/ibc-core/modules/core/02-client/keeper"
	clienttypes "github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	connectionkeeper "github.com/tokenize-x/ibc-core/modules/core/03-connection/keeper"
	connectiontypes "github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
	channelkeeper "github.com/tokenize-x/ibc-core/modules/core/04-channel/keeper"
	channeltypes "github.com/tokenize-x/ibc-core/modules/core/04-channel/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
	_ "github.com/tokenize-x/ibc-core/modules/light-clients/mock"
	"github.com/tokenize-x/ibc-core/store"
)

// Chain bundles one side of a two-chain test topology: its own store and the
// three subsystem keepers layered over it, exactly the way a host
// application wires them (client keeper first, connection keeper depends on
// it, channel keeper depends on both).
type Chain struct {
	Store            *store.MemStore
	ClientKeeper     clientkeeper.Keeper
	ConnectionKeeper connectionkeeper.Keeper
	ChannelKeeper    channelkeeper.Keeper
}

// DefaultMerklePrefix is the commitment prefix every test chain advertises.
var DefaultMerklePrefix = connectiontypes.NewMerklePrefix([]byte("ibc"))

// NewChain wires a fresh Chain over an empty MemStore.
func NewChain() *Chain {
	cdc := NewCodec()
	kvStore := store.NewMemStore()

	ck := clientkeeper.NewKeeper(cdc, kvStore, "authority", "")
	connk := connectionkeeper.NewKeeper(cdc, kvStore, ck, DefaultMerklePrefix)
	chk := channelkeeper.NewKeeper(cdc, kvStore, ck, connk)

	return &Chain{
		Store:            kvStore,
		ClientKeeper:     ck,
		ConnectionKeeper: connk,
		ChannelKeeper:    chk,
	}
}

// NewCodec returns a minimal BinaryCodec sufficient for the light client
// interfaces that take one as a parameter; this engine's own wire format
// (marshal.go in each types package) never routes through it, so an empty interface registry is enough.
func NewCodec() codec.BinaryCodec {
	return codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
}

// ProofOf returns the membership proof the mock light client accepts for
// value: the mock's VerifyMembership checks proof == value by design, so the
// "proof" a test fixture constructs is simply the expected value bytes.
func ProofOf(value []byte) []byte {
	out := make([]byte, len(value))
	copy(out, value)
	return out
}

// AbsenceProof returns the non-membership proof the mock light client
// accepts: an empty byte slice.
func AbsenceProof() []byte {
	return []byte{}
}

// ClientStateProof marshals cs the same way the client keeper would, so a
// test can build a proof for a MsgConnectionOpenTry/Ack's embedded client
// state without reaching into keeper internals.
func ClientStateProof(cs exported.ClientState) []byte {
	bz, err := clienttypes.MarshalClientState(cs)
	if err != nil {
		panic(err)
	}
	return ProofOf(bz)
}

// ConsensusStateProof marshals cs the same way the client keeper would.
func ConsensusStateProof(clientType string, cs exported.ConsensusState) []byte {
	bz, err := clienttypes.MarshalConsensusState(clientType, cs)
	if err != nil {
		panic(err)
	}
	return ProofOf(bz)
}

// ConnectionProof marshals conn the same way the connection keeper would.
func ConnectionProof(conn connectiontypes.ConnectionEnd) []byte {
	bz, err := connectiontypes.MarshalConnectionEnd(conn)
	if err != nil {
		panic(err)
	}
	return ProofOf(bz)
}

// RandomSigner returns an opaque, unique signer string for message fixtures
// that only need to be non-empty and distinct across test cases; protocol
// identifiers themselves are always sequence-derived, never random, so this helper is confined to this test package.
func RandomSigner() string {
	return "cosmos1" + uuid.NewString()
}

// ChannelProof marshals channel the same way the channel keeper would.
func ChannelProof(channel channeltypes.ChannelEnd) []byte {
	bz, err := channeltypes.MarshalChannelEnd(channel)
	if err != nil {
		panic(err)
	}
	return ProofOf(bz)
}
