package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// ClientStateUnmarshaler decodes the bytes a light client type's own Marshal
// produced back into an exported.ClientState of that type.
type ClientStateUnmarshaler func(bz []byte) (exported.ClientState, error)

// ConsensusStateUnmarshaler is ClientStateUnmarshaler's counterpart for consensus states.
type ConsensusStateUnmarshaler func(bz []byte) (exported.ConsensusState, error)

// clientTypeRegistry holds, per registered client type prefix (e.g. "07-tendermint",
// "mock"), the decode functions that light client package registers from its
// init(). This stands in for the Any/InterfaceRegistry resolution real ibc-go
// uses to recover a concrete type from a polymorphic field.
var clientTypeRegistry = map[string]registryEntry{}

type registryEntry struct {
	unmarshalClient    ClientStateUnmarshaler
	unmarshalConsensus ConsensusStateUnmarshaler
}

// RegisterClientType registers the decode functions for a light client type.
// Called from each light client package's init().
func RegisterClientType(clientType string, csFn ClientStateUnmarshaler, conFn ConsensusStateUnmarshaler) {
	clientTypeRegistry[clientType] = registryEntry{unmarshalClient: csFn, unmarshalConsensus: conFn}
}

// MarshalClientState encodes a client state using its own ClientType's Marshal,
// tagging the payload with a type prefix so UnmarshalClientState can
// recover the right decode function.
func MarshalClientState(cs exported.ClientState) ([]byte, error) {
	payload, err := cs.Marshal()
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidClient, "failed to marshal client state: %s", err)
	}
	return encodeTagged(cs.ClientType(), payload), nil
}

// UnmarshalClientState recovers the concrete client state from its tagged encoding.
func UnmarshalClientState(bz []byte) (exported.ClientState, error) {
	clientType, payload, err := decodeTagged(bz)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidClient, "failed to decode client state envelope: %s", err)
	}
	entry, ok := clientTypeRegistry[clientType]
	if !ok {
		return nil, errorsmod.Wrapf(ErrClientTypeNotFound, "no client type registered for %q", clientType)
	}
	return entry.unmarshalClient(payload)
}

// MarshalConsensusState encodes a consensus state tagged with its client type.
func MarshalConsensusState(clientType string, cs exported.ConsensusState) ([]byte, error) {
	payload, err := cs.Marshal()
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidConsensus, "failed to marshal consensus state: %s", err)
	}
	return encodeTagged(clientType, payload), nil
}

// UnmarshalConsensusState recovers the concrete consensus state from its tagged encoding.
func UnmarshalConsensusState(bz []byte) (exported.ConsensusState, error) {
	clientType, payload, err := decodeTagged(bz)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidConsensus, "failed to decode consensus state envelope: %s", err)
	}
	entry, ok := clientTypeRegistry[clientType]
	if !ok {
		return nil, errorsmod.Wrapf(ErrClientTypeNotFound, "no client type registered for %q", clientType)
	}
	return entry.unmarshalConsensus(payload)
}

// encodeTagged/decodeTagged prefix a payload with its client type and a
// length-delimited separator, so the type tag itself never needs escaping.
func encodeTagged(clientType string, payload []byte) []byte {
	out := make([]byte, 0, len(clientType)+1+len(payload))
	out = append(out, byte(len(clientType)))
	out = append(out, clientType...)
	out = append(out, payload...)
	return out
}

func decodeTagged(bz []byte) (clientType string, payload []byte, err error) {
	if len(bz) == 0 {
		return "", nil, errorsmod.Wrap(ErrInvalidClient, "empty envelope")
	}
	n := int(bz[0])
	if len(bz) < 1+n {
		return "", nil, errorsmod.Wrap(ErrInvalidClient, "truncated envelope")
	}
	return string(bz[1 : 1+n]), bz[1+n:], nil
}
