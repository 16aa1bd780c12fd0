package mock

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// ConsensusState is the mock client's per-height commitment: an opaque root
// and a unix-nano timestamp, mirroring exported.ConsensusState's two fields.
type ConsensusState struct {
	Timestamp uint64
	Root      []byte
}

var _ exported.ConsensusState = (*ConsensusState)(nil)

func (cs *ConsensusState) ClientType() string    { return ClientType }
func (cs *ConsensusState) GetRoot() []byte        { return cs.Root }
func (cs *ConsensusState) GetTimestamp() uint64   { return cs.Timestamp }

func (cs *ConsensusState) ValidateBasic() error {
	if cs.Timestamp == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "mock consensus state timestamp cannot be zero")
	}
	if len(cs.Root) == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "mock consensus state root cannot be empty")
	}
	return nil
}

func (cs *ConsensusState) Marshal() ([]byte, error) {
	return json.Marshal(cs)
}

// UnmarshalConsensusState decodes a mock ConsensusState.
func UnmarshalConsensusState(bz []byte) (exported.ConsensusState, error) {
	var cs ConsensusState
	if err := json.Unmarshal(bz, &cs); err != nil {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "failed to decode mock consensus state")
	}
	return &cs, nil
}
