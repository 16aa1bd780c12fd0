package tendermint

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// ConsensusState is the per-height commitment a 07-tendermint client stores:
// the app hash committed at this height, the block timestamp, and the hash
// of the validator set that will sign the *next* height's header. That last
// field is what lets VerifyClientMessage chain trust from one header to the next
// without re-verifying the whole validator set each time.
type ConsensusState struct {
	Timestamp          uint64
	Root               []byte
	NextValidatorsHash []byte
}

var _ exported.ConsensusState = (*ConsensusState)(nil)

func (cs *ConsensusState) ClientType() string  { return ClientType }
func (cs *ConsensusState) GetRoot() []byte     { return cs.Root }
func (cs *ConsensusState) GetTimestamp() uint64 { return cs.Timestamp }

func (cs *ConsensusState) ValidateBasic() error {
	if cs.Timestamp == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "tendermint consensus state timestamp cannot be zero")
	}
	if len(cs.Root) == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "tendermint consensus state root cannot be empty")
	}
	if len(cs.NextValidatorsHash) == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "tendermint consensus state next validators hash cannot be empty")
	}
	return nil
}

func (cs *ConsensusState) Marshal() ([]byte, error) {
	return json.Marshal(cs)
}

// UnmarshalConsensusState decodes a tendermint ConsensusState, registered
// against "07-tendermint" client IDs.
func UnmarshalConsensusState(bz []byte) (exported.ConsensusState, error) {
	var cs ConsensusState
	if err := json.Unmarshal(bz, &cs); err != nil {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "failed to decode tendermint consensus state")
	}
	return &cs, nil
}
